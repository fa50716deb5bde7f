package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/message"

	"war/game"
	"war/gamemaster"
	"war/meta"
)

// Renderer prints the board, battle reports and messages in one locale.
type Renderer struct {
	out io.Writer
	p   *message.Printer

	title   *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
}

func NewRenderer(out io.Writer, p *message.Printer) *Renderer {
	return &Renderer{
		out:     out,
		p:       p,
		title:   color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
}

func (r *Renderer) Printer() *message.Printer {
	return r.p
}

// Say prints a translated line without decoration.
func (r *Renderer) Say(key string, args ...any) {
	fmt.Fprintln(r.out, r.p.Sprintf(key, args...))
}

func (r *Renderer) Title(key string, args ...any) {
	r.title.Fprintln(r.out, r.p.Sprintf(key, args...))
}

func (r *Renderer) Success(key string, args ...any) {
	r.success.Fprintln(r.out, r.p.Sprintf(key, args...))
}

func (r *Renderer) Warn(key string, args ...any) {
	r.warning.Fprintln(r.out, r.p.Sprintf(key, args...))
}

// Map prints every territory with its 1-based ID.
func (r *Renderer) Map(m *game.Map) {
	if m.Len() == 0 {
		r.Warn("register.empty")
		return
	}
	r.Title("map.title")
	table := tablewriter.NewTable(r.out,
		tablewriter.WithHeader([]string{r.p.Sprintf("map.id"), r.p.Sprintf("map.name"), r.p.Sprintf("map.color"), r.p.Sprintf("map.troops")}),
	)
	for i, t := range m.Territories() {
		table.Append([]string{strconv.Itoa(i + 1), t.Name, t.Color, strconv.Itoa(t.Troops)})
	}
	table.Render()
}

// Battle reports the rolls and the outcome of one attack.
func (r *Renderer) Battle(result game.AttackResult) {
	r.Say("attack.rolls", result.Attacker, result.AttackerRoll, result.Defender, result.DefenderRoll)
	switch {
	case result.Conquered:
		r.Success("attack.conquered", result.Attacker, result.Defender, result.Transferred)
	case result.AttackerWon:
		r.Success("attack.won", result.Defender)
	default:
		r.Warn("attack.lost", result.Attacker)
	}
}

// Mission shows the player's secret mission.
func (r *Renderer) Mission(text string) {
	r.Title("mission.title", text)
}

// Error prints a rule violation in the player's language.
func (r *Renderer) Error(err error) {
	var text string
	switch {
	case errors.Is(err, game.ErrSameColor):
		text = r.p.Sprintf("error.same_color")
	case errors.Is(err, game.ErrSameTerritory):
		text = r.p.Sprintf("error.same_territory")
	case errors.Is(err, game.ErrNotEnoughTroops):
		text = r.p.Sprintf("error.troops", meta.MIN_ATTACK_TROOPS)
	case errors.Is(err, game.ErrNegativeTroops):
		text = r.p.Sprintf("error.negative")
	case errors.Is(err, game.ErrInvalidTerritory):
		text = r.p.Sprintf("error.blank")
	case errors.Is(err, gamemaster.ErrGameOver):
		text = r.p.Sprintf("error.game_over")
	default:
		text = err.Error()
	}
	r.failure.Fprintln(r.out, text)
}
