package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"war/game"
	"war/gamemaster"
)

// Console runs the interactive menus over a reader and a writer.
type Console struct {
	prompt *Prompter
	render *Renderer
}

// New builds a console speaking the supported locale closest to locale.
func New(in io.Reader, out io.Writer, locale string) (*Console, error) {
	p, err := NewPrinter(locale)
	if err != nil {
		return nil, err
	}
	return &Console{
		prompt: NewPrompter(in, out, p),
		render: NewRenderer(out, p),
	}, nil
}

func (c *Console) Renderer() *Renderer {
	return c.render
}

// RegisterMenu is the registry menu: register, list or exit.
func (c *Console) RegisterMenu(m *game.Map) error {
	c.render.Title("title")
	for {
		c.render.Say("register.menu")
		option, err := c.prompt.Int("option.prompt")
		if err != nil {
			return ignoreEOF(err)
		}
		switch option {
		case 1:
			if m.Full() {
				c.render.Warn("register.full", m.Capacity())
				continue
			}
			if err := c.registerTerritory(m); err != nil {
				return ignoreEOF(err)
			}
		case 2:
			c.render.Map(m)
		case 0:
			c.render.Say("goodbye")
			return nil
		default:
			c.render.Warn("option.invalid")
		}
	}
}

// Register asks for count territories in a row.
func (c *Console) Register(m *game.Map, count int) error {
	for i := 0; i < count && !m.Full(); i++ {
		c.render.Say("register.header", m.Len()+1)
		if err := c.registerTerritory(m); err != nil {
			return err
		}
	}
	return nil
}

// RegisterCount asks how many territories to register, then registers them.
func (c *Console) RegisterCount(m *game.Map) error {
	for {
		count, err := c.prompt.Int("register.count")
		if err != nil {
			return err
		}
		if count > 0 {
			return c.Register(m, count)
		}
		c.render.Warn("option.invalid")
	}
}

// registerTerritory repeats the questions until the territory is accepted.
func (c *Console) registerTerritory(m *game.Map) error {
	for {
		name, err := c.prompt.Line("register.name")
		if err != nil {
			return err
		}
		color, err := c.prompt.Line("register.color")
		if err != nil {
			return err
		}
		troops, err := c.prompt.Int("register.troops")
		if err != nil {
			return err
		}

		id, err := m.Add(game.Territory{Name: name, Color: color, Troops: troops})
		switch {
		case err == nil:
			c.render.Success("register.done", id)
			log.Debug().Msgf("registered territory %d: %s", id, name)
			return nil
		case errors.Is(err, game.ErrMapFull):
			c.render.Warn("register.full", m.Capacity())
			return nil
		default:
			c.render.Error(err)
		}
	}
}

// PlayerColor asks for the player's army. A blank answer picks the color of
// the first territory.
func (c *Console) PlayerColor(m *game.Map) (string, error) {
	for {
		color, err := c.prompt.Line("player.color")
		if err != nil {
			return "", err
		}
		if color != "" {
			return color, nil
		}
		if m.Len() > 0 {
			first, _ := m.Get(1)
			return first.Color, nil
		}
		c.render.Warn("option.invalid")
	}
}

// AttackLoop lets the player attack until they decline another round.
func (c *Console) AttackLoop(s *gamemaster.Session) error {
	c.render.Map(s.Map)
	for {
		if err := c.attack(s); err != nil {
			return ignoreEOF(err)
		}
		if s.GameOver() {
			return nil
		}
		again, err := c.prompt.Confirm("attack.again")
		if err != nil {
			return ignoreEOF(err)
		}
		if !again {
			c.render.Say("goodbye")
			return nil
		}
	}
}

// Campaign shows the mission and runs the attack / check mission menu.
func (c *Console) Campaign(s *gamemaster.Session) error {
	c.render.Title("title")
	c.render.Mission(s.Mission.Text)
	for {
		c.render.Map(s.Map)
		c.render.Say("campaign.menu")
		option, err := c.prompt.Int("option.prompt")
		if err != nil {
			return ignoreEOF(err)
		}
		switch option {
		case 1:
			if err := c.attack(s); err != nil {
				return ignoreEOF(err)
			}
		case 2:
			won, err := s.CheckMission()
			if err != nil {
				return err
			}
			if won {
				c.render.Success("mission.done")
				return nil
			}
			c.render.Warn("mission.pending")
		case 0:
			c.render.Say("goodbye")
			return nil
		default:
			c.render.Warn("option.invalid")
		}
	}
}

// attack asks for both territories and resolves one battle. Rule violations
// are reported and the player is returned to the menu.
func (c *Console) attack(s *gamemaster.Session) error {
	attackerID, err := c.chooseTerritory("attack.attacker", s.Map.Len())
	if err != nil {
		return err
	}
	if attackerID == 0 {
		c.render.Say("attack.cancelled")
		return nil
	}
	defenderID, err := c.chooseTerritory("attack.defender", s.Map.Len())
	if err != nil {
		return err
	}
	if defenderID == 0 {
		c.render.Say("attack.cancelled")
		return nil
	}

	result, err := s.Attack(attackerID, defenderID)
	if err != nil {
		c.render.Error(err)
		return nil
	}
	c.render.Battle(result)
	c.render.Map(s.Map)
	return nil
}

// chooseTerritory returns an ID in [1, n], or 0 when the player cancels.
func (c *Console) chooseTerritory(key string, n int) (int, error) {
	for {
		id, err := c.prompt.Int(key, n)
		if err != nil {
			return 0, err
		}
		if id >= 0 && id <= n {
			return id, nil
		}
		c.render.Warn("attack.range", n)
	}
}

// ignoreEOF treats the end of input as leaving the menu.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("console: %w", err)
}
