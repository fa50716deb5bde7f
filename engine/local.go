package engine

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"war/console"
	"war/gamemaster"
	"war/metrics"
)

// Engine plays a match on its own, cycling through scripted attacks.
type Engine struct {
	Session *gamemaster.Session
	Plans   []Plan
	Turns   int

	render *console.Renderer
}

// LocalEngine prepares a scripted match. A nil renderer plays silently.
func LocalEngine(session *gamemaster.Session, plans []Plan, turns int, render *console.Renderer) *Engine {
	if len(plans) == 0 {
		panic("need at least one scripted attack")
	}
	turns = min(max(turns, 1), MaxTurns)
	return &Engine{
		Session: session,
		Plans:   plans,
		Turns:   turns,
		render:  render,
	}
}

// Run executes the scripted turns until the mission is accomplished, the
// turns run out or ctx is cancelled. The session is over when Run returns.
func (e *Engine) Run(ctx context.Context) (metrics.GameMetric, error) {
	defer e.Session.End()

	if e.render != nil {
		e.render.Title("title")
		e.render.Mission(e.Session.Mission.Text)
	}
	log.Info().Str("match", e.Session.ID).Msgf("simulating %d turns, mission: %s", e.Turns, e.Session.Mission.Text)

	played := 0
	for turn := 1; turn <= e.Turns; turn++ {
		if err := ctx.Err(); err != nil {
			return e.Session.Summary(), err
		}
		played = turn
		plan := e.Plans[(turn-1)%len(e.Plans)]

		if e.render != nil {
			e.render.Title("simulate.turn", turn)
			e.render.Map(e.Session.Map)
		}

		result, err := e.Session.Attack(plan.AttackerID, plan.DefenderID)
		switch {
		case errors.Is(err, gamemaster.ErrGameOver):
			return e.Session.Summary(), err
		case err != nil:
			// An illegal scripted attack only costs its turn
			if skipErr := e.Session.SkipTurn(); skipErr != nil {
				return e.Session.Summary(), skipErr
			}
			log.Warn().Str("match", e.Session.ID).Err(err).Msgf("turn %d: attack %d -> %d skipped", turn, plan.AttackerID, plan.DefenderID)
			if e.render != nil {
				e.render.Error(err)
			}
		default:
			if e.render != nil {
				e.render.Battle(result)
			}
		}

		won, err := e.Session.CheckMission()
		if err != nil {
			return e.Session.Summary(), err
		}
		if won {
			if e.render != nil {
				e.render.Success("mission.done")
			}
			break
		}
	}

	if e.render != nil {
		e.render.Say("simulate.end", played)
	}
	log.Info().Str("match", e.Session.ID).Msgf("simulation over after %d turns, won=%t", played, e.Session.Won())
	return e.Session.Summary(), nil
}
