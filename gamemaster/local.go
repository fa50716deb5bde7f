package gamemaster

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"war/game"
	"war/metrics"
	"war/mission"
)

var (
	ErrGameOver  = errors.New("game is over - no moves allowed")
	ErrNoMission = errors.New("no mission assigned")
)

// Attack resolves an attack between two 1-based territory IDs.
func (s *Session) Attack(attackerID, defenderID int) (game.AttackResult, error) {
	if s.gameOver {
		return game.AttackResult{}, ErrGameOver
	}

	attacker, err := s.Map.Get(attackerID)
	if err != nil {
		return game.AttackResult{}, fmt.Errorf("attacker: %w", err)
	}
	defender, err := s.Map.Get(defenderID)
	if err != nil {
		return game.AttackResult{}, fmt.Errorf("defender: %w", err)
	}

	result, err := game.Attack(attacker, defender, s.Rules, s.Roller)
	if err != nil {
		log.Debug().Str("match", s.ID).Err(err).Msgf("attack %d -> %d rejected", attackerID, defenderID)
		return game.AttackResult{}, err
	}

	s.Turn++
	s.battles++
	if game.SameColor(attacker.Color, s.PlayerColor) {
		// A repelled attack breaks the conquest streak
		switch {
		case result.Conquered:
			s.Progress.Conquests++
			s.Progress.Streak++
		case !result.AttackerWon:
			s.Progress.Streak = 0
		}
	}
	s.metrics.AddBattle(s.Turn, result)

	log.Info().Str("match", s.ID).Msgf("turn %d: %s (%d) vs %s (%d), conquered=%t",
		s.Turn, result.Attacker, result.AttackerRoll, result.Defender, result.DefenderRoll, result.Conquered)
	return result, nil
}

// SkipTurn spends a turn without a battle.
func (s *Session) SkipTurn() error {
	if s.gameOver {
		return ErrGameOver
	}
	s.Turn++
	log.Debug().Str("match", s.ID).Msgf("turn %d skipped", s.Turn)
	return nil
}

// AssignMission draws the player's mission from the given sentences.
func (s *Session) AssignMission(missions []string) error {
	text, err := mission.Draw(missions, s.Roller)
	if err != nil {
		return err
	}
	s.Mission = mission.Parse(text).Assign(s.Map.Territories())
	if s.Mission.Kind == mission.Unknown {
		log.Warn().Str("match", s.ID).Msgf("mission %q cannot be evaluated", text)
	}
	log.Debug().Str("match", s.ID).Msgf("mission assigned: %s (%s)", text, s.Mission.Kind)
	return nil
}

// CheckMission evaluates the mission; the first success ends the match.
func (s *Session) CheckMission() (bool, error) {
	if s.Mission.Text == "" {
		return false, ErrNoMission
	}
	if s.won {
		return true, nil
	}
	if s.Mission.Evaluate(s.Map.Territories(), s.PlayerColor, s.Progress) {
		s.won = true
		s.gameOver = true
		log.Info().Str("match", s.ID).Msgf("mission accomplished on turn %d", s.Turn)
	}
	return s.won, nil
}

// Summary returns the match metric with timing filled in.
func (s *Session) Summary() metrics.GameMetric {
	return s.metrics.Complete(metrics.GameMetric{
		Match:       s.ID,
		Mission:     s.Mission.Text,
		PlayerColor: s.PlayerColor,
		Turns:       s.Turn,
		Battles:     s.battles,
		Conquests:   s.Progress.Conquests,
		Won:         s.won,
	})
}
