package gamemaster

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"war/game"
	"war/metrics"
	"war/mission"
)

type Option func(s *Session)

// Session is one match: the board, the rules, and the player's secret mission.
type Session struct {
	ID          string
	Map         *game.Map
	Rules       game.Rules
	Roller      game.Roller
	PlayerColor string
	Mission     mission.Mission
	Progress    mission.Progress
	Turn        int // turns played, including skipped ones

	battles  int
	metrics  metrics.Collector
	won      bool
	gameOver bool
}

func WithRules(rules game.Rules) Option {
	return func(s *Session) {
		if rules != nil {
			s.Rules = rules
		}
	}
}

func WithRoller(roller game.Roller) Option {
	return func(s *Session) {
		if roller != nil {
			s.Roller = roller
		}
	}
}

func WithPlayerColor(color string) Option {
	return func(s *Session) {
		s.PlayerColor = color
	}
}

func WithMission(text string) Option {
	return func(s *Session) {
		s.Mission = mission.Parse(mission.Truncate(text)).Assign(s.Map.Territories())
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *Session) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func NewSession(m *game.Map, options ...Option) *Session {
	s := &Session{ // Default values
		ID:      uuid.NewString(),
		Map:     m,
		Rules:   game.NewStandardRules(),
		Roller:  game.NewRandomRoller(uint64(time.Now().UnixNano())),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	s.metrics.Start(s.ID)

	log.Debug().Str("match", s.ID).Msgf("session created with %d territories", m.Len())
	return s
}

// Won reports whether the mission has been accomplished.
func (s *Session) Won() bool {
	return s.won
}

func (s *Session) GameOver() bool {
	return s.gameOver
}

// End stops the match; further attacks are rejected.
func (s *Session) End() {
	s.gameOver = true
}

// Battles returns the recorded attacks of this match.
func (s *Session) Battles() []metrics.BattleRecord {
	return s.metrics.Battles()
}
