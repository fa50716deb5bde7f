package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"war/console"
	"war/engine"
	"war/game"
	"war/gamemaster"
	"war/metrics"
	"war/mission"
)

// Batch describes a series of scripted demo matches sharing one die.
type Batch struct {
	Games       int
	Turns       int
	Plans       []engine.Plan
	PlayerColor string
	Rules       game.Rules
	Roller      game.Roller
	Catalog     *mission.Catalog
	// Render shows every match when set; batches are silent otherwise
	Render *console.Renderer
}

// Report holds the records of a finished batch.
type Report struct {
	Games   []metrics.GameMetric
	Battles []metrics.BattleRecord
}

// Wins counts the matches whose mission was accomplished.
func (r Report) Wins() int {
	wins := 0
	for _, g := range r.Games {
		if g.Won {
			wins++
		}
	}
	return wins
}

// Run plays the batch on fresh demo maps, each with a mission drawn for the
// colors on that map. Cancelling ctx stops after the current turn and returns
// what was recorded so far.
func Run(ctx context.Context, b Batch) (Report, error) {
	if b.Games < 1 {
		return Report{}, fmt.Errorf("need at least one game, got %d", b.Games)
	}
	plans := b.Plans
	if len(plans) == 0 {
		plans = engine.DemoPlans
	}

	report := Report{}
	log.Info().Msgf("starting batch of %d games...", b.Games)

	for i := 0; i < b.Games; i++ {
		collector := metrics.NewCollector()
		board := game.CreateMap()
		session := gamemaster.NewSession(board,
			gamemaster.WithRules(b.Rules),
			gamemaster.WithRoller(b.Roller),
			gamemaster.WithPlayerColor(b.PlayerColor),
			gamemaster.WithCollector(collector),
		)
		if err := session.AssignMission(b.Catalog.Missions(board, b.PlayerColor)); err != nil {
			return report, fmt.Errorf("game %d: %w", i+1, err)
		}

		metric, err := engine.LocalEngine(session, plans, b.Turns, b.Render).Run(ctx)
		report.Games = append(report.Games, metric)
		report.Battles = append(report.Battles, collector.Battles()...)
		if err != nil {
			return report, fmt.Errorf("game %d: %w", i+1, err)
		}

		log.Info().Msgf("completed game %d of %d, won=%t", i+1, b.Games, metric.Won)
	}

	log.Info().Msgf("completed batch: %d of %d missions accomplished", report.Wins(), b.Games)
	return report, nil
}

// Write stores the report as CSV under a timestamped folder of dir.
func Write(report Report, dir string) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", fmt.Errorf("failed to create report writer: %w", err)
	}

	if err := writer.WriteGames(report.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteBattles(report.Battles); err != nil {
		return "", fmt.Errorf("failed to write battle records: %w", err)
	}
	log.Info().Msg("stored battle records")

	return writer.Dir(), nil
}
