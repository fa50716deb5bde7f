package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"war/config"
	"war/console"
	"war/engine"
	"war/experiments"
	"war/game"
	"war/gamemaster"
	"war/metrics"
	"war/mission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&cfg).ExecuteContext(ctx); err != nil {
		color.Red("%v", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var verbose bool
	var demoMap bool

	rootCmd := &cobra.Command{
		Use:   "war",
		Short: "Territory conquest in the terminal",
		Long: `Register territories, roll dice to attack your neighbours and
accomplish a secret mission before the war ends.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(*cfg, verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCampaign(cmd, *cfg, demoMap)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the dice (0 uses the clock)")
	flags.StringVarP(&cfg.Locale, "locale", "l", cfg.Locale, "language of menus and missions (en-US, pt-BR)")
	flags.StringVarP(&cfg.PlayerColor, "color", "c", cfg.PlayerColor, "your army color")
	flags.BoolVar(&cfg.StrictTies, "strict-ties", cfg.StrictTies, "the defender wins tied rolls")
	flags.StringVar(&cfg.RecordDir, "record", cfg.RecordDir, "write battle and game reports as CSV under this directory")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&demoMap, "demo", false, "play on the built-in four territory map")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a campaign with a secret mission",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCampaign(cmd, *cfg, demoMap)
		},
	}
	playCmd.Flags().BoolVar(&demoMap, "demo", false, "play on the built-in four territory map")

	attackCmd := &cobra.Command{
		Use:   "attack",
		Short: "Register territories and attack freely, without a mission",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttack(cmd, *cfg)
		},
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register and list territories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd, *cfg)
		},
	}
	registerCmd.Flags().IntVarP(&cfg.Territories, "territories", "t", cfg.Territories, "registry capacity")

	var games, turns int
	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Watch scripted demo matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, *cfg, games, turns)
		},
	}
	simulateCmd.Flags().IntVarP(&games, "games", "g", 1, "number of matches; more than one plays silently")
	simulateCmd.Flags().IntVar(&turns, "turns", engine.DemoTurns, "turns per match")

	rootCmd.AddCommand(playCmd, attackCmd, registerCmd, simulateCmd)
	return rootCmd
}

func setupLogging(cfg config.Config, verbose bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	return nil
}

func newConsole(cmd *cobra.Command, cfg config.Config) (*console.Console, error) {
	return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Locale)
}

func runCampaign(cmd *cobra.Command, cfg config.Config, demoMap bool) error {
	c, err := newConsole(cmd, cfg)
	if err != nil {
		return err
	}
	catalog, err := mission.LoadCatalog(cfg.Locale)
	if err != nil {
		return err
	}

	m := game.NewMap(0)
	if demoMap {
		m = game.CreateMap()
	} else if err := c.RegisterCount(m); err != nil {
		return ignoreEOF(err)
	}

	playerColor := cfg.PlayerColor
	if playerColor == "" {
		if playerColor, err = c.PlayerColor(m); err != nil {
			return ignoreEOF(err)
		}
	}

	collector := metrics.NewCollector()
	session := gamemaster.NewSession(m,
		gamemaster.WithRules(cfg.Rules()),
		gamemaster.WithRoller(cfg.Roller()),
		gamemaster.WithPlayerColor(playerColor),
		gamemaster.WithCollector(collector),
	)
	if err := session.AssignMission(catalog.Missions(m, playerColor)); err != nil {
		return err
	}

	if err := c.Campaign(session); err != nil {
		return err
	}
	return record(cfg, []metrics.GameMetric{session.Summary()}, collector.Battles())
}

func runAttack(cmd *cobra.Command, cfg config.Config) error {
	c, err := newConsole(cmd, cfg)
	if err != nil {
		return err
	}

	m := game.NewMap(0)
	if err := c.RegisterCount(m); err != nil {
		return ignoreEOF(err)
	}

	collector := metrics.NewCollector()
	session := gamemaster.NewSession(m,
		gamemaster.WithRules(cfg.Rules()),
		gamemaster.WithRoller(cfg.Roller()),
		gamemaster.WithPlayerColor(cfg.PlayerColor),
		gamemaster.WithCollector(collector),
	)
	if err := c.AttackLoop(session); err != nil {
		return err
	}
	return record(cfg, []metrics.GameMetric{session.Summary()}, collector.Battles())
}

func runRegister(cmd *cobra.Command, cfg config.Config) error {
	c, err := newConsole(cmd, cfg)
	if err != nil {
		return err
	}
	return c.RegisterMenu(game.NewMap(cfg.Capacity()))
}

func runSimulate(cmd *cobra.Command, cfg config.Config, games, turns int) error {
	catalog, err := mission.LoadCatalog(cfg.Locale)
	if err != nil {
		return err
	}

	playerColor := cfg.PlayerColor
	if playerColor == "" {
		first, _ := game.CreateMap().Get(1)
		playerColor = first.Color
	}

	batch := experiments.Batch{
		Games:       games,
		Turns:       turns,
		PlayerColor: playerColor,
		Rules:       cfg.Rules(),
		Roller:      cfg.Roller(),
		Catalog:     catalog,
	}
	p, err := console.NewPrinter(cfg.Locale)
	if err != nil {
		return err
	}
	render := console.NewRenderer(cmd.OutOrStdout(), p)
	if games == 1 {
		batch.Render = render
	}

	report, err := experiments.Run(cmd.Context(), batch)
	if err != nil {
		return err
	}
	if games > 1 {
		render.Success("simulate.summary", report.Wins(), games)
	}
	return record(cfg, report.Games, report.Battles)
}

// record writes the CSV reports when a record directory is configured.
func record(cfg config.Config, games []metrics.GameMetric, battles []metrics.BattleRecord) error {
	if cfg.RecordDir == "" {
		return nil
	}
	dir, err := experiments.Write(experiments.Report{Games: games, Battles: battles}, cfg.RecordDir)
	if err != nil {
		return err
	}
	log.Info().Msgf("reports stored in %s", dir)
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
