package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/lox/tourneyclock/cmd/tourneyclock/shared"
	"github.com/lox/tourneyclock/internal/clock"
	"github.com/lox/tourneyclock/internal/sound"
	"github.com/lox/tourneyclock/internal/tui"
)

type RunCmd struct {
	Overrides

	Mute    bool   `help:"Do not play notification sounds" env:"TOURNEYCLOCK_MUTE"`
	LogFile string `help:"Where to write logs while the clock owns the terminal" default:"tourneyclock.log" type:"path" env:"TOURNEYCLOCK_LOG_FILE"`
}

func (c *RunCmd) Run(g *Globals) error {
	logFile, err := shared.OpenLogFile(c.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	logger := shared.SetupLogger(logFile, g.Debug)

	cfg, err := g.loadConfig(c.Overrides)
	if err != nil {
		return err
	}
	settings, err := tui.SettingsFromConfig(cfg)
	if err != nil {
		return err
	}

	logger.Info("Starting tournament clock",
		"name", settings.Name,
		"config", g.Config,
		"levels", settings.Schedule.Len(),
		"blindMinutes", settings.BlindMinutes,
		"stack", settings.Stack,
		"players", settings.Players,
		"mute", c.Mute)

	var sink clock.NotificationSink = clock.NopSink{}
	if !c.Mute {
		s := sound.NewHostSink(logger)
		defer func() { _ = s.Close() }()
		sink = s
	}

	model := tui.New(settings, logger, tui.WithClockOptions(clock.WithSink(sink)))
	defer model.Clock().Close()

	program := tea.NewProgram(model)

	// Setup graceful shutdown
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		model.Quit()
		return nil
	})

	err = eg.Wait()
	logger.Info("Tournament clock stopped")
	return err
}
