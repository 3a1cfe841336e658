package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"coffeeflavours/internal/catalog"
	"coffeeflavours/internal/inquiry"
	"coffeeflavours/internal/logging"
	"coffeeflavours/internal/telemetry"
	"coffeeflavours/internal/ui"
	"coffeeflavours/internal/viewstate"
)

// transitionBuffer bounds the UI transition channel; the emitter drops
// when it is full.
const transitionBuffer = 64

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the storefront (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runTUI(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, logCloser, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tracer, err := telemetry.New(ctx, cfg.Telemetry.ServiceName)
	if err != nil {
		log.WithError(err).Warn("telemetry disabled")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("telemetry shutdown")
		}
	}()

	cat := catalog.Default()
	start, err := cfg.StartIndex(cat)
	if err != nil {
		return err
	}

	transitions := make(chan viewstate.Transition, transitionBuffer)
	observers := []viewstate.Observer{
		&viewstate.ChanEmitter{Ch: transitions},
		&logging.TransitionLogger{Log: log},
	}
	if tracer != nil {
		observers = append(observers, tracer)
	}
	ctrl := viewstate.NewController(cat,
		viewstate.WithObserver(viewstate.NewMultiObserver(observers...)),
		viewstate.WithExclusiveOverlays(cfg.ExclusiveOverlays),
	)
	if err := ctrl.SelectCoffee(start); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"coffee":    ctrl.CurrentCoffee().ID,
		"exclusive": cfg.ExclusiveOverlays,
		"session":   tracer.SessionID(),
	}).Info("storefront starting")

	model := ui.NewAppModel(ctrl, ui.Deps{
		Ctx:         ctx,
		Config:      cfg,
		Log:         log,
		Service:     &inquiry.StubService{Delay: 400 * time.Millisecond},
		Transitions: transitions,
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running storefront: %w", err)
	}
	log.Info("storefront closed")
	return nil
}
