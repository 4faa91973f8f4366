package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/smm-uncleared/internal/api"
	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/logging"
	"github.com/atomicstack/smm-uncleared/internal/state"
	"github.com/atomicstack/smm-uncleared/internal/storage"
	"github.com/atomicstack/smm-uncleared/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Game        string        `validate:"oneof=smm1 smm2"`
	APIRoot     string        `validate:"required,http_url"`
	Timeout     time.Duration `validate:"gt=0"`
	MinInterval time.Duration `validate:"gte=0"`
	StatePath   string
	Width       int `validate:"gte=0"`
	Height      int `validate:"gte=0"`
	ShowFooter  bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	kv, err := storage.Open(cfg.StatePath)
	if err != nil {
		return fmt.Errorf("open filter store: %w", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logging.Errorf("close filter store", err)
		}
	}()

	client := api.New(api.Options{
		Root:        cfg.APIRoot,
		Timeout:     cfg.Timeout,
		MinInterval: cfg.MinInterval,
	})
	model, err := ui.NewModel(context.Background(), ui.Options{
		Game:       filter.Game(cfg.Game),
		Client:     client,
		Store:      state.NewFilterStore(kv),
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Animate:    true,
	})
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
