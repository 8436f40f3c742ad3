package tui

import (
	"context"

	"chartodo/internal/model"
	"chartodo/internal/mutate"

	tea "github.com/charmbracelet/bubbletea"
)

// Lists loads and persists one TaskList per kind.
type Lists interface {
	Load(ctx context.Context, kind model.Kind) (*model.TaskList, error)
	Save(ctx context.Context, kind model.Kind, l *model.TaskList) error
}

type Options struct {
	Lists Lists
	// Engine returns the configured engine for a kind.
	Engine func(model.Kind) *mutate.Engine
	// Start selects the list shown first.
	Start model.Kind
}

func Run(ctx context.Context, opts Options) error {
	m, err := newViewModel(ctx, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
