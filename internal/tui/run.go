package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/planar"
	"github.com/gogpu/planar/internal/config"
)

// Run starts the editor on s and blocks until the user quits or ctx is
// done. When watchPath is not empty the config file is watched and every
// reload is delivered to the model.
func Run(ctx context.Context, s *planar.State, opts Options, watchPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(s, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if watchPath != "" {
		go func() {
			err := config.Watch(ctx, watchPath, config.DefaultDebounce, func(cfg *config.Config) {
				p.Send(ConfigMsg{Config: cfg})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				planar.Logger().Warn("tui: config watch stopped", "err", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
