package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmalley/focusboard/internal/audio"
	"github.com/tmalley/focusboard/internal/cli"
	"github.com/tmalley/focusboard/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	model, err := tui.NewModel(ctx.Store, audio.NewPlayer(""))
	if err != nil {
		return fmt.Errorf("failed to build TUI: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI crashed: %w", err)
	}
	return nil
}
