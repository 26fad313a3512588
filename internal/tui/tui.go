// Package tui is the terminal front end of the config editor.
package tui

import (
	"context"

	"ghostconfig/internal/app"
	"ghostconfig/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks until the user quits. The controller is initialized by the
// program itself so the loading state is visible.
func Run(ctx context.Context, ctrl *app.Controller, log logging.Logger) error {
	applyThemePreference()
	applyColorProfilePreference()

	m := newModel(ctx, ctrl, log)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
