package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the field until the user finishes or cancels and returns what it
// held. The UI draws on stderr so stdout stays free for the result.
func Run(ctx context.Context, opts Options) (Result, error) {
	applyColorProfilePreference()
	applyThemePreference()

	m, err := newInputModel(ctx, opts)
	if err != nil {
		return Result{}, err
	}
	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithMouseCellMotion(),
	}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return Result{}, err
	}
	return final.(inputModel).result, nil
}
