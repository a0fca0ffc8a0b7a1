package app

import (
	"context"
	"errors"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/atomicstack/tabtray-control/internal/prefs"
	"github.com/atomicstack/tabtray-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the tray for the most recent window and runs the console until
// the tray is dismissed.
func Run(ctx context.Context, cfg Config) error {
	a, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			logging.Error(cerr)
		}
	}()

	window, err := a.DefaultWindow(ctx)
	if err != nil {
		return err
	}
	if _, err := a.OpenWindow(ctx, window); err != nil {
		return err
	}
	store := a.Store()
	store.Dispatch(action.ShowScreen{Context: action.In(window), Screen: action.ScreenThemeSettings})
	store.Dispatch(action.ThemeSettingsDidLoad{Context: action.In(window)})

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	changes, err := prefs.Watch(watchCtx, a.Prefs().Path())
	if err != nil {
		logging.Error(err)
		changes = nil
	}
	watcher := a.Watcher(changes)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Store:      store,
		Window:     window,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Private:    cfg.Private,
		Watcher:    watcher,
		Dispatcher: a.Dispatcher(),
	})
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
