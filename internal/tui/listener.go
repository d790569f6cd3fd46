package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sadopc/duetrackr/internal/store"
)

//go:generate mockgen -source=listener.go -destination=mock_listener_test.go -package=tui

// SettingsListener receives the choices made on the settings panel. The
// panel only knows this interface; the app supplies the implementation.
type SettingsListener interface {
	OnCategoryChanged(category store.Category) tea.Cmd
	OnDateChanged(start time.Time) tea.Cmd
}

// prefsListener persists each change right away and tells the app about it.
type prefsListener struct {
	prefs *store.Preferences
	log   *zap.Logger
}

func newPrefsListener(p *store.Preferences, log *zap.Logger) prefsListener {
	return prefsListener{prefs: p, log: log}
}

func (l prefsListener) OnCategoryChanged(category store.Category) tea.Cmd {
	if err := l.prefs.SetCategory(category); err != nil {
		l.log.Error("save category", zap.Error(err))
		return statusCmd("Could not save category: "+err.Error(), true)
	}
	l.log.Info("category changed", zap.Stringer("category", category))
	return func() tea.Msg {
		return categoryChangedMsg{category: category}
	}
}

func (l prefsListener) OnDateChanged(start time.Time) tea.Cmd {
	if err := l.prefs.SetStartDate(start); err != nil {
		l.log.Error("save start date", zap.Error(err))
		return statusCmd("Could not save start date: "+err.Error(), true)
	}
	l.log.Info("start date changed", zap.Time("start", start))
	return func() tea.Msg {
		return startDateChangedMsg{start: start}
	}
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}
