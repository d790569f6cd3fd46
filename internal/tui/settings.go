package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/duetrackr/internal/countdown"
	"github.com/sadopc/duetrackr/internal/store"
)

type settingsModel struct {
	listener   SettingsListener
	dateLayout string
	version    string
	clock      func() time.Time
	width      int
	height     int

	formActive bool
	form       *huh.Form

	// Values the form was opened with.
	initialCategory store.Category
	initialDate     string

	// Form values as pointers (survive value copies)
	category *string
	date     *string
}

func newSettingsModel(l SettingsListener, dateLayout, version string, clock func() time.Time) settingsModel {
	c, d := "", ""
	return settingsModel{
		listener:   l,
		dateLayout: dateLayout,
		version:    version,
		clock:      clock,
		category:   &c,
		date:       &d,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

// open shows the form prefilled with the current choices.
func (s settingsModel) open(start time.Time, category store.Category) (settingsModel, tea.Cmd) {
	s.initialCategory = category
	s.initialDate = start.Format(s.dateLayout)
	*s.category = category.String()
	*s.date = s.initialDate

	var options []huh.Option[string]
	for _, c := range store.Categories() {
		options = append(options, huh.NewOption(categoryTitle(c), c.String()))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Gender").
				Options(options...).
				Value(s.category),
			huh.NewInput().
				Title("Start date").
				Description(dateHint(s.dateLayout)).
				Validate(s.validateDate).
				Value(s.date),
		).Title("Settings"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if !s.formActive || s.form == nil {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Back) {
		return s.close(), nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	switch s.form.State {
	case huh.StateCompleted:
		done := s.submit()
		return s.close(), done
	case huh.StateAborted:
		return s.close(), nil
	}

	return s, cmd
}

func (s settingsModel) close() settingsModel {
	s.formActive = false
	s.form = nil
	return s
}

// submit hands every changed value to the listener.
func (s settingsModel) submit() tea.Cmd {
	var cmds []tea.Cmd

	if c := store.ParseCategory(*s.category); c != s.initialCategory {
		cmds = append(cmds, s.listener.OnCategoryChanged(c))
	}

	if *s.date != s.initialDate {
		day, err := time.ParseInLocation(s.dateLayout, *s.date, time.Local)
		if err != nil {
			cmds = append(cmds, statusCmd("Invalid start date: "+err.Error(), true))
		} else {
			cmds = append(cmds, s.listener.OnDateChanged(countdown.OnDay(day, s.clock())))
		}
	}

	return tea.Batch(cmds...)
}

func (s settingsModel) validateDate(v string) error {
	if _, err := time.Parse(s.dateLayout, v); err != nil {
		return fmt.Errorf("expected %s", dateHint(s.dateLayout))
	}
	return nil
}

func (s settingsModel) view() string {
	w := s.width - 4

	title := titleStyle.Render("Settings")
	version := mutedStyle.Render("Version: " + s.version)

	var body string
	if s.form != nil {
		body = s.form.View()
	}

	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", version),
	)
}

func categoryTitle(c store.Category) string {
	switch c {
	case store.CategoryMale:
		return "Boy"
	case store.CategoryFemale:
		return "Girl"
	}
	return "Unknown"
}

// dateHint spells out a layout, e.g. 02/01/2006 becomes dd/mm/yyyy.
func dateHint(layout string) string {
	return strings.NewReplacer("2006", "yyyy", "01", "mm", "02", "dd").Replace(layout)
}
