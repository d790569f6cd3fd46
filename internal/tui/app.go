package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/sadopc/duetrackr/internal/countdown"
	"github.com/sadopc/duetrackr/internal/store"
)

// Options tune an App. Zero values pick sensible defaults.
type Options struct {
	Target     countdown.Target
	DateLayout string
	Version    string
	Logger     *zap.Logger
	Clock      func() time.Time
}

// App is the root Bubble Tea model.
type App struct {
	log        *zap.Logger
	clock      func() time.Time
	dateLayout string
	width      int
	height     int

	loop      *countdown.Loop
	remaining countdown.Remaining
	now       time.Time // instant of the last rendered tick
	category  store.Category

	progress progress.Model
	timeline timelineModel
	settings settingsModel

	help      help.Model
	showHelp  bool
	status    string
	statusErr bool
}

// NewApp loads the saved choices, starts the loop on opts.Target and
// renders its first tick.
func NewApp(prefs *store.Preferences, opts Options) (App, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.DateLayout == "" {
		opts.DateLayout = "02/01/2006"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	start, err := prefs.StartDate()
	if err != nil {
		return App{}, fmt.Errorf("load start date: %w", err)
	}
	category, err := prefs.Category()
	if err != nil {
		return App{}, fmt.Errorf("load category: %w", err)
	}

	h := help.New()
	h.ShowAll = false

	a := App{
		log:        opts.Logger,
		clock:      opts.Clock,
		dateLayout: opts.DateLayout,
		loop:       countdown.NewLoop(start),
		category:   category,
		progress:   progress.New(progress.WithDefaultGradient()),
		timeline:   newTimelineModel(),
		help:       h,
	}
	a.settings = newSettingsModel(newPrefsListener(prefs, opts.Logger), opts.DateLayout, opts.Version, opts.Clock)
	a.startLoop(opts.Target)
	return a, nil
}

func (a App) Init() tea.Cmd {
	return tickCmd(a.loop.Epoch())
}

func tickCmd(epoch countdown.Epoch) tea.Cmd {
	return tea.Tick(countdown.Interval, func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch}
	})
}

// startLoop switches the active target: the previous epoch is cancelled,
// tick 0 is rendered now and the returned command schedules the next tick.
func (a *App) startLoop(target countdown.Target) tea.Cmd {
	epoch := a.loop.Start(target)
	a.log.Debug("countdown loop started",
		zap.Stringer("target", target),
		zap.Uint64("epoch", uint64(epoch)),
	)
	a.tick(epoch)
	return tickCmd(epoch)
}

// tick computes and renders one refresh. It reports false for a cancelled
// epoch.
func (a *App) tick(epoch countdown.Epoch) bool {
	now := a.clock()
	r, ok := a.loop.Tick(epoch, now)
	if !ok {
		return false
	}
	a.render(r, now)
	return true
}

func (a *App) render(r countdown.Remaining, now time.Time) {
	a.remaining = r
	a.now = now
	a.timeline.refresh(a.loop.StartDate(), now)
}

// stop tears the loop down; no tick renders afterwards.
func (a *App) stop() {
	a.loop.Stop()
	a.log.Debug("countdown loop stopped")
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.progress.Width = max(a.width-12, 10)
		a.timeline.setSize(a.width, contentHeight)
		a.timeline.refresh(a.loop.StartDate(), a.now)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.stop()
			return a, tea.Quit
		}

		// The settings form captures every other key while it is open.
		if a.settings.formActive {
			var cmd tea.Cmd
			a.settings, cmd = a.settings.update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			a.stop()
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Primary), key.Matches(msg, keys.Left):
			return a, a.startLoop(countdown.Primary)
		case key.Matches(msg, keys.Secondary), key.Matches(msg, keys.Right):
			return a, a.startLoop(countdown.Secondary)
		case key.Matches(msg, keys.Toggle):
			return a, a.startLoop(a.loop.Target().Other())
		case key.Matches(msg, keys.Settings):
			var cmd tea.Cmd
			a.settings, cmd = a.settings.open(a.loop.StartDate(), a.category)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		if !a.tick(msg.epoch) {
			// Cancelled epoch: no render, no reschedule.
			return a, nil
		}
		return a, tickCmd(msg.epoch)

	case categoryChangedMsg:
		a.category = msg.category
		a.status = "Gender set to " + categoryTitle(msg.category)
		a.statusErr = false
		return a, nil

	case startDateChangedMsg:
		a.loop.SetStart(msg.start)
		a.status = "Start date set to " + msg.start.Format(a.dateLayout)
		a.statusErr = false
		epoch, ok := a.loop.Restart()
		if !ok {
			return a, nil
		}
		a.log.Debug("countdown loop restarted", zap.Uint64("epoch", uint64(epoch)))
		a.tick(epoch)
		return a, tickCmd(epoch)

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil
	}

	// Anything else (form internals, blink) belongs to the settings form.
	if a.settings.formActive {
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	if a.settings.formActive {
		content = a.settings.view()
	} else {
		content = a.renderCountdown()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Background(categoryBackground(a.category)).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("duetrackr")
	toggles := a.renderToggles()

	gap := a.width - lipgloss.Width(title) - lipgloss.Width(toggles) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Center, title, spacer, toggles),
	)
}

// renderToggles draws the two target buttons; the active one is filled.
func (a App) renderToggles() string {
	left, right := toggleUnselectedLeftStyle, toggleSelectedRightStyle
	if a.loop.Target() == countdown.Primary {
		left, right = toggleSelectedLeftStyle, toggleUnselectedRightStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		left.Render(countdown.Primary.Label()),
		right.Render(countdown.Secondary.Label()),
	)
}

func (a App) renderCountdown() string {
	w := a.width - 4
	r := a.remaining
	target := a.loop.Target()
	start := a.loop.StartDate()

	fields := lipgloss.JoinHorizontal(lipgloss.Top,
		renderField(formatDays(r.Days), "days", fieldValueStyle),
		renderField(formatClockField(r.Hours), "hours", fieldValueStyle),
		renderField(formatClockField(r.Minutes), "minutes", fieldValueStyle),
		renderField(formatClockField(r.Seconds), "seconds", fieldValueStyle),
	)
	weeks := renderField(fmt.Sprintf("%d", r.WeeksElapsed), "weeks", weeksValueStyle)

	due := countdown.DueDate(start, target)
	subtitle := subtitleStyle.Render(fmt.Sprintf("%s · %d weeks from %s · due %s",
		target.Label(), target.Weeks(), start.Format(a.dateLayout), due.Format(a.dateLayout)))

	var done string
	if r.Zero() {
		done = successStyle.Bold(true).Render("Reached!")
	}

	bar := a.progress.ViewAs(countdown.Progress(start, target, a.now))

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Time left"),
			subtitle,
			"",
			fields,
			done,
			"",
			weeks,
			"",
			bar,
			"",
			a.timeline.view(),
		),
	)
}

func renderField(value, label string, style lipgloss.Style) string {
	return fieldStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, style.Render(value), fieldLabelStyle.Render(label)),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = errorStyle.Render(" " + a.status)
		} else {
			status = mutedStyle.Render(" " + a.status)
		}
	}

	live := highlightStyle.Render(" ● " + formatRemaining(a.remaining))

	left := footerStyle.Render(helpView)
	right := live + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}
