package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/duetrackr/internal/countdown"
)

// timelineModel charts elapsed against remaining weeks for every target.
type timelineModel struct {
	width  int
	height int

	chart barchart.Model
	built bool

	// Inputs of the last build; the chart only changes once a week.
	start time.Time
	weeks int
}

func newTimelineModel() timelineModel {
	return timelineModel{chart: barchart.New(40, 8)}
}

func (m *timelineModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.built = false
}

// refresh redraws the chart when the start date, the elapsed week or the
// size changed since the last draw.
func (m *timelineModel) refresh(start time.Time, now time.Time) {
	weeks := countdown.WeeksElapsed(start, now)
	if m.built && weeks == m.weeks && start.Equal(m.start) {
		return
	}
	m.start = start
	m.weeks = weeks
	m.build()
}

func (m *timelineModel) build() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 8
	if m.height > 40 {
		chartHeight = 12
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, t := range countdown.Targets() {
		elapsed := min(m.weeks, t.Weeks())
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("%s %d/%dw", t.Label(), elapsed, t.Weeks()),
			Values: []barchart.BarValue{
				{Name: "elapsed", Value: float64(elapsed), Style: lipgloss.NewStyle().Foreground(colorAccent)},
				{Name: "remaining", Value: float64(t.Weeks() - elapsed), Style: lipgloss.NewStyle().Foreground(colorSubtle)},
			},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
	m.built = true
}

func (m timelineModel) view() string {
	legend := lipgloss.JoinHorizontal(lipgloss.Bottom,
		lipgloss.NewStyle().Foreground(colorAccent).Render("■ elapsed"),
		"  ",
		lipgloss.NewStyle().Foreground(colorSubtle).Render("■ remaining"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.chart.View(), legend)
}
