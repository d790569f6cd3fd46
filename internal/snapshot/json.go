package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

type jsonSnapshot struct {
	TakenAt   string       `json:"taken_at"`
	StartDate string       `json:"start_date"`
	StartSet  bool         `json:"start_date_set"`
	Category  string       `json:"category"`
	Active    string       `json:"active"`
	Targets   []jsonTarget `json:"targets"`
}

type jsonTarget struct {
	Target       string  `json:"target"`
	Label        string  `json:"label"`
	Weeks        int     `json:"weeks"`
	DueDate      string  `json:"due_date"`
	Days         int64   `json:"days"`
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	Seconds      int     `json:"seconds"`
	WeeksElapsed int     `json:"weeks_elapsed"`
	Remaining    string  `json:"remaining"`
	Progress     float64 `json:"progress"`
}

func WriteJSON(w io.Writer, s Snapshot) error {
	out := jsonSnapshot{
		TakenAt:   s.TakenAt.Format(time.RFC3339),
		StartDate: s.StartDate.Format(time.RFC3339),
		StartSet:  !s.DefaultStart,
		Category:  s.Category.String(),
		Active:    s.Active.String(),
	}
	for _, ts := range s.Targets {
		r := ts.Remaining
		out.Targets = append(out.Targets, jsonTarget{
			Target:       ts.Target.String(),
			Label:        ts.Target.Label(),
			Weeks:        ts.Target.Weeks(),
			DueDate:      ts.DueDate.Format(time.RFC3339),
			Days:         r.Days,
			Hours:        r.Hours,
			Minutes:      r.Minutes,
			Seconds:      r.Seconds,
			WeeksElapsed: r.WeeksElapsed,
			Remaining:    formatRemaining(r),
			Progress:     ts.Progress,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
