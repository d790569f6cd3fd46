package snapshot

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText prints a small aligned table. The active target is starred.
func WriteText(w io.Writer, s Snapshot, dateLayout string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	start := s.StartDate.Format(dateLayout)
	if s.DefaultStart {
		start += " (default)"
	}
	fmt.Fprintf(tw, "Start date:\t%s\n", start)
	fmt.Fprintf(tw, "Category:\t%s\n", s.Category)
	fmt.Fprintf(tw, "Weeks elapsed:\t%d\n", s.ActiveState().Remaining.WeeksElapsed)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "\tTARGET\tDUE\tREMAINING\tPROGRESS")
	for _, ts := range s.Targets {
		mark := ""
		if ts.Target == s.Active {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s (%dw)\t%s\t%s\t%.0f%%\n",
			mark,
			ts.Target.Label(),
			ts.Target.Weeks(),
			ts.DueDate.Format(dateLayout),
			formatRemaining(ts.Remaining),
			ts.Progress*100,
		)
	}
	return tw.Flush()
}
