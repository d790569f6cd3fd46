package cli

import (
	"github.com/spf13/cobra"

	"github.com/sadopc/duetrackr/internal/snapshot"
)

func newStatusCommand(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the countdown once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(false)
			if err != nil {
				return err
			}
			defer e.close()

			target, err := opts.resolveTarget(e.cfg)
			if err != nil {
				return err
			}
			start, err := e.prefs.StartDate()
			if err != nil {
				return err
			}
			set, err := e.prefs.StartDateSet()
			if err != nil {
				return err
			}
			category, err := e.prefs.Category()
			if err != nil {
				return err
			}

			snap := snapshot.Build(start, category, target, opts.clock())
			snap.DefaultStart = !set
			if asJSON {
				return snapshot.WriteJSON(cmd.OutOrStdout(), snap)
			}
			return snapshot.WriteText(cmd.OutOrStdout(), snap, e.cfg.DateFormat)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
