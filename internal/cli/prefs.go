package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newPrefsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prefs",
		Short: "List the preferences stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(false)
			if err != nil {
				return err
			}
			defer e.close()

			all, err := e.store.GetAllSettings()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tVALUE\tUPDATED")
			for _, st := range all {
				value := st.Value
				// Start dates are stored as epoch millis.
				if st.Key == "start_date" {
					if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
						value = time.UnixMilli(ms).Format(e.cfg.DateFormat)
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", st.Key, value, st.UpdatedAt.Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}
}

func newResetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved start date and gender",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(false)
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.prefs.Reset(); err != nil {
				return err
			}
			e.log.Info("preferences reset")
			fmt.Fprintln(cmd.OutOrStdout(), "Preferences reset")
			return nil
		},
	}
}
