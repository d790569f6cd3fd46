package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sadopc/duetrackr/internal/countdown"
	"github.com/sadopc/duetrackr/internal/store"
)

func newSetCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change a saved preference",
	}
	cmd.AddCommand(newSetStartCommand(opts), newSetCategoryCommand(opts))
	return cmd
}

func newSetStartCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start <date>",
		Short: "Set the start date (format from date_format, default dd/mm/yyyy)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(false)
			if err != nil {
				return err
			}
			defer e.close()

			day, err := time.ParseInLocation(e.cfg.DateFormat, strings.TrimSpace(args[0]), time.Local)
			if err != nil {
				return fmt.Errorf("parse start date %q: %w", args[0], err)
			}
			start := countdown.OnDay(day, opts.clock())

			if err := e.prefs.SetStartDate(start); err != nil {
				return err
			}
			e.log.Info("start date set", zap.Time("start", start))
			fmt.Fprintf(cmd.OutOrStdout(), "Start date set to %s\n", start.Format(e.cfg.DateFormat))
			return nil
		},
	}
}

func newSetCategoryCommand(opts *rootOptions) *cobra.Command {
	var names []string
	for _, c := range store.Categories() {
		names = append(names, c.String())
	}

	return &cobra.Command{
		Use:       "category <" + strings.Join(names, "|") + ">",
		Aliases:   []string{"gender"},
		Short:     "Set the gender used for the background color",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(strings.TrimSpace(args[0]))
			if !store.ValidCategory(name) {
				return fmt.Errorf("invalid category %q, want one of %s", args[0], strings.Join(names, ", "))
			}

			e, err := opts.open(false)
			if err != nil {
				return err
			}
			defer e.close()

			c := store.Category(name)
			if err := e.prefs.SetCategory(c); err != nil {
				return err
			}
			e.log.Info("category set", zap.Stringer("category", c))
			fmt.Fprintf(cmd.OutOrStdout(), "Gender set to %s\n", c)
			return nil
		},
	}
}
