package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/duetrackr/internal/config"
	"github.com/sadopc/duetrackr/internal/logger"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath, nil)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log, err := logger.NewConsoleLogger(opts.debug)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer logger.Sync(log)
			cfg.LogFallbacks(log)

			if opts.dbPath != "" {
				cfg.DatabasePath = opts.dbPath
			}
			if opts.debug {
				cfg.Debug = true
			}
			if opts.target != "" {
				t, err := opts.resolveTarget(cfg)
				if err != nil {
					return err
				}
				cfg.DefaultTarget = t.String()
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}
