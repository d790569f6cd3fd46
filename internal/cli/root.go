// Package cli wires configuration, logging and storage together behind the
// duetrackr command line.
package cli

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sadopc/duetrackr/internal/config"
	"github.com/sadopc/duetrackr/internal/countdown"
	"github.com/sadopc/duetrackr/internal/logger"
	"github.com/sadopc/duetrackr/internal/store"
	"github.com/sadopc/duetrackr/internal/tui"
)

type rootOptions struct {
	configPath string
	dbPath     string
	target     string
	debug      bool

	version string
	clock   func() time.Time

	// runTUI is swapped out in tests.
	runTUI func(m tea.Model) error
}

// env is what every command needs once flags are parsed.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	store *store.Store
	prefs *store.Preferences
}

func (e *env) close() {
	if e.store != nil {
		e.store.Close()
	}
	logger.Sync(e.log)
}

// NewRootCommand builds the command tree. version is printed by the
// version command and shown on the settings panel.
func NewRootCommand(version string) *cobra.Command {
	return newRootCommand(&rootOptions{
		version: version,
		clock:   time.Now,
		runTUI: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duetrackr",
		Short: "Live countdown to the due date",
		Long: `duetrackr counts down to the estimated due date (40 weeks after the start
date) or to the end of the nausea window (15 weeks after the start date).

Run without arguments for the interactive view. Press s to change the start
date or gender, 1/2 or t to switch countdowns, q to quit.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: ./config.yaml or the user config dir)")
	flags.StringVar(&opts.dbPath, "db", "", "database path (overrides config)")
	flags.StringVar(&opts.target, "target", "", "countdown to show: pregnancy|nausea (overrides config)")
	flags.BoolVar(&opts.debug, "debug", false, "debug logging")

	cmd.AddCommand(
		newStatusCommand(opts),
		newSetCommand(opts),
		newPrefsCommand(opts),
		newResetCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(opts),
	)
	return cmd
}

func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	e, err := opts.open(true)
	if err != nil {
		return err
	}
	defer e.close()

	target, err := opts.resolveTarget(e.cfg)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(e.prefs, tui.Options{
		Target:     target,
		DateLayout: e.cfg.DateFormat,
		Version:    opts.version,
		Logger:     e.log,
		Clock:      opts.clock,
	})
	if err != nil {
		return err
	}

	e.log.Info("starting", zap.String("version", opts.version), zap.Stringer("target", target))
	if err := opts.runTUI(app); err != nil {
		e.log.Error("ui exited", zap.Error(err))
		return err
	}
	return nil
}

// open loads config, builds the logger and opens the store. Interactive
// runs log to a file; one-shot commands log to stderr.
func (o *rootOptions) open(interactive bool) (*env, error) {
	cfg, err := config.Load(o.configPath, nil)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.dbPath != "" {
		cfg.DatabasePath = o.dbPath
	}
	debug := o.debug || cfg.Debug

	var log *zap.Logger
	if interactive {
		log, err = logger.NewFileLogger(cfg.LogFile, debug)
	} else {
		log, err = logger.NewConsoleLogger(debug)
	}
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cfg.LogFallbacks(log)

	s, err := store.New(cfg.DatabasePath)
	if err != nil {
		logger.Sync(log)
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Debug("database opened", zap.String("path", cfg.DatabasePath))

	return &env{
		cfg:   cfg,
		log:   log,
		store: s,
		prefs: store.NewPreferences(s).WithClock(o.clock),
	}, nil
}

func (o *rootOptions) resolveTarget(cfg *config.Config) (countdown.Target, error) {
	if o.target == "" {
		return cfg.Target(), nil
	}
	return countdown.ParseTarget(o.target)
}

func newVersionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout(), opts.version)
		},
	}
}

func printVersion(w io.Writer, version string) {
	fmt.Fprintf(w, "duetrackr %s\n", version)
}
