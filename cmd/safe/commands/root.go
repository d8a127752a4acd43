package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"safe/internal/app"
	"safe/internal/config"
	"safe/internal/domain"
	"safe/internal/logger"
	"safe/internal/search"
)

// skipEnsure marks commands that must not create the safe file.
const skipEnsure = "skip-ensure"

var (
	storePath  string
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool
	appCtx     *app.App

	// clipboardOverride replaces the OS clipboard when set.
	clipboardOverride domain.Clipboard
)

// Execute runs the CLI against the process arguments and standard streams.
func Execute() error {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err != nil && !errors.Is(err, search.ErrCancelled) {
		logger.NewConsole(errOut).Error("Error: %v", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "safe [pattern]",
		Short:         "Local key/password store with interactive search",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			appCtx, err = app.New(app.Config{
				StorePath:         cfg.Store.Path,
				LogLevel:          cfg.Log.Level,
				LogFormat:         cfg.Log.Format,
				Clipboard:         cfg.Clipboard.Enabled,
				NoColor:           cfg.NoColor,
				In:                cmd.InOrStdin(),
				Out:               cmd.OutOrStdout(),
				Err:               cmd.ErrOrStderr(),
				ClipboardOverride: clipboardOverride,
			})
			if err != nil {
				return err
			}

			if _, skip := cmd.Annotations[skipEnsure]; skip {
				return nil
			}
			return appCtx.EnsureStore()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}

	root.PersistentFlags().StringVar(&storePath, "store", "", "safe file (default "+config.DefaultStorePath+")")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/safe/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(searchCmd(), addCmd(), listCmd(), initCmd(), fingerprintCmd(), versionCmd())
	return root
}

// resolveConfig layers flags over the config file and environment.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.ConfigFile()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store.Path = storePath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("no-color") {
		cfg.NoColor = noColor
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating flags: %w", err)
	}
	return cfg, nil
}
