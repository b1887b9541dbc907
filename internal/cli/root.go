// Package cli implements the playerid command line tool.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"playerid/internal/platform/config"
	"playerid/internal/platform/logger"
	"playerid/pkg/directory"
	dErrors "playerid/pkg/domain-errors"
	"playerid/pkg/platform/tracer"
)

// Options carries the resolved global flags for subcommands.
type Options struct {
	Config  config.Config
	Output  string
	Verbose bool

	// resolver is built in PersistentPreRunE unless injected.
	resolver directoryResolver
	logger   *slog.Logger
}

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// NewRootCmd creates the root command. A nil resolver means a directory
// client is built from configuration.
func NewRootCmd(cfg config.Config, resolver directoryResolver) *cobra.Command {
	cmd, _ := newRootCmd(cfg, resolver)
	return cmd
}

func newRootCmd(cfg config.Config, resolver directoryResolver) (*cobra.Command, *Options) {
	opts := &Options{Config: cfg, Output: OutputText, resolver: resolver}

	rootCmd := &cobra.Command{
		Use:   "playerid",
		Short: "Derive, classify and resolve player identifiers",
		Long: `playerid works with 128-bit player identifiers.

Offline identifiers are derived locally from a username. Online identifiers are
issued by the account directory and need a network lookup.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Output != OutputText && opts.Output != OutputJSON {
				invalid := opts.Output
				opts.Output = OutputText
				return dErrors.New(dErrors.CodeInvalidInput,
					fmt.Sprintf("unsupported output format %q (want text or json)", invalid))
			}

			level := opts.Config.LogLevel
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = logger.NewWithWriter(cmd.ErrOrStderr(), level)

			if opts.resolver == nil {
				opts.resolver = newDirectoryClient(opts.Config.Directory, opts.logger)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.Config.Directory.ProfileBaseURL, "profile-url", opts.Config.Directory.ProfileBaseURL, "Username lookup endpoint (env: PLAYERID_PROFILE_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.Config.Directory.SessionBaseURL, "session-url", opts.Config.Directory.SessionBaseURL, "Identifier lookup endpoint (env: PLAYERID_SESSION_URL)")
	rootCmd.PersistentFlags().DurationVar(&opts.Config.Directory.Timeout, "timeout", opts.Config.Directory.Timeout, "HTTP timeout, 0 for none (env: PLAYERID_TIMEOUT)")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", opts.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Verbose logging on stderr")

	rootCmd.AddCommand(newClassifyCmd(opts))
	addOfflineCommands(rootCmd, opts)
	addOnlineCommands(rootCmd, opts)

	return rootCmd, opts
}

func newDirectoryClient(cfg config.Directory, log *slog.Logger) *directory.Client {
	httpClient := http.DefaultClient
	if cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return directory.New(
		directory.WithProfileBaseURL(cfg.ProfileBaseURL),
		directory.WithSessionBaseURL(cfg.SessionBaseURL),
		directory.WithHTTPClient(httpClient),
		directory.WithUserAgent(cfg.UserAgent),
		directory.WithLogger(log),
		directory.WithTracer(tracer.NewOTel()),
	)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd, opts := newRootCmd(config.FromEnv(), nil)
	if err := run(cmd, opts); err != nil {
		os.Exit(1)
	}
}

// run executes cmd and reports a failure in the format selected by --output.
func run(cmd *cobra.Command, opts *Options) error {
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		NewOutput(opts.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).PrintError(err)
	}
	return err
}
