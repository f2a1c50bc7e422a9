// Package cli implements the ayurchem command tree.  Commands talk to a
// running API server through pkg/client unless --local asks for the
// in-process pipeline.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turtacn/AyurChem-Intelligence/internal/config"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/client"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatText  = "text"
)

const defaultServer = "http://localhost:5000"

type cliContextKey struct{}

// RootOptions holds the persistent flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	NoColor      bool
	Timeout      time.Duration
	ServerAddr   string
}

// CLIContext carries initialised dependencies to every subcommand.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	Client       *client.Client
	OutputFormat string
	Timeout      time.Duration
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ayurchem",
		Short: "Ayurvedic herb text analysis and phytochemical hypotheses",
		Long: "ayurchem finds herbs and classical properties in free text, resolves their\n" +
			"modern compounds through PubChem and derives descriptive hypotheses.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./ayurchem.yaml if present)")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", FormatTable, "output format (table, json, text)")
	pf.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	pf.DurationVar(&opts.Timeout, "timeout", 60*time.Second, "overall command timeout")
	pf.StringVar(&opts.ServerAddr, "server", "", "API server base URL (default "+defaultServer+")")

	cmd.AddCommand(
		newAnalyzeCmd(),
		newHerbsCmd(),
		newDemoCmd(),
		newEventsCmd(),
		newVersionCmd(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	switch opts.OutputFormat {
	case FormatTable, FormatJSON, FormatText:
	default:
		return errors.InvalidParam("unknown output format").WithDetail(opts.OutputFormat)
	}
	if opts.NoColor || opts.OutputFormat == FormatJSON {
		color.NoColor = true
	}

	cfg, err := initConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:            opts.LogLevel,
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
	if err != nil {
		return err
	}

	addr := opts.ServerAddr
	if addr == "" {
		addr = defaultServer
	}
	apiClient, err := client.NewClient(addr, client.WithTimeout(opts.Timeout), client.WithUserAgent("ayurchem-cli/"+Version))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cliContextKey{}, &CLIContext{
		Config:       cfg,
		Logger:       logger,
		Client:       apiClient,
		OutputFormat: opts.OutputFormat,
		Timeout:      opts.Timeout,
	}))
	return nil
}

// initConfig loads --config, else the first default path that exists, else
// AYURCHEM_* variables and defaults.
func initConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	paths := []string{"./ayurchem.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".ayurchem", "config.yaml"))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return config.Load(p)
		}
	}
	return config.LoadFromEnv()
}

// GetCLIContext extracts the CLIContext installed by the root command.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	if ctx := cmd.Context(); ctx != nil {
		if c, ok := ctx.Value(cliContextKey{}).(*CLIContext); ok && c != nil {
			return c, nil
		}
	}
	return nil, errors.Internal("cli context not initialised")
}

// commandContext bounds a command by --timeout.
func commandContext(cmd *cobra.Command, cc *CLIContext) (context.Context, context.CancelFunc) {
	if cc.Timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), cc.Timeout)
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		PrintError(root, err)
		return err
	}
	return nil
}

// PrintError writes err in red, or plain when colour is off.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", color.RedString("Error:"), strings.TrimSpace(errorMessage(err)))
}

func errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s (HTTP %d)", apiErr.Message, apiErr.StatusCode)
	}
	var ae *errors.AppError
	if errors.As(err, &ae) {
		if ae.Detail != "" {
			return ae.Message + ": " + ae.Detail
		}
		return ae.Message
	}
	return err.Error()
}

//Personal.AI order the ending
