// Package root wires up the pigment command line.
package root

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/o0x0o/pigment/pkg/cli"
	"github.com/o0x0o/pigment/pkg/logging"
	"github.com/o0x0o/pigment/pkg/paths"
)

type rootFlags struct {
	enableOtel  bool
	debugMode   bool
	logFilePath string
	logFile     io.Closer
}

func NewRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "pigment",
		Short: "pigment - terminal theme studio",
		Long: "pigment previews, switches and hot-reloads terminal color themes.\n" +
			"Run it without arguments to open the interactive preview.",
		Example: `  pigment
  pigment themes list
  pigment themes diff "Default Dark" Ocean`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Logging first, so nothing writes to the terminal under the TUI.
			if err := flags.setupLogging(); err != nil {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)))
				slog.Warn("Falling back to stderr logging", "error", err)
			}

			if flags.enableOtel || os.Getenv("PIGMENT_OTEL") == "1" {
				if err := initOTelSDK(cmd.Context()); err != nil {
					slog.Warn("Failed to initialize OpenTelemetry SDK", "error", err)
				}
			}
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if flags.logFile != nil {
				if err := flags.logFile.Close(); err != nil {
					slog.Error("Failed to close log file", "error", err)
				}
			}
			return nil
		},
		RunE:          runTUICommand,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.debugMode, "debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.enableOtel, "otel", "o", false, "Enable OpenTelemetry tracing")
	cmd.PersistentFlags().StringVar(&flags.logFilePath, "log-file", "", "Path to debug log file (default: <data-dir>/pigment.log; only used with --debug)")

	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newPathsCmd())
	cmd.AddCommand(newVersionCmd())

	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})

	return cmd
}

// Execute runs the CLI. Errors are printed once, here, through the printer.
func Execute(ctx context.Context, stdout, stderr io.Writer, args ...string) error {
	cmd := NewRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetContext(ctx)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		cli.NewPrinter(stderr).PrintError(err)
		return err
	}
	return nil
}

// setupLogging installs the process-wide slog logger: discard by default,
// a Debug text handler into a rotating file with --debug.
func (f *rootFlags) setupLogging() error {
	path := cmp.Or(
		strings.TrimSpace(f.logFilePath),
		filepath.Join(paths.DataDir(), "pigment.log"),
	)

	closer, err := logging.Setup(f.debugMode, path)
	if err != nil {
		return err
	}
	f.logFile = closer
	return nil
}
