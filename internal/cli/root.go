package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wicaksn/sertika/internal/client"
	"github.com/wicaksn/sertika/internal/draft"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	BaseURL string // backend base URL
	DBPath  string // draft database path
	Lang    string // message language for rendered output
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sertika CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sertika",
		Short: "Sertika - digital calibration certificate composer",
		Long:  "Compose, validate, and submit digital calibration certificates step by step.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.BaseURL == "" {
				opts.BaseURL = envOr("SERTIKA_BASE_URL", client.DefaultBaseURL)
			}
			if opts.DBPath == "" {
				path, err := defaultDBPath()
				if err != nil {
					return err
				}
				opts.DBPath = path
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "backend base URL (default $SERTIKA_BASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "draft database path")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "en", "message language (en|id)")

	cmd.AddCommand(NewDraftCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewPreviewCommand(opts))
	cmd.AddCommand(NewSubmitCommand(opts))
	cmd.AddCommand(NewUploadCommand(opts))
	cmd.AddCommand(NewReplayCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewWhoamiCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultDBPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	path := filepath.Join(dir, "sertika", "drafts.db")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return path, nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// newLogger builds the structured logger commands hand to the HTTP
// client. Quiet unless --verbose; always writes to stderr.
func newLogger(opts *RootOptions) *zap.Logger {
	level := zapcore.WarnLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func openStore(opts *RootOptions) (*draft.Store, error) {
	store, err := draft.Open(opts.DBPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open draft database", err)
	}
	return store, nil
}

// newClient builds the API client with the cached token, when present.
func newClient(opts *RootOptions) *client.Client {
	copts := []client.Option{client.WithLogger(newLogger(opts))}
	if token, err := client.LoadToken(); err == nil && token != "" {
		copts = append(copts, client.WithToken(token))
	}
	return client.New(opts.BaseURL, copts...)
}
