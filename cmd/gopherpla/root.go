package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/crillab/gopherpla/espresso"
	"github.com/crillab/gopherpla/internal/config"
)

// newEngine returns the engine used by the minimize command.
var newEngine = espresso.NativeEngine

// options holds the flags shared by all commands.
type options struct {
	configPath  string
	typ         string
	verify      bool
	verbose     bool
	jobs        int
	logLevel    string
	metricsFile string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "gopherpla",
		Short:         "Read, rewrite and minimize covers in the Berkeley PLA format",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.dumpMetrics()
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write metrics there on exit, in the Prometheus text format")
	cmd.AddCommand(newFmtCmd(opts), newMinimizeCmd(opts))
	return cmd
}

// load builds the configuration from the config file, then from the flags.
func (opts *options) load(cmd *cobra.Command) error {
	opts.cfg = config.Default()
	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		opts.cfg = cfg
	}
	flags := cmd.Flags()
	if flags.Changed("type") {
		opts.cfg.Type = opts.typ
	}
	if flags.Changed("verify") {
		opts.cfg.Verify = opts.verify
	}
	if flags.Changed("jobs") {
		opts.cfg.Jobs = opts.jobs
	}
	if flags.Changed("log-level") {
		opts.cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("metrics-file") {
		opts.cfg.Metrics.Textfile = opts.metricsFile
	}
	if err := opts.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	opts.logger = newLogger(cmd.ErrOrStderr(), opts.cfg)
	slog.SetDefault(opts.logger)
	return nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

func (opts *options) dumpMetrics() error {
	if opts.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(opts.cfg.Metrics.Textfile, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("could not write metrics: %w", err)
	}
	return nil
}

// openInput opens the named file, or stdin if path is "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	return f, nil
}
