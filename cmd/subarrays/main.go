package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sghaida/subarrays/internal/config"
	"github.com/sghaida/subarrays/internal/logging"
	"github.com/sghaida/subarrays/render"
	"github.com/sghaida/subarrays/subarray"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// options holds the raw flag values before they are merged into a config.Config.
type options struct {
	configPath string
	format     string
	workers    int
	out        string
	verbose    bool
}

// usageError marks command-line mistakes so run can map them to exitUsage.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// bindFlags registers the command flags on fs.
func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML config file")
	fs.StringVarP(&o.format, "format", "f", render.FormatText, "output format: text, json or yaml")
	fs.IntVarP(&o.workers, "workers", "w", 1, "rows enumerated concurrently (<= 1 is sequential)")
	fs.StringVarP(&o.out, "out", "o", "", "write the result atomically to this file instead of stdout")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging on stderr")
}

// resolveConfig layers defaults, the config file, positional values and explicit flags.
func resolveConfig(fs *pflag.FlagSet, o *options, args []string) (config.Config, error) {
	cfg := config.Defaults()

	if o.configPath != "" {
		fileCfg, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = config.Merge(cfg, fileCfg)
	}

	if len(args) > 0 {
		values, err := subarray.ParseInts(args)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Values = values
	}

	if fs.Changed("format") {
		cfg.Format = o.format
	}
	if fs.Changed("workers") {
		cfg.Workers = o.workers
	}
	if fs.Changed("out") {
		cfg.Out = o.out
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newRootCmd builds the cobra command writing results to stdout and diagnostics to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "subarrays [flags] [values...]",
		Short: "Print every contiguous, non-empty subarray of an integer sequence",
		Long: `subarrays enumerates the contiguous, non-empty subarrays of a sequence of
integers, ordered by start index and then by length, and prints them on one line.

Without values the sequence 1 2 3 is used. Put negative values after --.`,
		Example: `  subarrays
  subarrays 4 5 6
  subarrays --format json -- -1 0 1
  subarrays --config subarrays.yaml --out result.txt`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), &o, args)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level, stderr)
			if err != nil {
				return &subarray.InvalidInputError{Pos: -1, Token: cfg.Log.Level, Err: err}
			}
			defer func() { _ = logger.Sync() }()

			if err := execute(cmd.Context(), cfg, stdout, logger); err != nil {
				logger.Error("subarrays failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	bindFlags(cmd.Flags(), &o)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: fmt.Errorf("%w (negative values go after --)", err)}
	})
	return cmd
}

// execute enumerates cfg.Values and writes the rendered line to stdout or cfg.Out.
func execute(ctx context.Context, cfg config.Config, stdout io.Writer, logger *zap.Logger) error {
	rd, err := render.Default().Lookup(cfg.Format)
	if err != nil {
		return usageError{err: err}
	}

	logger.Debug("enumerating",
		zap.Ints("values", cfg.Values),
		zap.Int("workers", cfg.Workers),
		zap.String("format", cfg.Format))

	subs, err := subarray.EnumerateParallel(ctx, cfg.Values, cfg.Workers)
	if err != nil {
		return err
	}

	data, err := render.Bytes(rd, subs)
	if err != nil {
		return fmt.Errorf("render %s: %w", cfg.Format, err)
	}

	if cfg.Out != "" {
		if err := render.WriteFileAtomic(cfg.Out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Out, err)
		}
		logger.Debug("wrote result", zap.String("path", cfg.Out), zap.Int("subarrays", len(subs)))
		return nil
	}

	if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	logger.Debug("printed result", zap.Int("subarrays", len(subs)))
	return nil
}

// exitCode maps an error returned by the command to a process exit status.
func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue), errors.Is(err, subarray.ErrInvalidInput):
		return exitUsage
	default:
		return exitError
	}
}

// run executes the command and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "subarrays: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			_, _ = fmt.Fprintln(stderr, "usage: subarrays [flags] [values...] (see --help)")
		}
	}
	return exitCode(err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
