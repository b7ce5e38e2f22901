// Command parfill fills a buffer with the configured value source and
// reports how long it took.
//
// Usage:
//
//	parfill --thread=<single|multi> <length>
//
// Optional settings are read from the yaml file named by $PARFILL_CONFIG.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"time"

	"github.com/arloliu/parfill"
	"github.com/arloliu/parfill/input"
	"github.com/arloliu/parfill/internal/hash"
	"github.com/arloliu/parfill/internal/logging"
	"github.com/arloliu/parfill/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// configEnv names the environment variable holding the config file path.
const configEnv = "PARFILL_CONFIG"

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

var errVerifyMismatch = errors.New("parallel fill differs from sequential fill")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr, os.Getenv)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "parfill: %v\n", err)
		if errors.Is(err, parfill.ErrValidation) {
			fmt.Fprintf(os.Stderr, "usage: %s\n", cmd.Use)
		}
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if errors.Is(err, parfill.ErrValidation) {
		return exitUsage
	}

	return exitFailure
}

// newRootCmd builds the parfill command.
//
// Flag parsing is disabled: the raw arguments, prefixed with the program
// name, go through the input validator so that exactly one argument form
// is accepted.
func newRootCmd(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   "parfill --thread=<single|multi> <length>",
		Short: "Fill a buffer sequentially or in parallel and time it",
		Long: `Fill a buffer of <length> integers with value_at(i) for every index i.

--thread=single fills the buffer on one goroutine; --thread=multi splits it
into contiguous partitions filled concurrently. Further settings (workers,
strategy, value source, verification, output file, metrics textfile) are
read from the yaml file named by $` + configEnv + `.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := append([]string{cmd.Name()}, args...)

			return run(cmd.Context(), argv, getenv(configEnv), stdout, stderr)
		},
	}
}

// run validates argv, fills the buffer, and writes the report.
func run(ctx context.Context, argv []string, configPath string, stdout, stderr io.Writer) error {
	fc, err := input.Parse(argv)
	if err != nil {
		return err
	}

	cfg := parfill.DefaultConfig()
	if configPath != "" {
		if cfg, err = parfill.LoadConfig(configPath); err != nil {
			return err
		}
	}
	cfg.Mode = fc.Mode

	logger, err := logging.NewSlogText(stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", parfill.ErrInvalidConfig, err)
	}

	src, err := parfill.NewSource(cfg.Source)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, cfg.Metrics.Namespace)

	f, err := parfill.NewFiller(&cfg, src,
		parfill.WithLogger(logger),
		parfill.WithMetrics(collector),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	buf, err := f.Run(ctx, fc)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	sum := hash.Digest(buf)
	// Elapsed time in nanoseconds.
	fmt.Fprintf(stdout, "Filling time: %.8f\n", float64(elapsed.Nanoseconds()))
	fmt.Fprintf(stdout, "Checksum: %016x\n", sum)

	if cfg.Verify {
		if err := verify(ctx, f, buf, sum); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Verified: sequential fill matches")
	}

	if cfg.Output != "" {
		if err := writeBuffer(cfg.Output, buf); err != nil {
			return err
		}
		logger.Info("buffer written", "path", cfg.Output, "length", len(buf))
	}

	if cfg.Metrics.Textfile != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics.Textfile, reg); err != nil {
			return fmt.Errorf("write metrics %s: %w", cfg.Metrics.Textfile, err)
		}
	}

	return nil
}

// verify fills a second buffer sequentially and compares it with buf.
func verify(ctx context.Context, f *parfill.Filler, buf []int, sum uint64) error {
	ref := make([]int, len(buf))
	if err := f.FillSequential(ctx, ref); err != nil {
		return fmt.Errorf("reference fill: %w", err)
	}

	if refSum := hash.Digest(ref); refSum != sum || !slices.Equal(ref, buf) {
		return fmt.Errorf("%w: checksum %016x, want %016x", errVerifyMismatch, sum, refSum)
	}

	return nil
}

// writeBuffer writes every value followed by a space, then a newline.
func writeBuffer(path string, buf []int) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriterSize(file, 1<<16)
	scratch := make([]byte, 0, 24)
	for _, v := range buf {
		scratch = strconv.AppendInt(scratch[:0], int64(v), 10)
		scratch = append(scratch, ' ')
		if _, err := w.Write(scratch); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	return nil
}
