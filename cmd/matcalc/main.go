// Command matcalc reads two integer matrices from standard input and prints
// their product, sum, difference, a power of the first and a scaled copy of
// the first, one decorated block after another.
//
// Usage:
//
//	matcalc [flags] < input.txt
//
// Input is whitespace-delimited: rows*cols values for A, then rows*cols
// values for B, both in row-major order.
//
// Examples:
//
//	# Two 3x3 matrices, A^2 and 3*A (defaults)
//	printf '1 2 3 4 5 6 7 8 9\n9 8 7 6 5 4 3 2 1\n' | matcalc
//
//	# Two 2x2 matrices, A^5 and -1*A
//	printf '1 1 1 0 2 0 0 2' | matcalc -rows 2 -cols 2 -power 5 -scale -1
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvmat/matrix"
)

// Config holds the command configuration.
type Config struct {
	Rows     int
	Cols     int
	Power    int
	Scale    int64
	LogLevel string
}

// errUsage marks flag errors that were already reported by the FlagSet.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "matcalc:", err)
		}
		os.Exit(1)
	}
}

// parseConfig binds flags onto a Config; defaults mirror a 3x3 run with A^2 and 3*A.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Rows, "rows", 3, "Rows of each input matrix")
	fs.IntVar(&cfg.Cols, "cols", 3, "Columns of each input matrix")
	fs.IntVar(&cfg.Power, "power", 2, "Exponent applied to A (requires rows == cols)")
	fs.Int64Var(&cfg.Scale, "scale", 3, "Scalar multiplied into A")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return cfg, errUsage
	}

	return cfg, nil
}

// newLogger builds a text slog.Logger on w at the named level.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// run is main without the process exit, so it can be driven from tests.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	logger.Debug("config", "rows", cfg.Rows, "cols", cfg.Cols, "power", cfg.Power, "scale", cfg.Scale)

	in := bufio.NewReader(stdin)
	a, err := matrix.ParseDense[int64](in, cfg.Rows, cfg.Cols)
	if err != nil {
		return fmt.Errorf("reading A: %w", err)
	}
	b, err := matrix.ParseDense[int64](in, cfg.Rows, cfg.Cols)
	if err != nil {
		return fmt.Errorf("reading B: %w", err)
	}
	logger.Info("matrices read", "rows", cfg.Rows, "cols", cfg.Cols)

	out := bufio.NewWriter(stdout)
	steps := []struct {
		label string
		eval  func() (*matrix.Dense[int64], error)
	}{
		{"A * B", func() (*matrix.Dense[int64], error) { return a.Mul(b) }},
		{"A + B", func() (*matrix.Dense[int64], error) { return a.Add(b) }},
		{"A - B", func() (*matrix.Dense[int64], error) { return a.Sub(b) }},
		{fmt.Sprintf("A ^ %d", cfg.Power), func() (*matrix.Dense[int64], error) { return a.Pow(cfg.Power) }},
		{fmt.Sprintf("A * %d", cfg.Scale), func() (*matrix.Dense[int64], error) { return a.Scale(cfg.Scale) }},
	}
	for _, st := range steps {
		res, err := st.eval()
		if err != nil {
			// One failed operation (e.g. A*B on non-square input) does not hide the rest.
			logger.Warn("operation skipped", "op", st.label, "err", err)
			fmt.Fprintf(out, "%s: %v\n", st.label, err)
			continue
		}
		fmt.Fprintf(out, "%s:\n", st.label)
		if _, err = res.WriteTo(out); err != nil {
			return err
		}
	}

	return out.Flush()
}
