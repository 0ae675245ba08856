// Package main is a console demo of the sequence package.
//
// Without flags it prints the two built-in scenarios: the product of a
// short sequence with a longer, earlier-starting one, and two Trim examples.
// With -in it reads two sequences in canonical text form
// ("<len> <offset> <v0> ... <vL-1>") and prints their sum, difference,
// product and convolution.
//
//	seqdemo
//	seqdemo -in pair.txt -mode zero-extended
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/lvseq/sequence"
	"github.com/rs/zerolog"
)

func main() {
	var (
		in       = flag.String("in", "", "file holding two sequences in canonical text form (\"-\" for stdin)")
		mode     = flag.String("mode", sequence.Overlay.String(), "combine mode: overlay or zero-extended")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log := newLogger(os.Stderr, *logLevel)
	if err := run(os.Stdout, log, *in, *mode); err != nil {
		log.Error().Err(err).Msg("seqdemo failed")
		os.Exit(1)
	}
}

// newLogger returns a console zerolog logger at the named level, falling
// back to info on an unknown name.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func run(out io.Writer, log zerolog.Logger, in, modeName string) error {
	mode, err := parseMode(modeName)
	if err != nil {
		return err
	}
	if in == "" {
		log.Debug().Msg("no input, printing built-in scenarios")
		if err := printProduct(out); err != nil {
			return err
		}
		printTrims(out)

		return nil
	}

	r, closeFn, err := openInput(in)
	if err != nil {
		return err
	}
	defer closeFn()

	// one shared buffer so the first Read cannot swallow the second sequence
	r = bufio.NewReader(r)
	x, err := sequence.Read[float64](r)
	if err != nil {
		return fmt.Errorf("read first sequence: %w", err)
	}
	y, err := sequence.Read[float64](r)
	if err != nil {
		return fmt.Errorf("read second sequence: %w", err)
	}
	log.Info().
		Str("input", in).
		Int("x_len", x.Len()).Int("x_offset", x.Offset()).
		Int("y_len", y.Len()).Int("y_offset", y.Offset()).
		Stringer("mode", mode).
		Msg("sequences loaded")

	opt := sequence.WithMode(mode)
	fmt.Fprintln(out, "x =", x)
	fmt.Fprintln(out, "y =", y)
	fmt.Fprintln(out, "x + y =", sequence.Add(x, y, opt))
	fmt.Fprintln(out, "x - y =", sequence.Sub(x, y, opt))
	fmt.Fprintln(out, "x * y =", sequence.Mul(x, y, opt))
	fmt.Fprintln(out, "conv(x, y) =", sequence.ConvShifted(x, y))

	return nil
}

// printProduct multiplies five samples (one raised to 3) by ten 2's that start at n = -1.
func printProduct(out io.Writer) error {
	a := sequence.New(5, 1.0, 0)
	if err := a.Set(3, 3); err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}
	b := sequence.New(10, 2.0, -1)

	fmt.Fprintln(out, "a =", a)
	fmt.Fprintln(out, "b =", b)
	fmt.Fprintln(out, "a * b =", sequence.Mul(a, b))

	return nil
}

// printTrims shows Trim on a zero-padded and on an already tight sequence.
func printTrims(out io.Writer) {
	a := sequence.FromValues([]float64{0, 0, 0, 2, 0, 2, 0, 0}, 0)
	b := sequence.FromValues([]float64{1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1}, 0)

	fmt.Fprintln(out, "a =", a)
	fmt.Fprintln(out, "a.trim() =", a.Trim())
	fmt.Fprintln(out, "b =", b)
	fmt.Fprintln(out, "b.trim() =", b.Trim())
}

func parseMode(name string) (sequence.CombineMode, error) {
	switch name {
	case sequence.Overlay.String():
		return sequence.Overlay, nil
	case sequence.ZeroExtended.String():
		return sequence.ZeroExtended, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", name)
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
