// Command fir-demo filters a short sequence and prints the result.
//
// Usage:
//
//	fir-demo                                # x = 1,3,5  h = 0.5,0.5, full convolution
//	fir-demo -mode stream                   # one output per input sample
//	fir-demo -x 255,0,0,0 -h 0.1,0.5,0.3,0.1
//
// Output is a single line: y = [v0, v1, ..., vn]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	fir "github.com/tphakala/go-fir"
)

const (
	defaultInput = "1,3,5"
	defaultTaps  = "0.5,0.5"

	modeGolden = "golden"
	modeStream = "stream"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fir-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("x", defaultInput, "Comma-separated input samples")
	taps := fs.String("h", defaultTaps, "Comma-separated filter coefficients")
	mode := fs.String("mode", modeGolden, "Output mode: golden (N+K-1 outputs) or stream (N outputs)")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	x, err := parseList(*input)
	if err != nil {
		return fmt.Errorf("invalid -x: %w", err)
	}
	h, err := parseList(*taps)
	if err != nil {
		return fmt.Errorf("invalid -h: %w", err)
	}

	var y []float64
	switch *mode {
	case modeGolden:
		y = fir.Convolve(x, h)
	case modeStream:
		f := fir.NewWithTaps(h)
		y = make([]float64, len(x))
		for i, v := range x {
			y[i] = f.ProcessSample(v)
		}
	default:
		return fmt.Errorf("invalid -mode %q: must be %s or %s", *mode, modeGolden, modeStream)
	}

	if *verbose {
		log.New(stderr, "fir-demo: ", 0).Printf("mode=%s N=%d K=%d outputs=%d", *mode, len(x), len(h), len(y))
	}

	_, err = fmt.Fprintf(stdout, "y = %s\n", formatList(y))
	return err
}

func parseList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func formatList(y []float64) string {
	parts := make([]string, len(y))
	for i, v := range y {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
