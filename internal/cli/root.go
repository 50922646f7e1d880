// Package cli implements the firtool command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	fir "github.com/tphakala/go-fir"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	PresetFile string

	log *slog.Logger
}

// Logger returns the command logger. Commands built without the root
// command log nowhere.
func (o *RootOptions) Logger() *slog.Logger {
	if o.log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.log
}

// NewLogger returns a text logger on w at Debug level when verbose and Warn
// otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewRootCommand creates the root command for firtool.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "firtool",
		Short: "FIR filter reference models",
		Long: `firtool runs the FIR reference models: full convolution, the streaming
Direct Form I filter, the centered ideal row model and the fixed-point
row model. It also designs Kaiser lowpass taps, manages coefficient
presets, generates and verifies test vectors and filters WAV files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.log = NewLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.PresetFile, "presets", "", "YAML preset file used by --preset")

	cmd.AddCommand(NewConvolveCommand(opts))
	cmd.AddCommand(NewStreamCommand(opts))
	cmd.AddCommand(NewIdealCommand(opts))
	cmd.AddCommand(NewFixedCommand(opts))
	cmd.AddCommand(NewDesignCommand(opts))
	cmd.AddCommand(NewPresetsCommand(opts))
	cmd.AddCommand(NewVectorsCommand(opts))
	cmd.AddCommand(NewWAVCommand(opts))

	return cmd
}

func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// tapFlags are the shared coefficient selection flags.
type tapFlags struct {
	taps       string
	preset     string
	presetTaps int
}

func (f *tapFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.taps, "taps", "", "comma-separated coefficients")
	cmd.Flags().StringVar(&f.preset, "preset", "", "named coefficient preset")
	cmd.Flags().IntVar(&f.presetTaps, "preset-taps", 3, "tap count of the built-in preset table (3 or 5)")
	cmd.MarkFlagsMutuallyExclusive("taps", "preset")
}

// resolve returns the selected coefficients. An explicit --taps list wins;
// otherwise --preset is looked up in the --presets file when one is given,
// or in the built-in tables.
func (f *tapFlags) resolve(opts *RootOptions) ([]float64, error) {
	switch {
	case f.taps != "":
		h, err := ParseSamples(f.taps)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid --taps", err)
		}
		return h, nil
	case f.preset != "" && opts.PresetFile != "":
		presets, err := fir.LoadPresetFile(opts.PresetFile)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load presets", err)
		}
		p, err := fir.FindPreset(presets, f.preset)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "unknown preset", err)
		}
		opts.Logger().Debug("preset loaded", "file", opts.PresetFile, "name", p.Name, "taps", len(p.Taps))
		return p.Taps, nil
	case f.preset != "":
		p, err := fir.LookupPreset(f.presetTaps, f.preset)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "unknown preset", err)
		}
		opts.Logger().Debug("built-in preset", "name", p.Name, "taps", len(p.Taps))
		return p.Taps, nil
	default:
		return nil, NewExitError(ExitCommandError, "either --taps or --preset is required")
	}
}

func parseInput(s string) ([]float64, error) {
	x, err := ParseSamples(s)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid --x", err)
	}
	return x, nil
}
