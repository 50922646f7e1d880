package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fir "github.com/tphakala/go-fir"
	"github.com/tphakala/go-fir/internal/vectors"
)

// VerifyResult is the JSON payload of vectors verify.
type VerifyResult struct {
	RunID      string   `json:"run_id"`
	Cases      int      `json:"cases"`
	Mismatches []string `json:"mismatches,omitempty"`
}

// NewVectorsCommand creates the vectors command group.
func NewVectorsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Generate and verify test-vector manifests",
	}

	cmd.AddCommand(newVectorsGenerateCommand(rootOpts))
	cmd.AddCommand(newVectorsVerifyCommand(rootOpts))
	return cmd
}

func newVectorsGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := vectors.DefaultConfig()
	var signals string

	cmd := &cobra.Command{
		Use:   "generate <manifest.json>",
		Short: "Generate a test-vector manifest",
		Long: `Generate a test-vector manifest.

Each selected signal is filtered with every preset (the built-in 3-tap and
5-tap tables, or the --presets file) through the convolution, streaming,
ideal and fixed-point models.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if signals != "" {
				cfg.Signals = strings.Split(signals, listSeparator)
				for i := range cfg.Signals {
					cfg.Signals[i] = strings.TrimSpace(cfg.Signals[i])
				}
			}
			if rootOpts.PresetFile != "" {
				presets, err := fir.LoadPresetFile(rootOpts.PresetFile)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to load presets", err)
				}
				cfg.Presets = presets
			}

			m, err := vectors.Generate(cfg)
			if err != nil {
				return WrapExitError(ExitCommandError, "generation failed", err)
			}
			if err := vectors.WriteManifest(args[0], m); err != nil {
				return WrapExitError(ExitCommandError, "write failed", err)
			}

			rootOpts.Logger().Info("manifest written", "path", args[0], "run_id", m.RunID, "cases", len(m.Cases))
			text := fmt.Sprintf("wrote %d cases to %s\n", len(m.Cases), args[0])
			return formatter(rootOpts, cmd).Emit(text, VerifyResult{RunID: m.RunID, Cases: len(m.Cases)})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&cfg.Length, "length", cfg.Length, "samples per input row")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "noise seed")
	cmd.Flags().StringVar(&signals, "signals", "", "comma-separated signals (default all: "+strings.Join(vectors.AllSignals, ",")+")")
	cmd.Flags().IntVar(&cfg.Fixed.FracBits, "frac-bits", cfg.Fixed.FracBits, "coefficient fractional bits")
	cmd.Flags().IntVar(&cfg.Fixed.AccBits, "acc-bits", cfg.Fixed.AccBits, "accumulator width in bits")
	cmd.Flags().IntVar(&cfg.Fixed.CoeffBits, "coeff-bits", cfg.Fixed.CoeffBits, "coefficient width in bits")
	return cmd
}

func newVectorsVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	tol := vectors.DefaultTolerance

	cmd := &cobra.Command{
		Use:   "verify <manifest.json>",
		Short: "Recompute a manifest and report mismatches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := vectors.ReadManifestFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "read failed", err)
			}

			report, err := vectors.Verify(m, tol)
			if err != nil {
				return WrapExitError(ExitCommandError, "verification failed", err)
			}

			result := VerifyResult{RunID: m.RunID, Cases: report.Cases}
			var text strings.Builder
			for _, mm := range report.Mismatches {
				result.Mismatches = append(result.Mismatches, mm.String())
				rootOpts.Logger().Warn("mismatch", "case", mm.Case, "field", mm.Field, "index", mm.Index)
				fmt.Fprintf(&text, "MISMATCH %s\n", mm)
			}
			if report.OK() {
				fmt.Fprintf(&text, "%d cases verified\n", report.Cases)
			}

			if err := formatter(rootOpts, cmd).Emit(text.String(), result); err != nil {
				return err
			}
			if !report.OK() {
				return NewExitError(ExitFailure, fmt.Sprintf("%d mismatches", len(report.Mismatches)))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Float64Var(&tol, "tolerance", tol, "tolerance for floating-point rows")
	return cmd
}
