package cli

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/go-fir/internal/filter"
	"github.com/tphakala/go-fir/internal/mathutil"
)

const (
	defaultCutoff      = 0.25
	defaultAttenuation = 60.0
	defaultTransition  = 0.05
	defaultGain        = 1.0
)

// DesignResult is the JSON payload of the design command.
type DesignResult struct {
	NumTaps     int       `json:"num_taps"`
	Beta        float64   `json:"beta"`
	Cutoff      float64   `json:"cutoff"`
	Attenuation float64   `json:"attenuation"`
	Taps        []float64 `json:"taps"`
}

// NewDesignCommand creates the design command.
func NewDesignCommand(rootOpts *RootOptions) *cobra.Command {
	var numTaps int
	var cutoff, attenuation, transition, gain float64

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Design Kaiser-windowed sinc lowpass taps",
		Long: `Design Kaiser-windowed sinc lowpass taps.

Frequencies are normalized to the sample rate (0.5 is Nyquist). With
--num-taps 0 the length is estimated from --attenuation and --transition.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				taps []float64
				err  error
			)
			if numTaps > 0 {
				taps, err = filter.LowPass(filter.Params{
					NumTaps:     numTaps,
					Cutoff:      cutoff,
					Attenuation: attenuation,
					Gain:        gain,
				})
			} else {
				taps, err = filter.LowPassAuto(cutoff, transition, attenuation, gain)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "design failed", err)
			}

			beta := mathutil.KaiserBeta(attenuation)
			rootOpts.Logger().Debug("lowpass designed",
				"taps", len(taps),
				"beta", beta,
				"passband_db", filter.MagnitudeDB(taps, 0),
				"nyquist_db", filter.MagnitudeDB(taps, 0.5))

			return formatter(rootOpts, cmd).Emit("h = "+FormatSamples(taps)+"\n", DesignResult{
				NumTaps:     len(taps),
				Beta:        beta,
				Cutoff:      cutoff,
				Attenuation: attenuation,
				Taps:        taps,
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&numTaps, "num-taps", 0, "filter length (odd); 0 estimates it")
	cmd.Flags().Float64Var(&cutoff, "cutoff", defaultCutoff, "normalized cutoff frequency in (0, 0.5)")
	cmd.Flags().Float64Var(&attenuation, "attenuation", defaultAttenuation, "stopband attenuation in dB")
	cmd.Flags().Float64Var(&transition, "transition", defaultTransition, "normalized transition width used to estimate length")
	cmd.Flags().Float64Var(&gain, "gain", defaultGain, "DC gain (sum of taps)")
	return cmd
}
