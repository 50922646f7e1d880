package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	fir "github.com/tphakala/go-fir"
	"github.com/tphakala/go-fir/internal/golden"
)

// Streaming realizations selectable with --impl.
const (
	implDirect = "direct"
	implRing   = "ring"
	implBlock  = "block"
)

// FilterResult is the JSON payload of the filtering commands.
type FilterResult struct {
	X []float64 `json:"x"`
	H []float64 `json:"h"`
	Y []float64 `json:"y"`
}

// FixedResult is the JSON payload of the fixed command.
type FixedResult struct {
	X      []float64          `json:"x"`
	H      []float64          `json:"h"`
	HQ     []int64            `json:"h_q"`
	Y      []int              `json:"y"`
	Params golden.FixedParams `json:"params"`
}

// NewConvolveCommand creates the convolve command.
func NewConvolveCommand(rootOpts *RootOptions) *cobra.Command {
	var x string
	var tf tapFlags

	cmd := &cobra.Command{
		Use:   "convolve",
		Short: "Full linear convolution of x and the taps (N+K-1 outputs)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInput(x)
			if err != nil {
				return err
			}
			h, err := tf.resolve(rootOpts)
			if err != nil {
				return err
			}

			y := fir.Convolve(xs, h)
			rootOpts.Logger().Debug("convolve", "n", len(xs), "k", len(h), "outputs", len(y))
			return formatter(rootOpts, cmd).Emit("y = "+FormatSamples(y)+"\n", FilterResult{X: xs, H: h, Y: y})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&x, "x", "", "comma-separated input samples")
	tf.register(cmd)
	return cmd
}

// NewStreamCommand creates the stream command.
func NewStreamCommand(rootOpts *RootOptions) *cobra.Command {
	var x, impl string
	var tf tapFlags

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Feed x through a streaming filter, one output per input",
		Long: `Feed x through a streaming filter, one output per input.

--impl selects the realization: direct (shifted register), ring (circular
buffer, identical output) or block (SIMD block convolution, equal within
floating-point tolerance).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInput(x)
			if err != nil {
				return err
			}
			h, err := tf.resolve(rootOpts)
			if err != nil {
				return err
			}

			var y []float64
			switch impl {
			case implDirect:
				y = fir.NewWithTaps(h).ProcessBlock(xs)
			case implRing:
				y = fir.NewRingFilter(h).ProcessBlock(xs)
			case implBlock:
				y = fir.NewBlockFilter(h).Process(xs)
			default:
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid --impl %q: must be one of %s, %s, %s", impl, implDirect, implRing, implBlock))
			}

			rootOpts.Logger().Debug("stream", "impl", impl, "n", len(xs), "k", len(h))
			return formatter(rootOpts, cmd).Emit("y = "+FormatSamples(y)+"\n", FilterResult{X: xs, H: h, Y: y})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&x, "x", "", "comma-separated input samples")
	cmd.Flags().StringVar(&impl, "impl", implDirect, "filter realization (direct|ring|block)")
	tf.register(cmd)
	return cmd
}

// NewIdealCommand creates the ideal command.
func NewIdealCommand(rootOpts *RootOptions) *cobra.Command {
	var x string
	var tf tapFlags

	cmd := &cobra.Command{
		Use:   "ideal",
		Short: "Centered floating-point row model with input clamped to [0, 255]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInput(x)
			if err != nil {
				return err
			}
			h, err := tf.resolve(rootOpts)
			if err != nil {
				return err
			}

			y, err := golden.Ideal(xs, h)
			if err != nil {
				return WrapExitError(ExitCommandError, "ideal model failed", err)
			}
			return formatter(rootOpts, cmd).Emit("y = "+FormatSamples(y)+"\n", FilterResult{X: xs, H: h, Y: y})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&x, "x", "", "comma-separated input samples")
	tf.register(cmd)
	return cmd
}

// NewFixedCommand creates the fixed command.
func NewFixedCommand(rootOpts *RootOptions) *cobra.Command {
	var x string
	var tf tapFlags
	params := golden.DefaultFixedParams()

	cmd := &cobra.Command{
		Use:   "fixed",
		Short: "Fixed-point row model with wrapping accumulator and saturated 8-bit output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInput(x)
			if err != nil {
				return err
			}
			h, err := tf.resolve(rootOpts)
			if err != nil {
				return err
			}

			hq, err := golden.QuantizeTaps(h, params)
			if err != nil {
				return WrapExitError(ExitCommandError, "fixed model failed", err)
			}
			y, err := golden.Fixed(xs, h, params)
			if err != nil {
				return WrapExitError(ExitCommandError, "fixed model failed", err)
			}

			ys := make([]int, len(y))
			for i, v := range y {
				ys[i] = int(v)
			}

			rootOpts.Logger().Debug("fixed", "frac_bits", params.FracBits, "acc_bits", params.AccBits,
				"coeff_bits", params.CoeffBits)
			text := "h_q = " + FormatInts(hq) + "\ny = " + FormatInts(y) + "\n"
			return formatter(rootOpts, cmd).Emit(text, FixedResult{X: xs, H: h, HQ: hq, Y: ys, Params: params})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&x, "x", "", "comma-separated input samples")
	cmd.Flags().IntVar(&params.FracBits, "frac-bits", params.FracBits, "coefficient fractional bits")
	cmd.Flags().IntVar(&params.AccBits, "acc-bits", params.AccBits, "accumulator width in bits")
	cmd.Flags().IntVar(&params.CoeffBits, "coeff-bits", params.CoeffBits, "coefficient width in bits (8|16|32|64)")
	tf.register(cmd)
	return cmd
}
