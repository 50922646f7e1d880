package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/go-fir/internal/wavio"
)

// WAVResult is the JSON payload of the wav command.
type WAVResult struct {
	Input      string `json:"input"`
	Output     string `json:"output"`
	SampleRate int    `json:"sample_rate"`
	BitDepth   int    `json:"bit_depth"`
	Channels   int    `json:"channels"`
	Frames     int    `json:"frames"`
	Taps       int    `json:"taps"`
}

// NewWAVCommand creates the wav command.
func NewWAVCommand(rootOpts *RootOptions) *cobra.Command {
	var tf tapFlags
	var parallel bool

	cmd := &cobra.Command{
		Use:   "wav <input.wav> <output.wav>",
		Short: "Filter every channel of a PCM WAV file",
		Long: `Filter every channel of a PCM WAV file.

Each channel gets its own filter with its own delay line. Output keeps the
input sample rate and bit depth; samples are clamped to full scale.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := tf.resolve(rootOpts)
			if err != nil {
				return err
			}

			clip, err := wavio.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "read failed", err)
			}
			rootOpts.Logger().Debug("input",
				"rate", clip.SampleRate, "bits", clip.BitDepth,
				"channels", len(clip.Channels), "frames", clip.Frames())

			out, err := wavio.FilterClip(cmd.Context(), clip, h, parallel)
			if err != nil {
				return WrapExitError(ExitCommandError, "filtering failed", err)
			}
			if err := wavio.WriteFile(args[1], out); err != nil {
				return WrapExitError(ExitCommandError, "write failed", err)
			}

			text := fmt.Sprintf("filtered %d channels x %d frames with %d taps -> %s\n",
				len(out.Channels), out.Frames(), len(h), args[1])
			return formatter(rootOpts, cmd).Emit(text, WAVResult{
				Input:      args[0],
				Output:     args[1],
				SampleRate: out.SampleRate,
				BitDepth:   out.BitDepth,
				Channels:   len(out.Channels),
				Frames:     out.Frames(),
				Taps:       len(h),
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	tf.register(cmd)
	cmd.Flags().BoolVar(&parallel, "parallel", true, "filter channels concurrently")
	return cmd
}
