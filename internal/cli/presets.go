package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fir "github.com/tphakala/go-fir"
)

// NewPresetsCommand creates the presets command.
func NewPresetsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List coefficient presets",
		Long: `List coefficient presets.

Without --presets the built-in 3-tap and 5-tap tables are listed. With
--presets the YAML file is validated and its entries are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var presets []fir.Preset
			if rootOpts.PresetFile != "" {
				loaded, err := fir.LoadPresetFile(rootOpts.PresetFile)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to load presets", err)
				}
				rootOpts.Logger().Debug("presets loaded", "file", rootOpts.PresetFile, "count", len(loaded))
				presets = loaded
			} else {
				presets = append(append(presets, fir.Presets3Tap...), fir.Presets5Tap...)
			}

			var text strings.Builder
			for _, p := range presets {
				fmt.Fprintf(&text, "%s[%d] = %s\n", p.Name, len(p.Taps), FormatSamples(p.Taps))
			}
			return formatter(rootOpts, cmd).Emit(text.String(), presets)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	return cmd
}
