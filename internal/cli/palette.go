package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/export"
	"github.com/jmylchreest/swatch/internal/palette"
)

// newPaletteCmd represents the palette command.
func newPaletteCmd(a *app) *cobra.Command {
	var (
		scheme  string
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "palette <colour>",
		Short: "Derive colour-theory palettes from a base colour",
		Long: `Derive palettes from a base colour by rotating its hue and varying its
saturation and lightness.

Schemes: monochromatic, complementary, analogous, triadic, split-complementary

Examples:
  # All schemes for a colour
  swatch palette "#3B82F6"

  # Only the triadic scheme, as JSON
  swatch palette --scheme triadic --format json "rgb(59, 130, 246)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := colour.Parse(args[0])
			if err != nil {
				return err
			}

			var palettes []palette.Palette
			if scheme == "all" {
				palettes = palette.Generate(base)
			} else {
				s, err := palette.ParseScheme(scheme)
				if err != nil {
					return err
				}
				p, err := palette.ForScheme(s, base)
				if err != nil {
					return err
				}
				palettes = []palette.Palette{p}
			}
			a.logger.Debug("generated palettes", "base", base.Hex(), "count", len(palettes))

			switch format {
			case "text":
				w := cmd.OutOrStdout()
				show := previewEnabled(cmd, preview)
				for i, p := range palettes {
					if i > 0 {
						fmt.Fprintln(w)
					}
					fmt.Fprintf(w, "%s:\n", p.Name)
					for _, c := range p.Colors {
						swatchLine(w, c.Color, show, fmt.Sprintf("%-16s  ", c.HSL().String()))
					}
				}
				return nil
			case "json":
				data, err := export.JSON(palettes)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&scheme, "scheme", "s", "all", "palette scheme to generate (or 'all')")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in terminal")

	return cmd
}
