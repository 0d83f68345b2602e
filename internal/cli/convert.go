package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/export"
)

// newConvertCmd represents the convert command.
func newConvertCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert colours between HEX, RGB and HSL",
		Long: `Print each colour in HEX, RGB and HSL notation with its nearest name.

Accepted input: #RGB, #RRGGBB (the # is optional) and rgb(r, g, b).

Examples:
  swatch convert "#3B82F6" f80 "rgb(16, 185, 129)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := colour.ParseAll(args)
			if err != nil {
				return err
			}
			a.logger.Trace("converting colours", "count", len(colors))

			w := cmd.OutOrStdout()
			switch format {
			case "text":
				t := NewTable([]string{"HEX", "RGB", "HSL", "NAME"})
				for _, c := range colors {
					t.AddRow([]string{c.Hex(), c.String(), c.HSL().String(), c.Name()})
				}
				fmt.Fprint(w, t.Render())
				return nil
			case "json":
				swatches := make([]colour.Swatch, len(colors))
				for i, c := range colors {
					swatches[i] = colour.NewSwatch(c)
				}
				data, err := export.JSON(swatches)
				if err != nil {
					return err
				}
				_, err = w.Write(data)
				return err
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}
