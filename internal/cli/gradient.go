package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/export"
	"github.com/jmylchreest/swatch/internal/gradient"
)

// newGradientCmd represents the gradient command.
func newGradientCmd(a *app) *cobra.Command {
	var (
		colours    colourList
		name       string
		maxCount   int
		variations bool
		format     string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "gradient [colour]...",
		Short: "Generate CSS gradients from a list of colours",
		Long: `Generate a collection of linear, radial and conic gradients from two or
more colours. Colours may be given as arguments, with --colours, or both.

Examples:
  # Gradients from three colours
  swatch gradient "#FF0000" "#00FF00" "#0000FF"

  # Named collection without directional variations, as SCSS
  swatch gradient --colours "#1E1E2E,#F38BA8" --name sunset --variations=false --format scss`,
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := append([]string{}, colours.texts...)
			for _, arg := range args {
				texts = append(texts, splitColours(arg)...)
			}

			opts := a.cfg.GradientOptions(name)
			if cmd.Flags().Changed("max") {
				opts.MaxCount = maxCount
			}
			if cmd.Flags().Changed("variations") {
				opts.IncludeVariations = variations
			}

			collection, err := gradient.NewCollection(name, texts, opts)
			if err != nil {
				return err
			}
			a.logger.Debug("generated gradients", "collection", collection.Name, "count", collection.Len())

			if format == "text" {
				t := NewTable([]string{"NAME", "TYPE", "CSS"})
				for _, g := range collection.Gradients {
					t.AddRow([]string{g.Name(), string(g.Type()), g.CSS()})
				}
				return writeOutput(cmd, a.logger, output, []byte(t.Render()))
			}

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := export.Collection(collection, f)
			if err != nil {
				return err
			}
			return writeOutput(cmd, a.logger, output, data)
		},
	}

	cmd.Flags().Var(&colours, "colours", "colours to use (comma-separated or repeated)")
	cmd.Flags().StringVarP(&name, "name", "n", gradient.DefaultName, "collection name")
	cmd.Flags().IntVar(&maxCount, "max", gradient.DefaultMaxCount, "maximum number of gradients")
	cmd.Flags().BoolVar(&variations, "variations", true, "include directional variations")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, css, scss)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout; .xz/.gz suffix compresses)")

	return cmd
}
