package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/contrast"
	"github.com/jmylchreest/swatch/internal/export"
)

// contrastReport is the JSON shape of the contrast command output.
type contrastReport struct {
	Foreground  string                `json:"foreground"`
	Background  string                `json:"background"`
	Result      contrast.Result       `json:"result"`
	Target      float64               `json:"target,omitempty"`
	Suggestions []contrast.Suggestion `json:"suggestions,omitempty"`
}

// newContrastCmd represents the contrast command.
func newContrastCmd(a *app) *cobra.Command {
	var (
		target  float64
		suggest bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the WCAG contrast ratio between two colours",
		Long: `Compute the WCAG 2.x contrast ratio between a foreground and a background
colour and report which content passes:

  AAA       >= 7.0   normal text, large text, UI components
  AA        >= 4.5   normal text, large text, UI components
  AA Large  >= 3.0   large text, UI components
  Fail      <  3.0   nothing

With --suggest, black, white and a ladder of grays are tried against the
background and up to five that meet --target are listed.

Examples:
  swatch contrast "#FFFFFF" "#3B82F6"
  swatch contrast --suggest --target 7 "#777" "#3B82F6"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colour.Parse(args[0])
			if err != nil {
				return err
			}
			bg, err := colour.Parse(args[1])
			if err != nil {
				return err
			}

			report := contrastReport{
				Foreground: fg.Hex(),
				Background: bg.Hex(),
				Result:     contrast.Evaluate(fg, bg),
			}
			if suggest {
				report.Target = target
				report.Suggestions = contrast.SuggestAlternatives(bg, target)
			}
			a.logger.Debug("evaluated contrast", "fg", report.Foreground, "bg", report.Background, "ratio", report.Result.Ratio)

			w := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := export.JSON(report)
				if err != nil {
					return err
				}
				_, err = w.Write(data)
				return err
			case "text":
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}

			r := report.Result
			fmt.Fprintf(w, "Contrast ratio: %.2f:1 (%s)\n", r.RoundedRatio(), r.Level)
			fmt.Fprintf(w, "  Normal text:   %s\n", passFail(r.NormalText))
			fmt.Fprintf(w, "  Large text:    %s\n", passFail(r.LargeText))
			fmt.Fprintf(w, "  UI components: %s\n", passFail(r.UIComponents))

			if suggest {
				fmt.Fprintf(w, "\nAlternatives on %s (target %.1f:1):\n", report.Background, target)
				if len(report.Suggestions) == 0 {
					fmt.Fprintln(w, "  none found")
					return nil
				}
				t := NewTable([]string{"COLOUR", "RATIO", "LEVEL"})
				for _, s := range report.Suggestions {
					t.AddRow([]string{s.Hex, fmt.Sprintf("%.2f", s.Ratio), s.Level.String()})
				}
				fmt.Fprint(w, t.Render())
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", contrast.RatioAA, "target ratio for suggestions")
	cmd.Flags().BoolVar(&suggest, "suggest", false, "suggest accessible alternatives for the background")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")

	return cmd
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
