// Package cli provides the command-line interface for Swatch.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/export"
	"github.com/jmylchreest/swatch/internal/version"
)

// app carries state shared by every subcommand for one invocation.
type app struct {
	cfg     config.Config
	logger  hclog.Logger
	verbose bool
	quiet   bool
	noColor bool
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: hclog.NewNullLogger()}

	root := &cobra.Command{
		Use:   "swatch",
		Short: "Colour extraction, palette, gradient and contrast tooling",
		Long: `Swatch extracts dominant colours from images and turns them into palettes,
CSS gradients and accessible colour pairs.

It converts between HEX, RGB and HSL, derives colour-theory palettes
(complementary, analogous, triadic and more), synthesises linear, radial and
conic gradients, and checks WCAG contrast ratios.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colour previews")

	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newPaletteCmd(a))
	root.AddCommand(newGradientCmd(a))
	root.AddCommand(newContrastCmd(a))
	root.AddCommand(newConvertCmd(a))

	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	level := hclog.LevelFromString(cfg.LogLevel)
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}

	a.logger = newLogger(cmd.ErrOrStderr(), level)
	colour.DisableColourOutput = a.noColor
	return nil
}

func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: w,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

// newVersionCmd represents the version command.
func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text":
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			case "json":
				data, err := export.JSON(version.GetInfo())
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

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}
