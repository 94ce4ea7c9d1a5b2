package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxygene76/cometmag/pkg/lightcurve"
)

func plotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw pre- and post-perihelion light curves for every Oort group",
		Long: `Draw the magnitude versus heliocentric distance for the new, int and old
groups in two panels, annotated with their brightening slopes.

The output defaults to the plot.output config value. "display" writes a PNG
to the temp directory and opens it in the system image viewer; png, pdf and
svg write to --file (default heliocentric_lightcurves.<format>).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := config.Plot.Output
			if cmd.Flags().Changed("output") {
				output, _ = cmd.Flags().GetString("output")
			}
			file := config.Plot.File
			if cmd.Flags().Changed("file") {
				file, _ = cmd.Flags().GetString("file")
			}

			plotter := lightcurve.NewPlotter(model, config.RenderOptions(), logger)
			path, err := plotter.Output(output, file)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", lightcurve.OutputDisplay, "Output (display, png, pdf, svg)")
	cmd.Flags().StringP("file", "f", "", "Output file for png, pdf and svg")

	return cmd
}
