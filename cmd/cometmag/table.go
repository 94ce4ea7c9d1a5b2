package main

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
	astromath "github.com/oxygene76/cometmag/pkg/astronomy/math"
)

func tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print magnitudes for every group and arc as CSV",
		Long: `Print a CSV table of magnitudes over a log-uniform grid of heliocentric
distances, one column per Oort group and orbital arc.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			minR, _ := cmd.Flags().GetFloat64("min")
			maxR, _ := cmd.Flags().GetFloat64("max")
			points, _ := cmd.Flags().GetInt("points")

			distances, err := astromath.LogSpace(minR, maxR, points)
			if err != nil {
				return err
			}

			header := []string{"distance_au"}
			columns := make([][]float64, 0, len(brightness.Groups)*len(brightness.Arcs))
			for _, g := range brightness.Groups {
				for _, a := range brightness.Arcs {
					mags, err := model.EvaluateSeries(distances, a, g)
					if err != nil {
						return err
					}
					header = append(header, fmt.Sprintf("%s_%s", g, a))
					columns = append(columns, mags)
				}
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			if err := w.Write(header); err != nil {
				return err
			}
			for i, d := range distances {
				record := []string{strconv.FormatFloat(d, 'f', 4, 64)}
				for _, col := range columns {
					record = append(record, strconv.FormatFloat(col[i], 'f', 4, 64))
				}
				if err := w.Write(record); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		},
	}

	cmd.Flags().Float64("min", 1, "Smallest distance in AU")
	cmd.Flags().Float64("max", 10, "Largest distance in AU")
	cmd.Flags().Int("points", 10, "Number of log-spaced distances")

	return cmd
}
