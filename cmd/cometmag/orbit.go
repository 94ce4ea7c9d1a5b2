package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oxygene76/cometmag/internal/types"
	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
	"github.com/oxygene76/cometmag/pkg/astronomy/orbital"
)

func orbitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Evaluate the magnitude at a position given by orbital elements",
		Long: `Compute the heliocentric distance and orbital arc from Keplerian elements
and evaluate the magnitude there. Give either --semi-major-axis or
--perihelion. A negative mean anomaly (or one in (180, 360) degrees) is
before perihelion.

Example:
  cometmag orbit --perihelion 1.2 --eccentricity 0.95 --mean-anomaly -0.5 --group new`,
		Args: cobra.NoArgs,
		RunE: runOrbit,
	}

	cmd.Flags().Float64("semi-major-axis", 0, "Semi-major axis in AU")
	cmd.Flags().Float64("perihelion", 0, "Perihelion distance in AU")
	cmd.Flags().Float64("eccentricity", 0, "Eccentricity (0 <= e < 1)")
	cmd.Flags().Float64("mean-anomaly", 0, "Mean anomaly in degrees, 0 at perihelion")
	cmd.Flags().String("group", brightness.GroupNew.String(), "Oort group (new, int, old)")
	cmd.Flags().Float64("observer-distance", 0, "Observer distance in AU for the apparent magnitude")
	cmd.Flags().String("format", formatText, "Output format (text, json, yaml)")
	cmd.MarkFlagsMutuallyExclusive("semi-major-axis", "perihelion")
	cmd.MarkFlagsOneRequired("semi-major-axis", "perihelion")

	return cmd
}

func runOrbit(cmd *cobra.Command, args []string) error {
	a, _ := cmd.Flags().GetFloat64("semi-major-axis")
	q, _ := cmd.Flags().GetFloat64("perihelion")
	e, _ := cmd.Flags().GetFloat64("eccentricity")
	meanAnomalyDeg, _ := cmd.Flags().GetFloat64("mean-anomaly")
	groupName, _ := cmd.Flags().GetString("group")
	observer, _ := cmd.Flags().GetFloat64("observer-distance")
	format, _ := cmd.Flags().GetString("format")

	group, err := brightness.ParseOortGroup(groupName)
	if err != nil {
		return err
	}

	meanAnomaly := meanAnomalyDeg * math.Pi / 180
	oe := orbital.OrbitalElements{SemiMajorAxis: a, Eccentricity: e, MeanAnomaly: meanAnomaly}
	if cmd.Flags().Changed("perihelion") {
		oe = orbital.FromPerihelion(q, e, meanAnomaly)
	}
	if err := oe.Validate(); err != nil {
		return fmt.Errorf("invalid orbital elements: %w", err)
	}

	r := oe.HeliocentricDistance()
	arc := oe.Arc()
	mag, err := model.Evaluate(r, arc, group)
	if err != nil {
		return err
	}

	result := types.OrbitEvaluation{
		Evaluation: types.Evaluation{
			Distance:  r,
			Arc:       arc.String(),
			Group:     group.String(),
			Magnitude: mag,
		},
		SemiMajorAxis: oe.SemiMajorAxis,
		Eccentricity:  oe.Eccentricity,
		MeanAnomaly:   meanAnomalyDeg,
		Perihelion:    oe.GetPerihelion(),
	}
	if cmd.Flags().Changed("observer-distance") {
		apparent, err := brightness.ApparentMagnitude(mag, observer)
		if err != nil {
			return err
		}
		result.ObserverDistance = observer
		result.ApparentMagnitude = &apparent
	}
	logger.Debug("Orbit position",
		zap.Float64("r_au", r),
		zap.Stringer("arc", arc),
		zap.Float64("perihelion_au", result.Perihelion))

	return writeOutput(cmd.OutOrStdout(), format, result, func(tw *tabwriter.Writer) error {
		fmt.Fprintf(tw, "distance\t%.4f AU\n", result.Distance)
		fmt.Fprintf(tw, "arc\t%s\n", result.Arc)
		fmt.Fprintf(tw, "group\t%s\n", result.Group)
		fmt.Fprintf(tw, "magnitude\t%.4f\n", result.Magnitude)
		if result.ApparentMagnitude != nil {
			fmt.Fprintf(tw, "apparent magnitude\t%.4f\n", *result.ApparentMagnitude)
		}
		return nil
	})
}
