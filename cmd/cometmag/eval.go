package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oxygene76/cometmag/internal/types"
	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
)

func evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval distance [distance...]",
		Short: "Evaluate the magnitude at one or more heliocentric distances",
		Long: `Evaluate the total heliocentric magnitude at each distance (AU).
With --observer-distance the apparent magnitude is printed as well.

Example:
  cometmag eval 1 3 10 --arc inbound --group new`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}

	cmd.Flags().String("arc", brightness.ArcInbound.String(), "Orbital arc (inbound, outbound)")
	cmd.Flags().String("group", brightness.GroupNew.String(), "Oort group (new, int, old)")
	cmd.Flags().String("format", formatText, "Output format (text, json, yaml)")
	cmd.Flags().Float64("observer-distance", 0, "Observer distance in AU for the apparent magnitude")

	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	arcName, _ := cmd.Flags().GetString("arc")
	groupName, _ := cmd.Flags().GetString("group")
	format, _ := cmd.Flags().GetString("format")
	observer, _ := cmd.Flags().GetFloat64("observer-distance")
	withObserver := cmd.Flags().Changed("observer-distance")

	distances := make([]float64, len(args))
	for i, arg := range args {
		d, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid distance %q: %w", arg, err)
		}
		distances[i] = d
	}

	group, err := brightness.ParseOortGroup(groupName)
	if err != nil {
		return err
	}
	arc, err := brightness.ParseOrbitalArc(arcName)
	if err != nil {
		return err
	}

	mags, err := model.EvaluateSeries(distances, arc, group)
	if err != nil {
		return err
	}

	results := make([]types.Evaluation, len(distances))
	for i, d := range distances {
		results[i] = types.Evaluation{
			Distance:  d,
			Arc:       arc.String(),
			Group:     group.String(),
			Magnitude: mags[i],
		}
		if withObserver {
			apparent, err := brightness.ApparentMagnitude(mags[i], observer)
			if err != nil {
				return err
			}
			results[i].ObserverDistance = observer
			results[i].ApparentMagnitude = &apparent
		}
	}
	logger.Debug("Evaluated distances",
		zap.Int("count", len(results)),
		zap.Stringer("arc", arc),
		zap.Stringer("group", group))

	return writeOutput(cmd.OutOrStdout(), format, results, func(tw *tabwriter.Writer) error {
		header := "DISTANCE_AU\tARC\tGROUP\tMAG"
		if withObserver {
			header += "\tAPPARENT_MAG"
		}
		fmt.Fprintln(tw, header)
		for _, r := range results {
			line := fmt.Sprintf("%s\t%s\t%s\t%.4f", formatFloat(r.Distance), r.Arc, r.Group, r.Magnitude)
			if r.ApparentMagnitude != nil {
				line += fmt.Sprintf("\t%.4f", *r.ApparentMagnitude)
			}
			fmt.Fprintln(tw, line)
		}
		return nil
	})
}
