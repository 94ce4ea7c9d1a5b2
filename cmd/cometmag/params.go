package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oxygene76/cometmag/internal/types"
	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
)

type parameterTable struct {
	TransitionDistance float64              `json:"transition_distance_au" yaml:"transition_distance_au"`
	Groups             []types.ParameterRow `json:"groups" yaml:"groups"`
}

func paramsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the brightening parameters in use",
		Long: `Print the brightening parameters of every Oort group, including the
derived intercept m_far of the far inbound segment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			table := parameterTable{TransitionDistance: model.TransitionDistance()}
			for _, g := range brightness.Groups {
				p, err := model.Parameters(g)
				if err != nil {
					return err
				}
				mFar, err := model.FarIntercept(g)
				if err != nil {
					return err
				}
				table.Groups = append(table.Groups, types.ParameterRow{
					Group: g.String(),
					KNear: p.Inbound.KNear,
					KFar:  p.Inbound.KFar,
					M1In:  p.Inbound.M1,
					MFar:  mFar,
					K1:    p.Outbound.K1,
					M1Out: p.Outbound.M1,
				})
			}

			return writeOutput(cmd.OutOrStdout(), format, table, func(tw *tabwriter.Writer) error {
				fmt.Fprintf(tw, "transition distance: %s AU\n", formatFloat(table.TransitionDistance))
				fmt.Fprintln(tw, "GROUP\tK_NEAR\tK_FAR\tM1_IN\tM_FAR\tK1\tM1_OUT")
				for _, r := range table.Groups {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.4f\t%s\t%s\n",
						r.Group, formatFloat(r.KNear), formatFloat(r.KFar), formatFloat(r.M1In),
						r.MFar, formatFloat(r.K1), formatFloat(r.M1Out))
				}
				return nil
			})
		},
	}

	cmd.Flags().String("format", formatText, "Output format (text, json, yaml)")

	return cmd
}
