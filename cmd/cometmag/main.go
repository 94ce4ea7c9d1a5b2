// Cometmag evaluates and plots the median heliocentric brightness of comets.
//
// Usage:
//
//	cometmag <distance> <arc> <group>
//	cometmag <command> [flags]
//
// With exactly three arguments cometmag prints the total heliocentric
// magnitude of a comet of the given Oort group (new, int, old) on the given
// arc (inbound, outbound) at the given heliocentric distance in AU. The
// subcommands evaluate several distances, print tables, evaluate a position
// given by orbital elements and draw the light-curve figure.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
	"github.com/oxygene76/cometmag/pkg/utils"
)

const (
	appName = "cometmag"
	version = "v1.0.0"
)

var (
	cfgFile string
	verbose bool

	config *utils.Config
	model  *brightness.Model
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName + " [distance arc group]",
		Short: "Comet brightness versus heliocentric distance",
		Long: `cometmag evaluates a piecewise-logarithmic model of the total heliocentric
magnitude of comets, split by orbital arc (inbound / outbound) and Oort
group (new / int / old), and draws the resulting light curves.

With exactly three arguments it prints the magnitude for one distance:

  cometmag 5.0 inbound new`,
		Version:           version,
		Args:              threeArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runScalar,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cometmag/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		initCmd(),
		evalCmd(),
		paramsCmd(),
		tableCmd(),
		orbitCmd(),
		plotCmd(),
	)

	return rootCmd
}

// setup loads the configuration, builds the model and initializes the logger
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "init" {
		config = utils.DefaultConfig()
	} else {
		var err error
		config, err = utils.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
	}

	level, err := zap.ParseAtomicLevel(config.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level
	logger, err = zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	model, err = config.BuildModel()
	if err != nil {
		return err
	}
	logger.Debug("Model ready",
		zap.Float64("transition_au", model.TransitionDistance()),
		zap.String("command", cmd.Name()))
	return nil
}

func threeArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 3 {
		return fmt.Errorf("expected <distance> <arc> <group>, got %d argument(s)", len(args))
	}
	return nil
}

// runScalar prints the magnitude for a single distance given as positional arguments
func runScalar(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	distance, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid distance %q: %w", args[0], err)
	}
	group, err := brightness.ParseOortGroup(args[2])
	if err != nil {
		return err
	}
	arc, err := brightness.ParseOrbitalArc(args[1])
	if err != nil {
		return err
	}

	mag, err := model.Evaluate(distance, arc, group)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatFloat(mag))
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
