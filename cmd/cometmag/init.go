package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oxygene76/cometmag/pkg/utils"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration, including the median brightening
parameters, to --path (default $HOME/.cometmag/config.yaml). Edit the model
section to evaluate with your own parameters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("path")
			force, _ := cmd.Flags().GetBool("force")

			if path == "" {
				var err error
				path, err = utils.GetConfigPath()
				if err != nil {
					return err
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			if err := utils.SaveConfig(utils.DefaultConfig(), path); err != nil {
				return err
			}

			logger.Info("Configuration saved", zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().String("path", "", "Config file to write")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}
