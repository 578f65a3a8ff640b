// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/cardinput/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or store the effective configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration after defaults, files, environment and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeYAML(cmd.OutOrStdout(), appConfig)
		},
	}

	write := &cobra.Command{
		Use:   "write",
		Short: "Write the effective configuration to the user (or system) config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			system, _ := cmd.Flags().GetBool("system")
			if err := config.WriteConfigFile(&appConfig, system); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			path, err := config.GetConfigPath(system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	write.Flags().Bool("system", false, "write the system-wide file instead")

	cmd.AddCommand(show, write)
	return cmd
}
