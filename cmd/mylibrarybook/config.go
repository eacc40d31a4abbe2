package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/mylibrarybook/internal/config"
	"github.com/muurk/mylibrarybook/internal/ui"
)

var forceInit bool

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file without asking")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// configCmd groups the config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	// The file commands must work even when the current file is broken.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Example: `  mylibrarybook config init
  mylibrarybook config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	printer := ui.NewPrinter(out, ui.FormatDetailed)

	path, err := config.CreateDefaultConfig(forceInit)
	if errors.Is(err, config.ErrConfigExists) {
		if !ui.ConfirmOverwrite(cmd.InOrStdin(), out, path) {
			return nil
		}
		path, err = config.CreateDefaultConfig(true)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printer.PrintSuccess("Configuration written",
		ui.Param{Key: "Path", Value: path},
	)
	return nil
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults and flag overrides are applied,
as YAML.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(current.registry)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
