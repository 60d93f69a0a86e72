package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/breeze-rmm/inputstream/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the inputstream config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with the default settings",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if len(args) == 1 {
			path = args[0]
		}

		written, err := config.SaveTo(config.Default(), path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", written)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config after files and environment",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		result := cfg.ValidateTiered()
		for _, err := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		for _, err := range result.Fatals {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}

		fmt.Printf("seat:     %s\n", cfg.Seat)
		fmt.Printf("backend:  %s\n", cfg.Backend)
		for _, d := range cfg.Devices {
			fmt.Printf("device:   %s\n", d)
		}
		fmt.Printf("grab:     %v\n", cfg.Grab)
		fmt.Printf("format:   %s\n", cfg.Format)
		fmt.Printf("screen:   %s\n", cfg.Screen)
		fmt.Printf("log:      %s/%s %s\n", cfg.LogFormat, cfg.LogLevel, cfg.LogFile)

		if result.HasFatals() {
			os.Exit(1)
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
