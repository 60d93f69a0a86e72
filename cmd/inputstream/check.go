package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/breeze-rmm/inputstream/internal/privilege"
	"github.com/breeze-rmm/inputstream/internal/render"
)

var (
	checkDir    string
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether this process can read input devices",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		initLogging(cfg)

		format, err := render.ParseFormat(checkFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to check: %v\n", err)
			os.Exit(1)
		}

		report := privilege.Diagnose(checkDir)
		if err := render.PrintReport(os.Stdout, format, report); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
			os.Exit(1)
		}

		if report.Readable() == 0 {
			fmt.Fprintln(os.Stderr, "No readable input devices. Run as root or add this user to the input group.")
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkDir, "dir", privilege.DefaultInputDir, "directory holding event nodes")
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "output format: text, json or yaml")

	rootCmd.AddCommand(checkCmd)
}
