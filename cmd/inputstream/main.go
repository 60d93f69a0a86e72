package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/breeze-rmm/inputstream/internal/config"
	"github.com/breeze-rmm/inputstream/internal/logging"
)

var (
	version = "0.1.0"
	cfgFile string
	verbose bool
	logFile string
)

var log = logging.L("main")

var rootCmd = &cobra.Command{
	Use:   "inputstream",
	Short: "Stream input events from libinput",
	Long: `inputstream opens a libinput context on a seat (or on explicit device
nodes) and prints every keyboard, pointer, touch, gesture, tablet and switch
event it decodes.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inputstream v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/inputstream/inputstream.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads and validates the config, exiting on fatal problems.
func loadConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func validate(cfg *config.Config) {
	result := cfg.ValidateTiered()
	result.Log(log)
	if result.HasFatals() {
		for _, err := range result.Fatals {
			fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		}
		os.Exit(1)
	}
}

// initLogging points the process logger at stderr or the rotating log file.
// The returned closer is nil when logging to stderr.
func initLogging(cfg *config.Config) *logging.RotatingWriter {
	if logFile != "" {
		cfg.LogFile = logFile
	}

	var out io.Writer = os.Stderr
	var rw *logging.RotatingWriter
	if cfg.LogFile != "" {
		w, err := logging.NewRotatingWriter(cfg.LogFile, cfg.LogMaxSizeMB, cfg.LogMaxBackups)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		out, rw = w, w
	}

	logging.Init(cfg.LogFormat, cfg.LogLevel, out)
	if verbose {
		logging.SetLevel("debug")
	}
	return rw
}
