package cmd

import (
	"github.com/spf13/cobra"

	"autoisys/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the path to the configuration YAML file, passed via the
// `--config` or `-c` flag. When empty, config.yaml next to the executable is
// used.
var configPath string

// rootCmd is the base command for the CLI tool `autoisys`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "autoisys",
	Short: "Host bootstrap utility",
	Long: "AutoIsys detects the host's operating system and package manager, then\n" +
		"applies a declarative configuration: update system packages, install\n" +
		"Docker, install a package list, and enable services — idempotently.",

	// PersistentPreRun runs before any subcommand; it initializes the logger
	// based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes global flags and starts command execution. It's the
// entry point for the CLI when invoked by the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to configuration file (default: config.yaml next to the executable)")

	// Errors are ignored here since Cobra prints them itself.
	_ = rootCmd.Execute()
}
