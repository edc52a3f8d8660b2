package cmd

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"autoisys/internal/config"
	"autoisys/internal/logger"
	"autoisys/internal/pkgmgr"
	"autoisys/internal/setup"
	"autoisys/internal/sysinfo"
)

// setupCmd is the top-level command applying the full configured setup:
// system update, Docker, the package list, and services, in that order.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Apply the configured setup (update, docker, packages, services)",
	Run: func(cmd *cobra.Command, args []string) {
		bootstrap().Run()
	},
}

// setupUpdateCmd runs only the system update step.
var setupUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run only the system package update",
	Run: func(cmd *cobra.Command, args []string) {
		bootstrap().Update()
	},
}

// setupDockerCmd runs only the Docker installation step.
var setupDockerCmd = &cobra.Command{
	Use:   "docker",
	Short: "Install only Docker",
	Run: func(cmd *cobra.Command, args []string) {
		bootstrap().InstallDocker()
	},
}

// setupPackagesCmd runs only the package installation step.
var setupPackagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Install only the configured package list",
	Run: func(cmd *cobra.Command, args []string) {
		bootstrap().InstallPackages()
	},
}

// setupServicesCmd runs only the service enabling step.
var setupServicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Enable only the configured services",
	Run: func(cmd *cobra.Command, args []string) {
		bootstrap().EnableServices()
	},
}

// detectCmd shows what the environment probes find without changing anything.
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show detected OS and package manager",
	Run: func(cmd *cobra.Command, args []string) {
		info := checkOS()
		fmt.Println("OS:", info.DisplayName)
		fmt.Println("Package manager:", pkgmgr.Detect(info.Family))
	},
}

// bootstrap performs the shared preamble of every setup invocation: banner,
// OS check (terminal failure on unsupported families), configuration load
// (terminal failure on unreadable/unwritable storage), and one package
// manager probe whose result is reused for the whole run.
func bootstrap() *setup.Setup {
	setup.Banner()

	info := checkOS()
	fmt.Println("OS:", info.DisplayName)

	cfg := loadConfig()
	manager := pkgmgr.Detect(info.Family)
	logger.Debug("[DEBUG] Detected package manager: %s\n", manager)

	return setup.New(cfg, manager)
}

// checkOS probes the operating system and terminates the process with exit
// code 1 when the family is neither Linux nor macOS.
func checkOS() sysinfo.Info {
	info := sysinfo.Detect()
	if info.Family == sysinfo.FamilyUnsupported {
		logger.Error("Unsupported OS\n")
		os.Exit(1)
	}
	return info
}

// loadConfig resolves the config path (flag value with ~ expansion, or the
// default next to the executable) and loads it. Storage failures are fatal.
func loadConfig() config.Config {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}
	} else if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// init wires the setup subcommands into the command tree.
func init() {
	setupCmd.AddCommand(setupUpdateCmd)
	setupCmd.AddCommand(setupDockerCmd)
	setupCmd.AddCommand(setupPackagesCmd)
	setupCmd.AddCommand(setupServicesCmd)

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(detectCmd)
}
