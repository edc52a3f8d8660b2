package main

import (
	"autoisys/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The autoisys project is a host bootstrap utility that:
//   - Reads a YAML configuration file describing feature flags, a package list,
//     and services to enable; missing keys are backfilled from built-in defaults
//     without overwriting values the user set, and the merged file is persisted
//   - Detects the operating system family and display name (os-release pretty
//     name on Linux, marketing version on macOS) and aborts on anything else
//   - Detects the available package manager by probing a priority-ordered list
//     of executables on the path (pacman, apt, dnf, yum, zypper, apk, emerge,
//     xbps, nix on Linux; brew, port on macOS)
//   - Maps abstract actions (update, install-docker, install-package,
//     enable-service) to concrete command lines per package manager, treating
//     an unmapped manager/action pair as a warning rather than a failure
//   - Skips packages whose executable is already on the path, making repeated
//     runs idempotent
//
// Error handling strategy:
//   - An unsupported OS family and unreadable/unwritable configuration storage
//     are fatal (exit code 1)
//   - Everything else degrades with a warning and the run continues; exit
//     status of invoked package manager processes is not inspected, since they
//     print their own diagnostics to the inherited streams
func main() {
	cmd.Execute()
}
