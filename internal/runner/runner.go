package runner

import (
	"os"
	"os/exec"

	"autoisys/internal/logger"
	"autoisys/internal/pkgmgr"
)

// Run executes the command as a child process inheriting this process's
// standard streams, and blocks until it exits. No timeout is applied.
//
// The child's exit status is deliberately not surfaced: package managers
// print their own errors to the inherited streams, and a failed update or
// install must not stop the remaining setup steps. The status is logged at
// debug level only.
func Run(cmd pkgmgr.Command) {
	if len(cmd) == 0 {
		return
	}
	c := exec.Command(cmd[0], cmd[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		logger.Debug("[DEBUG] %s exited with error: %v\n", cmd[0], err)
	}
}
