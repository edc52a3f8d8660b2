package pkgmgr

import (
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// Command is an external process invocation: program name followed by its
// arguments. It is plain data produced by table lookup; nothing here runs it.
type Command []string

// String renders the command the way an operator would type it, with shell
// quoting where an argument needs it. Used for the [RUN] and [INSTALL] lines.
func (c Command) String() string {
	return shellquote.Join(c...)
}

// Privileged Linux managers run under sudo; Homebrew refuses to run as root,
// so its commands carry no elevation prefix.

var updateCommands = map[Manager]Command{
	Pacman: {"sudo", "pacman", "-Syu"},
	Apt:    {"sudo", "apt", "update"},
	Dnf:    {"sudo", "dnf", "upgrade", "-y"},
	Yum:    {"sudo", "yum", "update", "-y"},
	Apk:    {"sudo", "apk", "upgrade"},
	Brew:   {"brew", "update"},
}

// Docker's package name varies per distribution (docker.io on Debian
// derivatives, a cask on Homebrew), so it gets its own table instead of
// going through Install.
var dockerCommands = map[Manager]Command{
	Pacman: {"sudo", "pacman", "-S", "--noconfirm", "docker"},
	Apt:    {"sudo", "apt", "install", "-y", "docker.io"},
	Dnf:    {"sudo", "dnf", "install", "-y", "docker"},
	Yum:    {"sudo", "yum", "install", "-y", "docker"},
	Apk:    {"sudo", "apk", "add", "docker"},
	Brew:   {"brew", "install", "--cask", "docker"},
}

var installPrefixes = map[Manager]Command{
	Pacman: {"sudo", "pacman", "-S", "--noconfirm"},
	Apt:    {"sudo", "apt", "install", "-y"},
	Dnf:    {"sudo", "dnf", "install", "-y"},
	Yum:    {"sudo", "yum", "install", "-y"},
	Apk:    {"sudo", "apk", "add"},
	Brew:   {"brew", "install"},
}

// Update returns the system update command for the manager. The second
// return value is false when the manager has no update mapping; callers warn
// and continue rather than abort.
func Update(m Manager) (Command, bool) {
	cmd, ok := updateCommands[m]
	return cmd, ok
}

// InstallDocker returns the Docker installation command for the manager.
func InstallDocker(m Manager) (Command, bool) {
	cmd, ok := dockerCommands[m]
	return cmd, ok
}

// SupportsInstall reports whether the manager has a package installation
// mapping. Checked once before iterating a package list.
func SupportsInstall(m Manager) bool {
	_, ok := installPrefixes[m]
	return ok
}

// Install returns the command installing pkg with the manager. The returned
// slice is a copy; appending the package name never mutates the table.
func Install(m Manager, pkg string) (Command, bool) {
	prefix, ok := installPrefixes[m]
	if !ok {
		return nil, false
	}
	cmd := make(Command, 0, len(prefix)+1)
	cmd = append(cmd, prefix...)
	cmd = append(cmd, pkg)
	return cmd, true
}

// EnableService returns the command enabling and starting the service now.
// Service control goes through systemd regardless of package manager, so this
// is gated on systemd presence (HasServiceManager), not on a manager table.
func EnableService(service string) Command {
	return Command{"sudo", "systemctl", "enable", "--now", service}
}

// HasServiceManager reports whether the systemd control executable is on the
// execution path. Checked once per run, not per service.
func HasServiceManager() bool {
	_, err := exec.LookPath("systemctl")
	return err == nil
}
