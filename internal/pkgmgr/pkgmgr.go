package pkgmgr

import (
	"os/exec"

	"autoisys/internal/sysinfo"
)

// Manager identifies a system package manager. The set is closed: the three
// unknown/unsupported values are ordinary members so that "we could not find
// a manager" flows through the same dispatch path as the real ones and comes
// out as an unsupported action rather than a crash.
type Manager string

const (
	Pacman   Manager = "pacman"
	Apt      Manager = "apt"
	Dnf      Manager = "dnf"
	Yum      Manager = "yum"
	Zypper   Manager = "zypper"
	Apk      Manager = "apk"
	Emerge   Manager = "emerge"
	Xbps     Manager = "xbps"
	Nix      Manager = "nix"
	Brew     Manager = "brew"
	Macports Manager = "macports"

	UnknownLinux  Manager = "unknown-linux"
	UnknownMacOS  Manager = "unknown-macos"
	UnsupportedOS Manager = "unsupported-os"
)

// lookPathFunc matches exec.LookPath and is swapped out in tests to simulate
// which executables are present.
type lookPathFunc func(string) (string, error)

// candidate associates a probe executable with the manager identity it
// implies. The executable name and the identity differ for xbps and nix.
type candidate struct {
	executable string
	manager    Manager
}

// Probe order is priority order: the first executable found on the path
// decides the manager for the whole run.
var linuxCandidates = []candidate{
	{"pacman", Pacman},
	{"apt", Apt},
	{"dnf", Dnf},
	{"yum", Yum},
	{"zypper", Zypper},
	{"apk", Apk},
	{"emerge", Emerge},
	{"xbps-install", Xbps},
	{"nix-env", Nix},
}

var darwinCandidates = []candidate{
	{"brew", Brew},
	{"port", Macports},
}

// Detect probes the execution path for a package manager appropriate to the
// OS family. Each call re-runs the path lookups; callers should detect once
// per run and reuse the result.
func Detect(family sysinfo.Family) Manager {
	return detect(family, exec.LookPath)
}

func detect(family sysinfo.Family, lookPath lookPathFunc) Manager {
	switch family {
	case sysinfo.FamilyLinux:
		for _, c := range linuxCandidates {
			if _, err := lookPath(c.executable); err == nil {
				return c.manager
			}
		}
		return UnknownLinux
	case sysinfo.FamilyDarwin:
		for _, c := range darwinCandidates {
			if _, err := lookPath(c.executable); err == nil {
				return c.manager
			}
		}
		return UnknownMacOS
	default:
		return UnsupportedOS
	}
}
