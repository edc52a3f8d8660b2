package sysinfo

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// Family classifies the running operating system for the setup steps.
// Only Linux and macOS are supported; anything else terminates the run.
type Family string

const (
	FamilyLinux       Family = "linux"
	FamilyDarwin      Family = "darwin"
	FamilyUnsupported Family = "unsupported"
)

// Info describes the detected operating system.
// DisplayName is suitable for presentation to the operator, e.g.
// "Ubuntu 24.04.1 LTS" or "macOS 15.1".
type Info struct {
	Family      Family
	DisplayName string
}

// osReleasePath is the standard os-release location on Linux systems.
const osReleasePath = "/etc/os-release"

// Detect probes the running operating system. It is a pure function of the
// current environment; callers should invoke it once per run and pass the
// result around.
func Detect() Info {
	return detect(runtime.GOOS)
}

func detect(goos string) Info {
	switch goos {
	case "linux":
		return Info{Family: FamilyLinux, DisplayName: linuxPrettyName()}
	case "darwin":
		return Info{Family: FamilyDarwin, DisplayName: macDisplayName()}
	default:
		return Info{Family: FamilyUnsupported, DisplayName: goos}
	}
}

// linuxPrettyName reads the PRETTY_NAME field from /etc/os-release,
// falling back to "Unknown Linux" when the file or field is absent.
func linuxPrettyName() string {
	f, err := os.Open(osReleasePath)
	if err != nil {
		return "Unknown Linux"
	}
	defer f.Close()
	return prettyName(f)
}

// prettyName scans a line-oriented key=value os-release document for the
// PRETTY_NAME field. Values may be quoted per the os-release format.
func prettyName(r io.Reader) string {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 || parts[0] != "PRETTY_NAME" {
			continue
		}
		value := parts[1]
		if v, err := strconv.Unquote(value); err == nil {
			value = v
		}
		return value
	}
	return "Unknown Linux"
}

// macDisplayName builds the macOS display name from the marketing version
// reported by sw_vers. If sw_vers is unavailable the bare "macOS" is
// returned.
func macDisplayName() string {
	out, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return "macOS"
	}
	version := strings.TrimSpace(string(out))
	if version == "" {
		return "macOS"
	}
	return "macOS " + version
}
