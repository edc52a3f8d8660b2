package setup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoisys/internal/config"
	"autoisys/internal/pkgmgr"
)

// recorder captures every command a step would have executed.
type recorder struct {
	commands []pkgmgr.Command
}

func (r *recorder) run(cmd pkgmgr.Command) {
	r.commands = append(r.commands, cmd)
}

// newTestSetup wires a Setup to a command recorder and a fake path on which
// only the named executables exist.
func newTestSetup(cfg config.Config, manager pkgmgr.Manager, onPath ...string) (*Setup, *recorder) {
	present := make(map[string]bool, len(onPath))
	hasSystemctl := false
	for _, name := range onPath {
		present[name] = true
		if name == "systemctl" {
			hasSystemctl = true
		}
	}

	rec := &recorder{}
	s := &Setup{
		cfg:     cfg,
		manager: manager,
		run:     rec.run,
		lookPath: func(name string) (string, error) {
			if present[name] {
				return "/usr/bin/" + name, nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		hasServiceMgr: func() bool { return hasSystemctl },
	}
	return s, rec
}

func TestUpdate(t *testing.T) {
	t.Run("RunsWhenEnabled", func(t *testing.T) {
		cfg := config.Config{System: config.System{AutoUpdate: true}}
		s, rec := newTestSetup(cfg, pkgmgr.Apt)

		s.Update()

		require.Len(t, rec.commands, 1)
		assert.Equal(t, pkgmgr.Command{"sudo", "apt", "update"}, rec.commands[0])
	})

	t.Run("SkipsWhenDisabled", func(t *testing.T) {
		s, rec := newTestSetup(config.Config{}, pkgmgr.Apt)
		s.Update()
		assert.Empty(t, rec.commands)
	})

	t.Run("WarnsOnUnknownManager", func(t *testing.T) {
		cfg := config.Config{System: config.System{AutoUpdate: true}}
		s, rec := newTestSetup(cfg, pkgmgr.UnknownLinux)
		s.Update()
		assert.Empty(t, rec.commands)
	})
}

func TestInstallDocker(t *testing.T) {
	t.Run("RunsWhenEnabled", func(t *testing.T) {
		cfg := config.Config{System: config.System{InstallDocker: true}}
		s, rec := newTestSetup(cfg, pkgmgr.Brew)

		s.InstallDocker()

		require.Len(t, rec.commands, 1)
		assert.Equal(t, pkgmgr.Command{"brew", "install", "--cask", "docker"}, rec.commands[0])
	})

	t.Run("SkipsWhenDisabled", func(t *testing.T) {
		s, rec := newTestSetup(config.Config{}, pkgmgr.Brew)
		s.InstallDocker()
		assert.Empty(t, rec.commands)
	})

	t.Run("WarnsOnUnknownManager", func(t *testing.T) {
		cfg := config.Config{System: config.System{InstallDocker: true}}
		s, rec := newTestSetup(cfg, pkgmgr.UnknownMacOS)
		s.InstallDocker()
		assert.Empty(t, rec.commands)
	})
}

func TestInstallPackages(t *testing.T) {
	t.Run("SkipsAlreadyInstalled", func(t *testing.T) {
		cfg := config.Config{
			System:   config.System{AutoInstall: true},
			Packages: []string{"git"},
		}
		s, rec := newTestSetup(cfg, pkgmgr.Apt, "git")

		s.InstallPackages()

		assert.Empty(t, rec.commands, "present package must cause zero invocations")
	})

	t.Run("InstallsMissingInOrder", func(t *testing.T) {
		cfg := config.Config{
			System:   config.System{AutoInstall: true},
			Packages: []string{"git", "curl", "htop"},
		}
		s, rec := newTestSetup(cfg, pkgmgr.Dnf, "curl")

		s.InstallPackages()

		require.Len(t, rec.commands, 2)
		assert.Equal(t, pkgmgr.Command{"sudo", "dnf", "install", "-y", "git"}, rec.commands[0])
		assert.Equal(t, pkgmgr.Command{"sudo", "dnf", "install", "-y", "htop"}, rec.commands[1])
	})

	t.Run("WarnsOnUnknownManagerWithoutAttempting", func(t *testing.T) {
		cfg := config.Config{
			System:   config.System{AutoInstall: true},
			Packages: []string{"git", "curl"},
		}
		s, rec := newTestSetup(cfg, pkgmgr.UnknownLinux)

		s.InstallPackages()

		assert.Empty(t, rec.commands)
	})

	t.Run("SkipsWhenDisabledOrEmpty", func(t *testing.T) {
		s, rec := newTestSetup(config.Config{Packages: []string{"git"}}, pkgmgr.Apt)
		s.InstallPackages()
		assert.Empty(t, rec.commands)

		cfg := config.Config{System: config.System{AutoInstall: true}}
		s, rec = newTestSetup(cfg, pkgmgr.Apt)
		s.InstallPackages()
		assert.Empty(t, rec.commands)
	})
}

func TestEnableServices(t *testing.T) {
	t.Run("EnablesEachServiceInOrder", func(t *testing.T) {
		cfg := config.Config{System: config.System{EnableServices: []string{"docker", "sshd"}}}
		s, rec := newTestSetup(cfg, pkgmgr.Apt, "systemctl")

		s.EnableServices()

		require.Len(t, rec.commands, 2)
		assert.Equal(t, pkgmgr.Command{"sudo", "systemctl", "enable", "--now", "docker"}, rec.commands[0])
		assert.Equal(t, pkgmgr.Command{"sudo", "systemctl", "enable", "--now", "sshd"}, rec.commands[1])
	})

	t.Run("WarnsWithoutSystemd", func(t *testing.T) {
		cfg := config.Config{System: config.System{EnableServices: []string{"docker"}}}
		s, rec := newTestSetup(cfg, pkgmgr.Apt)

		s.EnableServices()

		assert.Empty(t, rec.commands)
	})

	t.Run("NothingConfigured", func(t *testing.T) {
		s, rec := newTestSetup(config.Config{}, pkgmgr.Apt, "systemctl")
		s.EnableServices()
		assert.Empty(t, rec.commands)
	})
}

func TestRunFullSequenceDegradesQuietly(t *testing.T) {
	// Everything enabled but the manager unknown and systemd absent: the run
	// must get through all four steps with zero invocations and no panic.
	cfg := config.Config{
		System: config.System{
			AutoUpdate:     true,
			AutoInstall:    true,
			InstallDocker:  true,
			EnableServices: []string{"docker"},
		},
		Packages: []string{"git"},
	}
	s, rec := newTestSetup(cfg, pkgmgr.UnknownLinux)

	s.Run()

	assert.Empty(t, rec.commands)
}
