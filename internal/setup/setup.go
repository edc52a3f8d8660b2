package setup

import (
	"fmt"
	"os/exec"

	"autoisys/internal/config"
	"autoisys/internal/logger"
	"autoisys/internal/pkgmgr"
	"autoisys/internal/runner"
)

// Setup carries a single run's state: the loaded configuration (read-only
// after construction) and the package manager detected for this host.
// The run and lookPath collaborators are swapped for fakes in tests so that
// steps can be exercised without touching the system.
type Setup struct {
	cfg     config.Config
	manager pkgmgr.Manager

	run           func(pkgmgr.Command)
	lookPath      func(string) (string, error)
	hasServiceMgr func() bool
}

// New builds a Setup wired to the real process runner and execution path.
func New(cfg config.Config, manager pkgmgr.Manager) *Setup {
	return &Setup{
		cfg:           cfg,
		manager:       manager,
		run:           runner.Run,
		lookPath:      exec.LookPath,
		hasServiceMgr: pkgmgr.HasServiceManager,
	}
}

// Banner prints the identification banner at the start of every run.
func Banner() {
	fmt.Println("==============================================")
	fmt.Println("              AutoIsys Utility")
	fmt.Println("==============================================")
}

// Run performs the full setup sequence in order. Individual step outcomes do
// not affect later steps; the process exits zero afterwards regardless.
func (s *Setup) Run() {
	s.Update()
	s.InstallDocker()
	s.InstallPackages()
	s.EnableServices()
}

// Update runs the package manager's system update when system.auto_update is
// enabled. An unmapped manager is a warning, not a failure.
func (s *Setup) Update() {
	if !s.cfg.System.AutoUpdate {
		logger.Info("[INFO] Auto update disabled\n")
		return
	}

	cmd, ok := pkgmgr.Update(s.manager)
	if !ok {
		logger.Warn("[WARN] Auto update not supported for: %s\n", s.manager)
		return
	}

	logger.Info("[RUN] %s\n", cmd)
	s.run(cmd)
}

// InstallDocker installs Docker through the detected package manager when
// system.install_docker is enabled.
func (s *Setup) InstallDocker() {
	if !s.cfg.System.InstallDocker {
		logger.Info("[INFO] Docker install disabled\n")
		return
	}

	cmd, ok := pkgmgr.InstallDocker(s.manager)
	if !ok {
		logger.Warn("[WARN] Docker install not supported for: %s\n", s.manager)
		return
	}

	logger.Info("[INFO] Installing Docker\n")
	s.run(cmd)
}

// InstallPackages installs the configured package list in order when
// system.auto_install is enabled. A package whose executable is already on
// the path is skipped without spawning anything, which is what makes repeated
// runs idempotent.
func (s *Setup) InstallPackages() {
	if !s.cfg.System.AutoInstall {
		logger.Info("[INFO] Auto install disabled\n")
		return
	}

	if len(s.cfg.Packages) == 0 {
		logger.Info("[INFO] No packages to install\n")
		return
	}

	if !pkgmgr.SupportsInstall(s.manager) {
		logger.Warn("[WARN] Package manager not supported: %s\n", s.manager)
		return
	}

	logger.Info("[INFO] Installing packages using: %s\n", s.manager)

	for _, pkg := range s.cfg.Packages {
		if s.isInstalled(pkg) {
			logger.Info("[OK] %s already installed\n", pkg)
			continue
		}

		cmd, _ := pkgmgr.Install(s.manager, pkg)
		logger.Info("[INSTALL] %s\n", cmd)
		s.run(cmd)
	}
}

// EnableServices enables and starts each configured service via systemd.
// Service control is gated on the host having systemd at all, independent of
// which package manager was detected.
func (s *Setup) EnableServices() {
	services := s.cfg.System.EnableServices

	if len(services) == 0 {
		logger.Info("[INFO] No services to enable\n")
		return
	}

	if !s.hasServiceMgr() {
		logger.Warn("[WARN] systemd not detected\n")
		return
	}

	for _, service := range services {
		logger.Info("[SERVICE] Enabling %s\n", service)
		s.run(pkgmgr.EnableService(service))
	}
}

// isInstalled treats presence of a same-named executable on the path as
// proof the package is installed.
func (s *Setup) isInstalled(pkg string) bool {
	_, err := s.lookPath(pkg)
	return err == nil
}
