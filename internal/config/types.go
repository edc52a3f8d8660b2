package config

// Config is the parsed configuration held for the duration of a run.
// It is loaded once by Load, passed explicitly to each setup step,
// and never mutated afterwards.
type Config struct {
	App      App      `yaml:"app"`
	System   System   `yaml:"system"`
	Packages []string `yaml:"packages"`
}

// App identifies the utility itself.
// - Name: application name written to config.yaml.
// - Version: application version, backfilled into older config files.
type App struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// System holds the feature flags and service list that drive the setup run.
// - AutoUpdate: run the package manager's system update step.
// - AutoInstall: install the configured package list.
// - InstallDocker: install Docker through the detected package manager.
// - EnableServices: services to enable and start via systemd, in order.
type System struct {
	AutoUpdate     bool     `yaml:"auto_update"`
	AutoInstall    bool     `yaml:"auto_install"`
	InstallDocker  bool     `yaml:"install_docker"`
	EnableServices []string `yaml:"enable_services"`
}

// defaultDocument returns the built-in default configuration as a generic
// YAML mapping. The merge step works on this representation rather than on
// Config so that keys missing from a user's file can be filled in without
// disturbing the keys they set explicitly.
func defaultDocument() map[string]any {
	return map[string]any{
		"app": map[string]any{
			"name":    "AutoIsys",
			"version": "0.0.2",
		},
		"system": map[string]any{
			"auto_update":    true,
			"auto_install":   true,
			"install_docker": true,
			"enable_services": []any{
				"docker",
			},
		},
		"packages": []any{
			"git",
			"curl",
			"htop",
		},
	}
}
