package config

import "github.com/pyforge/pyforge/pkg/models"

// Default values applied when a field is left unset.
const (
	DefaultPythonVersion = "3.12"
	DefaultTeamSize      = 1
)

// Default returns a project configuration with every field set to its
// default. The name is intentionally left empty: it has no sensible
// default and validation requires it.
func Default() models.ProjectConfig {
	return models.ProjectConfig{
		Kind:          models.KindLibrary,
		PythonVersion: DefaultPythonVersion,
		Framework:     models.FrameworkNone,
		TeamSize:      DefaultTeamSize,
		DeployTarget:  models.DeployNone,
	}
}

// ApplyDefaults fills unset fields of cfg in place. Explicitly chosen
// values are never overridden.
func ApplyDefaults(cfg *models.ProjectConfig) {
	def := Default()
	if cfg.Kind == "" {
		cfg.Kind = def.Kind
	}
	if cfg.PythonVersion == "" {
		cfg.PythonVersion = def.PythonVersion
	}
	if cfg.Framework == "" {
		cfg.Framework = def.Framework
	}
	if cfg.TeamSize == 0 {
		cfg.TeamSize = def.TeamSize
	}
	if cfg.DeployTarget == "" {
		cfg.DeployTarget = def.DeployTarget
	}
}
