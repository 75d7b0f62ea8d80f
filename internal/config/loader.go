package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pyforge/pyforge/pkg/models"
)

// AnswerFileName is the scaffold answer file written into every
// generated project, so a scaffold can be reproduced later with
// `pyforge new --config pyforge.yaml`.
const AnswerFileName = "pyforge.yaml"

// envPrefix is the prefix for environment variable overrides
// (e.g. PYFORGE_PYTHON_VERSION).
const envPrefix = "PYFORGE"

// LoadAnswerFile reads a project configuration from a YAML answer file.
// Environment variables with the PYFORGE_ prefix override file values,
// and defaults fill anything left unset. The returned config is not
// validated; callers run Validate separately so flag overrides can be
// applied first.
func LoadAnswerFile(path string) (models.ProjectConfig, error) {
	var cfg models.ProjectConfig

	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("%w: %s", ErrAnswerFileNotFound, path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidAnswerFile, path, err)
	}

	cfg = models.ProjectConfig{
		Name:          v.GetString("name"),
		Kind:          models.ProjectKind(v.GetString("kind")),
		PythonVersion: v.GetString("python_version"),
		Framework:     models.Framework(v.GetString("framework")),
		TeamSize:      v.GetInt("team_size"),
		DeployTarget:  models.DeployTarget(v.GetString("deploy_target")),
	}

	return cfg, nil
}

// setDefaults registers default values on a viper instance.
func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("kind", string(def.Kind))
	v.SetDefault("python_version", def.PythonVersion)
	v.SetDefault("framework", string(def.Framework))
	v.SetDefault("team_size", def.TeamSize)
	v.SetDefault("deploy_target", string(def.DeployTarget))
}

// answerFileHeader is written at the top of every generated answer file.
const answerFileHeader = "# pyforge scaffold answers. Re-run with: pyforge new --config pyforge.yaml\n"

// MarshalAnswerFile renders a project configuration as answer-file YAML.
func MarshalAnswerFile(cfg models.ProjectConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal answer file: %w", err)
	}
	return append([]byte(answerFileHeader), data...), nil
}
