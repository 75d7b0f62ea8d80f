package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyforge/pyforge/pkg/models"
)

func writeAnswerFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), AnswerFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnswerFile(t *testing.T) {
	t.Run("full_file", func(t *testing.T) {
		path := writeAnswerFile(t, `
name: billing-api
kind: api
python_version: "3.12"
framework: fastapi
team_size: 4
deploy_target: k8s
`)

		cfg, err := LoadAnswerFile(path)
		require.NoError(t, err)

		assert.Equal(t, "billing-api", cfg.Name)
		assert.Equal(t, models.KindAPI, cfg.Kind)
		assert.Equal(t, "3.12", cfg.PythonVersion)
		assert.Equal(t, models.FrameworkFastAPI, cfg.Framework)
		assert.Equal(t, 4, cfg.TeamSize)
		assert.Equal(t, models.DeployK8s, cfg.DeployTarget)
		assert.NoError(t, Validate(cfg))
	})

	t.Run("defaults_fill_missing_fields", func(t *testing.T) {
		path := writeAnswerFile(t, "name: demo\n")

		cfg, err := LoadAnswerFile(path)
		require.NoError(t, err)

		assert.Equal(t, "demo", cfg.Name)
		assert.Equal(t, models.KindLibrary, cfg.Kind)
		assert.Equal(t, DefaultPythonVersion, cfg.PythonVersion)
		assert.Equal(t, models.FrameworkNone, cfg.Framework)
		assert.Equal(t, DefaultTeamSize, cfg.TeamSize)
		assert.Equal(t, models.DeployNone, cfg.DeployTarget)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		t.Setenv("PYFORGE_PYTHON_VERSION", "3.9")
		path := writeAnswerFile(t, "name: demo\npython_version: \"3.12\"\n")

		cfg, err := LoadAnswerFile(path)
		require.NoError(t, err)
		assert.Equal(t, "3.9", cfg.PythonVersion)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadAnswerFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrAnswerFileNotFound)
	})

	t.Run("malformed_yaml", func(t *testing.T) {
		path := writeAnswerFile(t, "name: [unclosed\n")

		_, err := LoadAnswerFile(path)
		assert.ErrorIs(t, err, ErrInvalidAnswerFile)
	})
}

func TestMarshalAnswerFileRoundTrip(t *testing.T) {
	cfg := models.ProjectConfig{
		Name:          "demo",
		Kind:          models.KindWeb,
		PythonVersion: "3.11",
		Framework:     models.FrameworkDjango,
		TeamSize:      3,
		DeployTarget:  models.DeployDocker,
	}

	data, err := MarshalAnswerFile(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# pyforge scaffold answers")

	path := filepath.Join(t.TempDir(), AnswerFileName)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadAnswerFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
