package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pyforge/pyforge/pkg/models"
)

// MaxTeamSize caps the team_size field. Values above this almost
// always mean the user typed a head count for the whole org.
const MaxTeamSize = 100

// projectNamePattern matches acceptable project names: must start with
// a letter, then letters, digits, dashes, underscores.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Validate checks a project configuration for correctness. All fields
// are checked and every violation is reported, so the caller can show
// the full list in one pass. Returns nil when the config is valid,
// otherwise a *ValidationErrors matching ErrInvalidConfig.
func Validate(cfg models.ProjectConfig) error {
	var errs []ValidationError

	errs = append(errs, validateName(cfg.Name)...)
	errs = append(errs, validateKind(cfg.Kind)...)
	errs = append(errs, validatePythonVersion(cfg.PythonVersion)...)
	errs = append(errs, validateFramework(cfg)...)
	errs = append(errs, validateTeamSize(cfg.TeamSize)...)
	errs = append(errs, validateDeployTarget(cfg.DeployTarget)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateName checks the project name.
func validateName(name string) []ValidationError {
	if strings.TrimSpace(name) == "" {
		return []ValidationError{
			{
				Field:   "name",
				Message: "required field is empty; pass a project name (example: --name demo)",
				Wrapped: ErrInvalidConfig,
			},
		}
	}
	if len(name) > 64 {
		return []ValidationError{
			{
				Field:   "name",
				Message: "must be at most 64 characters",
				Value:   name,
				Wrapped: ErrInvalidConfig,
			},
		}
	}
	if !projectNamePattern.MatchString(name) {
		return []ValidationError{
			{
				Field:   "name",
				Message: "must start with a letter and contain only letters, digits, dashes, and underscores",
				Value:   name,
				Wrapped: ErrInvalidConfig,
			},
		}
	}
	return nil
}

// validateKind checks that the project kind is a valid enum value.
func validateKind(kind models.ProjectKind) []ValidationError {
	if !kind.IsValid() {
		return []ValidationError{
			{
				Field:   "kind",
				Message: fmt.Sprintf("must be one of: %s", joinKinds()),
				Value:   string(kind),
				Wrapped: ErrInvalidConfig,
			},
		}
	}
	return nil
}

// validatePythonVersion checks the Python version against the supported set.
func validatePythonVersion(version string) []ValidationError {
	if !models.IsSupportedPythonVersion(version) {
		return []ValidationError{
			{
				Field:   "python_version",
				Message: fmt.Sprintf("must be one of: %s", strings.Join(models.SupportedPythonVersions, ", ")),
				Value:   version,
				Wrapped: ErrInvalidConfig,
			},
		}
	}
	return nil
}

// validateFramework checks the framework enum and its pairing with the
// project kind. A web framework only makes sense for web and api
// projects; everything else must stay framework-free.
func validateFramework(cfg models.ProjectConfig) []ValidationError {
	var errs []ValidationError

	if !cfg.Framework.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "framework",
			Message: fmt.Sprintf("must be one of: %s", joinFrameworks()),
			Value:   string(cfg.Framework),
			Wrapped: ErrInvalidConfig,
		})
		return errs
	}

	if cfg.Framework != models.FrameworkNone &&
		cfg.Kind != models.KindWeb && cfg.Kind != models.KindAPI {
		errs = append(errs, ValidationError{
			Field:   "framework",
			Message: fmt.Sprintf("framework %q requires kind web or api", cfg.Framework),
			Value:   string(cfg.Kind),
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

// validateTeamSize checks the team size range.
func validateTeamSize(size int) []ValidationError {
	if size < 1 || size > MaxTeamSize {
		return []ValidationError{
			{
				Field:   "team_size",
				Message: fmt.Sprintf("must be between 1 and %d", MaxTeamSize),
				Value:   size,
				Wrapped: ErrInvalidConfig,
			},
		}
	}
	return nil
}

// validateDeployTarget checks that the deployment target is a valid enum value.
func validateDeployTarget(target models.DeployTarget) []ValidationError {
	if !target.IsValid() {
		return []ValidationError{
			{
				Field:   "deploy_target",
				Message: fmt.Sprintf("must be one of: %s", joinDeployTargets()),
				Value:   string(target),
				Wrapped: ErrInvalidConfig,
			},
		}
	}
	return nil
}

func joinKinds() string {
	kinds := models.ValidProjectKinds()
	strs := make([]string, len(kinds))
	for i, k := range kinds {
		strs[i] = string(k)
	}
	return strings.Join(strs, ", ")
}

func joinFrameworks() string {
	fws := models.ValidFrameworks()
	strs := make([]string, len(fws))
	for i, f := range fws {
		strs[i] = string(f)
	}
	return strings.Join(strs, ", ")
}

func joinDeployTargets() string {
	targets := models.ValidDeployTargets()
	strs := make([]string, len(targets))
	for i, d := range targets {
		strs[i] = string(d)
	}
	return strings.Join(strs, ", ")
}
