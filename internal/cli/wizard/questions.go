package wizard

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/pyforge/pyforge/internal/config"
	"github.com/pyforge/pyforge/pkg/models"
)

// projectNameInput mirrors the configuration-layer naming rule so bad
// names are rejected at the prompt instead of after the wizard.
var projectNameInput = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// DefaultQuestions returns the standard question set for scaffolding.
// Order: project name, kind, Python version, framework (web/api only),
// team size, deployment target.
func DefaultQuestions(projectRoot string) []Question {
	// Use current directory name as default project name
	defaultProjectName := filepath.Base(projectRoot)
	if defaultProjectName == "." || defaultProjectName == "/" {
		defaultProjectName = "my-project"
	}

	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Used for the repository, package name, and docs.",
			Default:     defaultProjectName,
			Required:    true,
			Validate: func(v string) error {
				if !projectNameInput.MatchString(v) {
					return fmt.Errorf("name must start with a letter and use only letters, digits, - or _")
				}
				return nil
			},
		},
		{
			ID:          "kind",
			Type:        QuestionTypeSelect,
			Title:       "Project kind",
			Description: "Determines the base layout and tooling.",
			// Default option first: huh v0.8.x sets viewport.YOffset to the
			// selected index, hiding options above the default otherwise.
			Options: []Option{
				{Label: "Library", Value: string(models.KindLibrary), Desc: "Importable package published to an index"},
				{Label: "CLI", Value: string(models.KindCLI), Desc: "Command line application"},
				{Label: "Web", Value: string(models.KindWeb), Desc: "Web application"},
				{Label: "API", Value: string(models.KindAPI), Desc: "HTTP API service"},
				{Label: "Data Science", Value: string(models.KindDataScience), Desc: "Notebooks, data pipeline, analysis"},
			},
			Default:  string(models.KindLibrary),
			Required: true,
		},
		{
			ID:          "python_version",
			Type:        QuestionTypeSelect,
			Title:       "Minimum Python version",
			Description: "Sets requires-python and the toolchain targets.",
			Options:     pythonVersionOptions(),
			Default:     config.DefaultPythonVersion,
			Required:    true,
		},
		{
			ID:          "framework",
			Type:        QuestionTypeSelect,
			Title:       "Web framework",
			Description: "Adds framework scaffolding, settings, and tests.",
			Options: []Option{
				{Label: "None", Value: string(models.FrameworkNone), Desc: "Plain project, no framework"},
				{Label: "FastAPI", Value: string(models.FrameworkFastAPI), Desc: "Modern async API framework"},
				{Label: "Django", Value: string(models.FrameworkDjango), Desc: "Full-stack web framework"},
				{Label: "Flask", Value: string(models.FrameworkFlask), Desc: "Lightweight web framework"},
			},
			Default:  string(models.FrameworkNone),
			Required: true,
			Condition: func(r *WizardResult) bool {
				return r.Kind == string(models.KindWeb) || r.Kind == string(models.KindAPI)
			},
		},
		{
			ID:          "team_size",
			Type:        QuestionTypeInput,
			Title:       "Team size",
			Description: "Teams of two or more get CODEOWNERS and CONTRIBUTING.md.",
			Default:     strconv.Itoa(config.DefaultTeamSize),
			Required:    true,
			Validate: func(v string) error {
				n, err := strconv.Atoi(v)
				if err != nil {
					return fmt.Errorf("enter a number")
				}
				if n < 1 || n > config.MaxTeamSize {
					return fmt.Errorf("team size must be between 1 and %d", config.MaxTeamSize)
				}
				return nil
			},
		},
		{
			ID:          "deploy_target",
			Type:        QuestionTypeSelect,
			Title:       "Deployment target",
			Description: "Adds container, manifest, or release workflow files.",
			Options: []Option{
				{Label: "None", Value: string(models.DeployNone), Desc: "No deployment files"},
				{Label: "Docker", Value: string(models.DeployDocker), Desc: "Dockerfile and compose setup"},
				{Label: "Kubernetes", Value: string(models.DeployK8s), Desc: "Dockerfile plus k8s manifests"},
				{Label: "Cloud", Value: string(models.DeployCloud), Desc: "Container image deploy workflow"},
				{Label: "PyPI", Value: string(models.DeployPyPI), Desc: "Package release workflow"},
			},
			Default:  string(models.DeployNone),
			Required: true,
		},
	}
}

// pythonVersionOptions lists supported versions with the default first.
func pythonVersionOptions() []Option {
	opts := []Option{{
		Label: config.DefaultPythonVersion,
		Value: config.DefaultPythonVersion,
		Desc:  "Recommended",
	}}
	for _, v := range models.SupportedPythonVersions {
		if v == config.DefaultPythonVersion {
			continue
		}
		opts = append(opts, Option{Label: v, Value: v})
	}
	return opts
}

// FilteredQuestions returns questions filtered by their conditions.
// Questions whose conditions return false are excluded.
func FilteredQuestions(questions []Question, result *WizardResult) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil || q.Condition(result) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
