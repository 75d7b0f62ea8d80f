// Package wizard provides the interactive huh-based questionnaire that
// collects a project configuration for scaffolding.
package wizard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pyforge/pyforge/pkg/models"
)

// WizardResult holds the user's raw answers from the wizard. All values
// are strings as entered; Config converts them to a typed configuration.
type WizardResult struct {
	ProjectName   string // Project name (required)
	Kind          string // Project kind: library, cli, web, data-science, api
	PythonVersion string // Minimum Python version, e.g. "3.12"
	Framework     string // Web framework: none, django, flask, fastapi
	TeamSize      string // Team size as entered, e.g. "1"
	DeployTarget  string // Deployment target: none, docker, cloud, pypi, k8s
}

// Config converts the raw answers into a typed project configuration.
func (r *WizardResult) Config() (models.ProjectConfig, error) {
	teamSize := 1
	if r.TeamSize != "" {
		n, err := strconv.Atoi(r.TeamSize)
		if err != nil {
			return models.ProjectConfig{}, fmt.Errorf("team size %q is not a number", r.TeamSize)
		}
		teamSize = n
	}

	framework := r.Framework
	if framework == "" {
		framework = string(models.FrameworkNone)
	}

	return models.ProjectConfig{
		Name:          r.ProjectName,
		Kind:          models.ProjectKind(r.Kind),
		PythonVersion: r.PythonVersion,
		Framework:     models.Framework(framework),
		TeamSize:      teamSize,
		DeployTarget:  models.DeployTarget(r.DeployTarget),
	}, nil
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string                   // Unique identifier
	Type        QuestionType             // Select or Input
	Title       string                   // Question title
	Description string                   // Additional description
	Options     []Option                 // Options for select questions
	Default     string                   // Default value
	Required    bool                     // Whether the field is required
	Validate    func(string) error       // Extra validation for input questions
	Condition   func(*WizardResult) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
