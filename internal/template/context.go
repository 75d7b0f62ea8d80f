package template

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pyforge/pyforge/pkg/models"
)

// RenderContext provides data for template rendering during scaffolding.
// All fields are exported for use with Go's text/template package.
type RenderContext struct {
	// Project
	ProjectName string // as typed by the user, e.g. "billing-api"
	PackageName string // derived Python package name, e.g. "billing_api"
	DisplayName string // title-cased name for docs, e.g. "Billing Api"

	// Configuration
	Kind          string
	PythonVersion string
	PythonTag     string // tool shorthand, e.g. "py311"
	Framework     string
	TeamSize      int
	DeployTarget  string

	// Meta
	Version   string // pyforge version that produced the scaffold
	CreatedAt string // ISO 8601 timestamp
}

// ContextOption configures a RenderContext.
type ContextOption func(*RenderContext)

// titleCaser title-cases project names for README headings.
var titleCaser = cases.Title(language.English)

// NewRenderContext builds a RenderContext from a validated project
// configuration, then applies any provided options.
func NewRenderContext(cfg models.ProjectConfig, opts ...ContextOption) *RenderContext {
	display := titleCaser.String(strings.ReplaceAll(strings.ReplaceAll(cfg.Name, "-", " "), "_", " "))

	ctx := &RenderContext{
		ProjectName:   cfg.Name,
		PackageName:   cfg.PackageName(),
		DisplayName:   display,
		Kind:          string(cfg.Kind),
		PythonVersion: cfg.PythonVersion,
		PythonTag:     "py" + strings.ReplaceAll(cfg.PythonVersion, ".", ""),
		Framework:     string(cfg.Framework),
		TeamSize:      cfg.TeamSize,
		DeployTarget:  string(cfg.DeployTarget),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// WithVersion sets the pyforge version recorded in rendered files.
func WithVersion(version string) ContextOption {
	return func(c *RenderContext) {
		c.Version = version
	}
}

// WithCreatedAt overrides the scaffold timestamp. Used by tests for
// deterministic output.
func WithCreatedAt(timestamp string) ContextOption {
	return func(c *RenderContext) {
		c.CreatedAt = timestamp
	}
}
