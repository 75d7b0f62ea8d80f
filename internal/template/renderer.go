package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// snake converts dashes and spaces to underscores.
	"snake": func(s string) string {
		s = strings.ReplaceAll(s, "-", "_")
		return strings.ReplaceAll(s, " ", "_")
	},
	// upper uppercases a string, for constants in generated settings.
	"upper": strings.ToUpper,
}

// unexpandedTokenPattern detects leftover dynamic tokens in rendered output.
// Matches ${VAR}, {{VAR}}, and {{.Var}} patterns.
var unexpandedTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders catalog templates with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the embedded FS and
	// executes it with the given context. Returns ErrMissingTemplateKey
	// if a key is missing and ErrUnexpandedToken if tokens remain after
	// rendering.
	Render(templateName string, data any) ([]byte, error)

	// RenderPath expands a templated entry path (e.g.
	// "src/{{.PackageName}}/__init__.py") against the context.
	RenderPath(path string, data any) (string, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use
// testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	out, err := execute(templateName, string(content), data)
	if err != nil {
		return nil, err
	}

	// Verify no unexpanded tokens remain. Shell-style $VAR is allowed:
	// generated Makefiles and CI workflows legitimately reference
	// runtime environment variables.
	if loc := unexpandedTokenPattern.Find(out); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(loc), templateName)
	}

	return out, nil
}

// RenderPath expands a templated relative path.
func (r *renderer) RenderPath(path string, data any) (string, error) {
	if !strings.Contains(path, "{{") {
		return path, nil
	}
	out, err := execute(path, path, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// execute runs a single template in strict mode.
func execute(name, text string, data any) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}
	return buf.Bytes(), nil
}
