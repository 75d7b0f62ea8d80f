// Package scaffold orchestrates project generation: it validates the
// configuration, selects catalog entries, emits the file tree, and
// records the answers that produced it.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pyforge/pyforge/internal/config"
	"github.com/pyforge/pyforge/internal/template"
	"github.com/pyforge/pyforge/pkg/models"
	"github.com/pyforge/pyforge/pkg/version"
)

// Options configures a scaffolding run.
type Options struct {
	Config         models.ProjectConfig // Validated-or-validatable project configuration.
	TargetRoot     string               // Directory to scaffold into. Defaults to ./<project name>.
	SkipAnswerFile bool                 // If true, do not write pyforge.yaml into the target.
}

// Result summarizes the outcome of a scaffolding run.
type Result struct {
	TargetRoot     string                   // Resolved target directory.
	Emission       *template.EmissionResult // Per-file outcome of the run.
	AnswerFilePath string                   // Non-empty if pyforge.yaml was written.
	Warnings       []string                 // Non-fatal warnings during the run.
	Duration       time.Duration            // Wall time of the run.
}

// ProgressFunc is invoked after each emitted entry. done counts entries
// processed so far, total is the number selected for this run.
type ProgressFunc func(done, total int, path string)

// Scaffolder handles project scaffolding and setup.
type Scaffolder interface {
	// Run creates a new project tree with the given options.
	Run(ctx context.Context, opts Options) (*Result, error)
	// Plan resolves the entry paths a run would emit, without writing.
	Plan(cfg models.ProjectConfig) ([]string, error)
}

// scaffolder is the concrete implementation of Scaffolder.
type scaffolder struct {
	emitter  template.Emitter
	logger   *slog.Logger
	progress ProgressFunc
}

// Option configures a Scaffolder.
type Option func(*scaffolder)

// WithLogger sets the logger used during scaffolding.
func WithLogger(logger *slog.Logger) Option {
	return func(s *scaffolder) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProgress registers a per-entry progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(s *scaffolder) {
		s.progress = fn
	}
}

// New creates a Scaffolder backed by the embedded template catalog.
func New(opts ...Option) (Scaffolder, error) {
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}
	return NewWithEmitter(template.NewEmitter(fsys), opts...), nil
}

// NewWithEmitter creates a Scaffolder with an explicit emitter. Used by
// tests to substitute a fixture filesystem.
func NewWithEmitter(emitter template.Emitter, opts ...Option) Scaffolder {
	s := &scaffolder{
		emitter: emitter,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run creates a new project tree with the given options.
func (s *scaffolder) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := opts.Config
	config.ApplyDefaults(&cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	targetRoot := opts.TargetRoot
	if targetRoot == "" {
		targetRoot = cfg.Name
	}
	targetRoot = filepath.Clean(targetRoot)

	s.logger.Info("scaffolding project",
		"name", cfg.Name,
		"kind", cfg.Kind,
		"python", cfg.PythonVersion,
		"root", targetRoot,
	)

	result := &Result{TargetRoot: targetRoot}

	entries := template.EntriesFor(cfg)
	rctx := template.NewRenderContext(cfg, template.WithVersion(version.GetVersion()))

	emission, err := s.emit(ctx, entries, rctx, targetRoot)
	if emission != nil {
		result.Emission = emission
	}
	if err != nil {
		return result, err
	}

	for path, reason := range emission.Failed {
		s.logger.Warn("entry not written", "path", path, "reason", reason)
	}

	if !opts.SkipAnswerFile {
		answerPath, warn := s.writeAnswerFile(cfg, targetRoot)
		result.AnswerFilePath = answerPath
		if warn != "" {
			result.Warnings = append(result.Warnings, warn)
		}
	}

	result.Duration = time.Since(start)

	s.logger.Info("project scaffolded",
		"created", len(emission.Created),
		"skipped", len(emission.Skipped),
		"failed", len(emission.Failed),
		"duration", result.Duration,
	)

	return result, nil
}

// Plan resolves the entry paths a run would emit, without writing.
func (s *scaffolder) Plan(cfg models.ProjectConfig) ([]string, error) {
	config.ApplyDefaults(&cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	rctx := template.NewRenderContext(cfg)
	renderer := template.NewRenderer(nil)

	entries := template.EntriesFor(cfg)
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		path, err := renderer.RenderPath(entry.Path, rctx)
		if err != nil {
			return nil, fmt.Errorf("resolve path %s: %w", entry.Path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// emit materializes entries against targetRoot. Without a progress
// callback the whole batch goes through the emitter at once. With one,
// entries are emitted individually so the callback can fire after each,
// with the per-entry results merged into a single EmissionResult.
func (s *scaffolder) emit(ctx context.Context, entries []template.Entry, rctx *template.RenderContext, targetRoot string) (*template.EmissionResult, error) {
	if s.progress == nil {
		return s.emitter.Emit(ctx, entries, rctx, targetRoot)
	}

	merged := &template.EmissionResult{Failed: make(map[string]string)}
	for i, entry := range entries {
		partial, err := s.emitter.Emit(ctx, []template.Entry{entry}, rctx, targetRoot)
		if partial != nil {
			merged.Created = append(merged.Created, partial.Created...)
			merged.Skipped = append(merged.Skipped, partial.Skipped...)
			for path, reason := range partial.Failed {
				merged.Failed[path] = reason
			}
		}
		if err != nil {
			return merged, err
		}
		s.progress(i+1, len(entries), entry.Path)
	}
	return merged, nil
}

// writeAnswerFile records the configuration that produced the scaffold
// as pyforge.yaml inside the target root. An existing file is preserved.
// Failure to write is a warning, never fatal.
func (s *scaffolder) writeAnswerFile(cfg models.ProjectConfig, targetRoot string) (path, warning string) {
	answerPath := filepath.Join(targetRoot, config.AnswerFileName)

	if _, err := os.Stat(answerPath); err == nil {
		s.logger.Info("answer file already exists, keeping it", "path", answerPath)
		return answerPath, ""
	}

	data, err := config.MarshalAnswerFile(cfg)
	if err != nil {
		return "", fmt.Sprintf("marshal answer file: %s", err)
	}
	if err := os.WriteFile(answerPath, data, 0o644); err != nil {
		return "", fmt.Sprintf("write answer file: %s", err)
	}
	return answerPath, ""
}
