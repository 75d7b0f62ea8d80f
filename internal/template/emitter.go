package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EmissionResult aggregates the outcome of a single emission run.
// Created fresh per invocation and returned to the caller.
type EmissionResult struct {
	// Created lists paths written during this run, in emission order.
	Created []string
	// Skipped lists paths that already existed and were left untouched.
	Skipped []string
	// Failed maps each path that could not be written to the reason.
	Failed map[string]string
}

// Ok reports whether the run completed without per-entry failures.
func (r *EmissionResult) Ok() bool {
	return len(r.Failed) == 0
}

// Emitter materializes catalog entries at a target root directory,
// skipping files that already exist.
type Emitter interface {
	// Emit processes entries in order against targetRoot. A file that
	// already exists is recorded as skipped and never modified, so
	// re-running a scaffold cannot clobber user edits. A write failure
	// is recorded per entry and does not stop the run. Only a
	// structurally invalid targetRoot aborts before any writes.
	Emit(ctx context.Context, entries []Entry, rctx *RenderContext, targetRoot string) (*EmissionResult, error)
}

// emitter is the concrete implementation of Emitter.
type emitter struct {
	fsys     fs.FS
	renderer Renderer
}

// NewEmitter creates an Emitter reading sources from the given
// filesystem. In production the fs.FS comes from go:embed; in tests
// use testing/fstest.MapFS.
func NewEmitter(fsys fs.FS) Emitter {
	return &emitter{fsys: fsys, renderer: NewRenderer(fsys)}
}

// Emit writes every applicable entry under targetRoot.
func (e *emitter) Emit(ctx context.Context, entries []Entry, rctx *RenderContext, targetRoot string) (*EmissionResult, error) {
	targetRoot = filepath.Clean(targetRoot)

	if err := ensureTargetRoot(targetRoot); err != nil {
		return nil, err
	}

	result := &EmissionResult{Failed: make(map[string]string)}

	for _, entry := range entries {
		// Check context cancellation before each entry. Entries are
		// independent, so an abort here leaves a safe, resumable
		// partial state.
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		relPath, err := e.renderer.RenderPath(entry.Path, rctx)
		if err != nil {
			result.Failed[entry.Path] = err.Error()
			continue
		}

		if err := validateEntryPath(targetRoot, relPath); err != nil {
			result.Failed[relPath] = err.Error()
			continue
		}

		destPath := filepath.Join(targetRoot, filepath.FromSlash(relPath))

		// Existing file protection: never overwrite. Re-running a
		// scaffold records the file as skipped instead.
		if _, statErr := os.Stat(destPath); statErr == nil {
			result.Skipped = append(result.Skipped, relPath)
			continue
		}

		content, err := e.readEntry(entry, rctx)
		if err != nil {
			result.Failed[relPath] = err.Error()
			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			result.Failed[relPath] = fmt.Sprintf("mkdir: %v", err)
			continue
		}

		mode := entry.Mode
		if mode == 0 {
			mode = 0o644
		}
		if err := os.WriteFile(destPath, content, mode); err != nil {
			result.Failed[relPath] = fmt.Sprintf("write: %v", err)
			continue
		}

		result.Created = append(result.Created, relPath)
	}

	return result, nil
}

// readEntry resolves an entry's content: rendered for .tmpl sources,
// verbatim otherwise.
func (e *emitter) readEntry(entry Entry, rctx *RenderContext) ([]byte, error) {
	if entry.rendered() {
		return e.renderer.Render(entry.Source, rctx)
	}
	content, err := fs.ReadFile(e.fsys, entry.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, entry.Source)
	}
	return content, nil
}

// ensureTargetRoot verifies the emission target is usable before any
// writes begin: an existing non-directory or an uncreatable path is a
// fatal precondition failure.
func ensureTargetRoot(targetRoot string) error {
	info, err := os.Stat(targetRoot)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", ErrBadTargetRoot, targetRoot)
		}
		return nil
	case os.IsNotExist(err):
		if mkErr := os.MkdirAll(targetRoot, 0o755); mkErr != nil {
			return fmt.Errorf("%w: %s: %v", ErrBadTargetRoot, targetRoot, mkErr)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s: %v", ErrBadTargetRoot, targetRoot, err)
	}
}

// validateEntryPath ensures an entry path does not escape the target root.
func validateEntryPath(targetRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absRoot, err := filepath.Abs(targetRoot)
	if err != nil {
		return fmt.Errorf("resolve target root: %w", err)
	}

	absPath := filepath.Join(absRoot, cleaned)
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) && absPath != absRoot {
		return fmt.Errorf("%w: %q escapes target root", ErrPathTraversal, relPath)
	}

	return nil
}
