// Package template holds the static scaffold catalog, the strict
// renderer for its files, and the tree emitter that materializes a
// selected set of entries at a target root.
package template

import "errors"

// Sentinel errors for catalog and emitter operations.
var (
	// ErrTemplateNotFound indicates a catalog entry references a
	// template that does not exist in the embedded filesystem.
	ErrTemplateNotFound = errors.New("template: template not found")

	// ErrMissingTemplateKey indicates a template referenced a context
	// key that was not provided (strict-mode rendering).
	ErrMissingTemplateKey = errors.New("template: missing template key")

	// ErrUnexpandedToken indicates rendered output still contains a
	// dynamic token such as {{Var}} or ${VAR}.
	ErrUnexpandedToken = errors.New("template: unexpanded token in rendered output")

	// ErrPathTraversal indicates an entry path would escape the target root.
	ErrPathTraversal = errors.New("template: path escapes target root")

	// ErrBadTargetRoot indicates the emission target is structurally
	// unusable: it exists but is not a directory, or it cannot be created.
	ErrBadTargetRoot = errors.New("template: invalid target root")

	// ErrDuplicateEntry indicates two catalog entries share a rendered path.
	ErrDuplicateEntry = errors.New("template: duplicate catalog entry path")
)
