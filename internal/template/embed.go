package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates
var embeddedFS embed.FS

// EmbeddedTemplates returns the embedded template tree rooted at the
// templates directory, so catalog sources resolve without the
// "templates/" prefix.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return sub, nil
}
