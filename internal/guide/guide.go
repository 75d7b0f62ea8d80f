// Package guide serves the built-in documentation topics shown by
// "pyforge guide", rendered as styled markdown on a terminal.
package guide

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed topics/*.md
var topicsFS embed.FS

const topicsDir = "topics"

// Topics returns the available guide topic names, sorted.
func Topics() []string {
	entries, err := topicsFS.ReadDir(topicsDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Content returns the raw markdown for a topic.
func Content(topic string) (string, error) {
	data, err := topicsFS.ReadFile(topicsDir + "/" + topic + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown guide topic %q (available: %s)", topic, strings.Join(Topics(), ", "))
	}
	return string(data), nil
}

// Render returns a topic rendered for terminal display. With plain set,
// or when the renderer cannot be constructed, the raw markdown is
// returned unchanged.
func Render(topic string, plain bool) (string, error) {
	content, err := Content(topic)
	if err != nil {
		return "", err
	}
	if plain {
		return content, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content, nil
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil
	}
	return out, nil
}
