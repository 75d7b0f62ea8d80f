package guide

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	want := []string{"ci", "deployment", "layout", "tooling"}
	if got := Topics(); !reflect.DeepEqual(got, want) {
		t.Errorf("Topics() = %v, want %v", got, want)
	}
}

func TestContent(t *testing.T) {
	t.Run("known_topic", func(t *testing.T) {
		content, err := Content("layout")
		if err != nil {
			t.Fatalf("Content error: %v", err)
		}
		if !strings.Contains(content, "src-layout") {
			t.Errorf("layout topic missing expected text")
		}
	})

	t.Run("unknown_topic_lists_available", func(t *testing.T) {
		_, err := Content("nonexistent")
		if err == nil {
			t.Fatal("expected error for unknown topic")
		}
		for _, topic := range Topics() {
			if !strings.Contains(err.Error(), topic) {
				t.Errorf("error should list topic %q: %v", topic, err)
			}
		}
	})
}

func TestRender(t *testing.T) {
	t.Run("plain_returns_raw_markdown", func(t *testing.T) {
		raw, err := Content("tooling")
		if err != nil {
			t.Fatalf("Content error: %v", err)
		}
		rendered, err := Render("tooling", true)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if rendered != raw {
			t.Error("plain render should return markdown unchanged")
		}
	})

	t.Run("styled_keeps_content", func(t *testing.T) {
		rendered, err := Render("ci", false)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(rendered, "Pipeline stages") {
			t.Errorf("rendered output lost content")
		}
	})

	t.Run("unknown_topic", func(t *testing.T) {
		if _, err := Render("nope", false); err == nil {
			t.Fatal("expected error for unknown topic")
		}
	})
}
