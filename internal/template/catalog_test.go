package template

import (
	"io/fs"
	"reflect"
	"testing"

	"github.com/pyforge/pyforge/pkg/models"
)

func libraryConfig() models.ProjectConfig {
	return models.ProjectConfig{
		Name:          "demo",
		Kind:          models.KindLibrary,
		PythonVersion: "3.11",
		Framework:     models.FrameworkNone,
		TeamSize:      1,
		DeployTarget:  models.DeployNone,
	}
}

func entryPaths(entries []Entry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}

func TestEntriesForDeterminism(t *testing.T) {
	cfg := libraryConfig()

	first := entryPaths(EntriesFor(cfg))
	for range 5 {
		again := entryPaths(EntriesFor(cfg))
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("EntriesFor not deterministic:\nfirst = %v\nagain = %v", first, again)
		}
	}
}

func TestEntriesForBaseline(t *testing.T) {
	entries := EntriesFor(libraryConfig())
	paths := entryPaths(entries)

	want := []string{
		"README.md",
		"pyproject.toml",
		".gitignore",
		"src/{{.PackageName}}/__init__.py",
		"tests/__init__.py",
		"src/{{.PackageName}}/py.typed",
		"tests/conftest.py",
	}
	for _, w := range want {
		if !containsString(paths, w) {
			t.Errorf("expected entry %q for library config, got: %v", w, paths)
		}
	}

	// No framework, deploy, or team files for a solo library.
	unwanted := []string{"Dockerfile", "manage.py", "CONTRIBUTING.md", ".github/CODEOWNERS"}
	for _, u := range unwanted {
		if containsString(paths, u) {
			t.Errorf("unexpected entry %q for library config", u)
		}
	}
}

func TestEntriesForFrameworkCoverage(t *testing.T) {
	// Every framework value, including none, must select at least one
	// framework-conditioned entry.
	tests := []struct {
		framework models.Framework
		marker    string
	}{
		{models.FrameworkNone, "tests/conftest.py"},
		{models.FrameworkDjango, "manage.py"},
		{models.FrameworkFlask, "src/{{.PackageName}}/app.py"},
		{models.FrameworkFastAPI, "src/{{.PackageName}}/main.py"},
	}

	for _, tt := range tests {
		t.Run(string(tt.framework), func(t *testing.T) {
			cfg := libraryConfig()
			if tt.framework != models.FrameworkNone {
				cfg.Kind = models.KindWeb
			}
			cfg.Framework = tt.framework

			paths := entryPaths(EntriesFor(cfg))
			if !containsString(paths, tt.marker) {
				t.Errorf("framework %q: expected entry %q, got: %v", tt.framework, tt.marker, paths)
			}
		})
	}
}

func TestEntriesForDeployTargets(t *testing.T) {
	tests := []struct {
		target models.DeployTarget
		want   []string
	}{
		{models.DeployDocker, []string{"Dockerfile", ".dockerignore", "docker-compose.yaml"}},
		{models.DeployK8s, []string{"Dockerfile", "deploy/k8s/deployment.yaml", "deploy/k8s/service.yaml"}},
		{models.DeployCloud, []string{"Dockerfile", ".github/workflows/deploy.yml"}},
		{models.DeployPyPI, []string{".github/workflows/release.yml"}},
		{models.DeployNone, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			cfg := libraryConfig()
			cfg.DeployTarget = tt.target
			paths := entryPaths(EntriesFor(cfg))

			for _, w := range tt.want {
				if !containsString(paths, w) {
					t.Errorf("target %q: expected entry %q", tt.target, w)
				}
			}
			if tt.target == models.DeployNone && containsString(paths, "Dockerfile") {
				t.Error("target none should not include Dockerfile")
			}
		})
	}
}

func TestEntriesForTeamFiles(t *testing.T) {
	solo := libraryConfig()
	if paths := entryPaths(EntriesFor(solo)); containsString(paths, "CONTRIBUTING.md") {
		t.Error("solo project should not include CONTRIBUTING.md")
	}

	team := libraryConfig()
	team.TeamSize = 2
	paths := entryPaths(EntriesFor(team))
	for _, w := range []string{"CONTRIBUTING.md", ".github/CODEOWNERS"} {
		if !containsString(paths, w) {
			t.Errorf("team project: expected entry %q", w)
		}
	}
}

func TestEntriesForOrdering(t *testing.T) {
	cfg := libraryConfig()
	cfg.TeamSize = 3
	cfg.DeployTarget = models.DeployK8s

	paths := entryPaths(EntriesFor(cfg))

	idx := func(p string) int {
		for i, v := range paths {
			if v == p {
				return i
			}
		}
		t.Fatalf("path %q not in listing %v", p, paths)
		return -1
	}

	// Directory-descending paths come before plain files at the same level.
	if idx("src/{{.PackageName}}/__init__.py") > idx("Makefile") {
		t.Error("src/ entries should precede root-level files")
	}
	if idx(".github/CODEOWNERS") > idx(".gitignore") {
		t.Error(".github/ entries should precede root-level dotfiles")
	}
	// Lexicographic within a directory.
	if idx("deploy/k8s/deployment.yaml") > idx("deploy/k8s/service.yaml") {
		t.Error("deployment.yaml should precede service.yaml")
	}
	if idx("README.md") > idx("pyproject.toml") {
		t.Error("README.md should precede pyproject.toml")
	}
}

func TestPathLess(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"siblings", "a.txt", "b.txt", true},
		{"siblings_reverse", "b.txt", "a.txt", false},
		{"dir_before_file", "src/x.py", "Makefile", true},
		{"file_after_dir", "Makefile", "src/x.py", false},
		{"nested_lexicographic", "src/a.py", "src/b.py", true},
		{"deeper_dir_first", "src/pkg/x.py", "src/a.py", true},
		{"equal_prefix_shorter_first", "a", "a/b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathLess(tt.a, tt.b); got != tt.want {
				t.Errorf("pathLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCatalogInvariants(t *testing.T) {
	t.Run("unique_paths", func(t *testing.T) {
		if err := checkCatalog(catalog); err != nil {
			t.Fatalf("catalog has duplicate paths: %v", err)
		}
	})

	t.Run("duplicate_detected", func(t *testing.T) {
		bad := []Entry{{Path: "a"}, {Path: "a"}}
		if err := checkCatalog(bad); err == nil {
			t.Fatal("expected duplicate entry error")
		}
	})

	t.Run("all_sources_embedded", func(t *testing.T) {
		fsys, err := EmbeddedTemplates()
		if err != nil {
			t.Fatalf("EmbeddedTemplates() error: %v", err)
		}
		for _, e := range catalog {
			if _, err := fs.Stat(fsys, e.Source); err != nil {
				t.Errorf("entry %q: source %q missing from embedded FS: %v", e.Path, e.Source, err)
			}
		}
	})
}

func containsString(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
