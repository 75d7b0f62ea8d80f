package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pyforge/pyforge/internal/config"
	"github.com/pyforge/pyforge/pkg/models"
)

func soloLibraryConfig() models.ProjectConfig {
	return models.ProjectConfig{
		Name:          "demo",
		Kind:          models.KindLibrary,
		PythonVersion: "3.11",
		Framework:     models.FrameworkNone,
		TeamSize:      1,
		DeployTarget:  models.DeployNone,
	}
}

func newScaffolder(t *testing.T, opts ...Option) Scaffolder {
	t.Helper()
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestScaffolderRun(t *testing.T) {
	t.Run("solo_library", func(t *testing.T) {
		root := t.TempDir()
		s := newScaffolder(t)

		result, err := s.Run(context.Background(), Options{
			Config:     soloLibraryConfig(),
			TargetRoot: root,
		})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if !result.Emission.Ok() {
			t.Fatalf("unexpected failures: %v", result.Emission.Failed)
		}

		for _, want := range []string{
			"pyproject.toml",
			"README.md",
			filepath.Join("src", "demo", "__init__.py"),
			filepath.Join("tests", "__init__.py"),
		} {
			if _, err := os.Stat(filepath.Join(root, want)); err != nil {
				t.Errorf("expected file %s: %v", want, err)
			}
		}

		// No deploy or framework artifacts for this configuration.
		for _, unwanted := range []string{"Dockerfile", "manage.py"} {
			if _, err := os.Stat(filepath.Join(root, unwanted)); err == nil {
				t.Errorf("unexpected file %s", unwanted)
			}
		}
	})

	t.Run("writes_answer_file", func(t *testing.T) {
		root := t.TempDir()
		s := newScaffolder(t)

		result, err := s.Run(context.Background(), Options{
			Config:     soloLibraryConfig(),
			TargetRoot: root,
		})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}

		wantPath := filepath.Join(root, config.AnswerFileName)
		if result.AnswerFilePath != wantPath {
			t.Errorf("AnswerFilePath = %q, want %q", result.AnswerFilePath, wantPath)
		}

		loaded, err := config.LoadAnswerFile(wantPath)
		if err != nil {
			t.Fatalf("answer file not loadable: %v", err)
		}
		if loaded.Name != "demo" || loaded.PythonVersion != "3.11" {
			t.Errorf("answer file round trip mismatch: %+v", loaded)
		}
	})

	t.Run("skip_answer_file", func(t *testing.T) {
		root := t.TempDir()
		s := newScaffolder(t)

		result, err := s.Run(context.Background(), Options{
			Config:         soloLibraryConfig(),
			TargetRoot:     root,
			SkipAnswerFile: true,
		})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if result.AnswerFilePath != "" {
			t.Errorf("AnswerFilePath = %q, want empty", result.AnswerFilePath)
		}
		if _, err := os.Stat(filepath.Join(root, config.AnswerFileName)); err == nil {
			t.Error("answer file should not exist")
		}
	})

	t.Run("rerun_skips_everything", func(t *testing.T) {
		root := t.TempDir()
		s := newScaffolder(t)
		opts := Options{Config: soloLibraryConfig(), TargetRoot: root}

		first, err := s.Run(context.Background(), opts)
		if err != nil {
			t.Fatalf("first Run error: %v", err)
		}
		second, err := s.Run(context.Background(), opts)
		if err != nil {
			t.Fatalf("second Run error: %v", err)
		}

		if len(second.Emission.Created) != 0 {
			t.Errorf("second run created files: %v", second.Emission.Created)
		}
		if len(second.Emission.Skipped) != len(first.Emission.Created) {
			t.Errorf("second run Skipped = %d, want %d",
				len(second.Emission.Skipped), len(first.Emission.Created))
		}
	})

	t.Run("invalid_config_rejected", func(t *testing.T) {
		s := newScaffolder(t)
		cfg := soloLibraryConfig()
		cfg.Name = "9bad name!"

		_, err := s.Run(context.Background(), Options{Config: cfg, TargetRoot: t.TempDir()})
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "invalid configuration") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("defaults_applied", func(t *testing.T) {
		root := t.TempDir()
		s := newScaffolder(t)

		// Only the name is set; kind, python version, team size, deploy
		// target all come from defaults.
		_, err := s.Run(context.Background(), Options{
			Config:     models.ProjectConfig{Name: "defaulted"},
			TargetRoot: root,
		})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}

		loaded, err := config.LoadAnswerFile(filepath.Join(root, config.AnswerFileName))
		if err != nil {
			t.Fatalf("LoadAnswerFile error: %v", err)
		}
		if loaded.PythonVersion != config.DefaultPythonVersion {
			t.Errorf("PythonVersion = %q, want default %q", loaded.PythonVersion, config.DefaultPythonVersion)
		}
		if loaded.Kind != models.KindLibrary {
			t.Errorf("Kind = %q, want library default", loaded.Kind)
		}
	})

	t.Run("target_root_defaults_to_name", func(t *testing.T) {
		dir := t.TempDir()
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd error: %v", err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("Chdir error: %v", err)
		}
		t.Cleanup(func() { _ = os.Chdir(cwd) })

		s := newScaffolder(t)
		result, err := s.Run(context.Background(), Options{Config: soloLibraryConfig()})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if result.TargetRoot != "demo" {
			t.Errorf("TargetRoot = %q, want %q", result.TargetRoot, "demo")
		}
		if _, err := os.Stat(filepath.Join(dir, "demo", "README.md")); err != nil {
			t.Errorf("scaffold not created under ./demo: %v", err)
		}
	})

	t.Run("progress_callback", func(t *testing.T) {
		root := t.TempDir()

		var calls int
		var lastDone, total int
		s := newScaffolder(t, WithProgress(func(done, tot int, path string) {
			calls++
			lastDone, total = done, tot
		}))

		result, err := s.Run(context.Background(), Options{
			Config:     soloLibraryConfig(),
			TargetRoot: root,
		})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}

		wantEntries := len(result.Emission.Created) + len(result.Emission.Skipped) + len(result.Emission.Failed)
		if calls != wantEntries {
			t.Errorf("progress fired %d times, want %d", calls, wantEntries)
		}
		if lastDone != total {
			t.Errorf("final progress done = %d, total = %d", lastDone, total)
		}
	})
}

func TestScaffolderPlan(t *testing.T) {
	t.Run("lists_resolved_paths", func(t *testing.T) {
		s := newScaffolder(t)

		paths, err := s.Plan(soloLibraryConfig())
		if err != nil {
			t.Fatalf("Plan error: %v", err)
		}

		want := map[string]bool{
			"README.md":            false,
			"pyproject.toml":       false,
			"src/demo/__init__.py": false,
			"tests/__init__.py":    false,
		}
		for _, p := range paths {
			if _, ok := want[p]; ok {
				want[p] = true
			}
			if strings.Contains(p, "{{") {
				t.Errorf("unresolved template in planned path %q", p)
			}
		}
		for p, seen := range want {
			if !seen {
				t.Errorf("planned listing missing %q: %v", p, paths)
			}
		}
	})

	t.Run("plan_writes_nothing", func(t *testing.T) {
		dir := t.TempDir()
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd error: %v", err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("Chdir error: %v", err)
		}
		t.Cleanup(func() { _ = os.Chdir(cwd) })

		s := newScaffolder(t)
		if _, err := s.Plan(soloLibraryConfig()); err != nil {
			t.Fatalf("Plan error: %v", err)
		}

		items, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("Plan created files: %v", items)
		}
	})

	t.Run("invalid_config_rejected", func(t *testing.T) {
		s := newScaffolder(t)
		cfg := soloLibraryConfig()
		cfg.PythonVersion = "2.7"
		if _, err := s.Plan(cfg); err == nil {
			t.Fatal("expected validation error")
		}
	})
}
