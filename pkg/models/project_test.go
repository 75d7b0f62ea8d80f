package models

import "testing"

func TestProjectKindIsValid(t *testing.T) {
	tests := []struct {
		name string
		kind ProjectKind
		want bool
	}{
		{"library", KindLibrary, true},
		{"cli", KindCLI, true},
		{"web", KindWeb, true},
		{"data_science", KindDataScience, true},
		{"api", KindAPI, true},
		{"empty", ProjectKind(""), false},
		{"unknown", ProjectKind("desktop"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestFrameworkIsValid(t *testing.T) {
	for _, f := range ValidFrameworks() {
		if !f.IsValid() {
			t.Errorf("ValidFrameworks() returned invalid value %q", f)
		}
	}
	if Framework("rails").IsValid() {
		t.Error("expected rails to be invalid")
	}
	if Framework("").IsValid() {
		t.Error("expected empty framework to be invalid")
	}
}

func TestDeployTargetIsValid(t *testing.T) {
	for _, d := range ValidDeployTargets() {
		if !d.IsValid() {
			t.Errorf("ValidDeployTargets() returned invalid value %q", d)
		}
	}
	if DeployTarget("heroku").IsValid() {
		t.Error("expected heroku to be invalid")
	}
}

func TestIsSupportedPythonVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"3.9", true},
		{"3.11", true},
		{"3.13", true},
		{"3.8", false},
		{"3.14", false},
		{"2.7", false},
		{"3.11.4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			if got := IsSupportedPythonVersion(tt.version); got != tt.want {
				t.Errorf("IsSupportedPythonVersion(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		name    string
		project string
		want    string
	}{
		{"simple", "demo", "demo"},
		{"dashes", "my-cool-app", "my_cool_app"},
		{"spaces", "My App", "my_app"},
		{"mixed_case", "DataPipeline", "datapipeline"},
		{"leading_digit", "3dviewer", "pkg_3dviewer"},
		{"special_chars", "app!@#", "app"},
		{"only_invalid", "!!!", "project"},
		{"surrounding_underscores", "_app_", "app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ProjectConfig{Name: tt.project}
			if got := cfg.PackageName(); got != tt.want {
				t.Errorf("PackageName() = %q, want %q", got, tt.want)
			}
		})
	}
}
