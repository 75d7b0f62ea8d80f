package models

import (
	"regexp"
	"strings"
)

// ProjectKind classifies the kind of Python project being scaffolded.
type ProjectKind string

const (
	KindLibrary     ProjectKind = "library"
	KindCLI         ProjectKind = "cli"
	KindWeb         ProjectKind = "web"
	KindDataScience ProjectKind = "data-science"
	KindAPI         ProjectKind = "api"
)

// ValidProjectKinds returns all valid project kind values.
func ValidProjectKinds() []ProjectKind {
	return []ProjectKind{KindLibrary, KindCLI, KindWeb, KindDataScience, KindAPI}
}

// IsValid checks if the project kind is a valid value.
func (k ProjectKind) IsValid() bool {
	switch k {
	case KindLibrary, KindCLI, KindWeb, KindDataScience, KindAPI:
		return true
	}
	return false
}

// Framework identifies the web framework a project is built on.
type Framework string

const (
	FrameworkNone    Framework = "none"
	FrameworkDjango  Framework = "django"
	FrameworkFlask   Framework = "flask"
	FrameworkFastAPI Framework = "fastapi"
)

// ValidFrameworks returns all valid framework values.
func ValidFrameworks() []Framework {
	return []Framework{FrameworkNone, FrameworkDjango, FrameworkFlask, FrameworkFastAPI}
}

// IsValid checks if the framework is a valid value.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkNone, FrameworkDjango, FrameworkFlask, FrameworkFastAPI:
		return true
	}
	return false
}

// DeployTarget identifies where the scaffolded project will be deployed.
type DeployTarget string

const (
	DeployNone   DeployTarget = "none"
	DeployDocker DeployTarget = "docker"
	DeployCloud  DeployTarget = "cloud"
	DeployPyPI   DeployTarget = "pypi"
	DeployK8s    DeployTarget = "k8s"
)

// ValidDeployTargets returns all valid deployment target values.
func ValidDeployTargets() []DeployTarget {
	return []DeployTarget{DeployNone, DeployDocker, DeployCloud, DeployPyPI, DeployK8s}
}

// IsValid checks if the deployment target is a valid value.
func (d DeployTarget) IsValid() bool {
	switch d {
	case DeployNone, DeployDocker, DeployCloud, DeployPyPI, DeployK8s:
		return true
	}
	return false
}

// SupportedPythonVersions lists the Python minor versions the catalog
// carries boilerplate for, oldest first.
var SupportedPythonVersions = []string{"3.9", "3.10", "3.11", "3.12", "3.13"}

// IsSupportedPythonVersion reports whether version is one of the
// supported Python minor versions (e.g. "3.11").
func IsSupportedPythonVersion(version string) bool {
	for _, v := range SupportedPythonVersions {
		if v == version {
			return true
		}
	}
	return false
}

// ProjectConfig is the full set of user-supplied choices that drive
// which template entries apply. It is immutable once collected: the
// intake layer validates it and every later stage only reads it.
type ProjectConfig struct {
	Name          string       `yaml:"name" json:"name"`
	Kind          ProjectKind  `yaml:"kind" json:"kind"`
	PythonVersion string       `yaml:"python_version" json:"python_version"`
	Framework     Framework    `yaml:"framework" json:"framework"`
	TeamSize      int          `yaml:"team_size" json:"team_size"`
	DeployTarget  DeployTarget `yaml:"deploy_target" json:"deploy_target"`
}

// nonIdentifierPattern matches characters that are not valid in a
// Python package name.
var nonIdentifierPattern = regexp.MustCompile(`[^a-z0-9_]+`)

// PackageName derives the Python import package name from the project
// name: lowercased, dashes and spaces become underscores, everything
// else invalid is stripped. A name that reduces to nothing (or starts
// with a digit) is prefixed so the result stays importable.
func (c ProjectConfig) PackageName() string {
	name := strings.ToLower(strings.TrimSpace(c.Name))
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, " ", "_")
	name = nonIdentifierPattern.ReplaceAllString(name, "")
	name = strings.Trim(name, "_")
	if name == "" {
		return "project"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "pkg_" + name
	}
	return name
}
