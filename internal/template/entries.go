package template

import "github.com/pyforge/pyforge/pkg/models"

// Predicate helpers for catalog conditions.

func whenKind(kinds ...models.ProjectKind) func(models.ProjectConfig) bool {
	return func(cfg models.ProjectConfig) bool {
		for _, k := range kinds {
			if cfg.Kind == k {
				return true
			}
		}
		return false
	}
}

func whenFramework(fw models.Framework) func(models.ProjectConfig) bool {
	return func(cfg models.ProjectConfig) bool {
		return cfg.Framework == fw
	}
}

func whenDeploy(targets ...models.DeployTarget) func(models.ProjectConfig) bool {
	return func(cfg models.ProjectConfig) bool {
		for _, t := range targets {
			if cfg.DeployTarget == t {
				return true
			}
		}
		return false
	}
}

func whenTeam(minSize int) func(models.ProjectConfig) bool {
	return func(cfg models.ProjectConfig) bool {
		return cfg.TeamSize >= minSize
	}
}

// catalog is the full static scaffold catalog. Entries are defined at
// build time and never mutated; EntriesFor filters and orders them per
// configuration. Every Path is unique (checked at init).
var catalog = []Entry{
	// Baseline files every project gets.
	{Path: "README.md", Source: "common/README.md.tmpl", Mode: 0o644},
	{Path: "pyproject.toml", Source: "common/pyproject.toml.tmpl", Mode: 0o644},
	{Path: ".gitignore", Source: "common/gitignore", Mode: 0o644},
	{Path: ".editorconfig", Source: "common/editorconfig", Mode: 0o644},
	{Path: ".pre-commit-config.yaml", Source: "common/pre-commit-config.yaml", Mode: 0o644},
	{Path: "Makefile", Source: "common/Makefile.tmpl", Mode: 0o644},
	{Path: ".github/workflows/ci.yml", Source: "ci/ci.yml.tmpl", Mode: 0o644},
	{Path: "src/{{.PackageName}}/__init__.py", Source: "common/package_init.py.tmpl", Mode: 0o644},
	{Path: "tests/__init__.py", Source: "common/tests_init.py", Mode: 0o644},

	// Framework-free projects get a plain pytest conftest.
	{Path: "tests/conftest.py", Source: "common/conftest.py", Mode: 0o644,
		When: whenFramework(models.FrameworkNone)},

	// Kind-specific files.
	{Path: "src/{{.PackageName}}/py.typed", Source: "common/py.typed", Mode: 0o644,
		When: whenKind(models.KindLibrary)},
	{Path: "src/{{.PackageName}}/cli.py", Source: "kind/cli.py.tmpl", Mode: 0o644,
		When: whenKind(models.KindCLI)},
	{Path: "src/{{.PackageName}}/__main__.py", Source: "kind/main_module.py.tmpl", Mode: 0o644,
		When: whenKind(models.KindCLI)},
	{Path: "notebooks/README.md", Source: "kind/notebooks_README.md.tmpl", Mode: 0o644,
		When: whenKind(models.KindDataScience)},
	{Path: "data/.gitkeep", Source: "common/gitkeep", Mode: 0o644,
		When: whenKind(models.KindDataScience)},
	{Path: "src/{{.PackageName}}/pipeline.py", Source: "kind/pipeline.py.tmpl", Mode: 0o644,
		When: whenKind(models.KindDataScience)},

	// Django.
	{Path: "manage.py", Source: "framework/django/manage.py.tmpl", Mode: 0o755,
		When: whenFramework(models.FrameworkDjango)},
	{Path: "src/{{.PackageName}}/settings.py", Source: "framework/django/settings.py.tmpl", Mode: 0o644,
		When: whenFramework(models.FrameworkDjango)},
	{Path: "src/{{.PackageName}}/urls.py", Source: "framework/django/urls.py.tmpl", Mode: 0o644,
		When: whenFramework(models.FrameworkDjango)},
	{Path: "src/{{.PackageName}}/wsgi.py", Source: "framework/django/wsgi.py.tmpl", Mode: 0o644,
		When: whenFramework(models.FrameworkDjango)},
	{Path: "tests/test_views.py", Source: "framework/django/test_views.py.tmpl", Mode: 0o644,
		When: whenFramework(models.FrameworkDjango)},

	// Flask.
	{Path: "src/{{.PackageName}}/app.py", Source: "framework/flask/app.py.tmpl", Mode: 0o644,
		When: whenFramework(models.FrameworkFlask)},
	{Path: "tests/test_app.py", Source: "framework/flask/test_app.py.tmpl", Mode: 0o644,
		When: whenFramework(models.FrameworkFlask)},

	// FastAPI.
	{Path: "src/{{.PackageName}}/main.py", Source: "framework/fastapi/main.py.tmpl", Mode: 0o644,
		When: whenFramework(models.FrameworkFastAPI)},
	{Path: "src/{{.PackageName}}/routers/__init__.py", Source: "framework/fastapi/routers_init.py", Mode: 0o644,
		When: whenFramework(models.FrameworkFastAPI)},
	{Path: "tests/test_api.py", Source: "framework/fastapi/test_api.py.tmpl", Mode: 0o644,
		When: whenFramework(models.FrameworkFastAPI)},

	// Container targets share the Dockerfile.
	{Path: "Dockerfile", Source: "deploy/Dockerfile.tmpl", Mode: 0o644,
		When: whenDeploy(models.DeployDocker, models.DeployK8s, models.DeployCloud)},
	{Path: ".dockerignore", Source: "deploy/dockerignore", Mode: 0o644,
		When: whenDeploy(models.DeployDocker, models.DeployK8s, models.DeployCloud)},
	{Path: "docker-compose.yaml", Source: "deploy/docker-compose.yaml.tmpl", Mode: 0o644,
		When: whenDeploy(models.DeployDocker)},
	{Path: "deploy/k8s/deployment.yaml", Source: "deploy/k8s/deployment.yaml.tmpl", Mode: 0o644,
		When: whenDeploy(models.DeployK8s)},
	{Path: "deploy/k8s/service.yaml", Source: "deploy/k8s/service.yaml.tmpl", Mode: 0o644,
		When: whenDeploy(models.DeployK8s)},
	{Path: ".github/workflows/release.yml", Source: "ci/release.yml.tmpl", Mode: 0o644,
		When: whenDeploy(models.DeployPyPI)},
	{Path: ".github/workflows/deploy.yml", Source: "ci/deploy.yml.tmpl", Mode: 0o644,
		When: whenDeploy(models.DeployCloud)},

	// Team collaboration files.
	{Path: ".github/CODEOWNERS", Source: "team/CODEOWNERS.tmpl", Mode: 0o644,
		When: whenTeam(2)},
	{Path: "CONTRIBUTING.md", Source: "team/CONTRIBUTING.md.tmpl", Mode: 0o644,
		When: whenTeam(2)},
}
