// Package models provides the shared data model for pyforge.
//
// This package contains the project configuration record and its
// enumerated value types, used across the wizard, the template
// catalog, and the tree emitter.
//
// # Project Kinds
//
// A scaffolded project is one of five kinds:
//   - library: a reusable, typed Python package
//   - cli: a command-line tool with a console entry point
//   - web: a browser-facing web application
//   - data-science: a notebook-and-pipeline analysis project
//   - api: a backend API service
//
// # Frameworks
//
// Web and API projects may pick a framework (django, flask, fastapi)
// or stay framework-free with "none". Use the [Framework] type and
// its constants:
//
//	fw := models.FrameworkFastAPI
//	if fw.IsValid() {
//	    fmt.Println("Valid framework:", fw)
//	}
//
// # Deployment Targets
//
// The deployment target (none, docker, cloud, pypi, k8s) decides
// which packaging and CI boilerplate the catalog includes.
package models
