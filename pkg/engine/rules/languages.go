package rules

import (
	"slices"
	"strings"
)

// Language names are the ones GitHub's linguist reports.

// DependabotLanguages are tracked by Dependabot without extra setup. Languages
// that never carry package dependencies are listed too so they do not count
// against a repository.
var DependabotLanguages = []string{
	"C#", "CSS", "Dart", "Dockerfile", "Elixir", "Go", "HCL", "HTML", "Java",
	"JavaScript", "Jupyter Notebook", "Makefile", "PHP", "PLpgSQL", "Procfile",
	"Python", "Ruby", "Rust", "SCSS", "Shell", "Swift", "TypeScript", "VCL",
}

// SnykLanguages are tracked when the repository is imported into Snyk.
var SnykLanguages = []string{
	"C#", "CSS", "Dockerfile", "Go", "HCL", "HTML", "Java", "JavaScript",
	"Kotlin", "Makefile", "PHP", "Python", "Ruby", "SCSS", "Scala", "Shell",
	"Swift", "TypeScript",
}

// DependencyGraphWorkflows maps a language Dependabot cannot read natively to
// the action that submits its dependency graph.
var DependencyGraphWorkflows = map[string]string{
	"Scala":  "scalacenter/sbt-dependency-submission",
	"Kotlin": "gradle/actions/dependency-submission",
}

// DependencyGraphLanguages is DependencyGraphWorkflows' keys in a stable order.
var DependencyGraphLanguages = []string{"Scala", "Kotlin"}

// HasSubmissionWorkflow reports whether repo's workflows use the dependency
// submission action for language. Version suffixes such as "@v2" are ignored.
func HasSubmissionWorkflow(workflowUsages []string, language string) bool {
	action, ok := DependencyGraphWorkflows[language]
	if !ok {
		return false
	}
	return slices.ContainsFunc(workflowUsages, func(uses string) bool {
		name, _, _ := strings.Cut(uses, "@")
		return name == action
	})
}
