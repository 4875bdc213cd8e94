// Package dependabot holds the subset of the GitHub Dependabot alert payload
// that repocop reads. Values of these types do not leave the reconciler.
package dependabot

import "time"

type Alert struct {
	Number                int                   `json:"number"`
	State                 string                `json:"state"`
	Dependency            Dependency            `json:"dependency"`
	SecurityAdvisory      SecurityAdvisory      `json:"security_advisory"`
	SecurityVulnerability SecurityVulnerability `json:"security_vulnerability"`
	HTMLURL               string                `json:"html_url"`
	CreatedAt             time.Time             `json:"created_at"`
}

type Dependency struct {
	Package      Package `json:"package"`
	ManifestPath string  `json:"manifest_path"`
	Scope        string  `json:"scope"`
}

type Package struct {
	Ecosystem string `json:"ecosystem"`
	Name      string `json:"name"`
}

type SecurityAdvisory struct {
	GHSAID      string       `json:"ghsa_id"`
	CVEID       *string      `json:"cve_id"`
	Summary     string       `json:"summary"`
	Severity    string       `json:"severity"`
	Identifiers []Identifier `json:"identifiers"`
	References  []Reference  `json:"references"`
}

type Identifier struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Reference struct {
	URL string `json:"url"`
}

type SecurityVulnerability struct {
	Package                Package         `json:"package"`
	Severity               string          `json:"severity"`
	VulnerableVersionRange string          `json:"vulnerable_version_range"`
	FirstPatchedVersion    *PatchedVersion `json:"first_patched_version"`
}

type PatchedVersion struct {
	Identifier string `json:"identifier"`
}

const (
	StateOpen        = "open"
	ScopeDevelopment = "development"
)

// RepoAlert is an alert together with the repository it was raised on.
type RepoAlert struct {
	FullName string `json:"full_name"`
	Alert    Alert  `json:"alert"`
}
