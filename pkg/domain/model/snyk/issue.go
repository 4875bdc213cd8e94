// Package snyk holds the subset of the Snyk REST issue and project payloads
// that repocop reads.
package snyk

import "time"

type Issue struct {
	ID            string             `json:"id"`
	Type          string             `json:"type"`
	Attributes    IssueAttributes    `json:"attributes"`
	Relationships IssueRelationships `json:"relationships"`
}

type IssueAttributes struct {
	Key                    string       `json:"key"`
	Title                  string       `json:"title"`
	Status                 string       `json:"status"`
	EffectiveSeverityLevel string       `json:"effective_severity_level"`
	CreatedAt              time.Time    `json:"created_at"`
	Coordinates            []Coordinate `json:"coordinates"`
	Problems               []Problem    `json:"problems"`
}

type Coordinate struct {
	IsUpgradeable   *bool            `json:"is_upgradeable"`
	IsPatchable     *bool            `json:"is_patchable"`
	IsPinnable      *bool            `json:"is_pinnable"`
	Representations []Representation `json:"representations"`
}

type Representation struct {
	Dependency *Dependency `json:"dependency"`
}

type Dependency struct {
	PackageName    string `json:"package_name"`
	PackageVersion string `json:"package_version"`
}

type Problem struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

type IssueRelationships struct {
	ScanItem Relationship `json:"scan_item"`
}

type Relationship struct {
	Data RelationshipData `json:"data"`
}

type RelationshipData struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// ProjectID is the project the issue was found in.
func (x Issue) ProjectID() string {
	return x.Relationships.ScanItem.Data.ID
}

const StatusOpen = "open"
