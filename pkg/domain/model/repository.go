package model

import (
	"slices"
	"strings"
	"time"

	"github.com/guardian/github-lens/pkg/domain/types"
)

// Repository is one row of the repository snapshot.
type Repository struct {
	ID            int64      `json:"id" firestore:"id"`
	FullName      string     `json:"full_name" firestore:"full_name"`
	Name          string     `json:"name" firestore:"name"`
	Archived      bool       `json:"archived" firestore:"archived"`
	Topics        []string   `json:"topics" firestore:"topics"`
	DefaultBranch *string    `json:"default_branch" firestore:"default_branch"`
	CreatedAt     *time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at" firestore:"updated_at"`
	PushedAt      *time.Time `json:"pushed_at" firestore:"pushed_at"`
}

func (x Repository) HasTopic(topic types.Topic) bool {
	return slices.Contains(x.Topics, string(topic))
}

func (x Repository) HasAnyTopic(topics ...types.Topic) bool {
	for _, t := range topics {
		if x.HasTopic(t) {
			return true
		}
	}
	return false
}

func (x Repository) IsProduction() bool {
	return x.HasTopic(types.TopicProduction)
}

// Owner returns the organization part of FullName.
func (x Repository) Owner() string {
	owner, _, _ := strings.Cut(x.FullName, "/")
	return owner
}

// RepoName returns FullName without the organization. Name is preferred when set.
func (x Repository) RepoName() string {
	if x.Name != "" {
		return x.Name
	}
	return RepoNameOf(x.FullName)
}

// RepoNameOf strips the owner from "owner/name".
func RepoNameOf(fullName string) string {
	if _, name, ok := strings.Cut(fullName, "/"); ok {
		return name
	}
	return fullName
}

// AugmentedRepository is a Repository joined with facts derived from other
// snapshot tables. The slices are never nil once built by the augmenter.
type AugmentedRepository struct {
	Repository
	AdminTeamSlugs []string `json:"admin_team_slugs"`
	Languages      []string `json:"languages"`
	WorkflowUsages []string `json:"workflow_usages"`
}

// Branch is a branch record from the snapshot. Protection is the raw settings
// blob as collected and is not interpreted by rule evaluation.
type Branch struct {
	RepositoryID int64  `json:"repository_id"`
	Name         string `json:"name"`
	Protected    *bool  `json:"protected"`
	Protection   []byte `json:"protection,omitempty"`
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Ownership links a team to a repository with a role. Snapshot loaders only
// return rows with an admin role.
type Ownership struct {
	TeamID   int64  `json:"github_team_id"`
	TeamName string `json:"github_team_name"`
	TeamSlug string `json:"github_team_slug"`
	FullName string `json:"full_name"`
	RoleName string `json:"role_name"`
}

type RepositoryLanguages struct {
	FullName  string   `json:"full_name"`
	Languages []string `json:"languages"`
}

// WorkflowUsage lists the actions referenced by one repository's CI workflows,
// e.g. "scalacenter/sbt-dependency-submission@v2".
type WorkflowUsage struct {
	FullName     string   `json:"full_name"`
	WorkflowUses []string `json:"workflow_uses"`
}
