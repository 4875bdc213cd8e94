package model

// Action is a call-to-action link attached to a notification.
type Action struct {
	CTA string `json:"cta"`
	URL string `json:"url"`
}

// VulnerabilityDigest is the rendered summary for one team.
type VulnerabilityDigest struct {
	TeamSlug string   `json:"team_slug"`
	Subject  string   `json:"subject"`
	Message  string   `json:"message"`
	Actions  []Action `json:"actions,omitempty"`
}

// Notification is what the notifier delivers to a team's channel.
type Notification struct {
	Subject      string   `json:"subject"`
	Message      string   `json:"message"`
	Actions      []Action `json:"actions,omitempty"`
	TeamSlug     string   `json:"target_team_slug"`
	ThreadKey    string   `json:"thread_key,omitempty"`
	SourceSystem string   `json:"source_system"`
}

// DependencyGraphEvent asks the dependency graph integrator to add a
// submission workflow for Language to the repository Name.
type DependencyGraphEvent struct {
	Name     string   `json:"name"`
	Language string   `json:"language"`
	Admins   []string `json:"admins"`
}
