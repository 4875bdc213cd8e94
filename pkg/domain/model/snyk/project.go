package snyk

import "slices"

type Project struct {
	ID         string            `json:"id"`
	Attributes ProjectAttributes `json:"attributes"`
}

type ProjectAttributes struct {
	Name string `json:"name"`
	// Type is the package manager, e.g. "npm", "sbt" or "maven".
	Type   string `json:"type"`
	Status string `json:"status"`
	Tags   []Tag  `json:"tags"`
}

type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

const (
	TagRepo   = "repo"
	TagBranch = "branch"
)

// TagValues returns the values of every tag with the given key.
func (x Project) TagValues(key string) []string {
	var values []string
	for _, t := range x.Attributes.Tags {
		if t.Key == key {
			values = append(values, t.Value)
		}
	}
	return values
}

// HasTagValue reports whether any tag, whatever its key, carries value.
func (x Project) HasTagValue(value string) bool {
	return slices.ContainsFunc(x.Attributes.Tags, func(t Tag) bool {
		return t.Value == value
	})
}
