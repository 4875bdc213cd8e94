package model_test

import (
	"testing"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestRepositoryNames(t *testing.T) {
	repo := model.Repository{FullName: "guardian/frontend"}
	gt.V(t, repo.Owner()).Equal("guardian")
	gt.V(t, repo.RepoName()).Equal("frontend")

	repo.Name = "frontend-renamed"
	gt.V(t, repo.RepoName()).Equal("frontend-renamed")

	gt.V(t, model.RepoNameOf("no-owner")).Equal("no-owner")
}

func TestRepositoryTopics(t *testing.T) {
	repo := model.Repository{Topics: []string{"production", "scala"}}
	gt.True(t, repo.IsProduction())
	gt.True(t, repo.HasAnyTopic(types.TopicHackday, types.TopicProduction))
	gt.False(t, repo.HasAnyTopic(types.TopicHackday, types.TopicLearning))
	gt.False(t, model.Repository{}.IsProduction())
}

func TestConfig(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		cfg := model.DefaultConfig()
		gt.NoError(t, cfg.Validate())
		gt.V(t, cfg.SLA[types.SeverityCritical]).Equal(model.SLADaysCritical)
		gt.V(t, cfg.SLA[types.SeverityHigh]).Equal(model.SLADaysHigh)
		gt.V(t, cfg.SourceSystem()).Equal("repocop DEV")
	})

	t.Run("ignored prefixes", func(t *testing.T) {
		cfg := model.DefaultConfig()
		gt.True(t, cfg.IsIgnored("guardian/esd-something"))
		gt.True(t, cfg.IsIgnored("guardian/pluto-core"))
		gt.False(t, cfg.IsIgnored("guardian/frontend"))
		gt.False(t, cfg.IsIgnored("Guardian/frontend"))
		gt.True(t, cfg.IsIgnored("someone-else/frontend"))

		cfg.Org = ""
		gt.False(t, cfg.IsIgnored("someone-else/frontend"))
		gt.True(t, cfg.IsIgnored("guardian/esd-something"))
	})

	t.Run("invalid stage", func(t *testing.T) {
		cfg := model.DefaultConfig()
		cfg.Stage = "STAGING"
		gt.Error(t, cfg.Validate())
	})

	t.Run("non positive digest size", func(t *testing.T) {
		cfg := model.DefaultConfig()
		cfg.DigestSize = 0
		gt.Error(t, cfg.Validate())
	})
}
