package protection_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/engine/protection"
)

func TestNotice(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Stage = types.StageProd

	n := protection.Notice(&model.RemediationEvent{
		FullName:  "guardian/frontend",
		TeamSlugs: []string{"devx", "dotcom"},
		Branch:    "main",
	}, "dotcom", cfg)

	gt.V(t, n.TeamSlug).Equal("dotcom")
	gt.V(t, n.ThreadKey).Equal("branch-protection-dotcom")
	gt.V(t, n.SourceSystem).Equal("repocop PROD")
	gt.V(t, n.Subject).Equal("Branch protection applied to guardian/frontend")
	gt.S(t, n.Message).Contains("the main branch of guardian/frontend")
	gt.V(t, n.Actions[0].URL).Equal("https://github.com/guardian/frontend/settings/branches")
}
