package protection

import (
	"fmt"

	"github.com/guardian/github-lens/pkg/domain/model"
)

// Notice tells one owning team that the default branch of ev.FullName is now protected.
func Notice(ev *model.RemediationEvent, teamSlug string, cfg model.Config) *model.Notification {
	return &model.Notification{
		Subject: "Branch protection applied to " + ev.FullName,
		Message: fmt.Sprintf("Branch protection has been applied to the %s branch of %s. "+
			"Changes now need a review from a code owner before they are merged, and the branch can no longer be force pushed or deleted.",
			ev.Branch, ev.FullName),
		Actions: []model.Action{{
			CTA: "View branch protection settings",
			URL: "https://github.com/" + ev.FullName + "/settings/branches",
		}},
		TeamSlug:     teamSlug,
		ThreadKey:    "branch-protection-" + teamSlug,
		SourceSystem: cfg.SourceSystem(),
	}
}
