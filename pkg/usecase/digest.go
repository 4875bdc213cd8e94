package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/engine/digest"
	"github.com/guardian/github-lens/pkg/utils/logging"
	"github.com/guardian/github-lens/pkg/utils/metrics"
)

// SendVulnerabilityDigests composes a digest for every team owning stored
// vulnerabilities. Digests are always composed and logged, and only sent in
// PROD on the first and third Tuesday of the month.
func (x *UseCase) SendVulnerabilityDigests(ctx context.Context) error {
	logger := logging.From(ctx)
	started := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("digest").Observe(time.Since(started).Seconds())
	}()

	snapshot, err := x.snapshotRepository()
	if err != nil {
		return err
	}
	result, err := x.resultRepository()
	if err != nil {
		return err
	}

	teams, err := list(ctx, "teams", snapshot.ListTeams)
	if err != nil {
		return err
	}
	stored, err := result.ListVulnerabilities(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load vulnerabilities")
	}
	vulns := make([]model.Vulnerability, len(stored))
	for i, v := range stored {
		vulns[i] = *v
	}

	var digests []*model.VulnerabilityDigest
	for _, team := range teams {
		d := digest.ForTeam(team, vulns, x.cfg)
		if d == nil {
			continue
		}
		logger.Info("Composed vulnerability digest",
			slog.String("team", d.TeamSlug),
			slog.String("subject", d.Subject),
			slog.String("message", d.Message),
		)
		digests = append(digests, d)
	}

	now := logging.CtxTime(ctx)
	if !digest.ShouldSend(x.cfg.Stage, now) {
		logger.Info("Not sending vulnerability digests",
			slog.String("stage", x.cfg.Stage.String()),
			slog.String("weekday", now.Weekday().String()),
			slog.Int("day", now.Day()),
		)
		metrics.Notifications.WithLabelValues("digest", metrics.ResultSkipped).Add(float64(len(digests)))
		return nil
	}
	if x.clients.Notifier() == nil {
		logger.Warn("Notifier is not configured, skip sending vulnerability digests")
		return nil
	}

	var failed []string
	for _, d := range digests {
		err := x.clients.Notifier().Notify(ctx, &model.Notification{
			Subject:      d.Subject,
			Message:      d.Message,
			Actions:      d.Actions,
			TeamSlug:     d.TeamSlug,
			ThreadKey:    digest.ThreadKey(d.TeamSlug),
			SourceSystem: x.cfg.SourceSystem(),
		})
		metrics.Notifications.WithLabelValues("digest", metrics.ResultOf(err)).Inc()
		if err != nil {
			logger.Warn("Failed to send vulnerability digest",
				slog.String("team", d.TeamSlug),
				slog.Any("error", err),
			)
			failed = append(failed, d.TeamSlug)
		}
	}

	logger.Info("Sent vulnerability digests",
		slog.Int("sent", len(digests)-len(failed)),
		slog.Int("failed", len(failed)),
	)

	if len(failed) > 0 {
		return goerr.New("some vulnerability digests failed to send",
			goerr.V("failure_count", len(failed)),
			goerr.V("failed_teams", failed),
		)
	}
	return nil
}
