package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/repository"
)

const (
	collectionRuleVerdicts    = "repocop_github_repository_rules"
	collectionVulnerabilities = "repocop_vulnerabilities"
	batchSize                 = 500
)

// ToFirestoreID converts a repository full name to a document ID. GitHub
// owner and repository names cannot contain colons.
func ToFirestoreID(fullName string) (string, error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "full name must be owner/repo",
			goerr.V("fullName", fullName),
		)
	}

	if strings.Contains(owner, ":") || strings.Contains(repo, ":") || strings.Contains(repo, "/") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "full name contains invalid character",
			goerr.V("fullName", fullName),
		)
	}

	return owner + ":" + repo, nil
}

func (r *Repository) ReplaceRuleVerdicts(ctx context.Context, verdicts []*model.RuleVerdicts) error {
	col := r.client.Collection(collectionRuleVerdicts)

	refs := make([]*firestore.DocumentRef, len(verdicts))
	for i, v := range verdicts {
		id, err := ToFirestoreID(v.FullName)
		if err != nil {
			return err
		}
		refs[i] = col.Doc(id)
	}

	if err := r.deleteAll(ctx, col); err != nil {
		return err
	}
	return r.setAll(ctx, refs, func(i int) any { return verdicts[i] })
}

func (r *Repository) ListRuleVerdicts(ctx context.Context) ([]*model.RuleVerdicts, error) {
	return list[model.RuleVerdicts](ctx, r.client.Collection(collectionRuleVerdicts))
}

func (r *Repository) ReplaceVulnerabilities(ctx context.Context, vulns []*model.Vulnerability) error {
	col := r.client.Collection(collectionVulnerabilities)

	refs := make([]*firestore.DocumentRef, len(vulns))
	for i := range vulns {
		refs[i] = col.NewDoc()
	}

	if err := r.deleteAll(ctx, col); err != nil {
		return err
	}
	return r.setAll(ctx, refs, func(i int) any { return vulns[i] })
}

func (r *Repository) ListVulnerabilities(ctx context.Context) ([]*model.Vulnerability, error) {
	return list[model.Vulnerability](ctx, r.client.Collection(collectionVulnerabilities))
}

func list[T any](ctx context.Context, col *firestore.CollectionRef) ([]*T, error) {
	iter := col.Documents(ctx)
	defer iter.Stop()

	var results []*T
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents", goerr.V("collection", col.ID))
		}

		var v T
		if err := snap.DataTo(&v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document",
				goerr.V("collection", col.ID),
				goerr.V("docID", snap.Ref.ID),
			)
		}
		results = append(results, &v)
	}

	return results, nil
}

func (r *Repository) deleteAll(ctx context.Context, col *firestore.CollectionRef) error {
	refs, err := col.DocumentRefs(ctx).GetAll()
	if err != nil {
		return goerr.Wrap(err, "failed to list documents", goerr.V("collection", col.ID))
	}

	// Process in batches of 500 (Firestore limit)
	for i := 0; i < len(refs); i += batchSize {
		end := min(i+batchSize, len(refs))

		batch := r.client.Batch()
		for _, ref := range refs[i:end] {
			batch.Delete(ref)
		}

		if _, err := batch.Commit(ctx); err != nil {
			return goerr.Wrap(err, "failed to batch delete documents",
				goerr.V("collection", col.ID),
				goerr.V("batchStart", i),
				goerr.V("batchEnd", end),
			)
		}
	}

	return nil
}

func (r *Repository) setAll(ctx context.Context, refs []*firestore.DocumentRef, data func(i int) any) error {
	for i := 0; i < len(refs); i += batchSize {
		end := min(i+batchSize, len(refs))

		batch := r.client.Batch()
		for j := i; j < end; j++ {
			batch.Set(refs[j], data(j))
		}

		if _, err := batch.Commit(ctx); err != nil {
			return goerr.Wrap(err, "failed to batch set documents",
				goerr.V("batchStart", i),
				goerr.V("batchEnd", end),
			)
		}
	}

	return nil
}
