package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/secmon-lab/repoguard/pkg/domain/model"
	"github.com/secmon-lab/repoguard/pkg/domain/types"
	"github.com/secmon-lab/repoguard/pkg/utils/logging"
)

// HandleRepositoryEvent applies the governance baseline to a newly created
// repository: ensure an initial commit exists, require pull-request review on
// every branch, and open an issue notifying the responsible user. The whole
// pipeline runs once per event with no retries and no state kept between
// invocations.
func (x *UseCase) HandleRepositoryEvent(ctx context.Context, event *model.RepositoryEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	logger := logging.From(ctx).With(slog.Any("repo", event.Repo.FullName))

	if !event.IsCreated() {
		logger.Info("unsupported action, skipping", slog.String("action", event.Action))
		return nil
	}

	branches, err := x.listBranches(ctx, event.Repo.FullName)
	if err != nil {
		return err
	}

	if len(branches) == 0 {
		logger.Info("repository has no branches, creating default branch")
		if err := x.bootstrapRepository(ctx, event.Repo.Name, event.Repo.CloneURL); err != nil {
			return err
		}

		// The protection loop must run against the branch the bootstrap just
		// pushed, never the stale empty listing.
		branches, err = x.listBranches(ctx, event.Repo.FullName)
		if err != nil {
			return err
		}
	}

	for _, branch := range branches {
		logger.Info("applying branch protection", slog.Any("branch", branch.Name))
		if err := x.protectBranch(ctx, event.Repo.FullName, branch.Name); err != nil {
			return err
		}
	}

	logger.Info("creating notification issue")
	if err := x.notifyProtection(ctx, event.Repo.FullName); err != nil {
		return err
	}

	logger.Info("repository event handled")
	return nil
}

func (x *UseCase) listBranches(ctx context.Context, fullName types.RepoFullName) ([]model.Branch, error) {
	raw, err := x.clients.GitHub().Get(ctx, fmt.Sprintf("/repos/%s/branches", fullName))
	if err != nil {
		return nil, err
	}
	return model.ParseBranches(raw)
}

func (x *UseCase) protectBranch(ctx context.Context, fullName types.RepoFullName, branch types.BranchName) error {
	path := fmt.Sprintf("/repos/%s/branches/%s/protection", fullName, branch)
	raw, err := x.clients.GitHub().Put(ctx, path, x.policy.ToRequest())
	if err != nil {
		return err
	}

	if model.IsUpgradeRequired(raw) {
		logging.From(ctx).Warn("branch protection is not available for this repository plan",
			slog.Any("repo", fullName),
			slog.Any("branch", branch),
		)
	}

	return nil
}

func (x *UseCase) notifyProtection(ctx context.Context, fullName types.RepoFullName) error {
	issue := model.NewProtectionIssue(x.policy, x.githubUser)

	// Fire-and-forget: the response is not inspected, and protection already
	// applied is not rolled back on failure.
	if _, err := x.clients.GitHub().Post(ctx, fmt.Sprintf("/repos/%s/issues", fullName), issue); err != nil {
		return err
	}

	return nil
}
