package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repoguard/pkg/domain/types"
	"github.com/secmon-lab/repoguard/pkg/utils/logging"
	"github.com/secmon-lab/repoguard/pkg/utils/safe"
)

const seedFileName = "README.md"

const seedFileBody = `# %s

This repository was initialized automatically. Replace this file with a real
README describing the project.
`

// bootstrapRepository materializes the default branch of an empty repository
// by cloning it, committing a seed README, and pushing. The caller must have
// verified that the repository has no branches.
func (x *UseCase) bootstrapRepository(ctx context.Context, repoName types.RepoName, cloneURL string) error {
	logger := logging.From(ctx).With(slog.Any("repo", repoName))

	authURL, err := x.authenticatedURL(cloneURL)
	if err != nil {
		return err
	}

	// A previous invocation may have been cut off mid-clone; clear any stale
	// directory so redelivery of the same webhook succeeds.
	dir := filepath.Join(x.workDir, string(repoName))
	if err := os.RemoveAll(dir); err != nil {
		return goerr.Wrap(err, "failed to remove stale working directory", goerr.V("dir", dir))
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return goerr.Wrap(err, "failed to create working directory", goerr.V("dir", dir))
	}
	defer safe.RemoveAll(dir)

	git := x.clients.Git()

	logger.Debug("cloning repository")
	if err := git.Run(ctx, x.workDir, "clone", authURL, dir); err != nil {
		return err
	}

	logger.Debug("configuring commit author")
	if err := git.Run(ctx, dir, "config", "--local", "user.email", x.gitEmail); err != nil {
		return err
	}
	if err := git.Run(ctx, dir, "config", "--local", "user.name", x.gitName); err != nil {
		return err
	}

	logger.Debug("writing seed file")
	seed := fmt.Sprintf(seedFileBody, repoName)
	if err := os.WriteFile(filepath.Join(dir, seedFileName), []byte(seed), 0600); err != nil {
		return goerr.Wrap(err, "failed to write seed file", goerr.V("dir", dir))
	}

	logger.Debug("committing seed file")
	if err := git.Run(ctx, dir, "add", seedFileName); err != nil {
		return err
	}
	if err := git.Run(ctx, dir, "commit", "-m", "Initial commit"); err != nil {
		return err
	}

	logger.Debug("pushing default branch")
	if err := git.Run(ctx, dir, "push", authURL, "HEAD"); err != nil {
		return err
	}

	logger.Info("default branch created")
	return nil
}

// authenticatedURL injects the access token into the authority component of
// the clone URL. The result must never be logged; gitcmd redacts it when a
// subprocess fails.
func (x *UseCase) authenticatedURL(cloneURL string) (string, error) {
	u, err := url.Parse(cloneURL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse clone URL", goerr.V("url", cloneURL))
	}
	if u.Scheme != "https" {
		return "", goerr.Wrap(types.ErrInvalidEventData, "clone URL is not https", goerr.V("url", cloneURL))
	}

	u.User = url.UserPassword(x.githubUser, x.token.Unmask())
	return u.String(), nil
}
