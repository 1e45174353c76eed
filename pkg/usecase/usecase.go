package usecase

import (
	"os"

	"github.com/secmon-lab/repoguard/pkg/domain/interfaces"
	"github.com/secmon-lab/repoguard/pkg/domain/model"
	"github.com/secmon-lab/repoguard/pkg/domain/types"
	"github.com/secmon-lab/repoguard/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	token      types.GitHubToken
	githubUser string
	gitEmail   string
	gitName    string
	workDir    string
	policy     model.ProtectionPolicy
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithGitHubToken sets the access token embedded into clone/push URLs.
func WithGitHubToken(token types.GitHubToken) Option {
	return func(x *UseCase) {
		x.token = token
	}
}

// WithGitHubUser sets the user tagged in notification issues, also used as the
// userinfo part of credential-embedded clone URLs.
func WithGitHubUser(user string) Option {
	return func(x *UseCase) {
		x.githubUser = user
	}
}

// WithCommitAuthor sets the local git identity for the initial commit.
func WithCommitAuthor(email, name string) Option {
	return func(x *UseCase) {
		x.gitEmail = email
		x.gitName = name
	}
}

// WithWorkDir sets the root directory for local clones. Defaults to the
// system temp directory.
func WithWorkDir(dir string) Option {
	return func(x *UseCase) {
		x.workDir = dir
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		workDir: os.TempDir(),
		policy:  model.DefaultProtectionPolicy(),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
