package infra

import (
	"github.com/secmon-lab/repoguard/pkg/domain/interfaces"
	"github.com/secmon-lab/repoguard/pkg/infra/gitcmd"
)

type Clients struct {
	githubClient interfaces.GitHubClient
	gitClient    gitcmd.Client
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		gitClient: gitcmd.New("git"),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.githubClient
}
func (x *Clients) Git() gitcmd.Client {
	return x.gitClient
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubClient = client
	}
}

func WithGit(client gitcmd.Client) Option {
	return func(x *Clients) {
		x.gitClient = client
	}
}
