package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repoguard/pkg/domain/types"
)

// ActionCreated is the only repository event action that triggers the
// governance pipeline.
const ActionCreated = "created"

// RepositoryEvent is the parsed form of an inbound "repository" webhook
// payload. It is built once per invocation from the raw request body and not
// mutated afterwards.
type RepositoryEvent struct {
	Action   string
	Repo     EventRepository
	OrgLogin string
}

type EventRepository struct {
	Name     types.RepoName
	FullName types.RepoFullName
	GitURL   string
	CloneURL string
}

func (x *RepositoryEvent) Validate() error {
	if x.Action == "" {
		return goerr.Wrap(types.ErrInvalidEventData, "action is empty")
	}
	if x.Repo.Name == "" {
		return goerr.Wrap(types.ErrInvalidEventData, "repository name is empty")
	}
	if x.Repo.FullName == "" {
		return goerr.Wrap(types.ErrInvalidEventData, "repository full name is empty")
	}
	return nil
}

// IsCreated reports whether the event should be processed. Any other action is
// acknowledged without side effects.
func (x *RepositoryEvent) IsCreated() bool {
	return x.Action == ActionCreated
}
