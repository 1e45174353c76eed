package interfaces

import (
	"context"

	"github.com/secmon-lab/repoguard/pkg/domain/model"
)

type UseCase interface {
	HandleRepositoryEvent(ctx context.Context, event *model.RepositoryEvent) error
}
