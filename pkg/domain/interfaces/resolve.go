package interfaces

import (
	"context"

	"github.com/m-mizutani/ghrepo/pkg/domain/model"
)

// ResolveService turns a local checkout into a repository identity by
// reading a remote URL and parsing it.
type ResolveService interface {
	FromRemote(ctx context.Context, remote string) (model.Repository, error)
	FromUpstream(ctx context.Context) (model.Repository, error)
}
