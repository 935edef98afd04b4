package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ghrepo/pkg/domain"
	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type ResolveService struct {
	git    interfaces.GitService
	parser model.Parser
}

func NewResolveService(git interfaces.GitService, parser model.Parser) interfaces.ResolveService {
	return &ResolveService{
		git:    git,
		parser: parser,
	}
}

// FromRemote reads the URL of the named remote and parses it into a
// repository identity. The parser's classification stays in the error
// chain underneath ErrRemoteURL.
func (s *ResolveService) FromRemote(ctx context.Context, remote string) (model.Repository, error) {
	url, err := s.git.RemoteURL(ctx, remote)
	if err != nil {
		return model.Repository{}, err
	}

	repo, err := s.parser.ParseURL(url)
	if err != nil {
		return model.Repository{}, domain.ErrRemoteURL.Wrap(goerr.Wrap(err, "failed to parse remote URL: "+url))
	}

	ctxlog.From(ctx).Debug("resolved repository from remote",
		slog.String("remote", remote),
		slog.String("url", url),
		slog.String("repository", repo.FullName()),
	)

	return repo, nil
}

// FromUpstream resolves through the remote tracked by the current branch.
func (s *ResolveService) FromUpstream(ctx context.Context) (model.Repository, error) {
	branch, err := s.git.CurrentBranch(ctx)
	if err != nil {
		return model.Repository{}, err
	}

	remote, err := s.git.UpstreamRemote(ctx, branch)
	if err != nil {
		return model.Repository{}, err
	}

	return s.FromRemote(ctx, remote)
}
