package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ghrepo/pkg/domain"
	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type GitService struct {
	dir string
}

// NewGitService returns a service inspecting the git repository at dir.
// An empty dir means the process working directory.
func NewGitService(dir string) interfaces.GitService {
	return &GitService{dir: dir}
}

func (s *GitService) run(ctx context.Context, args ...string) (string, error) {
	ctxlog.From(ctx).Debug("running git command",
		slog.Any("args", args),
		slog.String("dir", s.dir),
	)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(output) {
		return "", domain.ErrGitOutput.Wrap(goerr.New("git " + strings.Join(args, " ")))
	}
	return strings.TrimSpace(string(output)), nil
}

func (s *GitService) IsRepository(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = s.dir
	return cmd.Run() == nil
}

// CurrentBranch returns the branch HEAD points at. A detached HEAD makes
// git symbolic-ref exit with status 1, mapped to ErrDetachedHead.
func (s *GitService) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := s.run(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil {
		if code, ok := exitCode(err); ok && code == 1 {
			return "", domain.ErrDetachedHead.Wrap(err)
		}
		return "", wrapGitError(err)
	}
	return branch, nil
}

// RemoteURL returns the fetch URL of the named remote. git signals an
// unknown remote with exit status 2, mapped to ErrNoSuchRemote.
func (s *GitService) RemoteURL(ctx context.Context, remote string) (string, error) {
	url, err := s.run(ctx, "remote", "get-url", "--", remote)
	if err != nil {
		if code, ok := exitCode(err); ok && code == 2 {
			return "", domain.ErrNoSuchRemote.Wrap(goerr.New(strconv.Quote(remote)))
		}
		return "", wrapGitError(err)
	}
	return url, nil
}

// UpstreamRemote returns the remote the given branch tracks. git config
// exits with status 1 when the key is absent, mapped to ErrNoUpstream.
func (s *GitService) UpstreamRemote(ctx context.Context, branch string) (string, error) {
	remote, err := s.run(ctx, "config", "--get", "--", "branch."+branch+".remote")
	if err != nil {
		if code, ok := exitCode(err); ok && code == 1 {
			return "", domain.ErrNoUpstream.Wrap(goerr.New(strconv.Quote(branch)))
		}
		return "", wrapGitError(err)
	}
	return remote, nil
}

// wrapGitError separates "git ran and failed" from "git could not run",
// so callers can propagate the former's exit status.
func wrapGitError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return domain.ErrGitCommand.Wrap(err)
	}
	return domain.ErrGitExec.Wrap(err)
}

func exitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
