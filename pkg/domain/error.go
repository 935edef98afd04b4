package domain

import "github.com/m-mizutani/goerr/v2"

// Every sentinel carries an explicit ID: goerr's Wrap keeps only the
// cause in the unwrap chain, and errors.Is matches sentinels by ID.

// Parse failures. Exactly one of these classifies any rejected input.
var (
	ErrInvalidOwner    = goerr.New("invalid GitHub repository owner", goerr.ID("invalid_owner"))
	ErrInvalidName     = goerr.New("invalid GitHub repository name", goerr.ID("invalid_name"))
	ErrMalformedInput  = goerr.New("not a GitHub repository spec or URL", goerr.ID("malformed_input"))
	ErrUnsupportedHost = goerr.New("unsupported URL scheme or host", goerr.ID("unsupported_host"))
)

// Local repository inspection failures. Kept disjoint from the parse
// taxonomy so callers can tell a broken git invocation from a bad URL.
var (
	ErrGitExec      = goerr.New("failed to execute git command", goerr.ID("git_exec"))
	ErrGitCommand   = goerr.New("git command exited unsuccessfully", goerr.ID("git_command"))
	ErrGitOutput    = goerr.New("failed to decode git command output", goerr.ID("git_output"))
	ErrNoSuchRemote = goerr.New("no such remote in git repository", goerr.ID("no_such_remote"))
	ErrNoUpstream   = goerr.New("no upstream remote configured for branch", goerr.ID("no_upstream"))
	ErrDetachedHead = goerr.New("git repository is in a detached HEAD state", goerr.ID("detached_head"))
	ErrRemoteURL    = goerr.New("remote URL is not a GitHub URL", goerr.ID("remote_url"))
)

var ErrConfig = goerr.New("configuration error", goerr.ID("config"))
