package interfaces

import "context"

// GitService inspects the local git repository it was constructed for.
// Implementations run the git binary; errors carry the classification
// sentinels from pkg/domain so callers can map exit conditions.
type GitService interface {
	IsRepository(ctx context.Context) bool
	CurrentBranch(ctx context.Context) (string, error)
	RemoteURL(ctx context.Context, remote string) (string, error)
	UpstreamRemote(ctx context.Context, branch string) (string, error)
}
