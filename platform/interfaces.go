package platform

import (
	"context"

	"github.com/poiesic/recollect/core"
)

// SavedPostSource lists the posts an owner has saved on the upstream
// platform. Implementations must be thread-safe.
type SavedPostSource interface {
	// SavedPosts returns the owner's saved posts in the order the platform
	// reports them. The order is meaningful and must be preserved by callers.
	SavedPosts(ctx context.Context, owner string) ([]core.SavedPost, error)
}

// MediaFetcher downloads a post's media payload.
type MediaFetcher interface {
	// Fetch retrieves the media bytes at the given URL.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
