package services

import (
	"context"

	"github.com/gta5broo/cizgihubdeneme/internal/models"
)

// Service defines the catalog and comment operations the ÇizgiHub API
// exposes to an authenticated client. Authentication endpoints live on the
// concrete client and are reached only through the auth manager.
type Service interface {
	// InitData triggers the server's idempotent sample-data seed.
	// The server no-ops once data exists; callers swallow failures.
	InitData(ctx context.Context) error

	// Shows retrieves the full show list.
	Shows(ctx context.Context) ([]models.Show, error)

	// Show retrieves one show together with its seasons.
	Show(ctx context.Context, showID string) (*models.ShowDetail, error)

	// SeasonEpisodes retrieves a season's episodes in episode order.
	SeasonEpisodes(ctx context.Context, seasonID string) ([]models.Episode, error)

	// Episode retrieves a single episode by ID.
	Episode(ctx context.Context, episodeID string) (*models.Episode, error)

	// EpisodeComments retrieves an episode's comment thread, newest first.
	EpisodeComments(ctx context.Context, episodeID string) ([]models.Comment, error)

	// LoadEpisode fetches an episode and its comments concurrently.
	// Both requests must succeed; the first error wins.
	LoadEpisode(ctx context.Context, episodeID string) (*models.EpisodeView, error)

	// CreateComment posts a new comment. The server stamps author and time.
	CreateComment(ctx context.Context, comment models.CommentCreate) (*models.Comment, error)

	// DeleteComment removes a comment by ID. Admin-only on the server;
	// non-admin callers are expected not to issue the call at all.
	DeleteComment(ctx context.Context, commentID string) error

	// Name returns the service name for logging.
	Name() string
}
