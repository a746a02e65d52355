package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gta5broo/cizgihubdeneme/internal/formatter"
	"github.com/gta5broo/cizgihubdeneme/internal/models"
	"github.com/gta5broo/cizgihubdeneme/internal/shared"
	"github.com/urfave/cli/v3"
)

// CommentsList prints an episode's comment thread. Spoiler bodies stay
// redacted unless --spoilers is set.
func (r *Runner) CommentsList(ctx context.Context, cmd *cli.Command) error {
	episodeID := cmd.StringArg("episode-id")
	spoilers := cmd.Bool("spoilers")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if episodeID == "" {
		return fmt.Errorf("%w: episode id", shared.ErrMissingArgument)
	}
	if err := r.requireSession(ctx); err != nil {
		return err
	}

	comments, err := r.api.EpisodeComments(ctx, episodeID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(comments, pretty)
	}
	return r.writePlain("%s", formatter.CommentsText(comments, spoilers))
}

// CommentAdd posts a comment. Empty or whitespace-only content is rejected
// before any network call.
func (r *Runner) CommentAdd(ctx context.Context, cmd *cli.Command) error {
	episodeID := cmd.StringArg("episode-id")
	content := cmd.StringArg("content")
	spoiler := cmd.Bool("spoiler")

	if episodeID == "" {
		return fmt.Errorf("%w: episode id", shared.ErrMissingArgument)
	}
	if strings.TrimSpace(content) == "" {
		return shared.ErrEmptyComment
	}
	if err := r.requireSession(ctx); err != nil {
		return err
	}

	comment, err := r.api.CreateComment(ctx, models.CommentCreate{
		EpisodeID: episodeID,
		Content:   content,
		IsSpoiler: spoiler,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Yorum eklendi [%s]\n", comment.ID)
	return nil
}

// CommentDelete removes a comment. Non-admin sessions are refused locally,
// mirroring the server's admin check.
func (r *Runner) CommentDelete(ctx context.Context, cmd *cli.Command) error {
	commentID := cmd.StringArg("id")

	if commentID == "" {
		return fmt.Errorf("%w: comment id", shared.ErrMissingArgument)
	}
	if err := r.requireSession(ctx); err != nil {
		return err
	}
	if !r.session.IsAdmin() {
		return fmt.Errorf("%w: deleting comments requires an admin session", shared.ErrForbidden)
	}

	if err := r.api.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Yorum silindi [%s]\n", commentID)
	return nil
}
