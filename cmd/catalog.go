package main

import (
	"context"
	"fmt"

	"github.com/gta5broo/cizgihubdeneme/internal/formatter"
	"github.com/gta5broo/cizgihubdeneme/internal/shared"
	"github.com/urfave/cli/v3"
)

// ShowsList prints the full show catalog.
func (r *Runner) ShowsList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if err := r.requireSession(ctx); err != nil {
		return err
	}

	shows, err := r.api.Shows(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(shows, pretty)
	}
	return r.writePlain("%s", formatter.ShowsTable(shows))
}

// ShowGet prints one show with its season list.
func (r *Runner) ShowGet(ctx context.Context, cmd *cli.Command) error {
	showID := cmd.StringArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if showID == "" {
		return fmt.Errorf("%w: show id", shared.ErrMissingArgument)
	}
	if err := r.requireSession(ctx); err != nil {
		return err
	}

	detail, err := r.api.Show(ctx, showID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(detail, pretty)
	}
	return r.writePlain("%s", formatter.ShowDetailText(detail))
}

// SeasonEpisodes prints a season's episodes in order.
func (r *Runner) SeasonEpisodes(ctx context.Context, cmd *cli.Command) error {
	seasonID := cmd.StringArg("season-id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if seasonID == "" {
		return fmt.Errorf("%w: season id", shared.ErrMissingArgument)
	}
	if err := r.requireSession(ctx); err != nil {
		return err
	}

	episodes, err := r.api.SeasonEpisodes(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(episodes, pretty)
	}
	return r.writePlain("%s", formatter.EpisodesTable(episodes))
}

// EpisodeGet prints one episode with its comment thread, optionally opening
// the video URL. Episode and comments are fetched as a unit.
func (r *Runner) EpisodeGet(ctx context.Context, cmd *cli.Command) error {
	episodeID := cmd.StringArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	open := cmd.Bool("open")

	if episodeID == "" {
		return fmt.Errorf("%w: episode id", shared.ErrMissingArgument)
	}
	if err := r.requireSession(ctx); err != nil {
		return err
	}

	view, err := r.api.LoadEpisode(ctx, episodeID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if open {
		if err := shared.OpenBrowser(view.Episode.VideoURL); err != nil {
			r.logger.Warnf("failed to open video: %v", err)
		}
	}

	if useJSON {
		return r.writeJSON(view, pretty)
	}

	r.writePlain("%s", formatter.EpisodeText(&view.Episode))
	r.writePlainln("Yorumlar:")
	return r.writePlain("%s", formatter.CommentsText(view.Comments, false))
}
