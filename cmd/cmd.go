// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the viewer session",
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Log in through the external identity provider",
				Action: r.AuthLogin,
			},
			{
				Name:  "status",
				Usage: "Show the current session state",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Invalidate the session and clear the stored token",
				Action: r.AuthLogout,
			},
		},
	}
}

// showsCommand handles catalog operations
func showsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "shows",
		Aliases: []string{"catalog"},
		Usage:   "Browse the show catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all shows",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ShowsList,
			},
			{
				Name:  "get",
				Usage: "Show one series with its seasons",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ShowGet,
			},
			{
				Name:  "episodes",
				Usage: "List one season's episodes",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "season-id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.SeasonEpisodes,
			},
			{
				Name:  "episode",
				Usage: "Show one episode with its details",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
					&cli.BoolFlag{
						Name:  "open",
						Usage: "Open the video URL in the browser",
					},
				},
				Action: r.EpisodeGet,
			},
		},
	}
}

// commentsCommand handles episode comment operations
func commentsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "comments",
		Usage: "Read and write episode comments",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List an episode's comments, newest first",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "episode-id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "spoilers",
						Usage: "Reveal spoiler-flagged comment bodies",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CommentsList,
			},
			{
				Name:  "add",
				Usage: "Post a comment on an episode",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "episode-id"},
					&cli.StringArg{Name: "content"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "spoiler",
						Usage: "Flag the comment as a spoiler",
					},
				},
				Action: r.CommentAdd,
			},
			{
				Name:  "delete",
				Usage: "Delete a comment (admin only)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.CommentDelete,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and seed data.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the session database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:   "seed",
				Usage:  "Ask the server to create its sample catalog (idempotent)",
				Action: r.SeedData,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive catalog browser",
		Action:  r.TUI,
	}
}
