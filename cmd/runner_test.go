package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/gta5broo/cizgihubdeneme/internal/auth"
	"github.com/gta5broo/cizgihubdeneme/internal/models"
	"github.com/gta5broo/cizgihubdeneme/internal/shared"
	tu "github.com/gta5broo/cizgihubdeneme/internal/testing"
	"github.com/urfave/cli/v3"
)

// newTestRunner wires a runner over mocks. user controls what the identity
// endpoint reports; nil means no valid session.
func newTestRunner(api *tu.MockService, user *models.User) (*Runner, *bytes.Buffer) {
	mockAPI := &tu.MockAPI{
		MeFunc: func(ctx context.Context) (*models.User, error) {
			if user == nil {
				return nil, errors.New("401")
			}
			return user, nil
		},
	}
	store := &tu.MockStore{}
	if user != nil {
		store.Stored = "tok-test"
	}

	logger := shared.NewLogger(io.Discard)
	output := &bytes.Buffer{}

	runner := NewRunner(RunnerOpts{
		Config:  shared.DefaultConfig(),
		API:     api,
		Session: auth.NewManager(mockAPI, store, logger),
		Logger:  logger,
		Output:  output,
	})
	return runner, output
}

func runApp(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{Name: "cizgihub", Commands: r.register()}
	return app.Run(context.Background(), append([]string{"cizgihub"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("requireSession", func(t *testing.T) {
		t.Run("rejects commands without a session", func(t *testing.T) {
			runner, _ := newTestRunner(&tu.MockService{}, nil)

			err := runApp(t, runner, "shows", "list")
			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
		})
	})

	t.Run("ShowsList", func(t *testing.T) {
		api := &tu.MockService{
			ShowsFunc: func(ctx context.Context) ([]models.Show, error) {
				return []models.Show{{ID: "s1", Title: "Rick and Morty", Year: 2013}}, nil
			},
		}

		t.Run("prints a table", func(t *testing.T) {
			runner, output := newTestRunner(api, &models.User{ID: "u1"})

			if err := runApp(t, runner, "shows", "list"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output.String(), "Rick and Morty") {
				t.Errorf("expected show in output, got %q", output.String())
			}
		})

		t.Run("prints JSON with --json", func(t *testing.T) {
			runner, output := newTestRunner(api, &models.User{ID: "u1"})

			if err := runApp(t, runner, "shows", "list", "--json"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output.String(), `"title":"Rick and Morty"`) {
				t.Errorf("expected JSON output, got %q", output.String())
			}
		})
	})

	t.Run("ShowGet", func(t *testing.T) {
		t.Run("requires an id", func(t *testing.T) {
			runner, _ := newTestRunner(&tu.MockService{}, &models.User{ID: "u1"})

			err := runApp(t, runner, "shows", "get")
			if !errors.Is(err, shared.ErrMissingArgument) {
				t.Errorf("expected ErrMissingArgument, got %v", err)
			}
		})

		t.Run("prints the show with seasons", func(t *testing.T) {
			api := &tu.MockService{
				ShowFunc: func(ctx context.Context, showID string) (*models.ShowDetail, error) {
					if showID != "s1" {
						t.Errorf("unexpected show id: %s", showID)
					}
					return &models.ShowDetail{
						Show:    models.Show{Title: "Gravity Falls", Year: 2012},
						Seasons: []models.Season{{Title: "1. Sezon", EpisodeCount: 20}},
					}, nil
				},
			}
			runner, output := newTestRunner(api, &models.User{ID: "u1"})

			if err := runApp(t, runner, "shows", "get", "s1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output.String(), "1. Sezon") {
				t.Errorf("expected season in output, got %q", output.String())
			}
		})
	})

	t.Run("CommentAdd", func(t *testing.T) {
		t.Run("rejects empty content locally", func(t *testing.T) {
			created := 0
			api := &tu.MockService{
				CreateCommentFunc: func(ctx context.Context, c models.CommentCreate) (*models.Comment, error) {
					created++
					return &models.Comment{}, nil
				},
			}
			runner, _ := newTestRunner(api, &models.User{ID: "u1"})

			err := runApp(t, runner, "comments", "add", "ep1", "   ")
			if !errors.Is(err, shared.ErrEmptyComment) {
				t.Errorf("expected ErrEmptyComment, got %v", err)
			}
			if created != 0 {
				t.Errorf("expected no create call, got %d", created)
			}
		})

		t.Run("posts the comment", func(t *testing.T) {
			api := &tu.MockService{
				CreateCommentFunc: func(ctx context.Context, c models.CommentCreate) (*models.Comment, error) {
					if c.EpisodeID != "ep1" || !c.IsSpoiler {
						t.Errorf("unexpected payload: %+v", c)
					}
					return &models.Comment{ID: "c1"}, nil
				},
			}
			runner, output := newTestRunner(api, &models.User{ID: "u1"})

			if err := runApp(t, runner, "comments", "add", "--spoiler", "ep1", "harika bölüm"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output.String(), "c1") {
				t.Errorf("expected created id in output, got %q", output.String())
			}
		})
	})

	t.Run("CommentDelete", func(t *testing.T) {
		t.Run("refuses non-admin sessions locally", func(t *testing.T) {
			deleted := 0
			api := &tu.MockService{
				DeleteCommentFunc: func(ctx context.Context, id string) error {
					deleted++
					return nil
				},
			}
			runner, _ := newTestRunner(api, &models.User{ID: "u1", IsAdmin: false})

			err := runApp(t, runner, "comments", "delete", "c1")
			if !errors.Is(err, shared.ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
			if deleted != 0 {
				t.Errorf("expected no delete call, got %d", deleted)
			}
		})

		t.Run("deletes for admins", func(t *testing.T) {
			api := &tu.MockService{
				DeleteCommentFunc: func(ctx context.Context, id string) error {
					if id != "c1" {
						t.Errorf("unexpected id: %s", id)
					}
					return nil
				},
			}
			runner, output := newTestRunner(api, &models.User{ID: "admin", IsAdmin: true})

			if err := runApp(t, runner, "comments", "delete", "c1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output.String(), "silindi") {
				t.Errorf("expected confirmation, got %q", output.String())
			}
		})
	})

	t.Run("CommentsList", func(t *testing.T) {
		api := &tu.MockService{
			EpisodeCommentsFunc: func(ctx context.Context, episodeID string) ([]models.Comment, error) {
				return []models.Comment{
					{ID: "c1", UserName: "mehmet", Content: "sonunda herkes ölüyor", IsSpoiler: true},
				}, nil
			},
		}

		t.Run("redacts spoilers by default", func(t *testing.T) {
			runner, output := newTestRunner(api, &models.User{ID: "u1"})

			if err := runApp(t, runner, "comments", "list", "ep1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Contains(output.String(), "herkes ölüyor") {
				t.Error("expected spoiler body redacted")
			}
		})

		t.Run("reveals spoilers with --spoilers", func(t *testing.T) {
			runner, output := newTestRunner(api, &models.User{ID: "u1"})

			if err := runApp(t, runner, "comments", "list", "--spoilers", "ep1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output.String(), "herkes ölüyor") {
				t.Error("expected spoiler body revealed")
			}
		})
	})

	t.Run("AuthStatus", func(t *testing.T) {
		t.Run("reports a missing session", func(t *testing.T) {
			runner, output := newTestRunner(&tu.MockService{}, nil)

			if err := runApp(t, runner, "auth", "status"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output.String(), "Oturum yok") {
				t.Errorf("expected logged-out message, got %q", output.String())
			}
		})

		t.Run("reports the resolved profile", func(t *testing.T) {
			runner, output := newTestRunner(&tu.MockService{}, &models.User{ID: "u1", Name: "Ayşe", Email: "ayse@example.com"})

			if err := runApp(t, runner, "auth", "status"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output.String(), "ayse@example.com") {
				t.Errorf("expected profile in output, got %q", output.String())
			}
		})
	})
}
