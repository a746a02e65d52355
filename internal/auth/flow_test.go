package auth

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gta5broo/cizgihubdeneme/internal/models"
	"github.com/gta5broo/cizgihubdeneme/internal/shared"
	tu "github.com/gta5broo/cizgihubdeneme/internal/testing"
)

type fakeReceiver struct {
	url       string
	ids       chan string
	shutdowns int
}

func newFakeReceiver() *fakeReceiver {
	return &fakeReceiver{url: "http://127.0.0.1:9999/profile", ids: make(chan string, 8)}
}

func (r *fakeReceiver) URL() string               { return r.url }
func (r *fakeReceiver) SessionIDs() <-chan string { return r.ids }

func (r *fakeReceiver) Shutdown(context.Context) error {
	r.shutdowns++
	return nil
}

func newTestFlow(api *tu.MockAPI, receiver *fakeReceiver) (*Flow, *Manager) {
	manager := NewManager(api, &tu.MockStore{}, nil)
	flow := NewFlow(manager, "https://id.example.com/", func() (Receiver, error) {
		return receiver, nil
	}, nil)
	flow.openBrowser = func(string) error { return nil }
	return flow, manager
}

func TestFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("Run", func(t *testing.T) {
		t.Run("completes the handshake", func(t *testing.T) {
			api := &tu.MockAPI{
				ExchangeSessionFunc: func(ctx context.Context, sessionID string) (*models.AuthExchange, error) {
					if sessionID != "one-time" {
						t.Errorf("unexpected session id: %s", sessionID)
					}
					return &models.AuthExchange{
						SessionToken: "tok-fresh",
						User:         models.User{ID: "u1", Name: "Ayşe"},
					}, nil
				},
			}
			receiver := newFakeReceiver()
			flow, manager := newTestFlow(api, receiver)

			var opened string
			flow.openBrowser = func(u string) error {
				opened = u
				return nil
			}

			receiver.ids <- "one-time"

			user, err := flow.Run(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != "u1" {
				t.Errorf("unexpected user: %+v", user)
			}
			if flow.State() != FlowComplete {
				t.Errorf("expected complete state, got %s", flow.State())
			}
			if manager.User() == nil {
				t.Error("expected manager to hold the session")
			}
			if !strings.Contains(opened, "redirect="+url.QueryEscape(receiver.url)) {
				t.Errorf("expected escaped redirect target in provider url, got %s", opened)
			}
			if receiver.shutdowns != 1 {
				t.Errorf("expected receiver shutdown once, got %d", receiver.shutdowns)
			}
		})

		t.Run("failed exchange fails the flow", func(t *testing.T) {
			api := &tu.MockAPI{
				ExchangeSessionFunc: func(ctx context.Context, sessionID string) (*models.AuthExchange, error) {
					return nil, shared.ErrAuthFailed
				},
			}
			receiver := newFakeReceiver()
			flow, manager := newTestFlow(api, receiver)

			receiver.ids <- "rejected"

			if _, err := flow.Run(ctx); !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
			if flow.State() != FlowFailed {
				t.Errorf("expected failed state, got %s", flow.State())
			}
			if manager.User() != nil {
				t.Error("expected no session on failed exchange")
			}
		})

		t.Run("browser failure fails the flow", func(t *testing.T) {
			receiver := newFakeReceiver()
			flow, _ := newTestFlow(&tu.MockAPI{}, receiver)
			flow.openBrowser = func(string) error { return errors.New("no display") }

			if _, err := flow.Run(ctx); !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})

		t.Run("canceled context fails the flow", func(t *testing.T) {
			receiver := newFakeReceiver()
			flow, _ := newTestFlow(&tu.MockAPI{}, receiver)

			cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
			defer cancel()

			if _, err := flow.Run(cctx); !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("expected deadline error, got %v", err)
			}
			if flow.State() != FlowFailed {
				t.Errorf("expected failed state, got %s", flow.State())
			}
		})

		t.Run("refuses to start while active", func(t *testing.T) {
			flow, _ := newTestFlow(&tu.MockAPI{}, newFakeReceiver())
			flow.setState(FlowAwaitingCallback)

			if _, err := flow.Run(ctx); !errors.Is(err, shared.ErrFlowInProgress) {
				t.Errorf("expected ErrFlowInProgress, got %v", err)
			}
		})

		t.Run("can run again after completion", func(t *testing.T) {
			api := &tu.MockAPI{
				ExchangeSessionFunc: func(ctx context.Context, sessionID string) (*models.AuthExchange, error) {
					return &models.AuthExchange{SessionToken: "tok-" + sessionID, User: models.User{ID: "u1"}}, nil
				},
			}
			receiver := newFakeReceiver()
			flow, _ := newTestFlow(api, receiver)

			receiver.ids <- "first"
			if _, err := flow.Run(ctx); err != nil {
				t.Fatalf("first run failed: %v", err)
			}

			receiver.ids <- "second"
			if _, err := flow.Run(ctx); err != nil {
				t.Fatalf("second run failed: %v", err)
			}
		})
	})

	t.Run("handleSessionID", func(t *testing.T) {
		t.Run("ignores empty identifiers", func(t *testing.T) {
			flow, _ := newTestFlow(&tu.MockAPI{}, newFakeReceiver())

			if _, done, _ := flow.handleSessionID(ctx, ""); done {
				t.Error("expected empty identifier to be skipped")
			}
		})

		t.Run("consumes each identifier exactly once", func(t *testing.T) {
			exchanges := 0
			api := &tu.MockAPI{
				ExchangeSessionFunc: func(ctx context.Context, sessionID string) (*models.AuthExchange, error) {
					exchanges++
					return &models.AuthExchange{SessionToken: "tok", User: models.User{ID: "u1"}}, nil
				},
			}
			flow, _ := newTestFlow(api, newFakeReceiver())

			// The landing page fires on load and on fragment change, so the
			// same identifier arrives twice.
			if _, done, err := flow.handleSessionID(ctx, "dup-id"); !done || err != nil {
				t.Fatalf("expected first delivery to be exchanged: done=%v err=%v", done, err)
			}
			if _, done, _ := flow.handleSessionID(ctx, "dup-id"); done {
				t.Error("expected duplicate delivery to be ignored")
			}
			if exchanges != 1 {
				t.Errorf("expected exactly one exchange, got %d", exchanges)
			}
		})
	})
}
