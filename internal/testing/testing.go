// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gta5broo/cizgihubdeneme/internal/models"
)

// MockService is a configurable test double for [services.Service].
// Unset function fields return zero values.
type MockService struct {
	InitDataFunc        func(ctx context.Context) error
	ShowsFunc           func(ctx context.Context) ([]models.Show, error)
	ShowFunc            func(ctx context.Context, showID string) (*models.ShowDetail, error)
	SeasonEpisodesFunc  func(ctx context.Context, seasonID string) ([]models.Episode, error)
	EpisodeFunc         func(ctx context.Context, episodeID string) (*models.Episode, error)
	EpisodeCommentsFunc func(ctx context.Context, episodeID string) ([]models.Comment, error)
	LoadEpisodeFunc     func(ctx context.Context, episodeID string) (*models.EpisodeView, error)
	CreateCommentFunc   func(ctx context.Context, comment models.CommentCreate) (*models.Comment, error)
	DeleteCommentFunc   func(ctx context.Context, commentID string) error
}

func (m *MockService) InitData(ctx context.Context) error {
	if m.InitDataFunc != nil {
		return m.InitDataFunc(ctx)
	}
	return nil
}

func (m *MockService) Shows(ctx context.Context) ([]models.Show, error) {
	if m.ShowsFunc != nil {
		return m.ShowsFunc(ctx)
	}
	return nil, nil
}

func (m *MockService) Show(ctx context.Context, showID string) (*models.ShowDetail, error) {
	if m.ShowFunc != nil {
		return m.ShowFunc(ctx, showID)
	}
	return &models.ShowDetail{}, nil
}

func (m *MockService) SeasonEpisodes(ctx context.Context, seasonID string) ([]models.Episode, error) {
	if m.SeasonEpisodesFunc != nil {
		return m.SeasonEpisodesFunc(ctx, seasonID)
	}
	return nil, nil
}

func (m *MockService) Episode(ctx context.Context, episodeID string) (*models.Episode, error) {
	if m.EpisodeFunc != nil {
		return m.EpisodeFunc(ctx, episodeID)
	}
	return &models.Episode{}, nil
}

func (m *MockService) EpisodeComments(ctx context.Context, episodeID string) ([]models.Comment, error) {
	if m.EpisodeCommentsFunc != nil {
		return m.EpisodeCommentsFunc(ctx, episodeID)
	}
	return nil, nil
}

func (m *MockService) LoadEpisode(ctx context.Context, episodeID string) (*models.EpisodeView, error) {
	if m.LoadEpisodeFunc != nil {
		return m.LoadEpisodeFunc(ctx, episodeID)
	}
	return &models.EpisodeView{}, nil
}

func (m *MockService) CreateComment(ctx context.Context, comment models.CommentCreate) (*models.Comment, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, comment)
	}
	return &models.Comment{}, nil
}

func (m *MockService) DeleteComment(ctx context.Context, commentID string) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, commentID)
	}
	return nil
}

func (m *MockService) Name() string { return "mock" }

// MockAPI is a test double for [auth.API] that records token writes.
type MockAPI struct {
	MeFunc              func(ctx context.Context) (*models.User, error)
	ExchangeSessionFunc func(ctx context.Context, sessionID string) (*models.AuthExchange, error)
	LogoutFunc          func(ctx context.Context) error

	mu     sync.Mutex
	Token  string
	Tokens []string
}

func (m *MockAPI) Me(ctx context.Context) (*models.User, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx)
	}
	return nil, errors.New("not authenticated")
}

func (m *MockAPI) ExchangeSession(ctx context.Context, sessionID string) (*models.AuthExchange, error) {
	if m.ExchangeSessionFunc != nil {
		return m.ExchangeSessionFunc(ctx, sessionID)
	}
	return nil, errors.New("exchange not configured")
}

func (m *MockAPI) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

func (m *MockAPI) SetToken(token string) {
	m.mu.Lock()
	m.Token = token
	m.Tokens = append(m.Tokens, token)
	m.mu.Unlock()
}

func (m *MockAPI) ClearToken() { m.SetToken("") }

// MockStore is an in-memory test double for [auth.SessionStore].
type MockStore struct {
	mu        sync.Mutex
	Stored    string
	SaveErr   error
	LoadErr   error
	ClearErr  error
	ClearedAt int
}

func (s *MockStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Stored = token
	return nil
}

func (s *MockStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return "", s.LoadErr
	}
	return s.Stored, nil
}

func (s *MockStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Stored = ""
	s.ClearedAt++
	return nil
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
