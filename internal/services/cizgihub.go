// ÇizgiHub API implementation of [Service]
//
// Response shapes mirror the FastAPI backend under its /api prefix.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gta5broo/cizgihubdeneme/internal/models"
	"github.com/gta5broo/cizgihubdeneme/internal/shared"
	"golang.org/x/time/rate"
)

const apiPrefix = "/api"

// sessionCookie is the credential cookie presented on every call.
const sessionCookie = "session_token"

// CizgiHubService implements [Service] against the ÇizgiHub REST API.
//
// The session token is write-restricted: only the auth manager calls
// SetToken/ClearToken. Every request presents the current token as the
// session_token cookie, matching the browser client's behavior.
type CizgiHubService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter

	mu    sync.RWMutex
	token string
}

var _ Service = (*CizgiHubService)(nil)

// NewCizgiHubService creates a client for the API rooted at baseURL.
// rateLimit caps outgoing requests per second; zero disables limiting.
func NewCizgiHubService(baseURL string, client *http.Client, rateLimit float64) *CizgiHubService {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), 1)
	}

	return &CizgiHubService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

func (s *CizgiHubService) Name() string {
	return "ÇizgiHub"
}

// SetToken installs the session token used for subsequent requests.
// Reserved for the auth manager.
func (s *CizgiHubService) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// ClearToken removes the session token. Reserved for the auth manager.
func (s *CizgiHubService) ClearToken() {
	s.SetToken("")
}

func (s *CizgiHubService) currentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// doRequest performs an HTTP request against the API, attaching the session
// cookie when a token is present and decoding a JSON response into result.
func (s *CizgiHubService) doRequest(ctx context.Context, method, endpoint string, body, result any) error {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+apiPrefix+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := s.currentToken(); token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: status %d", shared.ErrNotAuthenticated, resp.StatusCode)
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", shared.ErrForbidden, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", shared.ErrNotFound, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Me retrieves the profile bound to the current session token.
func (s *CizgiHubService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.doRequest(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ExchangeSession trades the provider's one-time session identifier for a
// session token and user profile.
func (s *CizgiHubService) ExchangeSession(ctx context.Context, sessionID string) (*models.AuthExchange, error) {
	payload := struct {
		SessionID string `json:"session_id"`
	}{SessionID: sessionID}

	var exchange models.AuthExchange
	if err := s.doRequest(ctx, http.MethodPost, "/auth/profile", payload, &exchange); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}
	return &exchange, nil
}

// Logout asks the server to invalidate the current session.
func (s *CizgiHubService) Logout(ctx context.Context) error {
	return s.doRequest(ctx, http.MethodPost, "/auth/logout", struct{}{}, nil)
}

// InitData triggers the idempotent sample-data seed.
func (s *CizgiHubService) InitData(ctx context.Context) error {
	return s.doRequest(ctx, http.MethodPost, "/admin/init-data", struct{}{}, nil)
}

// Shows retrieves the full show list.
func (s *CizgiHubService) Shows(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	if err := s.doRequest(ctx, http.MethodGet, "/shows", nil, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// Show retrieves a show with its seasons.
func (s *CizgiHubService) Show(ctx context.Context, showID string) (*models.ShowDetail, error) {
	var detail models.ShowDetail
	endpoint := fmt.Sprintf("/shows/%s", showID)
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SeasonEpisodes retrieves a season's episodes.
func (s *CizgiHubService) SeasonEpisodes(ctx context.Context, seasonID string) ([]models.Episode, error) {
	var episodes []models.Episode
	endpoint := fmt.Sprintf("/seasons/%s/episodes", seasonID)
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &episodes); err != nil {
		return nil, err
	}
	return episodes, nil
}

// Episode retrieves a single episode.
func (s *CizgiHubService) Episode(ctx context.Context, episodeID string) (*models.Episode, error) {
	var episode models.Episode
	endpoint := fmt.Sprintf("/episodes/%s", episodeID)
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &episode); err != nil {
		return nil, err
	}
	return &episode, nil
}

// EpisodeComments retrieves an episode's comments, newest first.
func (s *CizgiHubService) EpisodeComments(ctx context.Context, episodeID string) ([]models.Comment, error) {
	var comments []models.Comment
	endpoint := fmt.Sprintf("/episodes/%s/comments", episodeID)
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// LoadEpisode fetches the episode and its comment thread concurrently.
// The player view requires both, so neither result is returned alone.
func (s *CizgiHubService) LoadEpisode(ctx context.Context, episodeID string) (*models.EpisodeView, error) {
	var (
		wg          sync.WaitGroup
		episode     *models.Episode
		comments    []models.Comment
		episodeErr  error
		commentsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		episode, episodeErr = s.Episode(ctx, episodeID)
	}()
	go func() {
		defer wg.Done()
		comments, commentsErr = s.EpisodeComments(ctx, episodeID)
	}()
	wg.Wait()

	if episodeErr != nil {
		return nil, episodeErr
	}
	if commentsErr != nil {
		return nil, commentsErr
	}

	return &models.EpisodeView{Episode: *episode, Comments: comments}, nil
}

// CreateComment posts a comment to an episode.
func (s *CizgiHubService) CreateComment(ctx context.Context, comment models.CommentCreate) (*models.Comment, error) {
	var created models.Comment
	if err := s.doRequest(ctx, http.MethodPost, "/comments", comment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteComment removes a comment by ID through the admin endpoint.
func (s *CizgiHubService) DeleteComment(ctx context.Context, commentID string) error {
	endpoint := fmt.Sprintf("/admin/comments/%s", commentID)
	return s.doRequest(ctx, http.MethodDelete, endpoint, nil, nil)
}
