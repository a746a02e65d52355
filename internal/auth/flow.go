package auth

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gta5broo/cizgihubdeneme/internal/models"
	"github.com/gta5broo/cizgihubdeneme/internal/shared"
)

// FlowState enumerates the external auth handshake's states.
type FlowState int

const (
	FlowIdle FlowState = iota
	FlowRedirecting
	FlowAwaitingCallback
	FlowExchanging
	FlowComplete
	FlowFailed
)

func (s FlowState) String() string {
	switch s {
	case FlowIdle:
		return "idle"
	case FlowRedirecting:
		return "redirecting"
	case FlowAwaitingCallback:
		return "awaiting-callback"
	case FlowExchanging:
		return "exchanging"
	case FlowComplete:
		return "complete"
	case FlowFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Receiver accepts the identity provider's redirect and delivers the
// one-time session identifiers it carries. Implemented by
// [server.CallbackServer].
type Receiver interface {
	// URL is the landing address passed to the provider as the redirect target.
	URL() string
	// SessionIDs delivers every identifier the callback page forwards.
	// The same identifier may arrive more than once.
	SessionIDs() <-chan string
	// Shutdown stops the receiver.
	Shutdown(ctx context.Context) error
}

// Flow drives the two-step external login handshake:
//
//	idle → redirecting → awaiting-callback → exchanging → complete | failed
//
// The browser is sent to the identity provider with a return URL pointing at
// a local receiver; the provider hands back a one-time session identifier,
// which is exchanged for a session token and profile through the API. Each
// identifier is consumed exactly once: the last processed value is remembered
// so a re-delivered fragment is not exchanged twice.
type Flow struct {
	manager     *Manager
	api         API
	providerURL string
	logger      *log.Logger

	// injectable for tests
	newReceiver func() (Receiver, error)
	openBrowser func(url string) error

	mu            sync.Mutex
	state         FlowState
	lastSessionID string
}

// NewFlow creates a login flow bound to the given manager. newReceiver
// constructs the loopback callback server when the flow starts.
func NewFlow(manager *Manager, providerURL string, newReceiver func() (Receiver, error), logger *log.Logger) *Flow {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Flow{
		manager:     manager,
		api:         manager.api,
		providerURL: providerURL,
		logger:      logger,
		newReceiver: newReceiver,
		openBrowser: shared.OpenBrowser,
		state:       FlowIdle,
	}
}

// State returns the flow's current state.
func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) setState(s FlowState) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// begin transitions idle/complete/failed → redirecting; an active flow
// refuses to start again until it settles.
func (f *Flow) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case FlowRedirecting, FlowAwaitingCallback, FlowExchanging:
		return shared.ErrFlowInProgress
	}
	f.state = FlowRedirecting
	return nil
}

// Run executes one login attempt, blocking until the handshake completes,
// fails, or ctx is canceled. There is no timeout while awaiting the
// provider's redirect. On success the manager holds the new session.
func (f *Flow) Run(ctx context.Context) (*models.User, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}

	receiver, err := f.newReceiver()
	if err != nil {
		f.setState(FlowFailed)
		return nil, fmt.Errorf("%w: callback receiver: %v", shared.ErrAuthFailed, err)
	}
	defer receiver.Shutdown(context.Background())

	redirect := fmt.Sprintf("%s?redirect=%s", f.providerURL, url.QueryEscape(receiver.URL()))
	f.logger.Infof("redirecting to identity provider")
	if err := f.openBrowser(redirect); err != nil {
		f.setState(FlowFailed)
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	f.setState(FlowAwaitingCallback)

	for {
		select {
		case <-ctx.Done():
			f.setState(FlowFailed)
			return nil, ctx.Err()
		case sessionID, ok := <-receiver.SessionIDs():
			if !ok {
				f.setState(FlowFailed)
				return nil, fmt.Errorf("%w: callback receiver closed", shared.ErrAuthFailed)
			}
			user, done, err := f.handleSessionID(ctx, sessionID)
			if !done {
				continue
			}
			return user, err
		}
	}
}

// handleSessionID consumes one detected identifier. Duplicates of the last
// processed identifier are ignored (done=false), covering the original
// client's double firing on mount and fragment change.
func (f *Flow) handleSessionID(ctx context.Context, sessionID string) (*models.User, bool, error) {
	if sessionID == "" {
		return nil, false, nil
	}

	f.mu.Lock()
	if sessionID == f.lastSessionID {
		f.mu.Unlock()
		f.logger.Debugf("ignoring already-processed session identifier")
		return nil, false, nil
	}
	f.lastSessionID = sessionID
	f.state = FlowExchanging
	f.mu.Unlock()

	exchange, err := f.api.ExchangeSession(ctx, sessionID)
	if err != nil {
		f.setState(FlowFailed)
		f.logger.Errorf("auth error: %v", err)
		return nil, true, err
	}

	f.manager.Login(exchange.SessionToken, exchange.User)
	f.setState(FlowComplete)
	return &exchange.User, true, nil
}
