package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gta5broo/cizgihubdeneme/internal/shared"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Logging returns a [Middleware] that logs each request at debug level.
func Logging(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debugf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}

// CallbackServer hosts the login callback endpoints on a loopback address.
// It implements [auth.Receiver].
type CallbackServer struct {
	addr     string
	listener net.Listener
	srv      *http.Server
	handler  *CallbackHandler
	logger   *log.Logger
}

// NewCallbackServer creates a callback server bound to host:port. Port 0
// picks a free port. The server starts listening immediately; requests are
// served on a background goroutine.
func NewCallbackServer(host string, port int, logger *log.Logger) (*CallbackServer, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if host == "" {
		host = "127.0.0.1"
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	handler := NewCallbackHandler(shared.GenerateID(), logger)

	mux := http.NewServeMux()
	for _, route := range handler.Routes() {
		mux.Handle(route, handler)
	}

	s := &CallbackServer{
		addr:     listener.Addr().String(),
		listener: listener,
		handler:  handler,
		logger:   logger,
		srv:      &http.Server{Handler: Logging(logger)(mux)},
	}

	go func() {
		if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warnf("callback server stopped: %v", err)
		}
	}()

	return s, nil
}

// URL returns the landing address handed to the identity provider as the
// redirect target.
func (s *CallbackServer) URL() string {
	return fmt.Sprintf("http://%s/profile", s.addr)
}

// SessionIDs delivers every session identifier forwarded by the landing page.
func (s *CallbackServer) SessionIDs() <-chan string {
	return s.handler.SessionIDs()
}

// Shutdown stops the server gracefully.
func (s *CallbackServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
