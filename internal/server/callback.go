package server

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
)

// CallbackHandler serves the /profile landing page and the /callback
// endpoint it forwards the URL fragment to.
//
// The state nonce is baked into the served page and must round-trip on
// /callback, so only identifiers forwarded by our own page are accepted.
// The same session identifier may legitimately arrive more than once (the
// page fires on load and on every fragment change); de-duplication is the
// flow's job, the handler just delivers.
type CallbackHandler struct {
	state  string
	ids    chan string
	logger *log.Logger
}

// NewCallbackHandler creates a handler with the given state nonce.
func NewCallbackHandler(state string, logger *log.Logger) *CallbackHandler {
	return &CallbackHandler{
		state:  state,
		ids:    make(chan string, 8),
		logger: logger,
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *CallbackHandler) Routes() []string {
	return []string{"/profile", "/callback"}
}

// SessionIDs delivers forwarded session identifiers.
func (h *CallbackHandler) SessionIDs() <-chan string {
	return h.ids
}

func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/profile":
		h.serveProfile(w)
	case "/callback":
		h.serveCallback(w, r)
	default:
		http.NotFound(w, r)
	}
}

// serveProfile renders the landing page the provider redirects to. Its
// script extracts session_id from the fragment and forwards it, both on
// load and whenever the fragment changes.
func (h *CallbackHandler) serveProfile(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, profilePage, h.state)
}

func (h *CallbackHandler) serveCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("state") != h.state {
		h.logger.Warn("callback with invalid state parameter")
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	sessionID := q.Get("session_id")
	if sessionID == "" {
		http.Error(w, "Missing session_id", http.StatusBadRequest)
		return
	}

	select {
	case h.ids <- sessionID:
	default:
		// Flow has stopped draining; drop rather than block the page.
		h.logger.Warn("dropping session identifier, channel full")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}

const profilePage = `<!DOCTYPE html>
<html>
<head>
    <title>Giriş yapılıyor…</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #1e1b4b; color: #fff; }
        .container { text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <h1>ÇizgiHub</h1>
        <p id="msg">Giriş yapılıyor…</p>
    </div>
    <script>
        (function () {
            var state = %q;
            function forward() {
                var hash = window.location.hash;
                var idx = hash.indexOf('session_id=');
                if (idx < 0) { return; }
                var sid = hash.substring(idx + 'session_id='.length);
                fetch('/callback?state=' + encodeURIComponent(state) +
                      '&session_id=' + encodeURIComponent(sid))
                    .then(function () {
                        document.getElementById('msg').textContent =
                            'Giriş tamamlandı. Bu pencereyi kapatıp terminale dönebilirsiniz.';
                    });
            }
            window.addEventListener('hashchange', forward);
            forward();
        })();
    </script>
</body>
</html>
`
