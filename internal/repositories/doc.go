// Package repositories provides the client's only persistence layer: the
// session store, the terminal analogue of the browser's session_token cookie.
//
// Exactly one session row exists at a time. Rows carry a 7-day expiry and
// expired rows are treated as absent. Catalog data is never persisted.
package repositories
