// Package server runs the loopback HTTP server that receives the identity
// provider's redirect during login.
//
// The provider returns the one-time session identifier in the URL fragment,
// which browsers never transmit to servers. The /profile landing page
// therefore carries a small script that forwards the fragment's session_id
// to /callback as a query parameter, where it is validated against a
// per-flow state nonce and delivered to the auth flow over a channel.
package server
