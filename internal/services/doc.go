// Package services implements the HTTP client for the ÇizgiHub REST API.
//
// [Service] is the consumer-facing interface used by the TUI and CLI for
// catalog and comment operations. [CizgiHubService] is the concrete client;
// it additionally carries the session token (managed exclusively by the auth
// manager) and the authentication endpoints the auth package consumes.
package services
