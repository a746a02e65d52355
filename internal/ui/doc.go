// Package ui implements the interactive ÇizgiHub client using bubbletea's Elm architecture.
//
// A single [Model] routes between four top-level views as a pure function of
// session state: a loading view while the startup session check runs, the
// login-callback view while the external handshake is active, the landing
// view for logged-out users, and the catalog for authenticated ones.
//
// Catalog navigation is an explicit tagged union over three states:
//  1. browsing: the show list
//  2. show detail: one show with its seasons, at most one season's episode list expanded
//  3. player: one episode with its comment thread
//
// Transitions happen only through messages carrying fully loaded data, so an
// episode can never be selected without its season, nor a season without its
// show. Back navigation is a pure local state reset with no network calls.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
