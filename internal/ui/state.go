package ui

import "github.com/gta5broo/cizgihubdeneme/internal/models"

// route is the top-level view decision.
type route int

const (
	routeLoading route = iota
	routeCallback
	routeLanding
	routeCatalog
)

// resolveRoute picks the mounted view from session state. While the startup
// check runs no routing decision is made; the callback view wins over
// everything else while the handshake is active.
func resolveRoute(loading, callbackActive, authenticated bool) route {
	switch {
	case loading:
		return routeLoading
	case callbackActive:
		return routeCallback
	case !authenticated:
		return routeLanding
	default:
		return routeCatalog
	}
}

// detailFocus selects which pane of the show detail view has the cursor.
type detailFocus int

const (
	focusSeasons detailFocus = iota
	focusEpisodes
)

// navState is the catalog browser's navigation state, a tagged union over
// the three drill-down levels. Invalid combinations (an episode without its
// season, a season without its show) are unrepresentable: each variant
// carries the fully loaded data it was entered with.
type navState interface {
	navState()
}

// browsingState is the show list.
type browsingState struct{}

// showDetailState is one show with its seasons; at most one season's
// episode list is expanded at a time.
type showDetailState struct {
	detail         models.ShowDetail
	expandedSeason *models.Season
	episodes       []models.Episode
	focus          detailFocus
	seasonCursor   int
	episodeCursor  int
}

// playerState is one episode with its comment thread. back retains the
// show detail it was entered from, so back navigation is a pure local reset.
type playerState struct {
	back     *showDetailState
	episode  models.Episode
	comments []models.Comment

	commentCursor int
	// revealed tracks per-instance spoiler reveals; one-way, never persisted.
	revealed  map[string]bool
	composing bool
	spoiler   bool
}

func (*browsingState) navState()   {}
func (*showDetailState) navState() {}
func (*playerState) navState()     {}

func newPlayerState(back *showDetailState, view models.EpisodeView) *playerState {
	return &playerState{
		back:     back,
		episode:  view.Episode,
		comments: view.Comments,
		revealed: make(map[string]bool),
	}
}
