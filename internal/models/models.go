// package models defines the wire types exchanged with the ÇizgiHub API.
//
// Field names mirror the server's JSON exactly; the client never persists
// these beyond the lifetime of the view that fetched them.
package models

import "time"

// User is the authenticated viewer's profile, fetched from /auth/me and
// held in memory only.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Show is a series in the catalog. Read-only from the client's perspective.
type Show struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	Year        int       `json:"year"`
	Rating      float64   `json:"rating"`
	PosterURL   string    `json:"poster_url"`
	BannerURL   string    `json:"banner_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Season is a child of a Show.
type Season struct {
	ID           string    `json:"id"`
	ShowID       string    `json:"show_id"`
	SeasonNumber int       `json:"season_number"`
	Title        string    `json:"title"`
	EpisodeCount int       `json:"episode_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// ShowDetail is the /shows/{id} response: the show plus its seasons in order.
type ShowDetail struct {
	Show    Show     `json:"show"`
	Seasons []Season `json:"seasons"`
}

// Episode is a child of a Season. Duration is the server's display string
// (e.g. "24:30").
type Episode struct {
	ID               string    `json:"id"`
	SeasonID         string    `json:"season_id"`
	EpisodeNumber    int       `json:"episode_number"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Duration         string    `json:"duration"`
	VideoURL         string    `json:"video_url"`
	ThumbnailURL     string    `json:"thumbnail_url"`
	TurkishSubtitles string    `json:"turkish_subtitles,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Comment belongs to exactly one Episode. Deletable only by admins.
type Comment struct {
	ID        string    `json:"id"`
	EpisodeID string    `json:"episode_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	IsSpoiler bool      `json:"is_spoiler"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentCreate is the /comments request body.
type CommentCreate struct {
	EpisodeID string `json:"episode_id"`
	Content   string `json:"content"`
	IsSpoiler bool   `json:"is_spoiler"`
}

// AuthExchange is the /auth/profile response: a fresh session token and the
// provider-supplied profile.
type AuthExchange struct {
	SessionToken string `json:"session_token"`
	User         User   `json:"user"`
}

// EpisodeView pairs an episode with its comment thread. Both halves are
// fetched together; the player never renders one without the other.
type EpisodeView struct {
	Episode  Episode
	Comments []Comment
}
