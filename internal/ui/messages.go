package ui

import "github.com/gta5broo/cizgihubdeneme/internal/models"

// Messages delivered by tea.Cmd closures. Every network fetch resolves into
// exactly one of these; state transitions happen only on receipt, so a view
// can never hold half-loaded data.

type sessionCheckedMsg struct {
	user *models.User
}

type authDoneMsg struct {
	user *models.User
	err  error
}

type dataSeededMsg struct {
	err error
}

type showsFetchedMsg struct {
	shows []models.Show
	err   error
}

type showFetchedMsg struct {
	detail *models.ShowDetail
	err    error
}

type episodesFetchedMsg struct {
	season   models.Season
	episodes []models.Episode
	err      error
}

type episodeFetchedMsg struct {
	view *models.EpisodeView
	err  error
}

type commentsRefreshedMsg struct {
	comments []models.Comment
	err      error
}

type commentDeletedMsg struct {
	id  string
	err error
}

type loggedOutMsg struct{}
