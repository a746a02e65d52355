package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/gta5broo/cizgihubdeneme/internal/auth"
	"github.com/gta5broo/cizgihubdeneme/internal/models"
	"github.com/gta5broo/cizgihubdeneme/internal/services"
	"github.com/gta5broo/cizgihubdeneme/internal/shared"
)

// authFailedAlert is the one user-facing error in the client, shown when the
// identity exchange fails. Everything else degrades silently.
const authFailedAlert = "Giriş yapılırken hata oluştu. Lütfen tekrar deneyiniz."

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	cfg     shared.UIConfig
	session *auth.Manager
	flow    *auth.Flow
	api     services.Service
	logger  *log.Logger

	width  int
	height int

	callbackActive bool
	alert          string

	nav      navState
	shows    []models.Show
	showList list.Model

	spin    spinner.Model
	comment textarea.Model
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, cfg shared.UIConfig, session *auth.Manager, flow *auth.Flow, api services.Service, logger *log.Logger) *Model {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	comment := textarea.New()
	comment.Placeholder = "Yorumunuzu yazın..."
	comment.SetHeight(3)
	comment.CharLimit = 1000

	showList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	showList.Title = "Popüler Diziler"

	return &Model{
		ctx:      ctx,
		cfg:      cfg,
		session:  session,
		flow:     flow,
		api:      api,
		logger:   logger,
		nav:      &browsingState{},
		showList: showList,
		spin:     spin,
		comment:  comment,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// route recomputes the mounted view from current session state.
func (m *Model) route() route {
	return resolveRoute(m.session.Loading(), m.callbackActive, m.session.User() != nil)
}

// Init starts the spinner and runs the startup session check.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.checkSession())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showList.SetSize(msg.Width-4, msg.Height-8)
		m.comment.SetWidth(msg.Width - 6)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case sessionCheckedMsg:
		if msg.user != nil {
			return m, m.enterCatalog()
		}
		return m, nil

	case authDoneMsg:
		m.callbackActive = false
		if msg.err != nil {
			m.alert = authFailedAlert
			return m, nil
		}
		return m, m.enterCatalog()

	case dataSeededMsg:
		// Seed failures mean the data already exists; refetch either way.
		if msg.err != nil {
			m.logger.Debugf("data already initialized or error: %v", msg.err)
		}
		return m, m.fetchShows()

	case showsFetchedMsg:
		if msg.err != nil {
			m.logger.Errorf("error loading shows: %v", msg.err)
			return m, nil
		}
		m.setShows(msg.shows)
		return m, nil

	case showFetchedMsg:
		if msg.err != nil {
			m.logger.Errorf("error loading show: %v", msg.err)
			return m, nil
		}
		m.nav = &showDetailState{detail: *msg.detail}
		return m, nil

	case episodesFetchedMsg:
		if msg.err != nil {
			m.logger.Errorf("error loading episodes: %v", msg.err)
			return m, nil
		}
		if detail, ok := m.nav.(*showDetailState); ok {
			season := msg.season
			detail.expandedSeason = &season
			detail.episodes = msg.episodes
			detail.focus = focusEpisodes
			detail.episodeCursor = 0
		}
		return m, nil

	case episodeFetchedMsg:
		if msg.err != nil {
			m.logger.Errorf("error loading episode: %v", msg.err)
			return m, nil
		}
		if detail, ok := m.nav.(*showDetailState); ok {
			m.nav = newPlayerState(detail, *msg.view)
			m.comment.Reset()
			m.comment.Blur()
		}
		return m, nil

	case commentsRefreshedMsg:
		if msg.err != nil {
			m.logger.Errorf("error adding comment: %v", msg.err)
			return m, nil
		}
		if player, ok := m.nav.(*playerState); ok {
			player.comments = msg.comments
			player.composing = false
			player.spoiler = false
			m.comment.Reset()
			m.comment.Blur()
		}
		return m, nil

	case commentDeletedMsg:
		if msg.err != nil {
			m.logger.Errorf("error deleting comment: %v", msg.err)
			return m, nil
		}
		if player, ok := m.nav.(*playerState); ok {
			kept := player.comments[:0:0]
			for _, c := range player.comments {
				if c.ID != msg.id {
					kept = append(kept, c)
				}
			}
			player.comments = kept
			if player.commentCursor >= len(kept) && player.commentCursor > 0 {
				player.commentCursor = len(kept) - 1
			}
		}
		return m, nil

	case loggedOutMsg:
		if m.cfg.ResetNavigationOnLogout {
			m.nav = &browsingState{}
			m.shows = nil
			m.showList.SetItems(nil)
		}
		return m, nil
	}

	return m.updateChildren(msg)
}

// View renders the UI based on the current route and navigation state.
func (m *Model) View() string {
	if m.alert != "" {
		return m.renderAlert()
	}

	switch m.route() {
	case routeLoading:
		return m.renderLoading()
	case routeCallback:
		return m.renderCallback()
	case routeLanding:
		return m.renderLanding()
	case routeCatalog:
		return m.renderCatalog()
	default:
		return ""
	}
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The exchange-failure alert blocks until dismissed.
	if m.alert != "" {
		switch msg.String() {
		case "enter", "esc":
			m.alert = ""
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.route() {
	case routeLanding:
		return m.handleLandingKeys(msg)
	case routeCallback:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case routeCatalog:
		switch nav := m.nav.(type) {
		case *browsingState:
			return m.handleBrowsingKeys(msg)
		case *showDetailState:
			return m.handleShowDetailKeys(msg, nav)
		case *playerState:
			return m.handlePlayerKeys(msg, nav)
		}
	}

	if msg.String() == "ctrl+c" || msg.String() == "q" {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleLandingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "l", "r", "enter":
		// Login and register use the same external handshake.
		return m, m.startAuthFlow()
	}
	return m, nil
}

func (m *Model) handleBrowsingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, m.logout()
	case "enter":
		if selected, ok := m.showList.SelectedItem().(showItem); ok {
			return m, m.fetchShow(selected.show.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.showList, cmd = m.showList.Update(msg)
	return m, cmd
}

func (m *Model) handleShowDetailKeys(msg tea.KeyMsg, detail *showDetailState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, m.logout()
	case "esc":
		if detail.focus == focusEpisodes {
			detail.focus = focusSeasons
			return m, nil
		}
		m.nav = &browsingState{}
		return m, nil
	case "up", "k":
		if detail.focus == focusEpisodes {
			if detail.episodeCursor > 0 {
				detail.episodeCursor--
			}
		} else if detail.seasonCursor > 0 {
			detail.seasonCursor--
		}
		return m, nil
	case "down", "j":
		if detail.focus == focusEpisodes {
			if detail.episodeCursor < len(detail.episodes)-1 {
				detail.episodeCursor++
			}
		} else if detail.seasonCursor < len(detail.detail.Seasons)-1 {
			detail.seasonCursor++
		}
		return m, nil
	case "enter":
		if detail.focus == focusEpisodes {
			if detail.episodeCursor < len(detail.episodes) {
				return m, m.fetchEpisode(detail.episodes[detail.episodeCursor].ID)
			}
			return m, nil
		}
		if detail.seasonCursor < len(detail.detail.Seasons) {
			return m, m.fetchEpisodes(detail.detail.Seasons[detail.seasonCursor])
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handlePlayerKeys(msg tea.KeyMsg, player *playerState) (tea.Model, tea.Cmd) {
	if player.composing {
		switch msg.String() {
		case "esc":
			player.composing = false
			m.comment.Blur()
			return m, nil
		case "ctrl+t":
			player.spoiler = !player.spoiler
			return m, nil
		case "ctrl+s":
			return m, m.addComment(player)
		case "ctrl+c":
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.comment, cmd = m.comment.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, m.logout()
	case "esc":
		m.nav = player.back
		return m, nil
	case "up", "k":
		if player.commentCursor > 0 {
			player.commentCursor--
		}
		return m, nil
	case "down", "j":
		if player.commentCursor < len(player.comments)-1 {
			player.commentCursor++
		}
		return m, nil
	case "r":
		// Reveal is one-way; there is no way to re-hide.
		if player.commentCursor < len(player.comments) {
			c := player.comments[player.commentCursor]
			if c.IsSpoiler {
				player.revealed[c.ID] = true
			}
		}
		return m, nil
	case "c":
		player.composing = true
		return m, m.comment.Focus()
	case "d":
		return m, m.deleteComment(player)
	case "o":
		if err := shared.OpenBrowser(player.episode.VideoURL); err != nil {
			m.logger.Warnf("failed to open video: %v", err)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.route() == routeCatalog {
		if _, ok := m.nav.(*browsingState); ok {
			m.showList, cmd = m.showList.Update(msg)
		}
	}
	return m, cmd
}

func (m *Model) setShows(shows []models.Show) {
	m.shows = shows
	items := make([]list.Item, len(shows))
	for i, show := range shows {
		items[i] = showItem{show: show}
	}
	m.showList.SetItems(items)
	if m.width > 0 {
		m.showList.SetSize(m.width-4, m.height-8)
	}
}

// enterCatalog fires the idempotent seed; shows are fetched when it settles.
func (m *Model) enterCatalog() tea.Cmd {
	return tea.Batch(m.fetchShows(), m.seedData())
}

func (m *Model) checkSession() tea.Cmd {
	return func() tea.Msg {
		return sessionCheckedMsg{user: m.session.CheckSession(m.ctx)}
	}
}

func (m *Model) startAuthFlow() tea.Cmd {
	m.callbackActive = true
	return func() tea.Msg {
		user, err := m.flow.Run(m.ctx)
		return authDoneMsg{user: user, err: err}
	}
}

func (m *Model) logout() tea.Cmd {
	return func() tea.Msg {
		m.session.Logout(m.ctx)
		return loggedOutMsg{}
	}
}

func (m *Model) seedData() tea.Cmd {
	return func() tea.Msg {
		return dataSeededMsg{err: m.api.InitData(m.ctx)}
	}
}

func (m *Model) fetchShows() tea.Cmd {
	return func() tea.Msg {
		shows, err := m.api.Shows(m.ctx)
		return showsFetchedMsg{shows: shows, err: err}
	}
}

func (m *Model) fetchShow(showID string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.api.Show(m.ctx, showID)
		return showFetchedMsg{detail: detail, err: err}
	}
}

func (m *Model) fetchEpisodes(season models.Season) tea.Cmd {
	return func() tea.Msg {
		episodes, err := m.api.SeasonEpisodes(m.ctx, season.ID)
		return episodesFetchedMsg{season: season, episodes: episodes, err: err}
	}
}

func (m *Model) fetchEpisode(episodeID string) tea.Cmd {
	return func() tea.Msg {
		view, err := m.api.LoadEpisode(m.ctx, episodeID)
		return episodeFetchedMsg{view: view, err: err}
	}
}

// addComment posts the composed comment and refetches the full thread.
// Empty or whitespace-only text is rejected locally, no network call.
func (m *Model) addComment(player *playerState) tea.Cmd {
	content := m.comment.Value()
	if strings.TrimSpace(content) == "" {
		return nil
	}

	episodeID := player.episode.ID
	spoiler := player.spoiler
	return func() tea.Msg {
		create := models.CommentCreate{EpisodeID: episodeID, Content: content, IsSpoiler: spoiler}
		if _, err := m.api.CreateComment(m.ctx, create); err != nil {
			return commentsRefreshedMsg{err: err}
		}
		comments, err := m.api.EpisodeComments(m.ctx, episodeID)
		return commentsRefreshedMsg{comments: comments, err: err}
	}
}

// deleteComment issues the admin delete. Non-admins never reach the network:
// the call is suppressed locally.
func (m *Model) deleteComment(player *playerState) tea.Cmd {
	if !m.session.IsAdmin() {
		return nil
	}
	if player.commentCursor >= len(player.comments) {
		return nil
	}

	id := player.comments[player.commentCursor].ID
	return func() tea.Msg {
		return commentDeletedMsg{id: id, err: m.api.DeleteComment(m.ctx, id)}
	}
}
