package ui

import (
	"fmt"
	"strings"
)

const spoilerRedaction = "🚫 Spoiler içerir. Görmek için tıklayın (r)"

func (m *Model) renderAlert() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("ÇizgiHub"))
	b.WriteString("\n\n")
	b.WriteString(styles.err.Render(m.alert))
	b.WriteString("\n\n")
	b.WriteString(styles.help.Render("enter: tamam • ctrl+c: quit"))
	return b.String()
}

func (m *Model) renderLoading() string {
	return fmt.Sprintf("\n  %s Oturum kontrol ediliyor...\n", m.spin.View())
}

func (m *Model) renderCallback() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("ÇizgiHub"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s Giriş yapılıyor...\n\n", m.spin.View()))
	b.WriteString(styles.dim.Render("  Tarayıcınızda açılan sayfadan giriş yapın."))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderLanding() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("ÇizgiHub"))
	b.WriteString("\n")
	b.WriteString("  Türkçe altyazılı animasyon dizileri\n\n")
	b.WriteString("  📺 Binlerce bölüm\n")
	b.WriteString("  🇹🇷 Türkçe altyazı\n")
	b.WriteString("  💬 Bölüm yorumları\n\n")
	b.WriteString(styles.ok.Render("  l: giriş yap") + styles.dim.Render("  •  ") + styles.ok.Render("r: kayıt ol"))
	b.WriteString("\n\n")
	b.WriteString(styles.help.Render("  q: quit"))
	return b.String()
}

func (m *Model) renderCatalog() string {
	switch nav := m.nav.(type) {
	case *browsingState:
		return m.renderBrowsing()
	case *showDetailState:
		return m.renderShowDetail(nav)
	case *playerState:
		return m.renderPlayer(nav)
	}
	return ""
}

func (m *Model) renderBrowsing() string {
	if len(m.shows) == 0 {
		return fmt.Sprintf("\n  %s Diziler yükleniyor...\n", m.spin.View())
	}

	var b strings.Builder
	if user := m.session.User(); user != nil {
		b.WriteString(styles.dim.Render(fmt.Sprintf("  %s olarak giriş yapıldı", user.Name)))
		b.WriteString("\n")
	}
	b.WriteString(m.showList.View())
	b.WriteString("\n")
	b.WriteString(styles.help.Render("  enter: aç • ctrl+l: çıkış • q: quit"))
	return b.String()
}

func (m *Model) renderShowDetail(nav *showDetailState) string {
	show := nav.detail.Show

	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("%s (%d)", show.Title, show.Year)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s • ⭐ %.1f\n", show.Genre, show.Rating))
	if show.Description != "" {
		b.WriteString(styles.dim.Render("  " + show.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, season := range nav.detail.Seasons {
		cursor := "  "
		line := fmt.Sprintf("%s (%d bölüm)", season.Title, season.EpisodeCount)
		if nav.focus == focusSeasons && i == nav.seasonCursor {
			cursor = styles.cursor.Render("> ")
			line = styles.cursor.Render(line)
		}
		b.WriteString(cursor + line + "\n")

		if nav.expandedSeason != nil && nav.expandedSeason.ID == season.ID {
			b.WriteString(m.renderEpisodeRows(nav))
		}
	}

	b.WriteString("\n  ")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderEpisodeRows(nav *showDetailState) string {
	var b strings.Builder
	for i, ep := range nav.episodes {
		cursor := "    "
		line := fmt.Sprintf("%d. %s (%s)", ep.EpisodeNumber, ep.Title, ep.Duration)
		if nav.focus == focusEpisodes && i == nav.episodeCursor {
			cursor = "  " + styles.cursor.Render("> ")
			line = styles.cursor.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m *Model) renderPlayer(nav *playerState) string {
	ep := nav.episode

	var b strings.Builder
	b.WriteString(styles.title.Render(ep.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Süre: %s", ep.Duration))
	if ep.TurkishSubtitles != "" {
		b.WriteString("  •  🇹🇷 Türkçe altyazı")
	}
	b.WriteString("\n")
	if ep.Description != "" {
		b.WriteString(styles.dim.Render("  " + ep.Description))
		b.WriteString("\n")
	}
	b.WriteString(styles.ok.Render("  o: videoyu oynat"))
	b.WriteString("\n\n")

	b.WriteString(styles.title.Render(fmt.Sprintf("Yorumlar (%d)", len(nav.comments))))
	b.WriteString("\n")
	b.WriteString(m.renderComments(nav))

	if nav.composing {
		b.WriteString("\n")
		b.WriteString(m.comment.View())
		b.WriteString("\n")
		spoilerMark := "[ ]"
		if nav.spoiler {
			spoilerMark = styles.warn.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("  %s spoiler (ctrl+t)\n", spoilerMark))
		b.WriteString(styles.help.Render("  ctrl+s: gönder • esc: vazgeç"))
	} else {
		b.WriteString("\n")
		keys := "  c: yorum yaz • r: spoiler göster • esc: geri • ctrl+l: çıkış"
		if m.session.IsAdmin() {
			keys += " • d: sil"
		}
		b.WriteString(styles.help.Render(keys))
	}
	return b.String()
}

func (m *Model) renderComments(nav *playerState) string {
	if len(nav.comments) == 0 {
		return styles.dim.Render("  Henüz yorum yok. İlk yorumu sen yaz!") + "\n"
	}

	var b strings.Builder
	for i, c := range nav.comments {
		cursor := "  "
		if !nav.composing && i == nav.commentCursor {
			cursor = styles.cursor.Render("> ")
		}

		header := fmt.Sprintf("%s • %s", c.UserName, c.CreatedAt.Format("2006-01-02 15:04"))
		if c.IsSpoiler {
			header += " " + styles.badge.Render(" SPOILER ")
		}
		b.WriteString(cursor + styles.ok.Render(header) + "\n")

		body := c.Content
		if c.IsSpoiler && !nav.revealed[c.ID] {
			body = styles.spoiler.Render(spoilerRedaction)
		}
		b.WriteString("    " + body + "\n")
	}
	return b.String()
}
