// package formatter renders catalog and comment data as plain text for CLI output
package formatter

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/gta5broo/cizgihubdeneme/internal/models"
)

// SpoilerPlaceholder replaces spoiler-flagged comment bodies unless the
// caller asks for them revealed.
const SpoilerPlaceholder = "🚫 Spoiler içerir - görmek için --spoilers kullanın"

// ShowsTable renders the show list as an aligned table.
func ShowsTable(shows []models.Show) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tGENRE\tYEAR\tRATING")
	for _, show := range shows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t⭐ %.1f\n", show.ID, show.Title, show.Genre, show.Year, show.Rating)
	}
	w.Flush()

	return buf.String()
}

// ShowDetailText renders a show with its seasons.
func ShowDetailText(detail *models.ShowDetail) string {
	var buf bytes.Buffer

	show := detail.Show
	fmt.Fprintf(&buf, "%s (%d) • %s • ⭐ %.1f\n", show.Title, show.Year, show.Genre, show.Rating)
	if show.Description != "" {
		fmt.Fprintf(&buf, "%s\n", show.Description)
	}
	buf.WriteString("\n")

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEASON\tEPISODES")
	for _, season := range detail.Seasons {
		fmt.Fprintf(w, "%s\t%s\t%d bölüm\n", season.ID, season.Title, season.EpisodeCount)
	}
	w.Flush()

	return buf.String()
}

// EpisodesTable renders a season's episodes as an aligned table.
func EpisodesTable(episodes []models.Episode) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tEPISODE\tDURATION")
	for _, ep := range episodes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ep.ID, ep.Title, ep.Duration)
	}
	w.Flush()

	return buf.String()
}

// EpisodeText renders a single episode's details.
func EpisodeText(ep *models.Episode) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n", ep.Title)
	if ep.Description != "" {
		fmt.Fprintf(&buf, "%s\n", ep.Description)
	}
	fmt.Fprintf(&buf, "Süre: %s\n", ep.Duration)
	fmt.Fprintf(&buf, "Video: %s\n", ep.VideoURL)
	if ep.TurkishSubtitles != "" {
		fmt.Fprintf(&buf, "Altyazı: %s\n", ep.TurkishSubtitles)
	}

	return buf.String()
}

// CommentsText renders a comment thread. Spoiler-flagged bodies are
// redacted unless revealSpoilers is set.
func CommentsText(comments []models.Comment, revealSpoilers bool) string {
	if len(comments) == 0 {
		return "Henüz yorum yok.\n"
	}

	var buf bytes.Buffer
	for _, c := range comments {
		body := c.Content
		if c.IsSpoiler && !revealSpoilers {
			body = SpoilerPlaceholder
		}
		fmt.Fprintf(&buf, "[%s] %s (%s)\n  %s\n", c.ID, c.UserName, c.CreatedAt.Format("2006-01-02 15:04"), body)
	}

	return buf.String()
}
