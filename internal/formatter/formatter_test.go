package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/gta5broo/cizgihubdeneme/internal/models"
)

func TestFormatter(t *testing.T) {
	t.Run("ShowsTable", func(t *testing.T) {
		out := ShowsTable([]models.Show{
			{ID: "s1", Title: "Rick and Morty", Genre: "Bilim Kurgu", Year: 2013, Rating: 9.2},
		})

		if !strings.Contains(out, "Rick and Morty") {
			t.Error("expected show title in output")
		}
		if !strings.Contains(out, "2013") {
			t.Error("expected year in output")
		}
	})

	t.Run("ShowDetailText", func(t *testing.T) {
		out := ShowDetailText(&models.ShowDetail{
			Show: models.Show{Title: "Gravity Falls", Year: 2012, Genre: "Macera", Rating: 8.9, Description: "Gizemli bir kasaba"},
			Seasons: []models.Season{
				{ID: "se1", Title: "1. Sezon", EpisodeCount: 20},
			},
		})

		if !strings.Contains(out, "Gravity Falls (2012)") {
			t.Errorf("expected header in output, got:\n%s", out)
		}
		if !strings.Contains(out, "Gizemli bir kasaba") {
			t.Error("expected description in output")
		}
		if !strings.Contains(out, "20 bölüm") {
			t.Error("expected episode count in output")
		}
	})

	t.Run("EpisodeText", func(t *testing.T) {
		out := EpisodeText(&models.Episode{
			Title:            "Pilot",
			Duration:         "24:30",
			VideoURL:         "https://cdn.example.com/ep1.mp4",
			TurkishSubtitles: "https://cdn.example.com/ep1.tr.vtt",
		})

		if !strings.Contains(out, "Süre: 24:30") {
			t.Error("expected duration in output")
		}
		if !strings.Contains(out, "Altyazı:") {
			t.Error("expected subtitle line in output")
		}
	})

	t.Run("CommentsText", func(t *testing.T) {
		comments := []models.Comment{
			{ID: "c1", UserName: "ayse", Content: "harika bölüm", CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
			{ID: "c2", UserName: "mehmet", Content: "sonunda herkes ölüyor", IsSpoiler: true, CreatedAt: time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)},
		}

		t.Run("redacts spoilers by default", func(t *testing.T) {
			out := CommentsText(comments, false)

			if !strings.Contains(out, "harika bölüm") {
				t.Error("expected regular comment in output")
			}
			if strings.Contains(out, "herkes ölüyor") {
				t.Error("expected spoiler body to be redacted")
			}
			if !strings.Contains(out, SpoilerPlaceholder) {
				t.Error("expected spoiler placeholder in output")
			}
		})

		t.Run("reveals spoilers when asked", func(t *testing.T) {
			out := CommentsText(comments, true)

			if !strings.Contains(out, "herkes ölüyor") {
				t.Error("expected spoiler body in output")
			}
		})

		t.Run("empty thread", func(t *testing.T) {
			if out := CommentsText(nil, false); !strings.Contains(out, "Henüz yorum yok") {
				t.Errorf("expected empty-thread message, got %q", out)
			}
		})
	})
}
