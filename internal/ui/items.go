package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/gta5broo/cizgihubdeneme/internal/models"
)

var _ list.Item = showItem{}

// showItem wraps [models.Show] to implement [list.Item].
type showItem struct {
	show models.Show
}

func (i showItem) FilterValue() string { return i.show.Title }
func (i showItem) Title() string       { return i.show.Title }
func (i showItem) Description() string {
	return fmt.Sprintf("%s • %d • ⭐ %.1f", i.show.Genre, i.show.Year, i.show.Rating)
}
