package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	login    key.Binding
	register key.Binding
	reveal   key.Binding
	compose  key.Binding
	submit   key.Binding
	spoiler  key.Binding
	del      key.Binding
	open     key.Binding
	logout   key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		login:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "giriş yap")),
		register: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "kayıt ol")),
		reveal:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reveal spoiler")),
		compose:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
		submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		spoiler:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle spoiler")),
		del:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete (admin)")),
		open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "play video")),
		logout:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "çıkış")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.enter, k.back, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.compose, k.reveal},
		{k.logout, k.quit},
	}
}
