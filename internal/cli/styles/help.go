package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// GalleryKeyMap defines keybindings for the tab window gallery.
type GalleryKeyMap struct {
	PrevTab     key.Binding
	NextTab     key.Binding
	PrevWindow  key.Binding
	NextWindow  key.Binding
	NewTab      key.Binding
	CloseTab    key.Binding
	Menu        key.Binding
	Mark        key.Binding
	TearOut     key.Binding
	Drop        key.Binding
	CloseWindow key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k GalleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.NextWindow, k.Menu, k.TearOut, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k GalleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTab, k.NextTab, k.PrevWindow, k.NextWindow},
		{k.NewTab, k.CloseTab, k.CloseWindow},
		{k.Menu, k.Mark, k.TearOut, k.Drop},
		{k.Help, k.Quit},
	}
}

// DefaultGalleryKeyMap returns the default gallery keybindings.
func DefaultGalleryKeyMap() GalleryKeyMap {
	return GalleryKeyMap{
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tab"),
		),
		PrevWindow: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "prev window"),
		),
		NextWindow: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next window"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("n", "ctrl+t"),
			key.WithHelp("n", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("x", "ctrl+w"),
			key.WithHelp("x", "close tab"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "enter"),
			key.WithHelp("m", "tab menu"),
		),
		Mark: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mark tab"),
		),
		TearOut: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tear out"),
		),
		Drop: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "drop here"),
		),
		CloseWindow: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "close window"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines keybindings for the tab context menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

// FullHelp returns keybindings for expanded help.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select, k.Cancel}}
}

// DefaultMenuKeyMap returns the default menu keybindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "close menu"),
		),
	}
}

// NewStyledHelp creates a help model with theme styling.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
