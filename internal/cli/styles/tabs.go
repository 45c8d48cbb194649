package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TabsModel represents a horizontal tab bar.
type TabsModel struct {
	Tabs   []string
	Active int
	Marked map[int]bool // Tabs picked up for a multi-tab drag
	theme  *Theme
}

// NewTabs creates a new tab bar with the given labels.
func NewTabs(theme *Theme, tabs ...string) TabsModel {
	return TabsModel{
		Tabs:   tabs,
		Active: 0,
		theme:  theme,
	}
}

// SetActive sets the active tab index.
func (m *TabsModel) SetActive(index int) {
	if index >= 0 && index < len(m.Tabs) {
		m.Active = index
	}
}

// View renders the tab bar.
func (m TabsModel) View() string {
	if len(m.Tabs) == 0 {
		return m.theme.Subtle.Render("(no tabs)")
	}

	tabs := make([]string, 0, len(m.Tabs))
	for i, tab := range m.Tabs {
		style := m.theme.InactiveTab
		if i == m.Active {
			style = m.theme.ActiveTab
		}
		label := tab
		if m.Marked[i] {
			label = IconMarked + " " + label
		}
		tabs = append(tabs, style.Render(label))
	}

	gap := lipgloss.NewStyle().
		Foreground(m.theme.Border).
		Render(" │ ")

	return lipgloss.JoinHorizontal(lipgloss.Top, join(tabs, gap)...)
}

// WindowView renders one window: a title line, its tab bar and the selected
// tab's content.
type WindowView struct {
	Title   string
	Tabs    TabsModel
	Content string
	Focused bool
	Width   int
}

// Render renders the window frame.
func (w WindowView) Render(theme *Theme) string {
	frame := theme.Window
	title := theme.Subtitle.Render(IconWindow + " " + w.Title)
	if w.Focused {
		frame = theme.WindowActive
		title = theme.Highlight.Render(IconWindow + " " + w.Title)
	}
	if w.Width > 0 {
		frame = frame.Width(w.Width)
	}

	body := []string{
		title,
		theme.TabBar.Render(w.Tabs.View()),
		theme.Normal.Render(w.Content),
	}
	return frame.Render(strings.Join(body, "\n"))
}

// RenderTabLine renders a plain, uncolored summary of a window's tabs with
// the selected tab in brackets.
func RenderTabLine(handle string, headers []string, selected int) string {
	parts := make([]string, len(headers))
	for i, h := range headers {
		if i == selected {
			parts[i] = "[" + h + "]"
		} else {
			parts[i] = h
		}
	}
	return fmt.Sprintf("%s: %s", handle, strings.Join(parts, " | "))
}

// join inserts a separator between items.
func join(items []string, sep string) []string {
	if len(items) == 0 {
		return items
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}
