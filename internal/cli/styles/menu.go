package styles

import (
	"strings"
)

// MenuEntry is one rendered line of a context menu.
type MenuEntry struct {
	Label   string
	Submenu string // Entries sharing a submenu are grouped under its name
}

// MenuRenderer renders a tab context menu.
type MenuRenderer struct {
	theme *Theme
}

// NewMenuRenderer creates a new menu renderer with the given theme.
func NewMenuRenderer(theme *Theme) *MenuRenderer {
	return &MenuRenderer{theme: theme}
}

// Render draws entries with cursor highlighting. Submenu entries are indented
// below a header carrying the submenu name.
func (r *MenuRenderer) Render(title string, entries []MenuEntry, cursor int) string {
	lines := []string{r.theme.Title.Render(title)}
	if len(entries) == 0 {
		lines = append(lines, r.theme.Subtle.Render("No actions for this tab"))
		return r.theme.MenuBox.Render(strings.Join(lines, "\n"))
	}

	currentSubmenu := ""
	for i, e := range entries {
		if e.Submenu != currentSubmenu {
			currentSubmenu = e.Submenu
			if currentSubmenu != "" {
				lines = append(lines, r.theme.MenuHeader.Render(currentSubmenu+" "+IconArrow))
			}
		}

		label := e.Label
		if e.Submenu != "" {
			label = "  " + label
		}
		if i == cursor {
			lines = append(lines, r.theme.MenuItemSelected.Render(IconCursor+" "+label))
		} else {
			lines = append(lines, r.theme.MenuItem.Render("  "+label))
		}
	}
	return r.theme.MenuBox.Render(strings.Join(lines, "\n"))
}
