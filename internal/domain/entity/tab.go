package entity

import "time"

// TabID uniquely identifies a tab across every window.
type TabID string

// TabItem is a single tab: a stable identity plus the content it shows.
// The migration code only moves items between collections; Header and
// Payload belong to the application.
type TabItem struct {
	ID        TabID
	Header    string // Text shown in the tab strip
	Payload   any    // Opaque content reference
	CreatedAt time.Time
}

// NewTabItem creates a tab item.
func NewTabItem(id TabID, header string, payload any) *TabItem {
	return &TabItem{
		ID:        id,
		Header:    header,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// Title returns the display title for the tab.
func (t *TabItem) Title() string {
	if t == nil || t.Header == "" {
		return "New Tab"
	}
	return t.Header
}
