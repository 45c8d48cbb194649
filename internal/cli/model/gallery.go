// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabgallery/internal/application/usecase"
	"github.com/bnema/tabgallery/internal/bootstrap"
	"github.com/bnema/tabgallery/internal/cli/styles"
	"github.com/bnema/tabgallery/internal/domain/entity"
	"github.com/bnema/tabgallery/internal/infrastructure/config"
	"github.com/bnema/tabgallery/internal/logging"
)

const maxEventLines = 5

// ConfigReloadedMsg is sent when the config file watcher reloads settings.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// GalleryModel is the Bubble Tea host for the tab window gallery. Every
// window is drawn as a frame with its own tab bar; the focused window follows
// the host's active window.
type GalleryModel struct {
	// UI components
	help     help.Model
	keys     styles.GalleryKeyMap
	menuKeys styles.MenuKeyMap
	menuView *styles.MenuRenderer

	// State
	focus      entity.WindowHandle
	marked     map[entity.TabID]bool
	menu       *usecase.TabMenu
	menuTitle  string
	menuCursor int
	events     []string
	subscribed map[entity.WindowHandle]func()
	showHelp   bool
	status     string
	err        error
	width      int
	height     int

	// Dependencies
	ctx     context.Context
	gallery *bootstrap.Gallery
	theme   *styles.Theme
}

// NewGalleryModel creates a new gallery model.
func NewGalleryModel(ctx context.Context, theme *styles.Theme, gallery *bootstrap.Gallery) *GalleryModel {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating gallery model")

	m := &GalleryModel{
		help:       styles.NewStyledHelp(theme),
		keys:       styles.DefaultGalleryKeyMap(),
		menuKeys:   styles.DefaultMenuKeyMap(),
		menuView:   styles.NewMenuRenderer(theme),
		marked:     make(map[entity.TabID]bool),
		subscribed: make(map[entity.WindowHandle]func()),
		ctx:        ctx,
		gallery:    gallery,
		theme:      theme,
		width:      80,
		height:     24,
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m *GalleryModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ConfigReloadedMsg:
		if msg.Config != nil {
			m.gallery.ApplyConfig(msg.Config.Gallery)
			m.status = "configuration reloaded"
		}
		return m, nil

	case tea.KeyMsg:
		if m.menu != nil {
			m.handleMenuKey(msg)
		} else if quit := m.handleKey(msg); quit {
			m.unsubscribeAll()
			return m, tea.Quit
		}
		m.sync()
		if m.gallery.Registry.Len() == 0 {
			m.unsubscribeAll()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *GalleryModel) handleKey(msg tea.KeyMsg) (quit bool) {
	m.err = nil
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(-1)
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(1)
	case key.Matches(msg, m.keys.PrevWindow):
		m.cycleWindow(-1)
	case key.Matches(msg, m.keys.NextWindow):
		m.cycleWindow(1)
	case key.Matches(msg, m.keys.NewTab):
		_, m.err = m.gallery.AddTab(m.ctx, m.focus)
	case key.Matches(msg, m.keys.CloseTab):
		m.closeTab()
	case key.Matches(msg, m.keys.CloseWindow):
		m.err = m.gallery.Windows.Close(m.ctx, m.focus)
	case key.Matches(msg, m.keys.Menu):
		m.openMenu()
	case key.Matches(msg, m.keys.Mark):
		m.toggleMark()
	case key.Matches(msg, m.keys.TearOut):
		m.tearOut()
	case key.Matches(msg, m.keys.Drop):
		m.drop()
	}
	return false
}

func (m *GalleryModel) handleMenuKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.menuKeys.Cancel):
		m.closeMenu()
	case key.Matches(msg, m.menuKeys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.menuKeys.Down):
		if m.menuCursor < len(m.menu.Actions)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.menuKeys.Select):
		if m.menu.Empty() {
			m.closeMenu()
			return
		}
		action := m.menu.Actions[m.menuCursor]
		m.closeMenu()
		if err := action.Run(m.ctx); err != nil {
			m.err = err
			return
		}
		m.status = action.Label
	}
}

func (m *GalleryModel) focusedTabs() (*entity.TabCollection, error) {
	return m.gallery.Registry.Find(m.focus)
}

func (m *GalleryModel) switchTab(direction int) {
	tabs, err := m.focusedTabs()
	if err != nil {
		m.err = err
		return
	}
	m.err = m.gallery.Tabs.SwitchNext(m.ctx, tabs, direction)
}

func (m *GalleryModel) cycleWindow(direction int) {
	handles := m.gallery.Registry.Handles()
	if len(handles) == 0 {
		return
	}
	pos := max(slices.Index(handles, m.focus), 0)
	next := handles[((pos+direction)%len(handles)+len(handles))%len(handles)]
	m.err = m.gallery.Windows.Activate(m.ctx, next)
}

func (m *GalleryModel) closeTab() {
	tabs, err := m.focusedTabs()
	if err != nil {
		m.err = err
		return
	}
	selected := tabs.Selected()
	if selected == nil {
		return
	}
	delete(m.marked, selected.ID)
	_, m.err = m.gallery.Tabs.Close(m.ctx, m.focus, selected.ID)
}

func (m *GalleryModel) openMenu() {
	tabs, err := m.focusedTabs()
	if err != nil {
		m.err = err
		return
	}
	selected := tabs.Selected()
	if selected == nil {
		return
	}

	menu, err := m.gallery.Menu.Execute(m.ctx, usecase.BuildTabMenuInput{
		Item:        selected,
		Index:       tabs.IndexOf(selected.ID),
		Owner:       tabs,
		OwnerWindow: m.focus,
	})
	if err != nil {
		m.err = err
		return
	}
	m.menu = menu
	m.menuTitle = selected.Title()
	m.menuCursor = 0
}

func (m *GalleryModel) closeMenu() {
	m.menu = nil
	m.menuTitle = ""
	m.menuCursor = 0
}

func (m *GalleryModel) toggleMark() {
	tabs, err := m.focusedTabs()
	if err != nil {
		m.err = err
		return
	}
	if selected := tabs.Selected(); selected != nil {
		if m.marked[selected.ID] {
			delete(m.marked, selected.ID)
		} else {
			m.marked[selected.ID] = true
		}
	}
}

// dragged returns the tabs of tabs that a drag would carry: the marked ones
// in bar order, or the selected tab when nothing is marked.
func (m *GalleryModel) dragged(tabs *entity.TabCollection) []*entity.TabItem {
	var items []*entity.TabItem
	for _, item := range tabs.Items() {
		if m.marked[item.ID] {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		if selected := tabs.Selected(); selected != nil {
			items = append(items, selected)
		}
	}
	return items
}

func (m *GalleryModel) tearOut() {
	tabs, err := m.focusedTabs()
	if err != nil {
		m.err = err
		return
	}
	items := m.dragged(tabs)
	if len(items) == 0 {
		return
	}

	source := m.focus
	if _, err := m.gallery.TearOut.WindowRequested(m.ctx, source); err != nil {
		m.err = err
		return
	}
	out, err := m.gallery.TearOut.TearOut(m.ctx, source, items)
	m.finishDrag(out, err, items)
}

// drop moves the marked tabs into the focused window after its selected tab.
// Only tabs sharing a window with the first marked tab take part.
func (m *GalleryModel) drop() {
	if !m.gallery.TearOut.AcceptsDrop(m.focus) {
		return
	}

	var items []*entity.TabItem
	var from *entity.TabCollection
	for _, handle := range m.gallery.Registry.Handles() {
		tabs, err := m.gallery.Registry.Find(handle)
		if err != nil || handle == m.focus {
			continue
		}
		for _, item := range tabs.Items() {
			if m.marked[item.ID] && (from == nil || from == tabs) {
				from = tabs
				items = append(items, item)
			}
		}
	}
	if len(items) == 0 {
		m.status = "mark tabs in another window first"
		return
	}

	target, err := m.focusedTabs()
	if err != nil {
		m.err = err
		return
	}
	index := target.Count()
	if selected := target.Selected(); selected != nil {
		index = target.IndexOf(selected.ID) + 1
	}

	out, err := m.gallery.TearOut.Drop(m.ctx, m.focus, items, index)
	m.finishDrag(out, err, items)
}

func (m *GalleryModel) finishDrag(out *usecase.TearOutOutput, err error, items []*entity.TabItem) {
	for _, item := range items {
		delete(m.marked, item.ID)
	}
	if err != nil {
		m.err = err
	}
	if out == nil {
		return
	}
	if out.SourceEmpty {
		if _, closeErr := m.gallery.CloseIfEmpty(m.ctx, out.SourceWindow); closeErr != nil {
			m.err = errors.Join(m.err, closeErr)
		}
	}
	if err == nil {
		m.status = fmt.Sprintf("moved %d tab(s) to %s", out.Migrated, out.TargetWindow)
	}
}

// sync follows the host's active window and keeps one collection
// subscription per registered window.
func (m *GalleryModel) sync() {
	handles := m.gallery.Registry.Handles()

	for handle, unsubscribe := range m.subscribed {
		if !slices.Contains(handles, handle) {
			unsubscribe()
			delete(m.subscribed, handle)
		}
	}
	for _, handle := range handles {
		if _, ok := m.subscribed[handle]; ok {
			continue
		}
		tabs, err := m.gallery.Registry.Find(handle)
		if err != nil {
			continue
		}
		m.subscribed[handle] = tabs.Subscribe(m.observer(handle))
	}

	m.focus = m.gallery.Host.Active()
	if !slices.Contains(handles, m.focus) && len(handles) > 0 {
		m.focus = handles[0]
	}
}

func (m *GalleryModel) observer(handle entity.WindowHandle) entity.CollectionObserver {
	return func(ev entity.ChangeEvent) {
		line := fmt.Sprintf("%s: %s", handle, ev.Kind)
		if ev.Item != nil {
			line += fmt.Sprintf(" %q", ev.Item.Title())
		}
		switch ev.Kind {
		case entity.ChangeInserted, entity.ChangeRemoved:
			line += fmt.Sprintf(" at %d", ev.Index)
		case entity.ChangeMoved:
			line += fmt.Sprintf(" %d -> %d", ev.OldIndex, ev.Index)
		}
		m.events = append(m.events, line)
		if len(m.events) > maxEventLines {
			m.events = m.events[len(m.events)-maxEventLines:]
		}
	}
}

func (m *GalleryModel) unsubscribeAll() {
	for handle, unsubscribe := range m.subscribed {
		unsubscribe()
		delete(m.subscribed, handle)
	}
}

// View implements tea.Model.
func (m *GalleryModel) View() string {
	var sections []string

	sections = append(sections, m.theme.Title.Render(styles.IconTab+" Tab windows"))

	for _, state := range m.gallery.Snapshot() {
		tabs := styles.NewTabs(m.theme, state.Headers...)
		tabs.Active = state.Selected
		tabs.Marked = m.markedIndexes(state.Handle)

		window := styles.WindowView{
			Title:   string(state.Handle),
			Tabs:    tabs,
			Content: m.content(state.Handle),
			Focused: state.Handle == m.focus,
			Width:   max(m.width-4, 20),
		}
		sections = append(sections, window.Render(m.theme))

		if m.menu != nil && state.Handle == m.focus {
			sections = append(sections, m.renderMenu())
		}
	}

	if len(m.events) > 0 {
		sections = append(sections, m.theme.Subtle.Render(strings.Join(m.events, "\n")))
	}
	if m.err != nil {
		sections = append(sections, m.theme.ErrorStyle.Render("Error: "+m.err.Error()))
	} else if m.status != "" {
		sections = append(sections, m.theme.SuccessStyle.Render(m.status))
	}

	if m.menu != nil {
		sections = append(sections, m.help.View(m.menuKeys))
	} else if m.showHelp {
		sections = append(sections, m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sections = append(sections, m.help.View(m.keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *GalleryModel) renderMenu() string {
	entries := make([]styles.MenuEntry, len(m.menu.Actions))
	for i, a := range m.menu.Actions {
		entries[i] = styles.MenuEntry{Label: a.Label, Submenu: a.Submenu}
	}
	return m.menuView.Render(m.menuTitle, entries, m.menuCursor)
}

func (m *GalleryModel) markedIndexes(handle entity.WindowHandle) map[int]bool {
	tabs, err := m.gallery.Registry.Find(handle)
	if err != nil {
		return nil
	}
	out := make(map[int]bool)
	for i, item := range tabs.Items() {
		if m.marked[item.ID] {
			out[i] = true
		}
	}
	return out
}

func (m *GalleryModel) content(handle entity.WindowHandle) string {
	tabs, err := m.gallery.Registry.Find(handle)
	if err != nil {
		return ""
	}
	selected := tabs.Selected()
	if selected == nil || selected.Payload == nil {
		return ""
	}
	return fmt.Sprint(selected.Payload)
}
