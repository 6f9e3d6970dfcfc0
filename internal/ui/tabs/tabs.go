// Package tabs provides a tab list control built on the tessera
// collection primitive, with a different metadata shape than the menu.
// Cycling skips disabled tabs and always follows traversal order.
package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"tessera/collection"
	"tessera/internal/ui/styles"
	"tessera/node"
)

// TabMeta is the per-tab metadata carried in the collection.
type TabMeta struct {
	Title    string
	Disabled bool
}

// tabList is the collection kind shared by every tab list instance.
var tabList = collection.New[TabMeta]("tabs")

// ActivateMsg is sent when a tab becomes active.
type ActivateMsg struct {
	Tab TabMeta
}

// Model holds the tab list state.
type Model struct {
	scope   *collection.Scope[TabMeta]
	root    *node.Node
	release func()
	handles map[string]*collection.Handle // title -> handle
	nodes   map[string]*node.Node         // title -> node
	unbinds map[string]func()             // title -> teardown
	active  string                        // active tab title
}

// New creates an empty tab list.
func New() *Model {
	m := &Model{
		scope:   tabList.NewScope(),
		root:    node.New("tablist"),
		handles: make(map[string]*collection.Handle),
		nodes:   make(map[string]*node.Node),
		unbinds: make(map[string]func()),
	}
	m.release = tabList.BindRoot(m.scope, m.root)
	return m
}

// Close unmounts the tab list.
func (m *Model) Close() {
	for title, unbind := range m.unbinds {
		unbind()
		delete(m.unbinds, title)
	}
	if m.release != nil {
		m.release()
	}
}

// AddTab appends a tab. Re-adding an existing title replaces its
// metadata in place.
func (m *Model) AddTab(meta TabMeta) {
	h, known := m.handles[meta.Title]
	if !known {
		h = collection.NewHandle()
		m.handles[meta.Title] = h
		n := node.New("tab")
		m.nodes[meta.Title] = n
		m.root.AppendChild(n)
	}
	if unbind, ok := m.unbinds[meta.Title]; ok {
		unbind()
	}
	m.unbinds[meta.Title] = tabList.BindItem(m.scope, h, meta, m.nodes[meta.Title])

	if m.active == "" && !meta.Disabled {
		m.active = meta.Title
	}
}

// RemoveTab unbinds a tab and detaches its node.
func (m *Model) RemoveTab(title string) {
	unbind, ok := m.unbinds[title]
	if !ok {
		return
	}
	unbind()
	delete(m.unbinds, title)
	if n := m.nodes[title]; n != nil {
		n.Detach()
	}
	delete(m.nodes, title)
	delete(m.handles, title)

	if m.active == title {
		m.active = ""
		for _, it := range m.scope.Items() {
			if !it.Meta.Disabled {
				m.active = it.Meta.Title
				break
			}
		}
	}
}

// Tabs returns the tabs in traversal order.
func (m *Model) Tabs() []collection.Item[TabMeta] {
	return m.scope.Items()
}

// Active returns the active tab's metadata.
func (m *Model) Active() TabMeta {
	for _, it := range m.scope.Items() {
		if it.Meta.Title == m.active {
			return it.Meta
		}
	}
	return TabMeta{}
}

// Activate makes the named tab active if it exists and is enabled.
func (m *Model) Activate(title string) bool {
	for _, it := range m.scope.Items() {
		if it.Meta.Title == title && !it.Meta.Disabled {
			m.active = title
			return true
		}
	}
	return false
}

// Next cycles to the following enabled tab, wrapping around.
func (m *Model) Next() tea.Cmd { return m.cycle(1) }

// Prev cycles to the previous enabled tab, wrapping around.
func (m *Model) Prev() tea.Cmd { return m.cycle(-1) }

func (m *Model) cycle(step int) tea.Cmd {
	ordered := m.scope.Items()
	if len(ordered) == 0 {
		return nil
	}
	cur := 0
	for i, it := range ordered {
		if it.Meta.Title == m.active {
			cur = i
			break
		}
	}
	for off := 1; off <= len(ordered); off++ {
		idx := ((cur+step*off)%len(ordered) + len(ordered)) % len(ordered)
		if !ordered[idx].Meta.Disabled {
			m.active = ordered[idx].Meta.Title
			meta := ordered[idx].Meta
			return func() tea.Msg { return ActivateMsg{Tab: meta} }
		}
	}
	return nil
}

// Click resolves a mouse release against the per-tab zones.
func (m *Model) Click(msg tea.MouseMsg) tea.Cmd {
	for _, it := range m.scope.Items() {
		if z := zone.Get(it.Handle.ID()); z != nil && z.InBounds(msg) {
			if it.Meta.Disabled {
				return nil
			}
			m.active = it.Meta.Title
			meta := it.Meta
			return func() tea.Msg { return ActivateMsg{Tab: meta} }
		}
	}
	return nil
}

// View renders the tab bar.
func (m *Model) View() string {
	ordered := m.scope.Items()
	if len(ordered) == 0 {
		return styles.MutedStyle.Render("no tabs")
	}

	parts := make([]string, 0, len(ordered))
	for _, it := range ordered {
		var label string
		switch {
		case it.Meta.Disabled:
			label = styles.DisabledStyle.Render(it.Meta.Title)
		case it.Meta.Title == m.active:
			label = styles.ActiveTabStyle.Render(it.Meta.Title)
		default:
			label = styles.TabStyle.Render(it.Meta.Title)
		}
		parts = append(parts, zone.Mark(it.Handle.ID(), label))
	}
	return strings.Join(parts, styles.MutedStyle.Render(" │ "))
}
