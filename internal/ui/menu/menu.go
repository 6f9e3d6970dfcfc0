// Package menu provides a composite menu control built on the tessera
// collection primitive. Items can be added, removed, and reordered at
// any time; navigation and typeahead always walk the collection's
// traversal order, never the order items happened to register in.
package menu

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"tessera/collection"
	"tessera/internal/keys"
	"tessera/internal/log"
	"tessera/internal/ui/styles"
	"tessera/node"
)

// ItemMeta is the per-item metadata carried in the menu's collection.
type ItemMeta struct {
	Label    string
	Value    string
	Disabled bool
}

// items is the collection kind shared by every menu instance. Each
// mounted menu owns its own scope.
var items = collection.New[ItemMeta]("menu")

// SelectMsg is sent when an item is activated.
type SelectMsg struct {
	Item ItemMeta
}

// Model holds the menu state.
type Model struct {
	title    string
	keymap   keys.KeyMap
	scope    *collection.Scope[ItemMeta]
	root     *node.Node
	release  func()
	handles  map[string]*collection.Handle // item value -> stable handle
	nodes    map[string]*node.Node         // item value -> backing node
	unbinds  map[string]func()             // item value -> teardown
	selected string                        // item value under the cursor
	width    int
	height   int
	focused  bool
}

// New creates an empty menu with the given title.
func New(title string) *Model {
	m := &Model{
		title:   title,
		keymap:  keys.DefaultKeyMap(),
		scope:   items.NewScope(),
		root:    node.New("menu"),
		handles: make(map[string]*collection.Handle),
		nodes:   make(map[string]*node.Node),
		unbinds: make(map[string]func()),
	}
	m.release = items.BindRoot(m.scope, m.root)
	return m
}

// Close unmounts the menu: every item is unbound and the root cell is
// released, so subsequent queries return nothing.
func (m *Model) Close() {
	for v, unbind := range m.unbinds {
		unbind()
		delete(m.unbinds, v)
	}
	if m.release != nil {
		m.release()
	}
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus marks the menu as the active control.
func (m *Model) Focus() { m.focused = true }

// Blur removes focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the menu has focus.
func (m *Model) Focused() bool { return m.focused }

// AddItem appends an item to the end of the menu. Adding a value that
// already exists re-binds the same handle, replacing its metadata
// without changing the item count.
func (m *Model) AddItem(meta ItemMeta) {
	m.addItem(meta, nil)
}

// InsertItemBefore adds an item positioned before an existing value.
// An unknown or empty ref value appends instead.
func (m *Model) InsertItemBefore(meta ItemMeta, refValue string) {
	m.addItem(meta, m.nodes[refValue])
}

func (m *Model) addItem(meta ItemMeta, ref *node.Node) {
	h, known := m.handles[meta.Value]
	if !known {
		h = collection.NewHandle()
		m.handles[meta.Value] = h
		m.nodes[meta.Value] = node.New("item")
	}
	n := m.nodes[meta.Value]
	if ref != nil {
		m.root.InsertBefore(n, ref)
	} else if !known {
		m.root.AppendChild(n)
	}

	if unbind, ok := m.unbinds[meta.Value]; ok {
		unbind()
	}
	m.unbinds[meta.Value] = items.BindItem(m.scope, h, meta, n)
	log.Debug(log.CatUI, "Menu item bound", "value", meta.Value, "label", meta.Label)

	if m.selected == "" && !meta.Disabled {
		m.selected = meta.Value
	}
}

// RemoveItem unbinds an item and detaches its node.
func (m *Model) RemoveItem(value string) {
	unbind, ok := m.unbinds[value]
	if !ok {
		return
	}
	unbind()
	delete(m.unbinds, value)
	if n := m.nodes[value]; n != nil {
		n.Detach()
	}
	delete(m.nodes, value)
	delete(m.handles, value)
	log.Debug(log.CatUI, "Menu item removed", "value", value)

	if m.selected == value {
		m.selected = ""
		if ordered := m.scope.Items(); len(ordered) > 0 {
			m.selected = ordered[0].Meta.Value
		}
	}
}

// MoveItem shifts an item's node by delta positions among the root's
// children. The next query reflects the new order with no re-binding.
func (m *Model) MoveItem(value string, delta int) {
	n, ok := m.nodes[value]
	if !ok || delta == 0 {
		return
	}
	children := m.root.Children()
	idx := -1
	for i, c := range children {
		if c == n {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	target := idx + delta
	if target < 0 {
		target = 0
	}
	if target >= len(children) {
		m.root.AppendChild(n)
		return
	}
	if target > idx {
		// Moving down: insert after the node currently at target.
		if target+1 < len(children) {
			m.root.InsertBefore(n, children[target+1])
		} else {
			m.root.AppendChild(n)
		}
		return
	}
	m.root.InsertBefore(n, children[target])
}

// Items returns the menu's items in traversal order.
func (m *Model) Items() []collection.Item[ItemMeta] {
	return m.scope.Items()
}

// Len returns the number of registered items.
func (m *Model) Len() int {
	return m.scope.Len()
}

// Selected returns the item under the cursor, or a zero ItemMeta when
// the menu is empty.
func (m *Model) Selected() ItemMeta {
	for _, it := range m.scope.Items() {
		if it.Meta.Value == m.selected {
			return it.Meta
		}
	}
	return ItemMeta{}
}

// Select moves the cursor to the item with the given value, if present.
func (m *Model) Select(value string) bool {
	for _, it := range m.scope.Items() {
		if it.Meta.Value == value {
			m.selected = value
			return true
		}
	}
	return false
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keymap.Up):
			m.moveCursor(-1)
		case msg.Type == tea.KeyEnter:
			if sel := m.Selected(); sel.Value != "" && !sel.Disabled {
				return m, func() tea.Msg { return SelectMsg{Item: sel} }
			}
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			m.typeahead(msg.Runes[0])
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			return m.click(msg)
		}
	}
	return m, nil
}

// moveCursor advances the cursor by step through traversal order,
// skipping disabled items.
func (m *Model) moveCursor(step int) {
	ordered := m.scope.Items()
	if len(ordered) == 0 {
		return
	}
	cur := 0
	for i, it := range ordered {
		if it.Meta.Value == m.selected {
			cur = i
			break
		}
	}
	for i := cur + step; i >= 0 && i < len(ordered); i += step {
		if !ordered[i].Meta.Disabled {
			m.selected = ordered[i].Meta.Value
			return
		}
	}
}

// typeahead jumps to the next item whose label starts with r, searching
// forward from the cursor in traversal order and wrapping around.
func (m *Model) typeahead(r rune) {
	ordered := m.scope.Items()
	if len(ordered) == 0 {
		return
	}
	start := 0
	for i, it := range ordered {
		if it.Meta.Value == m.selected {
			start = i
			break
		}
	}
	lower := unicode.ToLower(r)
	for off := 1; off <= len(ordered); off++ {
		it := ordered[(start+off)%len(ordered)]
		if it.Meta.Disabled || it.Meta.Label == "" {
			continue
		}
		if unicode.ToLower([]rune(it.Meta.Label)[0]) == lower {
			m.selected = it.Meta.Value
			return
		}
	}
}

// click resolves a mouse release against the per-item zones.
func (m *Model) click(msg tea.MouseMsg) (*Model, tea.Cmd) {
	for _, it := range m.scope.Items() {
		if z := zone.Get(it.Handle.ID()); z != nil && z.InBounds(msg) {
			if it.Meta.Disabled {
				return m, nil
			}
			m.selected = it.Meta.Value
			meta := it.Meta
			return m, func() tea.Msg { return SelectMsg{Item: meta} }
		}
	}
	return m, nil
}

// View renders the menu.
func (m *Model) View() string {
	ordered := m.scope.Items()

	var sb strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n")

	if len(ordered) == 0 {
		sb.WriteString(styles.MutedStyle.Render("No items"))
	}

	maxLabel := m.width - 4
	for i, it := range ordered {
		var line string
		label := it.Meta.Label
		if maxLabel > 0 {
			label = styles.TruncateString(label, maxLabel)
		}
		switch {
		case it.Meta.Disabled:
			line = "  " + styles.DisabledStyle.Render(label)
		case it.Meta.Value == m.selected:
			line = styles.SelectionIndicatorStyle.Render(">") + " " + styles.ActiveItemStyle.Render(label)
		default:
			line = "  " + lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Render(label)
		}
		// Mark each row with the item's handle id so mouse clicks can be
		// resolved back to the registered item.
		sb.WriteString(zone.Mark(it.Handle.ID(), line))
		if i < len(ordered)-1 {
			sb.WriteString("\n")
		}
	}

	border := styles.PanelBorderStyle
	if m.focused {
		border = border.BorderForeground(styles.BorderFocusColor)
	}
	return border.Render(sb.String())
}
