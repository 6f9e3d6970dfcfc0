// Package app contains the root application model for the tessera demo.
// Two tabs each own a menu backed by its own collection scope, so the
// demo exercises scope isolation, runtime mounting, removal, and
// reordering of registered items.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"tessera/internal/config"
	"tessera/internal/keys"
	"tessera/internal/log"
	"tessera/internal/ui/menu"
	"tessera/internal/ui/styles"
	"tessera/internal/ui/tabs"
)

// Model is the root application state.
type Model struct {
	cfg    config.Config
	keymap keys.KeyMap

	tabs  *tabs.Model
	menus map[string]*menu.Model

	added     int // counter for generated item labels
	status    string
	statusErr bool
	showHelp  bool
	width     int
	height    int
}

// New creates the demo application model.
func New(cfg config.Config) *Model {
	m := &Model{
		cfg:      cfg,
		keymap:   keys.DefaultKeyMap(),
		tabs:     tabs.New(),
		menus:    make(map[string]*menu.Model),
		showHelp: cfg.UI.ShowHelp,
	}

	fruits := menu.New("Fruits")
	// Register out of visual order on purpose: the menu's query ordering
	// is what keeps navigation consistent.
	fruits.AddItem(menu.ItemMeta{Label: "Cherry", Value: "cherry"})
	fruits.InsertItemBefore(menu.ItemMeta{Label: "Apple", Value: "apple"}, "cherry")
	fruits.InsertItemBefore(menu.ItemMeta{Label: "Banana", Value: "banana"}, "cherry")
	fruits.Select("apple")

	colors := menu.New("Colors")
	colors.AddItem(menu.ItemMeta{Label: "Red", Value: "red"})
	colors.AddItem(menu.ItemMeta{Label: "Green", Value: "green", Disabled: true})
	colors.AddItem(menu.ItemMeta{Label: "Blue", Value: "blue"})

	m.menus["Fruits"] = fruits
	m.menus["Colors"] = colors
	m.tabs.AddTab(tabs.TabMeta{Title: "Fruits"})
	m.tabs.AddTab(tabs.TabMeta{Title: "Colors"})

	if cfg.UI.ActiveTab != "" {
		m.tabs.Activate(cfg.UI.ActiveTab)
	}
	m.syncFocus()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// ActiveTab returns the currently active tab title, for persisting.
func (m *Model) ActiveTab() string {
	return m.tabs.Active().Title
}

// Close releases every collection binding.
func (m *Model) Close() {
	for _, mn := range m.menus {
		mn.Close()
	}
	m.tabs.Close()
}

func (m *Model) activeMenu() *menu.Model {
	return m.menus[m.tabs.Active().Title]
}

func (m *Model) syncFocus() {
	active := m.tabs.Active().Title
	for title, mn := range m.menus {
		if title == active {
			mn.Focus()
		} else {
			mn.Blur()
		}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, mn := range m.menus {
			mn.SetSize(msg.Width/2, msg.Height-4)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keymap.NextTab):
			cmd := m.tabs.Next()
			m.syncFocus()
			return m, cmd
		case key.Matches(msg, m.keymap.PrevTab):
			cmd := m.tabs.Prev()
			m.syncFocus()
			return m, cmd
		case key.Matches(msg, m.keymap.Add):
			m.addItem()
			return m, nil
		case key.Matches(msg, m.keymap.Remove):
			m.removeSelected()
			return m, nil
		case key.Matches(msg, m.keymap.MoveUp):
			m.moveSelected(-1)
			return m, nil
		case key.Matches(msg, m.keymap.MoveDown):
			m.moveSelected(1)
			return m, nil
		case key.Matches(msg, m.keymap.Toggle):
			m.toggleSelected()
			return m, nil
		}
		if mn := m.activeMenu(); mn != nil {
			_, cmd := mn.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.MouseMsg:
		if !m.cfg.UI.Mouse {
			return m, nil
		}
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if cmd := m.tabs.Click(msg); cmd != nil {
				m.syncFocus()
				return m, cmd
			}
		}
		if mn := m.activeMenu(); mn != nil {
			_, cmd := mn.Update(msg)
			return m, cmd
		}
		return m, nil

	case menu.SelectMsg:
		m.setStatus(fmt.Sprintf("selected %s", msg.Item.Label))
		log.Info(log.CatApp, "Item selected", "value", msg.Item.Value)
		return m, nil

	case tabs.ActivateMsg:
		m.setStatus(fmt.Sprintf("tab %s", msg.Tab.Title))
		return m, nil
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// addItem mounts a new item at the end of the active menu.
func (m *Model) addItem() {
	mn := m.activeMenu()
	if mn == nil {
		return
	}
	m.added++
	value := fmt.Sprintf("new-%d", m.added)
	mn.AddItem(menu.ItemMeta{Label: fmt.Sprintf("New item %d", m.added), Value: value})
	m.setStatus(fmt.Sprintf("added %s", value))
}

// removeSelected unmounts the item under the cursor.
func (m *Model) removeSelected() {
	mn := m.activeMenu()
	if mn == nil {
		return
	}
	sel := mn.Selected()
	if sel.Value == "" {
		m.setError("nothing selected")
		return
	}
	mn.RemoveItem(sel.Value)
	m.setStatus(fmt.Sprintf("removed %s", sel.Value))
}

// moveSelected reorders the item under the cursor; the collection query
// reflects the move on the next render.
func (m *Model) moveSelected(delta int) {
	mn := m.activeMenu()
	if mn == nil {
		return
	}
	sel := mn.Selected()
	if sel.Value == "" {
		m.setError("nothing selected")
		return
	}
	mn.MoveItem(sel.Value, delta)
	m.setStatus(fmt.Sprintf("moved %s", sel.Value))
}

// toggleSelected flips the disabled flag by re-binding the same handle
// with replaced metadata.
func (m *Model) toggleSelected() {
	mn := m.activeMenu()
	if mn == nil {
		return
	}
	sel := mn.Selected()
	if sel.Value == "" {
		m.setError("nothing selected")
		return
	}
	sel.Disabled = !sel.Disabled
	mn.AddItem(sel)
	m.setStatus(fmt.Sprintf("toggled %s", sel.Value))
}

// View implements tea.Model.
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.tabs.View())
	sb.WriteString("\n")

	if mn := m.activeMenu(); mn != nil {
		sb.WriteString(mn.View())
		sb.WriteString("\n")
	}

	if m.status != "" {
		style := styles.MutedStyle
		if m.statusErr {
			style = styles.ErrorStyle
		}
		sb.WriteString(style.Render(m.status))
		sb.WriteString("\n")
	}

	if m.showHelp {
		sb.WriteString(m.helpView())
	}

	// Zone scan must happen exactly once, at the top level.
	return zone.Scan(sb.String())
}

// helpView renders the key help footer, wrapped to the viewport width.
func (m *Model) helpView() string {
	bindings := []key.Binding{
		m.keymap.Up, m.keymap.Down, m.keymap.NextTab,
		m.keymap.Add, m.keymap.Remove, m.keymap.MoveUp, m.keymap.MoveDown,
		m.keymap.Toggle, m.keymap.Help, m.keymap.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	text := strings.Join(parts, " • ")
	if m.width > 0 {
		text = wordwrap.String(text, m.width)
	}
	return styles.MutedStyle.Render(text)
}

var _ tea.Model = (*Model)(nil)
