package tabs

import (
	"testing"

	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	zone.NewGlobal()
}

func testTabs() *Model {
	m := New()
	m.AddTab(TabMeta{Title: "Menu"})
	m.AddTab(TabMeta{Title: "Settings"})
	m.AddTab(TabMeta{Title: "About"})
	return m
}

func titles(m *Model) []string {
	var out []string
	for _, it := range m.Tabs() {
		out = append(out, it.Meta.Title)
	}
	return out
}

func TestTabs_New(t *testing.T) {
	m := New()
	assert.Empty(t, m.Tabs(), "expected no tabs initially")
	assert.Equal(t, TabMeta{}, m.Active(), "expected zero active tab when empty")
}

func TestTabs_AddTab(t *testing.T) {
	m := testTabs()

	assert.Equal(t, []string{"Menu", "Settings", "About"}, titles(m), "expected append order")
	assert.Equal(t, "Menu", m.Active().Title, "expected first tab active")
}

func TestTabs_AddTab_SameTitleReplaces(t *testing.T) {
	m := testTabs()
	m.AddTab(TabMeta{Title: "Settings", Disabled: true})

	require.Len(t, m.Tabs(), 3, "expected count unchanged")
	assert.True(t, m.Tabs()[1].Meta.Disabled, "expected metadata replaced in place")
}

func TestTabs_Cycle(t *testing.T) {
	m := testTabs()

	m.Next()
	assert.Equal(t, "Settings", m.Active().Title, "expected next tab active")

	m.Next()
	m.Next()
	assert.Equal(t, "Menu", m.Active().Title, "expected wrap around to first tab")

	m.Prev()
	assert.Equal(t, "About", m.Active().Title, "expected wrap around backwards")
}

func TestTabs_Cycle_SkipsDisabled(t *testing.T) {
	m := New()
	m.AddTab(TabMeta{Title: "One"})
	m.AddTab(TabMeta{Title: "Two", Disabled: true})
	m.AddTab(TabMeta{Title: "Three"})

	m.Next()
	assert.Equal(t, "Three", m.Active().Title, "expected disabled tab skipped")
}

func TestTabs_Cycle_EmitsActivate(t *testing.T) {
	m := testTabs()

	cmd := m.Next()
	require.NotNil(t, cmd, "expected a command from Next")
	msg, ok := cmd().(ActivateMsg)
	require.True(t, ok, "expected ActivateMsg")
	assert.Equal(t, "Settings", msg.Tab.Title, "expected activated tab in message")
}

func TestTabs_Activate(t *testing.T) {
	m := testTabs()

	assert.True(t, m.Activate("About"), "expected activation of known tab")
	assert.Equal(t, "About", m.Active().Title, "expected About active")

	assert.False(t, m.Activate("Missing"), "expected unknown tab rejected")

	m.AddTab(TabMeta{Title: "Hidden", Disabled: true})
	assert.False(t, m.Activate("Hidden"), "expected disabled tab rejected")
}

func TestTabs_RemoveTab(t *testing.T) {
	m := testTabs()
	m.RemoveTab("Menu")

	assert.Equal(t, []string{"Settings", "About"}, titles(m), "expected tab removed")
	assert.Equal(t, "Settings", m.Active().Title, "expected active moved to first enabled tab")
}

func TestTabs_View(t *testing.T) {
	m := testTabs()
	view := zone.Scan(m.View())

	assert.Contains(t, view, "Menu", "expected tab titles rendered")
	assert.Contains(t, view, "│", "expected separator rendered")
}

func TestTabs_View_Empty(t *testing.T) {
	m := New()
	assert.Contains(t, m.View(), "no tabs", "expected empty placeholder")
}

func TestTabs_Close(t *testing.T) {
	m := testTabs()
	m.Close()
	assert.Empty(t, m.Tabs(), "expected no tabs after close")
}
