package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSaveUI_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveUI(path, UIConfig{Mouse: false, ShowHelp: true, ActiveTab: "Tabs"})
	require.NoError(t, err, "expected save to a fresh file to succeed")

	data, err := os.ReadFile(path)
	require.NoError(t, err, "expected file written")

	var out struct {
		UI struct {
			Mouse     bool   `yaml:"mouse"`
			ShowHelp  bool   `yaml:"show_help"`
			ActiveTab string `yaml:"active_tab"`
		} `yaml:"ui"`
	}
	require.NoError(t, yaml.Unmarshal(data, &out), "expected valid yaml")
	assert.False(t, out.UI.Mouse, "expected mouse persisted")
	assert.True(t, out.UI.ShowHelp, "expected show_help persisted")
	assert.Equal(t, "Tabs", out.UI.ActiveTab, "expected active_tab persisted")
}

func TestSaveUI_PreservesOtherSectionsAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	initial := "# my config\ntheme:\n  highlight: \"#FF0000\" # custom\nui:\n  mouse: true\n"
	require.NoError(t, os.WriteFile(path, []byte(initial), 0o600), "expected seed file")

	err := SaveUI(path, UIConfig{Mouse: false, ShowHelp: true})
	require.NoError(t, err, "expected save over existing file to succeed")

	data, err := os.ReadFile(path)
	require.NoError(t, err, "expected file readable")
	text := string(data)

	assert.Contains(t, text, "# my config", "expected top comment preserved")
	assert.Contains(t, text, "#FF0000", "expected theme section untouched")
	assert.Contains(t, text, "mouse: false", "expected ui section replaced")
}

func TestSaveUI_AppendsWhenSectionMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o600), "expected seed file")

	err := SaveUI(path, UIConfig{Mouse: true})
	require.NoError(t, err, "expected save to append a ui section")

	data, err := os.ReadFile(path)
	require.NoError(t, err, "expected file readable")
	assert.True(t, strings.Contains(string(data), "ui:"), "expected ui section added")
	assert.Contains(t, string(data), "debug: true", "expected existing keys kept")
}

func TestSaveUI_OmitsEmptyActiveTab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveUI(path, UIConfig{Mouse: true}), "expected save to succeed")

	data, err := os.ReadFile(path)
	require.NoError(t, err, "expected file readable")
	assert.NotContains(t, string(data), "active_tab", "expected empty active_tab omitted")
}
