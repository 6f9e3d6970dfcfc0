package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tessera/internal/config"
)

func TestInitConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// Point at a directory with no config file so defaults apply.
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { cfgFile = "" })

	initConfig()

	defaults := config.Defaults()
	assert.Equal(t, defaults.UI.Mouse, cfg.UI.Mouse, "expected default mouse setting")
	assert.Equal(t, defaults.Theme.Highlight, cfg.Theme.Highlight, "expected default highlight")
	assert.Equal(t, defaults.LogFile, cfg.LogFile, "expected default log file")
}

func TestInitConfig_ReadsFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "debug: true\nui:\n  mouse: false\n  active_tab: Colors\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "expected seed config")

	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })

	initConfig()

	assert.True(t, cfg.Debug, "expected debug from file")
	assert.False(t, cfg.UI.Mouse, "expected mouse disabled from file")
	assert.Equal(t, "Colors", cfg.UI.ActiveTab, "expected active tab from file")
	assert.Equal(t, config.Defaults().Theme.Highlight, cfg.Theme.Highlight,
		"expected unset keys to fall back to defaults")
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3 (test)")
	assert.Equal(t, "1.2.3 (test)", rootCmd.Version, "expected version propagated")
}
