package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Highlight string
	Subtle    string
	Error     string
}

// ApplyTheme applies configured colors to the color variables and then
// rebuilds the Style objects derived from them. Empty fields keep their
// defaults; an invalid color leaves everything untouched.
func ApplyTheme(cfg ThemeConfig) error {
	if cfg.Highlight != "" && !isValidHexColor(cfg.Highlight) {
		return fmt.Errorf("invalid hex color for theme.highlight: %s", cfg.Highlight)
	}
	if cfg.Subtle != "" && !isValidHexColor(cfg.Subtle) {
		return fmt.Errorf("invalid hex color for theme.subtle: %s", cfg.Subtle)
	}
	if cfg.Error != "" && !isValidHexColor(cfg.Error) {
		return fmt.Errorf("invalid hex color for theme.error: %s", cfg.Error)
	}

	if cfg.Highlight != "" {
		HighlightColor = makeColor(cfg.Highlight)
	}
	if cfg.Subtle != "" {
		TextMutedColor = makeColor(cfg.Subtle)
	}
	if cfg.Error != "" {
		StatusErrorColor = makeColor(cfg.Error)
	}

	rebuildStyles()
	return nil
}

// makeColor uses the same color on light and dark backgrounds.
func makeColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
}

// rebuildStyles recreates every Style object that captured a color
// variable at package init.
func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	DisabledStyle = lipgloss.NewStyle().Foreground(TextDisabledColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	ActiveItemStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)
	ActiveTabStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor).Underline(true)
	TabStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	PanelBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderDefaultColor).
		Padding(0, 1)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
