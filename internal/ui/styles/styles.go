// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Values, secondary info
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers
	TextDisabledColor  = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#555555"} // Disabled items

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"} // Focused borders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Highlight color for the active item/tab
	HighlightColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// Selection indicator style (used for ">" prefix in item lists)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// MutedStyle renders hints and footers.
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// DisabledStyle renders items that cannot be activated.
	DisabledStyle = lipgloss.NewStyle().Foreground(TextDisabledColor)

	// ErrorStyle renders failed-action status messages.
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	// ActiveItemStyle renders the item under the cursor.
	ActiveItemStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)

	// ActiveTabStyle renders the selected tab label.
	ActiveTabStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor).Underline(true)

	// TabStyle renders unselected tab labels.
	TabStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)

	// PanelBorderStyle frames the demo panes.
	PanelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderDefaultColor).
				Padding(0, 1)
)
