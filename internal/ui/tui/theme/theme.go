package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the semantic colors and styles for the application
type Theme struct {
	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Tertiary  lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor

	// Styles
	DocStyle      lipgloss.Style
	InputStyle    lipgloss.Style
	FocusedInput  lipgloss.Style
	LabelStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	FooterStyle   lipgloss.Style
	KeyHintStyle  lipgloss.Style
	TitleStyle    lipgloss.Style
	PreviewStyle  lipgloss.Style
	SelectedStyle lipgloss.Style
	RequiredStyle lipgloss.Style
	DialogStyle   lipgloss.Style
	ErrorStyle    lipgloss.Style
	StatusStyle   lipgloss.Style
}

// DefaultTheme creates a default theme
func DefaultTheme() *Theme {
	primary := lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	secondary := lipgloss.AdaptiveColor{Light: "#4B56FD", Dark: "#4B56FD"}
	tertiary := lipgloss.AdaptiveColor{Light: "#FD4B56", Dark: "#FD4B56"}
	text := lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}
	subtle := lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight := lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	errorColor := lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4136"}
	success := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#2ECC40"}
	warning := lipgloss.AdaptiveColor{Light: "#FFA500", Dark: "#FF851B"}

	return &Theme{
		Primary:   primary,
		Secondary: secondary,
		Tertiary:  tertiary,
		Text:      text,
		Subtle:    subtle,
		Highlight: highlight,
		Error:     errorColor,
		Success:   success,
		Warning:   warning,

		DocStyle: lipgloss.NewStyle().Padding(1, 2),

		InputStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Padding(0, 1),

		FocusedInput: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		LabelStyle: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		HeaderStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(primary).
			Padding(0, 1),

		FooterStyle: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 2),

		KeyHintStyle: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		TitleStyle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 1),

		PreviewStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1),

		SelectedStyle: lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true),

		RequiredStyle: lipgloss.NewStyle().
			Foreground(warning),

		DialogStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),

		StatusStyle: lipgloss.NewStyle().
			Foreground(success).
			Padding(0, 2),
	}
}
