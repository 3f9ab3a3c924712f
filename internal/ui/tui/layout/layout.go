package layout

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/forge/internal/ui/tui/components/help"
	"github.com/isaacphi/forge/internal/ui/tui/theme"
)

// LayoutResult holds the results of layout calculations
type LayoutResult struct {
	ContentHeight int
	HelpView      string
}

// LayoutScreen reserves the footer for the status line and help
func LayoutScreen(width, height int, helpModel help.Model, thm *theme.Theme, status string) LayoutResult {
	helpStyle := thm.FooterStyle.Width(width)

	helpView := helpStyle.Render(helpModel.View())
	if status != "" {
		helpView = lipgloss.JoinVertical(lipgloss.Left, thm.StatusStyle.Render(status), helpView)
	}

	contentHeight := height - lipgloss.Height(helpView) - 1
	if contentHeight < 1 {
		contentHeight = 1
	}
	return LayoutResult{
		ContentHeight: contentHeight,
		HelpView:      helpView,
	}
}

// RenderScreen stacks the content area above the footer
func RenderScreen(contentView string, contentHeight int, result LayoutResult) string {
	content := lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(contentView)
	return lipgloss.JoinVertical(lipgloss.Left, content, result.HelpView)
}

// RenderDialog centers a dialog box in the content area
func RenderDialog(box string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
