package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"notecal/internal/tui/theme"
)

// HelpBind is a single key and what it does
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection groups related keybinds under a title
type HelpSection struct {
	Title string
	Binds []HelpBind
}

var (
	helpSectionStyle = theme.Title
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Width(16)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle     = theme.ModalBox.Padding(1, 2)
	helpDismissStyle = theme.HelpHint
)

// RenderHelpPopup renders the sections in a box centered in width x height
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	var lines []string
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, helpSectionStyle.Render(section.Title))
		for _, bind := range section.Binds {
			lines = append(lines, "  "+helpKeyStyle.Render(bind.Key)+helpDescStyle.Render(bind.Desc))
		}
	}
	lines = append(lines, "", helpDismissStyle.Render("Press any key to close"))

	box := helpBoxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
