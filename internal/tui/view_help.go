package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleTitle.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	commands := []string{
		"  /analyze <path>   Analyze a well report PDF",
		"  /export <path>    Export the report (json, md, html)",
		"  /clear            Restart the conversation",
		"  /help, /h         Show this help",
		"  /quit, /q         Quit wellchat",
		"",
		"  Or just ask: parameters, nodal results, summary,",
		"  optimization, limitations...",
	}

	commandsBox := styleBox.
		Width(56).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  Esc            Go back / Quit",
		"  Enter          Submit input",
		"  Up / Down      Scroll chat history",
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.
		Width(56).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Center, b.String())
}
