package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wellchat/internal/chat"
)

func (a *App) renderChat() string {
	boxWidth := min(72, a.width-4)
	if boxWidth < 20 {
		boxWidth = 20
	}
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	headerHeight := 3
	inputHeight := 4
	if a.state.analyzing {
		inputHeight = 2
	}

	availableHeight := a.height - headerHeight - inputHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === HEADER ===
	var header strings.Builder
	title := styleTitle.Render("Well Analysis Assistant")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	header.WriteString("\n")

	statusText := "No report loaded"
	if a.state.session.Report() != nil {
		statusText = "Report loaded: " + a.state.analyzeFile
	}
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleSubtitle.Render(statusText)))
	header.WriteString("\n\n")

	// === MESSAGE LINES ===
	var messageLines []string

	for _, msg := range a.state.session.Messages() {
		if msg.Role == chat.RoleUser {
			content := wrapText(msg.Content, boxWidth-4)
			for j, line := range strings.Split(content, "\n") {
				prefix := "> "
				if j > 0 {
					prefix = "  "
				}
				styled := lipgloss.NewStyle().
					Foreground(colorSecondary).
					Render(prefix + line)
				messageLines = append(messageLines, indent+styled)
			}
		} else {
			for _, line := range strings.Split(a.renderMarkdown(msg.Content, boxWidth-4), "\n") {
				messageLines = append(messageLines, indent+"  "+line)
			}
		}
		messageLines = append(messageLines, "")
	}

	if a.state.analyzing {
		working := lipgloss.NewStyle().
			Foreground(colorPrimary).
			Render("* Analyzing " + a.state.analyzeFile + "... this may take a minute")
		messageLines = append(messageLines, indent+working)
	}

	// === SCROLL (offset counts lines up from the bottom) ===
	totalLines := len(messageLines)
	maxScroll := totalLines - availableHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.state.scrollOffset > maxScroll {
		a.state.scrollOffset = maxScroll
	}

	endIdx := totalLines - a.state.scrollOffset
	startIdx := endIdx - availableHeight
	if startIdx < 0 {
		startIdx = 0
	}

	var visibleLines []string
	if startIdx < endIdx {
		visibleLines = messageLines[startIdx:endIdx]
	}

	// === FOOTER ===
	var footer strings.Builder
	if !a.state.analyzing {
		inputBox := styleBox.
			Width(boxWidth).
			BorderForeground(colorMuted).
			Render(a.state.input.View())
		footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
		footer.WriteString("\n")
	}

	statusBar := styleStatusBar.Render("[Enter] Send  [up/down] Scroll  [?] Help  [Esc] Quit")
	if a.state.analyzing {
		statusBar = styleStatusBar.Render("Analyzing...")
	}
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	// === COMBINE ===
	var messageArea strings.Builder
	for i, line := range visibleLines {
		messageArea.WriteString(line)
		if i < len(visibleLines)-1 {
			messageArea.WriteString("\n")
		}
	}

	padding := availableHeight - len(visibleLines)
	if padding > 0 {
		if len(visibleLines) > 0 {
			messageArea.WriteString("\n")
		}
		messageArea.WriteString(strings.Repeat("\n", padding-1))
	}

	return header.String() + messageArea.String() + "\n" + footer.String()
}

// renderMarkdown renders assistant markdown with glamour, falling
// back to plain text if the renderer is unavailable
func (a *App) renderMarkdown(content string, width int) string {
	if a.state.renderer != nil {
		out, err := a.state.renderer.Render(content)
		if err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return wrapText(content, width)
}

// wrapText wraps text to fit within maxWidth, preserving words
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}
	if len(text) <= maxWidth {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > maxWidth {
				result.WriteString("\n")
				lineLen = 0
			} else {
				result.WriteString(" ")
				lineLen++
			}
		}
		result.WriteString(word)
		lineLen += len(word)
	}

	return result.String()
}
