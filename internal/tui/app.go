package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"wellchat/internal/chat"
	"wellchat/internal/config"
	"wellchat/internal/engine"
	"wellchat/internal/export"
	"wellchat/internal/report"
)

type view int

const (
	viewChat view = iota
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(cfg *config.Config, eng engine.Engine, engineErr error, log *zap.Logger) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		view:  viewChat,
		state: newState(cfg, eng, engineErr, log),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

type analysisDoneMsg struct {
	fileName string
	report   *report.Report
}

type analysisErrMsg struct{ error }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.rebuildRenderer()

	case analysisDoneMsg:
		a.state.analyzing = false
		a.state.session.RecordAnalysis(msg.fileName, msg.report)
		a.state.scrollOffset = 0
		return a, nil

	case analysisErrMsg:
		a.state.analyzing = false
		// Every analysis attempt yields exactly one assistant line
		a.state.session.Append(chat.Message{
			Role:    chat.RoleAssistant,
			Content: "Analysis failed: " + msg.Error(),
		})
		a.state.log.Warn("analysis failed", zap.Error(msg.error))
		a.state.scrollOffset = 0
		return a, nil
	}

	if a.view == viewChat && !a.state.analyzing {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) rebuildRenderer() {
	width := min(72, a.width-6)
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		a.state.renderer = renderer
	}
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp {
			a.view = viewChat
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		if a.state.input.Value() == "" {
			a.view = viewHelp
			return nil
		}

	case key.Matches(msg, keys.ScrollUp):
		if a.state.input.Value() == "" {
			a.state.scrollOffset++
			return nil
		}

	case key.Matches(msg, keys.ScrollDown):
		if a.state.input.Value() == "" && a.state.scrollOffset > 0 {
			a.state.scrollOffset--
			return nil
		}

	case key.Matches(msg, keys.Enter):
		if a.view == viewChat && !a.state.analyzing {
			return a.handleInput()
		}
	}

	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}
	a.state.input.Reset()
	a.state.scrollOffset = 0

	if strings.HasPrefix(input, "/") {
		return a.handleCommand(input)
	}

	// One synchronous turn: classify, generate, append
	a.state.session.Respond(input)
	return nil
}

func (a *App) handleCommand(input string) tea.Cmd {
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "/help", "/h":
		a.view = viewHelp

	case "/quit", "/q":
		a.quitting = true
		return tea.Quit

	case "/clear":
		a.state.session.Clear()

	case "/analyze", "/a":
		if len(fields) < 2 {
			a.appendNotice("Usage: /analyze <path-to-report.pdf>")
			return nil
		}
		return a.startAnalysis(strings.Join(fields[1:], " "))

	case "/export", "/e":
		if len(fields) < 2 {
			a.appendNotice("Usage: /export <path.{json,md,html}>")
			return nil
		}
		a.exportReport(fields[1])

	default:
		a.appendNotice("Unknown command: " + cmd + " (try /help)")
	}

	return nil
}

func (a *App) appendNotice(text string) {
	a.state.session.Append(chat.Message{Role: chat.RoleAssistant, Content: text})
}

func (a *App) startAnalysis(path string) tea.Cmd {
	if a.state.engine == nil {
		reason := "analysis engine unavailable"
		if a.state.engineErr != nil {
			reason = a.state.engineErr.Error()
		}
		a.appendNotice("Analysis failed: " + reason)
		return nil
	}

	a.state.analyzing = true
	a.state.analyzeFile = path
	wordLimit := a.state.config.WordLimit

	eng := a.state.engine
	return func() tea.Msg {
		rep, err := eng.Analyze(context.Background(), path, wordLimit)
		if err != nil {
			return analysisErrMsg{err}
		}
		return analysisDoneMsg{fileName: path, report: rep}
	}
}

func (a *App) exportReport(path string) {
	rep := a.state.session.Report()
	if rep == nil {
		a.appendNotice("No report loaded yet. Run /analyze first.")
		return
	}
	if err := export.Write(rep, path, ""); err != nil {
		a.appendNotice("Export failed: " + err.Error())
		return
	}
	a.appendNotice("Report exported to **" + path + "**")
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderChat()
	}
}
