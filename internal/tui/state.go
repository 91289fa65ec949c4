package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"wellchat/internal/chat"
	"wellchat/internal/config"
	"wellchat/internal/engine"
)

type state struct {
	// Config
	config *config.Config
	log    *zap.Logger

	// Conversation
	session *chat.Session

	// Analysis
	engine      engine.Engine
	engineErr   error
	analyzing   bool
	analyzeFile string

	// Rendering
	renderer *glamour.TermRenderer

	// Input
	input textinput.Model

	// Chat scroll (lines up from the bottom)
	scrollOffset int
}

func newState(cfg *config.Config, eng engine.Engine, engineErr error, log *zap.Logger) *state {
	input := textinput.New()
	input.Placeholder = "Ask about the well, or /help for commands..."
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	return &state{
		config:    cfg,
		log:       log,
		session:   chat.New(),
		engine:    eng,
		engineErr: engineErr,
		input:     input,
	}
}
