package chat

import (
	"github.com/google/uuid"

	"wellchat/internal/intent"
	"wellchat/internal/report"
	"wellchat/internal/responder"
)

// Role tags who authored a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation log. Content is markdown
// text; rendering is the surface's concern.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session owns one conversation: an append-only message log seeded
// with the assistant greeting, plus the currently loaded report (nil
// until an analysis completes). A session is single-threaded and
// turn-based; messages are never mutated or removed after append.
type Session struct {
	id       string
	messages []Message
	report   *report.Report
}

// New creates a session seeded with the greeting
func New() *Session {
	return &Session{
		id: uuid.NewString(),
		messages: []Message{
			{Role: RoleAssistant, Content: responder.Greeting},
		},
	}
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Messages returns the conversation log in insertion order. The
// returned slice must not be modified.
func (s *Session) Messages() []Message { return s.messages }

// Report returns the currently loaded report, or nil
func (s *Session) Report() *report.Report { return s.report }

// Append adds a message to the log
func (s *Session) Append(m Message) {
	s.messages = append(s.messages, m)
}

// SetReport replaces the active report wholesale. A new analysis
// never partially mutates the previous report.
func (s *Session) SetReport(r *report.Report) {
	s.report = r
}

// Clear resets the session to its initial greeting state and drops
// the loaded report
func (s *Session) Clear() {
	s.messages = []Message{
		{Role: RoleAssistant, Content: responder.Greeting},
	}
	s.report = nil
}

// Respond processes one user turn: classify, generate, append the
// user message and exactly one assistant message. Returns the
// assistant's reply.
func (s *Session) Respond(utterance string) string {
	it := intent.Classify(utterance, s.report != nil)
	reply := responder.Generate(it, s.report, utterance)

	s.Append(Message{Role: RoleUser, Content: utterance})
	s.Append(Message{Role: RoleAssistant, Content: reply})

	return reply
}

// RecordAnalysis appends the synthetic turn produced by a completed
// engine run: the "Analyze <file>" user message and the results
// summary, and installs the new report.
func (s *Session) RecordAnalysis(fileName string, rep *report.Report) {
	s.SetReport(rep)
	s.Append(Message{Role: RoleUser, Content: "Analyze " + fileName})
	s.Append(Message{Role: RoleAssistant, Content: responder.AnalysisComplete(rep)})
}
