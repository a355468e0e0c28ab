package types

import (
	"context"
	"strings"
	"time"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "ai"
)

// Language selects one of the two fixed response sets.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// NormalizeLanguage maps arbitrary client input onto a supported
// language, defaulting to English.
func NormalizeLanguage(raw string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case LanguageHindi:
		return LanguageHindi
	default:
		return LanguageEnglish
	}
}

// Task is a single to-do item owned by the task store. Callers only ever
// see copies; mutating one never touches the store.
type Task struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Completed   bool      `json:"completed"`
}

// Message represents one inbound user turn or one outbound assistant reply.
type Message struct {
	ID            string
	Content       string
	Role          string // "user" or "ai"
	ChannelID     string // source channel identifier (e.g., "ws", "cli")
	UserID        string
	SessionID     string // connection-scoped conversation key
	RequestID     string
	Language      Language
	InterviewMode bool
	Tasks         []Task
	Meta          map[string]interface{}
}

// Agent is the core routing entity. Process returns exactly one reply for
// every inbound message; per-message failures degrade into reply text
// rather than surfacing as errors.
type Agent interface {
	Process(ctx context.Context, msg Message) (Message, error)
	Name() string
}

// SessionEnder is implemented by agents holding per-session state that
// should be discarded when the owning connection goes away.
type SessionEnder interface {
	EndSession(sessionID string)
}

// Channel represents an input/output surface (websocket, HTTP, CLI).
type Channel interface {
	Start(ctx context.Context, handler func(Message)) error
	Send(ctx context.Context, msg Message) error
	ID() string
}

// TypingNotifier is implemented by channels that can surface the
// two-phase typing indicator bracketing each routed message.
type TypingNotifier interface {
	NotifyTyping(ctx context.Context, msg Message, active bool) error
}

// Gateway orchestrates channels and the agent.
type Gateway interface {
	RegisterChannel(c Channel)
	Start(ctx context.Context) error
}
