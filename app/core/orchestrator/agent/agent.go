// Package agent implements the message router: the single component that
// decides, per inbound message, which handler owns it.
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"sahayak/app/core/orchestrator/intent"
	"sahayak/app/core/orchestrator/interview"
	"sahayak/app/core/orchestrator/reminder"
	"sahayak/app/core/orchestrator/responses"
	"sahayak/app/core/orchestrator/task"
	"sahayak/app/core/provider"
	"sahayak/app/core/sentiment"
	"sahayak/app/pkg/types"
)

const (
	// DocumentMarker tags extracted file content to be sentiment-classified
	// rather than conversed about. Matched by substring containment.
	DocumentMarker = "Analyzing document content:"
	MedicalTag     = "[MEDICAL]"
	ResumeTag      = "[RESUME]"
)

// DefaultAgent routes one inbound message through the handler precedence
// chain and always produces exactly one reply carrying the full task
// snapshot. Handler failures degrade into reply text; Process never
// returns an error for a routing failure.
type DefaultAgent struct {
	name       string
	taskStore  *task.Store
	classifier sentiment.Classifier
	completer  provider.Completer
	picker     *responses.Picker
	interviews *interview.Manager
	reminders  *reminder.Service
}

func NewAgent(name string, taskStore *task.Store, classifier sentiment.Classifier, completer provider.Completer, picker *responses.Picker) *DefaultAgent {
	return &DefaultAgent{
		name:       name,
		taskStore:  taskStore,
		classifier: classifier,
		completer:  completer,
		picker:     picker,
		interviews: interview.NewManager(picker),
	}
}

// SetReminderService enables the reminder command family. Optional: the
// agent routes without it.
func (a *DefaultAgent) SetReminderService(svc *reminder.Service) {
	a.reminders = svc
}

func (a *DefaultAgent) Name() string {
	return a.name
}

// EndSession discards per-session interview state when a connection goes
// away.
func (a *DefaultAgent) EndSession(sessionID string) {
	a.interviews.End(sessionID)
}

// Process routes one message. Precedence, first match wins: task command,
// reminder command, document analysis, medical tag, resume tag, interview
// mode, intent-category bank, completion-provider fallback.
func (a *DefaultAgent) Process(ctx context.Context, msg types.Message) (types.Message, error) {
	lang := types.NormalizeLanguage(string(msg.Language))
	text := strings.TrimSpace(msg.Content)
	if text == "" {
		return a.newReply(msg, ""), nil
	}
	msg.Content = text

	return a.newReply(msg, a.routeText(ctx, msg, lang)), nil
}

func (a *DefaultAgent) routeText(ctx context.Context, msg types.Message, lang types.Language) string {
	text := msg.Content

	// Command handling has the highest precedence of all: a message that
	// matches both a command phrase and any later marker is a command.
	if cmd := a.taskStore.ParseCommand(text, lang); cmd.IsCommand {
		return cmd.Reply
	}
	if a.reminders != nil {
		if reply, ok := a.reminders.HandleCommand(msg, lang); ok {
			return reply
		}
	}

	if idx := strings.Index(text, DocumentMarker); idx >= 0 {
		payload := strings.TrimSpace(text[idx+len(DocumentMarker):])
		return a.analyzeDocument(ctx, payload, lang)
	}

	if strings.Contains(text, MedicalTag) {
		return a.picker.Pick(responses.Medical(lang))
	}
	if strings.Contains(text, ResumeTag) {
		return a.picker.Pick(responses.Resume(lang))
	}

	// Interview mode fully overrides intent classification.
	if msg.InterviewMode {
		return a.interviews.Next(a.sessionKey(msg), lang, text)
	}

	switch intent.Classify(text) {
	case intent.CategoryNews:
		return a.picker.Pick(responses.News(lang))
	case intent.CategoryStudy:
		return a.picker.Pick(responses.Study(lang))
	case intent.CategoryGuidance:
		return a.picker.Pick(responses.Guidance(lang))
	}

	completed, err := a.completer.Complete(ctx, text)
	if err != nil {
		log.Printf("[Agent] Completion failed session=%s: %v", a.sessionKey(msg), err)
		return responses.ServiceUnavailable(lang)
	}
	return completed
}

func (a *DefaultAgent) analyzeDocument(ctx context.Context, payload string, lang types.Language) string {
	label, err := a.classifier.Classify(ctx, payload)
	if err != nil {
		log.Printf("[Agent] Document analysis failed: %v", err)
		return responses.AnalysisError(lang)
	}
	return responses.SentimentSummary(lang, label == sentiment.LabelPositive)
}

func (a *DefaultAgent) sessionKey(msg types.Message) string {
	if key := strings.TrimSpace(msg.SessionID); key != "" {
		return key
	}
	return msg.ChannelID + ":" + msg.UserID
}

// newReply builds the outbound message. The task snapshot is taken here,
// after any mutation performed by this invocation, so every reply carries
// the store's full current contents.
func (a *DefaultAgent) newReply(msg types.Message, content string) types.Message {
	return types.Message{
		ID:        fmt.Sprintf("asst-%d", time.Now().UnixNano()),
		Content:   content,
		Role:      types.MessageRoleAssistant,
		ChannelID: msg.ChannelID,
		UserID:    msg.UserID,
		SessionID: msg.SessionID,
		RequestID: msg.RequestID,
		Language:  types.NormalizeLanguage(string(msg.Language)),
		Tasks:     a.taskStore.List(),
		Meta:      msg.Meta,
	}
}
