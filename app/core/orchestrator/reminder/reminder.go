// Package reminder schedules one-shot task reminders and delivers them
// back through the originating channel.
package reminder

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"sync/atomic"
	"time"

	"sahayak/app/core/orchestrator/task"
	"sahayak/app/core/scheduler"
	"sahayak/app/pkg/types"
)

// Deliverer pushes a reminder message to a channel/user pair; the gateway
// provides it.
type Deliverer func(ctx context.Context, channelID string, userID string, content string) error

const defaultMaxMinutes = 1440

type Service struct {
	store      *task.Store
	sched      *scheduler.Scheduler
	deliver    Deliverer
	unit       time.Duration
	maxMinutes int
	counter    atomic.Uint64
}

func NewService(store *task.Store, sched *scheduler.Scheduler, deliver Deliverer) *Service {
	return &Service{
		store:      store,
		sched:      sched,
		deliver:    deliver,
		unit:       time.Minute,
		maxMinutes: defaultMaxMinutes,
	}
}

// SetMaxMinutes bounds how far out a reminder may be scheduled.
func (s *Service) SetMaxMinutes(max int) {
	if max > 0 {
		s.maxMinutes = max
	}
}

// SetTimeUnit rescales the "minutes" in reminder commands; tests shrink
// it so deliveries fire within milliseconds.
func (s *Service) SetTimeUnit(unit time.Duration) {
	if unit > 0 {
		s.unit = unit
	}
}

var (
	englishPattern = regexp.MustCompile(`(?i)remind me about task (\d+) in (\d+) minutes?`)
	hindiPattern   = regexp.MustCompile(`कार्य (\d+) के बारे में (\d+) मिनट में याद दिलाएं`)
)

// HandleCommand recognizes the reminder command family in either
// language. The second return is false when the message is not a
// reminder command; invalid input yields a corrective reply.
func (s *Service) HandleCommand(msg types.Message, lang types.Language) (string, bool) {
	match := englishPattern.FindStringSubmatch(msg.Content)
	if match == nil {
		match = hindiPattern.FindStringSubmatch(msg.Content)
	}
	if match == nil {
		return "", false
	}

	index, err := strconv.Atoi(match[1])
	if err != nil {
		return invalidNumber(lang), true
	}
	minutes, err := strconv.Atoi(match[2])
	if err != nil || minutes < 1 || minutes > s.maxMinutes {
		return invalidNumber(lang), true
	}

	target, ok := s.store.TaskAt(index)
	if !ok {
		return invalidNumber(lang), true
	}

	name := fmt.Sprintf("reminder-%s-%d", target.ID, s.counter.Add(1))
	channelID := msg.ChannelID
	userID := msg.UserID
	content := reminderText(lang, target.Description)

	err = s.sched.Schedule(name, time.Duration(minutes)*s.unit, func(ctx context.Context) error {
		if err := s.deliver(ctx, channelID, userID, content); err != nil {
			return fmt.Errorf("deliver reminder: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Printf("[Reminder] Failed to schedule %s: %v", name, err)
		return unavailable(lang), true
	}

	return confirmation(lang, target.Description, minutes), true
}

func reminderText(lang types.Language, description string) string {
	if lang == types.LanguageHindi {
		return fmt.Sprintf("अनुस्मारक: %s", description)
	}
	return fmt.Sprintf("Reminder: %s", description)
}

func confirmation(lang types.Language, description string, minutes int) string {
	if lang == types.LanguageHindi {
		return fmt.Sprintf("ठीक है, मैं आपको %d मिनट में \"%s\" के बारे में याद दिलाऊंगा।", minutes, description)
	}
	return fmt.Sprintf("Okay, I will remind you about %q in %d minutes.", description, minutes)
}

func invalidNumber(lang types.Language) string {
	if lang == types.LanguageHindi {
		return "कृपया एक वैध कार्य संख्या प्रदान करें।"
	}
	return "Please provide a valid task number."
}

func unavailable(lang types.Language) string {
	if lang == types.LanguageHindi {
		return "क्षमा करें, अभी अनुस्मारक सेट नहीं किया जा सका।"
	}
	return "Sorry, the reminder could not be set right now."
}
