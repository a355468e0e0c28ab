package task

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"sahayak/app/pkg/types"
)

// CommandResult signals whether a message was consumed as a task command.
// Commands have the highest routing precedence, so IsCommand short-circuits
// every other handler.
type CommandResult struct {
	IsCommand bool
	Reply     string
}

var (
	addPhrases = []string{
		"assign task:", "add task:",
		"कार्य जोड़ें:", "कार्य असाइन करें:",
	}
	listPhrases = []string{
		"list my tasks", "show my tasks",
		"मेरे कार्य दिखाएं", "मेरे कार्यों की सूची",
	}
	completePhrases = []string{
		"complete task", "mark task as complete",
		"कार्य पूरा", "कार्य को पूर्ण के रूप में चिह्नित करें",
	}
	deletePhrases = []string{
		"delete task", "remove task",
		"कार्य हटाएं",
	}
)

var numberPattern = regexp.MustCompile(`\d+`)

// ParseCommand recognizes the task command families case-insensitively in
// both languages, applies the mutation, and returns the user-facing reply.
// Invalid input (empty description, missing or out-of-range index) yields
// a corrective message, never an error.
func (s *Store) ParseCommand(text string, language types.Language) CommandResult {
	lower := strings.ToLower(text)

	if containsAny(lower, addPhrases) {
		return s.handleAdd(text, language)
	}
	if containsAny(lower, listPhrases) {
		return s.handleList(language)
	}
	if containsAny(lower, completePhrases) {
		return s.handleComplete(text, language)
	}
	if containsAny(lower, deletePhrases) {
		return s.handleDelete(text, language)
	}

	return CommandResult{IsCommand: false}
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func (s *Store) handleAdd(text string, language types.Language) CommandResult {
	desc := ""
	if idx := strings.Index(text, ":"); idx >= 0 {
		desc = strings.TrimSpace(text[idx+1:])
	}

	added, err := s.Add(desc)
	if err != nil {
		if language == types.LanguageHindi {
			return CommandResult{IsCommand: true, Reply: "कृपया कार्य का विवरण प्रदान करें।"}
		}
		return CommandResult{IsCommand: true, Reply: "Please provide a task description."}
	}

	if language == types.LanguageHindi {
		return CommandResult{IsCommand: true, Reply: fmt.Sprintf("कार्य जोड़ दिया गया: %s। क्या आप एक अनुस्मारक चाहते हैं?", added.Description)}
	}
	return CommandResult{IsCommand: true, Reply: fmt.Sprintf("Task added: %s. Would you like a reminder?", added.Description)}
}

func (s *Store) handleList(language types.Language) CommandResult {
	tasks := s.List()
	if len(tasks) == 0 {
		if language == types.LanguageHindi {
			return CommandResult{IsCommand: true, Reply: `आपके पास कोई कार्य नहीं है। "कार्य जोड़ें:" के साथ एक कार्य जोड़ें।`}
		}
		return CommandResult{IsCommand: true, Reply: `You have no tasks. Add one with "Assign task:".`}
	}

	var b strings.Builder
	if language == types.LanguageHindi {
		b.WriteString("आपके कार्य:")
		for i, t := range tasks {
			marker := "(अपूर्ण)"
			if t.Completed {
				marker = "(पूर्ण)"
			}
			b.WriteString(fmt.Sprintf("\n%d. %s %s", i+1, t.Description, marker))
		}
	} else {
		b.WriteString("Your tasks:")
		for i, t := range tasks {
			marker := "(pending)"
			if t.Completed {
				marker = "(completed)"
			}
			b.WriteString(fmt.Sprintf("\n%d. %s %s", i+1, t.Description, marker))
		}
	}
	return CommandResult{IsCommand: true, Reply: b.String()}
}

func (s *Store) handleComplete(text string, language types.Language) CommandResult {
	index, ok := firstNumber(text)
	if ok {
		if completed, found := s.CompleteAt(index); found {
			if language == types.LanguageHindi {
				return CommandResult{IsCommand: true, Reply: fmt.Sprintf("कार्य \"%s\" पूर्ण के रूप में चिह्नित किया गया।", completed.Description)}
			}
			return CommandResult{IsCommand: true, Reply: fmt.Sprintf("Task %q marked as complete.", completed.Description)}
		}
	}
	return CommandResult{IsCommand: true, Reply: invalidNumberMessage(language)}
}

func (s *Store) handleDelete(text string, language types.Language) CommandResult {
	index, ok := firstNumber(text)
	if ok {
		if removed, found := s.RemoveAt(index); found {
			if language == types.LanguageHindi {
				return CommandResult{IsCommand: true, Reply: fmt.Sprintf("कार्य \"%s\" हटा दिया गया।", removed.Description)}
			}
			return CommandResult{IsCommand: true, Reply: fmt.Sprintf("Task %q deleted.", removed.Description)}
		}
	}
	return CommandResult{IsCommand: true, Reply: invalidNumberMessage(language)}
}

// firstNumber extracts the first integer literal in the text, interpreted
// as a 1-based index into current store order.
func firstNumber(text string) (int, bool) {
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

func invalidNumberMessage(language types.Language) string {
	if language == types.LanguageHindi {
		return "कृपया एक वैध कार्य संख्या प्रदान करें।"
	}
	return "Please provide a valid task number."
}
