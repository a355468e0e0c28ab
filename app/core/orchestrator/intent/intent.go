// Package intent assigns a coarse category to free-text messages using
// fixed keyword sets. Classification is deterministic: exact substring
// containment on the case-folded text, no fuzzy matching.
package intent

import "strings"

type Category string

const (
	CategoryNews     Category = "news"
	CategoryStudy    Category = "study"
	CategoryGuidance Category = "guidance"
	CategoryGeneral  Category = "general"
)

var (
	newsKeywords     = []string{"news", "update", "समाचार", "अपडेट"}
	studyKeywords    = []string{"study", "learn", "अध्ययन", "सीखना"}
	guidanceKeywords = []string{"advice", "help", "guide", "how to", "सलाह", "मदद", "मार्गदर्शन", "कैसे"}
)

// Classify checks the keyword sets in precedence order news, study,
// guidance and falls back to general.
func Classify(text string) Category {
	lower := strings.ToLower(text)

	if containsAny(lower, newsKeywords) {
		return CategoryNews
	}
	if containsAny(lower, studyKeywords) {
		return CategoryStudy
	}
	if containsAny(lower, guidanceKeywords) {
		return CategoryGuidance
	}
	return CategoryGeneral
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
