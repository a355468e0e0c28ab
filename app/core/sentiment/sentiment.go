// Package sentiment wraps a local text-classification capability that
// labels a block of text as positive or negative.
package sentiment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode"
)

type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
)

var ErrEmptyText = errors.New("sentiment: no text to classify")

// Classifier labels a block of text. Implementations may be slow on
// first use (model load) and are fallible; callers degrade to a generic
// apology rather than surfacing the error to the user.
type Classifier interface {
	Classify(ctx context.Context, text string) (Label, error)
}

// LexiconClassifier scores text against fixed polarity word lists. The
// lexicon is built lazily on first use.
type LexiconClassifier struct {
	loadOnce sync.Once
	positive map[string]struct{}
	negative map[string]struct{}
}

func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{}
}

var positiveWords = []string{
	"good", "great", "excellent", "positive", "happy", "success",
	"successful", "improve", "improved", "growth", "benefit", "strong",
	"love", "best", "win", "effective", "achievement", "opportunity",
	"अच्छा", "बेहतर", "सफलता", "खुश", "उत्कृष्ट", "लाभ", "प्रगति",
}

var negativeWords = []string{
	"bad", "poor", "negative", "sad", "failure", "failed", "decline",
	"loss", "weak", "problem", "worst", "risk", "concern", "issue",
	"difficult", "wrong", "hate", "crisis",
	"बुरा", "खराब", "असफल", "नुकसान", "समस्या", "चिंता", "संकट",
}

func (c *LexiconClassifier) load() {
	c.positive = make(map[string]struct{}, len(positiveWords))
	for _, w := range positiveWords {
		c.positive[w] = struct{}{}
	}
	c.negative = make(map[string]struct{}, len(negativeWords))
	for _, w := range negativeWords {
		c.negative[w] = struct{}{}
	}
}

// Classify tokenizes the text and compares polarity hits. Ties lean
// positive to match the binary model this stands in for.
func (c *LexiconClassifier) Classify(ctx context.Context, text string) (Label, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	c.loadOnce.Do(c.load)

	score := 0
	for _, word := range tokenize(text) {
		if _, ok := c.positive[word]; ok {
			score++
			continue
		}
		if _, ok := c.negative[word]; ok {
			score--
		}
	}

	if score < 0 {
		return LabelNegative, nil
	}
	return LabelPositive, nil
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
