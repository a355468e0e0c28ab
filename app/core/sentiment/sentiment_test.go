package sentiment

import (
	"context"
	"testing"
)

func TestClassifyPositiveText(t *testing.T) {
	c := NewLexiconClassifier()
	label, err := c.Classify(context.Background(), "The quarter showed great growth and strong results.")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if label != LabelPositive {
		t.Fatalf("expected POSITIVE, got %s", label)
	}
}

func TestClassifyNegativeText(t *testing.T) {
	c := NewLexiconClassifier()
	label, err := c.Classify(context.Background(), "A bad year: declining sales, heavy loss, and a weak outlook.")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if label != LabelNegative {
		t.Fatalf("expected NEGATIVE, got %s", label)
	}
}

func TestClassifyHindiText(t *testing.T) {
	c := NewLexiconClassifier()
	label, err := c.Classify(context.Background(), "इस वर्ष कंपनी को भारी नुकसान और समस्या का सामना करना पड़ा।")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if label != LabelNegative {
		t.Fatalf("expected NEGATIVE, got %s", label)
	}
}

func TestClassifyEmptyTextFails(t *testing.T) {
	c := NewLexiconClassifier()
	if _, err := c.Classify(context.Background(), "   "); err != ErrEmptyText {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestClassifyRespectsCanceledContext(t *testing.T) {
	c := NewLexiconClassifier()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Classify(ctx, "good"); err == nil {
		t.Fatal("expected context error")
	}
}
