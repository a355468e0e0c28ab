package intent

import "testing"

func TestClassifyCategories(t *testing.T) {
	cases := []struct {
		text string
		want Category
	}{
		{"any news today?", CategoryNews},
		{"give me an UPDATE", CategoryNews},
		{"समाचार सुनाओ", CategoryNews},
		{"I want to study Go", CategoryStudy},
		{"how do I learn piano", CategoryStudy},
		{"अध्ययन कैसे करें", CategoryStudy},
		{"any advice for interviews?", CategoryGuidance},
		{"help me out", CategoryGuidance},
		{"how to cook rice", CategoryGuidance},
		{"मुझे सलाह चाहिए", CategoryGuidance},
		{"hello there", CategoryGeneral},
		{"", CategoryGeneral},
	}

	for _, c := range cases {
		if got := Classify(c.text); got != c.want {
			t.Fatalf("Classify(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}

func TestClassifyPrecedenceNewsBeforeStudy(t *testing.T) {
	// "news" and "learn" both match; news wins by precedence.
	if got := Classify("learn the news"); got != CategoryNews {
		t.Fatalf("expected news to win precedence, got %s", got)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := Classify("help"); got != CategoryGuidance {
			t.Fatalf("classification changed between calls: %s", got)
		}
	}
}
