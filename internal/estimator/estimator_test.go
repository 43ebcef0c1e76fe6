package estimator

import (
	"reflect"
	"strings"
	"testing"
)

func TestEstimateNeutralText(t *testing.T) {
	result := Estimate("")

	if result.StressScore != 2.5 {
		t.Errorf("score = %v, want the neutral 2.5", result.StressScore)
	}
	if result.StressLevel != "Low" {
		t.Errorf("level = %q, want Low", result.StressLevel)
	}
	if result.Mood != "neutral" {
		t.Errorf("mood = %q, want neutral", result.Mood)
	}
	if len(result.Keywords) != 0 {
		t.Errorf("keywords = %v, want none", result.Keywords)
	}
}

func TestEstimateStressedText(t *testing.T) {
	result := Estimate("I feel really stressed about my exam deadline")

	if result.StressLevel != "High" {
		t.Errorf("level = %q (score %v), want High", result.StressLevel, result.StressScore)
	}
	if result.StressScore <= 6.0 {
		t.Errorf("score = %v, want > 6", result.StressScore)
	}
	if result.Sentiment.Compound >= 0 {
		t.Errorf("compound = %v, want negative", result.Sentiment.Compound)
	}

	// keywords come back in lexicon order, deduplicated
	want := []string{"stressed", "deadline", "exam"}
	if !reflect.DeepEqual(result.Keywords, want) {
		t.Errorf("keywords = %v, want %v", result.Keywords, want)
	}
}

func TestEstimatePositiveText(t *testing.T) {
	result := Estimate("I feel great and calm and happy")

	if result.StressLevel != "Low" {
		t.Errorf("level = %q (score %v), want Low", result.StressLevel, result.StressScore)
	}
	if result.Sentiment.Compound <= 0 {
		t.Errorf("compound = %v, want positive", result.Sentiment.Compound)
	}
	if result.Mood != "focused" {
		t.Errorf("mood = %q, want focused (calm)", result.Mood)
	}
}

func TestNegationFlipsPolarity(t *testing.T) {
	plain := Estimate("I am happy")
	negated := Estimate("I am not happy")

	if plain.Sentiment.Compound <= 0 {
		t.Errorf("plain compound = %v, want positive", plain.Sentiment.Compound)
	}
	if negated.Sentiment.Compound >= 0 {
		t.Errorf("negated compound = %v, want negative", negated.Sentiment.Compound)
	}
}

func TestNegationWindowExpires(t *testing.T) {
	// three non-sentiment tokens exhaust the negation window, so the
	// sentiment word keeps its original polarity
	result := Estimate("not one two three happy")
	if result.Sentiment.Compound <= 0 {
		t.Errorf("compound = %v, want positive after window expiry", result.Sentiment.Compound)
	}
}

func TestIntensifierAmplifies(t *testing.T) {
	base := Estimate("I am stressed")
	amplified := Estimate("I am very stressed")

	if amplified.Sentiment.Compound >= base.Sentiment.Compound {
		t.Errorf("intensified compound %v should be below base %v",
			amplified.Sentiment.Compound, base.Sentiment.Compound)
	}
}

func TestMoodInference(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I am completely exhausted today", "tired"},
		{"feeling scattered and distracted", "scattered"},
		{"super motivated for this sprint", "energetic"},
		{"clear head and relaxed", "focused"},
		{"nothing in particular", "neutral"},
		// group order decides when several moods match
		{"exhausted and overwhelmed", "tired"},
	}

	for _, tt := range tests {
		if got := Estimate(tt.text).Mood; got != tt.want {
			t.Errorf("Estimate(%q).Mood = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestKeywordDeduplication(t *testing.T) {
	result := Estimate("stress stress stress everywhere")
	want := []string{"stress"}
	if !reflect.DeepEqual(result.Keywords, want) {
		t.Errorf("keywords = %v, want %v", result.Keywords, want)
	}
}

func TestSanitizationStripsDangerousChars(t *testing.T) {
	clean := Estimate("I am stressed")
	tagged := Estimate("{I} <am> stressed")

	// braces and angle brackets are removed, not tokenized
	if tagged.StressLevel != clean.StressLevel {
		t.Errorf("levels diverge: %q vs %q", tagged.StressLevel, clean.StressLevel)
	}
	if !reflect.DeepEqual(tagged.Keywords, clean.Keywords) {
		t.Errorf("keywords diverge: %v vs %v", tagged.Keywords, clean.Keywords)
	}
}

func TestExclamationsRaiseScore(t *testing.T) {
	plain := Estimate("so much pressure today")
	loud := Estimate("so much pressure today!!!")

	if loud.StressScore <= plain.StressScore {
		t.Errorf("exclamations should raise the score: %v vs %v",
			loud.StressScore, plain.StressScore)
	}
}

func TestLongInputIsTruncated(t *testing.T) {
	long := strings.Repeat("stressed ", 400)
	result := Estimate(long)

	// must not panic and still caps at the scale maximum
	if result.StressScore > 10 {
		t.Errorf("score = %v, want <= 10", result.StressScore)
	}
	if result.StressLevel != "High" {
		t.Errorf("level = %q, want High", result.StressLevel)
	}
}

func TestLevelRounding(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0.0, 0},
		{2.4, 2},
		{2.5, 3},
		{7.5, 8},
		{10.0, 10},
	}

	for _, tt := range tests {
		if got := (Result{StressScore: tt.score}).Level(); got != tt.want {
			t.Errorf("Level(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestExplanationMentionsScoreAndKeywords(t *testing.T) {
	result := Estimate("really worried about the interview deadline")

	if !strings.Contains(result.Explanation, "/10)") {
		t.Errorf("explanation missing score suffix: %q", result.Explanation)
	}
	if !strings.Contains(result.Explanation, "Keywords like") {
		t.Errorf("explanation missing keyword clause: %q", result.Explanation)
	}
}

func TestEstimateIsDeterministic(t *testing.T) {
	text := "deadline panic, very anxious and tired!"
	first := Estimate(text)
	second := Estimate(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results diverge:\n%+v\n%+v", first, second)
	}
}
