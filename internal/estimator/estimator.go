// Package estimator derives a stress score, level and mood tag from free
// text using lexicon-based sentiment analysis. Rule-based on purpose: the
// scheduler only needs a coarse 0-10 signal, and a fixed lexicon keeps the
// result deterministic and dependency-free.
package estimator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Word weights are magnitudes; polarity comes from the table a word sits in.
var positiveWords = map[string]float64{
	"good": 1, "great": 1.5, "excellent": 2, "awesome": 1.5, "wonderful": 1.5,
	"fantastic": 1.5, "amazing": 1.5, "perfect": 2, "love": 2, "like": 1,
	"happy": 1.5, "joy": 1.5, "pleased": 1, "content": 1, "satisfied": 1,
	"better": 1, "best": 1.5, "fine": 0.5, "okay": 0.5, "alright": 0.5,
	"calm": 1, "relaxed": 1, "peaceful": 1, "grateful": 1, "thankful": 1,
}

var negativeWords = map[string]float64{
	"bad": 1, "terrible": 2, "awful": 2, "horrible": 2, "hate": 2,
	"dislike": 1.5, "angry": 1.5, "mad": 1.5, "upset": 1.5, "sad": 1.5,
	"unhappy": 1.5, "depressed": 2, "anxious": 2, "worried": 1.5,
	"stressed": 2.5, "overwhelmed": 2.5, "tired": 1, "exhausted": 1.5,
	"frustrated": 1.5, "annoyed": 1, "problem": 1, "issue": 1,
	"difficult": 1, "hard": 1, "challenging": 0.5, "struggle": 1.5,
	"panic": 2, "nervous": 1.5, "scared": 1.5, "afraid": 1.5,
	"hopeless": 2, "helpless": 2, "lost": 1.5,
}

// Intensifiers amplify the next sentiment word.
var intensifiers = map[string]float64{
	"very": 1.5, "really": 1.3, "extremely": 1.7, "quite": 1.2,
	"too": 1.3, "so": 1.2, "absolutely": 1.6, "completely": 1.5,
	"totally": 1.4, "utterly": 1.6,
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "none": true,
	"nothing": true, "nobody": true, "nowhere": true, "nt": true,
}

// stressKeywords are reported back to the caller when matched, so the
// explanation can name the detected stressors.
var stressKeywords = []string{
	"stress", "stressed", "stressful", "overwhelm", "overwhelmed", "anxious", "anxiety",
	"worry", "worried", "pressure", "pressured", "burntout", "burnout", "exhausted",
	"deadline", "exam", "test", "presentation", "interview", "meeting", "assignment",
	"drowning", "overloaded", "panic", "nervous", "tense", "frustrated", "annoyed",
	"irritated", "angry", "mad", "depressed", "sad", "unhappy", "miserable",
	"hopeless", "helpless", "lost",
}

// Mood tag inference, first matching group wins. The tags match the mood
// states the scheduler's advisory notes branch on.
var moodGroups = []struct {
	mood     string
	keywords []string
}{
	{"tired", []string{"tired", "exhausted", "drained", "sleepy", "burnout", "burntout"}},
	{"scattered", []string{"scattered", "distracted", "overwhelmed", "drowning", "overloaded"}},
	{"energetic", []string{"energetic", "excited", "motivated", "pumped"}},
	{"focused", []string{"focused", "calm", "clear", "relaxed"}},
}

var nonLetters = regexp.MustCompile(`[^a-z\s]`)
var dangerousChars = regexp.MustCompile(`[<>{}]`)

const maxInputLength = 1000

// Sentiment is the normalized sentiment breakdown for a text. Compound is
// in (-1,1); positive/negative/neutral derive from it.
type Sentiment struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Result is a full stress estimate for one text input.
type Result struct {
	StressScore float64   `json:"stress_score"`
	StressLevel string    `json:"stress_level"`
	Mood        string    `json:"mood"`
	Keywords    []string  `json:"keywords"`
	Explanation string    `json:"explanation"`
	Sentiment   Sentiment `json:"sentiment_scores"`
}

// Level returns the stress score rounded to the scheduler's integer
// 0-10 scale.
func (r Result) Level() int {
	level := int(math.Round(r.StressScore))
	if level < 0 {
		return 0
	}
	if level > 10 {
		return 10
	}
	return level
}

// Estimate analyzes a text and returns its stress estimate. Pure and
// deterministic; empty or whitespace-only text yields the neutral result.
func Estimate(text string) Result {
	sanitized := sanitize(text)
	cleaned := preprocess(sanitized)
	words := strings.Fields(cleaned)

	sentiment := analyzeSentiment(words)
	keywords := extractKeywords(words)

	// Base score from sentiment: compound in [-1,1] maps to 0..5.
	score := (1.0 - sentiment.Compound) * 2.5

	// Keyword weight depends on sentiment polarity: stress words inside a
	// positive text are less likely to signal real stress.
	switch {
	case sentiment.Compound < -0.3:
		score += math.Min(float64(len(keywords))*1.5, 3.0)
	case sentiment.Compound > 0.3:
		score += math.Min(float64(len(keywords))*0.5, 1.0)
	default:
		score += math.Min(float64(len(keywords))*1.0, 2.0)
	}

	// Long descriptions read as rumination, exclamations as intensity.
	score += math.Min(float64(len(words))*0.1, 2.0)
	score += math.Min(float64(strings.Count(sanitized, "!"))*0.2, 1.0)

	if score > 10 {
		score = 10
	}
	if score < 0 {
		score = 0
	}
	score = math.Round(score*10) / 10

	level := "High"
	switch {
	case score <= 3.0:
		level = "Low"
	case score <= 6.0:
		level = "Medium"
	}

	return Result{
		StressScore: score,
		StressLevel: level,
		Mood:        inferMood(words),
		Keywords:    keywords,
		Explanation: explain(level, keywords, sentiment, score, text),
		Sentiment:   sentiment,
	}
}

// analyzeSentiment walks the tokens applying intensifiers and a short
// negation window that flips the polarity of the next sentiment word.
func analyzeSentiment(words []string) Sentiment {
	score := 0.0
	intensifier := 1.0
	negationWindow := 0

	for _, word := range words {
		switch {
		case intensifiers[word] != 0:
			intensifier = intensifiers[word]
		case negations[word]:
			negationWindow = 3
		default:
			if weight, ok := positiveWords[word]; ok {
				if negationWindow > 0 {
					score -= weight * intensifier
				} else {
					score += weight * intensifier
				}
				intensifier = 1.0
				negationWindow = 0
			} else if weight, ok := negativeWords[word]; ok {
				if negationWindow > 0 {
					score += weight * intensifier
				} else {
					score -= weight * intensifier
				}
				intensifier = 1.0
				negationWindow = 0
			} else if negationWindow > 0 {
				negationWindow--
			}
		}
	}

	// tanh keeps the compound in (-1,1) regardless of text length.
	compound := math.Tanh(score / 3.0)
	return Sentiment{
		Compound: compound,
		Positive: math.Max(0, compound),
		Negative: math.Max(0, -compound),
		Neutral:  1.0 - math.Abs(compound),
	}
}

// extractKeywords returns the matched stress keywords, deduplicated in
// first-seen order for deterministic output.
func extractKeywords(words []string) []string {
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}

	matched := []string{}
	for _, kw := range stressKeywords {
		if wordSet[kw] {
			matched = append(matched, kw)
		}
	}
	return matched
}

func inferMood(words []string) string {
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}

	for _, group := range moodGroups {
		for _, kw := range group.keywords {
			if wordSet[kw] {
				return group.mood
			}
		}
	}
	return "neutral"
}

// sanitize strips injection-prone characters and bounds the input length.
func sanitize(text string) string {
	text = dangerousChars.ReplaceAllString(text, "")
	if len(text) > maxInputLength {
		text = text[:maxInputLength]
	}
	return text
}

// preprocess lowercases and keeps only letters and whitespace. Keyword
// and sentiment matching runs over this cleaned form.
func preprocess(text string) string {
	return nonLetters.ReplaceAllString(strings.ToLower(text), "")
}

var explanations = map[string]string{
	"Low":    "You seem to be handling things well and maintaining a positive outlook.",
	"Medium": "You're showing some signs of stress but seem to be managing overall.",
	"High":   "You're experiencing significant stress that would benefit from attention.",
}

func explain(level string, keywords []string, sentiment Sentiment, score float64, original string) string {
	var b strings.Builder
	b.WriteString(explanations[level])

	if len(keywords) > 0 {
		top := keywords
		if len(top) > 3 {
			top = top[:3]
		}
		b.WriteString(" Keywords like '" + strings.Join(top, ", ") + "' suggest specific stressors.")
	}

	if sentiment.Compound < -0.3 {
		b.WriteString(" Your language indicates negative emotions which may contribute to stress.")
	} else if sentiment.Compound > 0.3 {
		b.WriteString(" Your positive outlook helps mitigate stress.")
	}

	wordCount := len(strings.Fields(original))
	if wordCount > 30 {
		b.WriteString(" The detailed description suggests you're giving this significant thought.")
	} else if wordCount < 5 {
		b.WriteString(" The brief response might indicate you're not fully expressing your feelings.")
	}

	b.WriteString(" (Stress score: " + strconv.FormatFloat(score, 'f', 1, 64) + "/10)")
	return b.String()
}
