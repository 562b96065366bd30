package quiz

import "fmt"

// FallbackQuestions builds the static sample question set used when the
// backend is unreachable. The set is always non-empty, so a session can
// be constructed over it unconditionally.
func FallbackQuestions(subject, topic string) []Question {
	return []Question{
		{
			Prompt: fmt.Sprintf("What is the fundamental principle of %s?", topic),
			Options: []string{
				"Option A: Basic principle",
				"Option B: Advanced concept",
				"Option C: Related theory",
				"Option D: Alternative approach",
			},
			CorrectIndex: 0,
			Explanation: fmt.Sprintf(
				"The fundamental principle of %s is the foundation for understanding this concept in %s.",
				topic, subject),
		},
		{
			Prompt: fmt.Sprintf("Which formula is most commonly used for %s?", topic),
			Options: []string{
				"Option A: Formula 1",
				"Option B: Formula 2",
				"Option C: Formula 3",
				"Option D: Formula 4",
			},
			CorrectIndex: 1,
			Explanation: fmt.Sprintf(
				"Formula 2 is the most commonly used formula for %s in JEE problems.", topic),
		},
	}
}
