package questions

import (
	"regexp"
	"strings"
)

// listMarker matches a leading "1." style marker on every line, in any
// script's decimal digits.
var listMarker = regexp.MustCompile(`(?m)^\p{Nd}+\.\s*`)

// ParseQuestions turns raw model output into question strings. Order is kept,
// blank lines are dropped and duplicates are left alone.
func ParseQuestions(content string) []string {
	cleaned := listMarker.ReplaceAllString(strings.TrimSpace(content), "")

	questions := make([]string, 0, 3)
	for _, line := range strings.Split(cleaned, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			questions = append(questions, line)
		}
	}
	return questions
}
