package ui

import (
	"io"
)

// scriptedPrompter answers prompts from a fixed list and then reports EOF
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (s *scriptedPrompter) Ask(prompt, def string) (string, error) {
	s.prompts = append(s.prompts, prompt)

	if len(s.answers) == 0 {
		return "", io.EOF
	}

	answer := s.answers[0]
	s.answers = s.answers[1:]

	if answer == "" {
		return def, nil
	}

	return answer, nil
}
