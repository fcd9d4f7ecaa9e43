package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject pulls the first balanced top-level {...} out of free-form
// model output. Models wrap JSON in prose or markdown fences; strip those
// first, then scan for the matching closing brace (string- and escape-aware).
func ExtractJSONObject(response string) (string, error) {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return "", fmt.Errorf("%w: no JSON object in output", ErrUnparsableResponse)
	}

	end := findMatchingBrace(response, start)
	if end == -1 {
		return "", fmt.Errorf("%w: unbalanced JSON object", ErrUnparsableResponse)
	}

	candidate := response[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", fmt.Errorf("%w: extracted object is not valid JSON", ErrUnparsableResponse)
	}
	return candidate, nil
}

func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
