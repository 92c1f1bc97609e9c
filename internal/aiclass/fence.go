package aiclass

import "strings"

// stripFences removes a surrounding markdown code fence, with or without a
// language tag, from model output. The tag may be followed by a newline,
// a space or the payload itself.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimLeftFunc(s, isTagRune)
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// isTagRune matches the characters of a fence language tag such as json.
func isTagRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
