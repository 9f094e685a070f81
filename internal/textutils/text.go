package textutils

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// CollapseLineBreaks replaces every line break with a single space.
func CollapseLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}

// ContainsLineBreak reports whether s holds a CR or LF.
func ContainsLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
