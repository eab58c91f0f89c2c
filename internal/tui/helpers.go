package tui

import (
	"time"
	"unicode/utf8"
)

// maxInputLen is the maximum number of runes allowed in form inputs.
const maxInputLen = 2000

// editRune processes a keystroke for inline text editing. Handles
// backspace (rune-aware) and single printable characters; any other key
// leaves the text unchanged. Input is clamped to maxInputLen runes.
func editRune(text string, key string) string {
	switch key {
	case "backspace":
		if len(text) > 0 {
			runes := []rune(text)
			return string(runes[:len(runes)-1])
		}
		return text
	default:
		if utf8.RuneCountInString(key) == 1 {
			if utf8.RuneCountInString(text) >= maxInputLen {
				return text
			}
			return text + key
		}
		return text
	}
}

// truncateToHeight limits output to maxLines newline-delimited lines.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// formatDate renders a created date the way the list columns show it.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Year() == time.Now().Year() {
		return t.Format("Jan 2")
	}
	return t.Format("Jan 2 2006")
}

// cyclePriority steps through the priority options: "" -> Low -> Medium
// -> High -> "" (forward), or the reverse.
func cyclePriority(current string, forward bool, options []string) string {
	if len(options) == 0 {
		return ""
	}
	idx := -1
	for i, p := range options {
		if p == current {
			idx = i
			break
		}
	}
	if forward {
		if idx == len(options)-1 {
			return ""
		}
		return options[idx+1]
	}
	if idx == -1 {
		return options[len(options)-1]
	}
	if idx == 0 {
		return ""
	}
	return options[idx-1]
}
