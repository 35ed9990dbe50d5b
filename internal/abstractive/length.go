package abstractive

import "strings"

// PrepareText collapses newlines and trims the text sent to a backend.
func PrepareText(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
}

// TargetWords is max(minWords, words*percentage/100).
func TargetWords(text string, percentage, minWords int) int {
	return max(minWords, len(strings.Fields(text))*percentage/100)
}
