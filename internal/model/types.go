package model

import (
	"fmt"
	"strings"
)

// Method selects how a summary is produced.
type Method string

const (
	MethodExtractive  Method = "extractive"
	MethodAbstractive Method = "abstractive"
)

// ParseMethod normalises a user supplied method name.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodExtractive, MethodAbstractive:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Request is one summarization job.
type Request struct {
	Method     Method
	Percentage int
	Text       string
}

// ValidatePercentage rejects percentages outside (0, 100].
func ValidatePercentage(p int) error {
	if p <= 0 || p > 100 {
		return fmt.Errorf("%w: percentage must be in (0, 100], got %d", ErrInvalidParameter, p)
	}
	return nil
}

// RankedSentence is one sentence with the data used to score it.
type RankedSentence struct {
	Index    int     `json:"index"`
	Original string  `json:"original"`
	Clean    string  `json:"clean"`
	Score    float64 `json:"score"`
	Selected bool    `json:"selected"`
}
