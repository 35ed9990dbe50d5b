package extractive

import "strings"

// SentenceSplitter finds sentence boundaries. language.Bundle implements it.
type SentenceSplitter interface {
	SplitSentences(text string) []string
}

// Segmenter turns a document into its ordered sentences.
type Segmenter struct {
	splitter SentenceSplitter
}

func NewSegmenter(splitter SentenceSplitter) *Segmenter {
	return &Segmenter{splitter: splitter}
}

// Segment returns the sentences of text in document order. Each sentence is
// the source text with surrounding whitespace trimmed; whitespace-only spans
// are skipped.
func (s *Segmenter) Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	spans := s.splitter.SplitSentences(text)
	out := make([]string, 0, len(spans))
	for _, span := range spans {
		if span = strings.TrimSpace(span); span != "" {
			out = append(out, span)
		}
	}
	return out
}
