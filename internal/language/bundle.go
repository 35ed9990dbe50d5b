// Package language loads the read-only assets the extractive engine needs:
// a Punkt sentence boundary model and a stopword list. A Bundle is built once
// at startup and shared by every request.
package language

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/nguyentantai21042004/condense/internal/model"
)

//go:embed data/english_stopwords.txt
var englishStopwords []byte

// Options selects where the bundle assets come from. Empty fields use the
// built-in English assets.
type Options struct {
	StopwordsFile  string
	PunktModelFile string
}

// Bundle holds the immutable language assets. Safe for concurrent use.
type Bundle struct {
	tokenizer *sentences.DefaultSentenceTokenizer
	stopwords map[string]struct{}
}

// Load builds a Bundle. Any missing or unreadable asset is reported as
// model.ErrResourceUnavailable.
func Load(opts Options) (*Bundle, error) {
	tokenizer, err := loadTokenizer(opts.PunktModelFile)
	if err != nil {
		return nil, fmt.Errorf("%w: sentence model: %v", model.ErrResourceUnavailable, err)
	}

	raw := englishStopwords
	if opts.StopwordsFile != "" {
		raw, err = os.ReadFile(opts.StopwordsFile)
		if err != nil {
			return nil, fmt.Errorf("%w: stopwords: %v", model.ErrResourceUnavailable, err)
		}
	}
	stopwords := parseStopwords(raw)
	if len(stopwords) == 0 {
		return nil, fmt.Errorf("%w: stopword list is empty", model.ErrResourceUnavailable)
	}

	return &Bundle{tokenizer: tokenizer, stopwords: stopwords}, nil
}

func loadTokenizer(path string) (*sentences.DefaultSentenceTokenizer, error) {
	if path == "" {
		return english.NewSentenceTokenizer(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	training, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, err
	}
	return english.NewSentenceTokenizer(training)
}

// parseStopwords reads one word per line; blank lines and # comments are skipped.
func parseStopwords(raw []byte) map[string]struct{} {
	set := make(map[string]struct{})
	scan := bufio.NewScanner(bytes.NewReader(raw))
	for scan.Scan() {
		w := strings.ToLower(strings.TrimSpace(scan.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// SplitSentences returns the sentence spans in text, in order. Punkt finds
// the boundaries and refine corrects the cases it gets wrong.
func (b *Bundle) SplitSentences(text string) []string {
	spans := b.tokenizer.Tokenize(text)
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.Text)
	}
	return refine(out)
}

// IsStopword reports whether the lowercased token is in the stopword list.
func (b *Bundle) IsStopword(token string) bool {
	_, ok := b.stopwords[token]
	return ok
}

// StopwordCount is the size of the loaded stopword list.
func (b *Bundle) StopwordCount() int {
	return len(b.stopwords)
}
