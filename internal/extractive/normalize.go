package extractive

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/tokenize"
)

// StopwordSet reports whether a lowercased token is a stopword.
type StopwordSet interface {
	IsStopword(token string) bool
}

// treebank is stateless and safe to share.
var treebank = tokenize.NewTreebankWordTokenizer()

// Normalizer produces the scoring-only form of a sentence.
type Normalizer struct {
	stopwords StopwordSet
}

func NewNormalizer(stopwords StopwordSet) *Normalizer {
	return &Normalizer{stopwords: stopwords}
}

// Normalize lowercases the sentence, tokenizes it, keeps purely alphanumeric
// tokens that are not stopwords and joins them with single spaces. The result
// is "" when nothing survives.
func (n *Normalizer) Normalize(sentence string) string {
	kept := make([]string, 0, 8)
	for _, tok := range Tokenize(strings.ToLower(sentence)) {
		if !isAlnum(tok) || n.stopwords.IsStopword(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// Tokenize splits text into Penn Treebank word and punctuation tokens:
// clitics such as "n't" and "'s" are split off, while "5,000", "10:30" and
// "3.14" stay whole.
func Tokenize(text string) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}

	var out []string
	for _, tok := range treebank.Tokenize(text) {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func isAlnum(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
