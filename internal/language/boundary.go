package language

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// A period after a number or a closing quote, then whitespace and a
	// capitalised word. Group 1 ends where the sentence ends.
	reMissedBreak = regexp.MustCompile(`(\p{N}\.|[.!?]["”’')\]]+)\s+["“‘(\[]?\p{Lu}`)

	// Closing quotes or brackets left at the start of the next span.
	reLeadingCloser = regexp.MustCompile(`^\s*["”’')\]]+(?:\s|$)`)

	// Dotted abbreviations such as "U.S." or "p.m.".
	reDotted = regexp.MustCompile(`(?:^|\s)(?:\p{L}\.){2,}\s*$`)
)

// Titles that always precede a name, so a period after them never ends a sentence.
var titles = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "rev": {}, "gen": {},
	"sen": {}, "rep": {}, "gov": {}, "capt": {}, "lt": {}, "col": {}, "sgt": {},
	"mt": {}, "vs": {},
}

// refine fixes Punkt spans: closers are moved back to the sentence they end,
// missed breaks after numbers and quotes are split, and breaks after titles
// or before a lowercase continuation of a dotted abbreviation are undone.
// The spans keep tiling the input.
func refine(spans []string) []string {
	spans = reattachClosers(spans)

	split := make([]string, 0, len(spans))
	for _, s := range spans {
		split = append(split, splitMissed(s)...)
	}

	return mergeFalseBreaks(split)
}

func reattachClosers(spans []string) []string {
	for i := 1; i < len(spans); i++ {
		loc := reLeadingCloser.FindStringIndex(spans[i])
		if loc == nil {
			continue
		}
		end := loc[1]
		if end > 0 && unicode.IsSpace(rune(spans[i][end-1])) {
			end--
		}
		spans[i-1] += spans[i][:end]
		spans[i] = spans[i][end:]
	}

	out := spans[:0]
	for _, s := range spans {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func splitMissed(span string) []string {
	var out []string
	start := 0
	for _, m := range reMissedBreak.FindAllStringSubmatchIndex(span, -1) {
		cut := m[3]
		if unicode.IsNumber(firstRune(span[m[2]:])) && !numericToken(span[:cut]) {
			continue
		}
		out = append(out, span[start:cut])
		start = cut
	}
	return append(out, span[start:])
}

// numericToken reports whether the last word of s (ending in a period) has
// no letters, so "2020." qualifies and "No." or "v2." do not.
func numericToken(s string) bool {
	word := s
	if i := strings.LastIndexFunc(s, unicode.IsSpace); i >= 0 {
		word = s[i+1:]
	}
	return !strings.ContainsFunc(word, unicode.IsLetter)
}

func mergeFalseBreaks(spans []string) []string {
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		if n := len(out); n > 0 && continues(out[n-1], s) {
			out[n-1] += s
			continue
		}
		out = append(out, s)
	}
	return out
}

// continues reports whether next belongs to the same sentence as prev.
func continues(prev, next string) bool {
	p := strings.TrimRightFunc(prev, unicode.IsSpace)
	if !strings.HasSuffix(p, ".") {
		return false
	}

	word := strings.TrimSuffix(p, ".")
	if i := strings.LastIndexFunc(word, func(r rune) bool { return unicode.IsSpace(r) || r == '(' || r == '"' }); i >= 0 {
		word = word[i+1:]
	}
	if _, ok := titles[strings.ToLower(word)]; ok {
		return true
	}

	return reDotted.MatchString(p) && unicode.IsLower(firstRune(strings.TrimLeftFunc(next, unicode.IsSpace)))
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
