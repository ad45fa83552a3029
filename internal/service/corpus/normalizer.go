// Package corpus turns raw subtitle lines into word tokens and counts
// words, word-internal characters and boundary-marked bigrams.
package corpus

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// quoteState is the apostrophe state of the line scanner.
type quoteState int

const (
	// noQuoteOpen: an apostrophe at the start of the line or after a space
	// opens a quotation.
	noQuoteOpen quoteState = iota
	// quoteOpenPendingClose: an apostrophe followed by a non-letter (or the
	// end of the line) closes the quotation.
	quoteOpenPendingClose
)

// Normalizer cleans one line of raw text into lower-cased word tokens.
// It keeps letters, combining marks, single spaces, hyphens between letters
// and apostrophes that are not used as quotation marks.
//
// A Normalizer is not safe for concurrent use.
type Normalizer struct {
	lower          cases.Caser
	collectRemoved bool
	composeNFC     bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithRemovedChars makes Normalize report the distinct characters it dropped.
func WithRemovedChars() NormalizerOption {
	return func(n *Normalizer) { n.collectRemoved = true }
}

// WithNFC composes each line to Unicode NFC before scanning.
func WithNFC() NormalizerOption {
	return func(n *Normalizer) { n.composeNFC = true }
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{lower: cases.Lower(language.Und)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize scans line left to right and returns its tokens split on single
// spaces. Tokens can be empty (for an empty line, for instance); callers
// skip them. The removed set is nil unless WithRemovedChars was given and
// never affects the tokens.
func (n *Normalizer) Normalize(line string) (tokens []string, removed map[rune]struct{}) {
	if n.composeNFC {
		line = norm.NFC.String(line)
	}
	if n.collectRemoved {
		removed = make(map[rune]struct{})
	}

	src := []rune(line)
	acc := make([]rune, 0, len(src))
	state := noQuoteOpen
	// Accumulator positions of apostrophes that opened a quotation.
	var openings []int

	nextIsLetter := func(i int) bool {
		return i+1 < len(src) && unicode.IsLetter(src[i+1])
	}
	lastIs := func(pred func(rune) bool) bool {
		return len(acc) > 0 && pred(acc[len(acc)-1])
	}

	for i, r := range src {
		switch {
		case !unicode.IsLetter(r) && r != '-' && r != '\'' && r != ' ':
			if isKeptMark(r) {
				acc = append(acc, r)
				continue
			}
			if removed != nil {
				removed[r] = struct{}{}
			}

		case r == ' ':
			if len(acc) == 0 || lastIs(isSpace) {
				continue
			}
			acc = append(acc, r)

		case r == '-':
			if lastIs(unicode.IsLetter) && nextIsLetter(i) {
				acc = append(acc, r)
			}

		case r == '\'':
			switch {
			case state == noQuoteOpen && (len(acc) == 0 || lastIs(isSpace)):
				state = quoteOpenPendingClose
				if nextIsLetter(i) {
					openings = append(openings, len(acc))
					acc = append(acc, r)
				}
			case state == quoteOpenPendingClose && !nextIsLetter(i):
				state = noQuoteOpen
			default:
				acc = append(acc, r)
			}

		default:
			acc = append(acc, r)
		}
	}

	// An unclosed quotation means the last opening apostrophe belongs to a
	// word after all ('tis, 'em).
	if state == quoteOpenPendingClose && len(openings) > 0 {
		openings = openings[:len(openings)-1]
	}
	for j := len(openings) - 1; j >= 0; j-- {
		idx := openings[j]
		acc = append(acc[:idx], acc[idx+1:]...)
	}

	cleaned := strings.TrimSpace(n.lower.String(string(acc)))
	return strings.Split(cleaned, " "), removed
}

func isSpace(r rune) bool { return r == ' ' }

// isKeptMark reports whether r is a combining mark (Mn or Mc) outside the
// musical symbol, Greek musical notation and Sutton SignWriting blocks.
func isKeptMark(r rune) bool {
	if !unicode.In(r, unicode.Mn, unicode.Mc) {
		return false
	}
	switch r >> 8 {
	case 0x1D1, 0x1D2, 0x1DA:
		return false
	}
	return true
}
