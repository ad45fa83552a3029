package corpus

import (
	"sort"
	"strings"

	"github.com/heartmarshall/subfreq/internal/domain"
)

const (
	wordStart = "^"
	wordEnd   = "$"
)

// Options selects which tables the aggregator fills besides words.
type Options struct {
	CountCharacters bool
	CountBigrams    bool
	CollectRemoved  bool
	ComposeNFC      bool
}

// Counts is the result of aggregating a corpus.
type Counts struct {
	Words      domain.FrequencyMap
	Characters domain.FrequencyMap // nil unless Options.CountCharacters
	Bigrams    domain.FrequencyMap // nil unless Options.CountBigrams
	Removed    map[rune]struct{}   // nil unless Options.CollectRemoved
	Lines      int
}

// RemovedList returns the removed characters as sorted strings.
func (c Counts) RemovedList() []string {
	out := make([]string, 0, len(c.Removed))
	for r := range c.Removed {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

// Aggregator counts tokens line by line. The zero value is not usable; create
// one with NewAggregator.
type Aggregator struct {
	opts       Options
	normalizer *Normalizer
	counts     Counts
}

// NewAggregator creates an empty Aggregator.
func NewAggregator(opts Options) *Aggregator {
	var nopts []NormalizerOption
	if opts.CollectRemoved {
		nopts = append(nopts, WithRemovedChars())
	}
	if opts.ComposeNFC {
		nopts = append(nopts, WithNFC())
	}

	a := &Aggregator{
		opts:       opts,
		normalizer: NewNormalizer(nopts...),
		counts:     Counts{Words: make(domain.FrequencyMap)},
	}
	if opts.CountCharacters {
		a.counts.Characters = make(domain.FrequencyMap)
	}
	if opts.CountBigrams {
		a.counts.Bigrams = make(domain.FrequencyMap)
	}
	if opts.CollectRemoved {
		a.counts.Removed = make(map[rune]struct{})
	}
	return a
}

// Add normalizes one line and counts its tokens.
func (a *Aggregator) Add(line string) {
	a.counts.Lines++
	tokens, removed := a.normalizer.Normalize(line)
	for r := range removed {
		a.counts.Removed[r] = struct{}{}
	}

	for _, token := range tokens {
		if token == "" {
			continue
		}
		a.counts.Words[token]++

		if a.opts.CountCharacters {
			for _, r := range token {
				if r == ' ' || r == '-' || r == '\'' {
					continue
				}
				a.counts.Characters[string(r)]++
			}
		}
		if a.opts.CountBigrams {
			for _, bg := range Bigrams(token) {
				a.counts.Bigrams[bg]++
			}
		}
	}
}

// Counts returns the accumulated tables. The maps are shared with the
// aggregator; stop calling Add before using them.
func (a *Aggregator) Counts() Counts {
	return a.counts
}

// Aggregate counts every line of a corpus in one pass.
func Aggregate(lines []string, opts Options) Counts {
	a := NewAggregator(opts)
	for _, line := range lines {
		a.Add(line)
	}
	return a.Counts()
}

// Bigrams returns every overlapping pair of code points of the token wrapped
// in the start and end markers: "cat" gives ^c, ca, at, t$.
func Bigrams(token string) []string {
	runes := []rune(wordStart + token + wordEnd)
	out := make([]string, 0, len(runes)-1)
	var b strings.Builder
	for i := 0; i+1 < len(runes); i++ {
		b.Reset()
		b.WriteRune(runes[i])
		b.WriteRune(runes[i+1])
		out = append(out, b.String())
	}
	return out
}
