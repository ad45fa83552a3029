// Package pronunciation loads IPA transcriptions from WikiPron TSV files and
// the CMU Pronouncing Dictionary and answers word lookups.
package pronunciation

import "strings"

// Separator joins distinct transcriptions of one word.
const Separator = "  |  "

// Dictionary maps words to their transcriptions. Lookups are safe for
// concurrent use once loading is done.
type Dictionary struct {
	entries map[string][]string
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string][]string)}
}

// Add records a transcription for word. Repeated transcriptions are ignored.
func (d *Dictionary) Add(word, ipa string) {
	for _, existing := range d.entries[word] {
		if existing == ipa {
			return
		}
	}
	d.entries[word] = append(d.entries[word], ipa)
}

// Lookup returns the transcriptions of word in insertion order, joined with
// Separator.
func (d *Dictionary) Lookup(word string) (string, bool) {
	ipas, ok := d.entries[word]
	if !ok {
		return "", false
	}
	return strings.Join(ipas, Separator), true
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.entries) }
