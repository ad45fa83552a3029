package pronunciation

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// parseWikiPron reads "word<TAB>transcription" lines. Lines without a tab or
// with an empty field are skipped.
func parseWikiPron(r io.Reader, add func(word, ipa string)) (ParseStats, error) {
	var stats ParseStats
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		stats.TotalLines++
		word, ipa, ok := strings.Cut(strings.TrimSuffix(sc.Text(), "\r"), "\t")
		if !ok {
			continue
		}
		// Extra columns (WikiPron with frequencies) are ignored.
		ipa, _, _ = strings.Cut(ipa, "\t")
		word, ipa = strings.TrimSpace(word), strings.TrimSpace(ipa)
		if word == "" || ipa == "" {
			continue
		}
		stats.ParsedLines++
		add(word, ipa)
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("scanner error: %w", err)
	}
	return stats, nil
}
