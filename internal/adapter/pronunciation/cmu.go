package pronunciation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// arpabetMap maps ARPAbet phonemes (without stress markers) to IPA symbols.
var arpabetMap = map[string]string{
	"AA": "ɑ",
	"AE": "æ",
	"AH": "ʌ",
	"AO": "ɔ",
	"AW": "aʊ",
	"AY": "aɪ",
	"B":  "b",
	"CH": "tʃ",
	"D":  "d",
	"DH": "ð",
	"EH": "ɛ",
	"ER": "ɝ",
	"EY": "eɪ",
	"F":  "f",
	"G":  "ɡ",
	"HH": "h",
	"IH": "ɪ",
	"IY": "i",
	"JH": "dʒ",
	"K":  "k",
	"L":  "l",
	"M":  "m",
	"N":  "n",
	"NG": "ŋ",
	"OW": "oʊ",
	"OY": "ɔɪ",
	"P":  "p",
	"R":  "ɹ",
	"S":  "s",
	"SH": "ʃ",
	"T":  "t",
	"TH": "θ",
	"UH": "ʊ",
	"UW": "u",
	"V":  "v",
	"W":  "w",
	"Y":  "j",
	"Z":  "z",
	"ZH": "ʒ",
}

// parseCMU reads CMU dict lines ("WORD  PH1 PH2", "word(2) PH1 PH2 # note").
// Words are lower-cased; variants of a word become separate transcriptions.
func parseCMU(r io.Reader, add func(word, ipa string)) (ParseStats, error) {
	var stats ParseStats
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		stats.TotalLines++
		line := sc.Text()

		word, ipa, err := parseCMULine(line)
		if errors.Is(err, errSkipLine) {
			if strings.HasPrefix(line, ";;;") {
				stats.CommentLines++
			}
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

// parseCMULine returns the lower-cased word without its variant suffix and
// the space-separated IPA segments, or errSkipLine.
func parseCMULine(line string) (string, string, error) {
	if line == "" || strings.HasPrefix(line, ";;;") {
		return "", "", errSkipLine
	}
	if i := strings.Index(line, " #"); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", "", errSkipLine
	}

	word := strings.ToLower(stripVariant(fields[0]))
	ipa := phonemesToIPA(fields[1:])
	if word == "" || ipa == "" {
		return "", "", errSkipLine
	}
	return word, ipa, nil
}

// stripVariant turns "HOUSE(2)" into "HOUSE".
func stripVariant(raw string) string {
	if i := strings.IndexByte(raw, '('); i > 0 && strings.HasSuffix(raw, ")") {
		return raw[:i]
	}
	return raw
}

// stripStress removes the trailing stress marker (0, 1, 2) from an ARPAbet phoneme.
func stripStress(phoneme string) string {
	if len(phoneme) == 0 {
		return phoneme
	}
	last := phoneme[len(phoneme)-1]
	if last == '0' || last == '1' || last == '2' {
		return phoneme[:len(phoneme)-1]
	}
	return phoneme
}

// phonemesToIPA converts ARPAbet phonemes to space-separated IPA segments,
// the layout WikiPron uses. Unknown phonemes are dropped.
func phonemesToIPA(phonemes []string) string {
	segments := make([]string, 0, len(phonemes))
	for _, p := range phonemes {
		if ipa, ok := arpabetMap[stripStress(p)]; ok {
			segments = append(segments, ipa)
		}
	}
	return strings.Join(segments, " ")
}
