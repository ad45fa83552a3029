// Package ranking turns frequency maps into ranked tables with frequency per
// million and Zipf values, optionally filtered by a spelling oracle and a
// pronunciation lookup.
package ranking

import (
	"context"
	"log/slog"
)

// spellChecker defines the spelling oracle needed by the ranking service.
// The check is case-sensitive; the service performs the case fallback.
type spellChecker interface {
	Check(ctx context.Context, word, lang string) (bool, error)
}

// PronunciationLookup resolves a word to its transcription. Transcriptions
// from several sources arrive already joined.
type PronunciationLookup interface {
	Lookup(word string) (string, bool)
}

// Service implements ranking operations.
type Service struct {
	log   *slog.Logger
	spell spellChecker
}

// NewService creates a ranking service. spell may be nil when no table is
// ever spell-checked.
func NewService(logger *slog.Logger, spell spellChecker) *Service {
	return &Service{
		log:   logger.With("service", "ranking"),
		spell: spell,
	}
}
