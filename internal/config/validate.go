package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/subfreq/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration and
// parses derived fields. Load calls it automatically.
func (c *Config) Validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	formats, err := ParseFormats(c.Export.FormatsRaw)
	if err != nil {
		add("export.formats", "%v", err)
	}
	c.Export.Formats = formats
	if c.Export.XLSXMaxRows <= 0 {
		add("export.xlsx_max_rows", "must be > 0 (got %d)", c.Export.XLSXMaxRows)
	}
	if c.Export.Has(FormatPostgres) && c.Database.DSN == "" {
		add("database.dsn", "required for the %s export format", FormatPostgres)
	}

	if c.Spell.Enabled {
		switch c.Spell.Backend {
		case SpellBackendAspell:
		case SpellBackendWordlist:
			if c.Spell.WordlistDir == "" {
				add("spell.wordlist_dir", "required for the %s backend", SpellBackendWordlist)
			}
		default:
			add("spell.backend", "unknown backend %q", c.Spell.Backend)
		}
		if c.Spell.Workers <= 0 {
			add("spell.workers", "must be > 0 (got %d)", c.Spell.Workers)
		}
		if c.Spell.CacheSize <= 0 {
			add("spell.cache_size", "must be > 0 (got %d)", c.Spell.CacheSize)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RequireCorpus reports a validation error when no corpus path is set.
// Only the build command needs one.
func (c *Config) RequireCorpus() error {
	if strings.TrimSpace(c.Corpus.Path) == "" {
		return domain.NewValidationError("corpus.path", "required")
	}
	return nil
}

// RequireDatabase reports a validation error when no DSN is set.
func (c *Config) RequireDatabase() error {
	if c.Database.DSN == "" {
		return domain.NewValidationError("database.dsn", "required")
	}
	return nil
}

// ParseFormats parses a "|" or "," separated list of export formats
// (e.g. "txt|xlsx"). Duplicates are dropped; an empty list is an error.
func ParseFormats(raw string) ([]string, error) {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == '|' || r == ',' })

	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || slices.Contains(formats, p) {
			continue
		}
		if !slices.Contains(KnownFormats, p) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, p)
		}
		formats = append(formats, p)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("at least one format is required")
	}
	return formats, nil
}
