package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/subfreq/internal/domain"
)

// Pronunciation source formats.
const (
	SourceWikiPron = "wikipron"
	SourceCMU      = "cmu"
)

//go:embed languages.yaml
var embeddedLanguages []byte

// PronunciationSource is one pronunciation file of a language.
type PronunciationSource struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

// Language is one catalog entry.
type Language struct {
	Code          string                `yaml:"code"`
	Name          string                `yaml:"name"`
	Spell         string                `yaml:"spell"`
	Pronunciation []PronunciationSource `yaml:"pronunciation"`
}

// SpellCode returns the spelling dictionary code of the language.
func (l Language) SpellCode() string {
	if l.Spell != "" {
		return l.Spell
	}
	return l.Code
}

// HasPronunciation reports whether the language has at least one source.
func (l Language) HasPronunciation() bool { return len(l.Pronunciation) > 0 }

// Catalog is the immutable language table. Build it with LoadCatalog or
// ParseCatalog; it is safe for concurrent reads.
type Catalog struct {
	languages []Language
	byCode    map[string]int
	byName    map[string]int
}

type catalogFile struct {
	Languages []Language `yaml:"languages"`
}

// LoadCatalog reads the catalog from path, or the embedded one when path is
// empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := embeddedLanguages
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	c := &Catalog{
		languages: file.Languages,
		byCode:    make(map[string]int, len(file.Languages)),
		byName:    make(map[string]int, len(file.Languages)),
	}

	var errs []domain.FieldError
	for i := range c.languages {
		lang := &c.languages[i]
		field := fmt.Sprintf("languages[%d]", i)

		if lang.Code == "" || lang.Name == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "code and name are required"})
			continue
		}
		if _, dup := c.byCode[lang.Code]; dup {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("duplicate code %q", lang.Code)})
		}
		if _, dup := c.byName[lang.Name]; dup {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("duplicate name %q", lang.Name)})
		}
		c.byCode[lang.Code] = i
		c.byName[lang.Name] = i

		for j := range lang.Pronunciation {
			src := &lang.Pronunciation[j]
			if src.Format == "" {
				src.Format = SourceWikiPron
			}
			if src.File == "" {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s.pronunciation[%d]", field, j), Message: "file is required"})
			}
			if src.Format != SourceWikiPron && src.Format != SourceCMU {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s.pronunciation[%d]", field, j),
					Message: fmt.Sprintf("unknown format %q", src.Format),
				})
			}
		}
	}
	if len(c.languages) == 0 {
		errs = append(errs, domain.FieldError{Field: "languages", Message: "at least one language is required"})
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog: %w", domain.NewValidationErrors(errs))
	}
	return c, nil
}

// ByCode returns the language with the given code.
func (c *Catalog) ByCode(code string) (Language, error) {
	i, ok := c.byCode[code]
	if !ok {
		return Language{}, fmt.Errorf("language code %q: %w", code, domain.ErrNotSupported)
	}
	return c.languages[i], nil
}

// ByName returns the language with the given full name.
func (c *Catalog) ByName(name string) (Language, error) {
	i, ok := c.byName[name]
	if !ok {
		return Language{}, fmt.Errorf("language %q: %w", name, domain.ErrNotSupported)
	}
	return c.languages[i], nil
}

// Languages returns a copy of all entries in catalog order.
func (c *Catalog) Languages() []Language {
	out := make([]Language, len(c.languages))
	copy(out, c.languages)
	return out
}

// InferLanguageCode returns the corpus file name up to its first dot:
// "opensubs/br.txt.gz" gives "br".
func InferLanguageCode(corpusPath string) string {
	base := filepath.Base(corpusPath)
	code, _, _ := strings.Cut(base, ".")
	return code
}
