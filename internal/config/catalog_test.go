package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/subfreq/internal/domain"
)

func TestLoadCatalog_Embedded(t *testing.T) {
	t.Parallel()

	cat, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, cat.Languages(), 52)

	en, err := cat.ByCode("en")
	require.NoError(t, err)
	assert.Equal(t, "english", en.Name)
	assert.Equal(t, "en", en.SpellCode())
	require.Len(t, en.Pronunciation, 1)
	assert.Equal(t, PronunciationSource{File: "eng_latn_us_broad.tsv", Format: SourceWikiPron}, en.Pronunciation[0])

	sr, err := cat.ByName("serbian")
	require.NoError(t, err)
	assert.Equal(t, "sr", sr.Code)
	assert.Len(t, sr.Pronunciation, 2)

	ptBR, err := cat.ByCode("pt_br")
	require.NoError(t, err)
	assert.Equal(t, "pt_BR", ptBR.SpellCode())
}

func TestCatalog_Unknown(t *testing.T) {
	t.Parallel()

	cat, err := LoadCatalog("")
	require.NoError(t, err)

	_, err = cat.ByCode("xx")
	assert.ErrorIs(t, err, domain.ErrNotSupported)

	_, err = cat.ByName("klingon")
	assert.ErrorIs(t, err, domain.ErrNotSupported)
}

func TestLoadCatalog_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "languages.yaml")
	data := `
languages:
  - code: en
    name: english
    pronunciation:
      - file: cmudict.dict
        format: cmu
      - file: eng_latn_us_broad.tsv
  - code: xx
    name: nolang
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)

	en, err := cat.ByCode("en")
	require.NoError(t, err)
	assert.Equal(t, SourceCMU, en.Pronunciation[0].Format)
	assert.Equal(t, SourceWikiPron, en.Pronunciation[1].Format)

	xx, err := cat.ByCode("xx")
	require.NoError(t, err)
	assert.False(t, xx.HasPronunciation())
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseCatalog_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: "languages: []"},
		{name: "missing name", data: "languages:\n  - code: en\n"},
		{name: "duplicate code", data: "languages:\n  - {code: en, name: english}\n  - {code: en, name: other}\n"},
		{name: "duplicate name", data: "languages:\n  - {code: en, name: english}\n  - {code: eg, name: english}\n"},
		{name: "unknown source format", data: "languages:\n  - code: en\n    name: english\n    pronunciation:\n      - {file: a.txt, format: xml}\n"},
		{name: "source without file", data: "languages:\n  - code: en\n    name: english\n    pronunciation:\n      - {format: cmu}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseCatalog([]byte(tt.data))
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := ParseCatalog([]byte("{{{"))
	assert.Error(t, err)
}

func TestInferLanguageCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "opensubs/br.txt.gz", want: "br"},
		{path: "pt_br.txt.gz", want: "pt_br"},
		{path: "/data/en.srt", want: "en"},
		{path: "de", want: "de"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferLanguageCode(tt.path), tt.path)
	}
}
