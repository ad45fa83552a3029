package spell

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/subfreq/internal/domain"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWordlist_Hunspell(t *testing.T) {
	t.Parallel()

	w := NewWordlist(testLogger(), testdataDir(t))
	ctx := context.Background()

	tests := []struct {
		word string
		want bool
	}{
		{word: "cat", want: true},
		{word: "Cat", want: false},
		{word: "Paris", want: true},
		{word: "paris", want: false},
		{word: "'em", want: true},
		{word: "3", want: false},
		{word: "cat/S", want: false},
	}
	for _, tt := range tests {
		got, err := w.Check(ctx, tt.word, "en")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.word)
	}
}

func TestWordlist_PlainText(t *testing.T) {
	t.Parallel()

	w := NewWordlist(testLogger(), testdataDir(t))

	ok, err := w.Check(context.Background(), "merci", "fr")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = w.Check(context.Background(), "# comment", "fr")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWordlist_MissingLanguage(t *testing.T) {
	t.Parallel()

	_, err := NewWordlist(testLogger(), testdataDir(t)).Check(context.Background(), "hola", "es")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
