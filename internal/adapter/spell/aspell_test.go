package spell

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAspell mimics "aspell -a": a banner, then one result block per input
// line. "cat" and "Paris" are correct, "well-known" is a compound and "cats"
// an affix form of "cat". "hang" never answers.
const fakeAspell = `#!/bin/sh
echo "@(#) International Ispell Version 3.1.20 (but really Aspell 0.60.8)"
while IFS= read -r line; do
  w="${line#^}"
  case "$w" in
    cat|Paris) echo "*" ;;
    well-known) echo "-" ;;
    cats) echo "+ cat" ;;
    hang) exec sleep 30 ;;
    "") ;;
    *) echo "& $w 1 0: $w" ;;
  esac
  echo
done
`

// writeFakeAspell installs the script in a temp dir. Tests using it do not run
// in parallel: exec of a file another goroutine just wrote can hit ETXTBSY.
func writeFakeAspell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake aspell needs /bin/sh")
	}
	path := filepath.Join(t.TempDir(), "aspell")
	require.NoError(t, os.WriteFile(path, []byte(fakeAspell), 0o755))
	return path
}

func TestAspell_Check(t *testing.T) {
	path := writeFakeAspell(t)

	tests := []struct {
		word    string
		strict  bool
		affixes bool
	}{
		{word: "cat", strict: true, affixes: true},
		{word: "Paris", strict: true, affixes: true},
		{word: "paris", strict: false, affixes: false},
		{word: "well-known", strict: false, affixes: true},
		{word: "cats", strict: false, affixes: true},
		{word: "xyzzz", strict: false, affixes: false},
	}

	strict := NewAspell(testLogger(), path, 2, false)
	t.Cleanup(func() { _ = strict.Close() })
	relaxed := NewAspell(testLogger(), path, 2, true)
	t.Cleanup(func() { _ = relaxed.Close() })
	ctx := context.Background()

	for _, tt := range tests {
		got, err := strict.Check(ctx, tt.word, "en")
		require.NoError(t, err, tt.word)
		assert.Equal(t, tt.strict, got, "strict %s", tt.word)

		got, err = relaxed.Check(ctx, tt.word, "en")
		require.NoError(t, err, tt.word)
		assert.Equal(t, tt.affixes, got, "affixes %s", tt.word)
	}
}

func TestAspell_CheckCancelled(t *testing.T) {
	a := NewAspell(testLogger(), writeFakeAspell(t), 1, false)
	t.Cleanup(func() { _ = a.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := a.Check(ctx, "hang", "en")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second)

	// The killed session is replaced on the next call.
	ok, err := a.Check(context.Background(), "cat", "en")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAspell_ConcurrentSessions(t *testing.T) {
	a := NewAspell(testLogger(), writeFakeAspell(t), 3, false)
	t.Cleanup(func() { _ = a.Close() })

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			word := "cat"
			if i%2 == 1 {
				word = "dog"
			}
			ok, err := a.Check(context.Background(), word, "en")
			if err != nil {
				errs <- err
				return
			}
			if ok != (word == "cat") {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
	assert.LessOrEqual(t, a.pools["en"].created, 3)
}

func TestAspell_MissingBinary(t *testing.T) {
	a := NewAspell(testLogger(), filepath.Join(t.TempDir(), "no-aspell"), 1, false)
	_, err := a.Check(context.Background(), "cat", "en")
	require.Error(t, err)
}

func TestAspell_Closed(t *testing.T) {
	a := NewAspell(testLogger(), writeFakeAspell(t), 1, false)
	_, err := a.Check(context.Background(), "cat", "en")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	_, err = a.Check(context.Background(), "cat", "en")
	require.ErrorIs(t, err, ErrClosed)
}
