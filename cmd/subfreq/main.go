// Command subfreq builds word, character and bigram frequency tables from
// subtitle corpora.
//
// Usage:
//
//	subfreq build -f opensubs/en.txt.gz [-x txt|xlsx] [-i IPA_DIR] [-c] [-b] [-s] [--spell]
//	subfreq migrate
//	subfreq runs [--language en]
//	subfreq languages
//	subfreq version
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("subfreq failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
