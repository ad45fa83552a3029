package spell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
)

// ErrClosed is returned by an oracle after Close.
var ErrClosed = errors.New("spell: oracle closed")

// Aspell checks words through long-running "aspell -a" processes, at most
// size per language.
type Aspell struct {
	log  *slog.Logger
	path string
	size int
	// affixes also accepts compound ("-") and affix ("+") results.
	affixes bool

	mu     sync.Mutex
	pools  map[string]*sessionPool
	closed bool
}

// NewAspell creates an aspell oracle. path is the aspell binary; size bounds
// the number of processes per language. With affixes set, compound and
// affix results count as correct too.
func NewAspell(logger *slog.Logger, path string, size int, affixes bool) *Aspell {
	if size <= 0 {
		size = 1
	}
	return &Aspell{
		log:     logger.With("component", "aspell"),
		path:    path,
		size:    size,
		affixes: affixes,
		pools:   make(map[string]*sessionPool),
	}
}

// Check asks aspell about word. A word is accepted when every word aspell
// finds on the line is reported correct ("*"). When ctx is done before
// aspell answers, the process is killed and ctx.Err() is returned.
func (a *Aspell) Check(ctx context.Context, word, lang string) (bool, error) {
	pool, err := a.pool(lang)
	if err != nil {
		return false, err
	}

	s, err := pool.acquire(ctx)
	if err != nil {
		return false, err
	}

	ok, err := s.checkContext(ctx, word, a.affixes)
	if err != nil {
		pool.discard(s)
		return false, fmt.Errorf("aspell %s: %w", lang, err)
	}
	pool.release(s)
	return ok, nil
}

// Close stops every idle aspell process.
func (a *Aspell) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	var errs []error
	for _, p := range a.pools {
		errs = append(errs, p.close())
	}
	return errors.Join(errs...)
}

func (a *Aspell) pool(lang string) (*sessionPool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, ErrClosed
	}
	p, ok := a.pools[lang]
	if !ok {
		p = newSessionPool(a.size, func() (*session, error) {
			a.log.Debug("starting aspell", slog.String("lang", lang))
			return startSession(a.path, lang)
		})
		a.pools[lang] = p
	}
	return p, nil
}

// sessionPool hands out sessions, starting new ones lazily up to max.
type sessionPool struct {
	idle  chan *session
	start func() (*session, error)

	mu      sync.Mutex
	created int
	max     int
}

func newSessionPool(max int, start func() (*session, error)) *sessionPool {
	return &sessionPool{
		idle:  make(chan *session, max),
		start: start,
		max:   max,
	}
}

func (p *sessionPool) acquire(ctx context.Context) (*session, error) {
	select {
	case s := <-p.idle:
		return s, nil
	default:
	}

	p.mu.Lock()
	if p.created < p.max {
		p.created++
		p.mu.Unlock()
		s, err := p.start()
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}
		return s, nil
	}
	p.mu.Unlock()

	select {
	case s := <-p.idle:
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *sessionPool) release(s *session) {
	p.idle <- s
}

// discard drops a broken session and frees its slot.
func (p *sessionPool) discard(s *session) {
	_ = s.close()
	p.mu.Lock()
	p.created--
	p.mu.Unlock()
}

func (p *sessionPool) close() error {
	var errs []error
	for {
		select {
		case s := <-p.idle:
			errs = append(errs, s.close())
		default:
			return errors.Join(errs...)
		}
	}
}

// session is one "aspell -a" process in ispell pipe mode.
type session struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
}

func startSession(path, lang string) (*session, error) {
	cmd := exec.Command(path, "-a", "-l", lang, "--encoding=utf-8")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("aspell stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("aspell stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start aspell: %w", err)
	}

	s := &session{cmd: cmd, stdin: stdin, stdout: bufio.NewReader(stdout)}

	// The first line is the version banner.
	banner, err := s.stdout.ReadString('\n')
	if err != nil {
		_ = s.close()
		return nil, fmt.Errorf("aspell banner (lang %q): %w", lang, err)
	}
	if !strings.HasPrefix(banner, "@(#)") {
		_ = s.close()
		return nil, fmt.Errorf("aspell banner (lang %q): unexpected %q", lang, strings.TrimSpace(banner))
	}
	return s, nil
}

// checkContext runs check, killing the process if ctx ends first.
func (s *session) checkContext(ctx context.Context, word string, affixes bool) (bool, error) {
	if ctx.Done() == nil {
		return s.check(word, affixes)
	}

	type verdict struct {
		ok  bool
		err error
	}
	done := make(chan verdict, 1)
	go func() {
		ok, err := s.check(word, affixes)
		done <- verdict{ok: ok, err: err}
	}()

	select {
	case v := <-done:
		return v.ok, v.err
	case <-ctx.Done():
		_ = s.cmd.Process.Kill()
		return false, ctx.Err()
	}
}

// check sends one line and reads the result block, which ends with an
// empty line.
func (s *session) check(word string, affixes bool) (bool, error) {
	// "^" makes aspell treat the rest of the line as text, never a command.
	if _, err := io.WriteString(s.stdin, "^"+word+"\n"); err != nil {
		return false, fmt.Errorf("write: %w", err)
	}

	results := 0
	accepted := true
	for {
		line, err := s.stdout.ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("read: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		results++
		switch line[0] {
		case '*':
		case '-', '+':
			accepted = accepted && affixes
		default:
			accepted = false
		}
	}
	return accepted && results > 0, nil
}

func (s *session) close() error {
	_ = s.stdin.Close()
	return s.cmd.Wait()
}
