package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/muesli/cancelreader"
)

// KeySource delivers single key presses to the input listener.
type KeySource interface {
	// Poll waits up to timeout for one key. It reports false when no key
	// arrived in time. Poll returns io.EOF once the source is exhausted and
	// ctx.Err() when ctx is done.
	Poll(ctx context.Context, timeout time.Duration) (rune, bool, error)
}

// KeyReader turns a byte stream into key presses. A background goroutine
// decodes runes into a channel; Close cancels the pending read so the
// goroutine can exit.
type KeyReader struct {
	in   cancelreader.CancelReader
	keys chan rune
	done chan struct{}

	mu  sync.Mutex
	err error

	closeOnce sync.Once
	closeErr  error
}

// NewKeyReader starts reading keys from r.
func NewKeyReader(r io.Reader) (*KeyReader, error) {
	in, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("console: open input: %w", err)
	}
	k := &KeyReader{
		in:   in,
		keys: make(chan rune),
		done: make(chan struct{}),
	}
	go k.read()
	return k, nil
}

func (k *KeyReader) read() {
	defer close(k.keys)
	br := bufio.NewReader(k.in)
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, cancelreader.ErrCanceled) {
				k.mu.Lock()
				k.err = err
				k.mu.Unlock()
			}
			return
		}
		select {
		case k.keys <- r:
		case <-k.done:
			return
		}
	}
}

// Poll implements KeySource.
func (k *KeyReader) Poll(ctx context.Context, timeout time.Duration) (rune, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r, ok := <-k.keys:
		if !ok {
			k.mu.Lock()
			defer k.mu.Unlock()
			if k.err != nil {
				return 0, false, k.err
			}
			return 0, false, io.EOF
		}
		return r, true, nil
	case <-timer.C:
		return 0, false, nil
	case <-ctx.Done():
		return 0, false, ctx.Err()
	}
}

// Close stops the reader. It is safe to call more than once.
func (k *KeyReader) Close() error {
	k.closeOnce.Do(func() {
		close(k.done)
		k.in.Cancel()
		k.closeErr = k.in.Close()
	})
	return k.closeErr
}
