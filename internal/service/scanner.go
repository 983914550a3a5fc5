package service

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// lineScanner reads one newline-terminated payload per Acquire call. USB
// barcode scanners act as keyboards and terminate every decode with enter,
// so a line is exactly one scan.
type lineScanner struct {
	mu     sync.Mutex
	reader *bufio.Reader
}

// NewLineScanner wraps r, typically the terminal's standard input.
func NewLineScanner(r io.Reader) Scanner {
	return &lineScanner{reader: bufio.NewReader(r)}
}

func (s *lineScanner) Acquire(ctx context.Context) (string, error) {
	type decode struct {
		line string
		err  error
	}

	ch := make(chan decode, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		line, err := s.reader.ReadString('\n')
		ch <- decode{line: strings.TrimRight(line, "\r\n"), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.err != nil && res.line == "" {
			return "", res.err
		}
		return res.line, nil
	}
}
