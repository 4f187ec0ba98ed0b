// Package console provides a callback-driven line reader over a pair of
// streams. A question writes its prompt, waits for one line of input and
// then resumes the caller through a callback.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrClosed is returned when the console was closed or the input ended
// before a line could be read.
var ErrClosed = errors.New("console: input closed")

type readResult struct {
	line string
	err  error
}

// Console reads lines from in and writes prompts to out.
type Console struct {
	in  io.Reader
	out io.Writer
	br  *bufio.Reader

	mu     sync.Mutex
	closed bool
}

// New creates a Console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  in,
		out: out,
		br:  bufio.NewReader(in),
	}
}

// Question writes prompt without a trailing newline, waits for a line and
// calls answer with it. The wait has no timeout of its own; only ctx can
// abandon it. A final line without a newline still counts as an answer.
func (c *Console) Question(ctx context.Context, prompt string, answer func(line string) error) error {
	if c.isClosed() {
		return ErrClosed
	}

	if _, err := io.WriteString(c.out, prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	results := make(chan readResult, 1)
	go func() {
		line, err := c.br.ReadString('\n')
		results <- readResult{line: line, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res = <-results:
	}

	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return fmt.Errorf("failed to read line: %w", res.err)
		}
		if res.line == "" {
			return ErrClosed
		}
	}

	line := strings.TrimSuffix(res.line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return answer(line)
}

// Close stops the console from accepting further input. The underlying
// reader is closed when it implements io.Closer.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	if closer, ok := c.in.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Console) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
