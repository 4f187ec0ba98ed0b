package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_WritesPromptAndAnswers(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("hello world\nignored\n"), &out)

	var got string
	err := c.Question(context.Background(), "Name: ", func(line string) error {
		got = line
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "Name: ", out.String())
	assert.Equal(t, "hello world", got)
}

func TestQuestion_TrimsCRLF(t *testing.T) {
	c := New(strings.NewReader("42\r\n"), io.Discard)

	var got string
	require.NoError(t, c.Question(context.Background(), "", func(line string) error {
		got = line
		return nil
	}))
	assert.Equal(t, "42", got)
}

func TestQuestion_LastLineWithoutNewline(t *testing.T) {
	c := New(strings.NewReader("7"), io.Discard)

	var got string
	require.NoError(t, c.Question(context.Background(), "", func(line string) error {
		got = line
		return nil
	}))
	assert.Equal(t, "7", got)
}

func TestQuestion_EmptyInputSkipsCallback(t *testing.T) {
	c := New(strings.NewReader(""), io.Discard)

	called := false
	err := c.Question(context.Background(), "", func(string) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, called)
}

func TestQuestion_PropagatesCallbackError(t *testing.T) {
	c := New(strings.NewReader("x\n"), io.Discard)
	boom := errors.New("boom")

	err := c.Question(context.Background(), "", func(string) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestQuestion_WaitsForInput(t *testing.T) {
	pr, pw := io.Pipe()
	c := New(pr, io.Discard)

	answered := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- c.Question(context.Background(), "", func(line string) error {
			answered <- line
			return nil
		})
	}()

	select {
	case <-answered:
		t.Fatal("callback ran before any input arrived")
	case <-time.After(50 * time.Millisecond):
	}

	_, err := io.WriteString(pw, "3\n")
	require.NoError(t, err)

	require.NoError(t, <-done)
	assert.Equal(t, "3", <-answered)
}

func TestQuestion_ContextCancelled(t *testing.T) {
	pr, _ := io.Pipe()
	c := New(pr, io.Discard)
	t.Cleanup(func() { _ = pr.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Question(ctx, "", func(string) error {
		t.Error("callback must not run")
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type trackingReader struct {
	io.Reader
	closes int
}

func (r *trackingReader) Close() error {
	r.closes++
	return nil
}

func TestClose(t *testing.T) {
	in := &trackingReader{Reader: strings.NewReader("1\n")}
	var out bytes.Buffer
	c := New(in, &out)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, in.closes, "the underlying reader is closed once")

	err := c.Question(context.Background(), "prompt", func(string) error { return nil })
	assert.ErrorIs(t, err, ErrClosed)
	assert.Empty(t, out.String(), "a closed console writes no prompt")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestQuestion_PromptWriteError(t *testing.T) {
	c := New(strings.NewReader("1\n"), failingWriter{})
	err := c.Question(context.Background(), "x", func(string) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write prompt")
}
