package countdown

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/exercicios/internal/console"
	"github.com/vk/exercicios/internal/ctxlog"
)

// Questioner asks a single question and hands the answer to a callback.
type Questioner interface {
	Question(ctx context.Context, prompt string, answer func(line string) error) error
	Close() error
}

// Program wires the prompt, the console read and the countdown together.
type Program struct {
	Console Questioner
	Out     io.Writer
	Prompt  string
}

// NewProgram returns a Program using the default prompt.
func NewProgram(c Questioner, out io.Writer) *Program {
	return &Program{Console: c, Out: out, Prompt: Prompt}
}

// Run asks for the start value, counts down once it arrives and closes the
// console. An input stream that ends before any data is not an error.
func (p *Program) Run(ctx context.Context) (err error) {
	logger := ctxlog.FromContext(ctx)

	defer func() {
		if cerr := p.Console.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close console: %w", cerr)
		}
	}()

	err = p.Console.Question(ctx, p.Prompt, func(line string) error {
		start := Parse(line)
		logger.Debug("Countdown start parsed.", "input", line, "start", start.String())

		n, err := Count(p.Out, start)
		if err != nil {
			return err
		}
		if n == 0 {
			logger.Info("Countdown printed nothing.", "start", start.String())
		}
		logger.Debug("Countdown finished.", "lines", n)
		return nil
	})
	if errors.Is(err, console.ErrClosed) {
		logger.Debug("Input closed before a line was read.")
		return nil
	}
	return err
}
