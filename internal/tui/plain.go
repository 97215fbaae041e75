package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"advanced-ai/internal/conversation"
	"advanced-ai/internal/models"
)

// RunPlain drives the controller from a line-oriented reader, for pipes and
// dumb terminals. Each non-blank line is submitted and the resulting message
// is printed once the relay call resolves.
func RunPlain(ctx context.Context, ctrl *conversation.Controller, in io.Reader, out io.Writer) error {
	printer := newLinePrinter(out)

	state := ctrl.State()
	for _, m := range state.Messages {
		printer.print(m)
	}
	seen := len(state.Messages)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		done, ok := ctrl.Submit(ctx, line)
		if !ok {
			continue
		}

		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}

		// Only the messages added by this turn, minus the user's own echo.
		msgs := ctrl.State().Messages
		for _, m := range msgs[min(seen, len(msgs)):] {
			if m.Sender == models.SenderUser {
				continue
			}
			printer.print(m)
		}
		seen = len(msgs)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

type linePrinter struct {
	out    io.Writer
	ai     *color.Color
	system *color.Color
	user   *color.Color
}

func newLinePrinter(out io.Writer) *linePrinter {
	return &linePrinter{
		out:    out,
		ai:     color.New(color.FgCyan),
		system: color.New(color.FgYellow),
		user:   color.New(color.FgGreen, color.Bold),
	}
}

func (p *linePrinter) print(m models.Message) {
	c := p.ai
	switch m.Sender {
	case models.SenderSystem:
		c = p.system
	case models.SenderUser:
		c = p.user
	}
	c.Fprintf(p.out, "%s: ", strings.ToUpper(string(m.Sender)))
	fmt.Fprintln(p.out, m.Text)
}
