package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/rdsctl/rdsctl/internal/adapter"
)

// TerminalConfirmer asks for approval on the terminal. It refuses with
// adapter.ErrNotInteractive when stdin is not a terminal.
type TerminalConfirmer struct {
	In          io.Reader
	Out         io.Writer
	Interactive func() bool
}

// NewTerminalConfirmer returns a confirmer that prompts on out and reads
// the answer from in. It only prompts when the process stdin is a terminal.
func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{
		In:          in,
		Out:         out,
		Interactive: stdinIsTerminal,
	}
}

// Confirm implements adapter.Confirmer. With a context that can never be
// canceled the answer is read on the calling goroutine. Otherwise the read
// runs in its own goroutine, which stays blocked on In after cancellation
// until a line arrives or In is closed.
func (c *TerminalConfirmer) Confirm(ctx context.Context, prompt adapter.Prompt) (bool, error) {
	if c.Interactive == nil || !c.Interactive() {
		return false, adapter.ErrNotInteractive
	}

	fmt.Fprintf(c.Out, "Confirm\nAre you sure you want to perform this action?\n%s\n[Y] Yes  [N] No (default is \"N\"): ", prompt)

	if ctx.Done() == nil {
		return approved(c.readLine()), nil
	}

	answer := make(chan string, 1)
	go func() {
		answer <- c.readLine()
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(c.Out)
		return false, ctx.Err()
	case line := <-answer:
		return approved(line), nil
	}
}

func (c *TerminalConfirmer) readLine() string {
	line, _ := bufio.NewReader(c.In).ReadString('\n')
	return line
}

func approved(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
