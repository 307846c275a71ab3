package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reclaimer/pkg/domain/interfaces"
)

// Gate asks yes/no questions on a terminal
type Gate struct {
	in  *bufio.Reader
	out io.Writer
}

var _ interfaces.Confirmer = (*Gate)(nil)

// New creates a Gate reading answers from in and writing prompts to out.
// nil values default to os.Stdin and os.Stderr.
func New(in io.Reader, out io.Writer) *Gate {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &Gate{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm writes message and waits for one line of input. Only "y" or "yes"
// is an approval; anything else, including EOF, is a decline.
func (g *Gate) Confirm(ctx context.Context, message string) (bool, error) {
	if _, err := fmt.Fprintf(g.out, "%s ", message); err != nil {
		return false, goerr.Wrap(err, "failed to write confirmation prompt")
	}

	answer := make(chan string, 1)
	go func() {
		line, _ := g.in.ReadString('\n')
		answer <- line
	}()

	select {
	case <-ctx.Done():
		return false, goerr.Wrap(ctx.Err(), "confirmation interrupted")
	case line := <-answer:
		return isApproval(line), nil
	}
}

func isApproval(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
