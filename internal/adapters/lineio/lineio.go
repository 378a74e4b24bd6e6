package lineio

import (
	"io"
	"os"
	"sort"

	"github.com/bnema/zksh/internal/ports"
	"golang.org/x/term"
)

const DefaultPrompt = "> "

// Input is a line source together with the writer that output, including
// asynchronous notifications, must go through.
type Input interface {
	ports.LineReader
	Output() io.Writer
}

// Open picks an interactive readline terminal when in is a TTY and a plain
// line scanner otherwise.
func Open(in io.Reader, out io.Writer, prompt string, words []string) (Input, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t, err := NewTerminal(f, out, prompt, words)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return NewScanner(in, out, prompt), nil
}

func sortedWords(words []string) []string {
	out := append([]string(nil), words...)
	sort.Strings(out)
	return out
}
