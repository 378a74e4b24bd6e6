package lineio

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// Terminal reads lines with editing and in-memory history. Nothing is
// written to disk.
type Terminal struct {
	rl *readline.Instance
}

func NewTerminal(in io.ReadCloser, out io.Writer, prompt string, words []string) (*Terminal, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(words))
	for _, word := range sortedWords(words) {
		items = append(items, readline.PcItem(word))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		Stdin:           in,
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		AutoComplete:    readline.NewPrefixCompleter(items...),
	})
	if err != nil {
		return nil, err
	}

	return &Terminal{rl: rl}, nil
}

// ReadLine discards the pending line on interrupt and reports io.EOF at end
// of input.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

// Output redraws the prompt after anything printed while a read is pending.
func (t *Terminal) Output() io.Writer {
	return t.rl.Stdout()
}

func (t *Terminal) Close() error {
	return t.rl.Close()
}
