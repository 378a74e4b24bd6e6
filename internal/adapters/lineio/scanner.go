package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/zksh/internal/domain"
)

// MaxLineSize bounds one piped input line. ZooKeeper rejects node data
// above 1 MiB by default, so a full command always fits.
const MaxLineSize = 4 << 20

type Scanner struct {
	reader  *bufio.Reader
	out     *SyncWriter
	prompt  string
	maxLine int
}

func NewScanner(in io.Reader, out io.Writer, prompt string) *Scanner {
	return &Scanner{
		reader:  bufio.NewReader(in),
		out:     NewSyncWriter(out),
		prompt:  prompt,
		maxLine: MaxLineSize,
	}
}

// ReadLine returns domain.ErrLineTooLong for a line above the limit after
// discarding it, so the next call starts on the following line.
func (s *Scanner) ReadLine() (string, error) {
	if _, err := fmt.Fprint(s.out, s.prompt); err != nil {
		return "", err
	}

	var (
		line    []byte
		size    int
		tooLong bool
	)
	for {
		chunk, err := s.reader.ReadSlice('\n')
		size += len(chunk)
		if size > s.maxLine+2 {
			tooLong = true
			line = nil
		} else {
			line = append(line, chunk...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if size == 0 {
				return "", io.EOF
			}
			break
		}
		if err != nil {
			return "", err
		}
		break
	}

	text := strings.TrimSuffix(strings.TrimSuffix(string(line), "\n"), "\r")
	if tooLong || len(text) > s.maxLine {
		return "", fmt.Errorf("%w: more than %d bytes", domain.ErrLineTooLong, s.maxLine)
	}
	return text, nil
}

func (s *Scanner) Output() io.Writer {
	return s.out
}

func (s *Scanner) Close() error {
	return nil
}

// SyncWriter serialises writes from the read loop and watch notifications.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewSyncWriter(w io.Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

func (s *SyncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
