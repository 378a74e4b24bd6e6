package watch

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/zksh/internal/domain"
	"github.com/bnema/zksh/internal/ports"
)

// Printer reports every notification on the shell output and in the log.
// It holds no shell state; out must be safe for concurrent use.
type Printer struct {
	out    io.Writer
	logger *slog.Logger
}

var _ ports.EventSink = (*Printer)(nil)

func NewPrinter(out io.Writer, logger *slog.Logger) *Printer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Printer{out: out, logger: logger}
}

func (p *Printer) Notify(event domain.Event) {
	p.logger.Info("watch event",
		"type", event.Type,
		"state", event.State,
		"path", event.Path,
	)
	_, _ = fmt.Fprintf(p.out, "WATCHER:: %s\n", event)
}
