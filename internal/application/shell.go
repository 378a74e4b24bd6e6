package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/zksh/internal/domain"
	"github.com/bnema/zksh/internal/ports"
)

// Shell is the blocking read-dispatch loop. Nothing it runs ends the loop
// except end of input or a cancelled context.
type Shell struct {
	reader     ports.LineReader
	dispatcher *Dispatcher
	conn       *ConnectionManager
	logger     *slog.Logger
}

func NewShell(reader ports.LineReader, dispatcher *Dispatcher, conn *ConnectionManager, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Shell{
		reader:     reader,
		dispatcher: dispatcher,
		conn:       conn,
		logger:     logger,
	}
}

// Run connects to hosts when given, then serves lines until input ends or
// ctx is cancelled. Both are a normal end of the session.
func (s *Shell) Run(ctx context.Context, hosts string) error {
	defer s.shutdown(context.WithoutCancel(ctx))

	if hosts != "" {
		s.dispatcher.Connect(ctx, hosts)
	}

	for {
		if ctx.Err() != nil {
			s.logger.DebugContext(ctx, "shell stopped", "reason", context.Cause(ctx))
			return nil
		}

		line, err := s.readLine(ctx)
		switch {
		case err == nil:
			s.dispatcher.Dispatch(ctx, line)
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, domain.ErrLineTooLong):
			s.dispatcher.Report(ctx, err)
		case ctx.Err() != nil:
			s.logger.DebugContext(ctx, "shell stopped", "reason", context.Cause(ctx))
			return nil
		default:
			return fmt.Errorf("read line: %w", err)
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLine issues exactly one read so the prompt is never shown ahead of
// the previous command's output. The pending read is abandoned on cancel.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	done := make(chan readResult, 1)
	go func() {
		line, err := s.reader.ReadLine()
		done <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.line, res.err
	}
}

func (s *Shell) shutdown(ctx context.Context) {
	if s.conn.Connected() {
		if err := s.conn.Disconnect(ctx); err != nil {
			s.logger.WarnContext(ctx, "close session on exit", "error", err)
		}
	}
	if err := s.reader.Close(); err != nil {
		s.logger.DebugContext(ctx, "close line reader", "error", err)
	}
}
