package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bnema/zksh/internal/domain"
	"github.com/bnema/zksh/internal/ports"
)

type Dispatcher struct {
	conn       *ConnectionManager
	help       ports.HelpRegistry
	renderStat ports.StatRenderer
	acl        []domain.ACL
	out        io.Writer
	logger     *slog.Logger
}

type DispatcherOptions struct {
	Help       ports.HelpRegistry
	RenderStat ports.StatRenderer
	Logger     *slog.Logger
}

func NewDispatcher(conn *ConnectionManager, out io.Writer, opts DispatcherOptions) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	renderStat := opts.RenderStat
	if renderStat == nil {
		renderStat = func(stat domain.Stat) string { return fmt.Sprintf("%+v", stat) }
	}

	return &Dispatcher{
		conn:       conn,
		help:       opts.Help,
		renderStat: renderStat,
		acl:        domain.OpenACLUnsafe,
		out:        out,
		logger:     logger,
	}
}

// Dispatch runs one input line and prints either its result or its error.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) {
	if err := d.Execute(ctx, line); err != nil {
		d.logger.DebugContext(ctx, "command failed", "line", line, "error", err)
		d.println(RenderError(err))
	}
}

// Report prints a failure raised outside a command, such as an unreadable line.
func (d *Dispatcher) Report(ctx context.Context, err error) {
	d.logger.DebugContext(ctx, "input rejected", "error", err)
	d.println(RenderError(err))
}

// Execute runs one input line and returns the failure instead of printing it.
// Blank lines are a no-op.
func (d *Dispatcher) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]
	cmd, ok := domain.LookupCommand(name)
	if !ok {
		return &CommandError{Name: name, Err: domain.ErrUnknownCommand}
	}
	if !cmd.AcceptsArgs(len(args)) {
		return &CommandError{Name: name, Params: cmd.Params, Err: domain.ErrArity}
	}

	switch cmd.Kind {
	case domain.CommandConnect:
		return d.connect(ctx, args[0])
	case domain.CommandDisconnect:
		return d.conn.Disconnect(ctx)
	case domain.CommandHelp:
		return d.showHelp(args)
	}

	d.conn.DropExpired(ctx)
	session, ok := d.conn.Session()
	if !ok {
		return domain.ErrNotConnected
	}

	switch cmd.Kind {
	case domain.CommandGet:
		return d.get(ctx, session, args)
	case domain.CommandSet:
		return d.set(ctx, session, args)
	case domain.CommandList:
		return d.list(ctx, session, args)
	case domain.CommandCreate:
		return d.create(ctx, session, args)
	case domain.CommandRemove:
		return d.remove(ctx, session, args)
	case domain.CommandExists:
		return d.exists(ctx, session, args)
	default:
		return fmt.Errorf("%s: %w", name, domain.ErrUnknownCommand)
	}
}

// Connect is the startup connection attempt; failures are printed, not returned.
func (d *Dispatcher) Connect(ctx context.Context, hosts string) {
	if err := d.connect(ctx, hosts); err != nil {
		d.println(RenderError(err))
	}
}

func (d *Dispatcher) connect(ctx context.Context, hosts string) error {
	d.println(fmt.Sprintf("Connecting to %s...", hosts))
	return d.conn.Connect(ctx, hosts)
}

func (d *Dispatcher) get(ctx context.Context, session ports.Session, args []string) error {
	path := args[0]
	watch := optionalFlag(args, 1)

	data, _, err := session.Get(ctx, path, watch)
	if err != nil {
		return &PathError{Op: "get", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return &PathError{Op: "get", Path: path, Err: domain.ErrInvalidUTF8}
	}

	d.println(string(data))
	return nil
}

func (d *Dispatcher) set(ctx context.Context, session ports.Session, args []string) error {
	path := args[0]
	version := domain.AnyVersion
	if len(args) > 2 {
		version = domain.ParseVersion(args[2])
	}

	if _, err := session.Set(ctx, path, []byte(args[1]), version); err != nil {
		return &PathError{Op: "set", Path: path, Err: err}
	}
	return nil
}

func (d *Dispatcher) list(ctx context.Context, session ports.Session, args []string) error {
	path := args[0]
	watch := optionalFlag(args, 1)

	children, err := session.Children(ctx, path, watch)
	if err != nil {
		return &PathError{Op: "ls", Path: path, Err: err}
	}

	d.println(strings.Join(children, " "))
	return nil
}

func (d *Dispatcher) create(ctx context.Context, session ports.Session, args []string) error {
	path := args[0]
	mode := domain.ResolveCreateMode(optionalFlag(args, 2), optionalFlag(args, 3))

	created, err := session.Create(ctx, path, []byte(args[1]), d.acl, mode)
	if err != nil {
		return &PathError{Op: "create", Path: path, Err: err}
	}

	d.logger.DebugContext(ctx, "node created", "path", created, "mode", mode)
	return nil
}

func (d *Dispatcher) remove(ctx context.Context, session ports.Session, args []string) error {
	path := args[0]
	version := domain.AnyVersion
	if len(args) > 1 {
		version = domain.ParseVersion(args[1])
	}

	if err := session.Delete(ctx, path, version); err != nil {
		return &PathError{Op: "rm", Path: path, Err: err}
	}
	return nil
}

func (d *Dispatcher) exists(ctx context.Context, session ports.Session, args []string) error {
	path := args[0]
	watch := optionalFlag(args, 1)

	stat, err := session.Exists(ctx, path, watch)
	if err != nil {
		return &PathError{Op: "exists", Path: path, Err: err}
	}

	d.println(d.renderStat(stat))
	return nil
}

func (d *Dispatcher) showHelp(args []string) error {
	if d.help == nil {
		return nil
	}

	if len(args) == 0 {
		d.println(d.help.Index())
		return nil
	}

	page, ok := d.help.Page(args[0])
	if !ok {
		d.println(fmt.Sprintf("Unknown command: %s.", args[0]))
		return nil
	}

	d.println(page)
	return nil
}

func (d *Dispatcher) println(line string) {
	_, _ = fmt.Fprintln(d.out, line)
}

func optionalFlag(args []string, idx int) bool {
	if idx >= len(args) {
		return false
	}
	return domain.ParseFlag(args[idx])
}
