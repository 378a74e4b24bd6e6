package zookeeper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/zksh/internal/domain"
	"github.com/bnema/zksh/internal/ports"
	"github.com/go-zookeeper/zk"
)

var (
	ErrNoHosts        = errors.New("no hosts given")
	ErrSessionTimeout = errors.New("no session established")
	errEventsClosed   = errors.New("connection event stream closed")
)

// conn is the subset of *zk.Conn the shell uses.
type conn interface {
	Get(path string) ([]byte, *zk.Stat, error)
	GetW(path string) ([]byte, *zk.Stat, <-chan zk.Event, error)
	Children(path string) ([]string, *zk.Stat, error)
	ChildrenW(path string) ([]string, *zk.Stat, <-chan zk.Event, error)
	Set(path string, data []byte, version int32) (*zk.Stat, error)
	Create(path string, data []byte, flags int32, acl []zk.ACL) (string, error)
	Delete(path string, version int32) error
	Exists(path string) (bool, *zk.Stat, error)
	ExistsW(path string) (bool, *zk.Stat, <-chan zk.Event, error)
	State() zk.State
	Close()
}

type dialFunc func(servers []string, sessionTimeout time.Duration, logger zk.Logger, callback zk.EventCallback) (conn, <-chan zk.Event, error)

type Connector struct {
	dial   dialFunc
	logger *slog.Logger
}

var _ ports.Connector = (*Connector)(nil)

func NewConnector(logger *slog.Logger) *Connector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Connector{dial: dialZooKeeper, logger: logger}
}

// Connect dials hosts and blocks until the ensemble grants a session or
// sessionTimeout passes. It never retries.
func (c *Connector) Connect(ctx context.Context, hosts string, sessionTimeout time.Duration, sink ports.EventSink) (ports.Session, error) {
	servers := SplitHosts(hosts)
	if len(servers) == 0 {
		return nil, ErrNoHosts
	}
	if sink == nil {
		sink = ports.NopEventSink{}
	}

	session := &Session{sink: sink, logger: c.logger}
	zkConn, events, err := c.dial(servers, sessionTimeout, clientLogger{logger: c.logger}, session.onEvent)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	session.conn = zkConn

	if err := waitForSession(ctx, events, sessionTimeout); err != nil {
		zkConn.Close()
		return nil, err
	}

	c.logger.DebugContext(ctx, "zookeeper session ready", "servers", servers)
	return session, nil
}

// SplitHosts accepts comma or semicolon separated endpoints.
func SplitHosts(hosts string) []string {
	fields := strings.FieldsFunc(hosts, func(r rune) bool {
		return r == ',' || r == ';'
	})

	servers := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			servers = append(servers, field)
		}
	}
	return servers
}

func waitForSession(ctx context.Context, events <-chan zk.Event, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return fmt.Errorf("%w within %s", ErrSessionTimeout, timeout)
		case ev, ok := <-events:
			if !ok {
				return errEventsClosed
			}
			switch ev.State {
			case zk.StateHasSession:
				return nil
			case zk.StateAuthFailed:
				return domain.NewServiceError(domain.CodeAuthFailed, zk.ErrAuthFailed)
			}
		}
	}
}

func dialZooKeeper(servers []string, sessionTimeout time.Duration, logger zk.Logger, callback zk.EventCallback) (conn, <-chan zk.Event, error) {
	zkConn, events, err := zk.Connect(servers, sessionTimeout, zk.WithLogger(logger), zk.WithEventCallback(callback))
	if err != nil {
		return nil, nil, err
	}
	return zkConn, events, nil
}

// clientLogger routes the client library's printf logging into slog.
type clientLogger struct {
	logger *slog.Logger
}

func (l clientLogger) Printf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "zk")
}
