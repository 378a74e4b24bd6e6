package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/zksh/internal/domain"
	"github.com/bnema/zksh/internal/ports"
)

// ConnectionManager owns the single live session of the shell.
type ConnectionManager struct {
	connector      ports.Connector
	sink           ports.EventSink
	sessionTimeout time.Duration
	logger         *slog.Logger

	hosts   string
	session ports.Session
}

func NewConnectionManager(connector ports.Connector, sink ports.EventSink, sessionTimeout time.Duration, logger *slog.Logger) *ConnectionManager {
	if sink == nil {
		sink = ports.NopEventSink{}
	}
	if sessionTimeout <= 0 {
		sessionTimeout = domain.DefaultSessionTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ConnectionManager{
		connector:      connector,
		sink:           sink,
		sessionTimeout: sessionTimeout,
		logger:         logger,
	}
}

// Connect closes any live session before opening one against hosts. A failed
// attempt leaves the manager disconnected.
func (m *ConnectionManager) Connect(ctx context.Context, hosts string) error {
	if m.session != nil {
		if err := m.session.Close(); err != nil {
			m.logger.WarnContext(ctx, "close previous session", "hosts", m.hosts, "error", err)
		}
		m.session = nil
		m.logger.InfoContext(ctx, "replacing session", "from", m.hosts, "to", hosts)
	}
	m.hosts = hosts

	m.logger.DebugContext(ctx, "connecting", "hosts", hosts, "session_timeout", m.sessionTimeout)
	session, err := m.connector.Connect(ctx, hosts, m.sessionTimeout, m.sink)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", hosts, err)
	}

	m.session = session
	m.logger.InfoContext(ctx, "session established", "hosts", hosts)
	return nil
}

// Disconnect drops the live session even when closing it fails.
func (m *ConnectionManager) Disconnect(ctx context.Context) error {
	if m.session == nil {
		return domain.ErrNotConnected
	}

	session := m.session
	m.session = nil

	if err := session.Close(); err != nil {
		m.logger.WarnContext(ctx, "close session", "hosts", m.hosts, "error", err)
		return fmt.Errorf("close session: %w", err)
	}

	m.logger.InfoContext(ctx, "session closed", "hosts", m.hosts)
	return nil
}

func (m *ConnectionManager) Session() (ports.Session, bool) {
	if m.session == nil {
		return nil, false
	}
	return m.session, true
}

func (m *ConnectionManager) Connected() bool {
	return m.session != nil
}

func (m *ConnectionManager) Hosts() string {
	return m.hosts
}

// DropExpired discards a session the client reports as expired.
func (m *ConnectionManager) DropExpired(ctx context.Context) {
	if m.session == nil || !m.session.Expired() {
		return
	}

	m.logger.WarnContext(ctx, "session expired", "hosts", m.hosts)
	if err := m.session.Close(); err != nil {
		m.logger.DebugContext(ctx, "close expired session", "error", err)
	}
	m.session = nil
}
