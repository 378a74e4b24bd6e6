package zookeeper

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bnema/zksh/internal/domain"
	"github.com/bnema/zksh/internal/ports"
	"github.com/go-zookeeper/zk"
)

type Session struct {
	conn      conn
	sink      ports.EventSink
	logger    *slog.Logger
	expired   atomic.Bool
	closeOnce sync.Once
}

var _ ports.Session = (*Session)(nil)

func (s *Session) Get(ctx context.Context, path string, watch bool) ([]byte, domain.Stat, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.Stat{}, err
	}

	if watch {
		data, stat, ch, err := s.conn.GetW(path)
		if err != nil {
			return nil, domain.Stat{}, translateError(err)
		}
		s.forward(ch)
		return data, toStat(stat), nil
	}

	data, stat, err := s.conn.Get(path)
	if err != nil {
		return nil, domain.Stat{}, translateError(err)
	}
	return data, toStat(stat), nil
}

func (s *Session) Set(ctx context.Context, path string, data []byte, version int32) (domain.Stat, error) {
	if err := ctx.Err(); err != nil {
		return domain.Stat{}, err
	}

	stat, err := s.conn.Set(path, data, version)
	if err != nil {
		return domain.Stat{}, translateError(err)
	}
	return toStat(stat), nil
}

func (s *Session) Children(ctx context.Context, path string, watch bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if watch {
		children, _, ch, err := s.conn.ChildrenW(path)
		if err != nil {
			return nil, translateError(err)
		}
		s.forward(ch)
		return children, nil
	}

	children, _, err := s.conn.Children(path)
	if err != nil {
		return nil, translateError(err)
	}
	return children, nil
}

func (s *Session) Create(ctx context.Context, path string, data []byte, acl []domain.ACL, mode domain.CreateMode) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	created, err := s.conn.Create(path, data, createFlags(mode), toACL(acl))
	if err != nil {
		return "", translateError(err)
	}
	return created, nil
}

func (s *Session) Delete(ctx context.Context, path string, version int32) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return translateError(s.conn.Delete(path, version))
}

// Exists reports a missing node as a NoNode service error.
func (s *Session) Exists(ctx context.Context, path string, watch bool) (domain.Stat, error) {
	if err := ctx.Err(); err != nil {
		return domain.Stat{}, err
	}

	var (
		found bool
		stat  *zk.Stat
		err   error
	)
	if watch {
		var ch <-chan zk.Event
		found, stat, ch, err = s.conn.ExistsW(path)
		if err == nil {
			s.forward(ch)
		}
	} else {
		found, stat, err = s.conn.Exists(path)
	}
	if err != nil {
		return domain.Stat{}, translateError(err)
	}
	if !found {
		return domain.Stat{}, domain.NewServiceError(domain.CodeNoNode, zk.ErrNoNode)
	}
	return toStat(stat), nil
}

// Expired turns true once the ensemble has expired this session. A later
// reconnect by the client would carry a new session, so it stays true.
func (s *Session) Expired() bool {
	return s.expired.Load()
}

func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.conn.Close()
	})
	return nil
}

func (s *Session) onEvent(ev zk.Event) {
	if ev.State == zk.StateExpired {
		s.expired.Store(true)
	}
	if ev.Type == zk.EventSession {
		s.logger.Debug("zookeeper session event", "state", ev.State.String(), "server", ev.Server)
	}
	s.sink.Notify(toEvent(ev))
}

// forward delivers the single event a watch fires.
func (s *Session) forward(ch <-chan zk.Event) {
	if ch == nil {
		return
	}
	go func() {
		ev, ok := <-ch
		if !ok {
			return
		}
		s.sink.Notify(toEvent(ev))
	}()
}

var errorCodes = []struct {
	err  error
	code domain.ErrorCode
}{
	{zk.ErrNoNode, domain.CodeNoNode},
	{zk.ErrNotEmpty, domain.CodeNotEmpty},
	{zk.ErrNodeExists, domain.CodeNodeExists},
	{zk.ErrBadVersion, domain.CodeBadVersion},
	{zk.ErrNoAuth, domain.CodeNoAuth},
	{zk.ErrAuthFailed, domain.CodeAuthFailed},
	{zk.ErrInvalidACL, domain.CodeInvalidACL},
	{zk.ErrNoChildrenForEphemerals, domain.CodeNoChildrenForEphemerals},
	{zk.ErrSessionExpired, domain.CodeSessionExpired},
	{zk.ErrSessionMoved, domain.CodeSessionMoved},
	{zk.ErrConnectionClosed, domain.CodeConnectionClosed},
	{zk.ErrClosing, domain.CodeClosing},
	{zk.ErrBadArguments, domain.CodeBadArguments},
	{zk.ErrInvalidPath, domain.CodeInvalidPath},
	{zk.ErrAPIError, domain.CodeAPIError},
	{zk.ErrNoServer, domain.CodeNoServer},
	{zk.ErrNothing, domain.CodeNothing},
	{zk.ErrUnknown, domain.CodeUnknown},
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	for _, entry := range errorCodes {
		if errors.Is(err, entry.err) {
			return domain.NewServiceError(entry.code, err)
		}
	}
	return err
}

func createFlags(mode domain.CreateMode) int32 {
	var flags int32
	if mode.IsEphemeral() {
		flags |= zk.FlagEphemeral
	}
	if mode.IsSequential() {
		flags |= zk.FlagSequence
	}
	return flags
}

func toACL(acl []domain.ACL) []zk.ACL {
	out := make([]zk.ACL, 0, len(acl))
	for _, entry := range acl {
		out = append(out, zk.ACL{Perms: entry.Perms, Scheme: entry.Scheme, ID: entry.ID})
	}
	return out
}

func toStat(stat *zk.Stat) domain.Stat {
	if stat == nil {
		return domain.Stat{}
	}

	return domain.Stat{
		Czxid:          stat.Czxid,
		Mzxid:          stat.Mzxid,
		Ctime:          stat.Ctime,
		Mtime:          stat.Mtime,
		Version:        stat.Version,
		Cversion:       stat.Cversion,
		Aversion:       stat.Aversion,
		EphemeralOwner: stat.EphemeralOwner,
		DataLength:     stat.DataLength,
		NumChildren:    stat.NumChildren,
		Pzxid:          stat.Pzxid,
	}
}

func toEvent(ev zk.Event) domain.Event {
	return domain.Event{
		Type:   ev.Type.String(),
		State:  ev.State.String(),
		Path:   ev.Path,
		Server: ev.Server,
		Err:    ev.Err,
	}
}
