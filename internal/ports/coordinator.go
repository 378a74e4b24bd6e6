package ports

import (
	"context"
	"time"

	"github.com/bnema/zksh/internal/domain"
)

// Connector opens sessions against the coordination service.
type Connector interface {
	Connect(ctx context.Context, hosts string, sessionTimeout time.Duration, sink EventSink) (Session, error)
}

// Session is one live connection to the coordination service.
type Session interface {
	Get(ctx context.Context, path string, watch bool) ([]byte, domain.Stat, error)
	Set(ctx context.Context, path string, data []byte, version int32) (domain.Stat, error)
	Children(ctx context.Context, path string, watch bool) ([]string, error)
	Create(ctx context.Context, path string, data []byte, acl []domain.ACL, mode domain.CreateMode) (string, error)
	Delete(ctx context.Context, path string, version int32) error
	Exists(ctx context.Context, path string, watch bool) (domain.Stat, error)
	Expired() bool
	Close() error
}
