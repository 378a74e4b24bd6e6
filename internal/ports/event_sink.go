package ports

import "github.com/bnema/zksh/internal/domain"

// EventSink receives watch and session notifications. It must not touch
// shell state.
type EventSink interface {
	Notify(event domain.Event)
}

type NopEventSink struct{}

func (NopEventSink) Notify(domain.Event) {}
