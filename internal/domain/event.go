package domain

import "fmt"

// Event is a watch or session notification delivered by the client.
type Event struct {
	Type   string
	State  string
	Path   string
	Server string
	Err    error
}

func (e Event) String() string {
	s := fmt.Sprintf("WatchedEvent { event_type: %s, keeper_state: %s", e.Type, e.State)
	if e.Path != "" {
		s += fmt.Sprintf(", path: %s", e.Path)
	}
	if e.Err != nil {
		s += fmt.Sprintf(", err: %v", e.Err)
	}
	return s + " }"
}
