package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "true", want: true},
		{raw: "TRUE", want: true},
		{raw: "True", want: true},
		{raw: "tRuE", want: true},
		{raw: "false", want: false},
		{raw: "yes", want: false},
		{raw: "", want: false},
		{raw: "1", want: false},
		{raw: "true ", want: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFlag(tt.raw))
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		raw  string
		want int32
	}{
		{raw: "3", want: 3},
		{raw: "0", want: 0},
		{raw: "-1", want: -1},
		{raw: "-7", want: -7},
		{raw: "abc", want: AnyVersion},
		{raw: "", want: AnyVersion},
		{raw: "-", want: AnyVersion},
		{raw: "99999999999", want: AnyVersion},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVersion(tt.raw))
		})
	}
}

func TestResolveCreateMode(t *testing.T) {
	assert.Equal(t, CreatePersistent, ResolveCreateMode(false, false))
	assert.Equal(t, CreateEphemeral, ResolveCreateMode(true, false))
	assert.Equal(t, CreatePersistentSequential, ResolveCreateMode(false, true))
	assert.Equal(t, CreateEphemeralSequential, ResolveCreateMode(true, true))

	assert.True(t, CreateEphemeralSequential.IsEphemeral())
	assert.True(t, CreateEphemeralSequential.IsSequential())
	assert.False(t, CreatePersistentSequential.IsEphemeral())
	assert.Equal(t, "EphemeralSequential", CreateEphemeralSequential.String())
}

func TestLookupCommandArityWindows(t *testing.T) {
	tests := []struct {
		name     string
		kind     CommandKind
		min, max int
		session  bool
	}{
		{name: "get", kind: CommandGet, min: 1, max: 2, session: true},
		{name: "set", kind: CommandSet, min: 2, max: 3, session: true},
		{name: "ls", kind: CommandList, min: 1, max: 2, session: true},
		{name: "create", kind: CommandCreate, min: 2, max: 4, session: true},
		{name: "rm", kind: CommandRemove, min: 1, max: 2, session: true},
		{name: "exists", kind: CommandExists, min: 1, max: 2, session: true},
		{name: "connect", kind: CommandConnect, min: 1, max: 1},
		{name: "disconnect", kind: CommandDisconnect, min: 0, max: 0},
		{name: "help", kind: CommandHelp, min: 0, max: 1},
		{name: "man", kind: CommandHelp, min: 0, max: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := LookupCommand(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.kind, cmd.Kind)
			assert.Equal(t, tt.min, cmd.MinArgs)
			assert.Equal(t, tt.max, cmd.MaxArgs)
			assert.Equal(t, tt.session, cmd.RequiresSession())
			assert.True(t, cmd.AcceptsArgs(tt.min))
			assert.True(t, cmd.AcceptsArgs(tt.max))
			assert.False(t, cmd.AcceptsArgs(tt.min-1))
			assert.False(t, cmd.AcceptsArgs(tt.max+1))
		})
	}

	_, ok := LookupCommand("quit")
	assert.False(t, ok)
	assert.Len(t, CommandNames(), len(tests))
}

func TestServiceErrorMatchesByCode(t *testing.T) {
	cause := errors.New("zk: node does not exist")
	err := fmt.Errorf("get /a: %w", NewServiceError(CodeNoNode, cause))

	assert.ErrorIs(t, err, &ServiceError{Code: CodeNoNode})
	assert.NotErrorIs(t, err, &ServiceError{Code: CodeNotEmpty})
	assert.ErrorIs(t, err, cause)

	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeNoNode, code)
	assert.Equal(t, "NoNode: zk: node does not exist", NewServiceError(CodeNoNode, cause).Error())

	code, ok = CodeOf(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, CodeUnknown, code)
	assert.Equal(t, "ErrorCode(99)", ErrorCode(99).String())
}

func TestEventString(t *testing.T) {
	ev := Event{Type: "EventNodeDataChanged", State: "StateHasSession", Path: "/a"}
	assert.Equal(t, "WatchedEvent { event_type: EventNodeDataChanged, keeper_state: StateHasSession, path: /a }", ev.String())

	session := Event{Type: "EventSession", State: "StateDisconnected"}
	assert.Equal(t, "WatchedEvent { event_type: EventSession, keeper_state: StateDisconnected }", session.String())
}
