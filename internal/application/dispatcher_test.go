package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bnema/zksh/internal/domain"
	"github.com/bnema/zksh/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeHelp struct {
	pages map[string]string
}

func (h fakeHelp) Index() string {
	return "get - <path> [watch]"
}

func (h fakeHelp) Page(name string) (string, bool) {
	page, ok := h.pages[name]
	return page, ok
}

type dispatcherFixture struct {
	dispatcher *Dispatcher
	connector  *mocks.MockConnector
	manager    *ConnectionManager
	out        *bytes.Buffer
}

func newDispatcherFixture(t *testing.T) dispatcherFixture {
	t.Helper()

	connector := mocks.NewMockConnector(t)
	manager := NewConnectionManager(connector, nil, 0, nil)
	out := &bytes.Buffer{}
	dispatcher := NewDispatcher(manager, out, DispatcherOptions{
		Help: fakeHelp{pages: map[string]string{"get": "NAME\n\tget - Gets the znode's value"}},
		RenderStat: func(stat domain.Stat) string {
			return fmt.Sprintf("version=%d children=%d", stat.Version, stat.NumChildren)
		},
	})

	return dispatcherFixture{dispatcher: dispatcher, connector: connector, manager: manager, out: out}
}

// connected opens a session on h1 and clears the connect banner.
func (f dispatcherFixture) connected(t *testing.T) *mocks.MockSession {
	t.Helper()

	session := mocks.NewMockSession(t)
	session.EXPECT().Expired().Return(false).Maybe()
	f.connector.EXPECT().Connect(mockAnyContext(), "h1", mock.Anything, mock.Anything).Return(session, nil).Once()
	require.NoError(t, f.dispatcher.Execute(context.Background(), "connect h1"))
	f.out.Reset()

	return session
}

func (f dispatcherFixture) run(line string) string {
	f.out.Reset()
	f.dispatcher.Dispatch(context.Background(), line)
	return f.out.String()
}

func TestDispatchBlankLineIsSilent(t *testing.T) {
	f := newDispatcherFixture(t)

	assert.Empty(t, f.run(""))
	assert.Empty(t, f.run("   \t "))
}

func TestDispatchUnknownCommand(t *testing.T) {
	f := newDispatcherFixture(t)

	assert.Equal(t, "Unknown command: quit\n", f.run("quit now"))

	err := f.dispatcher.Execute(context.Background(), "quit")
	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
}

func TestDispatchRequiresSession(t *testing.T) {
	lines := []string{
		"get /a",
		"get /a true",
		"set /a data",
		"set /a data 3",
		"ls /a",
		"create /a data",
		"create /a data true true",
		"rm /a",
		"rm /a 2",
		"exists /a",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			f := newDispatcherFixture(t)
			assert.Equal(t, "Not connected.\n", f.run(line))
		})
	}
}

func TestDispatchArityBoundaries(t *testing.T) {
	for _, name := range domain.CommandNames() {
		cmd, ok := domain.LookupCommand(name)
		require.True(t, ok)

		counts := []int{cmd.MaxArgs + 1}
		if cmd.MinArgs > 0 {
			counts = append(counts, cmd.MinArgs-1)
		}

		for _, n := range counts {
			line := strings.TrimSpace(name + " " + strings.Repeat("x ", n))
			t.Run(line, func(t *testing.T) {
				f := newDispatcherFixture(t)
				f.connected(t)

				want := fmt.Sprintf("Wrong number of arguments, expected parameters: %s\n", cmd.Params)
				assert.Equal(t, want, f.run(line))

				err := f.dispatcher.Execute(context.Background(), line)
				assert.ErrorIs(t, err, domain.ErrArity)
			})
		}
	}
}

func TestDispatchGetPrintsData(t *testing.T) {
	f := newDispatcherFixture(t)
	session := f.connected(t)

	session.EXPECT().Get(mockAnyContext(), "/a", false).Return([]byte("hello"), domain.Stat{}, nil).Once()
	assert.Equal(t, "hello\n", f.run("get /a"))

	session.EXPECT().Get(mockAnyContext(), "/a", true).Return([]byte("watched"), domain.Stat{}, nil).Once()
	assert.Equal(t, "watched\n", f.run("get /a TRUE"))

	session.EXPECT().Get(mockAnyContext(), "/a", false).Return([]byte("garbage flag"), domain.Stat{}, nil).Once()
	assert.Equal(t, "garbage flag\n", f.run("get /a yes"))
}

func TestDispatchGetRejectsInvalidUTF8(t *testing.T) {
	f := newDispatcherFixture(t)
	session := f.connected(t)

	session.EXPECT().Get(mockAnyContext(), "/bin", false).Return([]byte{0xff, 0xfe}, domain.Stat{}, nil).Once()

	err := f.dispatcher.Execute(context.Background(), "get /bin")
	require.ErrorIs(t, err, domain.ErrInvalidUTF8)
	assert.Empty(t, f.out.String())

	session.EXPECT().Get(mockAnyContext(), "/bin", false).Return([]byte{0xff}, domain.Stat{}, nil).Once()
	assert.Equal(t, "Error: data at /bin is not valid UTF-8.\n", f.run("get /bin"))
	assert.True(t, f.manager.Connected())
}

func TestDispatchSetVersionParsing(t *testing.T) {
	tests := []struct {
		line    string
		version int32
	}{
		{line: "set /a v1", version: domain.AnyVersion},
		{line: "set /a v1 3", version: 3},
		{line: "set /a v1 abc", version: domain.AnyVersion},
		{line: "set /a v1 -", version: domain.AnyVersion},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			f := newDispatcherFixture(t)
			session := f.connected(t)

			session.EXPECT().Set(mockAnyContext(), "/a", []byte("v1"), tt.version).Return(domain.Stat{Version: 4}, nil).Once()
			assert.Empty(t, f.run(tt.line))
		})
	}
}

func TestDispatchListJoinsChildren(t *testing.T) {
	f := newDispatcherFixture(t)
	session := f.connected(t)

	session.EXPECT().Children(mockAnyContext(), "/a", false).Return([]string{"y", "x"}, nil).Once()
	assert.Equal(t, "y x\n", f.run("ls /a"))

	session.EXPECT().Children(mockAnyContext(), "/a", true).Return([]string{"x", "y"}, nil).Once()
	assert.Equal(t, "x y\n", f.run("ls /a true"))
}

func TestDispatchCreateResolvesMode(t *testing.T) {
	tests := []struct {
		line string
		mode domain.CreateMode
	}{
		{line: "create /a x", mode: domain.CreatePersistent},
		{line: "create /a x true", mode: domain.CreateEphemeral},
		{line: "create /a x false true", mode: domain.CreatePersistentSequential},
		{line: "create /a x true true", mode: domain.CreateEphemeralSequential},
		{line: "create /a x nope TRUE", mode: domain.CreatePersistentSequential},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			f := newDispatcherFixture(t)
			session := f.connected(t)

			session.EXPECT().Create(mockAnyContext(), "/a", []byte("x"), domain.OpenACLUnsafe, tt.mode).Return("/a", nil).Once()
			assert.Empty(t, f.run(tt.line))
		})
	}
}

func TestDispatchRemoveMapsServiceErrors(t *testing.T) {
	f := newDispatcherFixture(t)
	session := f.connected(t)

	session.EXPECT().Delete(mockAnyContext(), "/missing", domain.AnyVersion).
		Return(domain.NewServiceError(domain.CodeNoNode, errors.New("zk: node does not exist"))).Once()
	assert.Equal(t, "Path /missing does not exist.\n", f.run("rm /missing"))

	session.EXPECT().Delete(mockAnyContext(), "/full", int32(2)).
		Return(domain.NewServiceError(domain.CodeNotEmpty, nil)).Once()
	assert.Equal(t, "Path /full is not empty.\n", f.run("rm /full 2"))

	session.EXPECT().Delete(mockAnyContext(), "/a", int32(7)).
		Return(domain.NewServiceError(domain.CodeBadVersion, nil)).Once()
	assert.Equal(t, "Unknown error: BadVersion\n", f.run("rm /a 7"))

	session.EXPECT().Delete(mockAnyContext(), "/a", domain.AnyVersion).Return(nil).Once()
	assert.Empty(t, f.run("rm /a"))
}

func TestDispatchExistsRendersStat(t *testing.T) {
	f := newDispatcherFixture(t)
	session := f.connected(t)

	session.EXPECT().Exists(mockAnyContext(), "/a", true).Return(domain.Stat{Version: 2, NumChildren: 3}, nil).Once()
	assert.Equal(t, "version=2 children=3\n", f.run("exists /a true"))

	session.EXPECT().Exists(mockAnyContext(), "/gone", false).
		Return(domain.Stat{}, domain.NewServiceError(domain.CodeNoNode, nil)).Once()
	assert.Equal(t, "Path /gone does not exist.\n", f.run("exists /gone"))
}

func TestDispatchHelp(t *testing.T) {
	f := newDispatcherFixture(t)

	assert.Equal(t, "get - <path> [watch]\n", f.run("help"))
	assert.Equal(t, "NAME\n\tget - Gets the znode's value\n", f.run("man get"))
	assert.Equal(t, "Unknown command: bogus.\n", f.run("help bogus"))
}

func TestDispatchConnectFailure(t *testing.T) {
	f := newDispatcherFixture(t)

	f.connector.EXPECT().Connect(mockAnyContext(), "h1:2181", mock.Anything, mock.Anything).
		Return(nil, errors.New("no session within 5s")).Once()

	assert.Equal(t, "Connecting to h1:2181...\nError: connect to h1:2181: no session within 5s\n", f.run("connect h1:2181"))
	assert.Equal(t, "Not connected.\n", f.run("get /a"))
}

func TestDispatchDisconnect(t *testing.T) {
	f := newDispatcherFixture(t)

	assert.Equal(t, "Not connected.\n", f.run("disconnect"))

	session := f.connected(t)
	session.EXPECT().Close().Return(errors.New("broken pipe")).Once()

	assert.Equal(t, "Error: close session: broken pipe\n", f.run("disconnect"))
	assert.False(t, f.manager.Connected())
	assert.Equal(t, "Not connected.\n", f.run("ls /"))
}

func TestDispatchDropsExpiredSession(t *testing.T) {
	f := newDispatcherFixture(t)

	session := mocks.NewMockSession(t)
	f.connector.EXPECT().Connect(mockAnyContext(), "h1", mock.Anything, mock.Anything).Return(session, nil).Once()
	require.NoError(t, f.dispatcher.Execute(context.Background(), "connect h1"))

	session.EXPECT().Expired().Return(true).Once()
	session.EXPECT().Close().Return(nil).Once()

	assert.Equal(t, "Not connected.\n", f.run("get /a"))
	assert.False(t, f.manager.Connected())
}

func TestRenderErrorFallbacks(t *testing.T) {
	assert.Empty(t, RenderError(nil))
	assert.Equal(t, "Error: boom", RenderError(errors.New("boom")))
	assert.Equal(t, "Unknown error: NodeExists", RenderError(&PathError{
		Op:   "create",
		Path: "/a",
		Err:  domain.NewServiceError(domain.CodeNodeExists, nil),
	}))
	assert.Equal(t, "Not connected.", RenderError(fmt.Errorf("wrapped: %w", domain.ErrNotConnected)))
}
