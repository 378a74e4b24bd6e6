package watch

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/bnema/zksh/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterWritesEventAndLogs(t *testing.T) {
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	printer := NewPrinter(out, slog.New(slog.NewJSONHandler(logs, nil)))

	printer.Notify(domain.Event{Type: "EventNodeDeleted", State: "StateHasSession", Path: "/a"})

	assert.Equal(t, "WATCHER:: WatchedEvent { event_type: EventNodeDeleted, keeper_state: StateHasSession, path: /a }\n", out.String())

	var record map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &record))
	assert.Equal(t, "watch event", record["msg"])
	assert.Equal(t, "/a", record["path"])
	assert.Equal(t, "EventNodeDeleted", record["type"])
}

func TestPrinterWithoutLogger(t *testing.T) {
	out := &bytes.Buffer{}
	NewPrinter(out, nil).Notify(domain.Event{Type: "EventSession", State: "StateDisconnected"})

	assert.Contains(t, out.String(), "keeper_state: StateDisconnected")
}
