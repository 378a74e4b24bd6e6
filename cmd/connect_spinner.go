package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/zksh/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sessionReadyMsg struct{}

// sessionWaitModel counts the wait against the session timeout, after which
// the connector gives up.
type sessionWaitModel struct {
	spinner spinner.Model
	hosts   string
	timeout time.Duration
	started time.Time
	elapsed time.Duration
	ready   tea.Cmd
	done    bool
}

func newSessionWaitModel(hosts string, timeout time.Duration, ready tea.Cmd, now time.Time) sessionWaitModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return sessionWaitModel{
		spinner: s,
		hosts:   hosts,
		timeout: timeout,
		started: now,
		ready:   ready,
	}
}

func (m sessionWaitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.ready)
}

func (m sessionWaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.elapsed = msg.Time.Sub(m.started)
		return m, cmd
	case sessionReadyMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m sessionWaitModel) View() string {
	if m.done {
		return ""
	}

	elapsed := max(m.elapsed, 0).Truncate(100 * time.Millisecond)
	return fmt.Sprintf("%s waiting for session from %s (%s of %s)", m.spinner.View(), m.hosts, elapsed, m.timeout)
}

type connectResult struct {
	session ports.Session
	err     error
}

// spinnerConnector shows a spinner on an interactive stderr while a session
// is being established.
type spinnerConnector struct {
	next ports.Connector
	out  io.Writer
}

// Connect always waits for the underlying attempt to return. A session that
// arrives after the spinner was killed is closed rather than handed out.
func (c spinnerConnector) Connect(ctx context.Context, hosts string, sessionTimeout time.Duration, sink ports.EventSink) (ports.Session, error) {
	var res connectResult
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		res.session, res.err = c.next.Connect(ctx, hosts, sessionTimeout, sink)
	}()

	ready := func() tea.Msg {
		<-finished
		return sessionReadyMsg{}
	}

	p := tea.NewProgram(
		newSessionWaitModel(hosts, sessionTimeout, ready, time.Now()),
		tea.WithInput(nil),
		tea.WithOutput(c.out),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)

	_, runErr := p.Run()
	<-finished

	if runErr != nil {
		if res.session != nil {
			_ = res.session.Close()
		}
		return nil, runErr
	}
	return res.session, res.err
}
