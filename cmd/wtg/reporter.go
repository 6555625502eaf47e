package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/conn-castle/wtg/internal/status"
)

// statusReporter renders the run's status stream. Interactive terminals get
// a spinner with the current line and the warnings kept above it; otherwise
// every event is printed as a line.
type statusReporter struct {
	out        io.Writer
	useSpinner bool
	events     *status.Channel
	doneCh     chan struct{}
}

// newStatusReporter constructs a reporter writing to out.
func newStatusReporter(out io.Writer, useSpinner bool) *statusReporter {
	return &statusReporter{
		out:        out,
		useSpinner: useSpinner,
		events:     status.NewChannel(256),
		doneCh:     make(chan struct{}),
	}
}

// sink is where the run publishes.
func (r *statusReporter) sink() status.Sink { return r.events }

func (r *statusReporter) start() {
	if r.useSpinner {
		go r.runSpinner()
		return
	}
	go r.runPlain()
}

// stop closes the stream and waits until everything queued is rendered.
func (r *statusReporter) stop() {
	r.events.Close()
	<-r.doneCh
}

func (r *statusReporter) runPlain() {
	defer close(r.doneCh)
	for e := range r.events.Events() {
		_, _ = fmt.Fprintln(r.out, formatEvent(e))
	}
}

func (r *statusReporter) runSpinner() {
	defer close(r.doneCh)
	program := tea.NewProgram(newProgressModel(), tea.WithOutput(r.out), tea.WithInput(nil))
	go func() {
		for e := range r.events.Events() {
			program.Send(eventMsg(e))
		}
		program.Send(streamClosedMsg{})
	}()
	_, _ = program.Run()
}

// formatEvent colors a status line by level.
func formatEvent(e status.Event) string {
	switch e.Level {
	case status.LevelError:
		return color.RedString(e.Message)
	case status.LevelWarn:
		return color.YellowString(e.Message)
	default:
		return e.Message
	}
}

type eventMsg status.Event

type streamClosedMsg struct{}

// progressModel shows the warnings and errors seen so far above a spinner
// next to the latest status line. The final frame keeps only the log.
type progressModel struct {
	spinner spinner.Model
	state   string
	current string
	log     []string
	done    bool
}

func newProgressModel() progressModel {
	return progressModel{spinner: spinner.New(spinner.WithSpinner(spinner.Line))}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		e := status.Event(msg)
		m.state = e.State
		m.current = e.Message
		if e.Level != status.LevelInfo {
			m.log = append(m.log, formatEvent(e))
		}
		return m, nil
	case streamClosedMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder
	for _, line := range m.log {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if m.done || m.current == "" {
		return b.String()
	}
	b.WriteString(m.spinner.View())
	if m.state != "" {
		_, _ = fmt.Fprintf(&b, " [%s]", m.state)
	}
	b.WriteByte(' ')
	b.WriteString(m.current)
	b.WriteByte('\n')
	return b.String()
}
