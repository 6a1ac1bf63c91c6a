// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwlib"
)

const maxLog = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	highStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	lowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// An action is a key bound operation on the circuit of a session.
//
type action struct {
	key key.Binding
	do  func()
}

// A session is an interactive demo: a circuit, the actions driving it and
// the log of its monitored wires.
//
type session struct {
	title   string
	c       *logicsim.Circuit
	actions []action
	status  func() string

	// operands, for sessions that need them
	inputs []textinput.Model
	submit func(vals []string) error

	log []logicsim.Event
	err error
}

func newSession(title string) *session {
	s := &session{title: title}
	s.c = logicsim.New(logicsim.WithObserver(logicsim.ObserverFunc(s.observe)))
	return s
}

func (s *session) observe(e logicsim.Event) {
	s.log = append(s.log, e)
	if len(s.log) > maxLog {
		s.log = s.log[len(s.log)-maxLog:]
	}
}

func level(v logicsim.TriState) string {
	switch v {
	case logicsim.High:
		return highStyle.Render(v.String())
	case logicsim.Low:
		return lowStyle.Render(v.String())
	}
	return v.String()
}

func latchSession(e *env) *session {
	s := newSession("SR latch")
	l := s.c.Latch("ff1").Latch()
	e.monitor(s.c)
	s.c.Set(l.A, logicsim.High)
	s.c.Set(l.B, logicsim.High)
	s.actions = []action{
		{key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "drop A")), func() { pulse(s.c, l.A) }},
		{key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "drop B")), func() { pulse(s.c, l.B) }},
	}
	s.status = func() string {
		return fmt.Sprintf("A %s   B %s   Q %s", level(s.c.Value(l.A)), level(s.c.Value(l.B)), level(s.c.Value(l.Q)))
	}
	return s
}

func div2Session(e *env) *session {
	s := newSession("Divide by 2")
	x := s.c.Div2("X").Div2()
	e.monitor(s.c)
	k := hwlib.NewClock(s.c, x.C)
	k.Set(logicsim.Low)
	s.actions = []action{
		{key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle clock")), k.Toggle},
	}
	s.status = func() string {
		return fmt.Sprintf("Clock %s   Q %s   ticks %d", level(k.Level()), level(s.c.Value(x.Q)), k.Ticks())
	}
	return s
}

func counterSession(e *env) *session {
	s := newSession("4 bits counter")
	g := s.c.Counter("x")
	e.monitor(s.c)
	k := hwlib.NewClock(s.c, g.Counter().Clock())
	k.Set(logicsim.High)
	s.actions = []action{
		{key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pulse clock")), k.Pulse},
	}
	s.status = func() string {
		q := g.Counter().Q()
		bits := make([]string, len(q))
		for i, w := range q {
			bits[len(q)-1-i] = level(s.c.Value(w))
		}
		return fmt.Sprintf("Count %s = %d   pulses %d", strings.Join(bits, " "), hwlib.CounterValue(g), k.Edges())
	}
	return s
}

func adderSession(e *env) *session {
	s := newSession("Ripple carry adder")
	var add *hwlib.Adder
	result := ""
	s.inputs = make([]textinput.Model, 2)
	for i, v := range []string{e.a, e.b} {
		ti := textinput.New()
		ti.Prompt = string(rune('A'+i)) + ": "
		ti.Placeholder = v
		ti.SetValue(v)
		ti.CharLimit = 16
		ti.Width = 20
		s.inputs[i] = ti
	}
	s.inputs[0].Focus()
	s.submit = func(vals []string) error {
		if add == nil || add.Bits() != len(vals[0]) {
			// operand width changed: start over with a new circuit
			s.c = logicsim.New(logicsim.WithObserver(logicsim.ObserverFunc(s.observe)))
			a, err := newAdder(s.c, vals[0], vals[1])
			if err != nil {
				return err
			}
			add = a
			e.monitor(s.c)
		}
		if err := add.Add(vals[0], vals[1]); err != nil {
			return err
		}
		result = spaced(add.Result())
		return nil
	}
	s.status = func() string {
		if result == "" {
			return "Cout S... = ?"
		}
		return "Cout S... = " + result
	}
	return s
}

type keyMap struct {
	actions []key.Binding
	next    key.Binding
	submit  key.Binding
	quit    key.Binding
	inputs  bool
}

func (k keyMap) ShortHelp() []key.Binding {
	if k.inputs {
		return []key.Binding{k.next, k.submit, k.quit}
	}
	return append(append([]key.Binding(nil), k.actions...), k.quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type model struct {
	s     *session
	keys  keyMap
	help  help.Model
	focus int
}

func newModel(s *session) *model {
	m := &model{
		s:    s,
		help: help.New(),
		keys: keyMap{
			next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next operand")),
			submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
			quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc", "q"), key.WithHelp("q", "quit")),
			inputs: len(s.inputs) > 0,
		},
	}
	if m.keys.inputs {
		// q is a valid character in an operand field
		m.keys.quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit"))
	}
	for _, a := range s.actions {
		m.keys.actions = append(m.keys.actions, a.key)
	}
	return m
}

func (m *model) Init() tea.Cmd {
	if m.keys.inputs {
		return textinput.Blink
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		if m.keys.inputs {
			switch {
			case key.Matches(msg, m.keys.next):
				m.s.inputs[m.focus].Blur()
				m.focus = (m.focus + 1) % len(m.s.inputs)
				m.s.inputs[m.focus].Focus()
				return m, nil
			case key.Matches(msg, m.keys.submit):
				vals := make([]string, len(m.s.inputs))
				for i := range m.s.inputs {
					vals[i] = strings.TrimSpace(m.s.inputs[i].Value())
				}
				m.s.err = m.s.submit(vals)
				return m, nil
			}
			break
		}
		for _, a := range m.s.actions {
			if key.Matches(msg, a.key) {
				m.s.err = nil
				a.do()
				return m, nil
			}
		}
		return m, nil
	}

	if m.keys.inputs {
		var cmds []tea.Cmd
		for i := range m.s.inputs {
			var cmd tea.Cmd
			m.s.inputs[i], cmd = m.s.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.s.title))
	b.WriteString("\n\n")
	for _, in := range m.s.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString(stateStyle.Render(m.s.status()))
	b.WriteString("\n")
	if m.s.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.s.err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, e := range m.s.log {
		b.WriteString(logStyle.Render(e.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func runInteractive(s *session) error {
	p := tea.NewProgram(newModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
