// Package teatest drives bubbletea models synchronously in tests.
//
// Messages go straight to Update and returned commands are run inline, so
// tests never start a tea.Program or a render loop.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds command chains that keep producing messages.
const maxDepth = 64

// cmdWait is how long a command may run before it is dropped. Timer based
// commands such as cursor blinks never finish within it.
const cmdWait = 10 * time.Millisecond

// Driver feeds messages to a model and keeps the updated copy.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting reports that a command returned tea.QuitMsg.
	Quitting bool
}

type Option func(*Driver)

func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send passes msg to Update and runs whatever command comes back.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd, 0)
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressType(t tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: t})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.PressType(tea.KeyEnter) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.PressType(tea.KeyEsc) }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.PressType(tea.KeyCtrlC) }
func (d *Driver) PressTab()   { d.T.Helper(); d.PressType(tea.KeyTab) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.T.Logf("teatest: command chain deeper than %d, stopping", maxDepth)
		return
	}

	msg := runWithTimeout(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		return
	}
	if isBlink(msg) {
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.run(next, depth+1)
}

func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdWait):
		return nil
	}
}

func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
