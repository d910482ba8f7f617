package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tickMsg struct{ name string }

// timerModel schedules a short and a long timer on Init and records what fired.
type timerModel struct {
	fired []string
	keys  int
}

func (m timerModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(30*time.Millisecond, func(time.Time) tea.Msg { return tickMsg{"short"} }),
		tea.Tick(time.Hour, func(time.Time) tea.Msg { return tickMsg{"long"} }),
		func() tea.Msg { return tickMsg{"now"} },
	)
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.fired = append(m.fired, msg.name)
	case tea.KeyMsg:
		m.keys++
		if msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m timerModel) View() string { return "\x1b[1mfired\x1b[0m" }

func TestDriver_ParksTimersAndFlushesShortOnes(t *testing.T) {
	d := New(t, timerModel{})
	d.DrainInit()

	assert.Equal(t, []string{"now"}, d.Model.(timerModel).fired)
	assert.Equal(t, 2, d.PendingCount())

	d.FlushPending(200 * time.Millisecond)

	assert.Equal(t, []string{"now", "short"}, d.Model.(timerModel).fired)
	assert.Equal(t, 1, d.PendingCount(), "the hour-long timer stays parked")
}

func TestDriver_FlushDeliversTimerThatFiredWhileParked(t *testing.T) {
	d := New(t, timerModel{})
	d.DrainInit()
	require.Equal(t, 2, d.PendingCount())

	time.Sleep(60 * time.Millisecond)
	d.FlushPending(0)

	assert.Equal(t, []string{"now", "short"}, d.Model.(timerModel).fired)

	d.FlushPending(20 * time.Millisecond)
	assert.Equal(t, 1, d.PendingCount())
	assert.Equal(t, []string{"now", "short"}, d.Model.(timerModel).fired)
}

func TestDriver_KeysAndQuit(t *testing.T) {
	d := New(t, timerModel{}, WithSize(80, 24))
	d.PressLeft()
	d.PressRight()
	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Equal(t, 3, d.Model.(timerModel).keys)

	// Further input is ignored once quitting.
	d.PressEnter()
	assert.Equal(t, 3, d.Model.(timerModel).keys)
}

func TestDriver_PlainView(t *testing.T) {
	d := New(t, timerModel{})
	assert.Equal(t, "fired", d.PlainView())
}
