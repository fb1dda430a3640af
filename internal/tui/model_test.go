package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
)

type fakeRemote struct {
	pressed  []string
	selected []int
	view     *remotev1.View
	err      error
}

func (f *fakeRemote) Press(_ context.Context, button string) (*remotev1.View, error) {
	f.pressed = append(f.pressed, button)
	return f.view, f.err
}

func (f *fakeRemote) Select(_ context.Context, index int) (*remotev1.View, error) {
	f.selected = append(f.selected, index)
	return f.view, f.err
}

func (f *fakeRemote) GetView(context.Context) (*remotev1.View, error) {
	return f.view, f.err
}

func (f *fakeRemote) Watch(context.Context) (<-chan *remotev1.View, error) {
	return nil, f.err
}

func menuView() *remotev1.View {
	return &remotev1.View{
		Mode:     "menu",
		Selected: 1,
		Moods:    []string{"Chill", "Focus", "Energy"},
		Overlay:  "Focus",
	}
}

func TestModel_KeysPressButtons(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		button string
	}{
		{"right", tea.KeyMsg{Type: tea.KeyRight}, "forward"},
		{"l", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")}, "forward"},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, "backward"},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, "down"},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, "down"},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "center"},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, "menu"},
		{"m", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}, "menu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &fakeRemote{view: menuView()}
			m := New(context.Background(), remote, "")

			_, cmd := m.handleMsg(tt.msg)
			require.NotNil(t, cmd)

			msg := cmd()
			assert.Equal(t, []string{tt.button}, remote.pressed)
			assert.Equal(t, viewMsg{remote.view}, msg)
		})
	}
}

func TestModel_DigitSelectsMood(t *testing.T) {
	remote := &fakeRemote{view: menuView()}
	m := New(context.Background(), remote, "")

	_, cmd := m.handleMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []int{2}, remote.selected)

	_, cmd = m.handleMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")})
	assert.Nil(t, cmd)
}

func TestModel_Quit(t *testing.T) {
	m := New(context.Background(), &fakeRemote{}, "")

	_, cmd := m.handleMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_WatchUpdates(t *testing.T) {
	m := New(context.Background(), &fakeRemote{}, "")
	views := make(chan *remotev1.View, 1)

	m, cmd := m.handleMsg(watchStartedMsg{views})
	assert.True(t, m.watching)
	require.NotNil(t, cmd)

	views <- menuView()
	msg := cmd()
	require.IsType(t, watchViewMsg{}, msg)

	m, cmd = m.handleMsg(msg)
	assert.Equal(t, "Focus", m.view.Overlay)
	require.NotNil(t, cmd)

	close(views)
	m, _ = m.handleMsg(cmd())
	assert.False(t, m.watching)
}

func TestModel_Error(t *testing.T) {
	remote := &fakeRemote{err: errors.New("connection refused")}
	m := New(context.Background(), remote, "")

	_, cmd := m.handleMsg(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.handleMsg(cmd())

	assert.Contains(t, m.View(), "connection refused")
}

func TestModel_View(t *testing.T) {
	m := New(context.Background(), &fakeRemote{}, "Living Room")
	assert.Contains(t, m.View(), "connecting")

	m, _ = m.handleMsg(viewMsg{&remotev1.View{
		Mode:       "playing",
		Selected:   0,
		Moods:      []string{"Chill", "Focus"},
		Overlay:    "Paused",
		HasPlayer:  true,
		PlaylistID: "PLchill",
	}})

	out := m.View()
	assert.Contains(t, out, "Living Room")
	assert.Contains(t, out, "▶ 1. Chill")
	assert.Contains(t, out, "2. Focus")
	assert.Contains(t, out, "Paused")
	assert.Contains(t, out, "mode: playing")
	assert.Contains(t, out, "playlist: PLchill")
	assert.Contains(t, out, "not live")
}
