package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
)

type viewMsg struct{ view *remotev1.View }
type errMsg struct{ err error }
type watchStartedMsg struct{ views <-chan *remotev1.View }
type watchViewMsg struct{ view *remotev1.View }
type watchClosedMsg struct{}

func fetchView(ctx context.Context, r Remote) tea.Cmd {
	return func() tea.Msg {
		v, err := r.GetView(ctx)
		if err != nil {
			return errMsg{err}
		}
		return viewMsg{v}
	}
}

func press(ctx context.Context, r Remote, button string) tea.Cmd {
	return func() tea.Msg {
		v, err := r.Press(ctx, button)
		if err != nil {
			return errMsg{err}
		}
		return viewMsg{v}
	}
}

func selectMood(ctx context.Context, r Remote, index int) tea.Cmd {
	return func() tea.Msg {
		v, err := r.Select(ctx, index)
		if err != nil {
			return errMsg{err}
		}
		return viewMsg{v}
	}
}

func watch(ctx context.Context, r Remote) tea.Cmd {
	return func() tea.Msg {
		views, err := r.Watch(ctx)
		if err != nil {
			return errMsg{err}
		}
		return watchStartedMsg{views}
	}
}

func waitForView(views <-chan *remotev1.View) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-views
		if !ok {
			return watchClosedMsg{}
		}
		return watchViewMsg{v}
	}
}
