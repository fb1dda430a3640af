// Package tui implements a terminal remote for a moodbox server.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
)

// Model is the bubbletea model of the terminal remote.
type Model struct {
	ctx    context.Context
	remote Remote
	title  string

	view     *remotev1.View
	views    <-chan *remotev1.View
	watching bool
	err      error
	width    int
}

// New creates a terminal remote model.
func New(ctx context.Context, remote Remote, title string) Model {
	return Model{
		ctx:    ctx,
		remote: remote,
		title:  title,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchView(m.ctx, m.remote), watch(m.ctx, m.remote))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewMsg:
		m.view = msg.view
		m.err = nil
		return m, nil

	case watchViewMsg:
		m.view = msg.view
		return m, waitForView(m.views)

	case watchStartedMsg:
		m.views = msg.views
		m.watching = true
		return m, waitForView(m.views)

	case watchClosedMsg:
		m.watching = false
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if button, ok := keys.button(msg); ok {
			return m, press(m.ctx, m.remote, button)
		}
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= 9 {
			return m, selectMood(m.ctx, m.remote, n-1)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	title := m.title
	if title == "" {
		title = "Mood Remote"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.view == nil {
		b.WriteString(statusStyle.Render("connecting…"))
		b.WriteString("\n")
	} else {
		for i, label := range m.view.Moods {
			line := fmt.Sprintf("%d. %s", i+1, label)
			if i == m.view.Selected {
				b.WriteString(selectedStyle.Render("▶ " + line))
			} else {
				b.WriteString(moodStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(overlayStyle.Render(m.view.Overlay))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status()))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText()))

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

func (m Model) status() string {
	parts := []string{"mode: " + m.view.Mode}
	if m.view.PlaylistID != "" {
		parts = append(parts, "playlist: "+m.view.PlaylistID)
	}
	if !m.view.HasPlayer {
		parts = append(parts, "no player")
	}
	if !m.watching {
		parts = append(parts, "not live")
	}
	return strings.Join(parts, "  ")
}

func helpText() string {
	var parts []string
	for _, b := range keys.bindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	parts = append(parts, "1-9 select")
	return strings.Join(parts, "  ")
}
