// Package session provides the session manager.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
	"github.com/osa030/moodbox/internal/app/notification"
	"github.com/osa030/moodbox/internal/app/playback"
	"github.com/osa030/moodbox/internal/domain/mood"
	"github.com/osa030/moodbox/internal/infra/youtube"
)

// Manager manages the remote session: one controller, one remote player and
// the surfaces attached to them.
type Manager struct {
	sessionID string
	startedAt time.Time

	// Components
	catalog      *mood.Catalog
	controller   *playback.Controller
	host         *youtube.Host
	notification *notification.Manager

	// Channels
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// Status is a snapshot of the session.
type Status struct {
	SessionID string
	StartedAt time.Time
	Hosts     int
	Watchers  int
	View      playback.View
}

// NewManager creates a new session manager.
func NewManager(catalog *mood.Catalog, cfg playback.Config) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		sessionID:    uuid.New().String(),
		startedAt:    time.Now(),
		catalog:      catalog,
		notification: notification.NewManager(),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}
	m.host = youtube.NewHost(&hostTransport{notification: m.notification})
	m.controller = playback.NewController(catalog, m.host, m, cfg)

	zlog.Info().Msgf("session created: session_id=%s moods=%d", m.sessionID, catalog.Len())
	return m
}

// Press handles a button press by name.
func (m *Manager) Press(name string) (playback.View, error) {
	b, err := playback.ParseButton(name)
	if err != nil {
		return playback.View{}, err
	}
	if err := m.controller.Press(b); err != nil {
		return playback.View{}, err
	}
	return m.controller.View(), nil
}

// Select selects the mood at index.
func (m *Manager) Select(index int) (playback.View, error) {
	if err := m.controller.Select(index); err != nil {
		return playback.View{}, err
	}
	return m.controller.View(), nil
}

// View returns the current view.
func (m *Manager) View() playback.View {
	return m.controller.View()
}

// ReportPlayerEvent forwards a widget callback reported by a player host.
func (m *Manager) ReportPlayerEvent(req *remotev1.PlayerEventRequest) error {
	ev, err := EventFromWire(req)
	if err != nil {
		return err
	}
	zlog.Debug().Msgf("player event reported: type=%s state=%s index=%d", ev.Type, ev.State, ev.Index)
	m.host.Report(ev)
	return nil
}

// AttachHost subscribes a player host. The host receives the current view
// and, when a player exists, the command that recreates it.
func (m *Manager) AttachHost(stream notification.Stream) string {
	id := m.notification.Subscribe(stream, notification.RoleHost)
	zlog.Info().Msgf("player host attached: id=%s hosts=%d", id, m.notification.HostCount())

	m.sendInitialState(id)
	if cmd, ok := m.host.Bootstrap(); ok {
		if err := m.notification.Send(id, &remotev1.Notification{
			Type:    remotev1.NotificationTypeCommand,
			Command: CommandToWire(cmd),
		}); err != nil {
			zlog.Warn().Msgf("failed to bootstrap player host: id=%s: %v", id, err)
		}
	}
	return id
}

// Watch subscribes a view-only surface and sends it the current view.
func (m *Manager) Watch(stream notification.Stream) string {
	id := m.notification.Subscribe(stream, notification.RoleWatcher)
	zlog.Debug().Msgf("watcher attached: id=%s", id)

	m.sendInitialState(id)
	return id
}

// Detach removes a host or watcher subscription.
func (m *Manager) Detach(subscriptionID string) {
	m.notification.Unsubscribe(subscriptionID)
	zlog.Debug().Msgf("subscriber detached: id=%s", subscriptionID)
}

// PublishView implements playback.ViewSink.
func (m *Manager) PublishView(v playback.View) {
	m.notification.Broadcast(&remotev1.Notification{
		Type: remotev1.NotificationTypeView,
		View: ViewToWire(v),
	})
}

// GetStatus returns the session status.
func (m *Manager) GetStatus() *Status {
	hosts := m.notification.HostCount()
	return &Status{
		SessionID: m.sessionID,
		StartedAt: m.startedAt,
		Hosts:     hosts,
		Watchers:  m.notification.SubscriberCount() - hosts,
		View:      m.controller.View(),
	}
}

// Catalog returns the mood catalog.
func (m *Manager) Catalog() *mood.Catalog {
	return m.catalog
}

// Context returns a context cancelled when the session closes. Long-lived
// subscriptions end with it.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Done returns a channel closed when the session closes.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Close closes the session and drops all subscriptions.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		zlog.Info().Msgf("session closed: session_id=%s", m.sessionID)
		m.cancel()
		m.notification.Close()
		close(m.done)
	})
}

func (m *Manager) sendInitialState(id string) {
	if err := m.notification.Send(id, &remotev1.Notification{
		Type: remotev1.NotificationTypeInitialState,
		View: ViewToWire(m.controller.View()),
	}); err != nil {
		zlog.Warn().Msgf("failed to send initial state: id=%s: %v", id, err)
	}
}

// hostTransport delivers player commands to the attached player hosts.
type hostTransport struct {
	notification *notification.Manager
}

// Deliver implements youtube.Transport.
func (t *hostTransport) Deliver(cmd youtube.Command) error {
	if t.notification.HostCount() == 0 {
		return youtube.ErrNoHost
	}
	n := t.notification.BroadcastHosts(&remotev1.Notification{
		Type:    remotev1.NotificationTypeCommand,
		Command: CommandToWire(cmd),
	})
	if n == 0 {
		return youtube.ErrNoHost
	}
	return nil
}
