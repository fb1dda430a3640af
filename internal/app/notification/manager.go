// Package notification provides the notification manager for broadcasting
// views and player commands to attached surfaces.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
)

// sendTimeout bounds a single subscriber send during a broadcast.
const sendTimeout = 500 * time.Millisecond

// Stream represents a notification stream for a subscriber.
type Stream interface {
	Send(*remotev1.Notification) error
}

// Role distinguishes surfaces that only render from those that also host
// the player widget.
type Role int

const (
	RoleWatcher Role = iota // Renders views only
	RoleHost                // Renders views and executes player commands
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case RoleWatcher:
		return "watcher"
	case RoleHost:
		return "host"
	default:
		return "unknown"
	}
}

// subscription represents a subscriber's subscription.
type subscription struct {
	id     string
	role   Role
	stream Stream
}

// Manager manages notification subscriptions and broadcasting.
type Manager struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription
	sequenceNo    uint64
	sequenceNoMu  sync.Mutex
}

// NewManager creates a new notification manager.
func NewManager() *Manager {
	return &Manager{
		subscriptions: make(map[string]*subscription),
	}
}

// Subscribe adds a new subscription and returns the subscription ID.
func (m *Manager) Subscribe(stream Stream, role Role) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.subscriptions[id] = &subscription{
		id:     id,
		role:   role,
		stream: stream,
	}
	zlog.Debug().Msgf("notification: subscribed: id=%s role=%s", id, role)
	return id
}

// Unsubscribe removes a subscription.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subscriptions, subscriptionID)
}

// NextSequenceNo returns the next sequence number and increments the counter.
func (m *Manager) NextSequenceNo() uint64 {
	m.sequenceNoMu.Lock()
	defer m.sequenceNoMu.Unlock()
	m.sequenceNo++
	return m.sequenceNo
}

// Broadcast sends a notification to all subscribers.
func (m *Manager) Broadcast(notification *remotev1.Notification) {
	m.broadcast(notification, func(*subscription) bool { return true })
}

// BroadcastHosts sends a notification to player hosts only and returns the
// number of hosts it was addressed to.
func (m *Manager) BroadcastHosts(notification *remotev1.Notification) int {
	return m.broadcast(notification, func(s *subscription) bool { return s.role == RoleHost })
}

// broadcast stamps the notification with the next sequence number and sends
// it to every matching subscriber in parallel, each bounded by sendTimeout.
func (m *Manager) broadcast(notification *remotev1.Notification, match func(*subscription) bool) int {
	notification.SequenceNo = m.NextSequenceNo()

	m.mu.RLock()
	subs := make([]*subscription, 0, len(m.subscriptions))
	for _, sub := range m.subscriptions {
		if match(sub) {
			subs = append(subs, sub)
		}
	}
	m.mu.RUnlock()

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(s *subscription) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- s.stream.Send(notification)
			}()

			select {
			case err := <-done:
				if err != nil {
					zlog.Debug().Msgf("notification: send failed: id=%s: %v", s.id, err)
				}
			case <-ctx.Done():
				zlog.Debug().Msgf("notification: send timed out: id=%s", s.id)
			}
		}(sub)
	}

	wg.Wait()
	return len(subs)
}

// Send sends a notification to a specific subscriber.
func (m *Manager) Send(subscriptionID string, notification *remotev1.Notification) error {
	m.mu.RLock()
	sub, ok := m.subscriptions[subscriptionID]
	m.mu.RUnlock()
	if !ok {
		return nil
	}

	notification.SequenceNo = m.NextSequenceNo()
	return sub.stream.Send(notification)
}

// SubscriberCount returns the number of active subscribers.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscriptions)
}

// HostCount returns the number of subscribed player hosts.
func (m *Manager) HostCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, sub := range m.subscriptions {
		if sub.role == RoleHost {
			count++
		}
	}
	return count
}

// Close removes all subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptions = make(map[string]*subscription)
}
