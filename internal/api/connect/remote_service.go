// Package connect provides Connect RPC service implementations.
package connect

import (
	"context"
	"sync"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"

	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
	"github.com/osa030/moodbox/internal/app/playback"
	"github.com/osa030/moodbox/internal/app/session"
)

// RemoteService implements the RemoteService RPC.
type RemoteService struct {
	session *session.Manager
}

// NewRemoteService creates a new RemoteService.
func NewRemoteService(session *session.Manager) *RemoteService {
	return &RemoteService{session: session}
}

// Ensure RemoteService implements the interface.
var _ remotev1.RemoteServiceHandler = (*RemoteService)(nil)

// Press handles button presses.
func (s *RemoteService) Press(
	ctx context.Context,
	req *connect.Request[remotev1.PressRequest],
) (*connect.Response[remotev1.ViewResponse], error) {
	view, err := s.session.Press(req.Msg.Button)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&remotev1.ViewResponse{View: session.ViewToWire(view)}), nil
}

// Select handles direct mood selection.
func (s *RemoteService) Select(
	ctx context.Context,
	req *connect.Request[remotev1.SelectRequest],
) (*connect.Response[remotev1.ViewResponse], error) {
	view, err := s.session.Select(req.Msg.Index)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&remotev1.ViewResponse{View: session.ViewToWire(view)}), nil
}

// GetView returns the current view.
func (s *RemoteService) GetView(
	ctx context.Context,
	req *connect.Request[remotev1.GetViewRequest],
) (*connect.Response[remotev1.ViewResponse], error) {
	return connect.NewResponse(&remotev1.ViewResponse{View: session.ViewToWire(s.session.View())}), nil
}

// ReportPlayerEvent handles widget callbacks reported by player hosts.
func (s *RemoteService) ReportPlayerEvent(
	ctx context.Context,
	req *connect.Request[remotev1.PlayerEventRequest],
) (*connect.Response[remotev1.PlayerEventResponse], error) {
	if err := s.session.ReportPlayerEvent(req.Msg); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&remotev1.PlayerEventResponse{}), nil
}

// Watch streams view notifications, starting with the current view.
func (s *RemoteService) Watch(
	ctx context.Context,
	req *connect.Request[remotev1.WatchRequest],
	stream *connect.ServerStream[remotev1.Notification],
) error {
	adapter := &notificationStreamAdapter{stream: stream}
	defer adapter.close()
	subscriptionID := s.session.Watch(adapter)
	defer s.session.Detach(subscriptionID)

	// Wait for context cancellation or session end
	select {
	case <-ctx.Done():
	case <-s.session.Done():
	}
	return nil
}

var errStreamClosed = errors.New("notification stream closed")

// notificationStreamAdapter adapts connect.ServerStream to notification.Stream.
// Sends are serialized, and refused once the handler has returned.
type notificationStreamAdapter struct {
	mu     sync.Mutex
	stream *connect.ServerStream[remotev1.Notification]
	closed bool
}

func (a *notificationStreamAdapter) Send(notification *remotev1.Notification) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return errStreamClosed
	}
	return a.stream.Send(notification)
}

func (a *notificationStreamAdapter) close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, playback.ErrUnknownButton),
		errors.Is(err, playback.ErrInvalidSelection),
		errors.Is(err, playback.ErrUnknownEvent):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
