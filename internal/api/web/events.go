package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	connectapi "github.com/osa030/moodbox/internal/api/connect"
	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
)

// handleEvents attaches the page as a player host and streams view and
// command notifications as server-sent events until the page goes away.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if !connectapi.ValidToken(s.token, r.URL.Query().Get("token")) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rc := http.NewResponseController(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		zlog.Warn().Msgf("event stream not supported: %v", err)
		return
	}

	stream := &eventStream{w: w, rc: rc}
	defer stream.close()
	subscriptionID := s.session.AttachHost(stream)
	defer s.session.Detach(subscriptionID)

	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			zlog.Info().Msgf("player host detached: id=%s", subscriptionID)
			return
		case <-s.session.Done():
			return
		case <-ticker.C:
			if err := stream.ping(); err != nil {
				zlog.Debug().Msgf("event stream keep-alive failed: id=%s: %v", subscriptionID, err)
				return
			}
		}
	}
}

var errStreamClosed = errors.New("event stream closed")

// eventStream writes notifications as server-sent events. Writes after the
// handler has returned are refused.
type eventStream struct {
	mu     sync.Mutex
	w      http.ResponseWriter
	rc     *http.ResponseController
	closed bool
}

func (e *eventStream) Send(n *remotev1.Notification) error {
	data, err := remotev1.Codec().Marshal(n)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return errStreamClosed
	}
	if _, err := fmt.Fprintf(e.w, "id: %d\nevent: %s\ndata: %s\n\n", n.SequenceNo, n.Type, data); err != nil {
		return err
	}
	return e.rc.Flush()
}

func (e *eventStream) ping() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return errStreamClosed
	}
	if _, err := fmt.Fprint(e.w, ": ping\n\n"); err != nil {
		return err
	}
	return e.rc.Flush()
}

func (e *eventStream) close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}
