package api

import (
	"encoding/json"
	"net/http"
	"time"

	"postboard/notifier"
)

// keepaliveInterval is how often an SSE comment is sent to hold idle
// connections open through proxies.
const keepaliveInterval = 30 * time.Second

// handleEvents streams post change notifications as Server-Sent Events.
// Clients re-fetch the post list whenever a "change" event arrives.
func (rt *router) handleEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeMessage(w, http.StatusInternalServerError, "SSE not supported")
		return
	}

	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Buffered so a slow client drops events instead of stalling the
	// notifier's dispatch loop. A dropped event only costs one refresh.
	eventCh := make(chan *notifier.Event, 16)
	if rt.changes != nil {
		unsubscribe := rt.changes.Subscribe(func(event *notifier.Event) {
			select {
			case eventCh <- event:
			default:
			}
		})
		defer unsubscribe()
	}

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepalive.C:
			_, _ = w.Write([]byte(": ping\n\n"))
			flusher.Flush()
		case event := <-eventCh:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			_, _ = w.Write([]byte("event: change\ndata: "))
			_, _ = w.Write(data)
			_, _ = w.Write([]byte("\n\n"))
			flusher.Flush()
		}
	}
}
