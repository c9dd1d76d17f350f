// Package ws serves the real-time notification channel over WebSocket.
package ws

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/notify"
)

const (
	subscriberBuffer = 64
	writeTimeout     = 5 * time.Second

	defaultTopic = "unknown"
)

// Broker is the subscription side of the notification hub.
type Broker interface {
	Subscribe(topic string, buffer int) *notify.Subscription
	Unsubscribe(sub *notify.Subscription)
}

type Handler struct {
	broker         Broker
	originPatterns []string

	logger *logger.Logger
}

// NewHandler accepts handshakes from allowedOrigin and from the server's
// own host.
func NewHandler(broker Broker, allowedOrigin string, logger *logger.Logger) *Handler {
	return &Handler{
		broker:         broker,
		originPatterns: originPatterns(allowedOrigin),
		logger:         logger,
	}
}

// ServeHTTP upgrades the connection and streams the events of the topic
// named by the "topic" query parameter, or by "uniqueKey" for older
// clients. Frames are {"event": ..., "data": ...}.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: h.originPatterns})
	if err != nil {
		log.Warn().Err(err).Str("origin", r.Header.Get("Origin")).Msg("websocket handshake rejected")
		return
	}

	topic := topicFromRequest(r)
	sub := h.broker.Subscribe(topic, subscriberBuffer)
	defer h.broker.Unsubscribe(sub)

	log.Info().Str("topic", topic).Msg("socket connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Inbound frames are ignored. Reading notices the peer going away.
	ctx = conn.CloseRead(ctx)

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "closed")
			log.Info().Str("topic", topic).Msg("socket disconnected")
			return
		case ev, ok := <-sub.C:
			if !ok {
				_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}

			writeCtx, cancelWrite := context.WithTimeout(ctx, writeTimeout)
			err = wsjson.Write(writeCtx, conn, ev)
			cancelWrite()
			if err != nil {
				log.Warn().Err(err).Str("topic", topic).Msg("socket write failed")
				_ = conn.Close(websocket.StatusInternalError, "write failed")
				return
			}
		}
	}
}

func topicFromRequest(r *http.Request) string {
	q := r.URL.Query()
	if topic := q.Get("topic"); topic != "" {
		return topic
	}
	if key := q.Get("uniqueKey"); key != "" {
		return key
	}
	return defaultTopic
}

// originPatterns turns "https://app.example.com" into the host pattern the
// handshake check expects.
func originPatterns(allowedOrigin string) []string {
	if allowedOrigin == "" {
		return nil
	}
	if u, err := url.Parse(allowedOrigin); err == nil && u.Host != "" {
		return []string{u.Host}
	}
	return []string{allowedOrigin}
}
