// Package notify fans domain events out to live subscribers.
//
// Delivery is at most once: a subscriber whose buffer is full misses the
// event. Nothing is persisted or replayed.
package notify

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/models"
)

// DefaultBuffer is the per-subscriber queue length used when Subscribe is
// given a non-positive size.
const DefaultBuffer = 16

// ErrHubClosed is returned by Publish after Close.
var ErrHubClosed = errors.New("notification hub is closed")

// Subscription receives the events published to one topic. C is closed
// when the subscription ends.
type Subscription struct {
	C     <-chan models.Event
	Topic string

	ch   chan models.Event
	once sync.Once
}

func (s *Subscription) close() {
	s.once.Do(func() { close(s.ch) })
}

// Hub keeps subscribers grouped by topic.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Subscription]struct{}
	closed bool

	logger *logger.Logger
}

func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		topics: make(map[string]map[*Subscription]struct{}),
		logger: logger,
	}
}

// Subscribe registers a subscriber for topic. On a closed hub the returned
// subscription is already closed.
func (h *Hub) Subscribe(topic string, buffer int) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	ch := make(chan models.Event, buffer)
	sub := &Subscription{C: ch, Topic: topic, ch: ch}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.close()
		return sub
	}

	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.topics[topic] = subs
	}
	subs[sub] = struct{}{}

	h.logger.Debug().Str("topic", topic).Int("subscribers", len(subs)).Msg("subscriber joined")
	return sub
}

// Unsubscribe removes sub and closes its channel. Calling it twice is safe.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.topics[sub.Topic]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.topics, sub.Topic)
		}
	}
	sub.close()
}

// Publish hands the event to every subscriber of topic without blocking.
// Subscribers with a full buffer skip the event.
func (h *Hub) Publish(ctx context.Context, topic, event string, payload any) error {
	msg := models.Event{Event: event, Data: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return ErrHubClosed
	}

	var dropped int
	for sub := range h.topics[topic] {
		select {
		case sub.ch <- msg:
		default:
			dropped++
		}
	}

	if dropped > 0 {
		logger.FromContext(ctx).Warn().
			Str("topic", topic).
			Str("event", event).
			Int("dropped", dropped).
			Msg("slow subscribers missed an event")
	}

	return nil
}

// Subscribers reports how many subscribers topic has.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Close ends every subscription. Later publishes fail with ErrHubClosed.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for topic, subs := range h.topics {
		for sub := range subs {
			sub.close()
		}
		delete(h.topics, topic)
	}
	h.logger.Info().Msg("notification hub closed")
}
