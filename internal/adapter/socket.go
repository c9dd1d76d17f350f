package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/MKhiriev/go-case-tracker/models"
)

const socketPath = "/socket"

// socketFrame keeps data raw until the event name is known.
type socketFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func (c *httpCaseTrackerClient) WatchCases(ctx context.Context, fn func(models.CaseCreatedPayload)) error {
	socketURL, err := socketURLFor(c.client.BaseURL, models.TopicCases)
	if err != nil {
		return err
	}

	conn, _, err := websocket.Dial(ctx, socketURL, nil)
	if err != nil {
		return fmt.Errorf("socket dial: %w", err)
	}
	defer conn.CloseNow()

	c.logger.Debug().Str("url", socketURL).Msg("socket connected")

	for {
		var frame socketFrame
		if err = wsjson.Read(ctx, conn, &frame); err != nil {
			if ctx.Err() != nil {
				_ = conn.Close(websocket.StatusNormalClosure, "")
				return nil
			}
			if status := websocket.CloseStatus(err); status == websocket.StatusGoingAway || status == websocket.StatusNormalClosure {
				return nil
			}
			return fmt.Errorf("socket read: %w", err)
		}

		if frame.Event != models.EventCaseCreated {
			continue
		}

		var payload models.CaseCreatedPayload
		if err = json.Unmarshal(frame.Data, &payload); err != nil {
			c.logger.Warn().Err(err).Str("event", frame.Event).Msg("skipping malformed socket frame")
			continue
		}
		fn(payload)
	}
}

// socketURLFor swaps the http scheme of baseURL for its websocket
// counterpart and adds the topic parameter.
func socketURLFor(baseURL, topic string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid server address: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", errors.New("server address must use http or https")
	}

	u.Path = strings.TrimRight(u.Path, "/") + socketPath
	u.RawQuery = url.Values{"topic": {topic}}.Encode()
	return u.String(), nil
}
