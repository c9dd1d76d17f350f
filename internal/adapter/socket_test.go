package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-case-tracker/internal/handler/ws"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/notify"
	"github.com/MKhiriev/go-case-tracker/models"
)

func TestSocketURLFor(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		want    string
		wantErr bool
	}{
		{name: "http", base: "http://localhost:4000", want: "ws://localhost:4000/socket?topic=cases"},
		{name: "https with path", base: "https://cases.example.com/tracker/", want: "wss://cases.example.com/tracker/socket?topic=cases"},
		{name: "ftp", base: "ftp://localhost", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := socketURLFor(tt.base, models.TopicCases)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatchCases_DeliversCreatedCases(t *testing.T) {
	hub := notify.NewHub(logger.Nop())
	srv := httptest.NewServer(ws.NewHandler(hub, "", logger.Nop()))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan models.CaseCreatedPayload, 1)
	done := make(chan error, 1)
	go func() {
		done <- client.WatchCases(ctx, func(p models.CaseCreatedPayload) { received <- p })
	}()

	require.Eventually(t, func() bool { return hub.Subscribers(models.TopicCases) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(ctx, models.TopicCases, "somethingElse", nil))
	require.NoError(t, hub.Publish(ctx, models.TopicCases, models.EventCaseCreated, models.CaseCreatedPayload{
		Message: "New case created",
		Case:    models.Case{ID: "c-1", Title: "Broken printer"},
	}))

	select {
	case p := <-received:
		assert.Equal(t, "New case created", p.Message)
		assert.Equal(t, "c-1", p.Case.ID)
	case <-ctx.Done():
		t.Fatal("no event received")
	}

	// closing the hub ends the stream with GoingAway
	hub.Close()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("watch did not return")
	}
}
