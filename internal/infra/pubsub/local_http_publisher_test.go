package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"abacus/config"
	"abacus/internal/domain/constants"
	"abacus/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PushesEvent(t *testing.T) {
	var (
		got       PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "calcs", discardLogger())
	event := &service.CalculationEvent{
		RequestID:     "req-1",
		EventType:     constants.CalculationEventCreated,
		CalculationID: "calc-1",
		UserID:        "user-1",
		Type:          "add",
		Inputs:        []float64{1, 2},
		Result:        3,
		OccurredAt:    time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishCalculationEvent(context.Background(), event))
	require.NoError(t, publisher.Close())

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "projects/local/subscriptions/calcs-push", got.Subscription)
	assert.Equal(t, constants.CalculationEventCreated, got.Message.Attributes["event_type"])
	assert.NotEmpty(t, got.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.CalculationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "calc-1", decoded.CalculationID)
	assert.Equal(t, []float64{1, 2}, decoded.Inputs)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", discardLogger())
	err := publisher.PublishCalculationEvent(context.Background(), &service.CalculationEvent{EventType: constants.CalculationEventDeleted})
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	noop, err := NewEventPublisher(PublisherParams{Lc: lc, Config: &config.Config{}, Logger: discardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, noop)
	assert.NoError(t, noop.PublishCalculationEvent(context.Background(), &service.CalculationEvent{}))

	local, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://127.0.0.1:1"}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, local)

	_, err = NewEventPublisher(PublisherParams{
		Lc:     lc,
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)

	_, err = NewEventPublisher(PublisherParams{
		Lc:     lc,
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)

	lc.RequireStart().RequireStop()
}
