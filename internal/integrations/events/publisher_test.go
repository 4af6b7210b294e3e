package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func testAppointment(t *testing.T) *domain.Appointment {
	t.Helper()
	startsAt, err := types.ParseWallClock("2025-01-06 10:00")
	require.NoError(t, err)
	return &domain.Appointment{
		ID:              12,
		CustomerName:    "Anna",
		CustomerPhone:   "+79990001122",
		StartsAt:        startsAt,
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
	}
}

func TestPublisher_AppointmentCreated(t *testing.T) {
	writer := &recordingWriter{}
	publisher := NewPublisher(writer)
	publisher.now = func() time.Time { return time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, publisher.AppointmentCreated(context.Background(), testAppointment(t)))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "12", string(msg.Key))

	var event Event
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, TypeAppointmentCreated, event.Type)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "2025-01-06 10:00", event.Data.StartsAt)
	assert.Equal(t, "confirmed", event.Data.Status)
	assert.Equal(t, time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC), event.OccurredAt)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, event.ID, headers["event_id"])
	assert.Equal(t, TypeAppointmentCreated, headers["event_type"])
}

func TestPublisher_WriteError(t *testing.T) {
	publisher := NewPublisher(&recordingWriter{err: errors.New("broker down")})

	err := publisher.AppointmentCancelled(context.Background(), testAppointment(t))
	assert.ErrorIs(t, err, ErrPublish)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.AppointmentCreated(context.Background(), testAppointment(t)))
	assert.NoError(t, p.AppointmentCancelled(context.Background(), testAppointment(t)))
	assert.NoError(t, p.Close())
}

type blockingWriter struct{}

func (blockingWriter) WriteMessages(ctx context.Context, _ ...kafka.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func (blockingWriter) Close() error { return nil }

func TestNewKafkaWriter_SendsImmediately(t *testing.T) {
	w := newKafkaWriter([]string{"localhost:9092"}, "appointments", 2*time.Second)

	assert.Equal(t, "appointments", w.Topic)
	assert.Equal(t, 1, w.BatchSize)
	assert.Equal(t, 10*time.Millisecond, w.BatchTimeout)
	assert.Equal(t, 3, w.MaxAttempts)
	assert.Equal(t, 2*time.Second, w.WriteTimeout)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}

func TestPublish_BoundedByTimeout(t *testing.T) {
	p := NewPublisher(blockingWriter{})
	p.timeout = 20 * time.Millisecond

	started := time.Now()
	err := p.AppointmentCreated(context.Background(), testAppointment(t))

	assert.ErrorIs(t, err, ErrPublish)
	assert.Less(t, time.Since(started), time.Second)
}
