package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ErrPublish возвращается, если событие не удалось отправить
var ErrPublish = errors.New("events: failed to publish event")

// MessageWriter подмножество *kafka.Writer
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Настройки writer'а: событие отправляется сразу, без накопления пачки
const (
	writerBatchSize    = 1
	writerBatchTimeout = 10 * time.Millisecond
	writerMaxAttempts  = 3
)

// Publisher публикует события о записях в kafka.
// Ключ сообщения - ID записи, так события одной записи попадают в одну партицию.
type Publisher struct {
	writer  MessageWriter
	timeout time.Duration // общий предел на публикацию, 0 - без предела
	now     func() time.Time
}

// NewKafkaPublisher создает publisher с kafka.Writer для указанного топика.
// writeTimeout ограничивает всю публикацию вместе с повторами.
func NewKafkaPublisher(brokers []string, topic string, writeTimeout time.Duration) *Publisher {
	p := NewPublisher(newKafkaWriter(brokers, topic, writeTimeout))
	p.timeout = writeTimeout
	return p
}

func newKafkaWriter(brokers []string, topic string, writeTimeout time.Duration) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    writerBatchSize,
		BatchTimeout: writerBatchTimeout,
		MaxAttempts:  writerMaxAttempts,
		WriteTimeout: writeTimeout,
		RequiredAcks: kafka.RequireOne,
	}
}

// NewPublisher создает publisher поверх произвольного writer
func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer, now: time.Now}
}

// AppointmentCreated публикует событие о новой записи
func (p *Publisher) AppointmentCreated(ctx context.Context, appt *domain.Appointment) error {
	return p.publish(ctx, TypeAppointmentCreated, appt)
}

// AppointmentCancelled публикует событие об отмене записи
func (p *Publisher) AppointmentCancelled(ctx context.Context, appt *domain.Appointment) error {
	return p.publish(ctx, TypeAppointmentCancelled, appt)
}

// Close закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) publish(ctx context.Context, eventType string, appt *domain.Appointment) error {
	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: p.now().UTC(),
		Data: AppointmentPayload{
			AppointmentID:   appt.ID,
			CustomerName:    appt.CustomerName,
			CustomerPhone:   appt.CustomerPhone,
			StartsAt:        appt.StartsAt.String(),
			DurationMinutes: appt.DurationMinutes,
			Status:          string(appt.Status),
			AppointmentType: appt.AppointmentType,
		},
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPublish, eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(appt.ID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s id=%d: %v", ErrPublish, eventType, appt.ID, err)
	}

	return nil
}

// NoopPublisher используется, когда kafka выключена
type NoopPublisher struct{}

func (NoopPublisher) AppointmentCreated(context.Context, *domain.Appointment) error   { return nil }
func (NoopPublisher) AppointmentCancelled(context.Context, *domain.Appointment) error { return nil }
func (NoopPublisher) Close() error                                                    { return nil }
