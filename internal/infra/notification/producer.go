package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"railbook/internal/domain/booking"
	"railbook/internal/pkg/errs"

	"github.com/IBM/sarama"
)

// EventPublisher emits booking lifecycle events for downstream
// consumers (SMS/e-mail fanout, analytics).
type EventPublisher interface {
	BookingConfirmed(ctx context.Context, res *booking.Reservation) error
	BookingCancelled(ctx context.Context, res *booking.Reservation, promoted []string) error
}

// BookingEvent is the wire format on the booking topic, keyed by PNR so
// one reservation's events stay ordered within a partition.
type BookingEvent struct {
	Type         string    `json:"type"`
	PNR          string    `json:"pnr"`
	TrainNumber  string    `json:"train_number"`
	ServiceDate  string    `json:"service_date"`
	Class        string    `json:"class"`
	Quota        string    `json:"quota"`
	Status       string    `json:"status"`
	Passengers   int32     `json:"passengers"`
	FarePaise    int64     `json:"fare_paise"`
	PromotedPNRs []string  `json:"promoted_pnrs,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

type SaramaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaPublisher(brokers []string, topic string) (*SaramaPublisher, func(), error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	p, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create kafka producer")
	}

	pub := &SaramaPublisher{producer: p, topic: topic}
	cleanup := func() {
		if err := p.Close(); err != nil {
			slog.Warn("failed to close kafka producer", "error", err.Error())
		}
	}
	return pub, cleanup, nil
}

func NewSaramaPublisherFrom(producer sarama.SyncProducer, topic string) *SaramaPublisher {
	return &SaramaPublisher{producer: producer, topic: topic}
}

func (p *SaramaPublisher) BookingConfirmed(ctx context.Context, res *booking.Reservation) error {
	return p.publish(ctx, eventFrom(EventBookingConfirmed, res, nil))
}

func (p *SaramaPublisher) BookingCancelled(ctx context.Context, res *booking.Reservation, promoted []string) error {
	return p.publish(ctx, eventFrom(EventBookingCancelled, res, promoted))
}

func eventFrom(eventType string, res *booking.Reservation, promoted []string) BookingEvent {
	key := res.UnitKey()
	return BookingEvent{
		Type:         eventType,
		PNR:          res.PNR(),
		TrainNumber:  key.TrainNumber,
		ServiceDate:  key.DateString(),
		Class:        key.Class.String(),
		Quota:        key.Quota.String(),
		Status:       res.Status().String(),
		Passengers:   res.PassengerCount(),
		FarePaise:    res.Fare().Paise(),
		PromotedPNRs: promoted,
		OccurredAt:   time.Now().UTC(),
	}
}

func (p *SaramaPublisher) publish(_ context.Context, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PNR),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}

// NopPublisher is used when Kafka is disabled by configuration.
type NopPublisher struct{}

func (NopPublisher) BookingConfirmed(context.Context, *booking.Reservation) error { return nil }
func (NopPublisher) BookingCancelled(context.Context, *booking.Reservation, []string) error {
	return nil
}
