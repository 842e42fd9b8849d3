// Package eventbus wraps watermill so modules can publish domain events
// without knowing whether NATS or the in-process channel is behind it.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
)

const correlationIDKey = "correlation_id"

// EventBus publishes and subscribes to domain topics.
type EventBus interface {
	Publish(topic string, messages ...*message.Message) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	Close() error
}

type natsBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     *slog.Logger
}

// New returns a NATS-backed bus when natsURL is set and an in-process
// channel bus otherwise.
func New(natsURL string, logger *slog.Logger) (EventBus, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	if natsURL == "" {
		logger.Info("Using in-process event bus")
		return gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, wmLogger), nil
	}

	marshaler := &nats.NATSMarshaler{}
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Name("nascon"),
	}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         natsURL,
			Marshaler:   marshaler,
			NatsOptions: options,
			JetStream:   nats.JetStreamConfig{Disabled: true},
		},
		wmLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaler,
			NatsOptions: options,
			JetStream:   nats.JetStreamConfig{Disabled: true},
		},
		wmLogger,
	)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	logger.Info("Connected event bus to NATS", attr.String("nats_url", natsURL))
	return &natsBus{publisher: publisher, subscriber: subscriber, logger: logger}, nil
}

func (b *natsBus) Publish(topic string, messages ...*message.Message) error {
	return b.publisher.Publish(topic, messages...)
}

func (b *natsBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.subscriber.Subscribe(ctx, topic)
}

func (b *natsBus) Close() error {
	if err := b.publisher.Close(); err != nil {
		b.logger.Error("Error closing NATS publisher", attr.Error(err))
	}
	if err := b.subscriber.Close(); err != nil {
		b.logger.Error("Error closing NATS subscriber", attr.Error(err))
		return err
	}
	return nil
}

// NewMessage encodes payload as JSON and stamps the correlation id from ctx.
func NewMessage(ctx context.Context, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	if id := attr.CorrelationID(ctx); id != "" {
		msg.Metadata.Set(correlationIDKey, id)
	}
	msg.SetContext(ctx)
	return msg, nil
}

// CorrelationID returns the correlation id stamped on msg.
func CorrelationID(msg *message.Message) string {
	return msg.Metadata.Get(correlationIDKey)
}

// Decode unmarshals the message payload into dst.
func Decode(msg *message.Message, dst any) error {
	if err := json.Unmarshal(msg.Payload, dst); err != nil {
		return fmt.Errorf("failed to decode message %s: %w", msg.UUID, err)
	}
	return nil
}

// Publisher is the narrow publishing side used by services.
type Publisher interface {
	Publish(topic string, messages ...*message.Message) error
}

// PublishEvent encodes payload and publishes it on topic. A nil publisher is a no-op.
func PublishEvent(ctx context.Context, pub Publisher, topic string, payload any) error {
	if pub == nil {
		return nil
	}
	msg, err := NewMessage(ctx, payload)
	if err != nil {
		return err
	}
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}
	return nil
}
