package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"henawys-art/internal/messaging"
)

type publisher struct {
	writer *kafkago.Writer
}

// NewPublisher returns a messaging.Publisher writing to one topic. Close the
// returned closer on shutdown to flush buffered messages.
func NewPublisher(brokers []string, topic string) (messaging.Publisher, io.Closer) {
	w := &kafkago.Writer{
		Addr:     kafkago.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafkago.LeastBytes{},
	}
	return &publisher{writer: w}, w
}

func (p *publisher) Publish(ctx context.Context, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

type subscriber struct {
	brokers []string
	topic   string
	groupID string
	logger  *log.Logger
}

func NewSubscriber(brokers []string, topic, groupID string, logger *log.Logger) messaging.Subscriber {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &subscriber{brokers: brokers, topic: topic, groupID: groupID, logger: logger}
}

const (
	retryBaseDelay = time.Second
	retryMaxDelay  = time.Minute
)

// Consume reads messages one at a time and only commits an offset once its
// message is accepted. A failing message is retried in place with backoff:
// committing a later message would advance the group offset past the failed
// one and silently drop it.
func (s *subscriber) Consume(ctx context.Context, handler func(ctx context.Context, payload []byte) error) error {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: s.brokers,
		Topic:   s.topic,
		GroupID: s.groupID,
	})
	defer reader.Close()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				s.logger.Printf("consumer shutting down topic=%s", s.topic)
				return nil
			}
			s.logger.Printf("fetch message topic=%s error=%v", s.topic, err)
			continue
		}

		if err := handleWithRetry(ctx, handler, msg.Value, retryBaseDelay, func(attempt int, err error) {
			s.logger.Printf("handle message topic=%s offset=%d attempt=%d error=%v", s.topic, msg.Offset, attempt, err)
		}); err != nil {
			// Only a cancelled context gets here; stop without committing
			// so the message is redelivered to the next consumer.
			s.logger.Printf("consumer shutting down topic=%s", s.topic)
			return nil
		}
		if err := reader.CommitMessages(ctx, msg); err != nil {
			s.logger.Printf("commit offset topic=%s offset=%d error=%v", s.topic, msg.Offset, err)
		}
	}
}

// handleWithRetry runs the handler until it succeeds or ctx is done,
// doubling the delay between attempts up to retryMaxDelay.
func handleWithRetry(ctx context.Context, handler func(ctx context.Context, payload []byte) error, payload []byte, baseDelay time.Duration, onError func(attempt int, err error)) error {
	delay := baseDelay
	for attempt := 1; ; attempt++ {
		err := handler(ctx, payload)
		if err == nil {
			return nil
		}
		onError(attempt, err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		if delay *= 2; delay > retryMaxDelay {
			delay = retryMaxDelay
		}
	}
}
