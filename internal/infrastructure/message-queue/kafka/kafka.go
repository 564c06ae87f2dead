package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alimikegami/point-of-sales/storefront-service/config"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/dto"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/fetcher"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	EventFetchAttempt = "fetch_attempt"
	writeTimeout      = 5 * time.Second
	queueSize         = 256
)

func CreateKafkaProducer(config *config.Config) (*kafka.Conn, error) {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, fmt.Errorf("dialing kafka leader: %w", err)
	}
	return conn, nil
}

// MessageWriter is the part of *kafka.Conn the publisher needs.
type MessageWriter interface {
	SetWriteDeadline(t time.Time) error
	WriteMessages(msgs ...kafka.Message) (int, error)
}

// AttemptPublisher forwards fetch attempts to Kafka as diagnostics events. Events are
// queued and written from Run; when the queue is full they are dropped.
type AttemptPublisher struct {
	writer MessageWriter
	events chan dto.KafkaMessage
}

func NewAttemptPublisher(writer MessageWriter) *AttemptPublisher {
	return &AttemptPublisher{
		writer: writer,
		events: make(chan dto.KafkaMessage, queueSize),
	}
}

func (p *AttemptPublisher) ObserveAttempt(_ context.Context, attempt fetcher.Attempt) {
	event := dto.KafkaMessage{
		EventType: EventFetchAttempt,
		Data: dto.FetchAttemptEvent{
			Candidate:  attempt.Candidate,
			Status:     attempt.Status,
			Succeeded:  attempt.Succeeded(),
			DurationMS: attempt.Duration.Milliseconds(),
			OccurredAt: time.Now().UTC(),
		},
	}
	if attempt.Err != nil {
		event.Data.Error = attempt.Err.Error()
	}

	select {
	case p.events <- event:
	default:
		log.Warn().Str("component", "AttemptPublisher").Str("candidate", attempt.Candidate).Msg("event queue full, dropping fetch attempt")
	}
}

// Run writes queued events until ctx is done.
func (p *AttemptPublisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-p.events:
			if err := p.publish(event); err != nil {
				log.Error().Err(err).Str("component", "AttemptPublisher").Msg("failed to publish fetch attempt")
			}
		}
	}
}

func (p *AttemptPublisher) publish(event dto.KafkaMessage) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.writer.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	_, err = p.writer.WriteMessages(kafka.Message{
		Key:   []byte(event.Data.Candidate),
		Value: payload,
	})
	return err
}
