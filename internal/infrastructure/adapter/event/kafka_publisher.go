package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	eventport "github.com/romeopeter/payment-orchestrator/internal/domain/port/event"
)

// defaultSendTimeout bounds one publish when no timeout is configured
const defaultSendTimeout = 5 * time.Second

// KafkaConfig holds producer settings
type KafkaConfig struct {
	Brokers        []string
	Topic          string
	ClientID       string
	MaxRetries     int
	ConnectRetries int
	RetryDelay     time.Duration
	SendTimeout    time.Duration
}

func (c KafkaConfig) sendTimeout() time.Duration {
	if c.SendTimeout > 0 {
		return c.SendTimeout
	}
	return defaultSendTimeout
}

// KafkaPublisher sends status change events through a synchronous producer
type KafkaPublisher struct {
	producer    sarama.SyncProducer
	topic       string
	sendTimeout time.Duration
	logger      coreport.Logger
}

// producerFactory opens a producer against the brokers
type producerFactory func(brokers []string, config *sarama.Config) (sarama.SyncProducer, error)

// NewSaramaConfig returns the producer configuration used for status events.
// Broker round trips are capped by the send timeout so a stalled cluster cannot hold a request.
func NewSaramaConfig(cfg KafkaConfig) *sarama.Config {
	timeout := cfg.sendTimeout()

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = cfg.MaxRetries
	config.Producer.Partitioner = sarama.NewHashPartitioner
	config.Producer.Timeout = timeout
	config.Net.DialTimeout = timeout
	config.Net.ReadTimeout = timeout
	config.Net.WriteTimeout = timeout
	if cfg.ClientID != "" {
		config.ClientID = cfg.ClientID
	}
	return config
}

// NewKafkaPublisher connects to the brokers, retrying a few times while they come up
func NewKafkaPublisher(
	ctx context.Context,
	cfg KafkaConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) (*KafkaPublisher, error) {
	producer, err := connectProducer(ctx, cfg, sarama.NewSyncProducer, timeProvider, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Kafka producer connected", map[string]any{
		"brokers": cfg.Brokers,
		"topic":   cfg.Topic,
	})
	return NewKafkaPublisherWithProducer(producer, cfg, logger), nil
}

// connectProducer dials until a producer opens, the attempts run out or ctx is done
func connectProducer(
	ctx context.Context,
	cfg KafkaConfig,
	dial producerFactory,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) (sarama.SyncProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher: no brokers configured")
	}

	attempts := max(cfg.ConnectRetries, 1)

	var lastErr error
	for i := 1; i <= attempts; i++ {
		producer, err := dial(cfg.Brokers, NewSaramaConfig(cfg))
		if err == nil {
			return producer, nil
		}
		lastErr = err

		logger.Warn("Failed to connect to Kafka", map[string]any{
			"attempt": i,
			"brokers": cfg.Brokers,
			"error":   err.Error(),
		})
		if i == attempts {
			break
		}
		if err := timeProvider.Wait(ctx, coreport.Duration(cfg.RetryDelay)); err != nil {
			return nil, fmt.Errorf("kafka publisher: connect abandoned: %w", err)
		}
	}

	return nil, fmt.Errorf("kafka publisher: %w", lastErr)
}

// NewKafkaPublisherWithProducer wraps an existing producer
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, cfg KafkaConfig, logger coreport.Logger) *KafkaPublisher {
	topic := cfg.Topic
	if topic == "" {
		topic = eventport.TopicStatusChanged
	}
	return &KafkaPublisher{
		producer:    producer,
		topic:       topic,
		sendTimeout: cfg.sendTimeout(),
		logger:      logger.With(map[string]any{"topic": topic}),
	}
}

type sendResult struct {
	partition int32
	offset    int64
	err       error
}

// PublishStatusChanged sends evt keyed by gateway reference so one transaction's events stay ordered
func (p *KafkaPublisher) PublishStatusChanged(ctx context.Context, evt eventport.StatusChanged) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(evt.GatewayRef),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: evt.OccurredAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventport.TopicStatusChanged)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, p.sendTimeout)
	defer cancel()

	// The producer call cannot be interrupted; the wait for it can
	done := make(chan sendResult, 1)
	go func() {
		partition, offset, err := p.producer.SendMessage(msg)
		done <- sendResult{partition: partition, offset: offset, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("send status event: %w", res.err)
		}
		p.logger.Debug("Status event published", map[string]any{
			"gateway_ref": evt.GatewayRef,
			"status":      evt.Status,
			"partition":   res.partition,
			"offset":      res.offset,
		})
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send status event: %w", ctx.Err())
	}
}

// Close flushes and closes the producer
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

var _ eventport.Publisher = (*KafkaPublisher)(nil)
