package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/chrisdamba/foodadmin/internal/logging"
	"github.com/chrisdamba/foodadmin/internal/models"
)

type SaramaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaConfig() *sarama.Config {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // required by SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second
	return saramaConfig
}

func NewSaramaPublisher(config *models.Config) (*SaramaPublisher, error) {
	brokerList := config.Brokers()
	if len(brokerList) == 0 {
		return nil, errors.New("kafka_broker_list is empty")
	}

	producer, err := sarama.NewSyncProducer(brokerList, NewSaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}
	return NewSaramaPublisherWithProducer(producer, config.KafkaTopic), nil
}

func NewSaramaPublisherWithProducer(producer sarama.SyncProducer, topic string) *SaramaPublisher {
	return &SaramaPublisher{producer: producer, topic: topic}
}

func (s *SaramaPublisher) Publish(ctx context.Context, event Event) error {
	if s.producer == nil {
		return errors.New("sarama producer is not initialized")
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.Key()),
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", s.topic, err)
	}

	logging.FromContext(ctx).Debug("published change event",
		"topic", s.topic, "partition", partition, "offset", offset, "action", event.Action)
	return nil
}

func (s *SaramaPublisher) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}
