package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	"canteen/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Client publishes order lifecycle events.
type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
}

type kafkaClientImpl struct {
	config    *config.Config
	transport *kafkaGo.Transport
	address   net.Addr
}

func New(config *config.Config) Client {
	mechanism := plain.Mechanism{
		Username: config.Kafka.SASL.Username,
		Password: config.Kafka.SASL.Password,
	}

	transport := &kafkaGo.Transport{
		SASL: mechanism,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config:    config,
		transport: transport,
		address:   kafkaGo.TCP(config.Kafka.Brokers...),
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	msgs := []kafkaGo.Message{}

	writer := &kafkaGo.Writer{
		Addr:                   k.address,
		Topic:                  topic,
		Transport:              k.transport,
		AllowAutoTopicCreation: true,
		Async:                  true,
	}

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	err = writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", topic).Msg("Sent message successfully.")

	return nil
}
