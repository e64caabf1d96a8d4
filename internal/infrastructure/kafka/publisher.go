package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type CommissionPublisher struct {
	writer *kafka.Writer
}

func NewCommissionPublisher(brokers []string, topic string) *CommissionPublisher {
	return &CommissionPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *CommissionPublisher) Publish(event CommissionEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.ReferrerID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *CommissionPublisher) Close() error {
	return k.writer.Close()
}
