package kafkabroker

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const defaultWriteTimeout = 5 * time.Second

type ProducerConfig struct {
	Brokers []string
	Topic   string
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(cfg ProducerConfig) *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: defaultWriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{
		writer: w,
		topic:  cfg.Topic,
	}
}

// SendMessage writes one message. Messages with the same key land on the
// same partition, so events of a service stay ordered.
func (p *Producer) SendMessage(ctx context.Context, key, value []byte) error {
	msg := kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}
	err := p.writer.WriteMessages(ctx, msg)
	if err != nil {
		log.WithField("topic", p.topic).Errorf("Failed to send message: %v", err)
		return err
	}
	log.WithField("topic", p.topic).Debugf("Message sent: key=%s", string(key))
	return nil
}

func (p *Producer) Close() error {
	log.Info("Closing Kafka producer...")
	return p.writer.Close()
}
