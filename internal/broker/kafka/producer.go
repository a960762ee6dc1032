package kafkabroker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Egor213/LogDesk/internal/domain"
	errorsUtils "github.com/Egor213/LogDesk/pkg/errors"
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
	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		Balancer:     &kafka.RoundRobin{},
		WriteTimeout: defaultWriteTimeout,
	})
	return &Producer{
		writer: w,
		topic:  cfg.Topic,
	}
}

func (p *Producer) SendMessage(ctx context.Context, key, value []byte) error {
	msg := kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}
	err := p.writer.WriteMessages(ctx, msg)
	if err != nil {
		log.Warnf("Failed to send message to %s: %v", p.topic, err)
		return errorsUtils.WrapPathErr(err)
	}
	log.Debugf("Message sent: topic=%s value=%s", p.topic, string(value))
	return nil
}

// PublishAction sends event keyed by its action name.
func (p *Producer) PublishAction(ctx context.Context, event domain.ActionEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return p.SendMessage(ctx, []byte(event.Action), value)
}

func (p *Producer) Close() error {
	log.Info("Closing Kafka producer...")
	return p.writer.Close()
}
