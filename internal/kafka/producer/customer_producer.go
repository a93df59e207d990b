package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Dhoini/customer-service/internal/domain"
	"github.com/Dhoini/customer-service/pkg/logger"
	"github.com/IBM/sarama"
)

const (
	TopicCustomerCreated = "customer.created"
	TopicCustomerUpdated = "customer.updated"
	TopicCustomerDeleted = "customer.deleted"
)

// CustomerEvent представляет событие жизненного цикла клиента для Kafka
type CustomerEvent struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// CustomerProducer интерфейс для отправки событий клиентов
type CustomerProducer interface {
	PublishCustomerCreated(ctx context.Context, customer domain.Customer) error
	PublishCustomerUpdated(ctx context.Context, customer domain.Customer) error
	PublishCustomerDeleted(ctx context.Context, customer domain.Customer) error
	Close() error
}

type kafkaCustomerProducer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
}

// NewKafkaCustomerProducer создает новый продюсер событий клиентов
func NewKafkaCustomerProducer(producer sarama.SyncProducer, log *logger.Logger) CustomerProducer {
	return &kafkaCustomerProducer{
		producer: producer,
		log:      log,
	}
}

// PublishCustomerCreated публикует событие о создании клиента
func (p *kafkaCustomerProducer) PublishCustomerCreated(ctx context.Context, customer domain.Customer) error {
	return p.publishEvent(TopicCustomerCreated, customer)
}

// PublishCustomerUpdated публикует событие об обновлении клиента
func (p *kafkaCustomerProducer) PublishCustomerUpdated(ctx context.Context, customer domain.Customer) error {
	return p.publishEvent(TopicCustomerUpdated, customer)
}

// PublishCustomerDeleted публикует событие об удалении клиента
func (p *kafkaCustomerProducer) PublishCustomerDeleted(ctx context.Context, customer domain.Customer) error {
	return p.publishEvent(TopicCustomerDeleted, customer)
}

// Close закрывает продюсер
func (p *kafkaCustomerProducer) Close() error {
	return p.producer.Close()
}

func (p *kafkaCustomerProducer) publishEvent(topic string, customer domain.Customer) error {
	event := CustomerEvent{
		ID:        customer.ID,
		FullName:  customer.FullName,
		Email:     customer.Email,
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal customer event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(customer.ID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", topic, err)
	}

	p.log.Debug("Published event to %s (partition: %d, offset: %d)", topic, partition, offset)

	return nil
}

// NopCustomerProducer продюсер-заглушка на случай недоступности Kafka
type NopCustomerProducer struct{}

// NewNopCustomerProducer создает продюсер-заглушку
func NewNopCustomerProducer() CustomerProducer {
	return &NopCustomerProducer{}
}

func (p *NopCustomerProducer) PublishCustomerCreated(ctx context.Context, customer domain.Customer) error {
	return nil
}

func (p *NopCustomerProducer) PublishCustomerUpdated(ctx context.Context, customer domain.Customer) error {
	return nil
}

func (p *NopCustomerProducer) PublishCustomerDeleted(ctx context.Context, customer domain.Customer) error {
	return nil
}

func (p *NopCustomerProducer) Close() error {
	return nil
}
