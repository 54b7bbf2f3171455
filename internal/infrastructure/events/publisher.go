package events

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"jobcard_service/internal/usecase/interfaces"

	pkgerrors "github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"
)

const (
	defaultExchange = "jobcards"
)

// RabbitPublisher broadcasts job card lifecycle events (jobcard.created,
// jobcard.completed, jobcard.invoice.generated, ...) to a topic exchange so
// downstream systems can follow the card without polling.
type RabbitPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

var _ interfaces.IEventPublisher = (*RabbitPublisher)(nil)

// NewRabbitPublisherFromEnv dials RABBITMQ_URL. A missing URL is not an
// error: the service runs fine without a broker, events are just dropped.
func NewRabbitPublisherFromEnv() (*RabbitPublisher, error) {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		log.Printf("[events][infra] RABBITMQ_URL not set, event publishing disabled")
		return nil, nil
	}
	exchange := os.Getenv("RABBITMQ_EXCHANGE")
	if exchange == "" {
		exchange = defaultExchange
	}
	return NewRabbitPublisher(url, exchange)
}

func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, pkgerrors.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, pkgerrors.Wrap(err, "declare exchange")
	}
	log.Printf("[events][infra] publisher connected exchange=%s", exchange)
	return &RabbitPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish serializes the payload to JSON and sends it under the routing key.
func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	if p == nil {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(err, "marshal event payload")
	}
	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

// Close tears down the channel and connection.
func (p *RabbitPublisher) Close() error {
	if p == nil {
		return nil
	}
	if err := p.channel.Close(); err != nil {
		log.Printf("[events][infra] close channel: %v", err)
	}
	return p.conn.Close()
}
