// Package notify publishes order lifecycle events to the order exchanges
// and hosts the subscriber that drains them. Delivery to the actual
// messaging gateway is a collaborator concern; the subscriber only hands the
// event over.
package notify

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dominiofast/smartfood-landing-sub000/internal/connections/rabbitmq"
	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
)

// Broker is the confirming publish surface of the AMQP client.
type Broker interface {
	Publish(ctx context.Context, exchange, key string, pub amqp.Publishing) error
}

type Publisher struct {
	broker Broker
}

func NewPublisher(b Broker) *Publisher {
	return &Publisher{broker: b}
}

// Publish sends one status event with persistent delivery, waiting for the
// broker confirm on each publish: first to the orders topic exchange under
// "<tenant>.<event>" so consumers can bind per tenant or per event class,
// then to the notifications fanout.
func (p *Publisher) Publish(ctx context.Context, ev domain.StatusEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pub := amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		MessageId:     newMsgID(),
		CorrelationId: ev.OrderNumber,
		Timestamp:     time.Now().UTC(),
		Headers: amqp.Table{
			"x-source": "order-board",
			"x-tenant": ev.TenantID,
		},
		Body: body,
	}

	key := fmt.Sprintf("%s.%s", ev.TenantID, ev.Event)
	if err := p.broker.Publish(pctx, rabbitmq.OrdersExchange, key, pub); err != nil {
		return fmt.Errorf("publish %s to %s: %w", ev.Event, rabbitmq.OrdersExchange, err)
	}
	if err := p.broker.Publish(pctx, rabbitmq.NotificationsExchange, "", pub); err != nil {
		return fmt.Errorf("publish %s to %s: %w", ev.Event, rabbitmq.NotificationsExchange, err)
	}
	return nil
}

func newMsgID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
