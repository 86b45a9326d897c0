package notify

import (
	"context"
	"encoding/json"

	"github.com/dominiofast/smartfood-landing-sub000/internal/common/logger"
	"github.com/dominiofast/smartfood-landing-sub000/internal/connections/rabbitmq"
	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
)

// Subscriber consumes the notifications queue and logs every lifecycle
// event. This is where a messaging-gateway send would hook in.
type Subscriber struct {
	rmq *rabbitmq.Client
	lg  *logger.Logger
}

func NewSubscriber(rmq *rabbitmq.Client) *Subscriber {
	return &Subscriber{rmq: rmq, lg: logger.New("notifier")}
}

// Run blocks until ctx is canceled. Malformed events are dropped with a
// nack(requeue=false); processed events are acked.
func (s *Subscriber) Run(ctx context.Context) error {
	msgs, err := s.rmq.Consume(rabbitmq.NotificationsQueue, "notifier", 1)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			s.lg.Info("graceful_shutdown", nil)
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			var ev domain.StatusEvent
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				s.lg.Warn("event_malformed", err, nil)
				_ = d.Nack(false, false)
				continue
			}
			s.lg.Info("event_received", map[string]any{
				"event":        ev.Event,
				"tenant_id":    ev.TenantID,
				"order_number": ev.OrderNumber,
				"old_status":   string(ev.OldStatus),
				"new_status":   string(ev.NewStatus),
			})
			_ = d.Ack(false)
		}
	}
}
