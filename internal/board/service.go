// Package board tracks finalized orders through the five fulfillment stages
// and persists the whole collection per tenant after every move.
package board

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dominiofast/smartfood-landing-sub000/internal/common/logger"
	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
	"github.com/dominiofast/smartfood-landing-sub000/internal/snapshot"
)

// EventPublisher fans order lifecycle events out to subscribers. A nil
// publisher disables notifications without changing board behavior.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.StatusEvent) error
}

type BoardServiceInterface interface {
	Append(ctx context.Context, tenantID string, order domain.Order) error
	MoveOrder(ctx context.Context, tenantID, orderID string, newStatus domain.OrderStatus) (domain.Order, error)
	ListByStatus(ctx context.Context, tenantID string, status domain.OrderStatus) ([]domain.Order, error)
	ListAll(ctx context.Context, tenantID string) ([]domain.Order, error)
	Count(ctx context.Context, tenantID string) (int, error)
}

type Service struct {
	store  *snapshot.Store
	events EventPublisher
	lg     *logger.Logger
}

func NewService(store *snapshot.Store, events EventPublisher) BoardServiceInterface {
	return &Service{store: store, events: events, lg: logger.New("order-board")}
}

func (s *Service) load(ctx context.Context, tenantID string) *domain.OrderSnapshot {
	snap, err := s.store.LoadOrders(ctx, tenantID)
	if err != nil {
		s.lg.Warn("orders_load_degraded", err, map[string]any{"tenant_id": tenantID})
	}
	return snap
}

func (s *Service) save(ctx context.Context, tenantID string, snap *domain.OrderSnapshot) {
	if err := s.store.SaveOrders(ctx, tenantID, snap); err != nil {
		s.lg.Warn("snapshot_save_failed", err, map[string]any{"tenant_id": tenantID})
	}
}

// Append adds a freshly finalized order to the board and announces it.
func (s *Service) Append(ctx context.Context, tenantID string, order domain.Order) error {
	if !order.Status.Valid() {
		return domain.Invalid("status", "is not a board stage")
	}
	snap := s.load(ctx, tenantID)
	snap.Orders = append(snap.Orders, order)
	s.save(ctx, tenantID, snap)

	s.publish(ctx, domain.StatusEvent{
		Event:       domain.EventOrderCreated,
		TenantID:    tenantID,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		NewStatus:   order.Status,
		OrderType:   order.OrderType,
		Total:       order.Total,
		ChangedBy:   "pos",
		Timestamp:   time.Now().UTC(),
	})
	return nil
}

// MoveOrder applies a drag on the board. Moves outside the transition table
// fail with InvalidTransitionError; a move onto the current stage is an
// idempotent no-op; an unknown id is tolerated with a logged warning because
// drag sources can be stale in a reconnecting client.
func (s *Service) MoveOrder(ctx context.Context, tenantID, orderID string, newStatus domain.OrderStatus) (domain.Order, error) {
	if !newStatus.Valid() {
		return domain.Order{}, domain.Invalid("status", "is not a board stage")
	}

	snap := s.load(ctx, tenantID)
	i := indexOf(snap.Orders, orderID)
	if i < 0 {
		s.lg.Warn("order_not_on_board", fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound),
			map[string]any{"tenant_id": tenantID, "order_id": orderID})
		return domain.Order{}, nil
	}
	order := &snap.Orders[i]

	if order.Status == newStatus {
		return *order, nil
	}
	if !allowedTransition(order.OrderType, order.Status, newStatus) {
		return domain.Order{}, &domain.InvalidTransitionError{
			From: order.Status, To: newStatus, OrderType: order.OrderType,
		}
	}

	old := order.Status
	order.Status = newStatus
	order.UpdatedAt = time.Now().UTC()
	s.save(ctx, tenantID, snap)

	s.publish(ctx, domain.StatusEvent{
		Event:       domain.EventStatusChanged,
		TenantID:    tenantID,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		OldStatus:   old,
		NewStatus:   newStatus,
		OrderType:   order.OrderType,
		ChangedBy:   "board",
		Timestamp:   order.UpdatedAt,
	})
	s.lg.Debug("order_moved", map[string]any{
		"tenant_id": tenantID, "order_number": order.OrderNumber,
		"old_status": string(old), "new_status": string(newStatus),
	})
	return *order, nil
}

// ListByStatus returns the column for one stage, oldest first (FIFO kitchen
// discipline).
func (s *Service) ListByStatus(ctx context.Context, tenantID string, status domain.OrderStatus) ([]domain.Order, error) {
	if !status.Valid() {
		return nil, domain.Invalid("status", "is not a board stage")
	}
	snap := s.load(ctx, tenantID)
	out := make([]domain.Order, 0)
	for _, o := range snap.Orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Service) ListAll(ctx context.Context, tenantID string) ([]domain.Order, error) {
	snap := s.load(ctx, tenantID)
	out := make([]domain.Order, len(snap.Orders))
	copy(out, snap.Orders)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Count is used for order-number sequencing at checkout.
func (s *Service) Count(ctx context.Context, tenantID string) (int, error) {
	snap := s.load(ctx, tenantID)
	return len(snap.Orders), nil
}

func (s *Service) publish(ctx context.Context, ev domain.StatusEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.lg.Warn("event_publish_failed", err, map[string]any{
			"order_number": ev.OrderNumber, "event": ev.Event,
		})
	}
}

func indexOf(orders []domain.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}
