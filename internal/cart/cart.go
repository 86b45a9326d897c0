// Package cart accumulates a draft order at the point of sale and computes
// its totals. A Cart has no persisted identity; it is discarded once
// Finalize succeeds.
package cart

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
)

type Cart struct {
	lines  []domain.CartLine
	nextID int
}

func New() *Cart { return &Cart{nextID: 1} }

// Lines returns a copy of the current line list.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// AddLine adds one unit of the product with the given additional selection.
// A line for the same product with the same selection is incremented instead
// of duplicated; the unit price is frozen at add time (base + additionals).
func (c *Cart) AddLine(p domain.Product, selected []domain.AdditionalItem) domain.CartLine {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID && sameSelection(c.lines[i].Additionals, selected) {
			c.lines[i].Quantity++
			return c.lines[i]
		}
	}

	unit := p.Price
	adds := make([]domain.AdditionalItem, len(selected))
	copy(adds, selected)
	for _, a := range adds {
		unit += a.Price
	}

	line := domain.CartLine{
		ID:          c.nextID,
		ProductID:   p.ID,
		Name:        p.Name,
		BasePrice:   p.Price,
		UnitPrice:   unit,
		Quantity:    1,
		Additionals: adds,
	}
	c.nextID++
	c.lines = append(c.lines, line)
	return line
}

// SetQuantity sets the line quantity directly; zero or below removes the
// line. No upper bound is enforced.
func (c *Cart) SetQuantity(lineID, quantity int) error {
	for i := range c.lines {
		if c.lines[i].ID != lineID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
		c.lines[i].Quantity = quantity
		return nil
	}
	return fmt.Errorf("cart line %d: %w", lineID, domain.ErrNotFound)
}

func (c *Cart) RemoveLine(lineID int) error {
	return c.SetQuantity(lineID, 0)
}

func (c *Cart) SetNotes(lineID int, notes string) error {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].Notes = notes
			return nil
		}
	}
	return fmt.Errorf("cart line %d: %w", lineID, domain.ErrNotFound)
}

// Total is Σ unitPrice × quantity over all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Change is receivedAmount - Total(). Negative change means the received
// amount does not cover the order; Finalize rejects that for cash payments.
func (c *Cart) Change(receivedAmount float64) float64 {
	return receivedAmount - c.Total()
}

// FinalizeOptions carries checkout input. OrderNumber generation is left to
// the caller via Sequence (orders already on the board today).
type FinalizeOptions struct {
	Customer       domain.Customer
	OrderType      string
	PaymentMethod  string
	ReceivedAmount float64
	Notes          string
	Sequence       int
	Now            time.Time // zero means time.Now
}

// Finalize validates the checkout and produces a frozen Order snapshot with
// status waiting. On any validation failure the cart is left unchanged so
// the retry is idempotent; on success the cart is reset.
func (c *Cart) Finalize(opts FinalizeOptions) (domain.Order, error) {
	if len(c.lines) == 0 {
		return domain.Order{}, domain.Invalid("lines", "cart is empty")
	}
	switch opts.OrderType {
	case domain.OrderTypeDineIn, domain.OrderTypeTakeout, domain.OrderTypeDelivery:
	default:
		return domain.Order{}, domain.Invalid("order_type", "must be dine_in, takeout or delivery")
	}
	if opts.OrderType == domain.OrderTypeDelivery && opts.Customer.Address == "" {
		return domain.Order{}, domain.Invalid("customer.address", "is required for delivery orders")
	}

	total := c.Total()
	change := 0.0
	if opts.PaymentMethod == domain.PaymentCash {
		if opts.ReceivedAmount < total {
			return domain.Order{}, domain.Invalid("received_amount", "is less than the order total")
		}
		change = opts.ReceivedAmount - total
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	lines := make([]domain.CartLine, len(c.lines))
	copy(lines, c.lines)
	for i := range lines {
		adds := make([]domain.AdditionalItem, len(c.lines[i].Additionals))
		copy(adds, c.lines[i].Additionals)
		lines[i].Additionals = adds
	}

	order := domain.Order{
		ID:             uuid.NewString(),
		OrderNumber:    fmt.Sprintf("ORD_%s_%03d", now.Format("20060102"), opts.Sequence+1),
		Customer:       opts.Customer,
		Lines:          lines,
		OrderType:      opts.OrderType,
		PaymentMethod:  opts.PaymentMethod,
		ReceivedAmount: opts.ReceivedAmount,
		Change:         change,
		Total:          total,
		Status:         domain.StatusWaiting,
		Notes:          opts.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	c.lines = nil
	c.nextID = 1
	return order, nil
}

// sameSelection compares additional selections ignoring order.
func sameSelection(a, b []domain.AdditionalItem) bool {
	if len(a) != len(b) {
		return false
	}
	ka := selectionKey(a)
	kb := selectionKey(b)
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}
	return true
}

func selectionKey(items []domain.AdditionalItem) []string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = fmt.Sprintf("%d:%s:%.2f", it.ID, it.Name, it.Price)
	}
	sort.Strings(keys)
	return keys
}
