package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
)

func margherita() domain.Product {
	return domain.Product{ID: 1, Name: "Margherita", Price: 35.90, CategoryID: 1}
}

func TestAddLineMergesSameSelection(t *testing.T) {
	c := New()
	c.AddLine(margherita(), nil)
	c.AddLine(margherita(), nil)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.InDelta(t, 71.80, c.Total(), 1e-9)
}

func TestAddLineDistinguishesSelections(t *testing.T) {
	c := New()
	bacon := domain.AdditionalItem{ID: 1, Name: "Bacon", Price: 4.50}
	c.AddLine(margherita(), nil)
	c.AddLine(margherita(), []domain.AdditionalItem{bacon})

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.InDelta(t, 35.90, lines[0].UnitPrice, 1e-9)
	assert.InDelta(t, 40.40, lines[1].UnitPrice, 1e-9)
}

func TestAdditionalsBakedIntoUnitPrice(t *testing.T) {
	c := New()
	items := []domain.AdditionalItem{
		{ID: 1, Name: "Extra cheese", Price: 3.00},
		{ID: 2, Name: "Olives", Price: 2.50},
	}
	line := c.AddLine(margherita(), items)

	assert.InDelta(t, 35.90, line.BasePrice, 1e-9)
	assert.InDelta(t, 41.40, line.UnitPrice, 1e-9)
	assert.InDelta(t, 41.40, c.Total(), 1e-9)
}

func TestTotalIsLinearInQuantity(t *testing.T) {
	c := New()
	a := c.AddLine(domain.Product{ID: 1, Name: "A", Price: 10.00}, nil)
	b := c.AddLine(domain.Product{ID: 2, Name: "B", Price: 7.25}, nil)
	require.NoError(t, c.SetQuantity(a.ID, 3))
	require.NoError(t, c.SetQuantity(b.ID, 2))
	base := c.Total()

	require.NoError(t, c.SetQuantity(a.ID, 6))
	require.NoError(t, c.SetQuantity(b.ID, 4))
	assert.InDelta(t, base*2, c.Total(), 1e-9)
}

func TestZeroPriceLineDoesNotChangeTotal(t *testing.T) {
	c := New()
	c.AddLine(margherita(), nil)
	before := c.Total()
	c.AddLine(domain.Product{ID: 9, Name: "Free water", Price: 0}, nil)
	assert.InDelta(t, before, c.Total(), 1e-9)
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	c1 := New()
	c2 := New()
	l1 := c1.AddLine(margherita(), nil)
	l2 := c2.AddLine(margherita(), nil)

	require.NoError(t, c1.SetQuantity(l1.ID, 0))
	require.NoError(t, c2.RemoveLine(l2.ID))

	assert.Equal(t, c1.Lines(), c2.Lines())
	assert.True(t, c1.Empty())
}

func TestSetQuantityUnknownLine(t *testing.T) {
	c := New()
	err := c.SetQuantity(42, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChangeArithmetic(t *testing.T) {
	c := New()
	c.AddLine(margherita(), nil)

	for _, received := range []float64{0, 35.90, 40.00, 100.00} {
		assert.InDelta(t, received-c.Total(), c.Change(received), 1e-9)
	}
}

func TestFinalizeCashHappyPath(t *testing.T) {
	c := New()
	c.AddLine(margherita(), nil)

	order, err := c.Finalize(FinalizeOptions{
		Customer:       domain.Customer{Name: "Ana"},
		OrderType:      domain.OrderTypeTakeout,
		PaymentMethod:  domain.PaymentCash,
		ReceivedAmount: 40.00,
	})
	require.NoError(t, err)

	assert.InDelta(t, 35.90, order.Total, 1e-9)
	assert.InDelta(t, 4.10, order.Change, 1e-9)
	assert.Equal(t, domain.StatusWaiting, order.Status)
	assert.NotEmpty(t, order.ID)
	assert.Regexp(t, `^ORD_\d{8}_\d{3}$`, order.OrderNumber)
	assert.True(t, c.Empty(), "cart resets after successful finalize")
}

func TestFinalizeCashInsufficient(t *testing.T) {
	c := New()
	c.AddLine(margherita(), nil)

	_, err := c.Finalize(FinalizeOptions{
		OrderType:      domain.OrderTypeTakeout,
		PaymentMethod:  domain.PaymentCash,
		ReceivedAmount: 30.00,
	})
	assert.True(t, domain.IsValidation(err))
	assert.Len(t, c.Lines(), 1, "cart unchanged after failed finalize")
}

func TestFinalizeDeliveryRequiresAddress(t *testing.T) {
	c := New()
	c.AddLine(margherita(), nil)

	_, err := c.Finalize(FinalizeOptions{
		Customer:      domain.Customer{Name: "Bruno", Phone: "11999990000"},
		OrderType:     domain.OrderTypeDelivery,
		PaymentMethod: domain.PaymentCard,
	})
	assert.True(t, domain.IsValidation(err))

	// retry with the address succeeds against the untouched cart
	order, err := c.Finalize(FinalizeOptions{
		Customer:      domain.Customer{Name: "Bruno", Address: "Rua A, 10"},
		OrderType:     domain.OrderTypeDelivery,
		PaymentMethod: domain.PaymentCard,
	})
	require.NoError(t, err)
	assert.InDelta(t, 35.90, order.Total, 1e-9)
}

func TestFinalizeEmptyCart(t *testing.T) {
	c := New()
	_, err := c.Finalize(FinalizeOptions{
		OrderType:     domain.OrderTypeTakeout,
		PaymentMethod: domain.PaymentCard,
	})
	assert.True(t, domain.IsValidation(err))
}

func TestFinalizeFreezesLineData(t *testing.T) {
	c := New()
	p := margherita()
	c.AddLine(p, nil)

	order, err := c.Finalize(FinalizeOptions{
		OrderType:     domain.OrderTypeDineIn,
		PaymentMethod: domain.PaymentCard,
	})
	require.NoError(t, err)

	// catalog price changes later must not affect the frozen order
	p.Price = 99.99
	assert.InDelta(t, 35.90, order.Lines[0].UnitPrice, 1e-9)
	assert.InDelta(t, 35.90, order.Total, 1e-9)
}
