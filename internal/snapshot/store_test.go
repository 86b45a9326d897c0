package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
)

func sampleCatalog() *domain.CatalogSnapshot {
	return &domain.CatalogSnapshot{
		Categories: []domain.Category{
			{
				ID: 1, Name: "Pizzas", Icon: "🍕", Order: 1, Active: true,
				Products: []domain.Product{
					{
						ID: 1, Name: "Margherita", Description: "Tomato, mozzarella, basil",
						Price: 35.90, CategoryID: 1, Order: 1, Active: true,
						Additionals: []domain.AdditionalGroup{
							{
								ID: 1, Name: "Borders", Order: 1,
								Items: []domain.AdditionalItem{
									{ID: 1, Name: "Catupiry", Price: 6, Order: 1},
									{ID: 2, Name: "Cheddar", Price: 5, Order: 2},
								},
							},
						},
					},
				},
			},
			{ID: 2, Name: "Drinks", Order: 2, Active: true, Products: []domain.Product{}},
		},
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryStore())
	ctx := context.Background()

	in := sampleCatalog()
	require.NoError(t, store.SaveCatalog(ctx, "sub000", in))

	out, err := store.LoadCatalog(ctx, "sub000")
	require.NoError(t, err)
	assert.Equal(t, in.Categories, out.Categories, "round-trip must reproduce the tree exactly")
}

func TestLoadCatalogUnknownTenantReturnsSeed(t *testing.T) {
	store := NewStore(NewMemoryStore())
	snap, err := store.LoadCatalog(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Empty(t, snap.Categories)
	assert.NotNil(t, snap.Categories)
}

func TestLoadCatalogCorruptDocumentFallsBackToSeed(t *testing.T) {
	docs := NewMemoryStore()
	require.NoError(t, docs.Put(context.Background(), "sub000", CollectionCatalog, []byte("{not json")))

	store := NewStore(docs)
	snap, err := store.LoadCatalog(context.Background(), "sub000")

	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "load", pe.Op)
	require.NotNil(t, snap, "corrupt document must degrade to the seed, not crash")
	assert.Empty(t, snap.Categories)
}

func TestOrdersRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryStore())
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	in := &domain.OrderSnapshot{Orders: []domain.Order{{
		ID:          "ord-1",
		OrderNumber: "ORD_20260901_001",
		Customer:    domain.Customer{Name: "Ana", Phone: "11999990000"},
		Lines: []domain.CartLine{
			{ID: 1, ProductID: 1, Name: "Margherita", BasePrice: 35.90, UnitPrice: 41.90, Quantity: 2,
				Additionals: []domain.AdditionalItem{{ID: 1, Name: "Catupiry", Price: 6, Order: 1}}},
		},
		OrderType: domain.OrderTypeDelivery,
		Total:     83.80,
		Status:    domain.StatusWaiting,
		CreatedAt: now,
		UpdatedAt: now,
	}}}
	require.NoError(t, store.SaveOrders(ctx, "sub000", in))

	out, err := store.LoadOrders(ctx, "sub000")
	require.NoError(t, err)
	assert.Equal(t, in.Orders, out.Orders)
}

func TestTenantsAreIsolated(t *testing.T) {
	store := NewStore(NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, store.SaveCatalog(ctx, "tenant-a", sampleCatalog()))

	snap, err := store.LoadCatalog(ctx, "tenant-b")
	require.NoError(t, err)
	assert.Empty(t, snap.Categories)
}

func TestMemoryStoreCopiesDocuments(t *testing.T) {
	docs := NewMemoryStore()
	ctx := context.Background()
	doc := []byte(`{"categories":[]}`)
	require.NoError(t, docs.Put(ctx, "t", CollectionCatalog, doc))

	doc[0] = 'X' // caller mutating its buffer must not corrupt the store

	got, found, err := docs.Get(ctx, "t", CollectionCatalog)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, byte('{'), got[0])
}
