package snapshot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
)

// Store is the typed layer over a DocStore. Loads recover from corrupt
// documents by returning the seed (empty) snapshot together with a
// *domain.PersistenceError, so callers can warn without losing the session.
type Store struct {
	docs DocStore
}

func NewStore(docs DocStore) *Store { return &Store{docs: docs} }

// SeedCatalog is the fallback document for tenants with no (or corrupt)
// catalog snapshot.
func SeedCatalog() *domain.CatalogSnapshot {
	return &domain.CatalogSnapshot{Categories: []domain.Category{}}
}

func SeedOrders() *domain.OrderSnapshot {
	return &domain.OrderSnapshot{Orders: []domain.Order{}}
}

func (s *Store) LoadCatalog(ctx context.Context, tenantID string) (*domain.CatalogSnapshot, error) {
	raw, found, err := s.docs.Get(ctx, tenantID, CollectionCatalog)
	if err != nil {
		return SeedCatalog(), &domain.PersistenceError{Op: "load", Err: err}
	}
	if !found {
		return SeedCatalog(), nil
	}
	var snap domain.CatalogSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return SeedCatalog(), &domain.PersistenceError{Op: "load", Err: err}
	}
	if snap.Categories == nil {
		snap.Categories = []domain.Category{}
	}
	return &snap, nil
}

func (s *Store) SaveCatalog(ctx context.Context, tenantID string, snap *domain.CatalogSnapshot) error {
	snap.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(snap)
	if err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	if err := s.docs.Put(ctx, tenantID, CollectionCatalog, raw); err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	return nil
}

func (s *Store) LoadOrders(ctx context.Context, tenantID string) (*domain.OrderSnapshot, error) {
	raw, found, err := s.docs.Get(ctx, tenantID, CollectionOrders)
	if err != nil {
		return SeedOrders(), &domain.PersistenceError{Op: "load", Err: err}
	}
	if !found {
		return SeedOrders(), nil
	}
	var snap domain.OrderSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return SeedOrders(), &domain.PersistenceError{Op: "load", Err: err}
	}
	if snap.Orders == nil {
		snap.Orders = []domain.Order{}
	}
	return &snap, nil
}

func (s *Store) SaveOrders(ctx context.Context, tenantID string, snap *domain.OrderSnapshot) error {
	snap.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(snap)
	if err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	if err := s.docs.Put(ctx, tenantID, CollectionOrders, raw); err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	return nil
}
