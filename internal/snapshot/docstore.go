// Package snapshot implements whole-document persistence keyed by tenant.
// Each tenant owns one catalog document and one orders document; every write
// replaces the full document (last-write-wins, no merge).
package snapshot

import "context"

// Collections persisted per tenant.
const (
	CollectionCatalog = "catalog"
	CollectionOrders  = "orders"
)

// DocStore is the raw key-value port under the typed Store. Get reports
// found=false for tenants that never saved the collection.
type DocStore interface {
	Get(ctx context.Context, tenantID, collection string) (doc []byte, found bool, err error)
	Put(ctx context.Context, tenantID, collection string, doc []byte) error
}
