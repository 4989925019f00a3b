// Package viewcache holds rendered list-view responses so repeat reads of a
// dashboard page skip the database, and drops them when a write makes them
// stale. Invalidation is best effort and is not transactional with the write.
package viewcache

import (
	"context"
	"time"
)

// View keys for the dashboard pages.
const (
	Dashboard = "/dashboard"
	Customers = "/dashboard/customers"
	Invoices  = "/dashboard/invoices"
)

// Invalidator is all the mutation side needs.
type Invalidator interface {
	Invalidate(ctx context.Context, views ...string) error
}

// Store caches response bodies, grouped by view so a whole view can be
// dropped at once. Every Invalidate bumps the view's version; Set only stores
// a body when the view is still at the version read before rendering it, so a
// read that overlaps a write cannot repopulate the view with stale data.
type Store interface {
	Invalidator
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Version(ctx context.Context, view string) (uint64, error)
	Set(ctx context.Context, view, key string, body []byte, ttl time.Duration, version uint64) error
}

// Nop caches nothing.
type Nop struct{}

func (Nop) Invalidate(context.Context, ...string) error { return nil }

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Nop) Version(context.Context, string) (uint64, error) { return 0, nil }

func (Nop) Set(context.Context, string, string, []byte, time.Duration, uint64) error { return nil }
