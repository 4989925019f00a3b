package viewcache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreInvalidateDropsWholeView(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.Set(ctx, Customers, "/dashboard/customers?page=1", []byte("a"), time.Minute, 0))
	require.NoError(t, m.Set(ctx, Customers, "/dashboard/customers?page=2", []byte("b"), time.Minute, 0))
	require.NoError(t, m.Set(ctx, Invoices, "/dashboard/invoices", []byte("c"), time.Minute, 0))

	body, ok, err := m.Get(ctx, "/dashboard/customers?page=2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("b"), body)

	require.NoError(t, m.Invalidate(ctx, Customers))

	_, ok, _ = m.Get(ctx, "/dashboard/customers?page=1")
	assert.False(t, ok)
	_, ok, _ = m.Get(ctx, "/dashboard/customers?page=2")
	assert.False(t, ok)
	_, ok, _ = m.Get(ctx, "/dashboard/invoices")
	assert.True(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, Dashboard, "/dashboard", []byte("x"), time.Second, 0))
	_, ok, _ := m.Get(ctx, "/dashboard")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok, _ = m.Get(ctx, "/dashboard")
	assert.False(t, ok)
}

func TestMemoryStoreExpiredEntriesAreDropped(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		key := fmt.Sprintf("/dashboard/customers?query=q%d", i)
		require.NoError(t, m.Set(ctx, Customers, key, []byte("x"), time.Second, 0))
	}
	require.Equal(t, 1000, m.size())

	now = now.Add(time.Hour)
	_, ok, _ := m.Get(ctx, "/dashboard/customers?query=q0")
	assert.False(t, ok)
	assert.Equal(t, 999, m.size())

	// Keys nobody asks for again are swept by the next write.
	require.NoError(t, m.Set(ctx, Invoices, "/dashboard/invoices", []byte("y"), time.Minute, 0))
	assert.Equal(t, 1, m.size())
}

func TestMemoryStoreRejectsBodyRenderedBeforeInvalidate(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	version, err := m.Version(ctx, Customers)
	require.NoError(t, err)

	require.NoError(t, m.Invalidate(ctx, Customers, Dashboard))

	require.NoError(t, m.Set(ctx, Customers, "/dashboard/customers", []byte("stale"), time.Minute, version))
	_, ok, _ := m.Get(ctx, "/dashboard/customers")
	assert.False(t, ok)

	fresh, err := m.Version(ctx, Customers)
	require.NoError(t, err)
	assert.Equal(t, version+1, fresh)
	require.NoError(t, m.Set(ctx, Customers, "/dashboard/customers", []byte("fresh"), time.Minute, fresh))
	body, ok, _ := m.Get(ctx, "/dashboard/customers")
	assert.True(t, ok)
	assert.Equal(t, []byte("fresh"), body)
}

func TestNopNeverHits(t *testing.T) {
	ctx := context.Background()
	var s Store = Nop{}
	require.NoError(t, s.Set(ctx, Dashboard, "/dashboard", []byte("x"), time.Minute, 0))
	_, ok, err := s.Get(ctx, "/dashboard")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, s.Invalidate(ctx, Dashboard))
}
