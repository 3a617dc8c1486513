package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rick465/react-shop/internal/catalog"
	"github.com/rick465/react-shop/internal/storage"
)

func testCatalog() *catalog.Provider {
	return catalog.NewProviderWithProducts([]catalog.Product{
		{ID: 1, Name: "Phone", Price: 45900, Image: "phone.jpg", Category: "electronics"},
		{ID: 2, Name: "Laptop", Price: 35900, Image: "laptop.jpg", Category: "electronics"},
		{ID: 3, Name: "Sneakers", Price: 3200, Image: "shoes.jpg", Category: "sports"},
	}, 0)
}

func newTestStore(t *testing.T, backing storage.Store) *Store {
	s := NewStore(testCatalog(), backing, 0)
	t.Cleanup(func() { s.Close() })
	return s
}

// failingStore rejects writes after it is armed, to exercise the
// persistence failure paths.
type failingStore struct {
	mu     sync.Mutex
	inner  *storage.MemoryStore
	broken bool
}

func newFailingStore() *failingStore {
	return &failingStore{inner: storage.NewMemoryStore()}
}

func (f *failingStore) breakWrites() {
	f.mu.Lock()
	f.broken = true
	f.mu.Unlock()
}

func (f *failingStore) failing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.broken
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return f.inner.Get(ctx, key)
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failing() {
		return errors.New("disk full")
	}
	return f.inner.Set(ctx, key, value)
}

func (f *failingStore) Delete(ctx context.Context, key string) error {
	if f.failing() {
		return errors.New("disk full")
	}
	return f.inner.Delete(ctx, key)
}

func (f *failingStore) Close() error { return nil }

func TestAdd_NewItemSnapshotsProduct(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryStore())

	require.NoError(t, s.Add(context.Background(), 1, 2))

	items := s.Items()
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, "Phone", items[0].Name)
	assert.Equal(t, int64(45900), items[0].Price)
	assert.Equal(t, "phone.jpg", items[0].Image)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAdd_SameProductMergesIntoOneLine(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, 1))
	require.NoError(t, s.Add(ctx, 1, 1))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAdd_QuantitiesSumAcrossCalls(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	for _, q := range []int{1, 3, 5} {
		require.NoError(t, s.Add(ctx, 2, q))
	}

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 9, items[0].Quantity)
	assert.Equal(t, 9, s.ItemCount())
}

func TestAdd_ConcurrentAddsAlwaysMerge(t *testing.T) {
	// Even with the simulated latency pending, mutations are serialized, so
	// no increment is ever lost.
	s := NewStore(testCatalog(), storage.NewMemoryStore(), time.Millisecond)
	defer s.Close()

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Add(context.Background(), 1, 1))
		}()
	}
	wg.Wait()

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, n, items[0].Quantity)
}

func TestAdd_UnknownProduct(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryStore())

	err := s.Add(context.Background(), 999, 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.Empty(t, s.Items())
}

func TestAdd_InvalidQuantity(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryStore())

	assert.ErrorIs(t, s.Add(context.Background(), 1, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, s.Add(context.Background(), 1, -3), ErrInvalidQuantity)
}

func TestUpdateQuantity(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, 1))
	itemID := s.Items()[0].ID

	require.NoError(t, s.UpdateQuantity(ctx, itemID, 7))
	assert.Equal(t, 7, s.Items()[0].Quantity)

	assert.ErrorIs(t, s.UpdateQuantity(ctx, itemID, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, s.UpdateQuantity(ctx, "no-such-item", 2), ErrItemNotFound)
}

func TestTotals(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	assert.Equal(t, int64(0), s.TotalPrice())
	assert.Equal(t, 0, s.ItemCount())

	require.NoError(t, s.Add(ctx, 1, 2)) // 2 * 45900
	require.NoError(t, s.Add(ctx, 3, 3)) // 3 * 3200

	assert.Equal(t, int64(2*45900+3*3200), s.TotalPrice())
	assert.Equal(t, 5, s.ItemCount())
}

func TestRemove(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, 1))
	require.NoError(t, s.Add(ctx, 2, 1))
	itemID := s.Items()[0].ID

	require.NoError(t, s.Remove(ctx, itemID))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)
}

func TestRemove_UnknownItemIsNoop(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, 1))
	before := s.Items()

	require.NoError(t, s.Remove(ctx, "no-such-item"))
	assert.Equal(t, before, s.Items())
}

func TestClear(t *testing.T) {
	backing := storage.NewMemoryStore()
	s := newTestStore(t, backing)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, 1))
	require.NoError(t, s.Clear(ctx))

	assert.Empty(t, s.Items())
	_, err := backing.Get(ctx, "cart")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestAdd_PersistenceFailureLeavesStateUnchanged(t *testing.T) {
	backing := newFailingStore()
	s := newTestStore(t, backing)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, 1))
	backing.breakWrites()

	err := s.Add(ctx, 2, 1)
	require.ErrorIs(t, err, ErrPersistence)

	// In-memory state still matches the last successful write, and the
	// store stays usable.
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ProductID)
}

func TestNewStore_LoadsPersistedCart(t *testing.T) {
	backing := storage.NewMemoryStore()
	ctx := context.Background()

	first := NewStore(testCatalog(), backing, 0)
	require.NoError(t, first.Add(ctx, 1, 2))
	require.NoError(t, first.Add(ctx, 3, 1))
	require.NoError(t, first.Close())

	second := newTestStore(t, backing)
	items := second.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(2*45900+3200), second.TotalPrice())
}

func TestNewStore_MalformedPayloadMeansEmptyCart(t *testing.T) {
	backing := storage.NewMemoryStore()
	require.NoError(t, backing.Set(context.Background(), "cart", []byte("{not json")))

	s := newTestStore(t, backing)
	assert.Empty(t, s.Items())

	// The store is usable after the fallback.
	require.NoError(t, s.Add(context.Background(), 1, 1))
	assert.Len(t, s.Items(), 1)
}

func TestClosedStoreRejectsMutations(t *testing.T) {
	s := NewStore(testCatalog(), storage.NewMemoryStore(), 0)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Add(context.Background(), 1, 1), ErrStoreClosed)
}
