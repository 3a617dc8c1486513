package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rick465/react-shop/internal/catalog"
	"github.com/rick465/react-shop/internal/storage"
)

var (
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrStoreClosed     = errors.New("cart store is closed")
	// ErrPersistence wraps durable-storage failures surfaced by mutations.
	ErrPersistence = errors.New("persistence failure")
)

const storageKey = "cart"

// ProductLookup resolves a product id to the catalog entry whose fields are
// snapshotted onto a new cart line.
type ProductLookup interface {
	ProductByID(ctx context.Context, id int64) (*catalog.Product, error)
}

// Store owns the session cart. Every mutation is funneled through a single
// consumer goroutine, so the read-modify-write of each add/update/remove is
// atomic with respect to the others even while the simulated network delay
// is pending: two concurrent adds of the same product always merge into one
// line instead of losing an increment.
//
// In-memory state only changes after the matching write to durable storage
// succeeded, so a failed mutation never leaves the two out of sync.
type Store struct {
	catalog ProductLookup
	storage storage.Store
	delay   time.Duration

	mu    sync.RWMutex
	items []Item

	ops  chan operation
	done chan struct{}
	wg   sync.WaitGroup
}

type operation struct {
	apply func() error
	errc  chan error
}

// NewStore loads any persisted cart and starts the mutation consumer. A
// missing or malformed persisted payload is treated as an empty cart.
func NewStore(lookup ProductLookup, store storage.Store, delay time.Duration) *Store {
	s := &Store{
		catalog: lookup,
		storage: store,
		delay:   delay,
		ops:     make(chan operation),
		done:    make(chan struct{}),
	}
	s.load()

	s.wg.Add(1)
	go s.run()

	return s
}

func (s *Store) load() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	data, err := s.storage.Get(ctx, storageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return
	}
	if err != nil {
		log.Printf("failed to load cart: %v", err)
		return
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt payload counts as no data, not a fatal condition.
		log.Printf("discarding malformed cart payload: %v", err)
		return
	}
	s.items = items
}

func (s *Store) run() {
	defer s.wg.Done()
	for {
		select {
		case op := <-s.ops:
			op.errc <- op.apply()
		case <-s.done:
			return
		}
	}
}

func (s *Store) do(apply func() error) error {
	op := operation{apply: apply, errc: make(chan error, 1)}
	select {
	case s.ops <- op:
	case <-s.done:
		return ErrStoreClosed
	}
	return <-op.errc
}

// Close stops the mutation consumer. Pending operations complete first.
func (s *Store) Close() error {
	close(s.done)
	s.wg.Wait()
	return nil
}

// Add puts quantity units of the product into the cart. If a line for the
// product already exists its quantity grows by the requested amount; there
// is never more than one line per product.
func (s *Store) Add(ctx context.Context, productID int64, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return s.do(func() error {
		s.simulateLatency()

		product, err := s.catalog.ProductByID(ctx, productID)
		if err != nil {
			return err
		}

		items := s.copyItems()
		merged := false
		for i := range items {
			if items[i].ProductID == productID {
				items[i].Quantity += quantity
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, Item{
				ID:        uuid.NewString(),
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  quantity,
				Image:     product.Image,
			})
		}

		return s.commit(ctx, items)
	})
}

// UpdateQuantity replaces the quantity of the line matching itemID.
func (s *Store) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return s.do(func() error {
		items := s.copyItems()
		for i := range items {
			if items[i].ID == itemID {
				items[i].Quantity = quantity
				return s.commit(ctx, items)
			}
		}
		return ErrItemNotFound
	})
}

// Remove deletes the line matching itemID. Removing an unknown id is a
// no-op, not an error.
func (s *Store) Remove(ctx context.Context, itemID string) error {
	return s.do(func() error {
		items := s.copyItems()
		for i := range items {
			if items[i].ID == itemID {
				items = append(items[:i], items[i+1:]...)
				return s.commit(ctx, items)
			}
		}
		return nil
	})
}

// Clear empties the cart and drops the durable record.
func (s *Store) Clear(ctx context.Context) error {
	return s.do(func() error {
		if err := s.storage.Delete(ctx, storageKey); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		return nil
	})
}

// commit persists items and, only on success, swaps them in as the current
// cart state.
func (s *Store) commit(ctx context.Context, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.storage.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Store) copyItems() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Item(nil), s.items...)
}

// Items returns a snapshot of the current cart lines.
func (s *Store) Items() []Item {
	return s.copyItems()
}

// TotalPrice is the sum of price times quantity over all lines.
func (s *Store) TotalPrice() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, item := range s.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount is the total unit count, not the number of lines.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) simulateLatency() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}
