package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rick465/react-shop/internal/storage"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrMissingUser       = errors.New("order must belong to a user")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrIllegalTransition = errors.New("illegal order status transition")
	ErrTotalMismatch     = errors.New("order total does not equal subtotal plus shipping")
	// ErrPersistence wraps durable-storage failures surfaced by mutations.
	ErrPersistence = errors.New("persistence failure")
)

const storageKey = "react-shop-orders"

// Store is the append-only ledger of finalized orders. The whole list is
// serialized to durable storage on every mutation and loaded once at
// construction; timestamps round-trip through RFC 3339 strings.
type Store struct {
	storage storage.Store

	mu     sync.RWMutex
	orders []Order
}

// NewStore loads any persisted orders. A missing or malformed payload means
// an empty ledger.
func NewStore(store storage.Store) *Store {
	s := &Store{storage: store}
	s.load()
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
		log.Printf("failed to load orders: %v", err)
		return
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		log.Printf("discarding malformed orders payload: %v", err)
		return
	}
	s.orders = orders
}

// Create validates the draft, assigns an id, timestamps and the pending
// status, appends the order and persists the ledger. The stored order is
// returned so the caller can route to its detail view.
func (s *Store) Create(ctx context.Context, draft Draft) (*Order, error) {
	if len(draft.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if draft.UserID == "" {
		return nil, ErrMissingUser
	}
	if draft.Total != draft.Subtotal+draft.Shipping {
		return nil, ErrTotalMismatch
	}

	now := time.Now()
	o := Order{
		ID:              newOrderID(now),
		UserID:          draft.UserID,
		Items:           append([]OrderItem(nil), draft.Items...),
		Subtotal:        draft.Subtotal,
		Shipping:        draft.Shipping,
		Total:           draft.Total,
		Status:          StatusPending,
		ShippingAddress: draft.ShippingAddress,
		PaymentMethod:   draft.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := append(append([]Order(nil), s.orders...), o)
	if err := s.persist(ctx, orders); err != nil {
		return nil, err
	}
	s.orders = orders

	created := o
	return &created, nil
}

// ByUser returns the user's orders in creation order.
func (s *Store) ByUser(userID string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []Order
	for _, o := range s.orders {
		if o.UserID == userID {
			matched = append(matched, cloneOrder(o))
		}
	}
	return matched
}

// ByID returns the matching order or ErrOrderNotFound.
func (s *Store) ByID(orderID string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			c := cloneOrder(o)
			return &c, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Orders returns the whole ledger in creation order.
func (s *Store) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		all = append(all, cloneOrder(o))
	}
	return all
}

// UpdateStatus moves the order to the given status and refreshes its
// UpdatedAt. An unknown order id is a no-op; a move the lifecycle forbids
// is ErrIllegalTransition.
func (s *Store) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	if !CanTransitionTo(s.orders[idx].Status, status) {
		return ErrIllegalTransition
	}

	orders := append([]Order(nil), s.orders...)
	orders[idx].Status = status
	orders[idx].UpdatedAt = time.Now()
	if err := s.persist(ctx, orders); err != nil {
		return err
	}
	s.orders = orders
	return nil
}

func (s *Store) persist(ctx context.Context, orders []Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}
	if err := s.storage.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func cloneOrder(o Order) Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}

// newOrderID builds ids like order_1700000000000_3f9a2c1d7.
func newOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("order_%d_%s", now.UnixMilli(), suffix)
}
