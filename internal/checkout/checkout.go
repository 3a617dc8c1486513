// Package checkout turns a non-empty cart into a persisted order and then
// resets the cart. Effect order matters: the order is created first and the
// cart cleared only after that succeeded, so a failed checkout never loses
// the cart.
package checkout

import (
	"context"
	"errors"
	"log"

	"github.com/rick465/react-shop/internal/cart"
	"github.com/rick465/react-shop/internal/identity"
	"github.com/rick465/react-shop/internal/order"
)

var (
	ErrNotAuthenticated = errors.New("checkout requires a signed-in user")
	ErrEmptyCart        = errors.New("cart is empty, nothing to checkout")
)

// Orders over FreeShippingThreshold ship for free; everything else pays the
// flat fee. A subtotal of exactly the threshold still pays.
const (
	FreeShippingThreshold int64 = 10000
	ShippingFee           int64 = 300
)

// CartStore is what the orchestrator needs from the cart.
type CartStore interface {
	Items() []cart.Item
	TotalPrice() int64
	Clear(ctx context.Context) error
}

// OrderStore is what the orchestrator needs from the order ledger.
type OrderStore interface {
	Create(ctx context.Context, draft order.Draft) (*order.Order, error)
}

// Identity supplies the current user; the orchestrator never mutates it.
type Identity interface {
	Current() *identity.User
}

// Input carries the checkout form fields. Field validation happens in the
// presentation layer; the orchestrator trusts what it receives.
type Input struct {
	ShippingAddress order.Address
	PaymentMethod   string
}

type Orchestrator struct {
	cart     CartStore
	orders   OrderStore
	identity Identity
}

func New(cartStore CartStore, orders OrderStore, id Identity) *Orchestrator {
	return &Orchestrator{
		cart:     cartStore,
		orders:   orders,
		identity: id,
	}
}

// ShippingFor returns the shipping cost for a subtotal.
func ShippingFor(subtotal int64) int64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

// PlaceOrder checks the preconditions, snapshots the cart into an order and
// clears the cart. Precondition failures are reported before anything is
// persisted, so no partial order ever exists.
func (o *Orchestrator) PlaceOrder(ctx context.Context, in Input) (*order.Order, error) {
	user := o.identity.Current()
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	items := o.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := o.cart.TotalPrice()
	shipping := ShippingFor(subtotal)

	orderItems := make([]order.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = order.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		}
	}

	created, err := o.orders.Create(ctx, order.Draft{
		UserID:          user.Email,
		Items:           orderItems,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Total:           subtotal + shipping,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	if err := o.cart.Clear(ctx); err != nil {
		// The order exists; a stale cart is recoverable, so report and move on.
		log.Printf("failed to clear cart after checkout %s: %v", created.ID, err)
	}

	return created, nil
}
