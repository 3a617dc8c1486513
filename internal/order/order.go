package order

import "time"

// OrderItem is a line copied from the cart at checkout time. Orders never
// track later cart or catalog changes.
type OrderItem struct {
	ID        string `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// Address holds the contact and delivery fields collected at checkout.
type Address struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// Order is one finalized purchase. Total == Subtotal + Shipping always
// holds; UpdatedAt >= CreatedAt and is refreshed on every status change.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Items           []OrderItem `json:"items"`
	Subtotal        int64       `json:"subtotal"`
	Shipping        int64       `json:"shipping"`
	Total           int64       `json:"total"`
	Status          Status      `json:"status"`
	ShippingAddress Address     `json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Draft is the input to Store.Create: everything an order carries except
// the generated id, timestamps and initial status.
type Draft struct {
	UserID          string
	Items           []OrderItem
	Subtotal        int64
	Shipping        int64
	Total           int64
	ShippingAddress Address
	PaymentMethod   string
}
