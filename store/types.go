package store

import (
	"fmt"
	"time"
)

// 1. Order represents a transaction made by a customer.
// We use int64 cents (lowest currency unit) to avoid floating-point errors.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	TotalCents int64
	Items      []OrderItem
	OrderedAt  time.Time `json:"ordered_at"`
}

// DisplayName is a computed, read-only view of the order.
func (o Order) DisplayName() string {
	return fmt.Sprintf("order #%d (%s)", o.ID, o.Status)
}

// 2. OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// 3. Customer represents the user placing orders.
type Customer struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`

	nickname string
}

// Nickname is a property with a backing unexported field.
func (c Customer) Nickname() string { return c.nickname }

// SetNickname makes Nickname a writable property.
func (c *Customer) SetNickname(v string) { c.nickname = v }

// 4. OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
