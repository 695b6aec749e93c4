package entities

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

// ParseOrderStatus accepts only the six known values. Any status may follow
// any other one; there is no transition graph.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range orderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

type ShippingAddress struct {
	Address string
	City    string
	State   string
	ZipCode string
	Country string
}

// OrderItem is a snapshot of the product at checkout time.
type OrderItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
	Image     string
}

type Order struct {
	ID     string
	UserID string

	Email     string
	FirstName string
	LastName  string
	Phone     string
	Shipping  ShippingAddress

	Items []OrderItem

	// precomputed by the caller, stored as is
	Subtotal     float64
	Tax          float64
	ShippingCost float64
	Total        float64

	PaymentMethod string
	Notes         string

	Status          OrderStatus
	StatusUpdatedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks what checkout must provide: a contact email and at least
// one line item.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.Email) == "" {
		return newValidationError("email", "is required")
	}
	if len(o.Items) == 0 {
		return newValidationError("items", "at least one item is required")
	}
	return nil
}

func (o *Order) SetStatus(status OrderStatus, at time.Time) {
	o.Status = status
	o.StatusUpdatedAt = &at
	o.UpdatedAt = at
}
