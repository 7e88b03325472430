package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderAccepted OrderStatus = "accepted"
	OrderRejected OrderStatus = "rejected"
)

func (s OrderStatus) IsValid() bool {
	return s == OrderPending || s == OrderAccepted || s == OrderRejected
}

// OrderItem is one line of the frozen snapshot stored with an order. It
// intentionally carries only id, name, price and quantity; later menu edits
// never change what a past order shows.
type OrderItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}

// OrderItems marshals to a jsonb column.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into OrderItems", src)
	}
	return json.Unmarshal(b, items)
}

type Order struct {
	ID              uuid.UUID   `db:"id" json:"id"`
	CustomerName    string      `db:"customer_name" json:"customer_name"`
	Email           string      `db:"email" json:"email"`
	Phone           string      `db:"phone" json:"phone"`
	Items           OrderItems  `db:"items" json:"items"`
	TotalPrice      float64     `db:"total_price" json:"total_price"`
	SpecialRequests *string     `db:"special_requests" json:"special_requests,omitempty"`
	Status          OrderStatus `db:"status" json:"status"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
}
