// Package events pushes fire-and-forget notifications about new orders and
// reservations onto NATS so back-of-house tooling can react. When no NATS URL
// is configured every publish is a no-op.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

const (
	SubjectOrderCreated       = "savoria.orders.created"
	SubjectReservationCreated = "savoria.reservations.created"
)

type OrderCreated struct {
	OrderID      uuid.UUID `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationCreated struct {
	ReservationID  uuid.UUID `json:"reservation_id"`
	CustomerName   string    `json:"customer_name"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	NumberOfGuests int       `json:"number_of_guests"`
	CreatedAt      time.Time `json:"created_at"`
}

var conn *nats.Conn

// Init connects the package-level publisher. An empty url disables publishing.
func Init(url string) error {
	if url == "" {
		return nil
	}
	c, err := nats.Connect(url)
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	conn = c
	return nil
}

// Publish marshals payload and hands it to NATS. A publish failure is logged,
// never propagated: the order or reservation is already persisted and the
// user-facing flow must not care.
func Publish(subject string, payload interface{}) {
	if conn == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Errorf("failed to marshal event for %s", subject)
		return
	}
	if err := conn.Publish(subject, data); err != nil {
		logrus.WithError(err).Errorf("failed to publish %s", subject)
	}
}

func Close() {
	if conn != nil {
		conn.Close()
	}
}
