package models

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "pending"
	ReservationAccepted ReservationStatus = "accepted"
	ReservationRejected ReservationStatus = "rejected"
)

func (s ReservationStatus) IsValid() bool {
	return s == ReservationPending || s == ReservationAccepted || s == ReservationRejected
}

type Reservation struct {
	ID              uuid.UUID         `db:"id" json:"id"`
	CustomerName    string            `db:"customer_name" json:"customer_name"`
	Email           string            `db:"email" json:"email"`
	Phone           string            `db:"phone" json:"phone"`
	ReservationDate string            `db:"reservation_date" json:"reservation_date"`
	ReservationTime string            `db:"reservation_time" json:"reservation_time"`
	NumberOfGuests  int               `db:"number_of_guests" json:"number_of_guests"`
	SpecialRequests *string           `db:"special_requests" json:"special_requests,omitempty"`
	Status          ReservationStatus `db:"status" json:"status"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`
}
