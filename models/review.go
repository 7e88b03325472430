package models

import (
	"time"

	"github.com/google/uuid"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) IsValid() bool {
	return s == ReviewPending || s == ReviewApproved || s == ReviewRejected
}

type Review struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	CustomerName string       `db:"customer_name" json:"customer_name"`
	Email        string       `db:"email" json:"email"`
	Rating       int          `db:"rating" json:"rating"`
	Comment      string       `db:"comment" json:"comment"`
	Status       ReviewStatus `db:"status" json:"status"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}
