package models

import (
	"time"

	"github.com/google/uuid"
)

type MenuItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Category    string    `db:"category" json:"category"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	Available   bool      `db:"available" json:"available"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
