package dbhelper

import (
	"github.com/google/uuid"

	"github.com/savoria/savoria/database"
	"github.com/savoria/savoria/models"
)

func CreateReservation(r *models.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Savoria.QueryRow(`
		INSERT INTO reservations (customer_name, email, phone, reservation_date, reservation_time, number_of_guests, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		r.CustomerName, r.Email, r.Phone, r.ReservationDate, r.ReservationTime, r.NumberOfGuests, r.SpecialRequests,
	).Scan(&id)
	return id, err
}

func ListReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := database.Savoria.Select(&reservations, `
		SELECT id, customer_name, email, phone, reservation_date::text AS reservation_date,
		       reservation_time, number_of_guests, special_requests, status, created_at
		FROM reservations
		ORDER BY created_at DESC`)
	return reservations, err
}

func UpdateReservationStatus(id uuid.UUID, status models.ReservationStatus) (bool, error) {
	res, err := database.Savoria.Exec(`
		UPDATE reservations SET status = $1
		WHERE id = $2 AND status = 'pending'`, status, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
