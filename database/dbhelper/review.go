package dbhelper

import (
	"github.com/google/uuid"

	"github.com/savoria/savoria/database"
	"github.com/savoria/savoria/models"
)

func CreateReview(r *models.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Savoria.QueryRow(`
		INSERT INTO reviews (customer_name, email, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		r.CustomerName, r.Email, r.Rating, r.Comment,
	).Scan(&id)
	return id, err
}

// ListApprovedReviews is the public view; pending and rejected reviews never
// leave the admin screen.
func ListApprovedReviews() ([]models.Review, error) {
	var reviews []models.Review
	err := database.Savoria.Select(&reviews, `
		SELECT id, customer_name, email, rating, comment, status, created_at
		FROM reviews
		WHERE status = 'approved'
		ORDER BY created_at DESC`)
	return reviews, err
}

func ListReviews() ([]models.Review, error) {
	var reviews []models.Review
	err := database.Savoria.Select(&reviews, `
		SELECT id, customer_name, email, rating, comment, status, created_at
		FROM reviews
		ORDER BY created_at DESC`)
	return reviews, err
}

func UpdateReviewStatus(id uuid.UUID, status models.ReviewStatus) (bool, error) {
	res, err := database.Savoria.Exec(`UPDATE reviews SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func DeleteReview(id uuid.UUID) (bool, error) {
	res, err := database.Savoria.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
