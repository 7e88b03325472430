package dbhelper

import (
	"context"

	"github.com/google/uuid"

	"github.com/savoria/savoria/database"
	"github.com/savoria/savoria/models"
)

// OrderStore adapts the orders table to the order.Store interface.
type OrderStore struct{}

func (OrderStore) CreateOrder(ctx context.Context, o *models.Order) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Savoria.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, email, phone, items, total_price, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		o.CustomerName, o.Email, o.Phone, o.Items, o.TotalPrice, o.SpecialRequests,
	).Scan(&id)
	return id, err
}

func ListOrders() ([]models.Order, error) {
	var orders []models.Order
	err := database.Savoria.Select(&orders, `
		SELECT id, customer_name, email, phone, items, total_price, special_requests, status, created_at
		FROM orders
		ORDER BY created_at DESC`)
	return orders, err
}

// UpdateOrderStatus moves a pending order to accepted or rejected. Returns
// false when the order is missing or already settled.
func UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) (bool, error) {
	res, err := database.Savoria.Exec(`
		UPDATE orders SET status = $1
		WHERE id = $2 AND status = 'pending'`, status, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
