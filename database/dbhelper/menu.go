package dbhelper

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/savoria/savoria/database"
	"github.com/savoria/savoria/models"
)

// ListAvailableMenuItems feeds the public catalog: available rows only,
// ordered by category so the grouped view is stable.
func ListAvailableMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := database.Savoria.Select(&items, `
		SELECT id, name, description, price, category, image_url, available, created_at
		FROM menu_items
		WHERE available = TRUE
		ORDER BY category, created_at`)
	return items, err
}

// ListAllMenuItems backs the admin screen, newest first, unavailable included.
func ListAllMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := database.Savoria.Select(&items, `
		SELECT id, name, description, price, category, image_url, available, created_at
		FROM menu_items
		ORDER BY created_at DESC`)
	return items, err
}

// GetMenuItemsByIDs resolves the submitted cart lines against the live menu;
// only available items come back.
func GetMenuItemsByIDs(ids []uuid.UUID) ([]models.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`
		SELECT id, name, description, price, category, image_url, available, created_at
		FROM menu_items
		WHERE available = TRUE AND id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = database.Savoria.Rebind(query)

	var items []models.MenuItem
	err = database.Savoria.Select(&items, query, args...)
	return items, err
}

func CreateMenuItem(item *models.MenuItem) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Savoria.QueryRow(`
		INSERT INTO menu_items (name, description, price, category, image_url, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.Available,
	).Scan(&id)
	return id, err
}

func UpdateMenuItem(item *models.MenuItem) (bool, error) {
	res, err := database.Savoria.Exec(`
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, image_url = $5, available = $6
		WHERE id = $7`,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.Available, item.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func DeleteMenuItem(id uuid.UUID) (bool, error) {
	res, err := database.Savoria.Exec(`DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
