package dbhelper

import (
	"github.com/google/uuid"

	"github.com/savoria/savoria/database"
	"github.com/savoria/savoria/models"
)

func CreateContactMessage(m *models.ContactMessage) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Savoria.QueryRow(`
		INSERT INTO contact_messages (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		m.Name, m.Email, m.Phone, m.Message,
	).Scan(&id)
	return id, err
}

func ListContactMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := database.Savoria.Select(&messages, `
		SELECT id, name, email, phone, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC`)
	return messages, err
}
