package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/savoria/savoria/database/dbhelper"
	"github.com/savoria/savoria/models"
	"github.com/savoria/savoria/utils"
)

// CreateContactMessage stores a message from the contact form. Phone is the
// one optional field there.
func CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if req.Phone != "" {
		msg.Phone = &req.Phone
	}

	id, err := dbhelper.CreateContactMessage(msg)
	if err != nil {
		logrus.WithError(err).Error("failed to store contact message")
		utils.RespondError(w, http.StatusInternalServerError, "failed to store message")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"message":    "Message sent",
		"message_id": id.String(),
	})
}

func ListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := dbhelper.ListContactMessages()
	if err != nil {
		logrus.WithError(err).Error("failed to query contact messages")
		utils.RespondError(w, http.StatusInternalServerError, "failed to query messages")
		return
	}
	utils.RespondJSON(w, http.StatusOK, messages)
}
