package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/savoria/savoria/database/dbhelper"
	"github.com/savoria/savoria/models"
	"github.com/savoria/savoria/utils"
)

// ListApprovedReviews is the public testimonial wall.
func ListApprovedReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := dbhelper.ListApprovedReviews()
	if err != nil {
		logrus.WithError(err).Error("failed to query reviews")
		utils.RespondError(w, http.StatusInternalServerError, "failed to query reviews")
		return
	}
	utils.RespondJSON(w, http.StatusOK, reviews)
}

// CreateReview stores a visitor review as pending until an admin moderates it.
func CreateReview(w http.ResponseWriter, r *http.Request) {
	type request struct {
		CustomerName string `json:"customer_name"`
		Email        string `json:"email"`
		Rating       int    `json:"rating"`
		Comment      string `json:"comment"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.CustomerName == "" || req.Email == "" || req.Comment == "" {
		utils.RespondError(w, http.StatusBadRequest, "name, email and comment are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		utils.RespondError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	id, err := dbhelper.CreateReview(&models.Review{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to create review")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create review")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"message":   "Review submitted",
		"review_id": id.String(),
	})
}

func ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := dbhelper.ListReviews()
	if err != nil {
		logrus.WithError(err).Error("failed to query reviews")
		utils.RespondError(w, http.StatusInternalServerError, "failed to query reviews")
		return
	}
	utils.RespondJSON(w, http.StatusOK, reviews)
}

func UpdateReviewStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	type request struct {
		Status models.ReviewStatus `json:"status"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Status != models.ReviewApproved && req.Status != models.ReviewRejected {
		utils.RespondError(w, http.StatusBadRequest, "status must be approved or rejected")
		return
	}

	updated, err := dbhelper.UpdateReviewStatus(id, req.Status)
	if err != nil {
		logrus.WithError(err).Error("failed to update review status")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update review status")
		return
	}
	if !updated {
		utils.RespondError(w, http.StatusNotFound, "review not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Review " + string(req.Status)})
}

func DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	deleted, err := dbhelper.DeleteReview(id)
	if err != nil {
		logrus.WithError(err).Error("failed to delete review")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete review")
		return
	}
	if !deleted {
		utils.RespondError(w, http.StatusNotFound, "review not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Review deleted"})
}
