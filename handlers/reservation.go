package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/savoria/savoria/database/dbhelper"
	"github.com/savoria/savoria/events"
	"github.com/savoria/savoria/models"
	"github.com/savoria/savoria/utils"
)

func CreateReservation(w http.ResponseWriter, r *http.Request) {
	type request struct {
		CustomerName    string `json:"customer_name"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		ReservationDate string `json:"reservation_date"`
		ReservationTime string `json:"reservation_time"`
		NumberOfGuests  int    `json:"number_of_guests"`
		SpecialRequests string `json:"special_requests"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	var errs *multierror.Error
	if req.CustomerName == "" {
		errs = multierror.Append(errs, errors.New("customer name is required"))
	}
	if req.Email == "" {
		errs = multierror.Append(errs, errors.New("email is required"))
	}
	if req.Phone == "" {
		errs = multierror.Append(errs, errors.New("phone is required"))
	}
	if _, err := time.Parse("2006-01-02", req.ReservationDate); err != nil {
		errs = multierror.Append(errs, errors.New("reservation date must be YYYY-MM-DD"))
	}
	if _, err := time.Parse("15:04", req.ReservationTime); err != nil {
		errs = multierror.Append(errs, errors.New("reservation time must be HH:MM"))
	}
	if req.NumberOfGuests < 1 || req.NumberOfGuests > 20 {
		errs = multierror.Append(errs, errors.New("number of guests must be between 1 and 20"))
	}
	if errs.ErrorOrNil() != nil {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	res := &models.Reservation{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		NumberOfGuests:  req.NumberOfGuests,
	}
	if req.SpecialRequests != "" {
		res.SpecialRequests = &req.SpecialRequests
	}

	id, err := dbhelper.CreateReservation(res)
	if err != nil {
		logrus.WithError(err).Error("failed to create reservation")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create reservation")
		return
	}

	events.Publish(events.SubjectReservationCreated, events.ReservationCreated{
		ReservationID:  id,
		CustomerName:   req.CustomerName,
		Date:           req.ReservationDate,
		Time:           req.ReservationTime,
		NumberOfGuests: req.NumberOfGuests,
		CreatedAt:      time.Now(),
	})

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"message":        "Reservation submitted",
		"reservation_id": id.String(),
	})
}

func ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := dbhelper.ListReservations()
	if err != nil {
		logrus.WithError(err).Error("failed to query reservations")
		utils.RespondError(w, http.StatusInternalServerError, "failed to query reservations")
		return
	}
	utils.RespondJSON(w, http.StatusOK, reservations)
}

func UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	type request struct {
		Status models.ReservationStatus `json:"status"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Status != models.ReservationAccepted && req.Status != models.ReservationRejected {
		utils.RespondError(w, http.StatusBadRequest, "status must be accepted or rejected")
		return
	}

	updated, err := dbhelper.UpdateReservationStatus(id, req.Status)
	if err != nil {
		logrus.WithError(err).Error("failed to update reservation status")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update reservation status")
		return
	}
	if !updated {
		utils.RespondError(w, http.StatusNotFound, "no pending reservation with that id")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Reservation " + string(req.Status)})
}
