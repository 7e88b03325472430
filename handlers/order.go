package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/savoria/savoria/cart"
	"github.com/savoria/savoria/database/dbhelper"
	"github.com/savoria/savoria/events"
	"github.com/savoria/savoria/models"
	"github.com/savoria/savoria/order"
	"github.com/savoria/savoria/utils"
)

// CreateOrder takes the ordering page's cart (item ids and quantities) plus
// the contact form. Prices come from the live menu rows, never from the
// client; the cart is rebuilt here so the stored snapshot and total are
// server-authoritative.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	type lineInput struct {
		ID       uuid.UUID `json:"id"`
		Quantity int       `json:"quantity"`
	}
	type request struct {
		CustomerName    string      `json:"customer_name"`
		Email           string      `json:"email"`
		Phone           string      `json:"phone"`
		SpecialRequests string      `json:"special_requests"`
		Items           []lineInput `json:"items"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity < 1 {
			utils.RespondError(w, http.StatusBadRequest, "item quantity must be at least 1")
			return
		}
		ids = append(ids, line.ID)
	}

	menuItems, err := dbhelper.GetMenuItemsByIDs(ids)
	if err != nil {
		logrus.WithError(err).Error("failed to resolve order items")
		utils.RespondError(w, http.StatusInternalServerError, "failed to resolve order items")
		return
	}
	byID := make(map[uuid.UUID]models.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}

	c := cart.New()
	for _, line := range req.Items {
		item, ok := byID[line.ID]
		if !ok {
			utils.RespondError(w, http.StatusBadRequest, "an ordered item is no longer available")
			return
		}
		c.AddItem(item)
		c.ChangeQuantity(item.ID, line.Quantity-1)
	}
	total := c.Total()

	submitter := order.NewSubmitter(dbhelper.OrderStore{})
	orderID, err := submitter.Submit(r.Context(), c, order.Contact{
		Name:            req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		var verr *order.ValidationError
		var perr *order.PersistenceError
		switch {
		case errors.As(err, &verr):
			utils.RespondError(w, http.StatusBadRequest, verr.Error())
		case errors.Is(err, order.ErrSubmissionInFlight):
			utils.RespondError(w, http.StatusTooManyRequests, err.Error())
		case errors.As(err, &perr):
			logrus.WithError(perr).Error("order persistence failed")
			utils.RespondError(w, http.StatusBadGateway, perr.Error())
		default:
			logrus.WithError(err).Error("order submission failed")
			utils.RespondError(w, http.StatusInternalServerError, "failed to submit order")
		}
		return
	}

	events.Publish(events.SubjectOrderCreated, events.OrderCreated{
		OrderID:      orderID,
		CustomerName: req.CustomerName,
		TotalPrice:   total,
		CreatedAt:    time.Now(),
	})

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Order submitted",
		"order_id":    orderID,
		"total_price": total,
	})
}

func ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := dbhelper.ListOrders()
	if err != nil {
		logrus.WithError(err).Error("failed to query orders")
		utils.RespondError(w, http.StatusInternalServerError, "failed to query orders")
		return
	}
	utils.RespondJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus accepts or rejects a pending order.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	type request struct {
		Status models.OrderStatus `json:"status"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Status != models.OrderAccepted && req.Status != models.OrderRejected {
		utils.RespondError(w, http.StatusBadRequest, "status must be accepted or rejected")
		return
	}

	updated, err := dbhelper.UpdateOrderStatus(id, req.Status)
	if err != nil {
		logrus.WithError(err).Error("failed to update order status")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update order status")
		return
	}
	if !updated {
		utils.RespondError(w, http.StatusNotFound, "no pending order with that id")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Order " + string(req.Status)})
}
