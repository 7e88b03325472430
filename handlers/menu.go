package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/savoria/savoria/catalog"
	"github.com/savoria/savoria/database/dbhelper"
	"github.com/savoria/savoria/models"
	"github.com/savoria/savoria/utils"
)

// menuFetcher adapts the menu table to catalog.Fetcher.
type menuFetcher struct{}

func (menuFetcher) FetchAvailable(ctx context.Context) ([]models.MenuItem, error) {
	return dbhelper.ListAvailableMenuItems()
}

// ListMenu serves the public ordering page: available items only, grouped by
// category.
func ListMenu(w http.ResponseWriter, r *http.Request) {
	cat := catalog.New(menuFetcher{})
	if err := cat.Refresh(r.Context()); err != nil {
		logrus.WithError(err).Error("menu catalog fetch failed")
		utils.RespondError(w, http.StatusServiceUnavailable, "menu is currently unavailable")
		return
	}
	utils.RespondJSON(w, http.StatusOK, cat.Groups())
}

// ListAllMenuItems is the admin view, unavailable items included.
func ListAllMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := dbhelper.ListAllMenuItems()
	if err != nil {
		logrus.WithError(err).Error("failed to query menu items")
		utils.RespondError(w, http.StatusInternalServerError, "failed to query menu items")
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

type menuItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Available   bool    `json:"available"`
}

func (in menuItemInput) validate() string {
	if in.Name == "" {
		return "name is required"
	}
	if in.Category == "" {
		return "category is required"
	}
	if in.Price < 0 {
		return "price must be >= 0"
	}
	return ""
}

func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var in menuItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if msg := in.validate(); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := dbhelper.CreateMenuItem(&models.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Available:   in.Available,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to create menu item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create menu item")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"message":      "Menu item created",
		"menu_item_id": id.String(),
	})
}

func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var in menuItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if msg := in.validate(); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := dbhelper.UpdateMenuItem(&models.MenuItem{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Available:   in.Available,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to update menu item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update menu item")
		return
	}
	if !updated {
		utils.RespondError(w, http.StatusNotFound, "menu item not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Menu item updated"})
}

// DeleteMenuItem removes a dish. Past orders keep their own item snapshots and
// are unaffected.
func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	deleted, err := dbhelper.DeleteMenuItem(id)
	if err != nil {
		logrus.WithError(err).Error("failed to delete menu item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete menu item")
		return
	}
	if !deleted {
		utils.RespondError(w, http.StatusNotFound, "menu item not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Menu item deleted"})
}
