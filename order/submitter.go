// Package order turns a cart plus contact details into a persisted order.
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/atomic"

	"github.com/savoria/savoria/cart"
	"github.com/savoria/savoria/models"
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not finished yet. Only one order may be in flight per
// Submitter; the caller retries after the first attempt settles.
var ErrSubmissionInFlight = errors.New("an order submission is already in progress")

// ValidationError aggregates the local checks that failed before any
// persistence was attempted.
type ValidationError struct {
	Errs *multierror.Error
}

func (e *ValidationError) Error() string {
	return e.Errs.Error()
}

// PersistenceError carries the storage layer's message so it can be shown to
// the user verbatim.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("order could not be saved: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Store persists one order record. The server assigns id, created_at and the
// initial pending status.
type Store interface {
	CreateOrder(ctx context.Context, o *models.Order) (uuid.UUID, error)
}

// Contact is what the order form collects alongside the cart.
type Contact struct {
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

type Submitter struct {
	store    Store
	inFlight atomic.Bool
}

func NewSubmitter(store Store) *Submitter {
	return &Submitter{store: store}
}

// Submit validates the cart and contact, persists a frozen snapshot of the
// cart lines and clears the cart once the store reports success. On any
// failure the cart is left exactly as it was so the user can resubmit without
// re-entering anything.
func (s *Submitter) Submit(ctx context.Context, c *cart.Cart, contact Contact) (uuid.UUID, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return uuid.Nil, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	if err := validate(c, contact); err != nil {
		return uuid.Nil, err
	}

	rec := &models.Order{
		CustomerName: strings.TrimSpace(contact.Name),
		Email:        strings.TrimSpace(contact.Email),
		Phone:        strings.TrimSpace(contact.Phone),
		Items:        snapshot(c),
		TotalPrice:   c.Total(),
		Status:       models.OrderPending,
	}
	if req := strings.TrimSpace(contact.SpecialRequests); req != "" {
		rec.SpecialRequests = &req
	}

	id, err := s.store.CreateOrder(ctx, rec)
	if err != nil {
		return uuid.Nil, &PersistenceError{Err: err}
	}

	c.Clear()
	return id, nil
}

func validate(c *cart.Cart, contact Contact) error {
	var errs *multierror.Error
	if c.IsEmpty() {
		errs = multierror.Append(errs, errors.New("cart is empty"))
	}
	if strings.TrimSpace(contact.Name) == "" {
		errs = multierror.Append(errs, errors.New("customer name is required"))
	}
	if strings.TrimSpace(contact.Email) == "" {
		errs = multierror.Append(errs, errors.New("email is required"))
	}
	if strings.TrimSpace(contact.Phone) == "" {
		errs = multierror.Append(errs, errors.New("phone is required"))
	}
	if errs.ErrorOrNil() != nil {
		return &ValidationError{Errs: errs}
	}
	return nil
}

// snapshot copies the cart lines into the lean order-history shape. The order
// keeps its own prices; later menu edits never reach it.
func snapshot(c *cart.Cart) models.OrderItems {
	lines := c.Lines()
	items := make(models.OrderItems, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItem{
			ID:       l.Item.ID,
			Name:     l.Item.Name,
			Price:    l.Item.Price,
			Quantity: l.Quantity,
		})
	}
	return items
}
