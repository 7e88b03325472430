package order

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/savoria/savoria/cart"
	"github.com/savoria/savoria/models"
)

type fakeStore struct {
	mu      sync.Mutex
	calls   int
	last    *models.Order
	err     error
	block   chan struct{} // when set, CreateOrder waits until closed
	assigns uuid.UUID
}

func (f *fakeStore) CreateOrder(ctx context.Context, o *models.Order) (uuid.UUID, error) {
	f.mu.Lock()
	f.calls++
	f.last = o
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return uuid.Nil, f.err
	}
	if f.assigns == uuid.Nil {
		f.assigns = uuid.New()
	}
	return f.assigns, nil
}

func newCart(prices ...float64) *cart.Cart {
	c := cart.New()
	for _, p := range prices {
		c.AddItem(models.MenuItem{ID: uuid.New(), Name: "dish", Price: p, Category: "main"})
	}
	return c
}

func validContact() Contact {
	return Contact{Name: "Amina", Email: "amina@example.com", Phone: "+212600000000"}
}

func TestSubmitEmptyCart(t *testing.T) {
	store := &fakeStore{}
	s := NewSubmitter(store)
	c := cart.New()

	_, err := s.Submit(context.Background(), c, validContact())

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if store.calls != 0 {
		t.Errorf("store must not be called on validation failure, got %d calls", store.calls)
	}
}

func TestSubmitMissingContactFields(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		wantMsg string
	}{
		{"no name", Contact{Email: "a@b.c", Phone: "1"}, "customer name is required"},
		{"no email", Contact{Name: "a", Phone: "1"}, "email is required"},
		{"no phone", Contact{Name: "a", Email: "a@b.c"}, "phone is required"},
		{"blank phone", Contact{Name: "a", Email: "a@b.c", Phone: "   "}, "phone is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			s := NewSubmitter(store)
			c := newCart(10)

			_, err := s.Submit(context.Background(), c, tt.contact)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message to contain %q, got %q", tt.wantMsg, err.Error())
			}
			if store.calls != 0 {
				t.Errorf("store called %d times on validation failure", store.calls)
			}
			if c.IsEmpty() {
				t.Error("cart must be untouched on validation failure")
			}
		})
	}
}

func TestSubmitSuccessClearsCartAndFreezesTotal(t *testing.T) {
	store := &fakeStore{}
	s := NewSubmitter(store)
	c := newCart(28, 12)
	c.ChangeQuantity(c.Lines()[0].Item.ID, 1) // 2 x 28 + 1 x 12
	wantTotal := c.Total()

	id, err := s.Submit(context.Background(), c, Contact{
		Name: "Amina", Email: "amina@example.com", Phone: "+212600000000",
		SpecialRequests: "no onions",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Error("expected the assigned id back")
	}
	if !c.IsEmpty() {
		t.Error("cart must be cleared on success")
	}

	rec := store.last
	if rec.TotalPrice != wantTotal {
		t.Errorf("snapshot total = %v, want %v", rec.TotalPrice, wantTotal)
	}
	if rec.Status != models.OrderPending {
		t.Errorf("status = %q, want pending", rec.Status)
	}
	if len(rec.Items) != 2 {
		t.Fatalf("expected 2 snapshot items, got %d", len(rec.Items))
	}
	if rec.Items[0].Quantity != 2 || rec.Items[0].Price != 28 {
		t.Errorf("first snapshot line = %+v", rec.Items[0])
	}
	if rec.SpecialRequests == nil || *rec.SpecialRequests != "no onions" {
		t.Errorf("special requests not carried: %v", rec.SpecialRequests)
	}
}

func TestSubmitSnapshotIndependentOfCart(t *testing.T) {
	store := &fakeStore{}
	s := NewSubmitter(store)
	c := newCart(10)
	itemID := c.Lines()[0].Item.ID

	if _, err := s.Submit(context.Background(), c, validContact()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Re-use the cart; the stored snapshot must not move.
	c.AddItem(models.MenuItem{ID: itemID, Name: "dish", Price: 10})
	c.ChangeQuantity(itemID, 5)

	if got := store.last.Items[0].Quantity; got != 1 {
		t.Errorf("stored snapshot mutated with the live cart: quantity %d", got)
	}
}

func TestSubmitStoreFailureKeepsCart(t *testing.T) {
	store := &fakeStore{err: errors.New("row level security violation")}
	s := NewSubmitter(store)
	c := newCart(28)
	wantTotal := c.Total()

	_, err := s.Submit(context.Background(), c, validContact())

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if !strings.Contains(err.Error(), "row level security violation") {
		t.Errorf("store message lost: %q", err.Error())
	}
	if c.IsEmpty() || c.Total() != wantTotal {
		t.Error("cart must be byte-for-byte intact after a store failure")
	}

	// The failure is terminal for this attempt, not for the submitter.
	if _, err := s.Submit(context.Background(), c, validContact()); err == nil {
		t.Error("expected the second attempt to hit the failing store again")
	}
	if store.calls != 2 {
		t.Errorf("expected 2 store calls, got %d", store.calls)
	}
}

func TestSubmitRejectsOverlappingSubmission(t *testing.T) {
	store := &fakeStore{block: make(chan struct{})}
	s := NewSubmitter(store)
	c := newCart(28)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), c, validContact())
		done <- err
	}()

	// Wait for the first submission to reach the store.
	for {
		store.mu.Lock()
		calls := store.calls
		store.mu.Unlock()
		if calls == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := s.Submit(context.Background(), cart.New(), validContact()); err != ErrSubmissionInFlight {
		t.Errorf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(store.block)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	if store.calls != 1 {
		t.Errorf("second submit must not reach the store, got %d calls", store.calls)
	}

	// Once settled, submitting works again.
	c2 := newCart(5)
	if _, err := s.Submit(context.Background(), c2, validContact()); err != nil {
		t.Errorf("submit after settle failed: %v", err)
	}
}
