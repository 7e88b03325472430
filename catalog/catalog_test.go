package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/savoria/savoria/models"
)

type fakeFetcher struct {
	items []models.MenuItem
	err   error
	calls int
}

func (f *fakeFetcher) FetchAvailable(ctx context.Context) ([]models.MenuItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func menuItem(name, category string) models.MenuItem {
	return models.MenuItem{ID: uuid.New(), Name: name, Category: category, Available: true}
}

func TestRefreshGroupsByCategoryFirstSeenOrder(t *testing.T) {
	f := &fakeFetcher{items: []models.MenuItem{
		menuItem("hummus", "starters"),
		menuItem("tagine", "mains"),
		menuItem("salad", "starters"),
		menuItem("baklava", "desserts"),
	}}
	c := New(f)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	groups := c.Groups()
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	wantOrder := []string{"starters", "mains", "desserts"}
	for i, want := range wantOrder {
		if groups[i].Category != want {
			t.Fatalf("group order = %v at %d, want %v", groups[i].Category, i, want)
		}
	}
	if len(groups[0].Items) != 2 {
		t.Errorf("starters should hold 2 items, got %d", len(groups[0].Items))
	}
	if groups[0].Items[0].Name != "hummus" || groups[0].Items[1].Name != "salad" {
		t.Error("item order within a group must follow the fetch order")
	}
}

func TestRefreshFailureKeepsSnapshot(t *testing.T) {
	f := &fakeFetcher{items: []models.MenuItem{menuItem("tagine", "mains")}}
	c := New(f)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("seed refresh failed: %v", err)
	}

	f.err = errors.New("connection refused")
	err := c.Refresh(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(c.Groups()) != 1 {
		t.Error("stale snapshot must survive a failed refresh")
	}

	// Retry after the service comes back.
	f.err = nil
	f.items = append(f.items, menuItem("couscous", "mains"))
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(c.Groups()[0].Items) != 2 {
		t.Error("retry must pick up the new result")
	}
}

func TestEmptyUntilFirstRefresh(t *testing.T) {
	c := New(&fakeFetcher{err: errors.New("down")})
	if len(c.Groups()) != 0 {
		t.Error("catalog must start empty")
	}
	if err := c.Refresh(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(c.Groups()) != 0 {
		t.Error("catalog must stay empty after a failed first refresh")
	}
}
