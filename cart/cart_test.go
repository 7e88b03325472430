package cart

import (
	"testing"

	"github.com/google/uuid"

	"github.com/savoria/savoria/models"
)

func item(name string, price float64) models.MenuItem {
	return models.MenuItem{ID: uuid.New(), Name: name, Price: price, Category: "main", Available: true}
}

func TestAddItemMergesByID(t *testing.T) {
	c := New()
	burger := item("burger", 12)

	c.AddItem(burger)
	c.AddItem(burger)

	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
	if q := c.Lines()[0].Quantity; q != 2 {
		t.Errorf("expected quantity 2, got %d", q)
	}
	if got := c.Total(); got != 24 {
		t.Errorf("expected total 24, got %v", got)
	}
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := New()
	a, b, d := item("a", 1), item("b", 2), item("d", 3)

	c.AddItem(a)
	c.AddItem(b)
	c.AddItem(d)
	c.AddItem(b)

	names := []string{}
	for _, l := range c.Lines() {
		names = append(names, l.Item.Name)
	}
	want := []string{"a", "b", "d"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, names)
		}
	}
}

func TestChangeQuantity(t *testing.T) {
	c := New()
	tagine := item("tagine", 28)
	c.AddItem(tagine)

	c.ChangeQuantity(tagine.ID, 2)
	if q := c.Lines()[0].Quantity; q != 3 {
		t.Fatalf("expected quantity 3, got %d", q)
	}
	if got := c.Total(); got != 84 {
		t.Errorf("expected total 84, got %v", got)
	}

	c.ChangeQuantity(tagine.ID, -1)
	if q := c.Lines()[0].Quantity; q != 2 {
		t.Errorf("expected quantity 2, got %d", q)
	}
}

func TestChangeQuantityRemovesAtZero(t *testing.T) {
	c := New()
	it := item("soup", 9)
	c.AddItem(it)
	c.AddItem(it)

	c.ChangeQuantity(it.ID, -2)

	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %d lines", c.Len())
	}
	if got := c.Total(); got != 0 {
		t.Errorf("expected total 0, got %v", got)
	}
}

func TestChangeQuantityBelowZeroRemoves(t *testing.T) {
	c := New()
	it := item("salad", 7)
	c.AddItem(it)

	c.ChangeQuantity(it.ID, -5)

	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %d lines", c.Len())
	}
}

func TestChangeQuantityUnknownIDIsNoop(t *testing.T) {
	c := New()
	c.AddItem(item("kebab", 15))

	c.ChangeQuantity(uuid.New(), 4)

	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
	if got := c.Total(); got != 15 {
		t.Errorf("expected total 15, got %v", got)
	}
}

func TestRemoveItem(t *testing.T) {
	c := New()
	a, b := item("a", 28), item("b", 10)
	c.AddItem(a)
	c.AddItem(b)

	c.RemoveItem(a.ID)

	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
	if c.Lines()[0].Item.ID != b.ID {
		t.Error("wrong line removed")
	}
	if got := c.Total(); got != 10 {
		t.Errorf("expected total 10, got %v", got)
	}

	c.RemoveItem(uuid.New()) // unknown id, no-op
	if c.Len() != 1 {
		t.Errorf("expected 1 line after removing unknown id, got %d", c.Len())
	}
}

func TestTotalTracksMutations(t *testing.T) {
	c := New()
	a := item("a", 28)

	c.AddItem(a)
	if got := c.Total(); got != 28 {
		t.Fatalf("expected 28, got %v", got)
	}
	c.ChangeQuantity(a.ID, 2)
	if got := c.Total(); got != 84 {
		t.Fatalf("expected 84, got %v", got)
	}
	c.RemoveItem(a.ID)
	if got := c.Total(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(item("a", 5))
	c.AddItem(item("b", 6))

	c.Clear()

	if !c.IsEmpty() {
		t.Error("expected empty cart after Clear")
	}
	if got := c.Total(); got != 0 {
		t.Errorf("expected total 0, got %v", got)
	}
}

func TestLinesIsACopy(t *testing.T) {
	c := New()
	c.AddItem(item("a", 5))

	lines := c.Lines()
	lines[0].Quantity = 99

	if q := c.Lines()[0].Quantity; q != 1 {
		t.Errorf("mutating the returned slice leaked into the cart: quantity %d", q)
	}
}
