// Package catalog exposes the public menu as a re-fetchable snapshot grouped
// by category.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/savoria/savoria/models"
)

// ErrUnavailable wraps any fetch failure; the previous snapshot stays in
// place until a later Refresh succeeds.
var ErrUnavailable = errors.New("menu catalog unavailable")

// Fetcher lists the currently available menu items, ordered by category.
type Fetcher interface {
	FetchAvailable(ctx context.Context) ([]models.MenuItem, error)
}

// Group is one category and its items, in the order the fetcher returned
// them.
type Group struct {
	Category string            `json:"category"`
	Items    []models.MenuItem `json:"items"`
}

type Catalog struct {
	fetcher Fetcher
	groups  []Group
}

func New(fetcher Fetcher) *Catalog {
	return &Catalog{fetcher: fetcher}
}

// Refresh re-fetches the catalog and rebuilds the grouped snapshot. Categories
// keep the order they first appear in the result. On failure the old snapshot
// is kept and the error wraps ErrUnavailable.
func (c *Catalog) Refresh(ctx context.Context) error {
	items, err := c.fetcher.FetchAvailable(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	c.groups = groupByCategory(items)
	return nil
}

// Groups returns the snapshot from the last successful Refresh. Empty until
// one succeeds.
func (c *Catalog) Groups() []Group {
	return c.groups
}

func groupByCategory(items []models.MenuItem) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, Group{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
