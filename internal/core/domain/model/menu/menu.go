package menu

import (
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrItemsAreRequired is returned by AddItems when called with a nil list.
var ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

// Menu is an ordered catalog of items. It is not safe for concurrent mutation.
type Menu struct {
	items []Item
}

// NewMenu returns a catalog holding the given items in order.
func NewMenu(items ...Item) (*Menu, error) {
	m := &Menu{}
	for _, item := range items {
		if err := m.AddItem(item); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewDefaultMenu returns the house menu.
func NewDefaultMenu() *Menu {
	defaults := []struct {
		name  string
		cents int64
	}{
		{"Margherita Pizza", 1299},
		{"Pepperoni Pizza", 1499},
		{"Burger", 999},
		{"Pasta Carbonara", 1199},
		{"Caesar Salad", 899},
		{"Coca Cola", 250},
		{"Water", 150},
	}

	m := &Menu{items: make([]Item, 0, len(defaults))}
	for _, d := range defaults {
		item, err := NewItem(d.name, kernel.MoneyFromCents(d.cents))
		if err != nil {
			panic(err)
		}
		m.items = append(m.items, item)
	}
	return m
}

// AddItem appends item. Duplicates are allowed.
func (m *Menu) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	m.items = append(m.items, item)
	return nil
}

// AddItems adds each item in order and stops at the first invalid one;
// items before it stay in the catalog.
func (m *Menu) AddItems(items ...Item) error {
	if items == nil {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := m.AddItem(item); err != nil {
			return err
		}
	}
	return nil
}

// RemoveItem removes the first entry equal to item. Absent items are ignored.
func (m *Menu) RemoveItem(item Item) {
	for i, existing := range m.items {
		if existing.IsEqual(item) {
			m.items = slices.Delete(m.items, i, i+1)
			return
		}
	}
}

// FindItemByName returns the first item whose name matches case-insensitively.
func (m *Menu) FindItemByName(name string) (Item, error) {
	for _, item := range m.items {
		if strings.EqualFold(item.Name(), name) {
			return item, nil
		}
	}
	return Item{}, errs.NewObjectNotFoundError("item", name)
}

// FindItemsByPriceRange returns items priced within [minPrice, maxPrice] in catalog order.
func (m *Menu) FindItemsByPriceRange(minPrice, maxPrice kernel.Money) []Item {
	found := make([]Item, 0)
	for _, item := range m.items {
		if item.Price().Between(minPrice, maxPrice) {
			found = append(found, item)
		}
	}
	return found
}

// ViewAllItems returns a snapshot of the catalog.
func (m *Menu) ViewAllItems() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Menu) Len() int {
	return len(m.items)
}
