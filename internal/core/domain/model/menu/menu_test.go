package menu_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultMenu(t *testing.T) {
	m := menu.NewDefaultMenu()

	require.Equal(t, 7, m.Len())
	items := m.ViewAllItems()
	assert.Equal(t, "Margherita Pizza", items[0].Name())
	assert.Equal(t, "Water", items[6].Name())
	assert.Equal(t, "2.50", items[5].Price().String())
}

func TestNewMenu(t *testing.T) {
	t.Run("keeps the given order", func(t *testing.T) {
		m, err := menu.NewMenu(mustItem(t, "Fries", 499), mustItem(t, "Coffee", 350))

		require.NoError(t, err)
		items := m.ViewAllItems()
		require.Len(t, items, 2)
		assert.Equal(t, "Fries", items[0].Name())
		assert.Equal(t, "Coffee", items[1].Name())
	})

	t.Run("rejects zero items", func(t *testing.T) {
		m, err := menu.NewMenu(menu.Item{})

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, m)
	})
}

func TestMenu_AddItem(t *testing.T) {
	t.Run("appends", func(t *testing.T) {
		m, _ := menu.NewMenu()

		require.NoError(t, m.AddItem(mustItem(t, "Tea", 200)))
		assert.Equal(t, 1, m.Len())
	})

	t.Run("allows duplicates", func(t *testing.T) {
		m, _ := menu.NewMenu()

		require.NoError(t, m.AddItem(mustItem(t, "Tea", 200)))
		require.NoError(t, m.AddItem(mustItem(t, "Tea", 200)))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("rejects absent item", func(t *testing.T) {
		m, _ := menu.NewMenu()

		err := m.AddItem(menu.Item{})

		require.ErrorIs(t, err, menu.ErrItemIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, 0, m.Len())
	})
}

func TestMenu_AddItems(t *testing.T) {
	t.Run("adds in order", func(t *testing.T) {
		m, _ := menu.NewMenu()

		err := m.AddItems(mustItem(t, "French Fries", 499), mustItem(t, "Ice Cream", 599), mustItem(t, "Coffee", 350))

		require.NoError(t, err)
		names := []string{}
		for _, item := range m.ViewAllItems() {
			names = append(names, item.Name())
		}
		assert.Equal(t, []string{"French Fries", "Ice Cream", "Coffee"}, names)
	})

	t.Run("rejects nil list", func(t *testing.T) {
		m, _ := menu.NewMenu()

		require.ErrorIs(t, m.AddItems(), menu.ErrItemsAreRequired)

		var none []menu.Item
		require.ErrorIs(t, m.AddItems(none...), errs.ErrValidation)
	})

	t.Run("empty non-nil list is a no-op", func(t *testing.T) {
		m, _ := menu.NewMenu()

		require.NoError(t, m.AddItems([]menu.Item{}...))
		assert.Equal(t, 0, m.Len())
	})

	t.Run("stops at the first invalid item", func(t *testing.T) {
		m, _ := menu.NewMenu()

		err := m.AddItems(mustItem(t, "Tea", 200), menu.Item{}, mustItem(t, "Cake", 450))

		require.ErrorIs(t, err, menu.ErrItemIsNotConstructed)
		items := m.ViewAllItems()
		require.Len(t, items, 1)
		assert.Equal(t, "Tea", items[0].Name())
	})
}

func TestMenu_RemoveItem(t *testing.T) {
	t.Run("removes the first equal entry only", func(t *testing.T) {
		tea := mustItem(t, "Tea", 200)
		m, _ := menu.NewMenu(tea, mustItem(t, "Cake", 450), tea)

		m.RemoveItem(mustItem(t, "Tea", 200))

		items := m.ViewAllItems()
		require.Len(t, items, 2)
		assert.Equal(t, "Cake", items[0].Name())
		assert.Equal(t, "Tea", items[1].Name())
	})

	t.Run("absent item is a no-op", func(t *testing.T) {
		m := menu.NewDefaultMenu()

		m.RemoveItem(mustItem(t, "Sushi", 1500))
		m.RemoveItem(mustItem(t, "Burger", 1000))

		assert.Equal(t, 7, m.Len())
	})

	t.Run("does not disturb an earlier snapshot", func(t *testing.T) {
		m := menu.NewDefaultMenu()
		snapshot := m.ViewAllItems()

		m.RemoveItem(snapshot[0])

		assert.Equal(t, "Margherita Pizza", snapshot[0].Name())
		assert.Len(t, snapshot, 7)
		assert.Equal(t, 6, m.Len())
	})
}

func TestMenu_FindItemByName(t *testing.T) {
	t.Run("case-insensitive exact match", func(t *testing.T) {
		m := menu.NewDefaultMenu()

		item, err := m.FindItemByName("coca COLA")

		require.NoError(t, err)
		assert.Equal(t, "Coca Cola", item.Name())
	})

	t.Run("first match wins", func(t *testing.T) {
		m, _ := menu.NewMenu(mustItem(t, "Tea", 200), mustItem(t, "TEA", 300))

		item, err := m.FindItemByName("tea")

		require.NoError(t, err)
		assert.Equal(t, "2.00", item.Price().String())
	})

	t.Run("partial names do not match", func(t *testing.T) {
		m := menu.NewDefaultMenu()

		_, err := m.FindItemByName("Pizza")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestMenu_FindItemsByPriceRange(t *testing.T) {
	m := menu.NewDefaultMenu()

	t.Run("inclusive bounds in catalog order", func(t *testing.T) {
		found := m.FindItemsByPriceRange(kernel.MoneyFromCents(899), kernel.MoneyFromCents(1199))

		names := []string{}
		for _, item := range found {
			names = append(names, item.Name())
		}
		assert.Equal(t, []string{"Burger", "Pasta Carbonara", "Caesar Salad"}, names)
	})

	t.Run("no matches yields an empty slice", func(t *testing.T) {
		found := m.FindItemsByPriceRange(kernel.MoneyFromCents(10000), kernel.MoneyFromCents(20000))

		require.NotNil(t, found)
		assert.Empty(t, found)
	})
}

func TestMenu_ViewAllItems(t *testing.T) {
	m := menu.NewDefaultMenu()

	snapshot := m.ViewAllItems()
	snapshot[0] = mustItem(t, "Replaced", 100)
	require.NoError(t, m.AddItem(mustItem(t, "Soup", 650)))

	assert.Len(t, snapshot, 7, "later additions do not leak into the snapshot")
	assert.Equal(t, "Margherita Pizza", m.ViewAllItems()[0].Name(), "writes to the snapshot do not leak into the menu")
}
