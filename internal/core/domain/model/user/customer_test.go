package user_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		c, err := user.NewCustomer("Ann", "0870000000", "1 Rd")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		require.NoError(t, c.ID().Validate())
		assert.Equal(t, "Ann", c.Name())
		assert.Equal(t, "0870000000", c.Phone())
		assert.Equal(t, "1 Rd", c.Address())
		assert.Equal(t, "User: Ann, Phone: 0870000000, Address: 1 Rd", c.Details())
	})

	t.Run("should assign distinct ids", func(t *testing.T) {
		a, err := user.NewCustomer("Ann", "1", "1 Rd")
		require.NoError(t, err)
		b, err := user.NewCustomer("Ann", "1", "1 Rd")
		require.NoError(t, err)

		assert.False(t, a.ID().IsEqual(b.ID()))
	})

	t.Run("should default the address", func(t *testing.T) {
		c, err := user.NewCustomerWithoutAddress("Ann", "0870000000")

		require.NoError(t, err)
		assert.Equal(t, user.AddressNotProvided, c.Address())
		assert.Equal(t, "User: Ann, Phone: 0870000000, Address: Address not provided", c.Details())
	})

	t.Run("should reject blank fields", func(t *testing.T) {
		tests := []struct {
			name, phone, address string
			want                 error
		}{
			{"", "1", "1 Rd", user.ErrNameIsRequired},
			{"Ann", "  ", "1 Rd", user.ErrPhoneIsRequired},
			{"Ann", "1", "", user.ErrAddressIsRequired},
		}

		for _, tt := range tests {
			c, err := user.NewCustomer(tt.name, tt.phone, tt.address)

			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, errs.ErrValidation)
			assert.Nil(t, c)
		}
	})

	t.Run("should report every violation", func(t *testing.T) {
		_, err := user.NewCustomer("", "", "")

		require.ErrorIs(t, err, user.ErrNameIsRequired)
		require.ErrorIs(t, err, user.ErrPhoneIsRequired)
		require.ErrorIs(t, err, user.ErrAddressIsRequired)
	})
}

func TestCustomer_Validate(t *testing.T) {
	var zero user.Customer
	var nilCustomer *user.Customer

	require.ErrorIs(t, zero.Validate(), user.ErrCustomerIsNotConstructed)
	require.ErrorIs(t, nilCustomer.Validate(), user.ErrCustomerIsNotConstructed)
	require.ErrorIs(t, nilCustomer.Validate(), errs.ErrValidation)
}

func TestCustomer_PlaceOrder(t *testing.T) {
	c, err := user.NewCustomer("Ann", "0870000000", "1 Rd")
	require.NoError(t, err)

	pizza, err := menu.NewItem("Pizza", kernel.MoneyFromCents(1000))
	require.NoError(t, err)
	cola, err := menu.NewItem("Cola", kernel.MoneyFromCents(250))
	require.NoError(t, err)

	t.Run("should compose a proposal at the stored address", func(t *testing.T) {
		before := time.Now()
		p := c.PlaceOrder([]menu.Item{pizza, cola}, "")

		assert.Same(t, c, p.Customer)
		assert.Equal(t, "1 Rd", p.DeliveryAddress)
		assert.Equal(t, "12.50", p.TotalPrice.String())
		assert.Equal(t, 30, p.EstimatedTimeMinutes)
		assert.False(t, p.OrderTime.Before(before))
		assert.Len(t, p.Items, 2)
	})

	t.Run("should prefer the override address", func(t *testing.T) {
		p := c.PlaceOrder([]menu.Item{pizza}, "Office 5")

		assert.Equal(t, "Office 5", p.DeliveryAddress)
	})

	t.Run("should scale the estimate with item count", func(t *testing.T) {
		six := []menu.Item{pizza, pizza, pizza, pizza, pizza, pizza}
		eleven := append(append([]menu.Item{}, six...), cola, cola, cola, cola, cola)

		assert.Equal(t, 45, c.PlaceOrder(six, "").EstimatedTimeMinutes)
		assert.Equal(t, 60, c.PlaceOrder(eleven, "").EstimatedTimeMinutes)
	})

	t.Run("should not validate until materialized", func(t *testing.T) {
		p := c.PlaceOrder(nil, "")

		assert.Empty(t, p.Items)
		assert.Equal(t, "0.00", p.TotalPrice.String())

		_, err := order.NewOrder(1000, p)
		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should not share the caller's slice", func(t *testing.T) {
		items := []menu.Item{pizza}
		p := c.PlaceOrder(items, "")
		items[0] = cola

		assert.True(t, p.Items[0].IsEqual(pizza))
	})
}
