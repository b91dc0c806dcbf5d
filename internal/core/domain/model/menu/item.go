package menu

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned for zero-value items, the Go rendition of an absent item.
	ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item")
	// ErrItemNameIsRequired is returned when the item name is blank.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Item is an immutable menu entry. Two items are equal when both name and price match.
//
// Example:
//
//	pizza, err := menu.NewItem("Margherita Pizza", kernel.MoneyFromCents(1299))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pizza) // Margherita Pizza - €12.99
type Item struct {
	name  string
	price kernel.Money
	guard guard.ConstructorGuard
}

// NewItem validates name and price and returns the item.
// All violations are reported together.
func NewItem(name string, price kernel.Money) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate reports whether the item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Price() kernel.Money {
	return i.price
}

// IsEqual compares items by value.
func (i Item) IsEqual(other Item) bool {
	return i.name == other.name && i.price.IsEqual(other.price)
}

func (i Item) String() string {
	return i.Format(kernel.DefaultCurrencySymbol)
}

// Format renders the item as "Name - <symbol>12.99".
func (i Item) Format(symbol string) string {
	return fmt.Sprintf("%s - %s", i.name, i.price.Format(symbol))
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("item price", fmt.Errorf("%s is not greater than 0", price))
	}
	i.price = price
	return nil
}
