package user

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when the user name is blank.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when the phone number is blank.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// User is the capability shared by customers and delivery agents.
type User interface {
	ID() kernel.UUID
	Name() string
	Phone() string
	Details() string

	isUser()
}

// identity holds the fields common to every user. It is embedded by value.
type identity struct {
	id    kernel.UUID
	name  string
	phone string
	guard guard.ConstructorGuard
}

func newIdentity(name, phone string) (identity, error) {
	ident := identity{
		id:    kernel.NewUUID(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ident.setName(name),
		ident.setPhone(phone),
	); err != nil {
		return identity{}, err
	}

	return ident, nil
}

func (u identity) ID() kernel.UUID {
	return u.id
}

func (u identity) Name() string {
	return u.name
}

func (u identity) Phone() string {
	return u.phone
}

func (u identity) details() string {
	return fmt.Sprintf("User: %s, Phone: %s", u.name, u.phone)
}

func (identity) isUser() {}

func (u *identity) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *identity) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneIsRequired
	}
	u.phone = phone
	return nil
}
