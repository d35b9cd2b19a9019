// Package domain provides defenitions of all entities.
package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientFunds indicates that a debit would leave the balance below zero.
	ErrInsufficientFunds = errors.New("Not enough money")
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAmount indicates that the amount is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Account holds an owner name and a decimal balance.
//
// Balance and owner setters are unchecked. Only Debit guards against a negative
// balance. An Account is not safe for concurrent use.
type Account struct {
	owner    string
	ownerSet bool
	balance  decimal.NullDecimal
	bank     *Bank
}

// NewAccount returns an account for the given owner and initial balance.
func NewAccount(owner string, balance decimal.Decimal) *Account {
	return &Account{
		owner:    owner,
		ownerSet: true,
		balance:  decimal.NullDecimal{Decimal: balance, Valid: true},
	}
}

// Owner returns the account owner. An unset owner reads as "".
func (a *Account) Owner() string {
	return a.owner
}

// SetOwner replaces the account owner.
func (a *Account) SetOwner(owner string) {
	a.owner = owner
	a.ownerSet = true
}

// Balance returns the current balance. An unset balance reads as zero.
func (a *Account) Balance() decimal.Decimal {
	return a.balance.Decimal
}

// SetBalance replaces the balance. Negative values are accepted.
func (a *Account) SetBalance(balance decimal.Decimal) {
	a.balance = decimal.NullDecimal{Decimal: balance, Valid: true}
}

// Bank returns the bank the account was last registered with, or nil.
func (a *Account) Bank() *Bank {
	return a.bank
}

// Debit subtracts amount from the balance.
//
// The result is committed only when it is not negative, otherwise
// ErrInsufficientFunds is returned and the balance stays as it was.
// The sign of amount is not checked.
func (a *Account) Debit(amount decimal.Decimal) error {
	newBalance := a.balance.Decimal.Sub(amount)
	if newBalance.IsNegative() {
		return ErrInsufficientFunds
	}

	a.SetBalance(newBalance)

	return nil
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) {
	a.SetBalance(a.balance.Decimal.Add(amount))
}

// Equal reports whether both accounts have the same owner and balance.
// Balances must match in value and scale, so 1.5 and 1.50 differ.
// An account with an unset owner or balance is equal to nothing.
// The empty owner is a set owner.
func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return false
	}

	if !a.ownerSet || !a.balance.Valid {
		return false
	}

	if !other.ownerSet || !other.balance.Valid {
		return false
	}

	return a.owner == other.owner &&
		a.balance.Decimal.Exponent() == other.balance.Decimal.Exponent() &&
		a.balance.Decimal.Equal(other.balance.Decimal)
}

// AccountInfo is a snapshot of a registered account.
type AccountInfo struct {
	ID      uuid.UUID `json:"id"`
	Owner   string    `json:"owner"`
	Balance string    `json:"balance"`
	Bank    string    `json:"bank,omitempty"`
}

// Info returns a snapshot of the account under the given id.
func (a *Account) Info(id uuid.UUID) AccountInfo {
	info := AccountInfo{
		ID:      id,
		Owner:   a.owner,
		Balance: a.balance.Decimal.String(),
	}

	if a.bank != nil {
		info.Bank = a.bank.Name()
	}

	return info
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	Owner   string `json:"owner"`
	Balance string `json:"balance"`
}

// UpdateAccountParams holds the fields to overwrite on an account.
// Nil fields are left untouched.
type UpdateAccountParams struct {
	Owner   *string `json:"owner,omitempty"`
	Balance *string `json:"balance,omitempty"`
}
