package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrBankNotFound indicates that the bank is not found.
	ErrBankNotFound = errors.New("bank not found")
	// ErrBankAlreadyExists indicates that a bank with the given name already exists.
	ErrBankAlreadyExists = errors.New("bank already exists")
)

// Bank holds a name and the accounts registered with it.
type Bank struct {
	name     string
	accounts []*Account
}

// NewBank returns a bank with no accounts.
func NewBank(name string) *Bank {
	return &Bank{name: name}
}

// Name returns the bank name.
func (b *Bank) Name() string {
	return b.name
}

// SetName replaces the bank name.
func (b *Bank) SetName(name string) {
	b.name = name
}

// AddAccount registers the account with the bank. Duplicates are not checked.
func (b *Bank) AddAccount(a *Account) {
	b.accounts = append(b.accounts, a)
	a.bank = b
}

// Accounts returns the registered accounts in registration order.
// The slice is a copy, the accounts are not.
func (b *Bank) Accounts() []*Account {
	accounts := make([]*Account, len(b.accounts))
	copy(accounts, b.accounts)

	return accounts
}

// Transfer debits source and then credits destination with the same amount.
// When the debit fails the destination is left untouched and the debit error is returned.
func (b *Bank) Transfer(source, destination *Account, amount decimal.Decimal) error {
	if err := source.Debit(amount); err != nil {
		return err
	}

	destination.Credit(amount)

	return nil
}

// BankInfo is a snapshot of a bank.
type BankInfo struct {
	Name       string      `json:"name"`
	AccountIDs []uuid.UUID `json:"account_ids"`
}

// CreateTransferParams is the input data for a transfer within a bank.
type CreateTransferParams struct {
	Bank          string    `json:"bank"`
	FromAccountID uuid.UUID `json:"from_account_id"`
	ToAccountID   uuid.UUID `json:"to_account_id"`
	Amount        string    `json:"amount"`
}

// TransferResult is the state of both accounts after a transfer.
type TransferResult struct {
	Bank        string      `json:"bank"`
	Amount      string      `json:"amount"`
	FromAccount AccountInfo `json:"from_account"`
	ToAccount   AccountInfo `json:"to_account"`
}
