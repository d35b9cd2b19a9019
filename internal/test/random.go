// Package test provides helpers shared by unit tests.
package test

import (
	"github.com/google/uuid"

	"github.com/go-petr/bankmodel/internal/domain"
	"github.com/go-petr/bankmodel/pkg/randompkg"
)

// RandomAccount returns random account owned by the given owner.
func RandomAccount(owner string) domain.AccountInfo {
	return domain.AccountInfo{
		ID:      uuid.New(),
		Owner:   owner,
		Balance: randompkg.MoneyAmountBetween(1000, 10_000),
	}
}

// RandomBank returns a random bank holding the given accounts.
func RandomBank(accounts ...domain.AccountInfo) domain.BankInfo {
	b := domain.BankInfo{
		Name:       randompkg.BankName(),
		AccountIDs: make([]uuid.UUID, 0, len(accounts)),
	}

	for _, a := range accounts {
		b.AccountIDs = append(b.AccountIDs, a.ID)
	}

	return b
}
