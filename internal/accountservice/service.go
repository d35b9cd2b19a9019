// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bankmodel/internal/domain"
	"github.com/go-petr/bankmodel/pkg/amountpkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	CreateAccount(ctx context.Context, owner string, balance decimal.Decimal) (domain.AccountInfo, error)
	GetAccount(ctx context.Context, id uuid.UUID) (domain.AccountInfo, error)
	ListAccounts(ctx context.Context, owner string) ([]domain.AccountInfo, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, owner *string, balance *decimal.Decimal) (domain.AccountInfo, error)
	Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (domain.AccountInfo, error)
	Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (domain.AccountInfo, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

func parseAmount(ctx context.Context, amount string) (decimal.Decimal, error) {
	d, err := amountpkg.Parse(amount)
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("amount", amount).Send()
		return d, domain.ErrInvalidAmount
	}

	return d, nil
}

// Create creates and returns an account for the given owner and initial balance.
func (s *Service) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.AccountInfo, error) {
	balance, err := parseAmount(ctx, arg.Balance)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	return s.repo.CreateAccount(ctx, arg.Owner, balance)
}

// Get returns the account for the given account ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.AccountInfo, error) {
	return s.repo.GetAccount(ctx, id)
}

// List returns accounts owned by owner, or all accounts when owner is empty.
func (s *Service) List(ctx context.Context, owner string) ([]domain.AccountInfo, error) {
	accounts, err := s.repo.ListAccounts(ctx, owner)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// Update overwrites owner and balance of the account. The balance may be negative.
func (s *Service) Update(ctx context.Context, id uuid.UUID, arg domain.UpdateAccountParams) (domain.AccountInfo, error) {
	var balance *decimal.Decimal

	if arg.Balance != nil {
		d, err := parseAmount(ctx, *arg.Balance)
		if err != nil {
			return domain.AccountInfo{}, err
		}

		balance = &d
	}

	return s.repo.UpdateAccount(ctx, id, arg.Owner, balance)
}

// Debit subtracts amount from the account balance.
func (s *Service) Debit(ctx context.Context, id uuid.UUID, amount string) (domain.AccountInfo, error) {
	d, err := parseAmount(ctx, amount)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	return s.repo.Debit(ctx, id, d)
}

// Credit adds amount to the account balance.
func (s *Service) Credit(ctx context.Context, id uuid.UUID, amount string) (domain.AccountInfo, error) {
	d, err := parseAmount(ctx, amount)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	return s.repo.Credit(ctx, id, d)
}
