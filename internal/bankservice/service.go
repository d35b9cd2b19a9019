// Package bankservice manages business logic layer of banks.
package bankservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/go-petr/bankmodel/internal/domain"
)

// Repo provides data access layer interface needed by bank service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package bankservice
type Repo interface {
	CreateBank(ctx context.Context, name string) (domain.BankInfo, error)
	GetBank(ctx context.Context, name string) (domain.BankInfo, error)
	ListBanks(ctx context.Context) ([]domain.BankInfo, error)
	AddAccount(ctx context.Context, bankName string, accountID uuid.UUID) (domain.BankInfo, error)
	BankAccounts(ctx context.Context, bankName, owner string) ([]domain.AccountInfo, error)
}

// Service facilitates bank service layer logic.
type Service struct {
	repo Repo
}

// New returns bank service struct to manage bank bussines logic.
func New(br Repo) *Service {
	return &Service{repo: br}
}

// Create creates and returns a bank with the given name.
func (s *Service) Create(ctx context.Context, name string) (domain.BankInfo, error) {
	return s.repo.CreateBank(ctx, name)
}

// Get returns the bank with the given name.
func (s *Service) Get(ctx context.Context, name string) (domain.BankInfo, error) {
	return s.repo.GetBank(ctx, name)
}

// List returns all banks.
func (s *Service) List(ctx context.Context) ([]domain.BankInfo, error) {
	banks, err := s.repo.ListBanks(ctx)
	if err != nil {
		return nil, err
	}

	return banks, nil
}

// AddAccount registers the account with the bank.
func (s *Service) AddAccount(ctx context.Context, bankName string, accountID uuid.UUID) (domain.BankInfo, error) {
	return s.repo.AddAccount(ctx, bankName, accountID)
}

// Accounts returns the accounts registered with the bank, optionally only those of owner.
func (s *Service) Accounts(ctx context.Context, bankName, owner string) ([]domain.AccountInfo, error) {
	accounts, err := s.repo.BankAccounts(ctx, bankName, owner)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}
