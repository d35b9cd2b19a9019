// Package bankrepo manages repository layer of banks and accounts.
package bankrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bankmodel/internal/domain"
)

// RepoMem keeps banks and accounts in memory.
//
// A single mutex serialises every operation, so the debit and credit of a
// transfer are never interleaved with another caller.
type RepoMem struct {
	mu       sync.Mutex
	banks    map[string]*domain.Bank
	accounts map[uuid.UUID]*domain.Account
	ids      map[*domain.Account]uuid.UUID
}

// NewRepoMem returns an empty RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		banks:    make(map[string]*domain.Bank),
		accounts: make(map[uuid.UUID]*domain.Account),
		ids:      make(map[*domain.Account]uuid.UUID),
	}
}

func (r *RepoMem) bankInfo(b *domain.Bank) domain.BankInfo {
	accounts := b.Accounts()

	info := domain.BankInfo{
		Name:       b.Name(),
		AccountIDs: make([]uuid.UUID, 0, len(accounts)),
	}

	for _, a := range accounts {
		info.AccountIDs = append(info.AccountIDs, r.ids[a])
	}

	return info
}

func (r *RepoMem) getBank(ctx context.Context, name string) (*domain.Bank, error) {
	b, ok := r.banks[name]
	if !ok {
		zerolog.Ctx(ctx).Info().Str("bank", name).Err(domain.ErrBankNotFound).Send()
		return nil, domain.ErrBankNotFound
	}

	return b, nil
}

func (r *RepoMem) getAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		zerolog.Ctx(ctx).Info().Stringer("account_id", id).Err(domain.ErrAccountNotFound).Send()
		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

// CreateBank creates the bank and then returns it.
func (r *RepoMem) CreateBank(ctx context.Context, name string) (domain.BankInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.banks[name]; ok {
		zerolog.Ctx(ctx).Info().Str("bank", name).Err(domain.ErrBankAlreadyExists).Send()
		return domain.BankInfo{}, domain.ErrBankAlreadyExists
	}

	b := domain.NewBank(name)
	r.banks[name] = b

	return r.bankInfo(b), nil
}

// GetBank returns the bank with the given name.
func (r *RepoMem) GetBank(ctx context.Context, name string) (domain.BankInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.getBank(ctx, name)
	if err != nil {
		return domain.BankInfo{}, err
	}

	return r.bankInfo(b), nil
}

// ListBanks returns all banks ordered by name.
func (r *RepoMem) ListBanks(ctx context.Context) ([]domain.BankInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	banks := make([]domain.BankInfo, 0, len(r.banks))
	for _, b := range r.banks {
		banks = append(banks, r.bankInfo(b))
	}

	sort.Slice(banks, func(i, j int) bool {
		return banks[i].Name < banks[j].Name
	})

	return banks, nil
}

// CreateAccount creates the account and then returns it.
func (r *RepoMem) CreateAccount(ctx context.Context, owner string, balance decimal.Decimal) (domain.AccountInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	a := domain.NewAccount(owner, balance)

	r.accounts[id] = a
	r.ids[a] = id

	return a.Info(id), nil
}

// GetAccount returns the account with the given id.
func (r *RepoMem) GetAccount(ctx context.Context, id uuid.UUID) (domain.AccountInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.getAccount(ctx, id)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	return a.Info(id), nil
}

func filterByOwner(infos []domain.AccountInfo, owner string) []domain.AccountInfo {
	if owner == "" {
		return infos
	}

	filtered := make([]domain.AccountInfo, 0, len(infos))
	for _, info := range infos {
		if info.Owner == owner {
			filtered = append(filtered, info)
		}
	}

	return filtered
}

// ListAccounts returns all accounts owned by owner, or every account when owner is empty.
// Accounts are ordered by id.
func (r *RepoMem) ListAccounts(ctx context.Context, owner string) ([]domain.AccountInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]domain.AccountInfo, 0, len(r.accounts))
	for id, a := range r.accounts {
		accounts = append(accounts, a.Info(id))
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ID.String() < accounts[j].ID.String()
	})

	return filterByOwner(accounts, owner), nil
}

// UpdateAccount sets the non nil owner and balance on the account without any checks and returns it.
func (r *RepoMem) UpdateAccount(ctx context.Context, id uuid.UUID, owner *string, balance *decimal.Decimal) (domain.AccountInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.getAccount(ctx, id)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	if owner != nil {
		a.SetOwner(*owner)
	}

	if balance != nil {
		a.SetBalance(*balance)
	}

	return a.Info(id), nil
}

// Debit debits the account and returns it.
func (r *RepoMem) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (domain.AccountInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.getAccount(ctx, id)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	if err := a.Debit(amount); err != nil {
		zerolog.Ctx(ctx).Info().Stringer("account_id", id).Err(err).Send()
		return domain.AccountInfo{}, err
	}

	return a.Info(id), nil
}

// Credit credits the account and returns it.
func (r *RepoMem) Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (domain.AccountInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.getAccount(ctx, id)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	a.Credit(amount)

	return a.Info(id), nil
}

// AddAccount registers the account with the bank and returns the bank.
func (r *RepoMem) AddAccount(ctx context.Context, bankName string, accountID uuid.UUID) (domain.BankInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.getBank(ctx, bankName)
	if err != nil {
		return domain.BankInfo{}, err
	}

	a, err := r.getAccount(ctx, accountID)
	if err != nil {
		return domain.BankInfo{}, err
	}

	b.AddAccount(a)

	return r.bankInfo(b), nil
}

// BankAccounts returns the accounts registered with the bank, filtered by owner when it is not empty.
// Accounts are in registration order.
func (r *RepoMem) BankAccounts(ctx context.Context, bankName, owner string) ([]domain.AccountInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.getBank(ctx, bankName)
	if err != nil {
		return nil, err
	}

	registered := b.Accounts()

	accounts := make([]domain.AccountInfo, 0, len(registered))
	for _, a := range registered {
		accounts = append(accounts, a.Info(r.ids[a]))
	}

	return filterByOwner(accounts, owner), nil
}

// Transfer moves amount between two accounts through the bank.
// Neither account has to be registered with the bank.
func (r *RepoMem) Transfer(ctx context.Context, bankName string, fromID, toID uuid.UUID, amount decimal.Decimal) (domain.TransferResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.getBank(ctx, bankName)
	if err != nil {
		return domain.TransferResult{}, err
	}

	from, err := r.getAccount(ctx, fromID)
	if err != nil {
		return domain.TransferResult{}, err
	}

	to, err := r.getAccount(ctx, toID)
	if err != nil {
		return domain.TransferResult{}, err
	}

	if err := b.Transfer(from, to, amount); err != nil {
		zerolog.Ctx(ctx).Info().
			Str("bank", bankName).
			Stringer("from_account_id", fromID).
			Stringer("to_account_id", toID).
			Err(err).
			Send()

		return domain.TransferResult{}, err
	}

	return domain.TransferResult{
		Bank:        b.Name(),
		Amount:      amount.String(),
		FromAccount: from.Info(fromID),
		ToAccount:   to.Info(toID),
	}, nil
}
