// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bankmodel/internal/domain"
	"github.com/go-petr/bankmodel/pkg/amountpkg"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Transfer(ctx context.Context, bankName string, fromID, toID uuid.UUID, amount decimal.Decimal) (domain.TransferResult, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo Repo
}

// New returns transfer service struct to manage transfer bussines logic.
func New(tr Repo) *Service {
	return &Service{repo: tr}
}

// Transfer debits the source account and then credits the destination account.
//
// The amount sign is not validated. ErrInsufficientFunds from the debit is returned as is.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	amount, err := amountpkg.Parse(arg.Amount)
	if err != nil {
		l.Info().Err(err).Str("amount", arg.Amount).Send()
		return domain.TransferResult{}, domain.ErrInvalidAmount
	}

	result, err := s.repo.Transfer(ctx, arg.Bank, arg.FromAccountID, arg.ToAccountID, amount)
	if err != nil {
		return domain.TransferResult{}, err
	}

	l.Debug().
		Str("bank", result.Bank).
		Stringer("from_account_id", arg.FromAccountID).
		Stringer("to_account_id", arg.ToAccountID).
		Str("amount", result.Amount).
		Msg("transfer completed")

	return result, nil
}
