package accountservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/bankmodel/internal/domain"
	"github.com/go-petr/bankmodel/internal/test"
	"github.com/go-petr/bankmodel/pkg/errorspkg"
	"github.com/go-petr/bankmodel/pkg/randompkg"
)

func TestCreate(t *testing.T) {
	testAccount := test.RandomAccount(randompkg.Owner())

	testCases := []struct {
		name          string
		arg           domain.CreateAccountParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.AccountInfo, err error)
	}{
		{
			name: "OK",
			arg: domain.CreateAccountParams{
				Owner:   testAccount.Owner,
				Balance: testAccount.Balance,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					CreateAccount(gomock.Any(), gomock.Eq(testAccount.Owner), test.DecimalEq(testAccount.Balance)).
					Times(1).
					Return(testAccount, nil)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.NoError(t, err)
				require.Equal(t, testAccount, res)
			},
		},
		{
			name: "NegativeBalance",
			arg: domain.CreateAccountParams{
				Owner:   testAccount.Owner,
				Balance: "-1.123",
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					CreateAccount(gomock.Any(), gomock.Eq(testAccount.Owner), test.DecimalEq("-1.123")).
					Times(1).
					Return(domain.AccountInfo{ID: testAccount.ID, Owner: testAccount.Owner, Balance: "-1.123"}, nil)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.NoError(t, err)
				require.Equal(t, "-1.123", res.Balance)
			},
		},
		{
			name: "InvalidBalance",
			arg: domain.CreateAccountParams{
				Owner:   testAccount.Owner,
				Balance: "!@#$",
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
			},
		},
		{
			name: "RepoError",
			arg: domain.CreateAccountParams{
				Owner:   testAccount.Owner,
				Balance: testAccount.Balance,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.AccountInfo{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			s := New(repo)
			tc.checkResponse(s.Create(context.Background(), tc.arg))
		})
	}
}

func TestGetAndList(t *testing.T) {
	owner := randompkg.Owner()
	testAccount1 := test.RandomAccount(owner)
	testAccount2 := test.RandomAccount(owner)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	s := New(repo)
	ctx := context.Background()

	repo.EXPECT().GetAccount(gomock.Any(), gomock.Eq(testAccount1.ID)).Times(1).Return(testAccount1, nil)
	repo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Times(1).Return(domain.AccountInfo{}, domain.ErrAccountNotFound)
	repo.EXPECT().ListAccounts(gomock.Any(), gomock.Eq(owner)).Times(1).
		Return([]domain.AccountInfo{testAccount1, testAccount2}, nil)
	repo.EXPECT().ListAccounts(gomock.Any(), gomock.Eq("")).Times(1).Return(nil, errorspkg.ErrInternal)

	got, err := s.Get(ctx, testAccount1.ID)
	require.NoError(t, err)
	require.Equal(t, testAccount1, got)

	_, err = s.Get(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	accounts, err := s.List(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, []domain.AccountInfo{testAccount1, testAccount2}, accounts)

	accounts, err = s.List(ctx, "")
	require.Nil(t, accounts)
	require.ErrorIs(t, err, errorspkg.ErrInternal)
}

func TestUpdate(t *testing.T) {
	testAccount := test.RandomAccount(randompkg.Owner())
	newOwner := randompkg.Owner()
	newBalance := "-50"
	invalidBalance := "fifty"

	testCases := []struct {
		name          string
		arg           domain.UpdateAccountParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.AccountInfo, err error)
	}{
		{
			name: "OwnerOnly",
			arg:  domain.UpdateAccountParams{Owner: &newOwner},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					UpdateAccount(gomock.Any(), gomock.Eq(testAccount.ID), gomock.Eq(&newOwner), gomock.Nil()).
					Times(1).
					Return(domain.AccountInfo{ID: testAccount.ID, Owner: newOwner, Balance: testAccount.Balance}, nil)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.NoError(t, err)
				require.Equal(t, newOwner, res.Owner)
			},
		},
		{
			name: "NegativeBalance",
			arg:  domain.UpdateAccountParams{Balance: &newBalance},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					UpdateAccount(gomock.Any(), gomock.Eq(testAccount.ID), gomock.Nil(), test.DecimalEq(newBalance)).
					Times(1).
					Return(domain.AccountInfo{ID: testAccount.ID, Owner: testAccount.Owner, Balance: newBalance}, nil)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.NoError(t, err)
				require.Equal(t, newBalance, res.Balance)
			},
		},
		{
			name: "InvalidBalance",
			arg:  domain.UpdateAccountParams{Owner: &newOwner, Balance: &invalidBalance},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().UpdateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			s := New(repo)
			tc.checkResponse(s.Update(context.Background(), testAccount.ID, tc.arg))
		})
	}
}

func TestDebitAndCredit(t *testing.T) {
	testAccount := test.RandomAccount(randompkg.Owner())

	testCases := []struct {
		name          string
		amount        string
		call          func(s *Service, amount string) (domain.AccountInfo, error)
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.AccountInfo, err error)
	}{
		{
			name:   "DebitOK",
			amount: "100",
			call: func(s *Service, amount string) (domain.AccountInfo, error) {
				return s.Debit(context.Background(), testAccount.ID, amount)
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Debit(gomock.Any(), gomock.Eq(testAccount.ID), test.DecimalEq("100")).
					Times(1).
					Return(testAccount, nil)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.NoError(t, err)
				require.Equal(t, testAccount, res)
			},
		},
		{
			name:   "DebitInsufficientFunds",
			amount: "100000",
			call: func(s *Service, amount string) (domain.AccountInfo, error) {
				return s.Debit(context.Background(), testAccount.ID, amount)
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Debit(gomock.Any(), gomock.Eq(testAccount.ID), test.DecimalEq("100000")).
					Times(1).
					Return(domain.AccountInfo{}, domain.ErrInsufficientFunds)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, "Not enough money")
			},
		},
		{
			name:   "DebitInvalidAmount",
			amount: "",
			call: func(s *Service, amount string) (domain.AccountInfo, error) {
				return s.Debit(context.Background(), testAccount.ID, amount)
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
			},
		},
		{
			name:   "CreditOK",
			amount: "100",
			call: func(s *Service, amount string) (domain.AccountInfo, error) {
				return s.Credit(context.Background(), testAccount.ID, amount)
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Credit(gomock.Any(), gomock.Eq(testAccount.ID), test.DecimalEq("100")).
					Times(1).
					Return(testAccount, nil)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.NoError(t, err)
				require.Equal(t, testAccount, res)
			},
		},
		{
			name:   "CreditInvalidAmount",
			amount: "1,5",
			call: func(s *Service, amount string) (domain.AccountInfo, error) {
				return s.Credit(context.Background(), testAccount.ID, amount)
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Credit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.AccountInfo, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			tc.checkResponse(tc.call(New(repo), tc.amount))
		})
	}
}
