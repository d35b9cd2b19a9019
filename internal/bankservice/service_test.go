package bankservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/bankmodel/internal/domain"
	"github.com/go-petr/bankmodel/internal/test"
	"github.com/go-petr/bankmodel/pkg/errorspkg"
)

func TestCreateAndGet(t *testing.T) {
	testBank := test.RandomBank()

	testCases := []struct {
		name          string
		call          func(s *Service) (domain.BankInfo, error)
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.BankInfo, err error)
	}{
		{
			name: "CreateOK",
			call: func(s *Service) (domain.BankInfo, error) {
				return s.Create(context.Background(), testBank.Name)
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateBank(gomock.Any(), gomock.Eq(testBank.Name)).Times(1).Return(testBank, nil)
			},
			checkResponse: func(res domain.BankInfo, err error) {
				require.NoError(t, err)
				require.Equal(t, testBank, res)
			},
		},
		{
			name: "CreateAlreadyExists",
			call: func(s *Service) (domain.BankInfo, error) {
				return s.Create(context.Background(), testBank.Name)
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateBank(gomock.Any(), gomock.Eq(testBank.Name)).Times(1).
					Return(domain.BankInfo{}, domain.ErrBankAlreadyExists)
			},
			checkResponse: func(res domain.BankInfo, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrBankAlreadyExists)
			},
		},
		{
			name: "GetOK",
			call: func(s *Service) (domain.BankInfo, error) {
				return s.Get(context.Background(), testBank.Name)
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().GetBank(gomock.Any(), gomock.Eq(testBank.Name)).Times(1).Return(testBank, nil)
			},
			checkResponse: func(res domain.BankInfo, err error) {
				require.NoError(t, err)
				require.Equal(t, testBank, res)
			},
		},
		{
			name: "GetNotFound",
			call: func(s *Service) (domain.BankInfo, error) {
				return s.Get(context.Background(), testBank.Name)
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().GetBank(gomock.Any(), gomock.Eq(testBank.Name)).Times(1).
					Return(domain.BankInfo{}, domain.ErrBankNotFound)
			},
			checkResponse: func(res domain.BankInfo, err error) {
				require.ErrorIs(t, err, domain.ErrBankNotFound)
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

			tc.checkResponse(tc.call(New(repo)))
		})
	}
}

func TestList(t *testing.T) {
	banks := []domain.BankInfo{test.RandomBank(), test.RandomBank()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().ListBanks(gomock.Any()).Times(1).Return(banks, nil)
	repo.EXPECT().ListBanks(gomock.Any()).Times(1).Return(nil, errorspkg.ErrInternal)

	s := New(repo)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, banks, got)

	got, err = s.List(context.Background())
	require.Nil(t, got)
	require.ErrorIs(t, err, errorspkg.ErrInternal)
}

func TestAddAccountAndAccounts(t *testing.T) {
	john := test.RandomAccount("John Doe")
	jane := test.RandomAccount("Jane Doe")
	testBank := test.RandomBank(john, jane)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)

	gomock.InOrder(
		repo.EXPECT().AddAccount(gomock.Any(), gomock.Eq(testBank.Name), gomock.Eq(jane.ID)).
			Times(1).
			Return(testBank, nil),
		repo.EXPECT().BankAccounts(gomock.Any(), gomock.Eq(testBank.Name), gomock.Eq("Jane Doe")).
			Times(1).
			Return([]domain.AccountInfo{jane}, nil),
		repo.EXPECT().BankAccounts(gomock.Any(), gomock.Eq("missing"), gomock.Eq("")).
			Times(1).
			Return(nil, domain.ErrBankNotFound),
	)

	s := New(repo)
	ctx := context.Background()

	got, err := s.AddAccount(ctx, testBank.Name, jane.ID)
	require.NoError(t, err)
	require.Equal(t, testBank, got)

	accounts, err := s.Accounts(ctx, testBank.Name, "Jane Doe")
	require.NoError(t, err)
	require.Equal(t, []domain.AccountInfo{jane}, accounts)

	accounts, err = s.Accounts(ctx, "missing", "")
	require.Nil(t, accounts)
	require.ErrorIs(t, err, domain.ErrBankNotFound)
}
