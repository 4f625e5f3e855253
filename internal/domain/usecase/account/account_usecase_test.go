package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/bank-account-service/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/bank-account-service/mocks/port/persistence"
)

const testAccountNo = "ab1#C2d&3"

var fixedTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uow     *mockpersistence.MockUnitOfWork
	repo    *mockpersistence.MockAccountRepository
	limiter *mockcore.MockAttemptLimiter
	clock   *mockcore.MockTimeProvider
	logger  *mockcore.MockLogger
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:     mockpersistence.NewMockUnitOfWork(t),
		repo:    mockpersistence.NewMockAccountRepository(t),
		limiter: mockcore.NewMockAttemptLimiter(t),
		clock:   mockcore.NewMockTimeProvider(t),
		logger:  mockcore.NewMockLogger(t),
	}

	f.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.uow.EXPECT().GetAccountRepository(mock.Anything).Return(f.repo).Maybe()
	f.clock.EXPECT().Now().Return(fixedTime).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return f
}

func (f *fixture) useCase(opts ...Option) *AccountUseCase {
	return NewAccountUseCase(f.uow, f.limiter, f.clock, f.logger, Config{
		PINHashCost:       bcrypt.MinCost,
		AccountNoAttempts: 3,
	}, opts...)
}

func (f *fixture) allowAttempts() {
	f.limiter.EXPECT().Acquire(mock.Anything, testAccountNo).Return(true, nil).Maybe()
}

func storedAccount(t *testing.T, pin string, balance int64) *entity.Account {
	t.Helper()
	hash, err := entity.HashPIN(pin, bcrypt.MinCost)
	require.NoError(t, err)
	return entity.RestoreAccount(42, "Ann", "a@x.com", 30, testAccountNo, hash, balance, fixedTime, fixedTime)
}

func sequence(values ...string) entity.AccountNoGenerator {
	i := 0
	return func() (string, error) {
		v := values[i%len(values)]
		i++
		return v, nil
	}
}

func TestNewAccountUseCase(t *testing.T) {
	t.Run("Nil unit of work should panic", func(t *testing.T) {
		assert.Panics(t, func() {
			NewAccountUseCase(nil, nil, nil, nil, Config{})
		})
	})

	t.Run("Default account number attempts", func(t *testing.T) {
		f := newFixture(t)
		uc := NewAccountUseCase(f.uow, f.limiter, f.clock, f.logger, Config{})
		assert.Equal(t, DefaultAccountNoAttempts, uc.cfg.AccountNoAttempts)
	})
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful creation", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.AccountNo == testAccountNo && a.Balance() == 0 && a.VerifyPIN("1234")
		})).Run(func(_ context.Context, a *entity.Account) {
			a.ID = 1
		}).Return(nil).Once()

		uc := f.useCase(WithAccountNoGenerator(sequence(testAccountNo)))
		result, err := uc.CreateAccount(ctx, usecase.CreateAccountRequest{
			Name: "Ann", Email: "a@x.com", Age: 30, PIN: "1234",
		})

		require.NoError(t, err)
		assert.Equal(t, testAccountNo, result.AccountNo)
		assert.Equal(t, MsgAccountCreated, result.Message)
	})

	t.Run("Validation fails before the store is touched", func(t *testing.T) {
		testCases := []struct {
			name string
			req  usecase.CreateAccountRequest
			err  error
		}{
			{"Underage", usecase.CreateAccountRequest{Name: "Ann", Email: "a@x.com", Age: 17, PIN: "1234"}, errs.ErrUnderage},
			{"Short PIN", usecase.CreateAccountRequest{Name: "Ann", Email: "a@x.com", Age: 30, PIN: "123"}, errs.ErrInvalidPIN},
			{"Empty name", usecase.CreateAccountRequest{Name: "", Email: "a@x.com", Age: 30, PIN: "1234"}, errs.ErrInvalidName},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				uc := f.useCase()

				result, err := uc.CreateAccount(ctx, tc.req)

				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, result)
				f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Collision is retried with a new number", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.AccountNo == testAccountNo
		})).Return(errs.ErrDuplicateAccountNo).Once()
		f.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.AccountNo == "Zz9!y8x@7"
		})).Return(nil).Once()

		uc := f.useCase(WithAccountNoGenerator(sequence(testAccountNo, "Zz9!y8x@7")))
		result, err := uc.CreateAccount(ctx, usecase.CreateAccountRequest{
			Name: "Ann", Email: "a@x.com", Age: 30, PIN: "1234",
		})

		require.NoError(t, err)
		assert.Equal(t, "Zz9!y8x@7", result.AccountNo)
	})

	t.Run("Gives up after the configured attempts", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateAccountNo).Times(3)

		uc := f.useCase(WithAccountNoGenerator(sequence(testAccountNo)))
		result, err := uc.CreateAccount(ctx, usecase.CreateAccountRequest{
			Name: "Ann", Email: "a@x.com", Age: 30, PIN: "1234",
		})

		assert.ErrorIs(t, err, errs.ErrDuplicateAccountNo)
		assert.Nil(t, result)
	})

	t.Run("Store failure is not retried", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		uc := f.useCase(WithAccountNoGenerator(sequence(testAccountNo)))
		result, err := uc.CreateAccount(ctx, usecase.CreateAccountRequest{
			Name: "Ann", Email: "a@x.com", Age: 30, PIN: "1234",
		})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		var accErr *errs.AccountError
		require.ErrorAs(t, err, &accErr)
		assert.Equal(t, "create", accErr.Operation)
		assert.Nil(t, result)
	})

	t.Run("Generator failure", func(t *testing.T) {
		f := newFixture(t)
		genErr := errors.New("no entropy")

		uc := f.useCase(WithAccountNoGenerator(func() (string, error) { return "", genErr }))
		result, err := uc.CreateAccount(ctx, usecase.CreateAccountRequest{
			Name: "Ann", Email: "a@x.com", Age: 30, PIN: "1234",
		})

		assert.ErrorIs(t, err, genErr)
		assert.Nil(t, result)
	})
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful deposit", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 0), nil).Once()
		f.repo.EXPECT().AdjustBalance(mock.Anything, uint64(42), int64(500)).Return(int64(500), nil).Once()
		f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(nil).Once()

		result, err := f.useCase().Deposit(ctx, testAccountNo, "1234", 500)

		require.NoError(t, err)
		assert.Equal(t, int64(500), result.Balance)
		assert.Equal(t, "Deposit successful! New balance: 500", result.Message)
	})

	t.Run("Wrong PIN keeps the attempt counted", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 0), nil).Once()

		result, err := f.useCase().Deposit(ctx, testAccountNo, "9999", 500)

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Nil(t, result)
		f.repo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
		f.limiter.AssertNotCalled(t, "Reset", mock.Anything, mock.Anything)
	})

	t.Run("Unknown account fails like a wrong PIN", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(nil, errs.ErrAccountNotFound).Once()

		result, err := f.useCase().Deposit(ctx, testAccountNo, "1234", 500)

		assert.Equal(t, errs.ErrInvalidCredentials, err)
		assert.Nil(t, result)
	})

	t.Run("Amount out of range after authentication", func(t *testing.T) {
		for _, amount := range []int64{0, -1, 10001} {
			f := newFixture(t)
			f.allowAttempts()
			f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 100), nil).Once()
			f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(nil).Once()

			result, err := f.useCase().Deposit(ctx, testAccountNo, "1234", amount)

			assert.ErrorIs(t, err, errs.ErrDepositOutOfRange)
			assert.Nil(t, result)
			f.repo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Locked account is rejected without touching the store", func(t *testing.T) {
		f := newFixture(t)
		f.limiter.EXPECT().Acquire(mock.Anything, testAccountNo).Return(false, nil).Once()

		result, err := f.useCase().Deposit(ctx, testAccountNo, "1234", 500)

		assert.ErrorIs(t, err, errs.ErrTooManyAttempts)
		assert.Nil(t, result)
		f.uow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("Limiter outage does not block deposits", func(t *testing.T) {
		f := newFixture(t)
		f.limiter.EXPECT().Acquire(mock.Anything, testAccountNo).Return(false, errors.New("redis down")).Once()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 0), nil).Once()
		f.repo.EXPECT().AdjustBalance(mock.Anything, uint64(42), int64(10)).Return(int64(10), nil).Once()
		f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(errors.New("redis down")).Once()

		result, err := f.useCase().Deposit(ctx, testAccountNo, "1234", 10)

		require.NoError(t, err)
		assert.Equal(t, int64(10), result.Balance)
	})

	t.Run("Store failure is wrapped with the account", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(nil, errs.ErrDatabaseConnection).Once()

		result, err := f.useCase().Deposit(ctx, testAccountNo, "1234", 10)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.EqualError(t, err, "deposit failed for account ab1#C2d&3: database connection error")
		assert.Nil(t, result)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful withdrawal", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 500), nil).Once()
		f.repo.EXPECT().AdjustBalance(mock.Anything, uint64(42), int64(-200)).Return(int64(300), nil).Once()
		f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(nil).Once()

		result, err := f.useCase().Withdraw(ctx, testAccountNo, "1234", 200)

		require.NoError(t, err)
		assert.Equal(t, int64(300), result.Balance)
		assert.Equal(t, "Withdrawal successful! New balance: 300", result.Message)
	})

	t.Run("Amount above balance", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 300), nil).Once()
		f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(nil).Once()

		result, err := f.useCase().Withdraw(ctx, testAccountNo, "1234", 1000)

		assert.ErrorIs(t, err, errs.ErrInvalidWithdrawal)
		assert.Nil(t, result)
		f.repo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store rejects a debit below zero", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 300), nil).Once()
		f.repo.EXPECT().AdjustBalance(mock.Anything, uint64(42), int64(-300)).Return(int64(0), errs.ErrInsufficientBalance).Once()
		f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(nil).Once()

		result, err := f.useCase().Withdraw(ctx, testAccountNo, "1234", 300)

		assert.ErrorIs(t, err, errs.ErrInvalidWithdrawal)
		assert.Nil(t, result)
	})
}

func TestGetDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the account without locking", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNo(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 300), nil).Once()
		f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(nil).Once()

		account, err := f.useCase().GetDetails(ctx, testAccountNo, "1234")

		require.NoError(t, err)
		assert.Equal(t, "Ann", account.Name)
		assert.Equal(t, int64(300), account.Balance())
		f.repo.AssertNotCalled(t, "GetByAccountNoForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Wrong PIN", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNo(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 300), nil).Once()

		account, err := f.useCase().GetDetails(ctx, testAccountNo, "0000")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Nil(t, account)
	})
}

func TestUpdateDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty request leaves the row alone", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 0), nil).Once()
		f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(nil).Once()

		msg, err := f.useCase().UpdateDetails(ctx, testAccountNo, "1234", usecase.UpdateDetailsRequest{})

		require.NoError(t, err)
		assert.Equal(t, MsgDetailsUpdated, msg)
		f.repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("New PIN is hashed and stored", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 0), nil).Once()
		f.repo.EXPECT().UpdateProfile(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Name == "Ann" && a.Email == "new@x.com" && a.VerifyPIN("9999") && !a.VerifyPIN("1234")
		})).Return(nil).Once()
		f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(nil).Once()

		msg, err := f.useCase().UpdateDetails(ctx, testAccountNo, "1234", usecase.UpdateDetailsRequest{
			NewEmail: "new@x.com",
			NewPIN:   "9999",
		})

		require.NoError(t, err)
		assert.Equal(t, MsgDetailsUpdated, msg)
	})

	t.Run("Invalid new PIN", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 0), nil).Once()
		f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(nil).Once()

		msg, err := f.useCase().UpdateDetails(ctx, testAccountNo, "1234", usecase.UpdateDetailsRequest{NewPIN: "12"})

		assert.ErrorIs(t, err, errs.ErrInvalidPIN)
		assert.Empty(t, msg)
		f.repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful delete", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 0), nil).Once()
		f.repo.EXPECT().Delete(mock.Anything, uint64(42)).Return(nil).Once()
		f.limiter.EXPECT().Reset(mock.Anything, testAccountNo).Return(nil).Once()

		msg, err := f.useCase().DeleteAccount(ctx, testAccountNo, "1234")

		require.NoError(t, err)
		assert.Equal(t, MsgAccountDeleted, msg)
	})

	t.Run("Wrong PIN keeps the account", func(t *testing.T) {
		f := newFixture(t)
		f.allowAttempts()
		f.repo.EXPECT().GetByAccountNoForUpdate(mock.Anything, testAccountNo).Return(storedAccount(t, "1234", 0), nil).Once()

		msg, err := f.useCase().DeleteAccount(ctx, testAccountNo, "4321")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Empty(t, msg)
		f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestListAllAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns every account", func(t *testing.T) {
		f := newFixture(t)
		accounts := []*entity.Account{storedAccount(t, "1234", 1), storedAccount(t, "5678", 2)}
		f.repo.EXPECT().List(mock.Anything).Return(accounts, nil).Once()

		got, err := f.useCase().ListAllAccounts(ctx)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Store failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().List(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		got, err := f.useCase().ListAllAccounts(ctx)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, got)
	})
}
