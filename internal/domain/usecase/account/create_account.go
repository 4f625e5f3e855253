package account

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
)

// CreateAccount validates the request and inserts a new account with a zero balance.
// A colliding account number is regenerated up to cfg.AccountNoAttempts times.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, req usecase.CreateAccountRequest) (*usecase.CreateAccountResult, error) {
	account, err := entity.NewAccount(req.Name, req.Email, req.Age, req.PIN, "", uc.cfg.PINHashCost, uc.timeProvider)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= uc.cfg.AccountNoAttempts; attempt++ {
		accountNo, err := uc.generateNo()
		if err != nil {
			uc.logger.Error("Failed to generate account number", map[string]any{"error": err.Error()})
			return nil, err
		}
		account.AccountNo = accountNo

		err = uc.uow.Execute(ctx, func(txCtx context.Context) error {
			return uc.uow.GetAccountRepository(txCtx).Create(txCtx, account)
		})
		if err == nil {
			uc.logger.Info("Account created", map[string]any{
				"account_no": account.AccountNo,
				"account_id": account.ID,
				"attempt":    attempt,
			})
			return &usecase.CreateAccountResult{
				AccountNo: account.AccountNo,
				Message:   MsgAccountCreated,
			}, nil
		}

		if !errors.Is(err, errs.ErrDuplicateAccountNo) {
			accErr := &errs.AccountError{AccountNo: accountNo, Operation: "create", Err: err}
			uc.logger.Error("Failed to create account", accErr.LogFields())
			return nil, accErr
		}

		uc.logger.Warn("Account number collision, regenerating", map[string]any{
			"account_no": accountNo,
			"attempt":    attempt,
		})
	}

	uc.logger.Error("Gave up generating a unique account number", map[string]any{
		"attempts": uc.cfg.AccountNoAttempts,
	})
	return nil, errs.ErrDuplicateAccountNo
}
