package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
)

// Deposit authenticates and then adds amount to the balance with a single atomic update
func (uc *AccountUseCase) Deposit(ctx context.Context, accountNo, pin string, amount int64) (*usecase.BalanceResult, error) {
	var result *usecase.BalanceResult

	err := uc.withAccount(ctx, "deposit", accountNo, pin, true,
		func(txCtx context.Context, repo persistence.AccountRepository, account *entity.Account) error {
			if err := entity.ValidateDepositAmount(amount); err != nil {
				return err
			}

			balance, err := repo.AdjustBalance(txCtx, account.ID, amount)
			if err != nil {
				return err
			}
			account.SetBalance(balance, uc.timeProvider)

			result = &usecase.BalanceResult{
				AccountNo: account.AccountNo,
				Balance:   balance,
				Message:   fmt.Sprintf("%s! New balance: %d", MsgDeposit, balance),
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Deposit applied", map[string]any{
		"account_no": accountNo,
		"amount":     amount,
		"balance":    result.Balance,
	})
	return result, nil
}

// Withdraw authenticates and then subtracts amount. The store rejects the debit
// if a concurrent withdrawal already drained the balance.
func (uc *AccountUseCase) Withdraw(ctx context.Context, accountNo, pin string, amount int64) (*usecase.BalanceResult, error) {
	var result *usecase.BalanceResult

	err := uc.withAccount(ctx, "withdraw", accountNo, pin, true,
		func(txCtx context.Context, repo persistence.AccountRepository, account *entity.Account) error {
			if err := account.CanWithdraw(amount); err != nil {
				return err
			}

			balance, err := repo.AdjustBalance(txCtx, account.ID, -amount)
			if err != nil {
				if errors.Is(err, errs.ErrInsufficientBalance) {
					return errs.ErrInvalidWithdrawal
				}
				return err
			}
			account.SetBalance(balance, uc.timeProvider)

			result = &usecase.BalanceResult{
				AccountNo: account.AccountNo,
				Balance:   balance,
				Message:   fmt.Sprintf("%s! New balance: %d", MsgWithdrawal, balance),
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Withdrawal applied", map[string]any{
		"account_no": accountNo,
		"amount":     amount,
		"balance":    result.Balance,
	})
	return result, nil
}
