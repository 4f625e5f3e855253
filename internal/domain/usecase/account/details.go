package account

import (
	"context"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/entity"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
)

// GetDetails returns the account after verifying the PIN
func (uc *AccountUseCase) GetDetails(ctx context.Context, accountNo, pin string) (*entity.Account, error) {
	var found *entity.Account

	err := uc.withAccount(ctx, "get_details", accountNo, pin, false,
		func(_ context.Context, _ persistence.AccountRepository, account *entity.Account) error {
			found = account
			return nil
		})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// UpdateDetails merges the non-empty fields of req into the account.
// An all-empty request succeeds without touching the row.
func (uc *AccountUseCase) UpdateDetails(ctx context.Context, accountNo, pin string, req usecase.UpdateDetailsRequest) (string, error) {
	changed := false

	err := uc.withAccount(ctx, "update_details", accountNo, pin, true,
		func(txCtx context.Context, repo persistence.AccountRepository, account *entity.Account) error {
			if req.NewName == "" && req.NewEmail == "" && req.NewPIN == "" {
				return nil
			}
			if err := account.ApplyUpdate(req.NewName, req.NewEmail, req.NewPIN, uc.cfg.PINHashCost, uc.timeProvider); err != nil {
				return err
			}
			changed = true
			return repo.UpdateProfile(txCtx, account)
		})
	if err != nil {
		return "", err
	}

	uc.logger.Info("Account details updated", map[string]any{
		"account_no":  accountNo,
		"changed":     changed,
		"pin_changed": req.NewPIN != "",
	})
	return MsgDetailsUpdated, nil
}

// DeleteAccount removes the account row permanently
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, accountNo, pin string) (string, error) {
	err := uc.withAccount(ctx, "delete", accountNo, pin, true,
		func(txCtx context.Context, repo persistence.AccountRepository, account *entity.Account) error {
			return repo.Delete(txCtx, account.ID)
		})
	if err != nil {
		return "", err
	}

	uc.logger.Info("Account deleted", map[string]any{"account_no": accountNo})
	return MsgAccountDeleted, nil
}

// ListAllAccounts returns every account ordered by ID. Callers gate access.
func (uc *AccountUseCase) ListAllAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := uc.uow.GetAccountRepository(ctx).List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list accounts", map[string]any{"error": err.Error()})
		return nil, err
	}
	return accounts, nil
}
