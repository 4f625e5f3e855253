package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func modelToEntity(m *model.Account) *entity.Account {
	return entity.RestoreAccount(
		m.ID,
		m.Name,
		m.Email,
		m.Age,
		m.AccountNo,
		m.PINHash,
		m.Balance,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// handleDatabaseError maps driver errors to domain errors. Lock and connection
// errors keep the driver error in the chain so the unit of work can retry them.
func (r *AccountRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields["operation"] = operation
	fields["error"] = err.Error()

	switch r.errorClassifier.Classify(err) {
	case DuplicateKeyError:
		r.logger.Warn("Duplicate account number", fields)
		return errs.ErrDuplicateAccountNo
	case ConstraintError:
		r.logger.Warn("Account constraint violated", fields)
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case LockError:
		r.logger.Warn("Account row is contended", fields)
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}
}

// Create inserts a new account and sets its ID
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Creating account", map[string]any{
		"account_no": account.AccountNo,
	})

	accountModel := model.Account{
		Name:      account.Name,
		Email:     account.Email,
		Age:       account.Age,
		PINHash:   account.PINHash(),
		AccountNo: account.AccountNo,
		Balance:   account.Balance(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, map[string]any{
			"account_no": account.AccountNo,
		})
	}

	account.ID = accountModel.ID
	return nil
}

// GetByAccountNo retrieves an account by its exact account number
func (r *AccountRepository) GetByAccountNo(ctx context.Context, accountNo string) (*entity.Account, error) {
	return r.getByAccountNo(ctx, r.db.WithContext(ctx), accountNo)
}

// GetByAccountNoForUpdate locks the row with SELECT ... FOR UPDATE.
// The sqlite dialect drops the locking clause; sqlite serializes writers on its own.
func (r *AccountRepository) GetByAccountNoForUpdate(ctx context.Context, accountNo string) (*entity.Account, error) {
	return r.getByAccountNo(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), accountNo)
}

func (r *AccountRepository) getByAccountNo(_ context.Context, db *gorm.DB, accountNo string) (*entity.Account, error) {
	var accountModel model.Account
	result := db.Where("account_no = ?", accountNo).First(&accountModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, map[string]any{
			"account_no": accountNo,
		})
	}

	return modelToEntity(&accountModel), nil
}

// List returns every account ordered by ID
func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var models []model.Account
	result := r.db.WithContext(ctx).Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing accounts", result.Error, nil)
	}

	accounts := make([]*entity.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, modelToEntity(&models[i]))
	}
	return accounts, nil
}

// AdjustBalance applies delta with one UPDATE statement. A debit carries the
// guard balance + delta >= 0 in its WHERE clause, so two concurrent debits can
// never both succeed against the same funds.
func (r *AccountRepository) AdjustBalance(ctx context.Context, id uint64, delta int64) (int64, error) {
	db := r.db.WithContext(ctx)
	fields := map[string]any{"account_id": id, "delta": delta}

	query := db.Model(&model.Account{}).Where("id = ?", id)
	if delta < 0 {
		query = query.Where("balance + ? >= 0", delta)
	}

	result := query.Updates(map[string]any{
		"balance":    gorm.Expr("balance + ?", delta),
		"updated_at": r.timeProvider.Now(),
	})
	if result.Error != nil {
		return 0, r.handleDatabaseError("adjusting balance", result.Error, fields)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&model.Account{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return 0, r.handleDatabaseError("checking account", err, fields)
		}
		if count == 0 {
			return 0, errs.ErrAccountNotFound
		}
		r.logger.Warn("Debit rejected by balance guard", fields)
		return 0, errs.ErrInsufficientBalance
	}

	var updated model.Account
	if err := db.Select("balance").Where("id = ?", id).First(&updated).Error; err != nil {
		return 0, r.handleDatabaseError("reading balance", err, fields)
	}

	r.logger.Debug("Balance adjusted", map[string]any{
		"account_id":  id,
		"delta":       delta,
		"new_balance": updated.Balance,
	})
	return updated.Balance, nil
}

// UpdateProfile persists name, email and PIN hash
func (r *AccountRepository) UpdateProfile(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"name":       account.Name,
			"email":      account.Email,
			"pin_hash":   account.PINHash(),
			"updated_at": account.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating account", result.Error, map[string]any{
			"account_no": account.AccountNo,
		})
	}

	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

// Delete permanently removes the account row
func (r *AccountRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Account{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting account", result.Error, map[string]any{
			"account_id": id,
		})
	}

	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}
