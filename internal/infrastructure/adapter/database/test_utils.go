package database

import (
	"context"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides a migrated in-memory sqlite store for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory database and migrates it.
// The connection is closed when the test ends.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig()
	config.Driver = DriverSQLite
	config.Path = ":memory:"
	config.LogLevel = "silent"
	config.RetryAttempts = 3
	config.RetryDelay = 5 * time.Millisecond

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the underlying gorm handle
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// TruncateAccounts removes every account row
func (m *TestDBManager) TruncateAccounts(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Account{}).Error; err != nil {
		t.Fatalf("Failed to truncate accounts: %v", err)
	}
}

// InsertAccount writes a raw account row, bypassing the domain rules
func (m *TestDBManager) InsertAccount(t *testing.T, account *model.Account) {
	t.Helper()

	if account.CreatedAt.IsZero() {
		account.CreatedAt = m.TimeProvider.Now()
		account.UpdatedAt = account.CreatedAt
	}
	if err := m.Manager.DB().Create(account).Error; err != nil {
		t.Fatalf("Failed to insert test account: %v", err)
	}
}
