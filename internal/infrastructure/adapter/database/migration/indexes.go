package migration

import (
	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager applies store-specific tuning to the accounts table.
// The only index the service queries through is the unique account_no index,
// which AutoMigrate creates from the model tags.
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// ApplyPostgresTweaks sets storage parameters that only postgres supports
func (m *IndexManager) ApplyPostgresTweaks() error {
	if m.db.Dialector.Name() != "postgres" {
		return nil
	}

	m.logger.Info("Applying PostgreSQL storage tweaks", nil)

	// Leave room on each page so balance updates can stay HOT
	if err := m.db.Exec(`
		ALTER TABLE accounts SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for accounts table", map[string]any{
			"error": err.Error(),
		})
	}

	return nil
}
