package model

import (
	"time"
)

// Account represents the database model for bank accounts
type Account struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Age       int       `gorm:"not null;check:chk_accounts_age,age >= 18"`
	PINHash   string    `gorm:"column:pin_hash;type:varchar(100);not null"`
	AccountNo string    `gorm:"column:account_no;type:varchar(16);not null;uniqueIndex:idx_accounts_account_no"`
	Balance   int64     `gorm:"not null;default:0;check:chk_accounts_balance,balance >= 0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
