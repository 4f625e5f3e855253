package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	"golang.org/x/crypto/bcrypt"
)

// PINLength is the exact number of digits in a PIN
const PINLength = 4

// ValidatePIN checks that pin is exactly four ASCII digits.
// Leading zeros are allowed.
func ValidatePIN(pin string) error {
	if len(pin) != PINLength {
		return errs.ErrInvalidPIN
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return errs.ErrInvalidPIN
		}
	}
	return nil
}

// HashPIN returns the bcrypt hash of pin. Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func HashPIN(pin string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", fmt.Errorf("%w: failed to hash pin: %s", errs.ErrInternalServer, err.Error())
	}
	return string(hash), nil
}

// ComparePIN reports whether pin matches hash
func ComparePIN(hash, pin string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
