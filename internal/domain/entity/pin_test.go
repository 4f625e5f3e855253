package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestValidatePIN(t *testing.T) {
	valid := []string{"0000", "1234", "0042", "9999"}
	for _, pin := range valid {
		assert.NoError(t, ValidatePIN(pin), pin)
	}

	invalid := []string{"", "123", "12345", "12 4", "abcd", "-123", "١٢٣٤"}
	for _, pin := range invalid {
		assert.ErrorIs(t, ValidatePIN(pin), errs.ErrInvalidPIN, pin)
	}
}

func TestHashPIN(t *testing.T) {
	t.Run("Hash verifies only the original PIN", func(t *testing.T) {
		hash, err := HashPIN("0042", bcrypt.MinCost)

		require.NoError(t, err)
		assert.True(t, ComparePIN(hash, "0042"))
		assert.False(t, ComparePIN(hash, "42"))
		assert.False(t, ComparePIN(hash, "0043"))
	})

	t.Run("Same PIN hashes differently", func(t *testing.T) {
		first, err := HashPIN("1234", bcrypt.MinCost)
		require.NoError(t, err)
		second, err := HashPIN("1234", bcrypt.MinCost)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Out of range cost falls back to default", func(t *testing.T) {
		hash, err := HashPIN("1234", 0)
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})

	t.Run("Empty hash never matches", func(t *testing.T) {
		assert.False(t, ComparePIN("", "1234"))
	})
}
