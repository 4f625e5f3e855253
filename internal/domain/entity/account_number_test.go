package entity

import (
	"errors"
	"testing"

	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestGenerateAccountNo(t *testing.T) {
	t.Run("Composition", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			accountNo, err := GenerateAccountNo()
			require.NoError(t, err)
			assert.Len(t, accountNo, AccountNoLength)
			assert.True(t, IsWellFormedAccountNo(accountNo), accountNo)
		}
	})

	t.Run("Values vary", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			accountNo, err := GenerateAccountNo()
			require.NoError(t, err)
			seen[accountNo] = struct{}{}
		}
		assert.Greater(t, len(seen), 90)
	})

	t.Run("Entropy failure", func(t *testing.T) {
		accountNo, err := GenerateAccountNoFrom(failingReader{})

		assert.ErrorIs(t, err, errs.ErrInternalServer)
		assert.Empty(t, accountNo)
	})
}

func TestIsWellFormedAccountNo(t *testing.T) {
	testCases := []struct {
		value string
		want  bool
	}{
		{"ab1#C2d&3", true},
		{"3&d2C#1ba", true},
		{"abcd123!!", true},
		{"abcd123!", false},
		{"abcd1234!", false},
		{"abcde12!@", false},
		{"abcd123!?", false},
		{"abcd123! ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.want, IsWellFormedAccountNo(tc.value))
		})
	}
}
