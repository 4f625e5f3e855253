package entity

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	errs "github.com/amirhossein-jamali/bank-account-service/internal/domain/error"
)

// Account number composition
const (
	AccountNoLetters = 4
	AccountNoDigits  = 3
	AccountNoSymbols = 2
	AccountNoLength  = AccountNoLetters + AccountNoDigits + AccountNoSymbols

	accountNoLetterSet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	accountNoDigitSet  = "0123456789"
	// AccountNoSymbolSet is the fixed set symbols are drawn from
	AccountNoSymbolSet = "!@#$%^&*"
)

// AccountNoGenerator produces candidate account numbers
type AccountNoGenerator func() (string, error)

// GenerateAccountNo draws 4 letters, 3 digits and 2 symbols from crypto/rand and shuffles them.
// Uniqueness is not guaranteed here; the store's unique index decides.
func GenerateAccountNo() (string, error) {
	return GenerateAccountNoFrom(rand.Reader)
}

// GenerateAccountNoFrom is GenerateAccountNo with an explicit entropy source
func GenerateAccountNoFrom(r io.Reader) (string, error) {
	chars := make([]byte, 0, AccountNoLength)

	for _, part := range []struct {
		set   string
		count int
	}{
		{accountNoLetterSet, AccountNoLetters},
		{accountNoDigitSet, AccountNoDigits},
		{AccountNoSymbolSet, AccountNoSymbols},
	} {
		for i := 0; i < part.count; i++ {
			idx, err := randIndex(r, len(part.set))
			if err != nil {
				return "", err
			}
			chars = append(chars, part.set[idx])
		}
	}

	// Fisher-Yates
	for i := len(chars) - 1; i > 0; i-- {
		j, err := randIndex(r, i+1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

// IsWellFormedAccountNo reports whether s has the length and character mix of a generated account number
func IsWellFormedAccountNo(s string) bool {
	if len(s) != AccountNoLength {
		return false
	}
	var letters, digits, symbols int
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			letters++
		case c >= '0' && c <= '9':
			digits++
		case containsByte(AccountNoSymbolSet, c):
			symbols++
		default:
			return false
		}
	}
	return letters == AccountNoLetters && digits == AccountNoDigits && symbols == AccountNoSymbols
}

func randIndex(r io.Reader, n int) (int, error) {
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read randomness: %s", errs.ErrInternalServer, err.Error())
	}
	return int(v.Int64()), nil
}

func containsByte(set string, c byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}
