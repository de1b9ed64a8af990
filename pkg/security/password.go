package security

import "golang.org/x/crypto/bcrypt"

// bcryptCost can be raised later without invalidating existing hashes;
// bcrypt embeds the cost per hash.
const bcryptCost = 10

// PasswordHasher wraps bcrypt behind the narrow hash/compare contract the
// auth usecase depends on, so tests can substitute a cheap implementation.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hash string) bool
}

type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *BcryptHasher) Compare(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
