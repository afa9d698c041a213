package service

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

// KeyAuthorizer validates the admin credential against either a plain key or
// a bcrypt hash of it. When both are empty every request is rejected.
type KeyAuthorizer struct {
	key  []byte
	hash []byte
}

// NewKeyAuthorizer builds an authorizer. hash, when non-empty, must be a
// bcrypt hash and takes precedence over key.
func NewKeyAuthorizer(key, hash string) (*KeyAuthorizer, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, errors.New("admin key hash is not a bcrypt hash")
		}
		return &KeyAuthorizer{hash: []byte(hash)}, nil
	}
	return &KeyAuthorizer{key: []byte(key)}, nil
}

func (a *KeyAuthorizer) Authorize(presented string) error {
	if presented == "" {
		return domain.ErrUnauthorized
	}
	if len(a.hash) > 0 {
		if bcrypt.CompareHashAndPassword(a.hash, []byte(presented)) != nil {
			return domain.ErrUnauthorized
		}
		return nil
	}
	if len(a.key) == 0 || subtle.ConstantTimeCompare(a.key, []byte(presented)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}
