package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password123!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, CheckPassword("Password123!", hash))
	assert.False(t, CheckPassword("WrongPass", hash))
	assert.False(t, CheckPassword("Password123!", "not-a-bcrypt-hash"))
}

func TestHashPassword_SaltsEveryHash(t *testing.T) {
	first, err := HashPassword("same")
	assert.NoError(t, err)
	second, err := HashPassword("same")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashPassword_ErrorBranch(t *testing.T) {
	orig := bcryptGenerateFromPassword
	t.Cleanup(func() { bcryptGenerateFromPassword = orig })

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("bcrypt failed")
	}
	_, err := HashPassword("Password123!")
	assert.Error(t, err)
}
