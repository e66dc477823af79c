package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("s3cret-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	_, err = service.HashPassword("")
	assert.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("s3cret-password")
	assert.NoError(t, err)

	assert.True(t, service.ComparePassword(hash, "s3cret-password"))
	assert.False(t, service.ComparePassword(hash, "wrong-password"))
}
