package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+27821234567", "0821234567", "1234567"}
	for _, phone := range valid {
		ok, _ := ValidatePhone(phone)
		assert.True(t, ok, "expected %s to be valid", phone)
	}

	invalid := []string{"", "123", "phone", "+27 82 123", "12345678901234567890"}
	for _, phone := range invalid {
		ok, _ := ValidatePhone(phone)
		assert.False(t, ok, "expected %s to be invalid", phone)
	}
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("longenough")
	assert.True(t, ok)

	ok, msg := ValidatePassword("short")
	assert.False(t, ok)
	assert.NotEmpty(t, msg)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3curepass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3curepass", hash)
	assert.True(t, CheckPassword("s3curepass", hash))
	assert.False(t, CheckPassword("wrongpass", hash))
}
