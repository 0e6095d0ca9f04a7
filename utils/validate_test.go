package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softpro2020/foodland/apperr"
)

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("123456789", 9))
	assert.False(t, IsDigits("12345678", 9))
	assert.False(t, IsDigits("1234567890", 9))
	assert.False(t, IsDigits("12345678x", 9))
	assert.False(t, IsDigits("۱۲۳۴۵۶۷۸۹", 9)) // persian digits are not accepted
}

func TestValidateStructFieldMap(t *testing.T) {
	type in struct {
		Name string `validate:"required,max=5"`
	}

	require.NoError(t, ValidateStruct(in{Name: "ok"}))

	err := ValidateStruct(in{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Fields, "Name")
}
