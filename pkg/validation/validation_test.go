package validation_test

import (
	"testing"

	"jtrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `validate:"omitempty,basic_email"`
	Phone string `validate:"omitempty,valid_phone"`
	Date  string `validate:"omitempty,iso_date"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestBasicEmail(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(sample{Email: "user@example.com"}))
	assert.NoError(t, v.Struct(sample{Email: "a+tag@sub.domain.io"}))
	assert.NoError(t, v.Struct(sample{})) // empty passes, required is separate

	assert.Error(t, v.Struct(sample{Email: "no-at-sign"}))
	assert.Error(t, v.Struct(sample{Email: "user@nodot"}))
	assert.Error(t, v.Struct(sample{Email: "spaces in@example.com"}))
}

func TestValidPhone(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(sample{Phone: "+4915123456789"}))
	assert.NoError(t, v.Struct(sample{Phone: "5551234"}))

	assert.Error(t, v.Struct(sample{Phone: "123"}))          // too short
	assert.Error(t, v.Struct(sample{Phone: "555-123-4567"})) // separators
}

func TestISODate(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(sample{Date: "2026-02-28"}))

	assert.Error(t, v.Struct(sample{Date: "28/02/2026"}))
	assert.Error(t, v.Struct(sample{Date: "2026-02-30"}))
	assert.Error(t, v.Struct(sample{Date: "2026-2-28"}))
}

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		CompanyName   string `validate:"required,max=200"`
		ReferrerEmail string `validate:"omitempty,basic_email"`
	}

	v := newValidator()
	err := v.Struct(form{ReferrerEmail: "bad"})
	require.Error(t, err)

	msgs := validation.FormatValidationErrors(err)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "Company name is required")
	assert.Contains(t, msgs[1], "valid email")
}
