package employeeform_test

import (
	"errors"
	"strings"
	"testing"

	"go-employee-form/internal/employeeform"
	employeeformerrors "go-employee-form/internal/employeeform/errors"
	"go-employee-form/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func validRecord() employeeform.Record {
	return employeeform.Record{
		FirstName:    "Al",
		LastName:     "Lee",
		EmployeeCode: "1234",
		Contact:      "5551234567",
		DateOfBirth:  "1990-01-01",
		Address:      "Main St",
	}
}

func TestValidator_Validate(t *testing.T) {
	v := employeeform.NewValidator(employeeform.AddressStrict)

	t.Run("valid record has no errors", func(t *testing.T) {
		_, errs := v.Validate(validRecord())
		assert.Empty(t, errs)
		assert.True(t, errs.Valid())
		assert.NoError(t, errs.Err())
	})

	t.Run("non digit employee code only flags employeeCode", func(t *testing.T) {
		rec := validRecord()
		rec.EmployeeCode = "12a4"

		_, errs := v.Validate(rec)

		assert.Equal(t, employeeform.ErrorMap{
			employeeform.FieldEmployeeCode: "Employee code should be a 4-digit number",
		}, errs)
	})

	t.Run("every empty required field is keyed", func(t *testing.T) {
		for _, field := range employeeform.Fields {
			rec, err := validRecord().With(field, "")
			assert.NoError(t, err)

			_, errs := v.Validate(rec)

			assert.True(t, errs.Has(field), field)
			assert.Len(t, errs, 1, field)
		}
	})

	t.Run("whitespace only counts as empty", func(t *testing.T) {
		rec := validRecord()
		rec.Address = "   "
		_, errs := v.Validate(rec)
		assert.Equal(t, "Address should not be empty", errs[employeeform.FieldAddress])
	})

	t.Run("all fields are evaluated", func(t *testing.T) {
		_, errs := v.Validate(employeeform.Record{})
		assert.Len(t, errs, len(employeeform.Fields))
	})

	t.Run("trims a copy", func(t *testing.T) {
		rec := validRecord()
		rec.FirstName = "  Al "
		rec.Contact = " 5551234567\t"

		trimmed, errs := v.Validate(rec)

		assert.Empty(t, errs)
		assert.Equal(t, "Al", trimmed.FirstName)
		assert.Equal(t, "5551234567", trimmed.Contact)
		assert.Equal(t, "  Al ", rec.FirstName)
	})

	t.Run("idempotent", func(t *testing.T) {
		rec := employeeform.Record{FirstName: "A", LastName: "L3e", EmployeeCode: "99999", Contact: "12"}
		_, first := v.Validate(rec)
		_, second := v.Validate(rec)
		assert.Equal(t, first, second)
	})

	t.Run("error map converts to validation error", func(t *testing.T) {
		_, errs := v.Validate(employeeform.Record{})

		err := errs.Err()

		assert.True(t, errors.Is(err, employeeformerrors.ErrValidationFailed))
		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Len(t, appErr.Details, len(employeeform.Fields))
	})
}

func TestNameRule(t *testing.T) {
	cases := map[string]string{
		"":                      "First name is required",
		"A":                     "First name must be between 2 and 20 characters",
		strings.Repeat("a", 21): "First name must be between 2 and 20 characters",
		"Jo3":                   "First name should contain only letters",
		"Mary Ann":              "First name should contain only letters",
	}
	for value, want := range cases {
		msg, ok := employeeform.FirstNameRule(value)
		assert.False(t, ok, value)
		assert.Equal(t, want, msg, value)
	}

	_, ok := employeeform.LastNameRule(strings.Repeat("b", 20))
	assert.True(t, ok)
}

func TestFixedDigitRules(t *testing.T) {
	_, ok := employeeform.EmployeeCodeRule("0042")
	assert.True(t, ok)
	_, ok = employeeform.EmployeeCodeRule("123")
	assert.False(t, ok)
	_, ok = employeeform.EmployeeCodeRule("-123")
	assert.False(t, ok)

	_, ok = employeeform.ContactRule("0123456789")
	assert.True(t, ok)
	msg, ok := employeeform.ContactRule("01234567890")
	assert.False(t, ok)
	assert.Equal(t, "Contact number should be a 10-digit number", msg)
	_, ok = employeeform.ContactRule("1.23456789")
	assert.False(t, ok)
}

func TestAddressPolicy(t *testing.T) {
	rec := validRecord()
	rec.Address = "221B Baker Street"

	_, strict := employeeform.NewValidator(employeeform.AddressStrict).Validate(rec)
	assert.True(t, strict.Has(employeeform.FieldAddress))

	_, lenient := employeeform.NewValidator(employeeform.AddressLenient).Validate(rec)
	assert.Empty(t, lenient)

	p, err := employeeform.ParseAddressPolicy(" Lenient ")
	assert.NoError(t, err)
	assert.Equal(t, employeeform.AddressLenient, p)

	p, err = employeeform.ParseAddressPolicy("")
	assert.NoError(t, err)
	assert.Equal(t, employeeform.AddressStrict, p)

	_, err = employeeform.ParseAddressPolicy("loose")
	assert.ErrorIs(t, err, employeeformerrors.ErrInvalidAddressPolicy)
}

func TestValidator_ValidateField(t *testing.T) {
	v := employeeform.NewValidator(employeeform.AddressStrict)

	msg, ok, err := v.ValidateField(employeeform.FieldContact, " 5551234567 ")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, msg)

	_, _, err = v.ValidateField("salary", "1")
	assert.ErrorIs(t, err, employeeformerrors.ErrUnknownField)
}
