package employeeform

import (
	"strings"

	employeeformerrors "go-employee-form/internal/employeeform/errors"
)

// AddressPolicy picks which address rule the validator applies.
type AddressPolicy string

const (
	// AddressStrict allows 2 to 10 letters and spaces.
	AddressStrict AddressPolicy = "strict"
	// AddressLenient only requires a non-empty value.
	AddressLenient AddressPolicy = "lenient"
)

func ParseAddressPolicy(s string) (AddressPolicy, error) {
	switch AddressPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", AddressStrict:
		return AddressStrict, nil
	case AddressLenient:
		return AddressLenient, nil
	}
	return "", employeeformerrors.ErrInvalidAddressPolicy
}

// ErrorMap maps a field name to its message. A missing key means the field
// passed.
type ErrorMap map[string]string

func (m ErrorMap) Valid() bool {
	return len(m) == 0
}

func (m ErrorMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Err returns nil for an empty map, otherwise ErrValidationFailed carrying
// a copy of the map as details.
func (m ErrorMap) Err() error {
	if m.Valid() {
		return nil
	}
	details := make(map[string]string, len(m))
	for k, v := range m {
		details[k] = v
	}
	return employeeformerrors.ErrValidationFailed.WithDetails(details)
}

type Validator struct {
	rules map[string]Rule
}

func NewValidator(policy AddressPolicy) *Validator {
	address := StrictAddressRule
	if policy == AddressLenient {
		address = LenientAddressRule
	}

	return &Validator{
		rules: map[string]Rule{
			FieldFirstName:    FirstNameRule,
			FieldLastName:     LastNameRule,
			FieldEmployeeCode: EmployeeCodeRule,
			FieldContact:      ContactRule,
			FieldDateOfBirth:  DateOfBirthRule,
			FieldAddress:      address,
		},
	}
}

// Validate trims every field of a copy of r and runs all rules against it,
// without stopping at the first failure. It returns the trimmed copy and a
// fresh error map; the map is empty iff the record may be submitted.
func (v *Validator) Validate(r Record) (Record, ErrorMap) {
	r = r.trimmed()
	errs := ErrorMap{}

	for _, field := range Fields {
		value, _ := r.Field(field)
		if msg, ok := v.rules[field](value); !ok {
			errs[field] = msg
		}
	}

	return r, errs
}

// ValidateField checks a single (trimmed) value.
func (v *Validator) ValidateField(field, value string) (string, bool, error) {
	rule, ok := v.rules[field]
	if !ok {
		return "", false, employeeformerrors.ErrUnknownField
	}
	msg, valid := rule(strings.TrimSpace(value))
	return msg, valid, nil
}
