package employeeform

import (
	employeeformerrors "go-employee-form/internal/employeeform/errors"
	"strings"
)

// Field names shared by the validator, the error map and the renderer.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmployeeCode = "employeeCode"
	FieldContact      = "contact"
	FieldDateOfBirth  = "dateOfBirth"
	FieldAddress      = "address"
)

// Fields lists every record field in display order.
var Fields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmployeeCode,
	FieldContact,
	FieldDateOfBirth,
	FieldAddress,
}

// Record is one employee as edited in the form and exchanged with the
// backend. ID stays empty until the backend has persisted the record.
type Record struct {
	ID           string
	FirstName    string
	LastName     string
	EmployeeCode string
	Contact      string
	DateOfBirth  string // YYYY-MM-DD
	Address      string
}

// Persisted reports whether the backend has assigned an identity.
func (r Record) Persisted() bool {
	return strings.TrimSpace(r.ID) != ""
}

func (r Record) Field(name string) (string, error) {
	switch name {
	case FieldFirstName:
		return r.FirstName, nil
	case FieldLastName:
		return r.LastName, nil
	case FieldEmployeeCode:
		return r.EmployeeCode, nil
	case FieldContact:
		return r.Contact, nil
	case FieldDateOfBirth:
		return r.DateOfBirth, nil
	case FieldAddress:
		return r.Address, nil
	}
	return "", employeeformerrors.ErrUnknownField
}

// With returns a copy of r with one field replaced.
func (r Record) With(name, value string) (Record, error) {
	switch name {
	case FieldFirstName:
		r.FirstName = value
	case FieldLastName:
		r.LastName = value
	case FieldEmployeeCode:
		r.EmployeeCode = value
	case FieldContact:
		r.Contact = value
	case FieldDateOfBirth:
		r.DateOfBirth = value
	case FieldAddress:
		r.Address = value
	default:
		return r, employeeformerrors.ErrUnknownField
	}
	return r, nil
}

func (r Record) trimmed() Record {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.Contact = strings.TrimSpace(r.Contact)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	r.Address = strings.TrimSpace(r.Address)
	return r
}
