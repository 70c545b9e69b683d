package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a json field name into a label:
// employeeCode -> Employee Code, date_of_birth -> Date Of Birth.
func formatFieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case i > 0 && r >= 'A' && r <= 'Z' && s[i-1] >= 'a' && s[i-1] <= 'z':
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(b.String())
}

// MapValidationError converts gin binding failures into an AppError whose
// message names the first offending field and whose details list all of them.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		details := make(map[string]string, len(errs))
		for _, fe := range errs {
			label := formatFieldName(fe.Field())
			if fe.Tag() == "required" {
				details[fe.Field()] = RequiredField(label).Message
			} else {
				details[fe.Field()] = InvalidField(label).Message
			}
		}

		e := errs[0]
		label := formatFieldName(e.Field())
		if e.Tag() == "required" {
			return RequiredField(label).WithDetails(details)
		}
		return InvalidField(label).WithDetails(details)
	}

	return ErrInvalidInput.WithDetails(err.Error())
}
