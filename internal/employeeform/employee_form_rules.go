package employeeform

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Rule checks one field value. It returns ok=false with a message when the
// value is rejected. Rules are pure and safe for concurrent use.
type Rule func(value string) (message string, ok bool)

var (
	digitsPattern     = regexp.MustCompile(`^[0-9]+$`)
	alphaSpacePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

	validate = newValidate()
)

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpacePattern.MatchString(fl.Field().String())
	})
	return v
}

// tagRule runs validator tags against a single value. messages is keyed by
// the failing tag; the "" entry is used for any tag without its own message.
func tagRule(tags string, messages map[string]string) Rule {
	return func(value string) (string, bool) {
		err := validate.Var(value, tags)
		if err == nil {
			return "", true
		}

		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			if msg, ok := messages[errs[0].Tag()]; ok {
				return msg, false
			}
		}
		return messages[""], false
	}
}

func nameRule(label string) Rule {
	return tagRule("required,min=2,max=20,alpha", map[string]string{
		"required": label + " is required",
		"min":      label + " must be between 2 and 20 characters",
		"max":      label + " must be between 2 and 20 characters",
		"":         label + " should contain only letters",
	})
}

var (
	FirstNameRule = nameRule("First name")
	LastNameRule  = nameRule("Last name")

	EmployeeCodeRule = tagRule("required,len=4,digits", map[string]string{
		"required": "Employee code is required",
		"":         "Employee code should be a 4-digit number",
	})

	ContactRule = tagRule("required,len=10,digits", map[string]string{
		"required": "Contact number is required",
		"":         "Contact number should be a 10-digit number",
	})

	// DateOfBirthRule only checks presence; no range or age limits apply.
	DateOfBirthRule = tagRule("required", map[string]string{
		"": "Date of birth should not be empty",
	})

	StrictAddressRule = tagRule("required,min=2,max=10,alphaspace", map[string]string{
		"required": "Address should not be empty",
		"":         "Address must be between 2 and 10 characters and contain only letters",
	})

	LenientAddressRule = tagRule("required", map[string]string{
		"": "Address should not be empty",
	})
)
