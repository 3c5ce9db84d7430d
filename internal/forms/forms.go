// Package forms holds the pure draft validators and the shared
// validated-submit workflow behind the user, promotion and register forms.
package forms

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name to a human-readable message. A draft is valid
// iff the map is empty.
type Errors map[string]string

var (
	emailRe = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields under their wire names so errors line up with inputs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone_format", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	return v
}

// collect folds validator output into the field->message map. Only the
// first failing rule per field is reported.
func collect(errs Errors, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return
	}

	for _, fe := range ve {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = fieldError(fe)
	}
}

var fieldLabels = map[string]string{
	"firstName":   "First name",
	"lastName":    "Last name",
	"email":       "Email",
	"phoneNumber": "Phone number",
	"username":    "Username",
	"password":    "Password",
	"name":        "Name",
	"startDate":   "Start date",
	"endDate":     "End date",
}

func fieldError(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email_format":
		return "Email should be valid"
	case "phone_format":
		return "Phone number should be valid"
	case "min", "max":
		switch fe.Field() {
		case "username":
			return "Username must be between 3 and 50 characters"
		case "name":
			return "Name must be between 3 and 100 characters"
		}
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, fe.Tag())
	}
}
