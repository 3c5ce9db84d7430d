package forms

import (
	"strings"

	"promoadmin/internal/structs"
)

// ValidateLogin only checks presence; the backend judges the credentials.
func ValidateLogin(d structs.LoginDraft) Errors {
	errs := Errors{}

	d.Username = strings.TrimSpace(d.Username)
	d.Password = strings.TrimSpace(d.Password)

	collect(errs, validate.Struct(d))

	return errs
}
