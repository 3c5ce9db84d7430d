package forms

import (
	"strings"

	"promoadmin/internal/structs"
)

// ValidateUser checks a user draft for both the create and edit forms,
// and for self-registration. Password is only enforced on create, or on
// edit when a new password was typed; a blank password on edit means "no
// change".
func ValidateUser(d structs.UserDraft) Errors {
	errs := Errors{}

	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.PhoneNumber = strings.TrimSpace(d.PhoneNumber)
	d.Username = strings.TrimSpace(d.Username)

	collect(errs, validate.Struct(d))

	if !d.Existing || d.Password != "" {
		if strings.TrimSpace(d.Password) == "" {
			errs["password"] = "Password is required"
		} else if len(d.Password) < 6 {
			errs["password"] = "Password must be at least 6 characters"
		}
	}

	return errs
}
