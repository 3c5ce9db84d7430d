package forms

import (
	"context"
	"errors"

	"promoadmin/internal/structs"
)

// FixErrorsMessage blocks a submit attempt while field errors remain.
const FixErrorsMessage = "Please fix errors before submitting."

// Outcome is what a form submission settles into. Field errors keep the
// form in its editing state; a message plus redirect means success.
type Outcome struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Errors   Errors `json:"errors,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// Submit is the single validated-submit workflow shared by the user,
// promotion and register forms. An invalid draft never reaches the
// network. Backend errors become a single message derived from the
// response body, field-level server errors joined on; anything else
// falls back to a generic notice so the user can correct and resubmit.
func Submit(ctx context.Context, errs Errors, send func(context.Context) error, successMsg, redirect string) Outcome {
	if len(errs) > 0 {
		return Outcome{Message: FixErrorsMessage, Errors: errs}
	}

	if err := send(ctx); err != nil {
		var apiErr *structs.APIError
		if errors.As(err, &apiErr) {
			return Outcome{Message: apiErr.UserMessage()}
		}
		return Outcome{Message: structs.GenericSubmitError}
	}

	return Outcome{Success: true, Message: successMsg, Redirect: redirect}
}
