package forms

import (
	"context"
	"errors"
	"testing"

	"promoadmin/internal/structs"
)

func TestSubmit_InvalidNeverSends(t *testing.T) {
	sent := false
	errs := Errors{"name": "Name is required"}

	out := Submit(context.Background(), errs, func(ctx context.Context) error {
		sent = true
		return nil
	}, "done", "/next")

	if sent {
		t.Fatal("send must not run when validation failed")
	}
	if out.Success {
		t.Fatal("expected failure outcome")
	}
	if out.Message != FixErrorsMessage {
		t.Fatalf("expected %q, got %q", FixErrorsMessage, out.Message)
	}
	if out.Errors["name"] != "Name is required" {
		t.Fatalf("field errors must be carried through, got %v", out.Errors)
	}
}

func TestSubmit_Success(t *testing.T) {
	out := Submit(context.Background(), nil, func(ctx context.Context) error {
		return nil
	}, "User created successfully!", "/admins/dashboard")

	if !out.Success {
		t.Fatalf("expected success, got %v", out)
	}
	if out.Message != "User created successfully!" {
		t.Fatalf("unexpected message %q", out.Message)
	}
	if out.Redirect != "/admins/dashboard" {
		t.Fatalf("unexpected redirect %q", out.Redirect)
	}
}

func TestSubmit_APIErrorMessage(t *testing.T) {
	apiErr := &structs.APIError{
		Status:  400,
		Message: "Username already exists",
		Fields:  map[string]string{"username": "taken"},
	}

	out := Submit(context.Background(), nil, func(ctx context.Context) error {
		return apiErr
	}, "done", "/next")

	if out.Success {
		t.Fatal("expected failure outcome")
	}
	if out.Message != apiErr.UserMessage() {
		t.Fatalf("expected %q, got %q", apiErr.UserMessage(), out.Message)
	}
}

func TestSubmit_GenericFailure(t *testing.T) {
	out := Submit(context.Background(), Errors{}, func(ctx context.Context) error {
		return errors.New("dial tcp: connection refused")
	}, "done", "/next")

	if out.Success {
		t.Fatal("expected failure outcome")
	}
	if out.Message != structs.GenericSubmitError {
		t.Fatalf("transport errors must not leak, got %q", out.Message)
	}
}

func TestValidateLogin(t *testing.T) {
	if errs := ValidateLogin(structs.LoginDraft{Username: "jane", Password: "secret1"}); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs := ValidateLogin(structs.LoginDraft{Username: " ", Password: ""})
	if errs["username"] != "Username is required" || errs["password"] != "Password is required" {
		t.Fatalf("expected both required errors, got %v", errs)
	}
}
