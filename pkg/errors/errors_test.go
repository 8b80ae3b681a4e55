package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidColor, "invalid hex color: %s", "#zz")
	want := "INVALID_COLOR: invalid hex color: #zz"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeLedgerUnavailable, cause, "redis ledger at %s", "localhost:6379")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if err.Error() != "LEDGER_UNAVAILABLE: redis ledger at localhost:6379: connection refused" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidBrand, "bad brand")

	if !Is(err, ErrCodeInvalidBrand) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInvalidColor) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInvalidBrand) {
		t.Error("Is should not match plain errors")
	}

	// Code matching unwraps through fmt.Errorf chains.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeInvalidBrand) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInternal, "boom")); got != ErrCodeInternal {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInternal)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidOptions, "variations must be positive")
	if got := UserMessage(err); got != "variations must be positive" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain")); got != "plain" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
