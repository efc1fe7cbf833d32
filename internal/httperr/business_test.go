package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestBusinessCode(t *testing.T) {
	err := ErrBusiness(CodeAlreadyClockedIn)

	code, ok := BusinessCode(err)
	if !ok || code != CodeAlreadyClockedIn {
		t.Errorf("BusinessCode = %q, %v", code, ok)
	}

	wrapped := fmt.Errorf("clock in: %w", err)
	code, ok = BusinessCode(wrapped)
	if !ok || code != CodeAlreadyClockedIn {
		t.Errorf("BusinessCode of wrapped = %q, %v", code, ok)
	}

	if code, ok := BusinessCode(errors.New("plain")); ok || code != "" {
		t.Errorf("BusinessCode of plain error = %q, %v", code, ok)
	}
}

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness(CodeNotClockedIn)

	if !IsBusiness(err, CodeNotClockedIn) {
		t.Error("IsBusiness missed a matching code")
	}
	if IsBusiness(err, CodeAlreadyClockedIn) {
		t.Error("IsBusiness matched the wrong code")
	}
	if IsBusiness(errors.New("plain"), CodeNotClockedIn) {
		t.Error("IsBusiness matched a plain error")
	}
}
