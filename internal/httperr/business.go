package httperr

import "errors"

// Business error codes used across use cases.
const (
	CodeAuthFailed       = "invalid_credentials"
	CodeAccountNotFound  = "account_not_found"
	CodeAlreadyClockedIn = "already_clocked_in"
	CodeNotClockedIn     = "not_clocked_in"
	CodeNoActiveSession  = "no_active_session"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code when err is a BusinessError.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
