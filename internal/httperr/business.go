package httperr

import "errors"

// BusinessError is a rule violation the caller can fix (400).
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

// NotFoundError marks a referenced entity that does not exist (404).
type NotFoundError struct {
	Code string
}

func (e NotFoundError) Error() string {
	return e.Code
}

func ErrNotFound(code string) error {
	return NotFoundError{Code: code}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ForbiddenError marks a role or ownership mismatch (403).
type ForbiddenError struct {
	Code string
}

func (e ForbiddenError) Error() string {
	return e.Code
}

func ErrForbidden(code string) error {
	return ForbiddenError{Code: code}
}

func IsForbidden(err error) bool {
	var fe ForbiddenError
	return errors.As(err, &fe)
}

// UnauthorizedError marks failed authentication (401).
type UnauthorizedError struct {
	Code string
}

func (e UnauthorizedError) Error() string {
	return e.Code
}

func ErrUnauthorized(code string) error {
	return UnauthorizedError{Code: code}
}
