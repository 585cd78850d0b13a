package pin

import (
	"errors"
	"fmt"
)

// Category is the caller-facing failure class of a PIN action. The set is
// closed: every failure, whatever its origin, is reported as one of these.
type Category int

const (
	UnknownError Category = iota
	EphemeralKeyError
	OneTimeCodeIncorrect
	OneTimeCodeExpired
	OneTimeCodeTooManyAttempts
)

var categoryNames = map[Category]string{
	UnknownError:               "unknown_error",
	EphemeralKeyError:          "ephemeral_key_error",
	OneTimeCodeIncorrect:       "one_time_code_incorrect",
	OneTimeCodeExpired:         "one_time_code_expired",
	OneTimeCodeTooManyAttempts: "one_time_code_too_many_attempts",
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Server codes carried by structured rejections of a verification challenge.
const (
	CodeExpired         = "expired"
	CodeIncorrectCode   = "incorrect_code"
	CodeTooManyAttempts = "too_many_attempts"
)

// Caller-facing messages.
const (
	MsgOneTimeCodeExpired   = "The one-time code has expired"
	MsgOneTimeCodeIncorrect = "The one-time code was incorrect"
	MsgTooManyAttempts      = "The verification challenge was attempted too many times"
	MsgUnknown              = "An error occurred retrieving the PIN"
)

// ActionError is a classified failure handed to exactly one caller handler.
type ActionError struct {
	Category Category
	Message  string
	Cause    error
}

func (e *ActionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *ActionError) Unwrap() error {
	return e.Cause
}

// RejectionError is a structured request rejection from the issuing API: the
// request reached the server and was refused with a machine-readable code.
type RejectionError struct {
	StatusCode int
	Code       string
	Message    string
	Param      string
}

func (e *RejectionError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("request rejected (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request rejected (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
}

// AsRejection reports whether err carries a structured rejection.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
