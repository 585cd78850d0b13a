package dispatch

import "github.com/jsamuelsen11/issuing-pin-service/internal/domain/pin"

// classify maps an executor failure onto the caller-facing taxonomy.
//
// A structured rejection is run through three code checks in a fixed order.
// The checks are independent and the last one has an else branch, so
// "expired" and "incorrect_code" produce a trailing unknown outcome as well.
// Callers deliver only the first outcome.
func classify(err error) []*pin.ActionError {
	rej, ok := pin.AsRejection(err)
	if !ok {
		return []*pin.ActionError{unknownError(err)}
	}

	var outcomes []*pin.ActionError
	if rej.Code == pin.CodeExpired {
		outcomes = append(outcomes, &pin.ActionError{
			Category: pin.OneTimeCodeExpired,
			Message:  pin.MsgOneTimeCodeExpired,
		})
	}
	if rej.Code == pin.CodeIncorrectCode {
		outcomes = append(outcomes, &pin.ActionError{
			Category: pin.OneTimeCodeIncorrect,
			Message:  pin.MsgOneTimeCodeIncorrect,
		})
	}
	if rej.Code == pin.CodeTooManyAttempts {
		outcomes = append(outcomes, &pin.ActionError{
			Category: pin.OneTimeCodeTooManyAttempts,
			Message:  pin.MsgTooManyAttempts,
		})
	} else {
		outcomes = append(outcomes, unknownError(err))
	}
	return outcomes
}

func unknownError(cause error) *pin.ActionError {
	return &pin.ActionError{
		Category: pin.UnknownError,
		Message:  pin.MsgUnknown,
		Cause:    cause,
	}
}
