package issuing

import (
	"errors"
	"net/url"
)

const objectPin = "issuing.pin"

var errMissingPin = errors.New("issuing.pin response has no pin")

// PinPath returns the PIN resource path of a card.
func PinPath(cardID string) string {
	return "/v1/issuing/cards/" + url.PathEscape(cardID) + "/pin"
}

// RetrieveQuery builds the query string of a PIN retrieval.
func RetrieveQuery(verificationID, oneTimeCode string) url.Values {
	v := url.Values{}
	v.Set("verification[id]", verificationID)
	v.Set("verification[one_time_code]", oneTimeCode)
	return v
}

// UpdateForm builds the form body of a PIN change.
func UpdateForm(newPIN, verificationID, oneTimeCode string) url.Values {
	v := RetrieveQuery(verificationID, oneTimeCode)
	v.Set("pin", newPIN)
	return v
}

// ToPIN extracts the PIN from a retrieval response. An empty object type is
// tolerated; any other type, or a missing PIN, is a decoding failure.
func ToPIN(dto PinDTO) (string, error) {
	if dto.Object != "" && dto.Object != objectPin {
		return "", errors.New("unexpected object type " + dto.Object)
	}
	if dto.Pin == "" {
		return "", errMissingPin
	}
	return dto.Pin, nil
}
