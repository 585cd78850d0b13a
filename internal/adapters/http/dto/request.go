package dto

import "github.com/jsamuelsen11/issuing-pin-service/internal/domain/pin"

// RetrievePinRequest represents the JSON body of a PIN retrieval. The card
// comes from the path.
type RetrievePinRequest struct {
	VerificationID string `json:"verification_id"`
	OneTimeCode    string `json:"one_time_code"`
}

// ToParams converts the request into retrieval parameters for cardID.
// Missing values are reported by the parameters' own validation.
func (r *RetrievePinRequest) ToParams(cardID string) pin.RetrieveParams {
	return pin.RetrieveParams{
		Verification: pin.Verification{
			CardID:         cardID,
			VerificationID: r.VerificationID,
			OneTimeCode:    r.OneTimeCode,
		},
	}
}

// UpdatePinRequest represents the JSON body of a PIN change.
type UpdatePinRequest struct {
	NewPIN         string `json:"new_pin"`
	VerificationID string `json:"verification_id"`
	OneTimeCode    string `json:"one_time_code"`
}

// ToParams converts the request into update parameters for cardID.
func (r *UpdatePinRequest) ToParams(cardID string) pin.UpdateParams {
	return pin.UpdateParams{
		Verification: pin.Verification{
			CardID:         cardID,
			VerificationID: r.VerificationID,
			OneTimeCode:    r.OneTimeCode,
		},
		NewPIN: r.NewPIN,
	}
}
