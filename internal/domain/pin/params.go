package pin

import (
	"strings"

	"github.com/jsamuelsen11/issuing-pin-service/internal/domain"
)

// Params is the parameter set of one PIN action. It is a closed union: only
// RetrieveParams and UpdateParams implement it, so a switch on the concrete
// type is exhaustive.
type Params interface {
	Kind() Kind
	Validate() error
	verification() Verification
}

// Verification identifies the card and the out-of-band challenge the
// cardholder answered. Every PIN action carries one.
type Verification struct {
	CardID         string
	VerificationID string
	OneTimeCode    string
}

// RetrieveParams are the parameters of a PIN retrieval.
type RetrieveParams struct {
	Verification
}

// UpdateParams are the parameters of a PIN change.
type UpdateParams struct {
	Verification
	NewPIN string
}

// Kind implements Params.
func (RetrieveParams) Kind() Kind { return KindRetrieve }

// Kind implements Params.
func (UpdateParams) Kind() Kind { return KindUpdate }

func (p RetrieveParams) verification() Verification { return p.Verification }
func (p UpdateParams) verification() Verification   { return p.Verification }

// Validate checks that every required value is present. Format and legality
// are the remote service's call; they come back as rejections.
func (p RetrieveParams) Validate() error {
	return toValidationError(p.Verification.missing())
}

// Validate checks that every required value, including the new PIN, is present.
func (p UpdateParams) Validate() error {
	fields := p.Verification.missing()
	if strings.TrimSpace(p.NewPIN) == "" {
		fields["new_pin"] = domain.MsgRequired
	}
	return toValidationError(fields)
}

// CardOf returns the card a set of parameters targets.
func CardOf(p Params) string {
	return p.verification().CardID
}

func (v Verification) missing() map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(v.CardID) == "" {
		fields["card_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(v.VerificationID) == "" {
		fields["verification_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(v.OneTimeCode) == "" {
		fields["one_time_code"] = domain.MsgRequired
	}
	return fields
}

func toValidationError(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
