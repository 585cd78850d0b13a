package pin

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/issuing-pin-service/internal/domain"
)

// requireValidationField asserts err wraps domain.ErrValidation and the
// resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func validVerification() Verification {
	return Verification{CardID: "ic_1", VerificationID: "v1", OneTimeCode: "123456"}
}

func TestRetrieveParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*RetrieveParams)
		wantErr string
	}{
		{name: "valid", mutate: func(*RetrieveParams) {}},
		{name: "missing card", mutate: func(p *RetrieveParams) { p.CardID = "" }, wantErr: "card_id"},
		{name: "blank verification", mutate: func(p *RetrieveParams) { p.VerificationID = "  " }, wantErr: "verification_id"},
		{name: "missing code", mutate: func(p *RetrieveParams) { p.OneTimeCode = "" }, wantErr: "one_time_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := RetrieveParams{Verification: validVerification()}
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantErr)
		})
	}
}

func TestUpdateParams_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		p := UpdateParams{Verification: validVerification(), NewPIN: "1234"}
		if err := p.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
	})

	t.Run("missing new pin", func(t *testing.T) {
		t.Parallel()
		p := UpdateParams{Verification: validVerification()}
		requireValidationField(t, p.Validate(), "new_pin")
	})

	t.Run("format is not checked", func(t *testing.T) {
		t.Parallel()
		p := UpdateParams{Verification: validVerification(), NewPIN: "not-a-pin"}
		if err := p.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil (format is checked remotely)", err)
		}
	})

	t.Run("reports every missing field", func(t *testing.T) {
		t.Parallel()
		var verr *domain.ValidationError
		if !errors.As(UpdateParams{}.Validate(), &verr) {
			t.Fatal("errors.As(*ValidationError) = false")
		}
		if len(verr.Fields) != 4 {
			t.Errorf("len(Fields) = %d, want 4: %v", len(verr.Fields), verr.Fields)
		}
	})
}

func TestParams_KindAndCard(t *testing.T) {
	t.Parallel()

	var r Params = RetrieveParams{Verification: validVerification()}
	var u Params = UpdateParams{Verification: Verification{CardID: "ic_2"}, NewPIN: "0000"}

	if r.Kind() != KindRetrieve {
		t.Errorf("RetrieveParams.Kind() = %q, want %q", r.Kind(), KindRetrieve)
	}
	if u.Kind() != KindUpdate {
		t.Errorf("UpdateParams.Kind() = %q, want %q", u.Kind(), KindUpdate)
	}
	if got := CardOf(u); got != "ic_2" {
		t.Errorf("CardOf() = %q, want %q", got, "ic_2")
	}
}

func TestKind_IsValid(t *testing.T) {
	t.Parallel()

	if !KindRetrieve.IsValid() || !KindUpdate.IsValid() {
		t.Error("defined kinds should be valid")
	}
	if Kind("pin_delete").IsValid() {
		t.Error("Kind(\"pin_delete\").IsValid() = true, want false")
	}
}
