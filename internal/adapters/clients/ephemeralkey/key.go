// Package ephemeralkey obtains and caches the short-lived keys that
// authorize issuing card PIN actions.
//
// An [HTTPProvider] asks the integrator's backend to mint a key; the
// [Manager] parses it, reuses it while it is comfortably inside its
// lifetime, and resolves credential requests for the dispatcher.
package ephemeralkey

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/issuing-pin-service/internal/domain/pin"
)

// ErrParse is returned when a backend response is not a usable key.
var ErrParse = errors.New("invalid ephemeral key")

const objectEphemeralKey = "ephemeral_key"

// AssociatedObject names a resource the key is scoped to, typically the
// issuing card.
type AssociatedObject struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// EphemeralKey is a key minted by the integrator's backend.
type EphemeralKey struct {
	ID                string             `json:"id"`
	Object            string             `json:"object"`
	Secret            string             `json:"secret"`
	Created           int64              `json:"created"`
	Expires           int64              `json:"expires"`
	Livemode          bool               `json:"livemode"`
	AssociatedObjects []AssociatedObject `json:"associated_objects"`
}

// Parse decodes the raw JSON returned by a provider. The secret and the
// expiry are required.
func Parse(raw string) (*EphemeralKey, error) {
	var key EphemeralKey
	if err := json.Unmarshal([]byte(raw), &key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	switch {
	case key.Object != "" && key.Object != objectEphemeralKey:
		return nil, fmt.Errorf("%w: unexpected object %q", ErrParse, key.Object)
	case key.Secret == "":
		return nil, fmt.Errorf("%w: missing secret", ErrParse)
	case key.Expires <= 0:
		return nil, fmt.Errorf("%w: missing expires", ErrParse)
	}
	return &key, nil
}

// ExpiresAt returns the expiry as a time.
func (k *EphemeralKey) ExpiresAt() time.Time {
	return time.Unix(k.Expires, 0)
}

// Credential returns the key as the credential handed to PIN actions.
func (k *EphemeralKey) Credential() pin.Credential {
	return pin.Credential{Secret: k.Secret, ExpiresAt: k.ExpiresAt()}
}

// usableAt reports whether the key may still be handed out at now, leaving
// buffer before it expires.
func (k *EphemeralKey) usableAt(now time.Time, buffer time.Duration) bool {
	return now.Add(buffer).Before(k.ExpiresAt())
}
