package pin

import "time"

// Credential is a short-lived secret that authorizes exactly one PIN action.
// ExpiresAt is informational; the dispatcher never caches a credential.
type Credential struct {
	Secret    string
	ExpiresAt time.Time
}
