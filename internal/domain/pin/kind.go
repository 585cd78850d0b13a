// Package pin models the sensitive card PIN actions (retrieve and update),
// the ephemeral credential that authorizes them, and the closed error
// taxonomy that callers receive when an action fails.
package pin

// Kind identifies which PIN action a request performs. It doubles as the tag
// attached to the credential request so the action can be recovered when the
// credential resolves.
type Kind string

const (
	KindRetrieve Kind = "pin_retrieve"
	KindUpdate   Kind = "pin_update"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindRetrieve, KindUpdate:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
