package ports

import (
	"inatpos/internal/core/domain/model/staff"
)

// TokenIssuer signs and verifies the bearer tokens carried by every
// authenticated request.
type TokenIssuer interface {
	// Issue signs a token for the principal.
	Issue(principal staff.Principal) (string, error)

	// Verify parses a token and returns the principal it was issued for.
	// An expired, malformed or tampered token produces an error.
	Verify(token string) (staff.Principal, error)
}
