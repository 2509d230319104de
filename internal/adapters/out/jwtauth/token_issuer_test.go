package jwtauth_test

import (
	"testing"
	"time"

	"inatpos/internal/adapters/out/jwtauth"
	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACTokenIssuer(t *testing.T) {
	secret := []byte("test-secret")
	principal := staff.Principal{
		ID:          kernel.NewUUID(),
		Role:        staff.RoleWaitress,
		DisplayName: "Sara Tesfaye",
	}

	t.Run("should round-trip a principal", func(t *testing.T) {
		issuer := jwtauth.NewHMACTokenIssuer(secret, time.Hour)

		token, err := issuer.Issue(principal)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		verified, err := issuer.Verify(token)
		require.NoError(t, err)

		assert.Equal(t, principal.ID, verified.ID)
		assert.Equal(t, staff.RoleWaitress, verified.Role)
		assert.Equal(t, "Sara Tesfaye", verified.DisplayName)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		issuer := jwtauth.NewHMACTokenIssuer(secret, -time.Minute)

		token, err := issuer.Issue(principal)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, jwtauth.ErrInvalidToken)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		issuer := jwtauth.NewHMACTokenIssuer(secret, time.Hour)
		other := jwtauth.NewHMACTokenIssuer([]byte("other-secret"), time.Hour)

		token, err := other.Issue(principal)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, jwtauth.ErrInvalidToken)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		issuer := jwtauth.NewHMACTokenIssuer(secret, time.Hour)

		_, err := issuer.Verify("not.a.token")
		assert.ErrorIs(t, err, jwtauth.ErrInvalidToken)
	})
}
