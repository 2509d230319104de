package commands

import (
	"context"
	"errors"

	"inatpos/internal/core/domain/model/staff"
	"inatpos/internal/core/ports"
	"inatpos/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for both an unknown username and a
// wrong PIN, so a caller cannot probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid username or PIN")

// LoginResult carries the signed token and the principal it represents.
type LoginResult struct {
	Token     string
	Principal staff.Principal
}

// LoginCommandHandler verifies a staff member's credentials and issues a
// bearer token.
type LoginCommandHandler struct {
	uowFactory StaffUoWFactory
	tokens     ports.TokenIssuer
}

// NewLoginCommandHandler creates a handler for sign-in operations.
func NewLoginCommandHandler(uowFactory StaffUoWFactory, tokens ports.TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
	}
}

// Handle verifies the credentials and returns a signed token on success.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	member, err := uow.StaffRepository().GetByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !member.VerifyPIN(cmd.PIN()) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := h.tokens.Issue(member.Principal())
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, Principal: member.Principal()}, nil
}
