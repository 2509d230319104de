package http

import (
	"net/http"
	"strings"

	"inatpos/internal/core/domain/model/staff"

	"github.com/labstack/echo/v4"
)

// principalKey is the echo context key the authenticated principal is
// stored under.
const principalKey = "principal"

// Authenticate verifies the bearer token and stores the principal on the
// request context.
func (s *Server) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return errorJSON(ctx, http.StatusUnauthorized, "Missing bearer token")
		}

		principal, err := s.tokens.Verify(token)
		if err != nil {
			return errorJSON(ctx, http.StatusUnauthorized, "Invalid or expired token")
		}

		ctx.Set(principalKey, principal)
		return next(ctx)
	}
}

// RequireOrderTaking allows roles that may create orders and settle
// payments.
func (s *Server) RequireOrderTaking(next echo.HandlerFunc) echo.HandlerFunc {
	return requireCapability(next, staff.Role.CanCreateOrders)
}

// RequireStationDisplay allows roles that may move station statuses.
func (s *Server) RequireStationDisplay(next echo.HandlerFunc) echo.HandlerFunc {
	return requireCapability(next, staff.Role.CanUpdateStationStatus)
}

// RequireManagement allows the owner only.
func (s *Server) RequireManagement(next echo.HandlerFunc) echo.HandlerFunc {
	return requireCapability(next, staff.Role.CanManageRestaurant)
}

func requireCapability(next echo.HandlerFunc, allowed func(staff.Role) bool) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		principal, ok := currentPrincipal(ctx)
		if !ok {
			return errorJSON(ctx, http.StatusUnauthorized, "Missing bearer token")
		}
		if !allowed(principal.Role) {
			return errorJSON(ctx, http.StatusForbidden, "Role may not perform this operation")
		}
		return next(ctx)
	}
}

func currentPrincipal(ctx echo.Context) (staff.Principal, bool) {
	principal, ok := ctx.Get(principalKey).(staff.Principal)
	return principal, ok
}
