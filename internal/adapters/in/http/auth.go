package http

import (
	"net/http"

	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/core/domain/model/staff"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

type principalResponse struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}

type loginResponse struct {
	Token string            `json:"token"`
	Staff principalResponse `json:"staff"`
}

func toPrincipalResponse(principal staff.Principal) principalResponse {
	return principalResponse{
		ID:          principal.ID.String(),
		Role:        principal.Role.String(),
		DisplayName: principal.DisplayName,
	}
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.PIN)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		Staff: toPrincipalResponse(result.Principal),
	})
}

// Me handles GET /api/auth/me.
func (s *Server) Me(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	return ctx.JSON(http.StatusOK, toPrincipalResponse(principal))
}
