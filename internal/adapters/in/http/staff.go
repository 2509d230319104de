package http

import (
	"net/http"

	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/core/application/usecases/queries"
	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/staff"

	"github.com/labstack/echo/v4"
)

type staffRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	PIN      string `json:"pin"`
	Role     string `json:"role"`
}

func toStaffResponse(member *staff.Staff) queries.GetStaffQueryResponse {
	return queries.GetStaffQueryResponse{
		ID:        member.ID(),
		FullName:  member.FullName(),
		Username:  member.Username(),
		Role:      member.Role().String(),
		CreatedAt: member.CreatedAt(),
	}
}

// GetStaff handles GET /api/staff.
func (s *Server) GetStaff(ctx echo.Context) error {
	members, err := s.getStaffHandler.Handle(ctx.Request().Context(), queries.NewGetStaffQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, members)
}

// CreateStaff handles POST /api/staff.
func (s *Server) CreateStaff(ctx echo.Context) error {
	var req staffRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateStaffCommand(
		kernel.NewUUID(),
		req.FullName,
		req.Username,
		req.PIN,
		staff.Role(req.Role),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createStaffHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toStaffResponse(created))
}

// UpdateStaff handles PUT /api/staff/:id. An empty pin keeps the stored
// one.
func (s *Server) UpdateStaff(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid staff id")
	}

	var req staffRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateStaffCommand(
		staffID,
		req.FullName,
		req.Username,
		req.PIN,
		staff.Role(req.Role),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateStaffHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStaffResponse(updated))
}

// DeleteStaff handles DELETE /api/staff/:id.
func (s *Server) DeleteStaff(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid staff id")
	}

	cmd, err := commands.NewDeleteStaffCommand(staffID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
