package http

import (
	"net/http"

	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type resetDashboardResponse struct {
	Deleted int64 `json:"deleted"`
}

// GetDashboardStats handles GET /api/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// ResetDashboard handles POST /api/dashboard/reset. Completed orders are
// purged; active orders are untouched.
func (s *Server) ResetDashboard(ctx echo.Context) error {
	deleted, err := s.resetDashboardHandler.Handle(ctx.Request().Context(), commands.NewResetDashboardCommand())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resetDashboardResponse{Deleted: deleted})
}
