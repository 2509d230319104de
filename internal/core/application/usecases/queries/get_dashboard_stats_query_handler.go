package queries

import (
	"context"

	"gorm.io/gorm"

	"inatpos/internal/core/domain/model/order"
)

// GetDashboardStatsQueryHandler computes the owner dashboard with plain SQL
// aggregations over completed orders.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for the owner dashboard.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle computes the dashboard read model. All figures cover completed
// orders only; active orders do not count until they are paid.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	completed := order.OverallStatusCompleted

	var totals struct {
		TotalSales      float64
		OrderCount      int64
		TodayOrderCount int64
	}
	err := db.Raw(`
		SELECT
			COALESCE(SUM(total), 0)                                              AS total_sales,
			COUNT(*)                                                             AS order_count,
			COUNT(*) FILTER (WHERE completed_at::date = CURRENT_DATE)            AS today_order_count
		FROM orders
		WHERE overall_status = ?
	`, completed).Scan(&totals).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	salesByWaitress := make([]WaitressSalesResponse, 0)
	err = db.Raw(`
		SELECT
			waitress_name,
			COUNT(*)    AS order_count,
			SUM(total)  AS total_sales
		FROM orders
		WHERE overall_status = ?
		GROUP BY waitress_name
		ORDER BY total_sales DESC
	`, completed).Scan(&salesByWaitress).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	topItems := make([]TopItemResponse, 0)
	err = db.Raw(`
		SELECT
			l.name_en,
			l.name_am,
			SUM(l.quantity) AS quantity
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		WHERE o.overall_status = ?
		GROUP BY l.name_en, l.name_am
		ORDER BY quantity DESC
		LIMIT 10
	`, completed).Scan(&topItems).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	recentOrders := make([]RecentOrderResponse, 0)
	err = db.Raw(`
		SELECT
			number,
			total,
			waitress_name,
			completed_at
		FROM orders
		WHERE overall_status = ?
		ORDER BY completed_at DESC
		LIMIT 10
	`, completed).Scan(&recentOrders).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	response := GetDashboardStatsQueryResponse{
		TotalSales:      totals.TotalSales,
		OrderCount:      totals.OrderCount,
		TodayOrderCount: totals.TodayOrderCount,
		SalesByWaitress: salesByWaitress,
		TopItems:        topItems,
		RecentOrders:    recentOrders,
	}
	if totals.OrderCount > 0 {
		response.AverageOrderValue = totals.TotalSales / float64(totals.OrderCount)
	}

	return response, nil
}
