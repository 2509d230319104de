package queries

import (
	"errors"
	"time"

	"inatpos/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery computes the owner dashboard: sales figures over
// all completed orders since the last reset.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the owner dashboard.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// WaitressSalesResponse is one waitress's completed-order tally.
type WaitressSalesResponse struct {
	WaitressName string  `json:"waitressName"`
	OrderCount   int64   `json:"orderCount"`
	TotalSales   float64 `json:"totalSales"`
}

// TopItemResponse is one menu item's sold-quantity tally.
type TopItemResponse struct {
	NameEn   string `json:"nameEn"`
	NameAm   string `json:"nameAm"`
	Quantity int64  `json:"quantity"`
}

// RecentOrderResponse is one recently completed order.
type RecentOrderResponse struct {
	Number       string    `json:"orderNumber"`
	Total        float64   `json:"total"`
	WaitressName string    `json:"waitressName"`
	CompletedAt  time.Time `json:"completedAt"`
}

// GetDashboardStatsQueryResponse is the owner dashboard read model.
type GetDashboardStatsQueryResponse struct {
	TotalSales        float64                 `json:"totalSales"`
	OrderCount        int64                   `json:"orderCount"`
	TodayOrderCount   int64                   `json:"todayOrderCount"`
	AverageOrderValue float64                 `json:"averageOrderValue"`
	SalesByWaitress   []WaitressSalesResponse `json:"salesByWaitress"`
	TopItems          []TopItemResponse       `json:"topItems"`
	RecentOrders      []RecentOrderResponse   `json:"recentOrders"`
}
