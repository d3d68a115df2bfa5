package domain

// Financial dashboard payloads served by /admin/dashboard/financial/*.

type FinancialSummary struct {
	TotalSales    float64 `json:"total_sales"`
	TotalOrders   int     `json:"total_orders"`
	AverageTicket float64 `json:"average_ticket"`
	TotalDiscount float64 `json:"total_discount"`
}

type SalesPoint struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
}

// StatusDistribution maps an order status to its count of orders.
type StatusDistribution map[string]int

type CouponPerformance struct {
	Code          string  `json:"code"`
	TimesUsed     int     `json:"times_used"`
	TotalDiscount float64 `json:"total_discount"`
}
