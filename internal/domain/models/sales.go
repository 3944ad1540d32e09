package models

// SalesFigures carries the historical sales numbers for one
// (party, store, city, SKU) tuple. A tuple with no Sales Data row is
// represented by the zero value; absence is business-normal for a new
// store/SKU combination.
type SalesFigures struct {
	LastMonthNetSales    int `json:"last_month_net_sales"`
	LastMonthRTV         int `json:"last_month_rtv"`
	RunningMonthNetSales int `json:"running_month_net_sales"`
	RunningMonthRTV      int `json:"running_month_rtv"`
	Last2MonthAvgNet     int `json:"last_2_month_avg_net_sales"`
}
