package models

// Recommendation is the read-only output of the reorder policy engine,
// recomputed whenever any of its inputs change.
type Recommendation struct {
	Variant         string  `json:"variant"`
	VisitFrequency  int     `json:"visit_frequency"`
	ReorderDays     int     `json:"reorder_days"`
	AvgDailyOfftake float64 `json:"avg_daily_offtake"`
	ReferenceDemand int     `json:"reference_demand"`
	SuggestedQty    int     `json:"suggested_qty"`
}

// RecommendationView is the recommendation plus the context it was derived
// from, as exposed to the UI layer.
type RecommendationView struct {
	Recommendation
	City      string       `json:"city"`
	VisitDays string       `json:"visit_days"`
	Figures   SalesFigures `json:"sales_figures"`
}
