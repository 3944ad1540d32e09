package models

// LoginRequest carries the credential pair checked against the Config table.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the employee name bound to the matched credential row.
type LoginResponse struct {
	Employee string `json:"employee"`
}

// RecommendRequest asks for a suggested reorder quantity for one SKU.
type RecommendRequest struct {
	Employee string `json:"employee" binding:"required"`
	Party    string `json:"party" binding:"required"`
	Store    string `json:"store" binding:"required"`
	SKU      string `json:"sku" binding:"required"`
	SOH      int    `json:"soh"`
	Variant  string `json:"variant"`
}

// OrderLine is one SKU line within a submission.
type OrderLine struct {
	Category string `json:"category" binding:"required"`
	SKU      string `json:"sku" binding:"required"`
	Qty      int    `json:"qty"`
	SOH      int    `json:"soh"`
	Remarks  string `json:"remarks"`
}

// OrderRequest is a multi-line order submission for one store visit.
type OrderRequest struct {
	Employee  string      `json:"employee" binding:"required"`
	Party     string      `json:"party" binding:"required"`
	Store     string      `json:"store" binding:"required"`
	OrderDate string      `json:"order_date"`
	Variant   string      `json:"variant"`
	Lines     []OrderLine `json:"lines" binding:"required"`
}

// LineResult reports the outcome of one submitted line. Lines are processed
// independently; a failure here never rolls back sibling lines.
type LineResult struct {
	SKU             string `json:"sku"`
	Flag            Flag   `json:"flag,omitempty"`
	ReferenceDemand int    `json:"reference_demand"`
	SuggestedQty    int    `json:"suggested_qty"`
	Persisted       bool   `json:"persisted"`
	Alerted         bool   `json:"alerted"`
	Error           string `json:"error,omitempty"`
}

// OrderResponse aggregates per-line results for a submission.
type OrderResponse struct {
	Results []LineResult `json:"results"`
}
