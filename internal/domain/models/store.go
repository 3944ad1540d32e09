package models

// StoreRecord identifies one (employee, party, store) triple from the Store
// Master table. Immutable reference data.
type StoreRecord struct {
	EmployeeName   string `json:"employee_name"`
	Party          string `json:"party"`
	StoreName      string `json:"store_name"`
	City           string `json:"city"`
	VisitFrequency int    `json:"visit_frequency"`
	VisitDays      string `json:"visit_days"`
}

// SkuRecord identifies a SKU within a category from the SKU Master table.
type SkuRecord struct {
	Category string `json:"category"`
	SKU      string `json:"sku"`
}
