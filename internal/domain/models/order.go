package models

// Flag classifies a submitted order line against its reference demand.
type Flag string

const (
	FlagOK          Flag = "OK"
	FlagExcessOrder Flag = "Excess Order"
)

// OrderRecord is one persisted ledger line. Append-only; records are never
// mutated or deleted by this system.
type OrderRecord struct {
	Timestamp            string `bson:"timestamp" json:"timestamp"`
	OrderDate            string `bson:"order_date" json:"order_date"`
	EmployeeName         string `bson:"employee_name" json:"employee_name"`
	Party                string `bson:"party" json:"party"`
	StoreName            string `bson:"store_name" json:"store_name"`
	City                 string `bson:"city" json:"city"`
	Category             string `bson:"category" json:"category"`
	SKU                  string `bson:"sku" json:"sku"`
	Qty                  int    `bson:"qty" json:"qty"`
	SOH                  int    `bson:"soh" json:"soh"`
	Remarks              string `bson:"remarks" json:"remarks"`
	LastMonthNetSales    int    `bson:"last_month_net_sales" json:"last_month_net_sales"`
	RunningMonthNetSales int    `bson:"running_month_net_sales" json:"running_month_net_sales"`
	Flag                 Flag   `bson:"flag" json:"flag"`
}
