package models

// Record is one spreadsheet row mapped by its header row. All cell values are
// kept as trimmed strings; numeric fields are coerced at the point of use.
type Record map[string]string

// Get returns the value for the given column, or "" when the column is absent.
func (r Record) Get(column string) string {
	if r == nil {
		return ""
	}
	return r[column]
}
