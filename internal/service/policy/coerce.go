package policy

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToNumber converts an arbitrary spreadsheet cell value into an integer,
// falling back to def on anything unparsable. The function is total: no input
// surfaces an error to the caller. Thousands separators are stripped and
// fractional values truncate toward zero.
func ToNumber(value any, def int) int {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return truncate(float64(v), def)
	case float64:
		return truncate(v, def)
	case string:
		return parseNumber(v, def)
	default:
		// Sheet cells occasionally surface as json.Number or other stringers.
		return parseNumber(fmt.Sprint(value), def)
	}
}

func parseNumber(raw string, def int) int {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" || strings.EqualFold(s, "nan") {
		return def
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}

	return truncate(f, def)
}

func truncate(f float64, def int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return int(f)
}
