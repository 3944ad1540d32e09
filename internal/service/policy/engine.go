package policy

import (
	"math"
	"time"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
)

// Variant selects which sales aggregation feeds the engine.
type Variant string

const (
	// VariantMonthToDate sizes offtake from last month plus the running month.
	VariantMonthToDate Variant = "month_to_date"
	// VariantRollingAverage sizes offtake from a pre-computed 2-month average.
	VariantRollingAverage Variant = "rolling_average"
)

// ParseVariant maps a request-supplied variant name onto a known strategy,
// defaulting to the month-to-date policy.
func ParseVariant(raw string) Variant {
	if Variant(raw) == VariantRollingAverage {
		return VariantRollingAverage
	}
	return VariantMonthToDate
}

// Inputs carries everything the engine needs for one recommendation.
type Inputs struct {
	Figures        models.SalesFigures
	VisitFrequency int
	StockOnHand    int
}

// Strategy derives the total-sales window for a variant.
type Strategy interface {
	Name() Variant
	Window(figures models.SalesFigures, now time.Time) (totalSales, totalDays int)
}

type monthToDate struct{}

func (monthToDate) Name() Variant { return VariantMonthToDate }

func (monthToDate) Window(figures models.SalesFigures, now time.Time) (int, int) {
	prevYear, prevMonth := previousMonth(now)
	totalDays := daysInMonth(prevYear, prevMonth) + now.Day()
	return figures.LastMonthNetSales + figures.RunningMonthNetSales, totalDays
}

type rollingAverage struct{}

func (rollingAverage) Name() Variant { return VariantRollingAverage }

func (rollingAverage) Window(figures models.SalesFigures, now time.Time) (int, int) {
	return figures.Last2MonthAvgNet, daysInMonth(now.Year(), now.Month())
}

// StrategyFor returns the strategy implementing the given variant.
func StrategyFor(variant Variant) Strategy {
	if variant == VariantRollingAverage {
		return rollingAverage{}
	}
	return monthToDate{}
}

// Recommend computes the suggested reorder quantity for one SKU. Every
// degenerate input (zero sales, zero days, zero visit frequency, zero stock)
// resolves to a zero suggestion; the engine never returns an error.
func Recommend(in Inputs, variant Variant, now time.Time) models.Recommendation {
	strategy := StrategyFor(variant)
	totalSales, totalDays := strategy.Window(in.Figures, now)

	var avgDailyOfftake float64
	if totalDays > 0 {
		avgDailyOfftake = float64(totalSales) / float64(totalDays)
	}

	reorderDays := ReorderDays(in.VisitFrequency, now)

	// Rounding happens exactly once, at the reference demand step.
	var referenceDemand int
	if in.VisitFrequency > 0 {
		referenceDemand = int(math.Round(avgDailyOfftake * float64(reorderDays) / float64(in.VisitFrequency)))
	} else {
		referenceDemand = int(math.Round(avgDailyOfftake * float64(reorderDays)))
	}

	suggested := referenceDemand - in.StockOnHand
	if suggested < 0 {
		suggested = 0
	}

	return models.Recommendation{
		Variant:         string(strategy.Name()),
		VisitFrequency:  in.VisitFrequency,
		ReorderDays:     reorderDays,
		AvgDailyOfftake: avgDailyOfftake,
		ReferenceDemand: referenceDemand,
		SuggestedQty:    suggested,
	}
}

// ReorderDays derives the forecast window from the visit frequency. Visit
// frequencies of 0, 7 or negative values fall back to the 7-day window; this
// matches the shipped bucketing and must not change without product sign-off.
func ReorderDays(visitFrequency int, now time.Time) int {
	switch {
	case visitFrequency >= 1 && visitFrequency <= 6:
		return 7
	case visitFrequency >= 8:
		return daysInMonth(now.Year(), now.Month())
	default:
		return 7
	}
}

func previousMonth(now time.Time) (int, time.Month) {
	if now.Month() == time.January {
		return now.Year() - 1, time.December
	}
	return now.Year(), now.Month() - 1
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
