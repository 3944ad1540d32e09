package policy

import (
	"testing"
	"time"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
)

// June 2026 has 30 days; May has 31.
var june15 = time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)

func TestReorderDays_Buckets(t *testing.T) {
	cases := []struct {
		visitFrequency int
		want           int
	}{
		{1, 7},
		{5, 7},
		{6, 7},
		{7, 7},  // shipped fallback, preserved for compatibility
		{0, 7},  // fallback
		{-3, 7}, // fallback
		{8, 30},
		{12, 30},
	}

	for _, c := range cases {
		if got := ReorderDays(c.visitFrequency, june15); got != c.want {
			t.Fatalf("ReorderDays(%d) = %d, want %d", c.visitFrequency, got, c.want)
		}
	}
}

func TestRecommend_RollingVariantScenario(t *testing.T) {
	// 300 avg sales over the 30-day current month, 4 visits, SOH 10:
	// avg daily 10, reorder window 7, ref demand round(10*7/4)=18, suggest 8.
	in := Inputs{
		Figures:        models.SalesFigures{Last2MonthAvgNet: 300},
		VisitFrequency: 4,
		StockOnHand:    10,
	}

	rec := Recommend(in, VariantRollingAverage, june15)

	if rec.AvgDailyOfftake != 10 {
		t.Fatalf("avg daily offtake = %v, want 10", rec.AvgDailyOfftake)
	}
	if rec.ReorderDays != 7 {
		t.Fatalf("reorder days = %d, want 7", rec.ReorderDays)
	}
	if rec.ReferenceDemand != 18 {
		t.Fatalf("reference demand = %d, want 18", rec.ReferenceDemand)
	}
	if rec.SuggestedQty != 8 {
		t.Fatalf("suggested qty = %d, want 8", rec.SuggestedQty)
	}
}

func TestRecommend_HighVisitFrequencyUsesMonthWindow(t *testing.T) {
	in := Inputs{
		Figures:        models.SalesFigures{Last2MonthAvgNet: 300},
		VisitFrequency: 8,
		StockOnHand:    10,
	}

	rec := Recommend(in, VariantRollingAverage, june15)

	if rec.ReorderDays != 30 {
		t.Fatalf("reorder days = %d, want 30", rec.ReorderDays)
	}
	if rec.ReferenceDemand != 38 {
		t.Fatalf("reference demand = %d, want round(10*30/8)=38", rec.ReferenceDemand)
	}
	if rec.SuggestedQty != 28 {
		t.Fatalf("suggested qty = %d, want 28", rec.SuggestedQty)
	}
}

func TestRecommend_ZeroVisitFrequencySkipsDivision(t *testing.T) {
	in := Inputs{
		Figures:        models.SalesFigures{Last2MonthAvgNet: 300},
		VisitFrequency: 0,
		StockOnHand:    0,
	}

	rec := Recommend(in, VariantRollingAverage, june15)

	if rec.ReferenceDemand != 70 {
		t.Fatalf("reference demand = %d, want round(10*7)=70", rec.ReferenceDemand)
	}
	if rec.SuggestedQty != 70 {
		t.Fatalf("suggested qty = %d, want 70", rec.SuggestedQty)
	}
}

func TestRecommend_MonthToDateWindow(t *testing.T) {
	// May (31 days) + 15 elapsed June days = 46-day window.
	in := Inputs{
		Figures:        models.SalesFigures{LastMonthNetSales: 322, RunningMonthNetSales: 138},
		VisitFrequency: 4,
		StockOnHand:    0,
	}

	rec := Recommend(in, VariantMonthToDate, june15)

	want := float64(460) / 46
	if rec.AvgDailyOfftake != want {
		t.Fatalf("avg daily offtake = %v, want %v", rec.AvgDailyOfftake, want)
	}
	// round(10*7/4) = 18
	if rec.ReferenceDemand != 18 {
		t.Fatalf("reference demand = %d, want 18", rec.ReferenceDemand)
	}
}

func TestRecommend_JanuaryUsesDecemberOfPriorYear(t *testing.T) {
	jan10 := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	in := Inputs{
		Figures:        models.SalesFigures{LastMonthNetSales: 410},
		VisitFrequency: 1,
	}

	rec := Recommend(in, VariantMonthToDate, jan10)

	// December has 31 days, so the window is 41 days: avg 10/day, ref 70.
	if rec.AvgDailyOfftake != 10 {
		t.Fatalf("avg daily offtake = %v, want 10", rec.AvgDailyOfftake)
	}
	if rec.ReferenceDemand != 70 {
		t.Fatalf("reference demand = %d, want 70", rec.ReferenceDemand)
	}
}

func TestRecommend_DegenerateInputsSuggestZero(t *testing.T) {
	cases := []Inputs{
		{},
		{VisitFrequency: 4},
		{Figures: models.SalesFigures{Last2MonthAvgNet: 10}, StockOnHand: 1000, VisitFrequency: 4},
	}

	for i, in := range cases {
		for _, variant := range []Variant{VariantMonthToDate, VariantRollingAverage} {
			rec := Recommend(in, variant, june15)
			if rec.SuggestedQty < 0 {
				t.Fatalf("case %d variant %s: negative suggestion %d", i, variant, rec.SuggestedQty)
			}
		}
	}

	empty := Recommend(Inputs{}, VariantMonthToDate, june15)
	if empty.SuggestedQty != 0 || empty.ReferenceDemand != 0 {
		t.Fatalf("zero inputs should suggest 0, got %+v", empty)
	}
}

func TestParseVariant_DefaultsToMonthToDate(t *testing.T) {
	if got := ParseVariant(""); got != VariantMonthToDate {
		t.Fatalf("empty variant should default, got %s", got)
	}
	if got := ParseVariant("something_else"); got != VariantMonthToDate {
		t.Fatalf("unknown variant should default, got %s", got)
	}
	if got := ParseVariant("rolling_average"); got != VariantRollingAverage {
		t.Fatalf("rolling variant not recognized, got %s", got)
	}
}
