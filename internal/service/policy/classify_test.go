package policy

import (
	"testing"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
)

func TestClassify_ExcessAboveThreshold(t *testing.T) {
	// 25 > 1.2*18 = 21.6
	if got := Classify(25, 18); got != models.FlagExcessOrder {
		t.Fatalf("Classify(25, 18) = %s, want Excess Order", got)
	}
	if got := Classify(21, 18); got != models.FlagOK {
		t.Fatalf("Classify(21, 18) = %s, want OK", got)
	}
}

func TestClassify_ExactBoundaryIsOK(t *testing.T) {
	// qty == 1.2*ref exactly stays OK.
	if got := Classify(6, 5); got != models.FlagOK {
		t.Fatalf("Classify(6, 5) = %s, want OK at exact boundary", got)
	}
	if got := Classify(12, 10); got != models.FlagOK {
		t.Fatalf("Classify(12, 10) = %s, want OK at exact boundary", got)
	}
	if got := Classify(13, 10); got != models.FlagExcessOrder {
		t.Fatalf("Classify(13, 10) = %s, want Excess Order", got)
	}
}

func TestClassify_ZeroReferenceDemandFloor(t *testing.T) {
	// max(ref, 1) keeps a one-unit order against zero demand unflagged.
	if got := Classify(1, 0); got != models.FlagOK {
		t.Fatalf("Classify(1, 0) = %s, want OK", got)
	}
	if got := Classify(2, 0); got != models.FlagExcessOrder {
		t.Fatalf("Classify(2, 0) = %s, want Excess Order", got)
	}
	if got := Classify(0, 0); got != models.FlagOK {
		t.Fatalf("Classify(0, 0) = %s, want OK", got)
	}
}
