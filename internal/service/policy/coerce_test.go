package policy

import "testing"

func TestToNumber_Strings(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1,234", 1234},
		{"", 0},
		{"abc", 0},
		{"nan", 0},
		{"NaN", 0},
		{"  42  ", 42},
		{"17.9", 17},
		{"-5", -5},
		{"1,000,000", 1000000},
	}

	for _, c := range cases {
		if got := ToNumber(c.in, 0); got != c.want {
			t.Fatalf("ToNumber(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestToNumber_NilAndDefault(t *testing.T) {
	if got := ToNumber(nil, 0); got != 0 {
		t.Fatalf("ToNumber(nil) = %d, want 0", got)
	}
	if got := ToNumber(nil, 7); got != 7 {
		t.Fatalf("ToNumber(nil, 7) = %d, want default 7", got)
	}
	if got := ToNumber("garbage", 3); got != 3 {
		t.Fatalf("ToNumber(garbage, 3) = %d, want default 3", got)
	}
}

func TestToNumber_NumericKinds(t *testing.T) {
	if got := ToNumber(12, 0); got != 12 {
		t.Fatalf("int: got %d", got)
	}
	if got := ToNumber(int64(13), 0); got != 13 {
		t.Fatalf("int64: got %d", got)
	}
	if got := ToNumber(14.7, 0); got != 14 {
		t.Fatalf("float64 should truncate: got %d", got)
	}
	if got := ToNumber(float32(15.2), 0); got != 15 {
		t.Fatalf("float32 should truncate: got %d", got)
	}
}

func TestToNumber_NeverPanics(t *testing.T) {
	inputs := []any{nil, "", "inf", "-inf", "1e400", struct{ X int }{1}, []string{"a"}, map[string]int{"x": 1}, "٣"}
	for _, in := range inputs {
		got := ToNumber(in, 0)
		_ = got
	}
}
