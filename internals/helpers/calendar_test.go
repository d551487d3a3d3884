package helper

import (
	"testing"
	"time"
)

func TestMonthName(t *testing.T) {
	tests := []struct {
		name  string
		month int
		want  string
	}{
		{name: "january", month: 1, want: "january"},
		{name: "june", month: 6, want: "june"},
		{name: "december", month: 12, want: "december"},
		// out-of-range input defaults to january rather than failing
		{name: "zero", month: 0, want: "january"},
		{name: "thirteen", month: 13, want: "january"},
		{name: "negative", month: -3, want: "january"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthName(tt.month); got != tt.want {
				t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
			}
		})
	}
}

func TestMonthNames(t *testing.T) {
	names := MonthNames()
	if len(names) != 12 {
		t.Fatalf("len(MonthNames()) = %d, want 12", len(names))
	}
	if names[0] != "january" || names[11] != "december" {
		t.Errorf("MonthNames() not in calendar order: first=%q last=%q", names[0], names[11])
	}
}

func TestMonthNumbers(t *testing.T) {
	nums := MonthNumbers()
	if len(nums) != 12 {
		t.Fatalf("len(MonthNumbers()) = %d, want 12", len(nums))
	}
	for i, n := range nums {
		if n != i+1 {
			t.Errorf("MonthNumbers()[%d] = %d, want %d", i, n, i+1)
		}
	}
}

func TestYearWindow(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	got := YearWindow(now)
	want := []int{2024, 2025, 2026, 2027, 2028}
	if len(got) != len(want) {
		t.Fatalf("YearWindow() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("YearWindow()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
