// file: internals/helpers/calendar.go
package helper

import "time"

// Month keys in calendar order. These are the symbolic names used across the
// admin fee grid and the public lookup payload.
var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MonthName maps 1..12 to its symbolic name. An out-of-range month falls back
// to "january" instead of failing.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return monthNames[0]
	}
	return monthNames[month-1]
}

func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames[:])
	return out
}

func MonthNumbers() []int {
	out := make([]int, 12)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// YearWindow returns the 5-year fee-eligible window centered on the current
// year: [year-2 .. year+2].
func YearWindow(now time.Time) []int {
	y := now.Year()
	return []int{y - 2, y - 1, y, y + 1, y + 2}
}
