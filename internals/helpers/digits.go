// file: internals/helpers/digits.go
package helper

import "strings"

// DigitsOnly strips every non-digit rune. Used to normalize guardian mobile
// numbers before storing or matching.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
