package util

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR renders an amount as the dashboard's exposure string,
// e.g. 1234567.891 -> "₹1,234,567.89".
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	s := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	b.WriteString("₹")
	b.WriteString(sign)
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(frac)
	return b.String()
}
