package sif

import (
	"strconv"
	"strings"
	"time"
)

// padRight space-pads s to width characters and truncates when s is longer.
// Widths are measured in runes, not bytes: the format counts characters, and
// a byte slice could split a multibyte character in a name field mid-rune.
// Space padding only: zero-padding an alphanumeric account or identifier
// changes its meaning on the bank side.
func padRight(s string, width int) (field string, truncated bool) {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width]), true
	}
	return s + strings.Repeat(" ", width-len(runes)), false
}

// zeroPadLeft renders a non-negative integer left zero-padded to width.
func zeroPadLeft(n int64, width int) string {
	s := strconv.FormatInt(n, 10)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// wireDate renders a date as YYYYMMDD with no separators.
func wireDate(t time.Time) string {
	return t.Format("20060102")
}

// filler returns a field of width spaces, reserved by the format.
func filler(width int) string {
	return strings.Repeat(" ", width)
}
