package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Form fields arrive as strings. Bad user input maps to documented defaults
// instead of surfacing a parse error.

// DecimalOrZero parses a decimal form field, returning zero for missing or
// unparsable input.
func DecimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DecimalOrDefault parses a decimal form field, returning def for missing or
// unparsable input.
func DecimalOrDefault(s string, def decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return d
}

// DecimalPtr parses a decimal form field, returning nil when the field is
// missing or unparsable. Used for partial updates where an omitted field
// leaves the stored value untouched.
func DecimalPtr(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &d
}

// IntOrZero parses an integer form field, returning zero for missing or
// unparsable input.
func IntOrZero(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// DateOrNil parses a form date (YYYY-MM-DD, or RFC3339 as sent by datetime
// pickers), returning nil for missing or unparsable input.
func DateOrNil(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
