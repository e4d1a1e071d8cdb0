package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxExponent bounds the base-10 exponent of any stored or parsed number. Values
// are printed without exponent, so 1e50000000 would print fifty million digits.
const MaxExponent = 30

// ErrDecimalOutOfRange is returned for numbers whose exponent exceeds MaxExponent.
var ErrDecimalOutOfRange = errors.New("number out of range")

// ParseDecimal parses a decimal number from user input. Surrounding whitespace is
// ignored. Exponent notation is accepted while the exponent stays within
// MaxExponent in either direction.
func ParseDecimal(s string) (decimal.Decimal, error) {
	dec, err := parseBounded(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal '%s': %w", s, err)
	}
	return dec, nil
}

func parseBounded(s string) (decimal.Decimal, error) {
	dec, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if exp := dec.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return decimal.Zero, ErrDecimalOutOfRange
	}
	return dec, nil
}

// FormatDecimal renders d without exponent and without trailing zeros.
func FormatDecimal(d decimal.Decimal) string {
	return d.String()
}

// jsonNumber renders d as a JSON number literal.
func jsonNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// lenientDecimal decodes a stored numeric field. Numbers and numeric strings are
// accepted; null, absent, non-numeric or out of range values decode to zero with
// ok=false.
func lenientDecimal(raw json.RawMessage) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, false
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, false
		}
	}

	dec, err := parseBounded(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, false
	}
	return dec, true
}

// SumCalories returns the exact sum of the calories of lines.
func SumCalories(lines []IngredientLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Calories)
	}
	return total
}
