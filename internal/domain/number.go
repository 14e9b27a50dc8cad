package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is an optional measured value (weight, volume, lab result).
// Absent is distinct from zero. Values that are not numeric are treated as
// absent on decode, which is how free-text legacy entries such as "negative"
// in a quantitative slot are dropped.
type Number struct {
	value decimal.Decimal
	valid bool
}

// NewNumber returns a present Number.
func NewNumber(f float64) Number {
	return Number{value: decimal.NewFromFloat(f), valid: true}
}

// ParseNumber parses user or wire text. Empty and non-numeric input yields
// an absent Number.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}
	}
	return Number{value: d, valid: true}
}

// IsSet reports whether a value is present.
func (n Number) IsSet() bool { return n.valid }

// Positive reports whether the value is present and greater than zero.
func (n Number) Positive() bool { return n.valid && n.value.IsPositive() }

// Float64 returns the value, or 0 when absent.
func (n Number) Float64() float64 {
	if !n.valid {
		return 0
	}
	return n.value.InexactFloat64()
}

// Decimal returns the exact value and whether it is present.
func (n Number) Decimal() (decimal.Decimal, bool) { return n.value, n.valid }

// String returns the canonical text form, or "" when absent.
func (n Number) String() string {
	if !n.valid {
		return ""
	}
	return n.value.String()
}

// Equal compares presence and exact value.
func (n Number) Equal(o Number) bool {
	if n.valid != o.valid {
		return false
	}
	return !n.valid || n.value.Equal(o.value)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return []byte(n.value.String()), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = ParseNumber(s)
		return nil
	}
	// null, booleans, objects and arrays all decode as absent.
	*n = ParseNumber(string(data))
	return nil
}

// Count is a non-negative tally. Empty, null, negative and non-numeric
// input decode as zero. Values beyond MaxCount are clamped to it.
type Count int

// MaxCount is the largest tally a Count decodes to.
const MaxCount = Count(math.MaxInt32)

var maxCountDecimal = decimal.NewFromInt(int64(MaxCount))

func (c *Count) UnmarshalJSON(data []byte) error {
	var n Number
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	d, ok := n.Decimal()
	if !ok || d.IsNegative() {
		*c = 0
		return nil
	}
	if d.GreaterThan(maxCountDecimal) {
		*c = MaxCount
		return nil
	}
	*c = Count(d.IntPart())
	return nil
}
