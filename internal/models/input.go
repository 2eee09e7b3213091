package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Optional records whether a JSON field was present in a request body.
// A present null leaves Value at its zero value, which the encoders treat
// as "clear this field".
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// LooseInt accepts a JSON number or numeric string and keeps the leading
// integer, the way form fields arrive from the dashboard. Anything else
// decodes without error and leaves Valid false.
type LooseInt struct {
	Set   bool
	Valid bool
	Value int64
}

// IntOf returns a present, valid LooseInt.
func IntOf(n int64) LooseInt {
	return LooseInt{Set: true, Valid: true, Value: n}
}

func (n *LooseInt) UnmarshalJSON(b []byte) error {
	n.Set = true
	n.Valid = false
	n.Value = 0

	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if !math.IsNaN(f) && f < math.MaxInt64 && f > math.MinInt64 {
			n.Value = int64(math.Trunc(f))
			n.Valid = true
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	if v, ok := ParseLeadingInt(s); ok {
		n.Value = v
		n.Valid = true
	}
	return nil
}

func (n LooseInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(n.Value, 10)), nil
}

// Ptr returns the parsed value, or nil when the input was not a number.
func (n LooseInt) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// ParseLeadingInt parses an optionally signed run of digits at the start
// of s, ignoring surrounding whitespace and anything after the digits.
func ParseLeadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
