package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number or a numeric string. Null, empty and unparsable
// values leave it unset instead of failing the whole body.
type FlexInt struct {
	Int   int64
	Valid bool
}

func NewFlexInt(v int64) FlexInt {
	return FlexInt{Int: v, Valid: true}
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*f = NewFlexInt(v)
		return nil
	}
	// "3.0" and 3e0 are whole numbers too.
	if v, err := strconv.ParseFloat(raw, 64); err == nil && v == math.Trunc(v) &&
		v >= math.MinInt64 && v < math.MaxInt64 {
		*f = NewFlexInt(int64(v))
	}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(f.Int, 10)), nil
}
