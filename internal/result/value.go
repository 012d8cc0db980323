package result

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is one answer: either a number (scale questions) or a string
// ("yes"/"no" or free text). The zero Value is the empty string, which
// counts as "no answer"; a numeric zero does not.
type Value struct {
	num     float64
	str     string
	numeric bool
}

// Number creates a numeric value.
func Number(n float64) Value {
	return Value{num: n, numeric: true}
}

// Text creates a string value.
func Text(s string) Value {
	return Value{str: s}
}

// Numeric returns the numeric value, if this is one.
func (v Value) Numeric() (float64, bool) {
	return v.num, v.numeric
}

// IsEmpty reports whether the value counts as an absent answer. Only
// the empty string is empty; every number, including 0, is an answer.
func (v Value) IsEmpty() bool {
	return !v.numeric && v.str == ""
}

// String renders the value for display. Whole numbers print without a
// decimal point.
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// MarshalJSON emits a JSON number for numeric values and a JSON string
// otherwise, matching the persisted format of the original data.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (v *Value) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Number(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Text(s)
		return nil
	}
	return fmt.Errorf("response value must be a number or a string: %s", data)
}
