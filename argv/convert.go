package argv

import (
	"strconv"
	"time"
)

// Value is the set of types the generic conversion layer speaks. Defaults
// round-trip through their string form, so every Value type needs a
// symmetric Parse/Format pair below.
type Value interface {
	string | bool | int | int64 | uint | uint64 | float64 | time.Duration
}

// Parse converts s to T. On failure it returns the zero value and a
// *ConvertError retaining s.
func Parse[T Value](s string) (T, error) {
	var out T
	switch v := any(&out).(type) {
	case *string:
		*v = s
	case *bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return out, &ConvertError{Input: s, Target: "bool", Err: err}
		}
		*v = b
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return out, &ConvertError{Input: s, Target: "int", Err: err}
		}
		*v = n
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return out, &ConvertError{Input: s, Target: "int64", Err: err}
		}
		*v = n
	case *uint:
		n, err := strconv.ParseUint(s, 10, strconv.IntSize)
		if err != nil {
			return out, &ConvertError{Input: s, Target: "uint", Err: err}
		}
		*v = uint(n)
	case *uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return out, &ConvertError{Input: s, Target: "uint64", Err: err}
		}
		*v = n
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return out, &ConvertError{Input: s, Target: "float64", Err: err}
		}
		*v = f
	case *time.Duration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return out, &ConvertError{Input: s, Target: "time.Duration", Err: err}
		}
		*v = d
	}
	return out, nil
}

// Format renders v as the string Parse would accept back
func Format[T Value](v T) string {
	switch v := any(v).(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Duration:
		return v.String()
	}
	return ""
}
