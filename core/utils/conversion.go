package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToInt64 converts decoded JSON values to int64.
// It handles numeric types, integral floats, json.Number and numeric strings.
// The second result is false when val is nil or has no integer meaning.
func ToInt64(val any) (int64, bool) {
	switch v := val.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case float32:
		return ToInt64(float64(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return ToInt64(f)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	case []byte:
		return ToInt64(string(v))
	default:
		return 0, false
	}
}

// ToString converts scalar decoded JSON values to string.
// Composite values (maps, slices) and nil report false.
func ToString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int, int64, int32, uint, uint64, uint32:
		i, _ := ToInt64(v)
		return strconv.FormatInt(i, 10), true
	default:
		return "", false
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true"
	default:
		i, ok := ToInt64(v)
		return ok && i == 1
	}
}

// Int64Ptr returns a pointer to the integer value of val, or nil when val has none.
func Int64Ptr(val any) *int64 {
	i, ok := ToInt64(val)
	if !ok {
		return nil
	}
	return &i
}

// StringPtr returns a pointer to the string value of val, or nil when val has none.
func StringPtr(val any) *string {
	s, ok := ToString(val)
	if !ok {
		return nil
	}
	return &s
}

// ToStringSlice returns the scalar elements of a decoded JSON array as strings.
// Elements that are not scalars are skipped. A non-array yields nil.
func ToStringSlice(val any) []string {
	items, ok := val.([]any)
	if !ok {
		if ss, ok := val.([]string); ok {
			return ss
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := ToString(item); ok {
			out = append(out, s)
		}
	}
	return out
}

// ToInt64Slice returns the integer elements of a decoded JSON array.
// Elements without an integer value are skipped. A non-array yields nil.
func ToInt64Slice(val any) []int64 {
	items, ok := val.([]any)
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(items))
	for _, item := range items {
		if i, ok := ToInt64(item); ok {
			out = append(out, i)
		}
	}
	return out
}

// Truthy reports whether val holds a non-empty, non-zero value.
// Strings "0" and "false" are false.
func Truthy(val any) bool {
	switch v := val.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s != "" && s != "0" && s != "false"
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		if i, ok := ToInt64(v); ok {
			return i != 0
		}
		if f, ok := v.(float64); ok {
			return f != 0
		}
		return true
	}
}
