package parsing

import (
	"github.com/tidwall/gjson"
)

// ParseJSONSafe decodes text as JSON. Objects decode to map[string]any,
// arrays to []any, numbers to float64. Invalid JSON yields (nil, false)
// instead of an error.
func ParseJSONSafe(text string) (any, bool) {
	if !gjson.Valid(text) {
		return nil, false
	}
	return gjson.Parse(text).Value(), true
}

// IsJSONType reports whether v only contains values JSON can represent:
// nil, strings, booleans, numbers, []any and map[string]any, recursively.
func IsJSONType(v any) bool {
	switch t := v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case []any:
		for _, item := range t {
			if !IsJSONType(item) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, item := range t {
			if !IsJSONType(item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
