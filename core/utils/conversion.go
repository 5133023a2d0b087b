package utils

import (
	"fmt"
	"strconv"
)

// ToString converts a scanned database value to string.
// Drivers hand back text columns as []byte and numeric columns as int64 or float64.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
