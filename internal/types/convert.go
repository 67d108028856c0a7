package types

import (
	"strconv"
	"time"
)

// ToItem converts a value scanned from a database row into an item identifier.
// MySQL returns []byte for text columns and int64/float64 for numeric ones.
// A nil value converts to the empty string.
func ToItem(v interface{}) string {
	switch i := v.(type) {
	case nil:
		return ""
	case string:
		return i
	case []byte:
		return string(i)
	case int64:
		return strconv.FormatInt(i, 10)
	case int:
		return strconv.Itoa(i)
	case int32:
		return strconv.FormatInt(int64(i), 10)
	case uint64:
		return strconv.FormatUint(i, 10)
	case uint32:
		return strconv.FormatUint(uint64(i), 10)
	case float64:
		return strconv.FormatFloat(i, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(i), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(i)
	case time.Time:
		return i.Format(time.RFC3339)
	default:
		return ""
	}
}
