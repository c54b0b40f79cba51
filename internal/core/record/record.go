package record

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/zeusync/tabletop/internal/core/player"
)

// Record is the plain mapping form of a Data or Component used for persistence
// and transmission.
type Record = map[string]any

// Field names shared by Data and Component records.
const (
	KeyType     = "type"
	KeyContent  = "content"
	KeyPublic   = "public"
	KeyAllowed  = "allowed_pid"
	KeyName     = "name"
	KeyPosition = "position"
	KeyData     = "data"
)

// Kind returns the `type` discriminator of rec.
func Kind(rec Record) (string, error) {
	v, ok := rec[KeyType]
	if !ok {
		return "", fmt.Errorf("%w: missing attribute `%s`", ErrType, KeyType)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: the attribute `%s` is not string", ErrType, KeyType)
	}
	return s, nil
}

// RequiredString reads a mandatory string attribute.
func RequiredString(rec Record, key string) (string, error) {
	s, ok := rec[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: the attribute `%s` is not string", ErrType, key)
	}
	return s, nil
}

// OptionalString reads a string attribute that may be absent or null.
func OptionalString(rec Record, key string) (*string, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: the attribute `%s` is not string", ErrType, key)
	}
	return &s, nil
}

// OptionalBool reads a boolean attribute, returning def when absent.
func OptionalBool(rec Record, key string, def bool) (bool, error) {
	v, ok := rec[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: the attribute `%s` is not boolean", ErrType, key)
	}
	return b, nil
}

// OptionalIDs reads a list of player IDs. Every entry must be an integer.
// A present null is not a list.
func OptionalIDs(rec Record, key string) ([]player.ID, error) {
	v, ok := rec[key]
	if !ok {
		return nil, nil
	}

	var items []any
	switch list := v.(type) {
	case []any:
		items = list
	case []int:
		out := make([]player.ID, len(list))
		for i, id := range list {
			out[i] = player.ID(id)
		}
		return out, nil
	case []player.ID:
		return append([]player.ID(nil), list...), nil
	case []int64:
		items = make([]any, len(list))
		for i, id := range list {
			items[i] = id
		}
	default:
		return nil, fmt.Errorf("%w: the attribute `%s` is not a list", ErrType, key)
	}

	out := make([]player.ID, 0, len(items))
	for _, item := range items {
		n, ok := Integer(item)
		if !ok || n < math.MinInt || n > math.MaxInt {
			return nil, fmt.Errorf("%w: the attribute `%s` holds non-integer %v", ErrType, key, item)
		}
		out = append(out, player.ID(n))
	}
	return out, nil
}

// Mapping converts v into a Record. Mappings with non-string keys are rejected.
func Mapping(v any) (Record, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(Record, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: key %v is not string", ErrType, k)
			}
			out[key] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected a mapping, got %T", ErrType, v)
	}
}

// IDsToList turns player IDs into the list stored under `allowed_pid`.
func IDsToList(ids []player.ID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

// Integer reports v as an int64 when it holds an integer value.
// Booleans and reals are not integers.
func Integer(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), n <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case player.ID:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

// Number normalizes v to int64, float64 or complex128.
// It reports false for anything that is not a number, booleans included.
func Number(v any) (any, bool) {
	if i, ok := Integer(v); ok {
		return i, true
	}
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case complex64:
		return complex128(n), true
	case complex128:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return nil, false
	}
}

// Normalize rewrites decoder output into the value shapes records use:
// json.Number becomes int64 or float64 and string-keyed map[any]any becomes Record.
func Normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if n, ok := Number(val); ok {
			return n
		}
		return val.String()
	case map[string]any:
		for k, item := range val {
			val[k] = Normalize(item)
		}
		return val
	case map[any]any:
		if m, err := Mapping(val); err == nil {
			return Normalize(m)
		}
		for k, item := range val {
			val[k] = Normalize(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = Normalize(item)
		}
		return val
	case int:
		return int64(val)
	default:
		return v
	}
}
