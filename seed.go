package stringgen

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
)

// seedValue normalizes a caller-supplied seed to the 64-bit state the random
// source is built from. Accepted types mirror the usual seedable primitives:
// any integer type, floats, strings and byte slices. A nil seed draws fresh
// entropy, so unseeded generators differ between runs.
func seedValue(v any) (uint64, error) {
	switch s := v.(type) {
	case nil:
		return rand.Uint64(), nil
	case int:
		return uint64(s), nil
	case int8:
		return uint64(s), nil
	case int16:
		return uint64(s), nil
	case int32:
		return uint64(s), nil
	case int64:
		return uint64(s), nil
	case uint:
		return uint64(s), nil
	case uint8:
		return uint64(s), nil
	case uint16:
		return uint64(s), nil
	case uint32:
		return uint64(s), nil
	case uint64:
		return s, nil
	case uintptr:
		return uint64(s), nil
	case float32:
		return hashBytes(binary.LittleEndian.AppendUint64(nil, math.Float64bits(float64(s)))), nil
	case float64:
		return hashBytes(binary.LittleEndian.AppendUint64(nil, math.Float64bits(s))), nil
	case string:
		return hashBytes([]byte(s)), nil
	case []byte:
		return hashBytes(s), nil
	default:
		return 0, fmt.Errorf("%w: unsupported seed type %T (want integer, float, string or []byte)", ErrInvalidConfig, v)
	}
}

// hashBytes folds arbitrary seed material to 64 bits with FNV-1a.
func hashBytes(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}
