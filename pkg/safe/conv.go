// Package safe provides integer conversions that fail instead of silently
// wrapping.
package safe

import (
	"fmt"
	"math"
)

// Integer covers the integer types the conversions accept.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

func rangeErr[T Integer](v T, target string) error {
	return fmt.Errorf("value %d out of %s range", v, target)
}

// Int32 converts v to int32 with range validation.
func Int32[T Integer](v T) (int32, error) {
	switch value := any(v).(type) {
	case int:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return 0, rangeErr(v, "int32")
		}
	case int64:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return 0, rangeErr(v, "int32")
		}
	case uint:
		if uint64(value) > math.MaxInt32 {
			return 0, rangeErr(v, "int32")
		}
	case uint32:
		if value > math.MaxInt32 {
			return 0, rangeErr(v, "int32")
		}
	case uint64:
		if value > math.MaxInt32 {
			return 0, rangeErr(v, "int32")
		}
	}
	return int32(v), nil
}

// Int64 converts v to int64 with range validation.
func Int64[T Integer](v T) (int64, error) {
	switch value := any(v).(type) {
	case uint:
		if uint64(value) > math.MaxInt64 {
			return 0, rangeErr(v, "int64")
		}
	case uint64:
		if value > math.MaxInt64 {
			return 0, rangeErr(v, "int64")
		}
	}
	return int64(v), nil
}

// Uint32 converts v to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 || uint64(value) > math.MaxUint32 {
			return 0, rangeErr(v, "uint32")
		}
	case int32:
		if value < 0 {
			return 0, rangeErr(v, "uint32")
		}
	case int64:
		if value < 0 || value > math.MaxUint32 {
			return 0, rangeErr(v, "uint32")
		}
	case uint:
		if uint64(value) > math.MaxUint32 {
			return 0, rangeErr(v, "uint32")
		}
	case uint64:
		if value > math.MaxUint32 {
			return 0, rangeErr(v, "uint32")
		}
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 {
			return 0, rangeErr(v, "uint64")
		}
	case int32:
		if value < 0 {
			return 0, rangeErr(v, "uint64")
		}
	case int64:
		if value < 0 {
			return 0, rangeErr(v, "uint64")
		}
	}
	return uint64(v), nil
}
