package database

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Coerce converts value to the Go type bound for col. A nil value, or an
// empty string for a non-text column, becomes SQL NULL when col is nullable.
func Coerce(col Column, value any) (any, error) {
	if s, ok := value.(string); ok && (col.Type != TypeText || col.Nullable) {
		if col.Type != TypeText {
			s = strings.TrimSpace(s)
		}
		value = s
		if s == "" {
			value = nil
		}
	}
	if value == nil {
		if col.Nullable {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s cannot be null", ErrInvalidInput, col.Name)
	}

	var (
		out any
		err error
	)
	switch col.Type {
	case TypeText:
		out, err = cast.ToStringE(value)
	case TypeInteger:
		out, err = ToInteger(value)
	case TypeFloat:
		out, err = cast.ToFloat64E(value)
	case TypeBool:
		out, err = cast.ToBoolE(value)
	case TypeDate, TypeTimestamp:
		out, err = cast.ToTimeE(value)
	default:
		err = fmt.Errorf("unknown column type %v", col.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s expects %s: %v", ErrInvalidInput, col.Name, col.Type, err)
	}
	return out, nil
}

// ToInteger converts v to int64 without losing information. Strings are
// read as base 10 and floats must hold a whole number.
func ToInteger(v any) (int64, error) {
	switch n := v.(type) {
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	case float32:
		return wholeFloat(float64(n))
	case float64:
		return wholeFloat(n)
	}
	return cast.ToInt64E(v)
}

func wholeFloat(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	return int64(f), nil
}
