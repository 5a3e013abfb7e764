package postgres

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

var timeType = reflect.TypeOf(time.Time{})

// stringToTimeHook accepts dates and timestamps in any layout cast understands.
// A blank string for an optional timestamp leaves it unset.
func stringToTimeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	if to.Kind() == reflect.Pointer && to.Elem() == timeType && strings.TrimSpace(reflect.ValueOf(data).String()) == "" {
		return nil, nil
	}
	if to != timeType {
		return data, nil
	}
	return cast.ToTimeE(data)
}

// integerHook stops integer fields from truncating fractions or reading
// strings as octal or hex.
func integerHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	switch from.Kind() {
	case reflect.String, reflect.Float32, reflect.Float64:
		return database.ToInteger(data)
	}
	return data, nil
}

// DecodeFields copies a loosely typed field map onto entity. Unknown keys
// and values that cannot be converted are rejected.
func DecodeFields(entity any, fields map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           entity,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(integerHook, stringToTimeHook),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(fields); err != nil {
		return fmt.Errorf("%w: %v", database.ErrInvalidInput, err)
	}
	return nil
}
