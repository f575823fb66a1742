package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownKey is returned for keys that are not registered in Default.
var ErrUnknownKey = errors.New("unknown key")

// Parse converts raw into the type of the default registered for k and
// validates the result.
func Parse(k, raw string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}

	var v any = raw
	if _, isBool := field.Value.(bool); isBool {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", k, raw)
		}
		v = b
	}

	if err := Validate(k, v); err != nil {
		return nil, err
	}
	return v, nil
}
