package protocol

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AdditionalData is the payload of an intent
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
// JSON numbers and numeric strings are accepted.
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		if val != math.Trunc(val) {
			return 0, false
		}

		return int(val), true
	case int:
		return val, true
	case json.Number:
		i, err := val.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(val))
		return i, err == nil
	}

	return 0, false
}

// GetOptionalInt64 returns nil if the key is absent or null
func (a AdditionalData) GetOptionalInt64(key string) (*int64, error) {
	raw, ok := a[key]
	if !ok || raw == nil {
		return nil, nil
	}

	var i int64
	switch val := raw.(type) {
	case float64:
		if val != math.Trunc(val) {
			return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidPayload, key)
		}

		i = int64(val)
	case int64:
		i = val
	case int:
		i = int64(val)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidPayload, key)
		}

		i = parsed
	default:
		return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidPayload, key)
	}

	return &i, nil
}

// RequireString returns the string for the key, or an ErrInvalidPayload
func (a AdditionalData) RequireString(key string) (string, error) {
	s, ok := a.GetString(key)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidPayload, key)
	}

	return s, nil
}

// RequireInt returns the integer for the key, or an ErrInvalidPayload
func (a AdditionalData) RequireInt(key string) (int, error) {
	i, ok := a.GetInt(key)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidPayload, key)
	}

	return i, nil
}
