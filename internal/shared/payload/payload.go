// Package payload holds the already-parsed `data` object of a write request and
// the typed accessors the validation rules are built from.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrMalformedBody signals the request body is not valid JSON.
var ErrMalformedBody = errors.New("request body must be valid JSON")

// Data is the decoded `data` object. Numbers decode as float64, nested objects
// as map[string]any and arrays as []any.
type Data map[string]any

type envelope struct {
	Data any `json:"data"`
}

// Decode extracts the `data` object from a request body. An empty body, a missing
// `data` key or a non-object `data` value all yield an empty Data so that the
// presence rules report the missing fields.
func Decode(body []byte) (Data, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Data{}, nil
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return FromAny(env.Data), nil
}

// FromAny converts an arbitrary decoded value into Data.
func FromAny(value any) Data {
	switch v := value.(type) {
	case map[string]any:
		return Data(v)
	case Data:
		return v
	default:
		return Data{}
	}
}

// Has reports whether key is present with a non-null value.
func (d Data) Has(key string) bool {
	value, ok := d[key]
	return ok && value != nil
}

// Get returns the raw value for key.
func (d Data) Get(key string) (any, bool) {
	value, ok := d[key]
	return value, ok
}

// String returns the value for key when it is a string.
func (d Data) String(key string) (string, bool) {
	value, ok := d[key].(string)
	return value, ok
}

// NonEmptyString reports whether key holds a string of length > 0.
func (d Data) NonEmptyString(key string) bool {
	value, ok := d.String(key)
	return ok && len(value) > 0
}

// Integer returns the value for key when it is a whole number.
func (d Data) Integer(key string) (int, bool) {
	return AsInteger(d[key])
}

// List returns the value for key when it is an array.
func (d Data) List(key string) ([]any, bool) {
	value, ok := d[key].([]any)
	return value, ok
}

// Truthy reports whether key holds a value that is neither null, false, zero nor
// the empty string.
func (d Data) Truthy(key string) bool {
	return Truthy(d[key])
}

// maxExactInteger is the largest magnitude a float64 holds without losing integer precision.
const maxExactInteger = 1 << 53

// AsInteger converts a decoded JSON number into an int when it has no fractional part.
func AsInteger(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, false
		}
		if v > maxExactInteger || v < -maxExactInteger {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// Truthy mirrors the loose truthiness used for optional identifiers in payloads.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int:
		return v != 0
	default:
		return true
	}
}

// Describe renders a payload value for error messages.
func Describe(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == math.Trunc(v) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprint(v)
	}
}
