// Package validation checks primitive request fields before they reach the
// key, instruction and signing packages.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/mark3labs/solkit-go"
)

// Field names a request field together with its raw string value.
type Field struct {
	Name  string
	Value string
}

// Required returns a MissingField error for the first empty field, in order.
func Required(fields ...Field) error {
	for _, f := range fields {
		if f.Value == "" {
			return solkit.FieldError(solkit.ErrCodeMissingField, f.Name, nil)
		}
	}
	return nil
}

// ParseAmount parses a JSON number as an unsigned 64-bit integer.
// Returns MissingField if the number is absent and InvalidAmount if it is
// fractional, negative, or larger than the maximum u64.
// Zero is accepted; callers that need a positive amount check that separately.
func ParseAmount(field string, raw json.Number) (uint64, error) {
	amt, err := parseInteger(field, raw)
	if err != nil {
		return 0, err
	}
	if !amt.IsUint64() {
		return 0, solkit.FieldError(solkit.ErrCodeInvalidAmount, field, fmt.Errorf("%s is out of range for u64", raw))
	}
	return amt.Uint64(), nil
}

// ParseDecimals parses a JSON number as a mint's decimals, in [0, 255].
func ParseDecimals(field string, raw json.Number) (uint8, error) {
	n, err := parseInteger(field, raw)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() || n.Uint64() > math.MaxUint8 {
		return 0, solkit.FieldError(solkit.ErrCodeInvalidAmount, field, fmt.Errorf("%s is out of range for u8", raw))
	}
	return uint8(n.Uint64()), nil
}

// ParseWordCount parses an optional mnemonic length. An absent value means 12.
func ParseWordCount(field string, raw json.Number) (int, error) {
	if raw == "" {
		return 12, nil
	}

	n, err := parseInteger(field, raw)
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() || (n.Int64() != 12 && n.Int64() != 24) {
		return 0, solkit.FieldError(solkit.ErrCodeInvalidAmount, field, fmt.Errorf("must be 12 or 24, got %s", raw))
	}
	return int(n.Int64()), nil
}

func parseInteger(field string, raw json.Number) (*big.Int, error) {
	if raw == "" {
		return nil, solkit.FieldError(solkit.ErrCodeMissingField, field, nil)
	}

	// Parse as big.Int so values past u64 are reported as out of range
	// rather than as malformed.
	n, ok := new(big.Int).SetString(string(raw), 10)
	if !ok {
		return nil, solkit.FieldError(solkit.ErrCodeInvalidAmount, field, fmt.Errorf("%s is not an integer", raw))
	}
	if n.Sign() < 0 {
		return nil, solkit.FieldError(solkit.ErrCodeInvalidAmount, field, fmt.Errorf("%s is negative", raw))
	}
	return n, nil
}
