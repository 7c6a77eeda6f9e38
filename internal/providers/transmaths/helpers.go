package transmaths

import (
	"fmt"

	"github.com/BenjaminEHowe/transmaths/internal/transreal"
	"github.com/BenjaminEHowe/transmaths/internal/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetInt extracts an integer from params with JSON number coercion
func GetInt(params map[string]interface{}, key string) (int, bool) {
	switch v := params[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}

// GetOperand extracts a transreal operand. Strings go through the parser,
// so "2/3", "infinity" and "nullity" are all valid; JSON numbers convert
// through the exact binary-rational float path.
func GetOperand(params map[string]interface{}, key string) (transreal.Number, error) {
	val, ok := params[key]
	if !ok {
		return transreal.Number{}, fmt.Errorf("%s parameter required", key)
	}
	switch v := val.(type) {
	case string:
		n, err := transreal.Parse(v)
		if err != nil {
			return transreal.Number{}, fmt.Errorf("invalid %s: %v", key, err)
		}
		return n, nil
	case float64:
		return transreal.FromFloat(v), nil
	case int:
		return transreal.FromInt(int64(v)), nil
	case int64:
		return transreal.FromInt(v), nil
	}
	return transreal.Number{}, fmt.Errorf("%s must be a string or number", key)
}

// numberData encodes a transreal number for a tool result: the canonical
// string, the value kind, and the exact ratio when finite.
func numberData(n transreal.Number) map[string]interface{} {
	data := map[string]interface{}{
		"result": n.String(),
	}
	switch {
	case n.IsNullity():
		data["kind"] = "nullity"
	case n.IsInfinite():
		if n.Sign() > 0 {
			data["kind"] = "infinity"
		} else {
			data["kind"] = "-infinity"
		}
	default:
		data["kind"] = "finite"
		data["numerator"] = n.Numerator().String()
		data["denominator"] = n.Denominator().String()
	}
	return data
}
