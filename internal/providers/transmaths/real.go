package transmaths

import (
	"context"

	"github.com/BenjaminEHowe/transmaths/internal/transreal"
	"github.com/BenjaminEHowe/transmaths/internal/types"
)

// RealOps handles transreal arithmetic, comparison and root extraction.
// Every arithmetic tool is total: indeterminate input is an answer
// (nullity), never a tool failure. Only malformed parameters fail.
type RealOps struct{}

// GetTools returns transreal tool definitions
func (r *RealOps) GetTools() []types.Tool {
	operand := func(name, desc string) types.Parameter {
		return types.Parameter{Name: name, Type: "string", Description: desc, Required: true}
	}
	return []types.Tool{
		{
			ID:          "transmaths.add",
			Name:        "Transreal Addition",
			Description: "Add two transreal numbers (division by zero safe)",
			Parameters: []types.Parameter{
				operand("a", "First operand (number, fraction, infinity, -infinity or nullity)"),
				operand("b", "Second operand"),
			},
			Returns: "object",
		},
		{
			ID:          "transmaths.subtract",
			Name:        "Transreal Subtraction",
			Description: "Subtract b from a",
			Parameters: []types.Parameter{
				operand("a", "Minuend"),
				operand("b", "Subtrahend"),
			},
			Returns: "object",
		},
		{
			ID:          "transmaths.multiply",
			Name:        "Transreal Multiplication",
			Description: "Multiply two transreal numbers",
			Parameters: []types.Parameter{
				operand("a", "First factor"),
				operand("b", "Second factor"),
			},
			Returns: "object",
		},
		{
			ID:          "transmaths.divide",
			Name:        "Transreal Division",
			Description: "Divide a by b; division by zero yields a signed infinity or nullity",
			Parameters: []types.Parameter{
				operand("a", "Dividend"),
				operand("b", "Divisor"),
			},
			Returns: "object",
		},
		{
			ID:          "transmaths.root",
			Name:        "Transreal Root",
			Description: "Extract the n-th root, exactly when the operand has an exact rational root",
			Parameters: []types.Parameter{
				operand("value", "Operand"),
				{Name: "degree", Type: "number", Description: "Root degree (positive integer)", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "transmaths.power",
			Name:        "Transreal Power",
			Description: "Raise a transreal base to a transreal power",
			Parameters: []types.Parameter{
				operand("base", "Base"),
				operand("exponent", "Exponent"),
			},
			Returns: "object",
		},
		{
			ID:          "transmaths.abs",
			Name:        "Transreal Absolute Value",
			Description: "Absolute value of a transreal number",
			Parameters:  []types.Parameter{operand("value", "Operand")},
			Returns:     "object",
		},
		{
			ID:          "transmaths.floor",
			Name:        "Transreal Floor",
			Description: "Largest integer less than or equal to the operand",
			Parameters:  []types.Parameter{operand("value", "Operand")},
			Returns:     "object",
		},
		{
			ID:          "transmaths.mod",
			Name:        "Transreal Modulo",
			Description: "Remainder of a divided by b",
			Parameters: []types.Parameter{
				operand("a", "Dividend"),
				operand("b", "Divisor"),
			},
			Returns: "object",
		},
		{
			ID:          "transmaths.compare",
			Name:        "Transreal Comparison",
			Description: "Compare two transreal numbers; nullity is unordered against everything",
			Parameters: []types.Parameter{
				operand("a", "First operand"),
				operand("b", "Second operand"),
			},
			Returns: "string",
		},
		{
			ID:          "transmaths.equal",
			Name:        "Transreal Equality",
			Description: "Test equality; nullity equals nothing, including itself",
			Parameters: []types.Parameter{
				operand("a", "First operand"),
				operand("b", "Second operand"),
			},
			Returns: "boolean",
		},
	}
}

func (r *RealOps) binary(params map[string]interface{}, op func(a, b transreal.Number) transreal.Number) (*types.Result, error) {
	a, err := GetOperand(params, "a")
	if err != nil {
		return Failure(err.Error())
	}
	b, err := GetOperand(params, "b")
	if err != nil {
		return Failure(err.Error())
	}
	return Success(numberData(op(a, b)))
}

// Add adds two transreal numbers
func (r *RealOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.binary(params, transreal.Number.Add)
}

// Subtract subtracts b from a
func (r *RealOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.binary(params, transreal.Number.Sub)
}

// Multiply multiplies two transreal numbers
func (r *RealOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.binary(params, transreal.Number.Mul)
}

// Divide divides a by b, totally
func (r *RealOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.binary(params, transreal.Number.Div)
}

// Mod computes the remainder of a divided by b
func (r *RealOps) Mod(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.binary(params, transreal.Number.Mod)
}

// Power raises base to a transreal exponent
func (r *RealOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	base, err := GetOperand(params, "base")
	if err != nil {
		return Failure(err.Error())
	}
	exponent, err := GetOperand(params, "exponent")
	if err != nil {
		return Failure(err.Error())
	}
	return Success(numberData(base.Pow(exponent)))
}

// Root extracts the degree-th root of value
func (r *RealOps) Root(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, err := GetOperand(params, "value")
	if err != nil {
		return Failure(err.Error())
	}
	degree, ok := GetInt(params, "degree")
	if !ok {
		return Failure("degree must be an integer")
	}
	result, err := value.Root(degree)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(numberData(result))
}

// Abs returns the absolute value
func (r *RealOps) Abs(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, err := GetOperand(params, "value")
	if err != nil {
		return Failure(err.Error())
	}
	return Success(numberData(value.Abs()))
}

// Floor rounds down to the nearest integer
func (r *RealOps) Floor(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, err := GetOperand(params, "value")
	if err != nil {
		return Failure(err.Error())
	}
	return Success(numberData(value.Floor()))
}

// Compare orders two transreal numbers
func (r *RealOps) Compare(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, err := GetOperand(params, "a")
	if err != nil {
		return Failure(err.Error())
	}
	b, err := GetOperand(params, "b")
	if err != nil {
		return Failure(err.Error())
	}
	c, ordered := a.Cmp(b)
	relation := "unordered"
	if ordered {
		switch {
		case c < 0:
			relation = "lt"
		case c > 0:
			relation = "gt"
		default:
			relation = "eq"
		}
	}
	return Success(map[string]interface{}{"result": relation})
}

// Equal tests transreal equality
func (r *RealOps) Equal(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, err := GetOperand(params, "a")
	if err != nil {
		return Failure(err.Error())
	}
	b, err := GetOperand(params, "b")
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": a.Equal(b)})
}
