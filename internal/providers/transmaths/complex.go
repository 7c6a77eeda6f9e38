package transmaths

import (
	"context"

	"github.com/BenjaminEHowe/transmaths/internal/transcomplex"
	"github.com/BenjaminEHowe/transmaths/internal/types"
)

// ComplexOps handles transcomplex construction. Arithmetic on transcomplex
// numbers is not implemented upstream and is not exposed here.
type ComplexOps struct{}

// GetTools returns transcomplex tool definitions
func (c *ComplexOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "transmaths.complex.fromCartesian",
			Name:        "Transcomplex From Cartesian",
			Description: "Build a polar transcomplex number from real and imaginary parts",
			Parameters: []types.Parameter{
				{Name: "real", Type: "string", Description: "Real part", Required: true},
				{Name: "imaginary", Type: "string", Description: "Imaginary part", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "transmaths.complex.fromPolar",
			Name:        "Transcomplex From Polar",
			Description: "Build a transcomplex number from magnitude and angle, canonicalizing nullity",
			Parameters: []types.Parameter{
				{Name: "magnitude", Type: "string", Description: "Magnitude", Required: true},
				{Name: "angle", Type: "string", Description: "Angle in radians", Required: true},
			},
			Returns: "object",
		},
	}
}

func complexData(n transcomplex.Number) map[string]interface{} {
	magnitude, angle := n.Polar()
	return map[string]interface{}{
		"result":    n.String(),
		"magnitude": magnitude.String(),
		"angle":     angle.String(),
	}
}

// FromCartesian builds a transcomplex number from a Cartesian pair
func (c *ComplexOps) FromCartesian(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	real, err := GetOperand(params, "real")
	if err != nil {
		return Failure(err.Error())
	}
	imag, err := GetOperand(params, "imaginary")
	if err != nil {
		return Failure(err.Error())
	}
	return Success(complexData(transcomplex.FromCartesian(real, imag)))
}

// FromPolar builds a transcomplex number from a polar pair
func (c *ComplexOps) FromPolar(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	magnitude, err := GetOperand(params, "magnitude")
	if err != nil {
		return Failure(err.Error())
	}
	angle, err := GetOperand(params, "angle")
	if err != nil {
		return Failure(err.Error())
	}
	return Success(complexData(transcomplex.FromPolar(magnitude, angle)))
}
