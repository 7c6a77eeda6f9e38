// Package transmaths exposes transreal and transcomplex arithmetic as a
// tool service provider.
package transmaths

import (
	"context"
	"fmt"

	"github.com/BenjaminEHowe/transmaths/internal/types"
)

// Provider implements transmathematics operations
type Provider struct {
	real *RealOps
	cplx *ComplexOps
}

// NewProvider creates a modular transmaths provider
func NewProvider() *Provider {
	return &Provider{
		real: &RealOps{},
		cplx: &ComplexOps{},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.real.GetTools()...)
	tools = append(tools, p.cplx.GetTools()...)

	return types.Service{
		ID:          "transmaths",
		Name:        "Transmathematics Service",
		Description: "Total arithmetic over the transreal numbers (exact rationals, infinities, nullity) and transcomplex construction",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"comparison",
			"roots",
			"powers",
			"transcomplex",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Transreal operations
	case "transmaths.add":
		return p.real.Add(ctx, params, appCtx)
	case "transmaths.subtract":
		return p.real.Subtract(ctx, params, appCtx)
	case "transmaths.multiply":
		return p.real.Multiply(ctx, params, appCtx)
	case "transmaths.divide":
		return p.real.Divide(ctx, params, appCtx)
	case "transmaths.root":
		return p.real.Root(ctx, params, appCtx)
	case "transmaths.power":
		return p.real.Power(ctx, params, appCtx)
	case "transmaths.abs":
		return p.real.Abs(ctx, params, appCtx)
	case "transmaths.floor":
		return p.real.Floor(ctx, params, appCtx)
	case "transmaths.mod":
		return p.real.Mod(ctx, params, appCtx)
	case "transmaths.compare":
		return p.real.Compare(ctx, params, appCtx)
	case "transmaths.equal":
		return p.real.Equal(ctx, params, appCtx)

	// Transcomplex construction
	case "transmaths.complex.fromCartesian":
		return p.cplx.FromCartesian(ctx, params, appCtx)
	case "transmaths.complex.fromPolar":
		return p.cplx.FromPolar(ctx, params, appCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
