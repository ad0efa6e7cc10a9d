// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflection

import (
	"fmt"

	"github.com/gogpu/xsl/ast"
)

// Structural-mismatch messages for the state DSL.
const (
	msgExpectedLiteral          = "expected literal expression in state block"
	msgExpectedStateKeyword     = "expected state keyword in state block"
	msgExpectedStateInitializer = "expected state initializer block"
)

func msgUnknownStateKeyword(context string) string {
	return fmt.Sprintf("unknown state keyword in %s block", context)
}

// literalBool interprets a state value as a boolean literal.
func (a *Analyzer) literalBool(value *ast.StateValue, out *bool) {
	if lit, ok := value.Value.(*ast.LiteralExpr); ok {
		*out = ast.ParseVariant(lit.Value).ToBool()
	} else {
		a.error(msgExpectedLiteral, value)
	}
}

// literalInt interprets a state value as an integer literal.
func (a *Analyzer) literalInt(value *ast.StateValue, out func(int64)) {
	if lit, ok := value.Value.(*ast.LiteralExpr); ok {
		out(ast.ParseVariant(lit.Value).ToInt())
	} else {
		a.error(msgExpectedLiteral, value)
	}
}

// literalFloat interprets a state value as a real literal.
func (a *Analyzer) literalFloat(value *ast.StateValue, out *float32) {
	if lit, ok := value.Value.(*ast.LiteralExpr); ok {
		*out = float32(ast.ParseVariant(lit.Value).ToReal())
	} else {
		a.error(msgExpectedLiteral, value)
	}
}

// enumKeyword interprets a state value as an enumeration literal and hands
// the identifier to resolve. A structural mismatch is an error.
func (a *Analyzer) enumKeyword(value *ast.StateValue, resolve func(ident string)) {
	if obj, ok := value.Value.(*ast.ObjectExpr); ok {
		resolve(obj.Ident)
	} else {
		a.error(msgExpectedStateKeyword, value)
	}
}

// nested interprets a state value as a nested state initializer.
func (a *Analyzer) nested(value *ast.StateValue, each func(*ast.StateValue)) {
	if init, ok := value.Value.(*ast.StateInitializerExpr); ok {
		for _, sub := range init.Values {
			each(sub)
		}
	} else {
		a.error(msgExpectedStateInitializer, value)
	}
}

/* ----- Sampler block ----- */

func (a *Analyzer) reflectSamplerValue(value *ast.SamplerValue, state *SamplerState) {
	name := value.Name

	switch v := value.Value.(type) {
	case *ast.LiteralExpr:
		lit := ast.ParseVariant(v.Value)
		switch name {
		case "MipLODBias":
			state.MipLODBias = float32(lit.ToReal())
		case "MaxAnisotropy":
			state.MaxAnisotropy = uint32(lit.ToInt())
		case "MinLOD":
			state.MinLOD = float32(lit.ToReal())
		case "MaxLOD":
			state.MaxLOD = float32(lit.ToReal())
		default:
			a.warning(msgUnknownStateKeyword("sampler"), value)
		}
	case *ast.ObjectExpr:
		switch name {
		case "Filter":
			if f, err := StringToFilter(v.Ident); err != nil {
				a.warning(err.Error(), value)
			} else {
				state.FilterMin = f
				state.FilterMax = f
				state.FilterMip = f
			}
		case "AddressU":
			a.samplerAddressMode(v.Ident, &state.AddressU, value)
		case "AddressV":
			a.samplerAddressMode(v.Ident, &state.AddressV, value)
		case "AddressW":
			a.samplerAddressMode(v.Ident, &state.AddressW, value)
		case "ComparisonFunc":
			if f, err := StringToCompareFunc(v.Ident); err != nil {
				a.warning(err.Error(), value)
			} else {
				state.ComparisonFunc = f
			}
		default:
			a.warning(msgUnknownStateKeyword("sampler"), value)
		}
	default:
		if name == "BorderColor" {
			a.reflectBorderColor(value, state)
		} else {
			a.warning(msgUnknownStateKeyword("sampler"), value)
		}
	}
}

// samplerAddressMode resolves an address mode name; lookup misses are
// warnings for samplers and the default stands.
func (a *Analyzer) samplerAddressMode(ident string, out *TextureAddressMode, node ast.Node) {
	if m, err := StringToTexAddressMode(ident); err != nil {
		a.warning(err.Error(), node)
	} else {
		*out = m
	}
}

// reflectBorderColor interprets a BorderColor value as a 4-vector of
// constant-evaluated floats. A scalar cast broadcasts to all components.
func (a *Analyzer) reflectBorderColor(value *ast.SamplerValue, state *SamplerState) {
	switch v := value.Value.(type) {
	case *ast.CallExpr:
		if t := ast.BaseDenoter(v.GetTypeDenoter()); t != nil && ast.IsVectorType(t.DataType) && len(v.Arguments) == 4 {
			for i := 0; i < 4; i++ {
				state.BorderColor[i] = a.evalFloat(v.Arguments[i])
			}
		} else {
			a.warning("failed to initialize sampler value BorderColor: invalid type or argument count", value.Value)
		}
	case *ast.CastExpr:
		broadcast := a.evalFloat(v.Expr)
		for i := 0; i < 4; i++ {
			state.BorderColor[i] = broadcast
		}
	case *ast.InitializerExpr:
		if len(v.Exprs) == 4 {
			for i := 0; i < 4; i++ {
				state.BorderColor[i] = a.evalFloat(v.Exprs[i])
			}
		} else {
			a.warning("failed to initialize sampler value BorderColor: invalid argument count", value.Value)
		}
	}
}

/* ----- Rasterizer block ----- */

func (a *Analyzer) reflectRasterizerStateValue(value *ast.StateValue, state *RasterizerState) {
	switch value.Name {
	case "scissor":
		a.literalBool(value, &state.ScissorEnable)
	case "multisample":
		a.literalBool(value, &state.MultisampleEnable)
	case "lineaa":
		a.literalBool(value, &state.AntialiasedLineEnable)
	case "fill":
		a.enumKeyword(value, func(ident string) {
			if m, err := StringToFillMode(ident); err != nil {
				a.error(err.Error(), value)
			} else {
				state.FillMode = m
			}
		})
	case "cull":
		a.enumKeyword(value, func(ident string) {
			if m, err := StringToCullMode(ident); err != nil {
				a.error(err.Error(), value)
			} else {
				state.CullMode = m
			}
		})
	default:
		a.error(msgUnknownStateKeyword("rasterizer"), value)
	}
}

/* ----- Depth block ----- */

func (a *Analyzer) reflectDepthStateValue(value *ast.StateValue, state *DepthState) {
	switch value.Name {
	case "read":
		a.literalBool(value, &state.ReadEnable)
	case "write":
		a.literalBool(value, &state.WriteEnable)
	case "compare":
		a.enumKeyword(value, func(ident string) {
			if f, err := StringToCompareFunc(ident); err != nil {
				a.error(err.Error(), value)
			} else {
				state.CompareFunc = f
			}
		})
	case "bias":
		a.literalFloat(value, &state.DepthBias)
	case "scaledBias":
		a.literalFloat(value, &state.ScaledDepthBias)
	case "clip":
		a.literalBool(value, &state.DepthClip)
	default:
		a.error(msgUnknownStateKeyword("depth"), value)
	}
}

/* ----- Stencil block ----- */

func (a *Analyzer) reflectStencilStateValue(value *ast.StateValue, state *StencilState) {
	switch value.Name {
	case "enabled":
		a.literalBool(value, &state.Enabled)
	case "reference":
		a.literalInt(value, func(v int64) { state.Reference = int32(v) })
	case "readmask":
		a.literalInt(value, func(v int64) { state.ReadMask = uint8(v) })
	case "writemask":
		a.literalInt(value, func(v int64) { state.WriteMask = uint8(v) })
	case "back":
		a.nested(value, func(sub *ast.StateValue) {
			a.reflectStencilOperationValue(sub, &state.Back)
		})
	case "front":
		a.nested(value, func(sub *ast.StateValue) {
			a.reflectStencilOperationValue(sub, &state.Front)
		})
	default:
		a.error(msgUnknownStateKeyword("stencil"), value)
	}
}

func (a *Analyzer) reflectStencilOperationValue(value *ast.StateValue, op *StencilOperation) {
	a.enumKeyword(value, func(ident string) {
		switch value.Name {
		case "fail":
			a.stencilOp(ident, &op.Fail, value)
		case "zfail":
			a.stencilOp(ident, &op.ZFail, value)
		case "pass":
			a.stencilOp(ident, &op.Pass, value)
		case "compare":
			if f, err := StringToCompareFunc(ident); err != nil {
				a.error(err.Error(), value)
			} else {
				op.CompareFunc = f
			}
		default:
			a.error(msgUnknownStateKeyword("stencil operation"), value)
		}
	})
}

func (a *Analyzer) stencilOp(ident string, out *StencilOpType, node ast.Node) {
	if op, err := StringToStencilOpType(ident); err != nil {
		a.error(err.Error(), node)
	} else {
		*out = op
	}
}

/* ----- Blend block ----- */

func (a *Analyzer) reflectBlendStateValue(value *ast.StateValue, state *BlendState, blendTargetIdx *int) {
	switch value.Name {
	case "dither":
		a.literalBool(value, &state.AlphaToCoverage)
	case "independant":
		a.literalBool(value, &state.IndependantBlend)
	case "target":
		init, ok := value.Value.(*ast.StateInitializerExpr)
		if !ok {
			a.error(msgExpectedStateInitializer, value)
			return
		}

		// An explicit index inside the target block overrides the implicit
		// counter; the counter resumes after it.
		for _, sub := range init.Values {
			if sub.Name != "index" {
				continue
			}
			if lit, ok := sub.Value.(*ast.LiteralExpr); ok {
				*blendTargetIdx = int(ast.ParseVariant(lit.Value).ToInt())
			} else {
				a.error(msgExpectedLiteral, sub.Value)
			}
		}

		if *blendTargetIdx < MaxNumRenderTargets {
			for _, sub := range init.Values {
				a.reflectBlendStateTargetValue(sub, &state.Targets[*blendTargetIdx])
			}
			*blendTargetIdx++
		}
	default:
		a.error(msgUnknownStateKeyword("blend"), value)
	}
}

func (a *Analyzer) reflectBlendStateTargetValue(value *ast.StateValue, target *BlendStateTarget) {
	switch value.Name {
	case "enabled":
		a.literalBool(value, &target.Enabled)
	case "writemask":
		a.literalInt(value, func(v int64) { target.WriteMask = int8(v) })
	case "color":
		a.nested(value, func(sub *ast.StateValue) {
			a.reflectBlendOperationValue(sub, &target.ColorOp)
		})
	case "alpha":
		a.nested(value, func(sub *ast.StateValue) {
			a.reflectBlendOperationValue(sub, &target.AlphaOp)
		})
	case "index":
		// Consumed by the enclosing blend dispatcher.
	default:
		a.error(msgUnknownStateKeyword("blend target"), value)
	}
}

func (a *Analyzer) reflectBlendOperationValue(value *ast.StateValue, op *BlendOperation) {
	a.enumKeyword(value, func(ident string) {
		switch value.Name {
		case "source":
			a.blendFactor(ident, &op.Source, value)
		case "dest":
			a.blendFactor(ident, &op.Destination, value)
		case "op":
			if o, err := StringToBlendOpType(ident); err != nil {
				a.error(err.Error(), value)
			} else {
				op.Operation = o
			}
		default:
			a.error(msgUnknownStateKeyword("blend operation"), value)
		}
	})
}

func (a *Analyzer) blendFactor(ident string, out *BlendFactor, node ast.Node) {
	if f, err := StringToBlendFactor(ident); err != nil {
		a.error(err.Error(), node)
	} else {
		*out = f
	}
}

/* ----- Options block ----- */

func (a *Analyzer) reflectOptionsStateValue(value *ast.StateValue, options *GlobalOptions) {
	switch value.Name {
	case "separable":
		a.literalBool(value, &options.Separable)
	case "priority":
		a.literalInt(value, func(v int64) { options.Priority = int32(v) })
	case "transparent":
		a.literalBool(value, &options.Transparent)
	case "forward":
		a.literalBool(value, &options.Forward)
	case "sort":
		a.enumKeyword(value, func(ident string) {
			if m, err := StringToSortMode(ident); err != nil {
				a.error(err.Error(), value)
			} else {
				options.SortMode = m
			}
		})
	default:
		a.error(msgUnknownStateKeyword("options"), value)
	}
}
