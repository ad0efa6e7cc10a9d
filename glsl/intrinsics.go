// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"github.com/gogpu/xsl/ast"
)

func (c *converter) convertIntrinsicCall(e *ast.CallExpr) {
	switch e.Intrinsic {
	case ast.IntrinsicSaturate:
		c.convertIntrinsicCallSaturate(e)
	case ast.IntrinsicTextureSample2, ast.IntrinsicTextureSample3,
		ast.IntrinsicTextureSample4, ast.IntrinsicTextureSample5:
		c.convertIntrinsicCallTextureSample(e)
	case ast.IntrinsicTextureSampleLevel3, ast.IntrinsicTextureSampleLevel4,
		ast.IntrinsicTextureSampleLevel5:
		c.convertIntrinsicCallTextureSampleLevel(e)
	case ast.IntrinsicInterlockedAdd, ast.IntrinsicInterlockedAnd,
		ast.IntrinsicInterlockedOr, ast.IntrinsicInterlockedXor,
		ast.IntrinsicInterlockedMin, ast.IntrinsicInterlockedMax,
		ast.IntrinsicInterlockedCompareExchange, ast.IntrinsicInterlockedExchange:
		c.convertIntrinsicCallImageAtomic(e)
	}
}

// convertIntrinsicCallSaturate rewrites "saturate(x)" to
// "clamp(x, genType(0), genType(1))" typed to the scalar or vector of x.
func (c *converter) convertIntrinsicCallSaturate(e *ast.CallExpr) {
	if len(e.Arguments) != 1 {
		c.fail(ErrInvalidIntrinsicArgCount, "invalid number of arguments for intrinsic \"saturate\"", e)
		return
	}
	argType := ast.BaseDenoter(e.Arguments[0].GetTypeDenoter())
	if argType == nil {
		c.fail(ErrInvalidIntrinsicArgType, "invalid argument type for intrinsic \"saturate\"", e.Arguments[0])
		return
	}

	e.Intrinsic = ast.IntrinsicClamp
	e.Ident = "clamp"
	e.Arguments = append(e.Arguments,
		makeLiteralCast(argType, "0"),
		makeLiteralCast(argType, "1"),
	)
}

// makeLiteralCast builds a cast of an integer literal to the given base
// type.
func makeLiteralCast(target *ast.BaseTypeDenoter, value string) ast.Expr {
	return &ast.CastExpr{
		TypeSpecifier: &ast.TypeSpecifier{TypeDenoter: &ast.BaseTypeDenoter{DataType: target.DataType}},
		Expr:          &ast.LiteralExpr{DataType: ast.DataTypeInt, Value: value},
	}
}

// fetchBufferDecl resolves an expression to the buffer declaration it
// references, through brackets and array subscripts.
func fetchBufferDecl(expr ast.Expr) *ast.BufferDecl {
	switch e := ast.NonBracketExpr(expr).(type) {
	case *ast.ObjectExpr:
		if decl, ok := e.SymbolRef.(*ast.BufferDecl); ok {
			return decl
		}
	case *ast.ArrayExpr:
		return fetchBufferDecl(e.PrefixExpr)
	}
	return nil
}

// textureVectorSize returns the coordinate vector size for the texture
// object a sample intrinsic is called on, or 0 when it cannot be resolved.
func textureVectorSize(e *ast.CallExpr) int {
	// After lowering the texture object is the first argument; before, it
	// is the call prefix.
	if e.PrefixExpr != nil {
		if decl := fetchBufferDecl(e.PrefixExpr); decl != nil {
			return ast.GetBufferTypeTextureDim(decl.GetBufferType())
		}
	}
	if len(e.Arguments) > 0 {
		if decl := fetchBufferDecl(e.Arguments[0]); decl != nil {
			return ast.GetBufferTypeTextureDim(decl.GetBufferType())
		}
	}
	return 0
}

// castArgIfRequired wraps the argument in a cast when its type differs from
// the target data type.
func castArgIfRequired(slot *ast.Expr, target ast.DataType) {
	if base := ast.BaseDenoter((*slot).GetTypeDenoter()); base != nil && base.DataType == target {
		return
	}
	*slot = &ast.CastExpr{
		TypeSpecifier: &ast.TypeSpecifier{TypeDenoter: &ast.BaseTypeDenoter{DataType: target}},
		Expr:          *slot,
	}
}

// convertIntrinsicCallTextureSample coerces the location argument to
// float<N> and the offset argument to int<N>, where N derives from the
// texture kind.
func (c *converter) convertIntrinsicCallTextureSample(e *ast.CallExpr) {
	vectorSize := textureVectorSize(e)
	if vectorSize == 0 {
		return
	}
	args := e.Arguments
	if len(args) >= 2 {
		castArgIfRequired(&args[1], ast.VectorDataType(ast.DataTypeFloat, vectorSize))
	}
	if len(args) >= 3 {
		castArgIfRequired(&args[2], ast.VectorDataType(ast.DataTypeInt, vectorSize))
	}
}

// convertIntrinsicCallTextureSampleLevel is like the sample conversion, but
// the offset argument sits behind the LOD argument.
func (c *converter) convertIntrinsicCallTextureSampleLevel(e *ast.CallExpr) {
	vectorSize := textureVectorSize(e)
	if vectorSize == 0 {
		return
	}
	args := e.Arguments
	if len(args) >= 2 {
		castArgIfRequired(&args[1], ast.VectorDataType(ast.DataTypeFloat, vectorSize))
	}
	if len(args) >= 4 {
		castArgIfRequired(&args[3], ast.VectorDataType(ast.DataTypeInt, vectorSize))
	}
}

// convertIntrinsicCallImageAtomic remaps interlocked intrinsics on
// read/write textures to image atomic intrinsics, promoting the subscript
// indices into an explicit coordinate argument.
func (c *converter) convertIntrinsicCallImageAtomic(e *ast.CallExpr) {
	if len(e.Arguments) < 2 {
		return
	}

	if arrayExpr, ok := e.Arguments[0].(*ast.ArrayExpr); ok {
		bufferDen := ast.BufferDenoter(arrayExpr.PrefixExpr.GetTypeDenoter())
		if bufferDen == nil || !ast.IsRWTextureBufferType(bufferDen.BufferType) {
			return
		}
		e.Intrinsic = ast.InterlockedToImageAtomicIntrinsic(e.Intrinsic)

		// The last subscript index becomes the coordinate argument.
		last := arrayExpr.Indices[len(arrayExpr.Indices)-1]
		rest := append([]ast.Expr{e.Arguments[0], last}, e.Arguments[1:]...)
		e.Arguments = rest

		arrayExpr.Indices = arrayExpr.Indices[:len(arrayExpr.Indices)-1]
		if len(arrayExpr.Indices) == 0 {
			e.Arguments[0] = arrayExpr.PrefixExpr
		} else {
			arrayExpr.ResetTypeDenoter()
		}
		return
	}

	if bufferDen := ast.BufferDenoter(e.Arguments[0].GetTypeDenoter()); bufferDen != nil {
		if ast.IsRWTextureBufferType(bufferDen.BufferType) {
			e.Intrinsic = ast.InterlockedToImageAtomicIntrinsic(e.Intrinsic)
		}
	}
}

// makeTextureSamplerBindingCall builds the combined texture/sampler
// constructor VKSL uses in place of a sampler-state argument.
func (c *converter) makeTextureSamplerBindingCall(texture, sampler ast.Expr) ast.Expr {
	ident := "sampler2D"
	if decl := fetchBufferDecl(texture); decl != nil {
		if name := combinedSamplerName(ast.TextureTypeToSamplerType(decl.GetBufferType())); name != "" {
			ident = name
		}
	}
	return &ast.CallExpr{
		Ident:     ident,
		Arguments: []ast.Expr{texture, sampler},
	}
}

// combinedSamplerName returns the GLSL combined sampler type name.
func combinedSamplerName(t ast.SamplerType) string {
	switch t {
	case ast.SamplerType1D:
		return "sampler1D"
	case ast.SamplerType1DArray:
		return "sampler1DArray"
	case ast.SamplerType2D:
		return "sampler2D"
	case ast.SamplerType2DArray:
		return "sampler2DArray"
	case ast.SamplerType2DMS:
		return "sampler2DMS"
	case ast.SamplerType2DMSArray:
		return "sampler2DMSArray"
	case ast.SamplerType3D:
		return "sampler3D"
	case ast.SamplerTypeCube:
		return "samplerCube"
	case ast.SamplerTypeCubeArray:
		return "samplerCubeArray"
	default:
		return ""
	}
}
