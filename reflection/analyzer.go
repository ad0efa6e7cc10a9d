// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflection

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/gogpu/xsl/ast"
)

// ReportType classifies analyzer reports.
type ReportType uint8

const (
	ReportWarning ReportType = iota
	ReportError
)

// Report is a single analyzer diagnostic, attached to a node's source area.
// A missing area is replaced by the sentinel area.
type Report struct {
	Type    ReportType
	Message string
	Area    ast.SourceArea
}

// Options configures the reflection analyzer.
type Options struct {
	// EnableWarnings controls whether warning reports are recorded.
	EnableWarnings bool
}

// DefaultOptions returns the default analyzer options.
func DefaultOptions() Options {
	return Options{EnableWarnings: true}
}

// Analyzer walks a program and populates a ReflectionData record. The
// traversal is read-only: it never mutates the tree. Field-level failures
// are recorded as reports and the traversal continues.
type Analyzer struct {
	target  ast.ShaderTarget
	opts    Options
	data    *ReflectionData
	reports []Report
}

// Reflect analyzes the program for the given shader target and returns the
// populated reflection record together with all reports. The error
// aggregates the error-severity reports and is nil when none occurred.
func Reflect(program *ast.Program, target ast.ShaderTarget, opts Options) (*ReflectionData, []Report, error) {
	a := &Analyzer{
		target: target,
		opts:   opts,
		data:   NewReflectionData(),
	}
	a.visitProgram(program)

	var err error
	for _, r := range a.reports {
		if r.Type == ReportError {
			err = multierr.Append(err, errors.New(r.Message))
		}
	}
	return a.data, a.reports, err
}

func (a *Analyzer) warning(msg string, node ast.Node) {
	if !a.opts.EnableWarnings {
		return
	}
	a.reports = append(a.reports, Report{Type: ReportWarning, Message: msg, Area: nodeArea(node)})
}

func (a *Analyzer) error(msg string, node ast.Node) {
	a.reports = append(a.reports, Report{Type: ReportError, Message: msg, Area: nodeArea(node)})
}

func nodeArea(node ast.Node) ast.SourceArea {
	if node == nil {
		return ast.IgnoreArea
	}
	return node.Pos()
}

// bindingPoint returns the slot of the register matching the active shader
// target, or -1 when no register applies.
func (a *Analyzer) bindingPoint(registers []*ast.Register) int {
	if r := ast.GetForTarget(registers, a.target); r != nil {
		return r.Slot
	}
	return -1
}

func (a *Analyzer) evalInt(expr ast.Expr) int {
	return int(ast.EvaluateOrDefault(expr, ast.IntVariant(0)).ToInt())
}

func (a *Analyzer) evalFloat(expr ast.Expr) float32 {
	return float32(ast.EvaluateOrDefault(expr, ast.RealVariant(0)).ToReal())
}

/* ----- Traversal ----- */

func (a *Analyzer) visitProgram(program *ast.Program) {
	for _, stmt := range program.GlobalStmts {
		a.visitStmt(stmt)
	}
	for _, node := range program.DisabledAST {
		if stmt, ok := node.(ast.Stmt); ok {
			a.visitStmt(stmt)
		}
	}

	entryPoint := program.EntryPointRef
	if entryPoint == nil {
		return
	}

	for _, v := range entryPoint.InputSemantics.VarDeclRefs {
		a.data.InputAttributes = append(a.data.InputAttributes, BindingSlot{Ident: v.Ident, Location: v.Semantic.Index()})
	}
	for _, v := range entryPoint.InputSemantics.VarDeclRefsSV {
		a.data.InputAttributes = append(a.data.InputAttributes, BindingSlot{Ident: v.Semantic.String(), Location: v.Semantic.Index()})
	}

	for _, v := range entryPoint.OutputSemantics.VarDeclRefs {
		a.data.OutputAttributes = append(a.data.OutputAttributes, BindingSlot{Ident: v.Ident, Location: v.Semantic.Index()})
	}
	for _, v := range entryPoint.OutputSemantics.VarDeclRefsSV {
		a.data.OutputAttributes = append(a.data.OutputAttributes, BindingSlot{Ident: v.Semantic.String(), Location: v.Semantic.Index()})
	}

	if entryPoint.Semantic.IsSystemValue() {
		a.data.OutputAttributes = append(a.data.OutputAttributes, BindingSlot{
			Ident:    entryPoint.Semantic.String(),
			Location: entryPoint.Semantic.Index(),
		})
	}
}

func (a *Analyzer) visitStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.SamplerDeclStmt:
		for _, decl := range s.SamplerDecls {
			a.visitSamplerDecl(decl)
		}
	case *ast.StateDecl:
		a.visitStateDecl(s)
	case *ast.FunctionDeclStmt:
		a.visitFunctionDecl(s.FunctionDecl, s.Attribs)
	case *ast.UniformBufferDecl:
		a.visitUniformBufferDecl(s)
	case *ast.BufferDeclStmt:
		a.visitBufferDeclStmt(s)
	}
}

func (a *Analyzer) visitSamplerDecl(decl *ast.SamplerDecl) {
	state := NewSamplerState()
	for _, value := range decl.SamplerValues {
		a.reflectSamplerValue(value, &state)
		state.IsNonDefault = true
	}
	state.Alias = decl.Alias
	a.data.SamplerStates[decl.Ident] = state

	a.data.Uniforms = append(a.data.Uniforms, NewUniform(decl.Ident, UniformTypeSampler))
}

func (a *Analyzer) visitStateDecl(decl *ast.StateDecl) {
	if decl.Initializer == nil {
		return
	}
	switch decl.GetStateType() {
	case ast.StateTypeRasterizer:
		for _, value := range decl.Initializer.Values {
			a.reflectRasterizerStateValue(value, &a.data.RasterizerState)
		}
	case ast.StateTypeDepth:
		for _, value := range decl.Initializer.Values {
			a.reflectDepthStateValue(value, &a.data.DepthState)
		}
	case ast.StateTypeStencil:
		for _, value := range decl.Initializer.Values {
			a.reflectStencilStateValue(value, &a.data.StencilState)
		}
	case ast.StateTypeBlend:
		blendTargetIdx := 0
		for _, value := range decl.Initializer.Values {
			a.reflectBlendStateValue(value, &a.data.BlendState, &blendTargetIdx)
		}
	case ast.StateTypeOptions:
		for _, value := range decl.Initializer.Values {
			a.reflectOptionsStateValue(value, &a.data.GlobalOptions)
		}
	}
}

func (a *Analyzer) visitFunctionDecl(decl *ast.FunctionDecl, attribs []*ast.Attribute) {
	if decl == nil {
		return
	}
	if decl.Flags.Has(ast.FlagEntryPoint) {
		a.reflectAttributes(attribs)
	}

	fn := Function{Ident: decl.Ident}

	switch {
	case decl.ReturnType == nil || decl.ReturnType.TypeDenoter == nil,
		ast.IsVoid(decl.ReturnType.TypeDenoter):
		fn.Void = true
	default:
		if base := ast.BaseDenoter(decl.ReturnType.TypeDenoter); base != nil {
			fn.ReturnType = base.DataType
		}
	}

	for _, entry := range decl.Parameters {
		if len(entry.VarDecls) == 0 {
			continue
		}
		varDecl := entry.VarDecls[0]

		param := Parameter{Ident: varDecl.Ident}
		if spec := entry.TypeSpecifier; spec != nil && spec.TypeDenoter != nil {
			if base := ast.BaseDenoter(spec.TypeDenoter); base != nil {
				param.Type = base.DataType
			}
			if spec.IsInput() {
				param.Flags |= ParameterIn
			}
			if spec.IsOutput() {
				param.Flags |= ParameterOut
			}
		}
		fn.Parameters = append(fn.Parameters, param)
	}

	a.data.Functions = append(a.data.Functions, fn)
}

func (a *Analyzer) visitUniformBufferDecl(decl *ast.UniformBufferDecl) {
	a.data.ConstantBuffers = append(a.data.ConstantBuffers, BindingSlot{
		Ident:    decl.Ident,
		Location: a.bindingPoint(decl.SlotRegisters),
	})

	block := NewUniform(decl.Ident, UniformTypeUniformBuffer)
	if decl.ExtModifiers.Has(ast.ExtModifierInternal) {
		block.Flags |= UniformFlagInternal
	}
	a.data.Uniforms = append(a.data.Uniforms, block)

	blockIdx := len(a.data.ConstantBuffers) - 1

	for _, stmt := range decl.Members {
		if stmt.TypeSpecifier == nil || stmt.TypeSpecifier.TypeDenoter == nil {
			continue
		}

		typ := UniformTypeVariable
		var baseDenoter *ast.BaseTypeDenoter
		if ast.StructDenoter(stmt.TypeSpecifier.TypeDenoter) != nil {
			typ = UniformTypeStruct
		} else {
			baseDenoter = ast.BaseDenoter(stmt.TypeSpecifier.TypeDenoter)
		}

		for _, varDecl := range stmt.VarDecls {
			uniform := NewUniform(varDecl.Ident, typ)
			uniform.UniformBlock = blockIdx
			if baseDenoter != nil {
				uniform.BaseType = int(baseDenoter.DataType)

				if baseDenoter.ExtModifiers.Has(ast.ExtModifierInternal) {
					uniform.Flags |= UniformFlagInternal
				}
				if baseDenoter.ExtModifiers.Has(ast.ExtModifierColor) {
					uniform.Flags |= UniformFlagColor
				}
				uniform.SpriteUVRef = baseDenoter.SpriteUVRef

				if varDecl.DefaultValue.Available {
					uniform.DefaultValue = len(a.data.DefaultValues)
					a.data.DefaultValues = append(a.data.DefaultValues, DefaultValue{
						Boolean: varDecl.DefaultValue.Boolean,
						Integer: varDecl.DefaultValue.Integer,
						Matrix:  varDecl.DefaultValue.Matrix,
						IMatrix: varDecl.DefaultValue.IMatrix,
						Handle:  varDecl.DefaultValue.Handle,
					})
				}
			}
			a.data.Uniforms = append(a.data.Uniforms, uniform)
		}
	}
}

func (a *Analyzer) visitBufferDeclStmt(stmt *ast.BufferDeclStmt) {
	if stmt.TypeDenoter == nil {
		return
	}
	bufferType := stmt.TypeDenoter.BufferType

	for _, decl := range stmt.BufferDecls {
		slot := BindingSlot{Ident: decl.Ident, Location: a.bindingPoint(decl.SlotRegisters)}

		if ast.IsStorageBufferType(bufferType) {
			a.data.StorageBuffers = append(a.data.StorageBuffers, slot)
		} else {
			a.data.Textures = append(a.data.Textures, slot)
		}

		uniform := NewUniform(decl.Ident, UniformTypeBuffer)
		uniform.BaseType = int(bufferType)

		if stmt.TypeDenoter.ExtModifiers.Has(ast.ExtModifierInternal) {
			uniform.Flags |= UniformFlagInternal
		}
		if stmt.TypeDenoter.ExtModifiers.Has(ast.ExtModifierColor) {
			uniform.Flags |= UniformFlagColor
		}

		if decl.DefaultValue.Available {
			uniform.DefaultValue = len(a.data.DefaultValues)
			a.data.DefaultValues = append(a.data.DefaultValues, DefaultValue{Handle: decl.DefaultValue.Handle})
		}

		a.data.Uniforms = append(a.data.Uniforms, uniform)
	}
}

/* ----- Attributes ----- */

func (a *Analyzer) reflectAttributes(attribs []*ast.Attribute) {
	for _, attr := range attribs {
		if attr.Type == ast.AttributeTypeNumThreads {
			a.reflectAttributesNumThreads(attr)
		}
	}
}

func (a *Analyzer) reflectAttributesNumThreads(attr *ast.Attribute) {
	if a.target == ast.TargetComputeShader && len(attr.Arguments) == 3 {
		a.data.NumThreads.X = a.evalInt(attr.Arguments[0])
		a.data.NumThreads.Y = a.evalInt(attr.Arguments[1])
		a.data.NumThreads.Z = a.evalInt(attr.Arguments[2])
	}
}
