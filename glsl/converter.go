// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strconv"

	"github.com/gogpu/xsl/ast"
)

// NameMangling configures the identifier prefixes the converter uses when
// renaming declarations.
type NameMangling struct {
	// InputPrefix is prepended to shader-input semantic identifiers.
	InputPrefix string

	// OutputPrefix is prepended to shader-output semantic identifiers.
	OutputPrefix string

	// ReservedWordPrefix is prepended when renaming against reserved words
	// or the "gl_" prefix.
	ReservedWordPrefix string

	// TemporaryPrefix is prepended when renaming local collisions and
	// anonymous structures.
	TemporaryPrefix string

	// NamespacePrefix is prepended to the synthetic self parameter.
	NamespacePrefix string

	// UseAlwaysSemantics lets entry-point I/O take the raw semantic name
	// where the stage allows it (vertex inputs, fragment outputs).
	UseAlwaysSemantics bool
}

// DefaultNameMangling returns the default mangling prefixes.
func DefaultNameMangling() NameMangling {
	return NameMangling{
		InputPrefix:        "xsv_",
		OutputPrefix:       "xsv_",
		ReservedWordPrefix: "xsr_",
		TemporaryPrefix:    "xst_",
		NamespacePrefix:    "xsn_",
	}
}

// Options configures the converter.
type Options struct {
	// Obfuscate replaces every renameable identifier with a unique numeric
	// token.
	Obfuscate bool

	// UnrollArrayInitializers replaces array initializers by per-element
	// assignments.
	UnrollArrayInitializers bool
}

// DefaultOptions returns the default converter options.
func DefaultOptions() Options {
	return Options{}
}

// converter is the mutable walker context of one conversion run.
type converter struct {
	program  *ast.Program
	target   ast.ShaderTarget
	mangling NameMangling
	opts     Options
	isVKSL   bool

	scopes         []map[string]struct{}
	globalReserved []ast.Decl

	structStack    []*ast.StructDecl
	funcStack      []*ast.FunctionDecl
	selfParamStack []*ast.VarDecl

	anonymCounter      int
	obfuscationCounter int

	err error
}

// Convert lowers the program toward the given GLSL or VKSL output version,
// mutating it in place. It returns the first irrecoverable error.
func Convert(program *ast.Program, target ast.ShaderTarget, mangling NameMangling, opts Options, version OutputVersion) error {
	exprFlags := ConvertAll
	if version.Has420Pack() {
		// The 420pack extension handles vector subscripts on scalars and
		// brace initializers natively.
		exprFlags &^= ConvertVectorSubscripts | ConvertInitializer
	}
	ConvertExpressions(program, exprFlags)

	c := &converter{
		program:  program,
		target:   target,
		mangling: mangling,
		opts:     opts,
		isVKSL:   version.IsVKSL(),
	}
	c.visitProgram(program)
	if c.err != nil {
		return c.err
	}

	// Function names convert after the main pass, since function owner
	// structures may have been renamed as well.
	convertFunctionNames(program, mangling, func(lhs, rhs *ast.FunctionDecl) bool {
		return lhs.EqualsSignature(rhs, ast.IgnoreGenericSubType)
	})
	return nil
}

func (c *converter) fail(kind ErrorKind, message string, node ast.Node) {
	if c.err == nil {
		c.err = NewError(kind, message, node)
	}
}

/* ----- Scope handling ----- */

func (c *converter) openScope() {
	c.scopes = append(c.scopes, make(map[string]struct{}))
}

func (c *converter) closeScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

func (c *converter) register(ident string) {
	if len(c.scopes) > 0 {
		c.scopes[len(c.scopes)-1][ident] = struct{}{}
	}
}

func (c *converter) fetchFromCurrentScope(ident string) bool {
	if len(c.scopes) == 0 {
		return false
	}
	_, ok := c.scopes[len(c.scopes)-1][ident]
	return ok
}

func (c *converter) insideStructDecl() bool { return len(c.structStack) > 0 }

func (c *converter) activeStructDecl() *ast.StructDecl {
	if len(c.structStack) == 0 {
		return nil
	}
	return c.structStack[len(c.structStack)-1]
}

func (c *converter) insideEntryPoint() bool {
	return len(c.funcStack) > 0 && c.funcStack[len(c.funcStack)-1].Flags.Has(ast.FlagEntryPoint)
}

func (c *converter) activeSelfParam() *ast.VarDecl {
	if len(c.selfParamStack) == 0 {
		return nil
	}
	return c.selfParamStack[len(c.selfParamStack)-1]
}

/* ----- Renaming ----- */

// registerDeclIdent renames the declaration if required and registers its
// final identifier in the current scope (or the global reserved list).
func (c *converter) registerDeclIdent(decl ast.Decl, global bool) {
	if c.mustRenameDeclIdent(decl) {
		decl.SetName(c.mangling.TemporaryPrefix + decl.Name())
	}
	c.renameReservedKeyword(decl)

	if global {
		c.globalReserved = append(c.globalReserved, decl)
	} else {
		c.register(decl.Name())
	}
}

func (c *converter) registerGlobalDeclIdents(varDecls []*ast.VarDecl) {
	for _, v := range varDecls {
		c.registerDeclIdent(v, true)
	}
}

// mustRenameDeclIdent reports whether a declaration's identifier collides
// with a globally reserved entry-point identifier (and is not that
// identifier), or with a declaration in the current scope.
func (c *converter) mustRenameDeclIdent(decl ast.Decl) bool {
	if v, ok := decl.(*ast.VarDecl); ok {
		// Struct members and shader inputs keep their identifiers.
		if c.insideStructDecl() || v.Flags.Has(ast.FlagShaderInput) {
			return false
		}
		for _, reserved := range c.globalReserved {
			if reserved.Name() == v.Ident {
				return reserved != decl
			}
		}
	}
	return c.fetchFromCurrentScope(decl.Name())
}

// renameReservedKeyword renames the declaration when its identifier is a
// GLSL reserved word or begins with "gl_". With obfuscation enabled, every
// identifier passed through becomes a unique numeric token instead.
func (c *converter) renameReservedKeyword(decl ast.Decl) bool {
	if c.opts.Obfuscate {
		decl.SetName("_" + strconv.Itoa(c.obfuscationCounter))
		c.obfuscationCounter++
		return true
	}
	name := decl.Name()
	if IsReservedWord(name) || hasReservedPrefix(name) {
		decl.SetName(c.mangling.ReservedWordPrefix + name)
		return true
	}
	return false
}

// renameInOutVarIdents rewrites entry-point I/O variable identifiers from
// their semantics, either raw or with the input/output prefix.
func (c *converter) renameInOutVarIdents(varDecls []*ast.VarDecl, input, useSemanticOnly bool) {
	for _, v := range varDecls {
		switch {
		case useSemanticOnly:
			v.Ident = v.Semantic.String()
		case input:
			v.Ident = c.mangling.InputPrefix + v.Semantic.String()
		default:
			v.Ident = c.mangling.OutputPrefix + v.Semantic.String()
		}
	}
}

func (c *converter) labelAnonymousStructDecl(decl *ast.StructDecl) {
	if decl.IsAnonymous() {
		decl.Ident = c.mangling.TemporaryPrefix + "anonym" + strconv.Itoa(c.anonymCounter)
		c.anonymCounter++
	}
}

/* ----- Program ----- */

func (c *converter) visitProgram(program *ast.Program) {
	if entryPoint := program.EntryPointRef; entryPoint != nil {
		// Reserve entry-point I/O identifiers according to the stage:
		// vertex inputs and fragment outputs may take the raw semantic.
		switch c.target {
		case ast.TargetVertexShader:
			if c.mangling.UseAlwaysSemantics {
				c.renameInOutVarIdents(entryPoint.InputSemantics.VarDeclRefs, true, true)
			}
			c.renameInOutVarIdents(entryPoint.OutputSemantics.VarDeclRefs, false, false)
		case ast.TargetFragmentShader:
			c.renameInOutVarIdents(entryPoint.InputSemantics.VarDeclRefs, true, false)
			if c.mangling.UseAlwaysSemantics {
				c.renameInOutVarIdents(entryPoint.OutputSemantics.VarDeclRefs, false, true)
			}
		default:
			c.renameInOutVarIdents(entryPoint.InputSemantics.VarDeclRefs, true, false)
			c.renameInOutVarIdents(entryPoint.OutputSemantics.VarDeclRefs, false, false)
		}

		c.registerGlobalDeclIdents(entryPoint.InputSemantics.VarDeclRefs)
		c.registerGlobalDeclIdents(entryPoint.OutputSemantics.VarDeclRefs)

		c.registerGlobalDeclIdents(entryPoint.InputSemantics.VarDeclRefsSV)
		c.registerGlobalDeclIdents(entryPoint.OutputSemantics.VarDeclRefsSV)
	}

	for i := range program.GlobalStmts {
		c.visitStmt(&program.GlobalStmts[i])
	}

	if !c.isVKSL {
		// GLSL has no sampler states; move their declarations into the
		// disabled AST so symbol references stay valid.
		c.moveStmtsIf(&program.GlobalStmts, func(stmt ast.Stmt) bool {
			switch s := stmt.(type) {
			case *ast.SamplerDeclStmt:
				return true
			case *ast.VarDeclStmt:
				return s.TypeSpecifier != nil && ast.IsSamplerStateDenoter(s.TypeSpecifier.TypeDenoter)
			}
			return false
		})
	}
}

// moveStmtsIf moves every matching statement into the disabled AST bucket.
func (c *converter) moveStmtsIf(stmts *[]ast.Stmt, pred func(ast.Stmt) bool) {
	kept := (*stmts)[:0]
	for _, stmt := range *stmts {
		if pred(stmt) {
			c.program.DisabledAST = append(c.program.DisabledAST, stmt)
		} else {
			kept = append(kept, stmt)
		}
	}
	*stmts = kept
}

// removeSamplerStateVarDeclStmts moves sampler-state variable declarations
// (struct members, function parameters) into the disabled AST.
func (c *converter) removeSamplerStateVarDeclStmts(stmts *[]*ast.VarDeclStmt) {
	kept := (*stmts)[:0]
	for _, stmt := range *stmts {
		if stmt.TypeSpecifier != nil && ast.IsSamplerStateDenoter(stmt.TypeSpecifier.TypeDenoter) {
			c.program.DisabledAST = append(c.program.DisabledAST, stmt)
		} else {
			kept = append(kept, stmt)
		}
	}
	*stmts = kept
}

/* ----- Statements ----- */

func (c *converter) visitStmt(slot *ast.Stmt) {
	if c.err != nil {
		return
	}
	switch s := (*slot).(type) {
	case *ast.VarDeclStmt:
		c.visitVarDeclStmt(s)
	case *ast.BufferDeclStmt:
		for _, decl := range s.BufferDecls {
			c.registerDeclIdent(decl, false)
		}
	case *ast.SamplerDeclStmt:
		for _, decl := range s.SamplerDecls {
			c.registerDeclIdent(decl, false)
		}
	case *ast.StructDeclStmt:
		c.visitStructDecl(s.StructDecl)
	case *ast.FunctionDeclStmt:
		c.visitFunctionDecl(s.FunctionDecl)
	case *ast.AliasDeclStmt:
		c.visitAliasDeclStmt(s)
	case *ast.UniformBufferDecl:
		for i := range s.Members {
			var stmt ast.Stmt = s.Members[i]
			c.visitStmt(&stmt)
		}
	case *ast.CodeBlockStmt:
		c.openScope()
		c.visitCodeBlock(s.Block)
		c.closeScope()
	case *ast.ForLoopStmt:
		c.visitForLoopStmt(s)
	case *ast.WhileLoopStmt:
		c.makeCodeBlockInEntryPointReturnStmt(&s.Body)
		c.openScope()
		c.visitExpr(&s.Condition)
		c.visitLoopBody(&s.Body)
		c.closeScope()
	case *ast.DoWhileLoopStmt:
		c.makeCodeBlockInEntryPointReturnStmt(&s.Body)
		c.openScope()
		c.visitLoopBody(&s.Body)
		c.visitExpr(&s.Condition)
		c.closeScope()
	case *ast.IfStmt:
		c.makeCodeBlockInEntryPointReturnStmt(&s.Body)
		c.openScope()
		c.visitExpr(&s.Condition)
		c.visitStmt(&s.Body)
		c.closeScope()
		if s.ElseStmt != nil {
			c.makeCodeBlockInEntryPointReturnStmt(&s.ElseStmt.Body)
			c.openScope()
			c.visitStmt(&s.ElseStmt.Body)
			c.closeScope()
		}
	case *ast.SwitchStmt:
		c.openScope()
		c.visitExpr(&s.Selector)
		for _, cs := range s.Cases {
			c.removeDeadCode(&cs.Stmts)
			for i := range cs.Exprs {
				c.visitExpr(&cs.Exprs[i])
			}
			for i := range cs.Stmts {
				c.visitStmt(&cs.Stmts[i])
			}
		}
		c.closeScope()
	case *ast.ReturnStmt:
		if s.Expr != nil {
			c.visitExpr(&s.Expr)
		}
	case *ast.ExprStmt:
		c.visitExpr(&s.Expr)
	}
}

func (c *converter) visitVarDeclStmt(stmt *ast.VarDeclStmt) {
	// The 'static' storage class is a reserved word in GLSL.
	if stmt.TypeSpecifier != nil {
		stmt.TypeSpecifier.RemoveStorageClass(ast.StorageClassStatic)
		if stmt.TypeSpecifier.StructDecl != nil {
			c.visitStructDecl(stmt.TypeSpecifier.StructDecl)
		}
	}
	for _, decl := range stmt.VarDecls {
		c.registerDeclIdent(decl, false)
		if decl.Initializer != nil {
			c.visitExpr(&decl.Initializer)
		}
	}
}

func (c *converter) visitStructDecl(decl *ast.StructDecl) {
	c.labelAnonymousStructDecl(decl)
	c.renameReservedKeyword(decl)

	c.structStack = append(c.structStack, decl)
	c.openScope()
	for _, member := range decl.Members {
		var stmt ast.Stmt = member
		c.visitStmt(&stmt)
	}
	c.closeScope()
	c.structStack = c.structStack[:len(c.structStack)-1]

	if !c.isVKSL {
		c.removeSamplerStateVarDeclStmts(&decl.Members)
	}

	// GLSL does not support empty structures.
	if decl.NumMemberVariables() == 0 {
		dummy := &ast.VarDecl{Ident: c.mangling.TemporaryPrefix + "dummy"}
		stmt := &ast.VarDeclStmt{
			TypeSpecifier: &ast.TypeSpecifier{TypeDenoter: &ast.BaseTypeDenoter{DataType: ast.DataTypeInt}},
			VarDecls:      []*ast.VarDecl{dummy},
		}
		dummy.DeclStmtRef = stmt
		dummy.StructDeclRef = decl
		decl.Members = append(decl.Members, stmt)
	}
}

func (c *converter) visitAliasDeclStmt(stmt *ast.AliasDeclStmt) {
	// An anonymous structure behind an alias takes the first alias name as
	// its own; the alias names disappear in the GLSL output.
	if stmt.StructDecl != nil && stmt.StructDecl.IsAnonymous() && len(stmt.AliasDecls) > 0 {
		stmt.StructDecl.Ident = stmt.AliasDecls[0].Ident
		for _, alias := range stmt.AliasDecls {
			if alias.TypeDenoter != nil {
				if st, ok := alias.TypeDenoter.SubType.(*ast.StructTypeDenoter); ok {
					st.SetIdentIfAnonymous(stmt.StructDecl.Ident)
				}
			}
		}
	}
	if stmt.StructDecl != nil {
		c.visitStructDecl(stmt.StructDecl)
	}
}

func (c *converter) visitFunctionDecl(decl *ast.FunctionDecl) {
	if decl == nil {
		return
	}

	c.funcStack = append(c.funcStack, decl)
	c.openScope()
	c.convertFunctionDecl(decl)
	c.closeScope()
	c.funcStack = c.funcStack[:len(c.funcStack)-1]
}

func (c *converter) convertFunctionDecl(decl *ast.FunctionDecl) {
	var selfParamVar *ast.VarDecl

	if structDecl := decl.StructDeclRef; structDecl != nil && !decl.IsStatic() {
		// Every non-static member function takes its owner instance as a
		// leading self parameter after flattening to a global function.
		if len(decl.Parameters) > 0 && decl.Parameters[0].Flags.Has(ast.FlagSelfParameter) {
			selfParamVar = decl.Parameters[0].VarDecls[0]
		} else {
			selfParamVar = &ast.VarDecl{Ident: c.mangling.NamespacePrefix + "self"}
			selfParamVar.Flags |= ast.FlagSelfParameter

			param := &ast.VarDeclStmt{
				TypeSpecifier: &ast.TypeSpecifier{
					TypeDenoter: &ast.StructTypeDenoter{Ident: structDecl.Ident, StructDeclRef: structDecl},
				},
				VarDecls: []*ast.VarDecl{selfParamVar},
			}
			param.Flags |= ast.FlagSelfParameter
			selfParamVar.DeclStmtRef = param

			decl.Parameters = append([]*ast.VarDeclStmt{param}, decl.Parameters...)
		}
	}

	if selfParamVar != nil {
		c.selfParamStack = append(c.selfParamStack, selfParamVar)
	}

	c.renameReservedKeyword(decl)

	if decl.Flags.Has(ast.FlagEntryPoint) {
		c.convertFunctionDeclEntryPoint(decl)
	}

	for _, param := range decl.Parameters {
		var stmt ast.Stmt = param
		c.visitStmt(&stmt)
	}
	if decl.Body != nil {
		c.visitCodeBlock(decl.Body)
	}

	if !c.isVKSL {
		c.removeSamplerStateVarDeclStmts(&decl.Parameters)
	}

	if selfParamVar != nil {
		c.selfParamStack = c.selfParamStack[:len(c.selfParamStack)-1]
	}
}

// convertFunctionDeclEntryPoint propagates array parameter declarations to
// the input/output semantics: the parameter and all members of a struct
// element type become dynamic arrays.
func (c *converter) convertFunctionDeclEntryPoint(decl *ast.FunctionDecl) {
	for _, param := range decl.Parameters {
		if len(param.VarDecls) == 0 {
			continue
		}
		varDecl := param.VarDecls[0]
		arrayDen := ast.ArrayDenoter(varDecl.GetTypeDenoter())
		if arrayDen == nil {
			continue
		}
		varDecl.Flags |= ast.FlagDynamicArray

		if structDen := ast.StructDenoter(arrayDen.SubType); structDen != nil && structDen.StructDeclRef != nil {
			structDen.StructDeclRef.ForEachVarDecl(func(member *ast.VarDecl) {
				member.Flags |= ast.FlagDynamicArray
			})
		}
	}
}

func (c *converter) visitCodeBlock(block *ast.CodeBlock) {
	if block == nil {
		return
	}
	c.removeDeadCode(&block.Stmts)
	if c.opts.UnrollArrayInitializers {
		c.unrollStmts(&block.Stmts)
	}
	for i := range block.Stmts {
		c.visitStmt(&block.Stmts[i])
	}
}

func (c *converter) visitForLoopStmt(stmt *ast.ForLoopStmt) {
	c.makeCodeBlockInEntryPointReturnStmt(&stmt.Body)

	// The for header and its body share one scope.
	c.openScope()
	if stmt.InitStmt != nil {
		c.visitStmt(&stmt.InitStmt)
	}
	if stmt.Condition != nil {
		c.visitExpr(&stmt.Condition)
	}
	if stmt.Iteration != nil {
		c.visitExpr(&stmt.Iteration)
	}
	c.visitLoopBody(&stmt.Body)
	c.closeScope()
}

// visitLoopBody visits a loop body without opening a second scope when the
// body is itself a compound statement.
func (c *converter) visitLoopBody(slot *ast.Stmt) {
	if body, ok := (*slot).(*ast.CodeBlockStmt); ok {
		c.visitCodeBlock(body.Block)
		return
	}
	c.visitStmt(slot)
}

// makeCodeBlockInEntryPointReturnStmt wraps a bare return statement in a
// compound statement when it is the direct body of a control-flow construct
// inside the entry point.
func (c *converter) makeCodeBlockInEntryPointReturnStmt(slot *ast.Stmt) {
	if !c.insideEntryPoint() {
		return
	}
	if ret, ok := (*slot).(*ast.ReturnStmt); ok {
		*slot = &ast.CodeBlockStmt{Block: &ast.CodeBlock{Stmts: []ast.Stmt{ret}}}
	}
}

// removeDeadCode drops statements flagged as dead code.
func (c *converter) removeDeadCode(stmts *[]ast.Stmt) {
	kept := (*stmts)[:0]
	for _, stmt := range *stmts {
		if f, ok := stmt.(ast.Flagged); ok && f.GetFlags().Has(ast.FlagDeadCode) {
			continue
		}
		kept = append(kept, stmt)
	}
	*stmts = kept
}

/* ----- Array-initializer unrolling ----- */

// unrollStmts replaces array declarations carrying initializer lists by the
// declaration followed by per-element assignments, walking the
// N-dimensional index space in lexicographic order.
func (c *converter) unrollStmts(stmts *[]ast.Stmt) {
	out := make([]ast.Stmt, 0, len(*stmts))
	for _, stmt := range *stmts {
		out = append(out, stmt)
		if varDeclStmt, ok := stmt.(*ast.VarDeclStmt); ok {
			for _, varDecl := range varDeclStmt.VarDecls {
				out = append(out, c.unrollVarDeclInitializer(varDecl)...)
			}
		}
	}
	*stmts = out
}

func (c *converter) unrollVarDeclInitializer(varDecl *ast.VarDecl) []ast.Stmt {
	arrayDen := ast.ArrayDenoter(varDecl.GetTypeDenoter())
	if arrayDen == nil || varDecl.Initializer == nil {
		return nil
	}
	initExpr, ok := varDecl.Initializer.(*ast.InitializerExpr)
	if !ok {
		return nil
	}

	dims := arrayDen.Dimensions
	for _, d := range dims {
		if d <= 0 {
			return nil
		}
	}

	var unrolled []ast.Stmt
	indices := make([]int, len(dims))
	for {
		subExpr := initExpr.FetchSubExpr(indices)
		if subExpr == nil {
			break
		}
		unrolled = append(unrolled, makeArrayAssignStmt(varDecl, indices, subExpr))

		// Advance lexicographically: the outermost dimension varies slowest.
		i := len(indices) - 1
		for i >= 0 {
			indices[i]++
			if indices[i] < dims[i] {
				break
			}
			indices[i] = 0
			i--
		}
		if i < 0 {
			break
		}
	}

	varDecl.Initializer = nil
	return unrolled
}

// makeArrayAssignStmt builds "ident[i0][i1]... = value;".
func makeArrayAssignStmt(varDecl *ast.VarDecl, indices []int, value ast.Expr) ast.Stmt {
	indexExprs := make([]ast.Expr, len(indices))
	for i, idx := range indices {
		indexExprs[i] = &ast.LiteralExpr{DataType: ast.DataTypeInt, Value: strconv.Itoa(idx)}
	}
	return &ast.ExprStmt{
		Expr: &ast.AssignExpr{
			LValue: &ast.ArrayExpr{
				PrefixExpr: &ast.ObjectExpr{Ident: varDecl.Ident, SymbolRef: varDecl},
				Indices:    indexExprs,
			},
			Op:     ast.AssignOpSet,
			RValue: value,
		},
	}
}

/* ----- Expressions ----- */

func (c *converter) visitExpr(slot *ast.Expr) {
	if c.err != nil || *slot == nil {
		return
	}
	switch e := (*slot).(type) {
	case *ast.LiteralExpr:
		convertLiteralSuffix(e)
	case *ast.CastExpr:
		c.convertCastExpr(slot, e)
		if cast, ok := (*slot).(*ast.CastExpr); ok {
			c.visitExpr(&cast.Expr)
		}
	case *ast.CallExpr:
		c.convertCallExpr(e)
	case *ast.ObjectExpr:
		c.convertObjectExpr(e)
		if e.PrefixExpr != nil {
			c.visitExpr(&e.PrefixExpr)
		}
	case *ast.ArrayExpr:
		c.visitExpr(&e.PrefixExpr)
		for i := range e.Indices {
			c.visitExpr(&e.Indices[i])
		}
	case *ast.BinaryExpr:
		c.visitExpr(&e.LHS)
		c.visitExpr(&e.RHS)
	case *ast.UnaryExpr:
		c.visitExpr(&e.Expr)
	case *ast.TernaryExpr:
		c.visitExpr(&e.Condition)
		c.visitExpr(&e.Then)
		c.visitExpr(&e.Else)
	case *ast.BracketExpr:
		c.visitExpr(&e.Expr)
	case *ast.AssignExpr:
		c.visitExpr(&e.LValue)
		c.visitExpr(&e.RValue)
	case *ast.InitializerExpr:
		for i := range e.Exprs {
			c.visitExpr(&e.Exprs[i])
		}
	}
}

// convertLiteralSuffix normalizes half-precision literal suffixes: GLSL has
// no 'h' suffix, so the literal becomes a float.
func convertLiteralSuffix(e *ast.LiteralExpr) {
	if n := len(e.Value); n > 0 {
		switch e.Value[n-1] {
		case 'h':
			e.Value = e.Value[:n-1] + "f"
			e.DataType = ast.DataTypeFloat
		case 'H':
			e.Value = e.Value[:n-1] + "F"
			e.DataType = ast.DataTypeFloat
		}
	}
}

// convertCastExpr expands a cast of a literal to a structure type into a
// constructor call with one copy of the literal per direct member.
func (c *converter) convertCastExpr(slot *ast.Expr, e *ast.CastExpr) {
	if e.TypeSpecifier == nil {
		return
	}
	structDen := ast.StructDenoter(e.TypeSpecifier.TypeDenoter)
	if structDen == nil || structDen.StructDeclRef == nil {
		return
	}
	lit, ok := e.Expr.(*ast.LiteralExpr)
	if !ok {
		return
	}

	var memberTypes []ast.TypeDenoter
	structDen.StructDeclRef.CollectMemberTypeDenoters(&memberTypes)

	args := make([]ast.Expr, len(memberTypes))
	for i := range memberTypes {
		args[i] = &ast.LiteralExpr{NodeBase: lit.NodeBase, DataType: lit.DataType, Value: lit.Value}
	}

	*slot = &ast.CallExpr{
		NodeBase:  e.NodeBase,
		Ident:     structDen.StructDeclRef.Ident,
		Arguments: args,
	}
}

func (c *converter) convertObjectExpr(e *ast.ObjectExpr) {
	if e.PrefixExpr != nil {
		c.convertEntryPointStructPrefix(e)
		return
	}

	// A bare reference to a member of the enclosing structure (or a base of
	// it) routes through the active self parameter.
	selfParam := c.activeSelfParam()
	if selfParam == nil {
		return
	}
	activeStruct := c.activeStructDecl()
	if activeStruct == nil {
		if len(c.funcStack) > 0 {
			activeStruct = c.funcStack[len(c.funcStack)-1].StructDeclRef
		}
	}
	if activeStruct == nil {
		return
	}
	if varDecl := e.FetchVarDecl(); varDecl != nil {
		if owner := varDecl.StructDeclRef; owner != nil {
			if owner == activeStruct || owner.IsBaseOf(activeStruct) {
				e.PrefixExpr = &ast.ObjectExpr{Ident: selfParam.Ident, SymbolRef: selfParam}
			}
		}
	}
}

// convertEntryPointStructPrefix marks object expressions behind
// non-entry-point struct parameters immutable, and drops the prefix
// entirely when it resolves to a global entry-point input/output variable.
func (c *converter) convertEntryPointStructPrefix(e *ast.ObjectExpr) {
	switch prefix := ast.NonBracketExpr(e.PrefixExpr).(type) {
	case *ast.ObjectExpr:
		if varDecl := prefix.FetchVarDecl(); varDecl != nil {
			if structDen := ast.StructDenoter(varDecl.GetTypeDenoter()); structDen != nil {
				if !c.makeImmutableForNEPStruct(e, structDen.StructDeclRef) {
					if c.isGlobalInOutVarDecl(e.FetchVarDecl()) {
						e.PrefixExpr = nil
					}
				}
			}
		}
	case *ast.ArrayExpr:
		if obj, ok := ast.NonBracketExpr(prefix.PrefixExpr).(*ast.ObjectExpr); ok {
			if varDecl := obj.FetchVarDecl(); varDecl != nil {
				if arrayDen := ast.ArrayDenoter(varDecl.GetTypeDenoter()); arrayDen != nil {
					if structDen := ast.StructDenoter(arrayDen.SubType); structDen != nil {
						c.makeImmutableForNEPStruct(e, structDen.StructDeclRef)
					}
				}
			}
		}
	}
}

func (c *converter) makeImmutableForNEPStruct(e *ast.ObjectExpr, structDecl *ast.StructDecl) bool {
	if structDecl != nil && structDecl.Flags.Has(ast.FlagNonEntryPointParam) {
		e.Flags |= ast.FlagImmutable
		return true
	}
	return false
}

func (c *converter) isGlobalInOutVarDecl(varDecl *ast.VarDecl) bool {
	if varDecl == nil || c.program.EntryPointRef == nil {
		return false
	}
	entryPoint := c.program.EntryPointRef
	return entryPoint.InputSemantics.Contains(varDecl) || entryPoint.OutputSemantics.Contains(varDecl)
}

func (c *converter) convertCallExpr(e *ast.CallExpr) {
	if e.PrefixExpr != nil {
		c.visitExpr(&e.PrefixExpr)
	}

	if e.Intrinsic != ast.IntrinsicUndefined && ast.IsTextureIntrinsic(e.Intrinsic) && e.PrefixExpr != nil {
		if c.isVKSL {
			// VKSL keeps separate textures and samplers: a sampler-state
			// argument is replaced by a texture/sampler binding call.
			if len(e.Arguments) > 0 && ast.IsSamplerStateDenoter(e.Arguments[0].GetTypeDenoter()) {
				e.Arguments[0] = c.makeTextureSamplerBindingCall(e.PrefixExpr, e.Arguments[0])
			}
		} else {
			// The texture object becomes the first intrinsic argument.
			e.PushArgumentFront(e.PrefixExpr)
			e.PrefixExpr = nil
		}
	}

	if !c.isVKSL {
		// GLSL does not support sampler states; drop such arguments.
		kept := e.Arguments[:0]
		for _, arg := range e.Arguments {
			if ast.IsSamplerStateDenoter(arg.GetTypeDenoter()) {
				c.program.DisabledAST = append(c.program.DisabledAST, arg)
			} else {
				kept = append(kept, arg)
			}
		}
		e.Arguments = kept
	}

	if e.Intrinsic != ast.IntrinsicUndefined {
		c.convertIntrinsicCall(e)
	} else {
		c.convertFunctionCall(e)
	}

	for i := range e.Arguments {
		c.visitExpr(&e.Arguments[i])
	}
}

// convertFunctionCall flattens member-function calls: static calls drop the
// prefix, instance calls take the instance (or the enclosing self
// parameter) as leading argument.
func (c *converter) convertFunctionCall(e *ast.CallExpr) {
	funcDecl := e.FuncDeclRef
	if funcDecl == nil || !funcDecl.IsMemberFunction() {
		return
	}

	if funcDecl.IsStatic() {
		// GLSL only has global functions.
		e.PrefixExpr = nil
		return
	}

	switch {
	case e.PrefixExpr != nil:
		prefix := e.PrefixExpr
		e.PrefixExpr = nil
		e.PushArgumentFront(prefix)
	case c.activeSelfParam() != nil:
		selfParam := c.activeSelfParam()
		e.PushArgumentFront(&ast.ObjectExpr{Ident: selfParam.Ident, SymbolRef: selfParam})
	default:
		c.fail(ErrMissingSelfParam, "missing self parameter for member function call of \""+funcDecl.Ident+"\"", e)
	}
}
