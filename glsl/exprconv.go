// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"github.com/gogpu/xsl/ast"
)

// ConvertFlags selects which expression pre-conversions run before the main
// lowering pass.
type ConvertFlags uint32

const (
	// ConvertVectorSubscripts rewrites swizzles on scalar types into vector
	// constructor calls ("1.0.xxx" becomes "float3(1.0)").
	ConvertVectorSubscripts ConvertFlags = 1 << iota

	// ConvertInitializer rewrites brace initializers of vector-typed
	// variables into constructor calls; scalar and matrix initializers are
	// left as they are.
	ConvertInitializer

	// ConvertLog10 rewrites log10(x) into log(x) / log(10); GLSL has no
	// base-10 logarithm.
	ConvertLog10

	// ConvertAll enables every pre-conversion.
	ConvertAll = ConvertVectorSubscripts | ConvertInitializer | ConvertLog10
)

// ConvertExpressions applies the selected expression pre-conversions to the
// whole program, mutating it in place.
func ConvertExpressions(program *ast.Program, flags ConvertFlags) {
	ec := &exprConverter{flags: flags}
	for i := range program.GlobalStmts {
		ec.visitStmt(&program.GlobalStmts[i])
	}
}

type exprConverter struct {
	flags ConvertFlags
}

func (ec *exprConverter) visitStmt(slot *ast.Stmt) {
	switch s := (*slot).(type) {
	case *ast.VarDeclStmt:
		for _, decl := range s.VarDecls {
			if decl.Initializer != nil {
				ec.convertVarDeclInitializer(decl)
				ec.visitExpr(&decl.Initializer)
			}
		}
	case *ast.StructDeclStmt:
		ec.visitStructDecl(s.StructDecl)
	case *ast.AliasDeclStmt:
		ec.visitStructDecl(s.StructDecl)
	case *ast.UniformBufferDecl:
		for i := range s.Members {
			var stmt ast.Stmt = s.Members[i]
			ec.visitStmt(&stmt)
		}
	case *ast.FunctionDeclStmt:
		if s.FunctionDecl == nil {
			return
		}
		for i := range s.FunctionDecl.Parameters {
			var stmt ast.Stmt = s.FunctionDecl.Parameters[i]
			ec.visitStmt(&stmt)
		}
		ec.visitCodeBlock(s.FunctionDecl.Body)
	case *ast.CodeBlockStmt:
		ec.visitCodeBlock(s.Block)
	case *ast.ForLoopStmt:
		if s.InitStmt != nil {
			ec.visitStmt(&s.InitStmt)
		}
		ec.visitOptExpr(&s.Condition)
		ec.visitOptExpr(&s.Iteration)
		ec.visitStmt(&s.Body)
	case *ast.WhileLoopStmt:
		ec.visitExpr(&s.Condition)
		ec.visitStmt(&s.Body)
	case *ast.DoWhileLoopStmt:
		ec.visitStmt(&s.Body)
		ec.visitExpr(&s.Condition)
	case *ast.IfStmt:
		ec.visitExpr(&s.Condition)
		ec.visitStmt(&s.Body)
		if s.ElseStmt != nil {
			ec.visitStmt(&s.ElseStmt.Body)
		}
	case *ast.SwitchStmt:
		ec.visitExpr(&s.Selector)
		for _, cs := range s.Cases {
			for i := range cs.Exprs {
				ec.visitExpr(&cs.Exprs[i])
			}
			for i := range cs.Stmts {
				ec.visitStmt(&cs.Stmts[i])
			}
		}
	case *ast.ReturnStmt:
		ec.visitOptExpr(&s.Expr)
	case *ast.ExprStmt:
		ec.visitExpr(&s.Expr)
	}
}

func (ec *exprConverter) visitStructDecl(decl *ast.StructDecl) {
	if decl == nil {
		return
	}
	for i := range decl.Members {
		var stmt ast.Stmt = decl.Members[i]
		ec.visitStmt(&stmt)
	}
}

func (ec *exprConverter) visitCodeBlock(block *ast.CodeBlock) {
	if block == nil {
		return
	}
	for i := range block.Stmts {
		ec.visitStmt(&block.Stmts[i])
	}
}

func (ec *exprConverter) visitOptExpr(slot *ast.Expr) {
	if *slot != nil {
		ec.visitExpr(slot)
	}
}

func (ec *exprConverter) visitExpr(slot *ast.Expr) {
	switch e := (*slot).(type) {
	case *ast.ObjectExpr:
		if e.PrefixExpr != nil {
			ec.visitExpr(&e.PrefixExpr)
			ec.convertVectorSubscript(slot, e)
		}
	case *ast.CallExpr:
		if e.PrefixExpr != nil {
			ec.visitExpr(&e.PrefixExpr)
		}
		for i := range e.Arguments {
			ec.visitExpr(&e.Arguments[i])
		}
		ec.convertLog10(slot, e)
	case *ast.ArrayExpr:
		ec.visitExpr(&e.PrefixExpr)
		for i := range e.Indices {
			ec.visitExpr(&e.Indices[i])
		}
	case *ast.BinaryExpr:
		ec.visitExpr(&e.LHS)
		ec.visitExpr(&e.RHS)
	case *ast.UnaryExpr:
		ec.visitExpr(&e.Expr)
	case *ast.TernaryExpr:
		ec.visitExpr(&e.Condition)
		ec.visitExpr(&e.Then)
		ec.visitExpr(&e.Else)
	case *ast.BracketExpr:
		ec.visitExpr(&e.Expr)
	case *ast.AssignExpr:
		ec.visitExpr(&e.LValue)
		ec.visitExpr(&e.RValue)
	case *ast.CastExpr:
		ec.visitExpr(&e.Expr)
	case *ast.InitializerExpr:
		for i := range e.Exprs {
			ec.visitExpr(&e.Exprs[i])
		}
	}
}

// convertVectorSubscript rewrites a swizzle applied to a scalar-typed
// prefix into a vector constructor call.
func (ec *exprConverter) convertVectorSubscript(slot *ast.Expr, e *ast.ObjectExpr) {
	if ec.flags&ConvertVectorSubscripts == 0 || e.SymbolRef != nil {
		return
	}
	base := ast.BaseDenoter(e.PrefixExpr.GetTypeDenoter())
	if base == nil || !ast.IsScalarType(base.DataType) {
		return
	}
	resultType, _, err := ast.SubscriptDataType(base.DataType, e.Ident)
	if err != nil || !ast.IsVectorType(resultType) {
		return
	}
	*slot = &ast.CallExpr{
		NodeBase:  e.NodeBase,
		Ident:     resultType.String(),
		Arguments: []ast.Expr{e.PrefixExpr},
	}
}

// convertVarDeclInitializer rewrites a brace initializer of a vector-typed
// variable into a constructor call. Other types keep their initializer.
func (ec *exprConverter) convertVarDeclInitializer(decl *ast.VarDecl) {
	if ec.flags&ConvertInitializer == 0 {
		return
	}
	init, ok := decl.Initializer.(*ast.InitializerExpr)
	if !ok {
		return
	}
	base := ast.BaseDenoter(decl.GetTypeDenoter())
	if base == nil || !ast.IsVectorType(base.DataType) {
		return
	}
	decl.Initializer = &ast.CallExpr{
		NodeBase:  init.NodeBase,
		Ident:     base.DataType.String(),
		Arguments: init.Exprs,
	}
}

// convertLog10 lowers log10 to a quotient of natural logarithms.
func (ec *exprConverter) convertLog10(slot *ast.Expr, e *ast.CallExpr) {
	if ec.flags&ConvertLog10 == 0 || e.Intrinsic != ast.IntrinsicLog10 || len(e.Arguments) != 1 {
		return
	}
	logCall := func(arg ast.Expr) ast.Expr {
		return &ast.CallExpr{Intrinsic: ast.IntrinsicLog, Ident: "log", Arguments: []ast.Expr{arg}}
	}
	*slot = &ast.BinaryExpr{
		NodeBase: e.NodeBase,
		LHS:      logCall(e.Arguments[0]),
		Op:       ast.BinaryOpDiv,
		RHS:      logCall(&ast.LiteralExpr{DataType: ast.DataTypeInt, Value: "10"}),
	}
}
