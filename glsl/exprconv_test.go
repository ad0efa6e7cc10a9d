// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"testing"

	"github.com/gogpu/xsl/ast"
)

func TestConvertExpressions_VectorSubscriptOnScalar(t *testing.T) {
	scalarStmt, scalar := makeVarDeclStmt(ast.DataTypeFloat, "s")

	swizzle := &ast.ObjectExpr{PrefixExpr: objRef(scalar), Ident: "xxx"}
	ret := &ast.ReturnStmt{Expr: swizzle}
	fn := makeFunction("splat", scalarStmt, ret)

	program := &ast.Program{GlobalStmts: []ast.Stmt{&ast.FunctionDeclStmt{FunctionDecl: fn}}}
	ConvertExpressions(program, ConvertAll)

	call, ok := ret.Expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expression = %T, want constructor call", ret.Expr)
	}
	if call.Ident != "float3" {
		t.Errorf("constructor = %q, want %q", call.Ident, "float3")
	}
	if len(call.Arguments) != 1 {
		t.Fatalf("arguments = %d, want 1", len(call.Arguments))
	}
	if obj, ok := call.Arguments[0].(*ast.ObjectExpr); !ok || obj.SymbolRef != scalar {
		t.Error("constructor argument must be the scalar operand")
	}
}

func TestConvertExpressions_VectorSubscriptFlagOff(t *testing.T) {
	scalarStmt, scalar := makeVarDeclStmt(ast.DataTypeFloat, "s")

	swizzle := &ast.ObjectExpr{PrefixExpr: objRef(scalar), Ident: "xx"}
	ret := &ast.ReturnStmt{Expr: swizzle}
	fn := makeFunction("splat", scalarStmt, ret)

	program := &ast.Program{GlobalStmts: []ast.Stmt{&ast.FunctionDeclStmt{FunctionDecl: fn}}}
	ConvertExpressions(program, ConvertAll&^ConvertVectorSubscripts)

	if _, ok := ret.Expr.(*ast.ObjectExpr); !ok {
		t.Error("subscript must stay untouched without the flag")
	}
}

func TestConvertExpressions_Initializer(t *testing.T) {
	stmt, decl := makeVarDeclStmt(ast.DataTypeFloat3, "v")
	decl.Initializer = &ast.InitializerExpr{Exprs: []ast.Expr{
		&ast.LiteralExpr{DataType: ast.DataTypeFloat, Value: "1.0"},
		&ast.LiteralExpr{DataType: ast.DataTypeFloat, Value: "2.0"},
		&ast.LiteralExpr{DataType: ast.DataTypeFloat, Value: "3.0"},
	}}

	fn := makeFunction("main", stmt)
	program := &ast.Program{GlobalStmts: []ast.Stmt{&ast.FunctionDeclStmt{FunctionDecl: fn}}}
	ConvertExpressions(program, ConvertAll)

	call, ok := decl.Initializer.(*ast.CallExpr)
	if !ok {
		t.Fatalf("initializer = %T, want constructor call", decl.Initializer)
	}
	if call.Ident != "float3" || len(call.Arguments) != 3 {
		t.Errorf("constructor = %q with %d arguments", call.Ident, len(call.Arguments))
	}
}

func TestConvertExpressions_Log10(t *testing.T) {
	_, x := makeVarDeclStmt(ast.DataTypeFloat, "x")

	call := &ast.CallExpr{Ident: "log10", Intrinsic: ast.IntrinsicLog10, Arguments: []ast.Expr{objRef(x)}}
	ret := &ast.ReturnStmt{Expr: call}
	fn := makeFunction("main", ret)

	program := &ast.Program{GlobalStmts: []ast.Stmt{&ast.FunctionDeclStmt{FunctionDecl: fn}}}
	ConvertExpressions(program, ConvertAll)

	div, ok := ret.Expr.(*ast.BinaryExpr)
	if !ok || div.Op != ast.BinaryOpDiv {
		t.Fatalf("expression = %+v, want division", ret.Expr)
	}
	lhs, ok := div.LHS.(*ast.CallExpr)
	if !ok || lhs.Intrinsic != ast.IntrinsicLog {
		t.Error("lhs must be a natural log call")
	}
	rhs, ok := div.RHS.(*ast.CallExpr)
	if !ok || rhs.Intrinsic != ast.IntrinsicLog {
		t.Error("rhs must be a natural log call")
	}
}
