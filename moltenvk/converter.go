// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package moltenvk post-processes a lowered program for MoltenVK targets:
// RWBuffer objects are retyped to RWStructuredBuffer, and every expression
// referencing a retyped symbol drops its cached type denoter so it
// re-resolves lazily on next access.
package moltenvk

import (
	"github.com/gogpu/xsl/ast"
)

// Convert applies the MoltenVK rewrites to the program in place.
func Convert(program *ast.Program) {
	c := &converter{converted: make(map[ast.Decl]struct{})}

	for _, stmt := range program.GlobalStmts {
		c.visitStmt(stmt)
	}
}

type converter struct {
	converted map[ast.Decl]struct{}

	// resetExprTypes is raised while an expression subtree references a
	// converted symbol; the enclosing trigger points reset their denoters.
	resetExprTypes bool
}

// convertBufferDecl retypes an RWBuffer declaration, preserving the generic
// payload type and size.
func (c *converter) convertBufferDecl(decl *ast.BufferDecl) bool {
	stmt := decl.DeclStmtRef
	if stmt == nil || stmt.TypeDenoter == nil || stmt.TypeDenoter.BufferType != ast.BufferTypeRWBuffer {
		return false
	}
	stmt.TypeDenoter = &ast.BufferTypeDenoter{
		BufferType:   ast.BufferTypeRWStructuredBuffer,
		GenericType:  stmt.TypeDenoter.GetGenericTypeDenoter(),
		GenericSize:  stmt.TypeDenoter.GenericSize,
		ExtModifiers: stmt.TypeDenoter.ExtModifiers,
	}
	return true
}

func (c *converter) visitStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BufferDeclStmt:
		for _, decl := range s.BufferDecls {
			if c.convertBufferDecl(decl) {
				c.converted[decl] = struct{}{}
			}
		}
	case *ast.FunctionDeclStmt:
		if s.FunctionDecl != nil {
			c.visitCodeBlock(s.FunctionDecl.Body)
		}
	case *ast.CodeBlockStmt:
		c.visitCodeBlock(s.Block)
	case *ast.ForLoopStmt:
		if s.InitStmt != nil {
			c.visitStmt(s.InitStmt)
		}
		c.visitExprTree(s.Condition)
		c.visitExprTree(s.Iteration)
		c.visitStmt(s.Body)
	case *ast.WhileLoopStmt:
		c.visitExprTree(s.Condition)
		c.visitStmt(s.Body)
	case *ast.DoWhileLoopStmt:
		c.visitStmt(s.Body)
		c.visitExprTree(s.Condition)
	case *ast.IfStmt:
		c.visitExprTree(s.Condition)
		c.visitStmt(s.Body)
		if s.ElseStmt != nil {
			c.visitStmt(s.ElseStmt.Body)
		}
	case *ast.SwitchStmt:
		c.visitExprTree(s.Selector)
		for _, cs := range s.Cases {
			for _, stmt := range cs.Stmts {
				c.visitStmt(stmt)
			}
		}
	case *ast.VarDeclStmt:
		for _, decl := range s.VarDecls {
			c.visitExprTree(decl.Initializer)
		}
	case *ast.ReturnStmt:
		c.visitExprTree(s.Expr)
	case *ast.ExprStmt:
		// Expression-statement roots are a trigger point.
		c.visitExprTree(s.Expr)
	}
}

func (c *converter) visitCodeBlock(block *ast.CodeBlock) {
	if block == nil {
		return
	}
	for _, stmt := range block.Stmts {
		c.visitStmt(stmt)
	}
}

// visitExprTree walks one expression tree and resets its root denoter when
// a converted symbol was referenced anywhere inside it.
func (c *converter) visitExprTree(expr ast.Expr) {
	if expr == nil {
		return
	}
	c.visitExpr(expr)
	if c.resetExprTypes {
		expr.ResetTypeDenoter()
		c.resetExprTypes = false
	}
}

func (c *converter) visitExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.ObjectExpr:
		if e.PrefixExpr != nil {
			c.visitExpr(e.PrefixExpr)
		}
		if e.SymbolRef != nil {
			if _, ok := c.converted[e.SymbolRef]; ok {
				c.resetExprTypes = true
			}
		}
		c.maybeReset(e)
	case *ast.ArrayExpr:
		c.visitExpr(e.PrefixExpr)
		for _, idx := range e.Indices {
			c.visitExpr(idx)
		}
		c.maybeReset(e)
	case *ast.CallExpr:
		if e.PrefixExpr != nil {
			c.visitExpr(e.PrefixExpr)
		}
		for _, arg := range e.Arguments {
			c.visitExpr(arg)
		}
		c.maybeReset(e)
	case *ast.BinaryExpr:
		c.visitExpr(e.LHS)
		c.visitExpr(e.RHS)
	case *ast.UnaryExpr:
		c.visitExpr(e.Expr)
	case *ast.TernaryExpr:
		c.visitExpr(e.Condition)
		c.visitExpr(e.Then)
		c.visitExpr(e.Else)
	case *ast.BracketExpr:
		c.visitExpr(e.Expr)
	case *ast.AssignExpr:
		c.visitExpr(e.LValue)
		c.visitExpr(e.RValue)
	case *ast.InitializerExpr:
		for _, sub := range e.Exprs {
			c.visitExpr(sub)
		}
	}
}

// maybeReset invalidates the cached denoter of known-dependent expression
// kinds while the reset flag is raised.
func (c *converter) maybeReset(expr ast.Expr) {
	if c.resetExprTypes {
		expr.ResetTypeDenoter()
	}
}
