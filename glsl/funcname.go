// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strconv"

	"github.com/gogpu/xsl/ast"
)

// convertFunctionNames reassigns member-function and overloaded function
// identifiers after the main pass. Member functions take their owner
// structure's (possibly renamed) name as prefix; overload sets whose
// signatures differ under the given comparison get a deterministic numeric
// suffix per signature.
func convertFunctionNames(program *ast.Program, mangling NameMangling, equalSignatures func(lhs, rhs *ast.FunctionDecl) bool) {
	var functions []*ast.FunctionDecl
	for _, stmt := range program.GlobalStmts {
		if fn, ok := stmt.(*ast.FunctionDeclStmt); ok && fn.FunctionDecl != nil {
			functions = append(functions, fn.FunctionDecl)
		}
	}

	// Member functions become "<Struct>_<name>"; the underscore keeps the
	// flattened name readable and collision-free against globals.
	for _, fn := range functions {
		if fn.Flags.Has(ast.FlagEntryPoint) {
			continue
		}
		if owner := fn.StructDeclRef; owner != nil {
			fn.Ident = owner.Ident + "_" + fn.Ident
			fn.StructDeclRef = nil
		}
	}

	// Group the remaining functions by identifier and mangle overload sets.
	groups := make(map[string][]*ast.FunctionDecl)
	var order []string
	for _, fn := range functions {
		if fn.Flags.Has(ast.FlagEntryPoint) {
			continue
		}
		if _, seen := groups[fn.Ident]; !seen {
			order = append(order, fn.Ident)
		}
		groups[fn.Ident] = append(groups[fn.Ident], fn)
	}

	for _, ident := range order {
		group := groups[ident]
		if len(group) < 2 {
			continue
		}

		// Signatures equal under the comparison share one suffix index, so
		// redeclarations keep resolving to the same output name.
		var signatures []*ast.FunctionDecl
		for _, fn := range group {
			index := -1
			for i, sig := range signatures {
				if equalSignatures(fn, sig) {
					index = i
					break
				}
			}
			if index < 0 {
				index = len(signatures)
				signatures = append(signatures, fn)
			}
			fn.Ident = mangling.TemporaryPrefix + ident + strconv.Itoa(index)
		}
	}
}
