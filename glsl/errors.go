// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/xsl/ast"
)

// ErrorKind categorizes GLSL conversion errors.
type ErrorKind uint8

const (
	// ErrRuntime indicates an irrecoverable invariant violation during
	// lowering.
	ErrRuntime ErrorKind = iota

	// ErrInvalidIntrinsicArgCount indicates an intrinsic rewrite saw the
	// wrong number of arguments.
	ErrInvalidIntrinsicArgCount

	// ErrInvalidIntrinsicArgType indicates an intrinsic rewrite saw an
	// argument of an unsupported type.
	ErrInvalidIntrinsicArgType

	// ErrMissingSelfParam indicates a member-function call with no prefix
	// and no enclosing self parameter.
	ErrMissingSelfParam
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrRuntime:
		return "Runtime"
	case ErrInvalidIntrinsicArgCount:
		return "InvalidIntrinsicArgCount"
	case ErrInvalidIntrinsicArgType:
		return "InvalidIntrinsicArgType"
	case ErrMissingSelfParam:
		return "MissingSelfParam"
	default:
		return "Unknown"
	}
}

// Error represents a GLSL conversion error attached to a source area.
type Error struct {
	Kind    ErrorKind
	Message string
	Area    ast.SourceArea
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Area != ast.IgnoreArea {
		return fmt.Sprintf("glsl %s at %d:%d: %s", e.Kind, e.Area.Line, e.Area.Column, e.Message)
	}
	return fmt.Sprintf("glsl %s: %s", e.Kind, e.Message)
}

// NewError creates a conversion error for the given node; a nil node uses
// the sentinel source area.
func NewError(kind ErrorKind, message string, node ast.Node) *Error {
	area := ast.IgnoreArea
	if node != nil {
		area = node.Pos()
	}
	return &Error{Kind: kind, Message: message, Area: area}
}
