// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl lowers a typed shader AST into a form directly emittable as
// GLSL or Vulkan GLSL (VKSL).
//
// The converter mutates the program in place: it flattens member functions
// into global functions, rewrites intrinsic calls, renames identifiers
// against reserved words and scope collisions, removes sampler-state
// objects (non-VKSL targets), flattens entry-point struct access, prunes
// dead code, and optionally unrolls array initializers. Statements removed
// from the live tree are moved into the program's disabled-AST bucket so
// back references stay valid.
//
// # Basic Usage
//
//	err := glsl.Convert(program, ast.TargetFragmentShader,
//	    glsl.DefaultNameMangling(), glsl.DefaultOptions(), glsl.GLSL450)
//
// # Reserved Words
//
// GLSL has over 500 reserved words (including future reserved). The
// converter renames conflicting identifiers by prefixing them with the
// configured reserved-word prefix; the "gl_" identifier prefix is treated
// as reserved as well.
package glsl
