// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "fmt"

// OutputVersion identifies the target shader language version: a GLSL core
// version or Vulkan-flavoured GLSL (VKSL).
type OutputVersion int

// Output shader language versions.
const (
	GLSL330 OutputVersion = 330 // OpenGL 3.3
	GLSL400 OutputVersion = 400 // OpenGL 4.0
	GLSL410 OutputVersion = 410 // OpenGL 4.1
	GLSL420 OutputVersion = 420 // OpenGL 4.2
	GLSL430 OutputVersion = 430 // OpenGL 4.3
	GLSL440 OutputVersion = 440 // OpenGL 4.4
	GLSL450 OutputVersion = 450 // OpenGL 4.5
	GLSL460 OutputVersion = 460 // OpenGL 4.6

	// VKSL450 is Vulkan GLSL with explicit binding semantics.
	VKSL450 OutputVersion = 1450
)

// IsVKSL reports whether the output version targets Vulkan GLSL.
func (v OutputVersion) IsVKSL() bool {
	return v == VKSL450
}

// Has420Pack reports whether the target supports the
// GL_ARB_shading_language_420pack extension semantics, which removes the
// need to pre-convert vector subscripts and initializer lists.
func (v OutputVersion) Has420Pack() bool {
	return v.IsVKSL() || v >= GLSL420
}

// String returns the version directive value.
func (v OutputVersion) String() string {
	if v.IsVKSL() {
		return fmt.Sprintf("%d", int(v)-1000)
	}
	return fmt.Sprintf("%d", int(v))
}
