// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "testing"

func TestIsReservedWord(t *testing.T) {
	reserved := []string{
		"void", "float", "vec3", "mat4", "sampler2D", "buffer", "in", "out",
		"discard", "static", "filter", "main", "clamp", "texture",
		"gl_Position", "gl_FragCoord",
	}
	for _, word := range reserved {
		if !IsReservedWord(word) {
			t.Errorf("IsReservedWord(%q) = false, want true", word)
		}
	}

	free := []string{"position", "color0", "myVar", "Texture", "xsr_float"}
	for _, word := range free {
		if IsReservedWord(word) {
			t.Errorf("IsReservedWord(%q) = true, want false", word)
		}
	}
}

func TestHasReservedPrefix(t *testing.T) {
	if !hasReservedPrefix("gl_Custom") || !hasReservedPrefix("gl_") {
		t.Error("gl_ prefix not detected")
	}
	if hasReservedPrefix("glow") || hasReservedPrefix("g") {
		t.Error("non-reserved prefix misdetected")
	}
}

func TestOutputVersion(t *testing.T) {
	if !VKSL450.IsVKSL() || GLSL450.IsVKSL() {
		t.Error("IsVKSL misclassifies")
	}

	tests := []struct {
		version OutputVersion
		want    bool
	}{
		{GLSL330, false},
		{GLSL410, false},
		{GLSL420, true},
		{GLSL450, true},
		{GLSL460, true},
		{VKSL450, true},
	}
	for _, tt := range tests {
		if got := tt.version.Has420Pack(); got != tt.want {
			t.Errorf("Has420Pack(%v) = %t, want %t", tt.version, got, tt.want)
		}
	}
}
