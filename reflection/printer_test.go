// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflection

import (
	"strings"
	"testing"
)

func TestPrinter_SectionOrder(t *testing.T) {
	var sb strings.Builder
	Print(&sb, NewReflectionData())
	out := sb.String()

	sections := []string{
		"Macros:",
		"Textures:",
		"Storage Buffers:",
		"Constant Buffers:",
		"Input Attributes:",
		"Output Attributes:",
		"Sampler States:",
		"Rasterizer state:",
		"Depth state:",
		"Stencil state:",
		"Blend state:",
		"Global options:",
		"Number of Threads:",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		if idx < 0 {
			t.Fatalf("section %q missing from output", section)
		}
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}
}

func TestPrinter_EmptySections(t *testing.T) {
	var sb strings.Builder
	Print(&sb, NewReflectionData())

	if got := strings.Count(sb.String(), "< none >"); got != 7 {
		t.Errorf("empty section markers = %d, want 7", got)
	}
}

func TestPrinter_BindingAlignment(t *testing.T) {
	data := NewReflectionData()
	data.Textures = []BindingSlot{
		{Ident: "albedo", Location: 2},
		{Ident: "normals", Location: 10},
		{Ident: "unbound", Location: -1},
	}

	var sb strings.Builder
	Print(&sb, data)
	out := sb.String()

	// Locations right-align on the widest location.
	if !strings.Contains(out, " 2: albedo") {
		t.Errorf("missing aligned binding for albedo:\n%s", out)
	}
	if !strings.Contains(out, "10: normals") {
		t.Errorf("missing aligned binding for normals:\n%s", out)
	}
	if !strings.Contains(out, "unbound") || strings.Contains(out, "-1") {
		t.Errorf("unbound slot must print without location:\n%s", out)
	}
}

func TestPrinter_SamplerStates(t *testing.T) {
	data := NewReflectionData()
	state := NewSamplerState()
	state.BorderColor = [4]float32{0.1, 0.2, 0.3, 1}
	data.SamplerStates["zz"] = state
	data.SamplerStates["aa"] = NewSamplerState()

	var sb strings.Builder
	Print(&sb, data)
	out := sb.String()

	if !strings.Contains(out, "BorderColor    = { 0.1, 0.2, 0.3, 1 }") {
		t.Errorf("border color row missing:\n%s", out)
	}

	// Sampler states print in name order.
	if strings.Index(out, "aa") > strings.Index(out, "zz") {
		t.Error("sampler states not sorted by name")
	}
}
