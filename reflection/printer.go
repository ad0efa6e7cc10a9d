// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflection

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Printer writes a reflection record in a human readable, indented format.
// Section order is fixed; empty binding sections print "< none >" and
// binding lists are right-aligned on their location.
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the full reflection record.
func Print(w io.Writer, data *ReflectionData) {
	NewPrinter(w).Print(data)
}

// Print writes the full reflection record.
func (p *Printer) Print(data *ReflectionData) {
	p.line("Code Reflection:")
	p.indent++
	defer func() { p.indent-- }()

	p.printIdents(data.Macros, "Macros")
	p.printBindings(data.Textures, "Textures")
	p.printBindings(data.StorageBuffers, "Storage Buffers")
	p.printBindings(data.ConstantBuffers, "Constant Buffers")
	p.printBindings(data.InputAttributes, "Input Attributes")
	p.printBindings(data.OutputAttributes, "Output Attributes")
	p.printSamplerStates(data.SamplerStates, "Sampler States")
	p.printRasterizerState(&data.RasterizerState, "Rasterizer state")
	p.printDepthState(&data.DepthState, "Depth state")
	p.printStencilState(&data.StencilState, "Stencil state")
	p.printBlendState(&data.BlendState, "Blend state")
	p.printGlobalOptions(&data.GlobalOptions, "Global options")
	p.printNumThreads(data.NumThreads, "Number of Threads")
}

func (p *Printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *Printer) section(title string, body func()) {
	p.line("%s:", title)
	p.indent++
	body()
	p.indent--
}

func (p *Printer) printIdents(idents []string, title string) {
	p.section(title, func() {
		if len(idents) == 0 {
			p.line("< none >")
			return
		}
		for _, ident := range idents {
			p.line("%s", ident)
		}
	})
}

func (p *Printer) printBindings(slots []BindingSlot, title string) {
	p.section(title, func() {
		if len(slots) == 0 {
			p.line("< none >")
			return
		}

		maxLocation := -1
		for _, slot := range slots {
			if slot.Location > maxLocation {
				maxLocation = slot.Location
			}
		}
		width := len(strconv.Itoa(maxLocation))

		for _, slot := range slots {
			if maxLocation >= 0 {
				if slot.Location >= 0 {
					p.line("%*d: %s", width, slot.Location, slot.Ident)
				} else {
					p.line("%*s  %s", width, "", slot.Ident)
				}
			} else {
				p.line("%s", slot.Ident)
			}
		}
	})
}

func (p *Printer) printSamplerStates(states map[string]SamplerState, title string) {
	p.section(title, func() {
		if len(states) == 0 {
			p.line("< none >")
			return
		}

		names := maps.Keys(states)
		slices.Sort(names)

		for _, name := range names {
			s := states[name]
			p.line("%s", name)
			p.indent++
			p.line("AddressU       = %s", s.AddressU)
			p.line("AddressV       = %s", s.AddressV)
			p.line("AddressW       = %s", s.AddressW)
			p.line("BorderColor    = { %v, %v, %v, %v }",
				s.BorderColor[0], s.BorderColor[1], s.BorderColor[2], s.BorderColor[3])
			p.line("ComparisonFunc = %s", s.ComparisonFunc)
			p.line("FilterMin      = %s", s.FilterMin)
			p.line("FilterMax      = %s", s.FilterMax)
			p.line("FilterMip      = %s", s.FilterMip)
			p.line("MaxAnisotropy  = %d", s.MaxAnisotropy)
			p.line("MaxLOD         = %v", s.MaxLOD)
			p.line("MinLOD         = %v", s.MinLOD)
			p.line("MipLODBias     = %v", s.MipLODBias)
			p.indent--
		}
	})
}

func (p *Printer) printRasterizerState(s *RasterizerState, title string) {
	p.section(title, func() {
		p.line("FillMode        = %s", s.FillMode)
		p.line("CullMode        = %s", s.CullMode)
		p.line("AALine          = %t", s.AntialiasedLineEnable)
		p.line("Multisample     = %t", s.MultisampleEnable)
		p.line("Scissor         = %t", s.ScissorEnable)
	})
}

func (p *Printer) printDepthState(s *DepthState, title string) {
	p.section(title, func() {
		p.line("ReadEnable       = %t", s.ReadEnable)
		p.line("WriteEnable      = %t", s.WriteEnable)
		p.line("ComparisonFunc   = %s", s.CompareFunc)
		p.line("DepthBias        = %v", s.DepthBias)
		p.line("ScaledDepthBias  = %v", s.ScaledDepthBias)
		p.line("DepthClip        = %t", s.DepthClip)
	})
}

func (p *Printer) printStencilOperation(op *StencilOperation) {
	p.line("Fail            = %s", op.Fail)
	p.line("ZFail           = %s", op.ZFail)
	p.line("Pass            = %s", op.Pass)
	p.line("ComparisonFunc  = %s", op.CompareFunc)
}

func (p *Printer) printStencilState(s *StencilState, title string) {
	p.section(title, func() {
		p.line("Enabled         = %t", s.Enabled)
		p.line("Reference       = %d", s.Reference)
		p.line("ReadMask        = %d", s.ReadMask)
		p.line("WriteMask       = %d", s.WriteMask)

		p.line("Back")
		p.indent++
		p.printStencilOperation(&s.Back)
		p.indent--

		p.line("Front")
		p.indent++
		p.printStencilOperation(&s.Front)
		p.indent--
	})
}

func (p *Printer) printBlendOperation(op *BlendOperation) {
	p.line("Source          = %s", op.Source)
	p.line("Destination     = %s", op.Destination)
	p.line("Operation       = %s", op.Operation)
}

func (p *Printer) printBlendState(s *BlendState, title string) {
	p.section(title, func() {
		p.line("AlphaToCoverage       = %t", s.AlphaToCoverage)
		p.line("IndependantBlend      = %t", s.IndependantBlend)

		for i := range s.Targets {
			p.line("Target %d", i)
			p.indent++
			t := &s.Targets[i]
			p.line("Enabled         = %t", t.Enabled)
			p.line("WriteMask       = %d", t.WriteMask)
			p.line("Color")
			p.indent++
			p.printBlendOperation(&t.ColorOp)
			p.indent--
			p.line("Alpha")
			p.indent++
			p.printBlendOperation(&t.AlphaOp)
			p.indent--
			p.indent--
		}
	})
}

func (p *Printer) printGlobalOptions(s *GlobalOptions, title string) {
	p.section(title, func() {
		p.line("SortMode            = %s", s.SortMode)
		p.line("Separable           = %t", s.Separable)
		p.line("Transparent         = %t", s.Transparent)
		p.line("Forward             = %t", s.Forward)
		p.line("Priority            = %d", s.Priority)
	})
}

func (p *Printer) printNumThreads(n NumThreads, title string) {
	p.section(title, func() {
		p.line("X = %d", n.X)
		p.line("Y = %d", n.Y)
		p.line("Z = %d", n.Z)
	})
}
