// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package reflection extracts a shader's external contract into a plain-data
// record: resource bindings, pipeline state blocks, uniforms with default
// values, entry-point attributes, and compute launch geometry.
package reflection

import (
	"math"

	"github.com/pkg/errors"

	"github.com/gogpu/xsl/ast"
)

// Filter enumerates sampler filters.
type Filter uint8

const (
	FilterNone Filter = iota + 1
	FilterPoint
	FilterLinear
	FilterAnisotropic
)

// TextureAddressMode enumerates texture addressing modes.
type TextureAddressMode uint8

const (
	AddressWrap TextureAddressMode = iota + 1
	AddressMirror
	AddressClamp
	AddressBorder
	AddressMirrorOnce
)

// ComparisonFunc enumerates sample comparison functions.
type ComparisonFunc uint8

const (
	CompareNever ComparisonFunc = iota + 1
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

// FillMode enumerates rasterizer fill modes.
type FillMode uint8

const (
	FillWire FillMode = iota + 1
	FillSolid
)

// CullMode enumerates rasterizer cull modes.
type CullMode uint8

const (
	CullClockwise CullMode = iota + 1
	CullCounterClockwise
	CullNone
)

// StencilOpType enumerates stencil operations.
type StencilOpType uint8

const (
	StencilOpKeep StencilOpType = iota + 1
	StencilOpZero
	StencilOpReplace
	StencilOpIncrement
	StencilOpDecrement
	StencilOpIncrementWrap
	StencilOpDecrementWrap
	StencilOpInverse
)

// BlendFactor enumerates blend operand factors.
type BlendFactor uint8

const (
	BlendFactorOne BlendFactor = iota + 1
	BlendFactorZero
	BlendFactorDestRGB
	BlendFactorSourceRGB
	BlendFactorDestInvRGB
	BlendFactorSourceInvRGB
	BlendFactorDestA
	BlendFactorSourceA
	BlendFactorDestInvA
	BlendFactorSourceInvA
)

// BlendOpType enumerates blend operations.
type BlendOpType uint8

const (
	BlendOpAdd BlendOpType = iota + 1
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMinimum
	BlendOpMaximum
)

// SortMode enumerates element render orderings.
type SortMode uint8

const (
	SortNone SortMode = iota + 1
	SortBackToFront
	SortFrontToBack
)

/* ----- Enum string maps ----- */

var filterNames = map[Filter]string{
	FilterNone:        "none",
	FilterPoint:       "point",
	FilterLinear:      "linear",
	FilterAnisotropic: "anisotropic",
}

var addressModeNames = map[TextureAddressMode]string{
	AddressWrap:       "wrap",
	AddressMirror:     "mirror",
	AddressClamp:      "clamp",
	AddressBorder:     "border",
	AddressMirrorOnce: "mirroronce",
}

var compareFuncNames = map[ComparisonFunc]string{
	CompareNever:        "never",
	CompareLess:         "less",
	CompareEqual:        "equal",
	CompareLessEqual:    "lessequal",
	CompareGreater:      "greater",
	CompareNotEqual:     "notequal",
	CompareGreaterEqual: "greaterequal",
	CompareAlways:       "always",
}

var fillModeNames = map[FillMode]string{
	FillWire:  "wire",
	FillSolid: "solid",
}

var cullModeNames = map[CullMode]string{
	CullClockwise:        "cw",
	CullCounterClockwise: "ccw",
	CullNone:             "none",
}

var stencilOpNames = map[StencilOpType]string{
	StencilOpKeep:          "keep",
	StencilOpZero:          "zero",
	StencilOpReplace:       "replace",
	StencilOpIncrement:     "inc",
	StencilOpDecrement:     "dec",
	StencilOpIncrementWrap: "incwrap",
	StencilOpDecrementWrap: "decwrap",
	StencilOpInverse:       "inverse",
}

var blendFactorNames = map[BlendFactor]string{
	BlendFactorOne:          "one",
	BlendFactorZero:         "zero",
	BlendFactorDestRGB:      "dstRGB",
	BlendFactorSourceRGB:    "srcRGB",
	BlendFactorDestInvRGB:   "dstIRGB",
	BlendFactorSourceInvRGB: "srcIRGB",
	BlendFactorDestA:        "dstA",
	BlendFactorSourceA:      "srcA",
	BlendFactorDestInvA:     "dstIA",
	BlendFactorSourceInvA:   "srcIA",
}

var blendOpNames = map[BlendOpType]string{
	BlendOpAdd:             "add",
	BlendOpSubtract:        "sub",
	BlendOpReverseSubtract: "rsub",
	BlendOpMinimum:         "min",
	BlendOpMaximum:         "max",
}

var sortModeNames = map[SortMode]string{
	SortNone:        "none",
	SortBackToFront: "backtofront",
	SortFrontToBack: "fronttoback",
}

func enumToString[T comparable](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return "undefined"
}

func stringToEnum[T comparable](names map[T]string, s, typeName string) (T, error) {
	for v, name := range names {
		if name == s {
			return v, nil
		}
	}
	var zero T
	return zero, errors.Wrapf(ast.ErrMapFailed, "failed to map string %q to %s", s, typeName)
}

func (t Filter) String() string             { return enumToString(filterNames, t) }
func (t TextureAddressMode) String() string { return enumToString(addressModeNames, t) }
func (t ComparisonFunc) String() string     { return enumToString(compareFuncNames, t) }
func (t FillMode) String() string           { return enumToString(fillModeNames, t) }
func (t CullMode) String() string           { return enumToString(cullModeNames, t) }
func (t StencilOpType) String() string      { return enumToString(stencilOpNames, t) }
func (t BlendFactor) String() string        { return enumToString(blendFactorNames, t) }
func (t BlendOpType) String() string        { return enumToString(blendOpNames, t) }
func (t SortMode) String() string           { return enumToString(sortModeNames, t) }

// StringToFilter parses a sampler filter name.
func StringToFilter(s string) (Filter, error) { return stringToEnum(filterNames, s, "Filter") }

// StringToTexAddressMode parses a texture address mode name.
func StringToTexAddressMode(s string) (TextureAddressMode, error) {
	return stringToEnum(addressModeNames, s, "TextureAddressMode")
}

// StringToCompareFunc parses a comparison function name.
func StringToCompareFunc(s string) (ComparisonFunc, error) {
	return stringToEnum(compareFuncNames, s, "ComparisonFunc")
}

// StringToFillMode parses a fill mode name.
func StringToFillMode(s string) (FillMode, error) { return stringToEnum(fillModeNames, s, "FillMode") }

// StringToCullMode parses a cull mode name.
func StringToCullMode(s string) (CullMode, error) { return stringToEnum(cullModeNames, s, "CullMode") }

// StringToStencilOpType parses a stencil operation name.
func StringToStencilOpType(s string) (StencilOpType, error) {
	return stringToEnum(stencilOpNames, s, "StencilOpType")
}

// StringToBlendFactor parses a blend factor name.
func StringToBlendFactor(s string) (BlendFactor, error) {
	return stringToEnum(blendFactorNames, s, "BlendFactor")
}

// StringToBlendOpType parses a blend operation name.
func StringToBlendOpType(s string) (BlendOpType, error) {
	return stringToEnum(blendOpNames, s, "BlendOpType")
}

// StringToSortMode parses a sort mode name.
func StringToSortMode(s string) (SortMode, error) { return stringToEnum(sortModeNames, s, "SortMode") }

/* ----- Record structures ----- */

// SamplerState is a static sampler descriptor.
type SamplerState struct {
	FilterMin      Filter
	FilterMax      Filter
	FilterMip      Filter
	AddressU       TextureAddressMode
	AddressV       TextureAddressMode
	AddressW       TextureAddressMode
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc ComparisonFunc
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32

	IsNonDefault bool
	Alias        string
}

// NewSamplerState returns a sampler state with default values.
func NewSamplerState() SamplerState {
	return SamplerState{
		FilterMin:      FilterLinear,
		FilterMax:      FilterLinear,
		FilterMip:      FilterLinear,
		AddressU:       AddressWrap,
		AddressV:       AddressWrap,
		AddressW:       AddressWrap,
		MaxAnisotropy:  1,
		ComparisonFunc: CompareAlways,
		MinLOD:         -math.MaxFloat32,
		MaxLOD:         math.MaxFloat32,
	}
}

// RasterizerState holds the options controlling rasterization.
type RasterizerState struct {
	FillMode              FillMode
	CullMode              CullMode
	ScissorEnable         bool
	MultisampleEnable     bool
	AntialiasedLineEnable bool
}

// NewRasterizerState returns the default rasterizer state.
func NewRasterizerState() RasterizerState {
	return RasterizerState{
		FillMode:          FillSolid,
		CullMode:          CullCounterClockwise,
		MultisampleEnable: true,
	}
}

// DepthState holds the options controlling depth buffer operations.
type DepthState struct {
	ReadEnable      bool
	WriteEnable     bool
	CompareFunc     ComparisonFunc
	DepthBias       float32
	ScaledDepthBias float32
	DepthClip       bool
}

// NewDepthState returns the default depth state.
func NewDepthState() DepthState {
	return DepthState{
		ReadEnable:  true,
		WriteEnable: true,
		CompareFunc: CompareLess,
		DepthClip:   true,
	}
}

// StencilOperation holds the per-face stencil operations.
type StencilOperation struct {
	Fail        StencilOpType
	ZFail       StencilOpType
	Pass        StencilOpType
	CompareFunc ComparisonFunc
}

// NewStencilOperation returns the default stencil operation block.
func NewStencilOperation() StencilOperation {
	return StencilOperation{
		Fail:        StencilOpKeep,
		ZFail:       StencilOpKeep,
		Pass:        StencilOpKeep,
		CompareFunc: CompareAlways,
	}
}

// StencilState holds the options controlling stencil buffer operations.
type StencilState struct {
	Enabled   bool
	Reference int32
	ReadMask  uint8
	WriteMask uint8
	Front     StencilOperation
	Back      StencilOperation
}

// NewStencilState returns the default stencil state.
func NewStencilState() StencilState {
	return StencilState{
		ReadMask:  0xFF,
		WriteMask: 0xFF,
		Front:     NewStencilOperation(),
		Back:      NewStencilOperation(),
	}
}

// BlendOperation describes one blend equation.
type BlendOperation struct {
	Source      BlendFactor
	Destination BlendFactor
	Operation   BlendOpType
}

// NewBlendOperation returns the default blend operation.
func NewBlendOperation() BlendOperation {
	return BlendOperation{
		Source:      BlendFactorOne,
		Destination: BlendFactorZero,
		Operation:   BlendOpAdd,
	}
}

// BlendStateTarget holds the blend state of a single render target.
type BlendStateTarget struct {
	Enabled   bool
	WriteMask int8
	ColorOp   BlendOperation
	AlphaOp   BlendOperation
}

// NewBlendStateTarget returns the default per-target blend state.
func NewBlendStateTarget() BlendStateTarget {
	return BlendStateTarget{
		WriteMask: 0xF,
		ColorOp:   NewBlendOperation(),
		AlphaOp:   NewBlendOperation(),
	}
}

// MaxNumRenderTargets bounds the blend state target array.
const MaxNumRenderTargets = 8

// BlendState holds the options controlling blending.
type BlendState struct {
	AlphaToCoverage  bool
	IndependantBlend bool
	Targets          [MaxNumRenderTargets]BlendStateTarget
}

// NewBlendState returns the default blend state.
func NewBlendState() BlendState {
	var b BlendState
	for i := range b.Targets {
		b.Targets[i] = NewBlendStateTarget()
	}
	return b
}

// GlobalOptions holds shader-global options.
type GlobalOptions struct {
	SortMode    SortMode
	Separable   bool
	Transparent bool
	Forward     bool
	Priority    int32
}

// NewGlobalOptions returns the default global options.
func NewGlobalOptions() GlobalOptions {
	return GlobalOptions{SortMode: SortFrontToBack}
}

// BindingSlot is the (identifier, location) pair the GPU uses to bind a
// resource. A location of -1 means the location has not been set.
type BindingSlot struct {
	Ident    string
	Location int
}

// UniformType classifies a uniform entry.
type UniformType uint8

const (
	UniformTypeBuffer UniformType = iota
	UniformTypeUniformBuffer
	UniformTypeSampler
	UniformTypeVariable
	UniformTypeStruct
)

// UniformFlags further qualifies a uniform entry.
type UniformFlags uint8

const (
	// UniformFlagInternal marks engine-internal uniforms.
	UniformFlagInternal UniformFlags = 1 << iota

	// UniformFlagColor marks color-typed uniforms.
	UniformFlagColor
)

// Uniform is a single element of a constant buffer or an opaque binding.
type Uniform struct {
	Ident string
	Type  UniformType

	// BaseType determines the actual element type; its meaning depends on
	// Type (a data type index for variables, a buffer type index for
	// buffers).
	BaseType int

	// UniformBlock is the index of the owning uniform block, or -1.
	UniformBlock int

	// DefaultValue indexes the shared default-value pool, or -1.
	DefaultValue int

	Flags UniformFlags

	// SpriteUVRef names the texture whose sprite animation UVs this
	// parameter receives, if any.
	SpriteUVRef string
}

// NewUniform returns a uniform entry with no block and no default value.
func NewUniform(ident string, typ UniformType) Uniform {
	return Uniform{
		Ident:        ident,
		Type:         typ,
		UniformBlock: -1,
		DefaultValue: -1,
	}
}

// DefaultValue is the raw default-value payload of a uniform, tagged by the
// declared type's shape.
type DefaultValue struct {
	Boolean bool
	Integer int32
	Matrix  [16]float32
	IMatrix [4]int32
	Handle  int32
}

// ParameterFlags encodes the direction of a function parameter.
type ParameterFlags uint8

const (
	ParameterIn ParameterFlags = 1 << iota
	ParameterOut
)

// Parameter is a single function parameter.
type Parameter struct {
	Ident string
	Type  ast.DataType
	Flags ParameterFlags
}

// Function describes a function defined in the program. A void return is
// distinguished from an unrepresentable (non-base) return type.
type Function struct {
	Ident      string
	ReturnType ast.DataType
	Void       bool
	Parameters []Parameter
}

// NumThreads is the compute work group size.
type NumThreads struct {
	X int
	Y int
	Z int
}

// ReflectionData is the complete reflection record of one shader.
type ReflectionData struct {
	// Macros holds all defined macros after pre-processing.
	Macros []string

	Textures         []BindingSlot
	StorageBuffers   []BindingSlot
	ConstantBuffers  []BindingSlot
	InputAttributes  []BindingSlot
	OutputAttributes []BindingSlot

	SamplerStates map[string]SamplerState

	BlendState      BlendState
	RasterizerState RasterizerState
	DepthState      DepthState
	StencilState    StencilState
	GlobalOptions   GlobalOptions

	NumThreads NumThreads

	Uniforms      []Uniform
	DefaultValues []DefaultValue
	Functions     []Function
}

// NewReflectionData returns a reflection record with default state blocks.
func NewReflectionData() *ReflectionData {
	return &ReflectionData{
		SamplerStates:   make(map[string]SamplerState),
		BlendState:      NewBlendState(),
		RasterizerState: NewRasterizerState(),
		DepthState:      NewDepthState(),
		StencilState:    NewStencilState(),
		GlobalOptions:   NewGlobalOptions(),
	}
}
