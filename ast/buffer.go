package ast

// UniformBufferType distinguishes constant buffers from texture buffers.
type UniformBufferType uint8

const (
	UniformBufferTypeUndefined UniformBufferType = iota

	UniformBufferTypeConstantBuffer // "cbuffer"
	UniformBufferTypeTextureBuffer  // "tbuffer"
)

// BufferType enumerates buffer and texture object types.
type BufferType uint8

const (
	BufferTypeUndefined BufferType = iota

	// Storage buffers
	BufferTypeBuffer
	BufferTypeStructuredBuffer
	BufferTypeByteAddressBuffer
	BufferTypeRWBuffer
	BufferTypeRWStructuredBuffer
	BufferTypeRWByteAddressBuffer
	BufferTypeAppendStructuredBuffer
	BufferTypeConsumeStructuredBuffer

	// Read/write textures
	BufferTypeRWTexture1D
	BufferTypeRWTexture1DArray
	BufferTypeRWTexture2D
	BufferTypeRWTexture2DArray
	BufferTypeRWTexture3D

	// Textures
	BufferTypeTexture1D
	BufferTypeTexture1DArray
	BufferTypeTexture2D
	BufferTypeTexture2DArray
	BufferTypeTexture3D
	BufferTypeTextureCube
	BufferTypeTextureCubeArray
	BufferTypeTexture2DMS
	BufferTypeTexture2DMSArray

	// Texture of unspecified dimension (DX9-style "texture" keyword).
	BufferTypeGenericTexture

	// Patches
	BufferTypeInputPatch
	BufferTypeOutputPatch

	// Streams
	BufferTypePointStream
	BufferTypeLineStream
	BufferTypeTriangleStream
)

var bufferTypeNames = map[BufferType]string{
	BufferTypeBuffer:                  "Buffer",
	BufferTypeStructuredBuffer:        "StructuredBuffer",
	BufferTypeByteAddressBuffer:       "ByteAddressBuffer",
	BufferTypeRWBuffer:                "RWBuffer",
	BufferTypeRWStructuredBuffer:      "RWStructuredBuffer",
	BufferTypeRWByteAddressBuffer:     "RWByteAddressBuffer",
	BufferTypeAppendStructuredBuffer:  "AppendStructuredBuffer",
	BufferTypeConsumeStructuredBuffer: "ConsumeStructuredBuffer",
	BufferTypeRWTexture1D:             "RWTexture1D",
	BufferTypeRWTexture1DArray:        "RWTexture1DArray",
	BufferTypeRWTexture2D:             "RWTexture2D",
	BufferTypeRWTexture2DArray:        "RWTexture2DArray",
	BufferTypeRWTexture3D:             "RWTexture3D",
	BufferTypeTexture1D:               "Texture1D",
	BufferTypeTexture1DArray:          "Texture1DArray",
	BufferTypeTexture2D:               "Texture2D",
	BufferTypeTexture2DArray:          "Texture2DArray",
	BufferTypeTexture3D:               "Texture3D",
	BufferTypeTextureCube:             "TextureCube",
	BufferTypeTextureCubeArray:        "TextureCubeArray",
	BufferTypeTexture2DMS:             "Texture2DMS",
	BufferTypeTexture2DMSArray:        "Texture2DMSArray",
	BufferTypeGenericTexture:          "texture",
	BufferTypeInputPatch:              "InputPatch",
	BufferTypeOutputPatch:             "OutputPatch",
	BufferTypePointStream:             "PointStream",
	BufferTypeLineStream:              "LineStream",
	BufferTypeTriangleStream:          "TriangleStream",
}

// String returns the source-language spelling of the buffer type.
func (t BufferType) String() string {
	if s, ok := bufferTypeNames[t]; ok {
		return s
	}
	return "undefined"
}

// StringToBufferType parses a source-language buffer type name.
func StringToBufferType(s string) (BufferType, error) {
	for t, name := range bufferTypeNames {
		if name == s {
			return t, nil
		}
	}
	return BufferTypeUndefined, mapFailed("string", "BufferType")
}

// IsStorageBufferType reports whether t lowers to a GLSL 'buffer' block.
func IsStorageBufferType(t BufferType) bool {
	return t >= BufferTypeBuffer && t <= BufferTypeConsumeStructuredBuffer
}

// IsRWBufferType reports whether t is a read/write buffer or texture type.
func IsRWBufferType(t BufferType) bool {
	return t >= BufferTypeRWBuffer && t <= BufferTypeRWTexture3D
}

// IsTextureBufferType reports whether t is a texture type.
func IsTextureBufferType(t BufferType) bool {
	return t >= BufferTypeRWTexture1D && t <= BufferTypeGenericTexture
}

// IsTextureMSBufferType reports whether t is a multi-sampled texture.
func IsTextureMSBufferType(t BufferType) bool {
	return t == BufferTypeTexture2DMS || t == BufferTypeTexture2DMSArray
}

// IsRWTextureBufferType reports whether t is a read/write texture
// (lowered to a GLSL 'image...' type).
func IsRWTextureBufferType(t BufferType) bool {
	return t >= BufferTypeRWTexture1D && t <= BufferTypeRWTexture3D
}

// IsPatchBufferType reports whether t is an input or output patch.
func IsPatchBufferType(t BufferType) bool {
	return t == BufferTypeInputPatch || t == BufferTypeOutputPatch
}

// IsStreamBufferType reports whether t is a point/line/triangle stream.
func IsStreamBufferType(t BufferType) bool {
	return t >= BufferTypePointStream && t <= BufferTypeTriangleStream
}

// GetBufferTypeTextureDim returns the coordinate dimension of a texture type
// in the range [1, 4], or 0 for non-texture types. The generic texture type
// has no dimension until it is resolved.
func GetBufferTypeTextureDim(t BufferType) int {
	switch t {
	case BufferTypeTexture1D, BufferTypeRWTexture1D:
		return 1
	case BufferTypeTexture1DArray, BufferTypeRWTexture1DArray,
		BufferTypeTexture2D, BufferTypeRWTexture2D,
		BufferTypeTexture2DMS:
		return 2
	case BufferTypeTexture2DArray, BufferTypeRWTexture2DArray,
		BufferTypeTexture2DMSArray,
		BufferTypeTexture3D, BufferTypeRWTexture3D,
		BufferTypeTextureCube:
		return 3
	case BufferTypeTextureCubeArray:
		return 4
	default:
		return 0
	}
}

// SamplerType enumerates sampler object and sampler state types.
type SamplerType uint8

const (
	SamplerTypeUndefined SamplerType = iota

	// Samplers
	SamplerType1D
	SamplerType2D
	SamplerType3D
	SamplerTypeCube
	SamplerType2DRect
	SamplerType1DArray
	SamplerType2DArray
	SamplerTypeCubeArray
	SamplerTypeBuffer
	SamplerType2DMS
	SamplerType2DMSArray
	SamplerType1DShadow
	SamplerType2DShadow
	SamplerTypeCubeShadow
	SamplerType2DRectShadow
	SamplerType1DArrayShadow
	SamplerType2DArrayShadow
	SamplerTypeCubeArrayShadow

	// Sampler states
	SamplerTypeState           // SamplerState
	SamplerTypeComparisonState // SamplerComparisonState
)

// IsSamplerStateType reports whether t is a sampler state type, i.e. a
// sampler object that carries only sampling parameters and no texel source.
func IsSamplerStateType(t SamplerType) bool {
	return t == SamplerTypeState || t == SamplerTypeComparisonState
}

// IsSamplerTypeShadow reports whether t is a shadow sampler.
func IsSamplerTypeShadow(t SamplerType) bool {
	return t >= SamplerType1DShadow && t <= SamplerTypeCubeArrayShadow
}

// IsSamplerTypeArray reports whether t is an array sampler.
func IsSamplerTypeArray(t SamplerType) bool {
	switch t {
	case SamplerType1DArray, SamplerType2DArray, SamplerTypeCubeArray,
		SamplerType2DMSArray, SamplerType1DArrayShadow,
		SamplerType2DArrayShadow, SamplerTypeCubeArrayShadow:
		return true
	default:
		return false
	}
}

// GetSamplerTypeTextureDim returns the coordinate dimension of a texture
// sampler in the range [1, 4], or 0 for sampler states.
func GetSamplerTypeTextureDim(t SamplerType) int {
	switch t {
	case SamplerType1D, SamplerType1DShadow:
		return 1
	case SamplerType2D, SamplerType2DRect, SamplerType1DArray, SamplerTypeBuffer,
		SamplerType2DMS, SamplerType2DShadow, SamplerType2DRectShadow,
		SamplerType1DArrayShadow:
		return 2
	case SamplerType3D, SamplerTypeCube, SamplerType2DArray, SamplerType2DMSArray,
		SamplerTypeCubeShadow, SamplerType2DArrayShadow:
		return 3
	case SamplerTypeCubeArray, SamplerTypeCubeArrayShadow:
		return 4
	default:
		return 0
	}
}

// TextureTypeToSamplerType maps a texture buffer type to the sampler type
// that samples it.
func TextureTypeToSamplerType(t BufferType) SamplerType {
	switch t {
	case BufferTypeTexture1D:
		return SamplerType1D
	case BufferTypeTexture1DArray:
		return SamplerType1DArray
	case BufferTypeTexture2D:
		return SamplerType2D
	case BufferTypeTexture2DArray:
		return SamplerType2DArray
	case BufferTypeTexture3D:
		return SamplerType3D
	case BufferTypeTextureCube:
		return SamplerTypeCube
	case BufferTypeTextureCubeArray:
		return SamplerTypeCubeArray
	case BufferTypeTexture2DMS:
		return SamplerType2DMS
	case BufferTypeTexture2DMSArray:
		return SamplerType2DMSArray
	default:
		return SamplerTypeUndefined
	}
}

// SamplerTypeToShadowSamplerType converts a sampler into its shadow variant,
// if one exists; otherwise t is returned unchanged.
func SamplerTypeToShadowSamplerType(t SamplerType) SamplerType {
	switch t {
	case SamplerType1D:
		return SamplerType1DShadow
	case SamplerType2D:
		return SamplerType2DShadow
	case SamplerTypeCube:
		return SamplerTypeCubeShadow
	case SamplerType2DRect:
		return SamplerType2DRectShadow
	case SamplerType1DArray:
		return SamplerType1DArrayShadow
	case SamplerType2DArray:
		return SamplerType2DArrayShadow
	case SamplerTypeCubeArray:
		return SamplerTypeCubeArrayShadow
	default:
		return t
	}
}

// StateType enumerates pipeline state declaration kinds.
type StateType uint8

const (
	StateTypeUndefined StateType = iota

	StateTypeRasterizer
	StateTypeDepth
	StateTypeStencil
	StateTypeBlend
	StateTypeOptions
)

// RegisterType enumerates register kinds by their slot character.
type RegisterType uint8

const (
	RegisterTypeUndefined RegisterType = iota

	RegisterTypeConstantBuffer      // 'b' register
	RegisterTypeTextureBuffer       // 't' register
	RegisterTypeBufferOffset        // 'c' register
	RegisterTypeSampler             // 's' register
	RegisterTypeUnorderedAccessView // 'u' register
)

// CharToRegisterType returns the register type for a slot character.
func CharToRegisterType(c byte) RegisterType {
	switch c {
	case 'b':
		return RegisterTypeConstantBuffer
	case 't':
		return RegisterTypeTextureBuffer
	case 'c':
		return RegisterTypeBufferOffset
	case 's':
		return RegisterTypeSampler
	case 'u':
		return RegisterTypeUnorderedAccessView
	default:
		return RegisterTypeUndefined
	}
}

// RegisterTypeToChar returns the slot character for a register type,
// or 0 for the undefined type.
func RegisterTypeToChar(t RegisterType) byte {
	switch t {
	case RegisterTypeConstantBuffer:
		return 'b'
	case RegisterTypeTextureBuffer:
		return 't'
	case RegisterTypeBufferOffset:
		return 'c'
	case RegisterTypeSampler:
		return 's'
	case RegisterTypeUnorderedAccessView:
		return 'u'
	default:
		return 0
	}
}

// String returns a descriptive name for the register type.
func (t RegisterType) String() string {
	switch t {
	case RegisterTypeConstantBuffer:
		return "ConstantBuffer"
	case RegisterTypeTextureBuffer:
		return "TextureBuffer"
	case RegisterTypeBufferOffset:
		return "BufferOffset"
	case RegisterTypeSampler:
		return "Sampler"
	case RegisterTypeUnorderedAccessView:
		return "UnorderedAccessView"
	default:
		return "undefined"
	}
}
