package ast

// Intrinsic enumerates the built-in functions recognised by the compiler,
// covering global HLSL intrinsics, texture object methods, stream-output
// methods, and the GLSL-only intrinsics produced by lowering.
type Intrinsic uint16

const (
	IntrinsicUndefined Intrinsic = iota

	// Global intrinsics
	IntrinsicAbort
	IntrinsicAbs
	IntrinsicACos
	IntrinsicAll
	IntrinsicAllMemoryBarrier
	IntrinsicAllMemoryBarrierWithGroupSync
	IntrinsicAny
	IntrinsicAsDouble
	IntrinsicAsFloat
	IntrinsicASin
	IntrinsicAsInt
	IntrinsicAsUInt1
	IntrinsicAsUInt3
	IntrinsicATan
	IntrinsicATan2
	IntrinsicCeil
	IntrinsicClamp
	IntrinsicClip
	IntrinsicCos
	IntrinsicCosH
	IntrinsicCountBits
	IntrinsicCross
	IntrinsicDDX
	IntrinsicDDXCoarse
	IntrinsicDDXFine
	IntrinsicDDY
	IntrinsicDDYCoarse
	IntrinsicDDYFine
	IntrinsicDegrees
	IntrinsicDeterminant
	IntrinsicDeviceMemoryBarrier
	IntrinsicDeviceMemoryBarrierWithGroupSync
	IntrinsicDistance
	IntrinsicDot
	IntrinsicDst
	IntrinsicEqual // GLSL only
	IntrinsicExp
	IntrinsicExp2
	IntrinsicF16toF32
	IntrinsicF32toF16
	IntrinsicFaceForward
	IntrinsicFirstBitHigh
	IntrinsicFirstBitLow
	IntrinsicFloor
	IntrinsicFMA
	IntrinsicFMod
	IntrinsicFrac
	IntrinsicFrExp
	IntrinsicFWidth
	IntrinsicGreaterThan      // GLSL only
	IntrinsicGreaterThanEqual // GLSL only
	IntrinsicGroupMemoryBarrier
	IntrinsicGroupMemoryBarrierWithGroupSync
	IntrinsicInterlockedAdd
	IntrinsicInterlockedAnd
	IntrinsicInterlockedCompareExchange
	IntrinsicInterlockedCompareStore
	IntrinsicInterlockedExchange
	IntrinsicInterlockedMax
	IntrinsicInterlockedMin
	IntrinsicInterlockedOr
	IntrinsicInterlockedXor
	IntrinsicIsFinite
	IntrinsicIsInf
	IntrinsicIsNaN
	IntrinsicLdExp
	IntrinsicLength
	IntrinsicLerp
	IntrinsicLessThan      // GLSL only
	IntrinsicLessThanEqual // GLSL only
	IntrinsicLit
	IntrinsicLog
	IntrinsicLog10
	IntrinsicLog2
	IntrinsicMAD
	IntrinsicMax
	IntrinsicMin
	IntrinsicModF
	IntrinsicMul
	IntrinsicNormalize
	IntrinsicNotEqual // GLSL only
	IntrinsicNot      // GLSL only
	IntrinsicPow
	IntrinsicRadians
	IntrinsicRcp
	IntrinsicReflect
	IntrinsicRefract
	IntrinsicReverseBits
	IntrinsicRound
	IntrinsicRSqrt
	IntrinsicSaturate
	IntrinsicSign
	IntrinsicSin
	IntrinsicSinCos
	IntrinsicSinH
	IntrinsicSmoothStep
	IntrinsicSqrt
	IntrinsicStep
	IntrinsicTan
	IntrinsicTanH
	IntrinsicTranspose
	IntrinsicTrunc

	// Texture object methods
	IntrinsicTextureGetDimensions
	IntrinsicTextureQueryLod
	IntrinsicTextureQueryLodUnclamped

	IntrinsicTextureLoad1 // Load(Location)
	IntrinsicTextureLoad2 // Load(Location, SampleIndex)
	IntrinsicTextureLoad3 // Load(Location, SampleIndex, Offset)

	IntrinsicTextureSample2 // Sample(Sampler, Location)
	IntrinsicTextureSample3 // Sample(Sampler, Location, Offset)
	IntrinsicTextureSample4 // Sample(Sampler, Location, Offset, Clamp)
	IntrinsicTextureSample5 // Sample(Sampler, Location, Offset, Clamp, out Status)
	IntrinsicTextureSampleBias3
	IntrinsicTextureSampleBias4
	IntrinsicTextureSampleBias5
	IntrinsicTextureSampleBias6
	IntrinsicTextureSampleCmp3
	IntrinsicTextureSampleCmp4
	IntrinsicTextureSampleCmp5
	IntrinsicTextureSampleCmp6
	IntrinsicTextureSampleCmpLevelZero3
	IntrinsicTextureSampleCmpLevelZero4
	IntrinsicTextureSampleCmpLevelZero5
	IntrinsicTextureSampleGrad4
	IntrinsicTextureSampleGrad5
	IntrinsicTextureSampleGrad6
	IntrinsicTextureSampleGrad7
	IntrinsicTextureSampleLevel3 // SampleLevel(Sampler, Location, LOD)
	IntrinsicTextureSampleLevel4 // SampleLevel(Sampler, Location, LOD, Offset)
	IntrinsicTextureSampleLevel5 // SampleLevel(Sampler, Location, LOD, Offset, out Status)

	// Gather methods: per channel, by argument count
	IntrinsicTextureGather2
	IntrinsicTextureGatherRed2
	IntrinsicTextureGatherGreen2
	IntrinsicTextureGatherBlue2
	IntrinsicTextureGatherAlpha2
	IntrinsicTextureGather3
	IntrinsicTextureGather4
	IntrinsicTextureGatherRed3
	IntrinsicTextureGatherRed4
	IntrinsicTextureGatherGreen3
	IntrinsicTextureGatherGreen4
	IntrinsicTextureGatherBlue3
	IntrinsicTextureGatherBlue4
	IntrinsicTextureGatherAlpha3
	IntrinsicTextureGatherAlpha4
	IntrinsicTextureGatherRed6
	IntrinsicTextureGatherRed7
	IntrinsicTextureGatherGreen6
	IntrinsicTextureGatherGreen7
	IntrinsicTextureGatherBlue6
	IntrinsicTextureGatherBlue7
	IntrinsicTextureGatherAlpha6
	IntrinsicTextureGatherAlpha7

	IntrinsicTextureGatherCmp3
	IntrinsicTextureGatherCmpRed3
	IntrinsicTextureGatherCmpGreen3
	IntrinsicTextureGatherCmpBlue3
	IntrinsicTextureGatherCmpAlpha3
	IntrinsicTextureGatherCmp4
	IntrinsicTextureGatherCmp5
	IntrinsicTextureGatherCmpRed4
	IntrinsicTextureGatherCmpRed5
	IntrinsicTextureGatherCmpGreen4
	IntrinsicTextureGatherCmpGreen5
	IntrinsicTextureGatherCmpBlue4
	IntrinsicTextureGatherCmpBlue5
	IntrinsicTextureGatherCmpAlpha4
	IntrinsicTextureGatherCmpAlpha5
	IntrinsicTextureGatherCmpRed7
	IntrinsicTextureGatherCmpRed8
	IntrinsicTextureGatherCmpGreen7
	IntrinsicTextureGatherCmpGreen8
	IntrinsicTextureGatherCmpBlue7
	IntrinsicTextureGatherCmpBlue8
	IntrinsicTextureGatherCmpAlpha7
	IntrinsicTextureGatherCmpAlpha8

	// Stream-output object methods
	IntrinsicStreamOutputAppend
	IntrinsicStreamOutputRestartStrip

	// Image access intrinsics (GLSL only, produced by lowering)
	IntrinsicImageLoad
	IntrinsicImageStore
	IntrinsicImageAtomicAdd
	IntrinsicImageAtomicAnd
	IntrinsicImageAtomicOr
	IntrinsicImageAtomicXor
	IntrinsicImageAtomicMin
	IntrinsicImageAtomicMax
	IntrinsicImageAtomicCompSwap
	IntrinsicImageAtomicExchange

	IntrinsicPackHalf2x16 // GLSL only
)

// IsGlobalIntrinsic reports whether t is callable without an object prefix.
func IsGlobalIntrinsic(t Intrinsic) bool {
	return t >= IntrinsicAbort && t <= IntrinsicTrunc
}

// IsTextureIntrinsic reports whether t belongs to a texture object.
func IsTextureIntrinsic(t Intrinsic) bool {
	return t >= IntrinsicTextureGetDimensions && t <= IntrinsicTextureGatherCmpAlpha8
}

// IsTextureGatherIntrinsic reports whether t is a texture gather intrinsic.
func IsTextureGatherIntrinsic(t Intrinsic) bool {
	return t >= IntrinsicTextureGather2 && t <= IntrinsicTextureGatherCmpAlpha8
}

// IsTextureSampleIntrinsic reports whether t is a texture sample intrinsic.
func IsTextureSampleIntrinsic(t Intrinsic) bool {
	return t >= IntrinsicTextureSample2 && t <= IntrinsicTextureSampleLevel5
}

// IsTextureCompareIntrinsic reports whether t is a sample or gather
// intrinsic with a compare operation.
func IsTextureCompareIntrinsic(t Intrinsic) bool {
	return (t >= IntrinsicTextureSampleCmp3 && t <= IntrinsicTextureSampleCmpLevelZero5) ||
		(t >= IntrinsicTextureGatherCmp3 && t <= IntrinsicTextureGatherCmpAlpha8)
}

// IsTextureCompareLevelZeroIntrinsic reports whether t is a compare
// intrinsic that only samples the first mip level.
func IsTextureCompareLevelZeroIntrinsic(t Intrinsic) bool {
	return t >= IntrinsicTextureSampleCmpLevelZero3 && t <= IntrinsicTextureSampleCmpLevelZero5
}

// IsTextureLoadIntrinsic reports whether t is a texture load intrinsic.
func IsTextureLoadIntrinsic(t Intrinsic) bool {
	return t >= IntrinsicTextureLoad1 && t <= IntrinsicTextureLoad3
}

// IsStreamOutputIntrinsic reports whether t belongs to a stream-output object.
func IsStreamOutputIntrinsic(t Intrinsic) bool {
	return t == IntrinsicStreamOutputAppend || t == IntrinsicStreamOutputRestartStrip
}

// IsImageIntrinsic reports whether t is an image load/store/atomic intrinsic.
func IsImageIntrinsic(t Intrinsic) bool {
	return t >= IntrinsicImageLoad && t <= IntrinsicImageAtomicExchange
}

// IsInterlockedIntrinsic reports whether t is an interlocked intrinsic.
func IsInterlockedIntrinsic(t Intrinsic) bool {
	return t >= IntrinsicInterlockedAdd && t <= IntrinsicInterlockedXor
}

// CompareOpToIntrinsic returns the GLSL compare-vector intrinsic for a
// comparison operator, or IntrinsicUndefined for non-comparison operators.
func CompareOpToIntrinsic(op BinaryOp) Intrinsic {
	switch op {
	case BinaryOpEqual:
		return IntrinsicEqual
	case BinaryOpNotEqual:
		return IntrinsicNotEqual
	case BinaryOpLess:
		return IntrinsicLessThan
	case BinaryOpGreater:
		return IntrinsicGreaterThan
	case BinaryOpLessEqual:
		return IntrinsicLessThanEqual
	case BinaryOpGreaterEq:
		return IntrinsicGreaterThanEqual
	default:
		return IntrinsicUndefined
	}
}

// InterlockedToImageAtomicIntrinsic returns the image atomic intrinsic for
// an interlocked intrinsic applied to a read/write texture. Non-interlocked
// intrinsics pass through unchanged.
func InterlockedToImageAtomicIntrinsic(t Intrinsic) Intrinsic {
	switch t {
	case IntrinsicInterlockedAdd:
		return IntrinsicImageAtomicAdd
	case IntrinsicInterlockedAnd:
		return IntrinsicImageAtomicAnd
	case IntrinsicInterlockedOr:
		return IntrinsicImageAtomicOr
	case IntrinsicInterlockedXor:
		return IntrinsicImageAtomicXor
	case IntrinsicInterlockedMin:
		return IntrinsicImageAtomicMin
	case IntrinsicInterlockedMax:
		return IntrinsicImageAtomicMax
	case IntrinsicInterlockedCompareExchange, IntrinsicInterlockedCompareStore:
		return IntrinsicImageAtomicCompSwap
	case IntrinsicInterlockedExchange:
		return IntrinsicImageAtomicExchange
	default:
		return t
	}
}

// GetGatherIntrinsicOffsetParamCount returns the number of offset parameters
// accepted by a gather intrinsic (0, 1, or 4).
func GetGatherIntrinsicOffsetParamCount(t Intrinsic) int {
	switch {
	case t >= IntrinsicTextureGather2 && t <= IntrinsicTextureGatherAlpha2:
		return 0
	case t >= IntrinsicTextureGather3 && t <= IntrinsicTextureGatherAlpha4:
		return 1
	case t >= IntrinsicTextureGatherRed6 && t <= IntrinsicTextureGatherAlpha7:
		return 4
	case t >= IntrinsicTextureGatherCmp3 && t <= IntrinsicTextureGatherCmpAlpha3:
		return 0
	case t >= IntrinsicTextureGatherCmp4 && t <= IntrinsicTextureGatherCmpAlpha5:
		return 1
	case t >= IntrinsicTextureGatherCmpRed7 && t <= IntrinsicTextureGatherCmpAlpha8:
		return 4
	default:
		return 0
	}
}

// GetGatherIntrinsicComponentIndex maps a gather intrinsic to its component
// index: red 0, green 1, blue 2, alpha 3. Plain gathers read red.
func GetGatherIntrinsicComponentIndex(t Intrinsic) int {
	switch t {
	case IntrinsicTextureGatherGreen2, IntrinsicTextureGatherGreen3, IntrinsicTextureGatherGreen4,
		IntrinsicTextureGatherGreen6, IntrinsicTextureGatherGreen7,
		IntrinsicTextureGatherCmpGreen3, IntrinsicTextureGatherCmpGreen4, IntrinsicTextureGatherCmpGreen5,
		IntrinsicTextureGatherCmpGreen7, IntrinsicTextureGatherCmpGreen8:
		return 1
	case IntrinsicTextureGatherBlue2, IntrinsicTextureGatherBlue3, IntrinsicTextureGatherBlue4,
		IntrinsicTextureGatherBlue6, IntrinsicTextureGatherBlue7,
		IntrinsicTextureGatherCmpBlue3, IntrinsicTextureGatherCmpBlue4, IntrinsicTextureGatherCmpBlue5,
		IntrinsicTextureGatherCmpBlue7, IntrinsicTextureGatherCmpBlue8:
		return 2
	case IntrinsicTextureGatherAlpha2, IntrinsicTextureGatherAlpha3, IntrinsicTextureGatherAlpha4,
		IntrinsicTextureGatherAlpha6, IntrinsicTextureGatherAlpha7,
		IntrinsicTextureGatherCmpAlpha3, IntrinsicTextureGatherCmpAlpha4, IntrinsicTextureGatherCmpAlpha5,
		IntrinsicTextureGatherCmpAlpha7, IntrinsicTextureGatherCmpAlpha8:
		return 3
	default:
		return 0
	}
}
