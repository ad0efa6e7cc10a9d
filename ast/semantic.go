package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ShaderTarget enumerates the shader stages a compilation targets.
type ShaderTarget uint8

const (
	TargetUndefined ShaderTarget = iota

	TargetVertexShader
	TargetTessControlShader
	TargetTessEvaluationShader
	TargetGeometryShader
	TargetFragmentShader
	TargetComputeShader
)

// String returns a descriptive name for the shader target.
func (t ShaderTarget) String() string {
	switch t {
	case TargetVertexShader:
		return "vertex"
	case TargetTessControlShader:
		return "tess-control"
	case TargetTessEvaluationShader:
		return "tess-evaluation"
	case TargetGeometryShader:
		return "geometry"
	case TargetFragmentShader:
		return "fragment"
	case TargetComputeShader:
		return "compute"
	default:
		return "undefined"
	}
}

// Semantic enumerates system value semantics (vertex input is omitted;
// those appear as user-defined semantics).
type Semantic uint8

const (
	SemanticUndefined Semantic = iota

	// SemanticUserDefined marks a user defined semantic; the name lives in
	// IndexedSemantic.
	SemanticUserDefined

	SemanticClipDistance
	SemanticCullDistance
	SemanticCoverage
	SemanticDepth
	SemanticDepthGreaterEqual
	SemanticDepthLessEqual
	SemanticDispatchThreadID
	SemanticDomainLocation
	SemanticFragCoord
	SemanticGroupID
	SemanticGroupIndex
	SemanticGroupThreadID
	SemanticGSInstanceID
	SemanticInnerCoverage
	SemanticInsideTessFactor
	SemanticInstanceID
	SemanticIsFrontFace
	SemanticOutputControlPointID
	SemanticPointSize
	SemanticPrimitiveID
	SemanticRenderTargetArrayIndex
	SemanticSampleIndex
	SemanticStencilRef
	SemanticTarget
	SemanticTessFactor
	SemanticVertexID
	SemanticVertexPosition
	SemanticViewportArrayIndex
)

var semanticNames = map[Semantic]string{
	SemanticClipDistance:           "SV_ClipDistance",
	SemanticCullDistance:           "SV_CullDistance",
	SemanticCoverage:               "SV_Coverage",
	SemanticDepth:                  "SV_Depth",
	SemanticDepthGreaterEqual:      "SV_DepthGreaterEqual",
	SemanticDepthLessEqual:         "SV_DepthLessEqual",
	SemanticDispatchThreadID:       "SV_DispatchThreadID",
	SemanticDomainLocation:         "SV_DomainLocation",
	SemanticFragCoord:              "SV_Position",
	SemanticGroupID:                "SV_GroupID",
	SemanticGroupIndex:             "SV_GroupIndex",
	SemanticGroupThreadID:          "SV_GroupThreadID",
	SemanticGSInstanceID:           "SV_GSInstanceID",
	SemanticInnerCoverage:          "SV_InnerCoverage",
	SemanticInsideTessFactor:       "SV_InsideTessFactor",
	SemanticInstanceID:             "SV_InstanceID",
	SemanticIsFrontFace:            "SV_IsFrontFace",
	SemanticOutputControlPointID:   "SV_OutputControlPointID",
	SemanticPointSize:              "PSIZE",
	SemanticPrimitiveID:            "SV_PrimitiveID",
	SemanticRenderTargetArrayIndex: "SV_RenderTargetArrayIndex",
	SemanticSampleIndex:            "SV_SampleIndex",
	SemanticStencilRef:             "SV_StencilRef",
	SemanticTarget:                 "SV_Target",
	SemanticTessFactor:             "SV_TessFactor",
	SemanticVertexID:               "SV_VertexID",
	SemanticVertexPosition:         "SV_Position",
	SemanticViewportArrayIndex:     "SV_ViewportArrayIndex",
}

// IsSystemSemantic reports whether t is a system value semantic.
func IsSystemSemantic(t Semantic) bool {
	return t > SemanticUserDefined
}

// IsUserSemantic reports whether t is a user defined semantic.
func IsUserSemantic(t Semantic) bool {
	return t == SemanticUserDefined
}

// SemanticToString returns the HLSL spelling of a system value semantic.
// User defined and undefined semantics yield the empty string; use
// IndexedSemantic.String for the full form.
func SemanticToString(t Semantic) string {
	return semanticNames[t]
}

// IndexedSemantic pairs a semantic with an integer index and, for user
// defined semantics, the free-form semantic name.
type IndexedSemantic struct {
	semantic Semantic
	index    int
	userName string

	// explicitIndex records that a user semantic name spelled out its
	// index, so String keeps a trailing "0".
	explicitIndex bool
}

// NewIndexedSemantic builds an indexed system value semantic.
func NewIndexedSemantic(semantic Semantic, index int) IndexedSemantic {
	return IndexedSemantic{semantic: semantic, index: index}
}

// NewUserSemantic builds a user defined semantic from its name. A trailing
// decimal index in the name is split off into the semantic index
// ("TEXCOORD3" becomes name "TEXCOORD", index 3).
func NewUserSemantic(name string) IndexedSemantic {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	index := 0
	if i < len(name) {
		index, _ = strconv.Atoi(name[i:])
	}
	return IndexedSemantic{semantic: SemanticUserDefined, index: index, userName: name[:i], explicitIndex: i < len(name)}
}

// Semantic returns the semantic kind.
func (s IndexedSemantic) Semantic() Semantic { return s.semantic }

// Index returns the semantic index.
func (s IndexedSemantic) Index() int { return s.index }

// IsValid reports whether the semantic is defined.
func (s IndexedSemantic) IsValid() bool { return s.semantic != SemanticUndefined }

// IsSystemValue reports whether the semantic is a system value.
func (s IndexedSemantic) IsSystemValue() bool { return IsSystemSemantic(s.semantic) }

// IsUserDefined reports whether the semantic is user defined.
func (s IndexedSemantic) IsUserDefined() bool { return IsUserSemantic(s.semantic) }

// Less compares two indexed semantics for a strict-weak order:
// by semantic kind, then index, then user name.
func (s IndexedSemantic) Less(rhs IndexedSemantic) bool {
	if s.semantic != rhs.semantic {
		return s.semantic < rhs.semantic
	}
	if s.index != rhs.index {
		return s.index < rhs.index
	}
	return s.userName < rhs.userName
}

// ResetIndex overwrites the semantic index.
func (s *IndexedSemantic) ResetIndex(index int) { s.index = index }

// MakeUserDefined converts a system value semantic into a user defined one.
// If name is empty, the system value spelling is kept as the user name.
func (s *IndexedSemantic) MakeUserDefined(name string) {
	if name == "" {
		name = SemanticToString(s.semantic)
	}
	s.semantic = SemanticUserDefined
	s.userName = name
}

// String returns the full semantic spelling including the index.
func (s IndexedSemantic) String() string {
	switch {
	case s.semantic == SemanticUndefined:
		return ""
	case s.semantic == SemanticUserDefined:
		if s.index != 0 || s.explicitIndex {
			return fmt.Sprintf("%s%d", s.userName, s.index)
		}
		return s.userName
	default:
		name := SemanticToString(s.semantic)
		if s.index != 0 {
			return fmt.Sprintf("%s%d", name, s.index)
		}
		return name
	}
}

// StringToSemantic parses an HLSL system value spelling (without index).
// "SV_Position" resolves to the vertex position semantic; the fragment
// coordinate shares the spelling and must be selected by context upstream.
// Unknown names parse as user defined semantics.
func StringToSemantic(s string) Semantic {
	if strings.EqualFold(s, "SV_Position") {
		return SemanticVertexPosition
	}
	for t, name := range semanticNames {
		if strings.EqualFold(name, s) {
			return t
		}
	}
	return SemanticUserDefined
}

// AttributeType enumerates recognised declaration attributes.
type AttributeType uint8

const (
	AttributeTypeUndefined AttributeType = iota

	AttributeTypeBranch
	AttributeTypeCall
	AttributeTypeFlatten
	AttributeTypeLoop
	AttributeTypeUnroll

	AttributeTypeDomain
	AttributeTypeEarlyDepthStencil
	AttributeTypeInstance
	AttributeTypeMaxTessFactor
	AttributeTypeMaxVertexCount
	AttributeTypeNumThreads
	AttributeTypeOutputControlPoints
	AttributeTypeOutputTopology
	AttributeTypePartitioning
	AttributeTypePatchConstantFunc

	// Language extensions
	AttributeTypeColor
	AttributeTypeInternal
	AttributeTypeAlias
	AttributeTypeSpriteUV
)

// Register is a slot binding annotation on a declaration, optionally
// restricted to a single shader target (TargetUndefined matches all stages).
type Register struct {
	Target ShaderTarget
	Type   RegisterType
	Slot   int
}

// GetForTarget returns the register matching the given shader target, or nil.
// A register without a stage restriction matches every target.
func GetForTarget(registers []*Register, target ShaderTarget) *Register {
	for _, r := range registers {
		if r.Target == target || r.Target == TargetUndefined {
			return r
		}
	}
	return nil
}
