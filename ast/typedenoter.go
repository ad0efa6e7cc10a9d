package ast

import (
	"fmt"
	"strings"
)

// TypeDenoter is the closed sum over all denotable types. All type queries
// walk through aliases; use Aliased to obtain the resolved leaf.
type TypeDenoter interface {
	typeDenoter()

	// Aliased returns the denoter with all alias layers removed.
	Aliased() TypeDenoter

	// String returns the source-language spelling of the type.
	String() string
}

// VoidTypeDenoter denotes the void type.
type VoidTypeDenoter struct{}

func (*VoidTypeDenoter) typeDenoter()         {}
func (t *VoidTypeDenoter) Aliased() TypeDenoter { return t }
func (*VoidTypeDenoter) String() string       { return "void" }

// BaseTypeDenoter denotes a scalar, vector, or matrix type.
type BaseTypeDenoter struct {
	DataType DataType

	// ExtModifiers and SpriteUVRef carry language-extension annotations
	// ([internal], [color], [spriteuv(...)]) written by the analyzer.
	ExtModifiers ExtModifiers
	SpriteUVRef  string
}

func (*BaseTypeDenoter) typeDenoter()           {}
func (t *BaseTypeDenoter) Aliased() TypeDenoter { return t }
func (t *BaseTypeDenoter) String() string       { return t.DataType.String() }

// BufferTypeDenoter denotes a buffer or texture object type, optionally with
// a generic payload type and size (e.g. Buffer<float4>, InputPatch<V, 3>).
type BufferTypeDenoter struct {
	BufferType  BufferType
	GenericType TypeDenoter // may be nil
	GenericSize int

	ExtModifiers ExtModifiers
}

func (*BufferTypeDenoter) typeDenoter()           {}
func (t *BufferTypeDenoter) Aliased() TypeDenoter { return t }

func (t *BufferTypeDenoter) String() string {
	if t.GenericType != nil {
		return fmt.Sprintf("%s<%s>", t.BufferType, t.GenericType)
	}
	return t.BufferType.String()
}

// GetGenericTypeDenoter returns the generic payload type, defaulting to
// float4 when the declaration omitted it.
func (t *BufferTypeDenoter) GetGenericTypeDenoter() TypeDenoter {
	if t.GenericType != nil {
		return t.GenericType
	}
	return &BaseTypeDenoter{DataType: DataTypeFloat4}
}

// SamplerTypeDenoter denotes a sampler object or sampler state type.
type SamplerTypeDenoter struct {
	SamplerType SamplerType
}

func (*SamplerTypeDenoter) typeDenoter()           {}
func (t *SamplerTypeDenoter) Aliased() TypeDenoter { return t }

func (t *SamplerTypeDenoter) String() string {
	if IsSamplerStateType(t.SamplerType) {
		if t.SamplerType == SamplerTypeComparisonState {
			return "SamplerComparisonState"
		}
		return "SamplerState"
	}
	return "sampler"
}

// StructTypeDenoter denotes a structure type via a back reference to its
// declaration. The declaration owns the lifetime; the denoter never does.
type StructTypeDenoter struct {
	Ident         string
	StructDeclRef *StructDecl
}

func (*StructTypeDenoter) typeDenoter()           {}
func (t *StructTypeDenoter) Aliased() TypeDenoter { return t }

func (t *StructTypeDenoter) String() string {
	if t.Ident != "" {
		return t.Ident
	}
	if t.StructDeclRef != nil {
		return t.StructDeclRef.Ident
	}
	return "struct"
}

// SetIdentIfAnonymous assigns the type name if none is present yet.
func (t *StructTypeDenoter) SetIdentIfAnonymous(ident string) {
	if t.Ident == "" {
		t.Ident = ident
	}
}

// ArrayTypeDenoter denotes an array over a sub type. A dimension of -1
// denotes an unspecified size.
type ArrayTypeDenoter struct {
	SubType    TypeDenoter
	Dimensions []int
}

func (*ArrayTypeDenoter) typeDenoter()           {}
func (t *ArrayTypeDenoter) Aliased() TypeDenoter { return t }

func (t *ArrayTypeDenoter) String() string {
	var sb strings.Builder
	sb.WriteString(t.SubType.String())
	for _, d := range t.Dimensions {
		if d < 0 {
			sb.WriteString("[]")
		} else {
			fmt.Fprintf(&sb, "[%d]", d)
		}
	}
	return sb.String()
}

// AliasTypeDenoter denotes a named alias of another type.
type AliasTypeDenoter struct {
	Ident   string
	SubType TypeDenoter
}

func (*AliasTypeDenoter) typeDenoter() {}

func (t *AliasTypeDenoter) Aliased() TypeDenoter {
	if t.SubType == nil {
		return t
	}
	return t.SubType.Aliased()
}

func (t *AliasTypeDenoter) String() string { return t.Ident }

// ExtModifiers is the bitset of language-extension modifiers on a type.
type ExtModifiers uint8

const (
	// ExtModifierInternal marks engine-internal uniforms.
	ExtModifierInternal ExtModifiers = 1 << iota

	// ExtModifierColor marks color-typed uniforms.
	ExtModifierColor
)

// Has reports whether all modifiers in m are set.
func (e ExtModifiers) Has(m ExtModifiers) bool { return e&m == m }

// IsVoid reports whether the aliased denoter is void.
func IsVoid(t TypeDenoter) bool {
	_, ok := t.Aliased().(*VoidTypeDenoter)
	return ok
}

// IsBase reports whether the aliased denoter is a scalar/vector/matrix type.
func IsBase(t TypeDenoter) bool {
	_, ok := t.Aliased().(*BaseTypeDenoter)
	return ok
}

// BaseDenoter returns the aliased denoter as a base type, or nil.
func BaseDenoter(t TypeDenoter) *BaseTypeDenoter {
	if t == nil {
		return nil
	}
	b, _ := t.Aliased().(*BaseTypeDenoter)
	return b
}

// BufferDenoter returns the aliased denoter as a buffer type, or nil.
func BufferDenoter(t TypeDenoter) *BufferTypeDenoter {
	if t == nil {
		return nil
	}
	b, _ := t.Aliased().(*BufferTypeDenoter)
	return b
}

// StructDenoter returns the aliased denoter as a struct type, or nil.
func StructDenoter(t TypeDenoter) *StructTypeDenoter {
	if t == nil {
		return nil
	}
	s, _ := t.Aliased().(*StructTypeDenoter)
	return s
}

// ArrayDenoter returns the aliased denoter as an array type, or nil.
func ArrayDenoter(t TypeDenoter) *ArrayTypeDenoter {
	if t == nil {
		return nil
	}
	a, _ := t.Aliased().(*ArrayTypeDenoter)
	return a
}

// IsSamplerStateDenoter reports whether the aliased denoter is a sampler
// state type (not a regular texture sampler).
func IsSamplerStateDenoter(t TypeDenoter) bool {
	if t == nil {
		return false
	}
	if s, ok := t.Aliased().(*SamplerTypeDenoter); ok {
		return IsSamplerStateType(s.SamplerType)
	}
	return false
}

// TypeEqualsFlags controls type denoter comparison.
type TypeEqualsFlags uint8

const (
	// IgnoreGenericSubType compares buffer types without their generic
	// payload type. GLSL does not distinguish, e.g., Buffer<float> from
	// Buffer<int> for overload selection.
	IgnoreGenericSubType TypeEqualsFlags = 1 << iota
)

// TypeDenotersEqual compares two denoters structurally after alias removal.
func TypeDenotersEqual(lhs, rhs TypeDenoter, flags TypeEqualsFlags) bool {
	if lhs == nil || rhs == nil {
		return lhs == rhs
	}
	switch l := lhs.Aliased().(type) {
	case *VoidTypeDenoter:
		_, ok := rhs.Aliased().(*VoidTypeDenoter)
		return ok
	case *BaseTypeDenoter:
		r, ok := rhs.Aliased().(*BaseTypeDenoter)
		return ok && l.DataType == r.DataType
	case *BufferTypeDenoter:
		r, ok := rhs.Aliased().(*BufferTypeDenoter)
		if !ok || l.BufferType != r.BufferType {
			return false
		}
		if flags&IgnoreGenericSubType != 0 {
			return true
		}
		if l.GenericSize != r.GenericSize {
			return false
		}
		if (l.GenericType == nil) != (r.GenericType == nil) {
			return false
		}
		return l.GenericType == nil || TypeDenotersEqual(l.GenericType, r.GenericType, flags)
	case *SamplerTypeDenoter:
		r, ok := rhs.Aliased().(*SamplerTypeDenoter)
		return ok && l.SamplerType == r.SamplerType
	case *StructTypeDenoter:
		r, ok := rhs.Aliased().(*StructTypeDenoter)
		return ok && l.StructDeclRef == r.StructDeclRef
	case *ArrayTypeDenoter:
		r, ok := rhs.Aliased().(*ArrayTypeDenoter)
		if !ok || len(l.Dimensions) != len(r.Dimensions) {
			return false
		}
		for i := range l.Dimensions {
			if l.Dimensions[i] != r.Dimensions[i] {
				return false
			}
		}
		return TypeDenotersEqual(l.SubType, r.SubType, flags)
	default:
		return false
	}
}
