// Package ast defines the typed syntax tree for the cross-compiler.
//
// The tree is produced by the upstream parser, annotated by the analyzer,
// and rewritten in place by the output-language converters. Uses carry back
// references to their declarations (a call to its FunctionDecl, an object
// expression to its Decl); back references never own the referenced node —
// ownership follows the tree structure rooted at Program.
package ast

// SourceArea locates a node in the source code for diagnostics.
type SourceArea struct {
	Line   int
	Column int
	Length int
}

// IgnoreArea is the sentinel area used when a node has no source location.
var IgnoreArea = SourceArea{}

// Flags is the per-node bitset of semantic annotations written by earlier
// passes and consumed by the reflection analyzer and the converters.
type Flags uint16

const (
	// FlagEntryPoint marks the shader entry point function.
	FlagEntryPoint Flags = 1 << iota

	// FlagShaderInput marks entry-point input variables; they are exempt
	// from renaming.
	FlagShaderInput

	// FlagReachable marks nodes reachable from the entry point.
	FlagReachable

	// FlagDeadCode marks statements the converter prunes.
	FlagDeadCode

	// FlagSelfParameter marks the synthetic self parameter inserted by
	// member-function flattening.
	FlagSelfParameter

	// FlagDynamicArray marks array declarations of unspecified size.
	FlagDynamicArray

	// FlagImmutable marks object expressions the emitter must not write to.
	FlagImmutable

	// FlagNonEntryPointParam marks struct parameters of non-entry-point
	// functions.
	FlagNonEntryPointParam

	// FlagStatic marks static member functions and variables.
	FlagStatic

	// FlagAnonymous marks declarations without a source-level identifier.
	FlagAnonymous
)

// Has reports whether all bits of f are set.
func (fl Flags) Has(f Flags) bool { return fl&f == f }

// NodeBase carries the attributes every node has: a source area and a flag
// bitset. It is embedded in every concrete node type.
type NodeBase struct {
	Area  SourceArea
	Flags Flags
}

// Pos returns the node's source area.
func (n *NodeBase) Pos() SourceArea { return n.Area }

// GetFlags returns the node's flag bitset.
func (n *NodeBase) GetFlags() Flags { return n.Flags }

// Flagged is implemented by every node type; it exposes the flag bitset
// through the Node interface.
type Flagged interface {
	GetFlags() Flags
}

// Node is the base interface for all AST nodes.
type Node interface {
	Pos() SourceArea
}

// Decl is the interface for declarations. Declarations expose their
// identifier mutably so renaming passes update the single definition that
// every use resolves through its back reference.
type Decl interface {
	Node
	declNode()

	// Name returns the declared identifier.
	Name() string

	// SetName replaces the declared identifier.
	SetName(ident string)
}

// Stmt is the interface for statements.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the interface for expressions. Every expression can resolve its
// type denoter on demand; nodes with a lazy per-node cache drop it on
// ResetTypeDenoter so the next access re-resolves.
type Expr interface {
	Node
	exprNode()

	// GetTypeDenoter resolves the expression's type, or nil when the
	// expression cannot be typed (upstream analysis incomplete).
	GetTypeDenoter() TypeDenoter

	// ResetTypeDenoter invalidates the cached type denoter, if any.
	ResetTypeDenoter()
}

// Program is the root of the tree. It owns the top-level statements and the
// disabled-AST bucket: nodes removed from the live program by a pass but
// kept allocated so back references into them stay valid.
type Program struct {
	NodeBase

	GlobalStmts []Stmt
	DisabledAST []Node

	EntryPointRef *FunctionDecl
}

// SemanticMap groups the entry point's input or output variables, split into
// user-defined semantics and system values.
type SemanticMap struct {
	VarDeclRefs   []*VarDecl
	VarDeclRefsSV []*VarDecl
}

// Contains reports whether v appears in either partition.
func (m *SemanticMap) Contains(v *VarDecl) bool {
	for _, d := range m.VarDeclRefs {
		if d == v {
			return true
		}
	}
	for _, d := range m.VarDeclRefsSV {
		if d == v {
			return true
		}
	}
	return false
}

// DefaultValue is the raw default-value payload of a declarator, populated
// by the parser and tagged by the declared type's shape.
type DefaultValue struct {
	Available bool

	Boolean bool
	Integer int32
	Matrix  [16]float32
	IMatrix [4]int32
	Handle  int32
}

// TypeSpecifier carries the declared type of a variable or parameter
// together with its qualifiers.
type TypeSpecifier struct {
	NodeBase

	TypeDenoter    TypeDenoter
	StorageClasses []StorageClass
	InterpModifier InterpModifier
	TypeModifiers  []TypeModifier

	// Input/Output reflect the parameter direction (in/out/inout).
	Input  bool
	Output bool

	// StructDecl is set when the type specifier declares a structure inline.
	StructDecl *StructDecl
}

// IsInput reports whether the specifier denotes an input parameter.
// A parameter without explicit direction is an input.
func (t *TypeSpecifier) IsInput() bool { return t.Input || !t.Output }

// IsOutput reports whether the specifier denotes an output parameter.
func (t *TypeSpecifier) IsOutput() bool { return t.Output }

// HasStorageClass reports whether sc appears in the storage class list.
func (t *TypeSpecifier) HasStorageClass(sc StorageClass) bool {
	for _, c := range t.StorageClasses {
		if c == sc {
			return true
		}
	}
	return false
}

// RemoveStorageClass deletes every occurrence of sc.
func (t *TypeSpecifier) RemoveStorageClass(sc StorageClass) {
	out := t.StorageClasses[:0]
	for _, c := range t.StorageClasses {
		if c != sc {
			out = append(out, c)
		}
	}
	t.StorageClasses = out
}

// GetTypeDenoter returns the declared type denoter.
func (t *TypeSpecifier) GetTypeDenoter() TypeDenoter { return t.TypeDenoter }

/* ----- Declarations ----- */

// VarDecl declares a single variable inside a VarDeclStmt.
type VarDecl struct {
	NodeBase

	Ident        string
	ArrayDims    []int
	Semantic     IndexedSemantic
	Initializer  Expr
	DefaultValue DefaultValue

	// DeclStmtRef points to the owning declaration statement.
	DeclStmtRef *VarDeclStmt

	// StructDeclRef points to the structure this variable is a member of,
	// if any.
	StructDeclRef *StructDecl
}

func (*VarDecl) declNode()              {}
func (d *VarDecl) Name() string         { return d.Ident }
func (d *VarDecl) SetName(ident string) { d.Ident = ident }

// GetTypeDenoter returns the variable's type: the declaration statement's
// type specifier, wrapped in an array denoter when the declarator carries
// array dimensions.
func (d *VarDecl) GetTypeDenoter() TypeDenoter {
	if d.DeclStmtRef == nil || d.DeclStmtRef.TypeSpecifier == nil {
		return nil
	}
	base := d.DeclStmtRef.TypeSpecifier.TypeDenoter
	if len(d.ArrayDims) > 0 {
		return &ArrayTypeDenoter{SubType: base, Dimensions: d.ArrayDims}
	}
	return base
}

// BufferDecl declares a single buffer or texture object inside a
// BufferDeclStmt. Every buffer declaration has a BufferType via its owning
// statement's type denoter.
type BufferDecl struct {
	NodeBase

	Ident         string
	ArrayDims     []int
	SlotRegisters []*Register
	DefaultValue  DefaultValue

	DeclStmtRef *BufferDeclStmt
}

func (*BufferDecl) declNode()              {}
func (d *BufferDecl) Name() string         { return d.Ident }
func (d *BufferDecl) SetName(ident string) { d.Ident = ident }

// GetBufferType returns the buffer type of the owning statement.
func (d *BufferDecl) GetBufferType() BufferType {
	if d.DeclStmtRef == nil || d.DeclStmtRef.TypeDenoter == nil {
		return BufferTypeUndefined
	}
	return d.DeclStmtRef.TypeDenoter.BufferType
}

// GetTypeDenoter returns the buffer's type denoter.
func (d *BufferDecl) GetTypeDenoter() TypeDenoter {
	if d.DeclStmtRef == nil {
		return nil
	}
	return d.DeclStmtRef.TypeDenoter
}

// SamplerDecl declares a sampler or sampler state object.
type SamplerDecl struct {
	NodeBase

	Ident         string
	Alias         string
	SlotRegisters []*Register
	SamplerValues []*SamplerValue

	DeclStmtRef *SamplerDeclStmt
}

func (*SamplerDecl) declNode()              {}
func (d *SamplerDecl) Name() string         { return d.Ident }
func (d *SamplerDecl) SetName(ident string) { d.Ident = ident }

// GetSamplerType returns the sampler type of the owning statement.
func (d *SamplerDecl) GetSamplerType() SamplerType {
	if d.DeclStmtRef == nil || d.DeclStmtRef.TypeDenoter == nil {
		return SamplerTypeUndefined
	}
	return d.DeclStmtRef.TypeDenoter.SamplerType
}

// GetTypeDenoter returns the sampler's type denoter.
func (d *SamplerDecl) GetTypeDenoter() TypeDenoter {
	if d.DeclStmtRef == nil {
		return nil
	}
	return d.DeclStmtRef.TypeDenoter
}

// StructDecl declares a structure.
type StructDecl struct {
	NodeBase

	Ident         string
	BaseStructRef *StructDecl
	Members       []*VarDeclStmt
}

func (*StructDecl) declNode()              {}
func (d *StructDecl) Name() string         { return d.Ident }
func (d *StructDecl) SetName(ident string) { d.Ident = ident }

// IsAnonymous reports whether the structure has no source-level name.
func (d *StructDecl) IsAnonymous() bool { return d.Ident == "" }

// NumMemberVariables counts the variable declarators over all member
// statements, including inherited members.
func (d *StructDecl) NumMemberVariables() int {
	n := 0
	if d.BaseStructRef != nil {
		n = d.BaseStructRef.NumMemberVariables()
	}
	for _, m := range d.Members {
		n += len(m.VarDecls)
	}
	return n
}

// CollectMemberTypeDenoters appends the type denoter of every direct member
// declarator to the list.
func (d *StructDecl) CollectMemberTypeDenoters(out *[]TypeDenoter) {
	for _, m := range d.Members {
		for range m.VarDecls {
			*out = append(*out, m.TypeSpecifier.TypeDenoter)
		}
	}
}

// ForEachVarDecl invokes f for every member declarator, including inherited
// members.
func (d *StructDecl) ForEachVarDecl(f func(*VarDecl)) {
	if d.BaseStructRef != nil {
		d.BaseStructRef.ForEachVarDecl(f)
	}
	for _, m := range d.Members {
		for _, v := range m.VarDecls {
			f(v)
		}
	}
}

// FetchMemberVar returns the member declarator with the given identifier,
// searching base structures as well.
func (d *StructDecl) FetchMemberVar(ident string) *VarDecl {
	for _, m := range d.Members {
		for _, v := range m.VarDecls {
			if v.Ident == ident {
				return v
			}
		}
	}
	if d.BaseStructRef != nil {
		return d.BaseStructRef.FetchMemberVar(ident)
	}
	return nil
}

// IsBaseOf reports whether d appears in the base chain of other.
func (d *StructDecl) IsBaseOf(other *StructDecl) bool {
	for s := other.BaseStructRef; s != nil; s = s.BaseStructRef {
		if s == d {
			return true
		}
	}
	return false
}

// FunctionDecl declares a function. The entry point additionally carries the
// input/output semantic maps populated by the analyzer.
type FunctionDecl struct {
	NodeBase

	Ident      string
	ReturnType *TypeSpecifier
	Parameters []*VarDeclStmt
	Body       *CodeBlock
	Semantic   IndexedSemantic

	// StructDeclRef is set for member functions.
	StructDeclRef *StructDecl

	DeclStmtRef *FunctionDeclStmt

	InputSemantics  SemanticMap
	OutputSemantics SemanticMap
}

func (*FunctionDecl) declNode()              {}
func (d *FunctionDecl) Name() string         { return d.Ident }
func (d *FunctionDecl) SetName(ident string) { d.Ident = ident }

// IsMemberFunction reports whether the function belongs to a structure.
func (d *FunctionDecl) IsMemberFunction() bool { return d.StructDeclRef != nil }

// IsStatic reports whether the function is a static member function.
func (d *FunctionDecl) IsStatic() bool { return d.Flags.Has(FlagStatic) }

// EqualsSignature compares two function signatures by parameter types.
func (d *FunctionDecl) EqualsSignature(rhs *FunctionDecl, flags TypeEqualsFlags) bool {
	lp := d.parameterTypes()
	rp := rhs.parameterTypes()
	if len(lp) != len(rp) {
		return false
	}
	for i := range lp {
		if !TypeDenotersEqual(lp[i], rp[i], flags) {
			return false
		}
	}
	return true
}

func (d *FunctionDecl) parameterTypes() []TypeDenoter {
	types := make([]TypeDenoter, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		for _, v := range p.VarDecls {
			types = append(types, v.GetTypeDenoter())
		}
	}
	return types
}

// AliasDecl declares a type alias.
type AliasDecl struct {
	NodeBase

	Ident       string
	TypeDenoter *AliasTypeDenoter
}

func (*AliasDecl) declNode()              {}
func (d *AliasDecl) Name() string         { return d.Ident }
func (d *AliasDecl) SetName(ident string) { d.Ident = ident }

// StateDecl declares a pipeline state block. Its initializer holds the
// name/value pairs of the embedded state DSL.
type StateDecl struct {
	NodeBase

	Ident       string
	StateType   StateType
	Initializer *StateInitializerExpr
}

func (*StateDecl) declNode()              {}
func (d *StateDecl) Name() string         { return d.Ident }
func (d *StateDecl) SetName(ident string) { d.Ident = ident }
func (*StateDecl) stmtNode()              {}

// GetStateType returns which state block this declaration configures.
func (d *StateDecl) GetStateType() StateType { return d.StateType }

// UniformBufferDecl declares a uniform (constant) buffer block.
type UniformBufferDecl struct {
	NodeBase

	Ident         string
	BufferType    UniformBufferType
	SlotRegisters []*Register
	ExtModifiers  ExtModifiers
	Members       []*VarDeclStmt
}

func (*UniformBufferDecl) declNode()              {}
func (d *UniformBufferDecl) Name() string         { return d.Ident }
func (d *UniformBufferDecl) SetName(ident string) { d.Ident = ident }
func (*UniformBufferDecl) stmtNode()              {}

/* ----- Other nodes ----- */

// Attribute annotates a declaration ([numthreads(8, 8, 1)] etc.).
type Attribute struct {
	NodeBase

	Type      AttributeType
	Arguments []Expr
}

// SamplerValue is a name/value pair inside a sampler declaration.
type SamplerValue struct {
	NodeBase

	Name  string
	Value Expr
}

// StateValue is a name/value pair inside a pipeline state block.
type StateValue struct {
	NodeBase

	Name  string
	Value Expr
}

// CodeBlock is a brace-enclosed statement list.
type CodeBlock struct {
	NodeBase

	Stmts []Stmt
}
