package ast

// LiteralExpr is a literal token with its parsed data type.
type LiteralExpr struct {
	NodeBase

	DataType DataType
	Value    string
}

func (*LiteralExpr) exprNode() {}

func (e *LiteralExpr) GetTypeDenoter() TypeDenoter {
	return &BaseTypeDenoter{DataType: e.DataType}
}

func (*LiteralExpr) ResetTypeDenoter() {}

// BinaryExpr applies a binary operator.
type BinaryExpr struct {
	NodeBase

	LHS Expr
	Op  BinaryOp
	RHS Expr
}

func (*BinaryExpr) exprNode() {}

// GetTypeDenoter resolves to bool for boolean operators and to the promoted
// operand type otherwise. Operand promotion picks the left type unless the
// right side is wider in realness.
func (e *BinaryExpr) GetTypeDenoter() TypeDenoter {
	if IsBooleanOp(e.Op) {
		return &BaseTypeDenoter{DataType: DataTypeBool}
	}
	lhs := BaseDenoter(e.LHS.GetTypeDenoter())
	rhs := BaseDenoter(e.RHS.GetTypeDenoter())
	if lhs == nil {
		if rhs == nil {
			return nil
		}
		return rhs
	}
	if rhs != nil && IsRealType(rhs.DataType) && !IsRealType(lhs.DataType) {
		return rhs
	}
	return lhs
}

func (*BinaryExpr) ResetTypeDenoter() {}

// UnaryExpr applies a unary operator.
type UnaryExpr struct {
	NodeBase

	Op   UnaryOp
	Expr Expr
}

func (*UnaryExpr) exprNode() {}

func (e *UnaryExpr) GetTypeDenoter() TypeDenoter {
	if e.Op == UnaryOpLogicalNot {
		return &BaseTypeDenoter{DataType: DataTypeBool}
	}
	return e.Expr.GetTypeDenoter()
}

func (*UnaryExpr) ResetTypeDenoter() {}

// TernaryExpr is the conditional operator.
type TernaryExpr struct {
	NodeBase

	Condition Expr
	Then      Expr
	Else      Expr
}

func (*TernaryExpr) exprNode() {}

func (e *TernaryExpr) GetTypeDenoter() TypeDenoter { return e.Then.GetTypeDenoter() }
func (*TernaryExpr) ResetTypeDenoter()             {}

// CastExpr converts an expression to a declared type.
type CastExpr struct {
	NodeBase

	TypeSpecifier *TypeSpecifier
	Expr          Expr
}

func (*CastExpr) exprNode() {}

func (e *CastExpr) GetTypeDenoter() TypeDenoter {
	if e.TypeSpecifier == nil {
		return nil
	}
	return e.TypeSpecifier.TypeDenoter
}

func (*CastExpr) ResetTypeDenoter() {}

// CallExpr calls a function or an intrinsic, optionally through an object
// prefix (texture methods, member functions). FuncDeclRef is the back
// reference to the called declaration for non-intrinsic calls.
type CallExpr struct {
	NodeBase

	PrefixExpr Expr
	Ident      string
	Intrinsic  Intrinsic
	Arguments  []Expr

	FuncDeclRef *FunctionDecl

	typeDen TypeDenoter
}

func (*CallExpr) exprNode() {}

// GetTypeDenoter returns the call's result type: the referenced function's
// return type, cached per node once resolved.
func (e *CallExpr) GetTypeDenoter() TypeDenoter {
	if e.typeDen != nil {
		return e.typeDen
	}
	if e.FuncDeclRef != nil && e.FuncDeclRef.ReturnType != nil {
		e.typeDen = e.FuncDeclRef.ReturnType.TypeDenoter
	}
	return e.typeDen
}

func (e *CallExpr) ResetTypeDenoter() { e.typeDen = nil }

// SetTypeDenoter seeds the cached result type; the analyzer uses this for
// intrinsic and constructor calls.
func (e *CallExpr) SetTypeDenoter(t TypeDenoter) { e.typeDen = t }

// PushArgumentFront inserts an argument before all existing ones.
func (e *CallExpr) PushArgumentFront(arg Expr) {
	e.Arguments = append([]Expr{arg}, e.Arguments...)
}

// ObjectExpr is an identifier reference, optionally behind a prefix
// expression (member access). SymbolRef is the back reference to the
// declaration the identifier resolved to.
type ObjectExpr struct {
	NodeBase

	PrefixExpr Expr
	Ident      string

	SymbolRef Decl

	typeDen TypeDenoter
}

func (*ObjectExpr) exprNode() {}

// GetTypeDenoter resolves the referenced declaration's type, or looks the
// identifier up as a member of the prefix expression's structure type.
// The result is cached per node.
func (e *ObjectExpr) GetTypeDenoter() TypeDenoter {
	if e.typeDen != nil {
		return e.typeDen
	}
	switch ref := e.SymbolRef.(type) {
	case *VarDecl:
		e.typeDen = ref.GetTypeDenoter()
	case *BufferDecl:
		e.typeDen = ref.GetTypeDenoter()
	case *SamplerDecl:
		e.typeDen = ref.GetTypeDenoter()
	case *StructDecl:
		e.typeDen = &StructTypeDenoter{Ident: ref.Ident, StructDeclRef: ref}
	case *AliasDecl:
		e.typeDen = ref.TypeDenoter
	case nil:
		if e.PrefixExpr != nil {
			if s := StructDenoter(e.PrefixExpr.GetTypeDenoter()); s != nil && s.StructDeclRef != nil {
				if member := s.StructDeclRef.FetchMemberVar(e.Ident); member != nil {
					e.typeDen = member.GetTypeDenoter()
				}
			}
		}
	}
	return e.typeDen
}

func (e *ObjectExpr) ResetTypeDenoter() { e.typeDen = nil }

// FetchVarDecl returns the referenced declaration as a VarDecl, or nil.
func (e *ObjectExpr) FetchVarDecl() *VarDecl {
	v, _ := e.SymbolRef.(*VarDecl)
	return v
}

// ArrayExpr subscripts a prefix expression with one index per dimension.
type ArrayExpr struct {
	NodeBase

	PrefixExpr Expr
	Indices    []Expr

	typeDen TypeDenoter
}

func (*ArrayExpr) exprNode() {}

// GetTypeDenoter peels one type layer per index off the prefix type:
// array dimensions first, then a buffer's generic payload, then vector and
// matrix element types. The result is cached per node.
func (e *ArrayExpr) GetTypeDenoter() TypeDenoter {
	if e.typeDen != nil {
		return e.typeDen
	}
	if e.PrefixExpr == nil {
		return nil
	}
	t := e.PrefixExpr.GetTypeDenoter()
	if t == nil {
		return nil
	}
	t = t.Aliased()
	for range e.Indices {
		switch sub := t.(type) {
		case *ArrayTypeDenoter:
			if len(sub.Dimensions) > 1 {
				t = &ArrayTypeDenoter{SubType: sub.SubType, Dimensions: sub.Dimensions[1:]}
			} else {
				t = sub.SubType.Aliased()
			}
		case *BufferTypeDenoter:
			t = sub.GetGenericTypeDenoter().Aliased()
		case *BaseTypeDenoter:
			if IsMatrixType(sub.DataType) {
				_, cols := MatrixTypeDim(sub.DataType)
				t = &BaseTypeDenoter{DataType: VectorDataType(BaseDataType(sub.DataType), cols)}
			} else if IsVectorType(sub.DataType) {
				t = &BaseTypeDenoter{DataType: BaseDataType(sub.DataType)}
			} else {
				return nil
			}
		default:
			return nil
		}
	}
	e.typeDen = t
	return e.typeDen
}

func (e *ArrayExpr) ResetTypeDenoter() { e.typeDen = nil }

// InitializerExpr is a brace-enclosed initializer list, possibly nested.
type InitializerExpr struct {
	NodeBase

	Exprs []Expr
}

func (*InitializerExpr) exprNode() {}

func (*InitializerExpr) GetTypeDenoter() TypeDenoter { return nil }
func (*InitializerExpr) ResetTypeDenoter()           {}

// FetchSubExpr descends through nested initializer lists along the given
// index path and returns the expression found there, or nil when an index
// is out of range.
func (e *InitializerExpr) FetchSubExpr(indices []int) Expr {
	var cur Expr = e
	for _, i := range indices {
		init, ok := cur.(*InitializerExpr)
		if !ok {
			return cur
		}
		if i < 0 || i >= len(init.Exprs) {
			return nil
		}
		cur = init.Exprs[i]
	}
	return cur
}

// StateInitializerExpr is the brace-enclosed field set of a pipeline state
// block or a nested sub-block (blend target, stencil face, blend op).
type StateInitializerExpr struct {
	NodeBase

	Values []*StateValue
}

func (*StateInitializerExpr) exprNode() {}

func (*StateInitializerExpr) GetTypeDenoter() TypeDenoter { return nil }
func (*StateInitializerExpr) ResetTypeDenoter()           {}

// BracketExpr is a parenthesised expression.
type BracketExpr struct {
	NodeBase

	Expr Expr
}

func (*BracketExpr) exprNode() {}

func (e *BracketExpr) GetTypeDenoter() TypeDenoter { return e.Expr.GetTypeDenoter() }
func (*BracketExpr) ResetTypeDenoter()             {}

// AssignExpr assigns to an l-value.
type AssignExpr struct {
	NodeBase

	LValue Expr
	Op     AssignOp
	RValue Expr
}

func (*AssignExpr) exprNode() {}

func (e *AssignExpr) GetTypeDenoter() TypeDenoter { return e.LValue.GetTypeDenoter() }
func (*AssignExpr) ResetTypeDenoter()             {}

// NonBracketExpr returns the first expression under any bracket layers.
func NonBracketExpr(e Expr) Expr {
	for {
		b, ok := e.(*BracketExpr)
		if !ok {
			return e
		}
		e = b.Expr
	}
}
