package ast

import "testing"

func lit(dataType DataType, value string) *LiteralExpr {
	return &LiteralExpr{DataType: dataType, Value: value}
}

func intLit(value string) *LiteralExpr   { return lit(DataTypeInt, value) }
func floatLit(value string) *LiteralExpr { return lit(DataTypeFloat, value) }

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		typ  VariantType
		intV int64
		real float64
		boolV bool
	}{
		{"true", VariantBool, 0, 0, true},
		{"false", VariantBool, 0, 0, false},
		{"42", VariantInt, 42, 0, false},
		{"-7", VariantInt, -7, 0, false},
		{"0x10", VariantInt, 16, 0, false},
		{"1.5", VariantReal, 0, 1.5, false},
		{"2.5f", VariantReal, 0, 2.5, false},
		{"0.25h", VariantReal, 0, 0.25, false},
		{"hello", VariantString, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := ParseVariant(tt.in)
			if v.Type() != tt.typ {
				t.Fatalf("ParseVariant(%q).Type() = %v, want %v", tt.in, v.Type(), tt.typ)
			}
			switch tt.typ {
			case VariantInt:
				if v.Int() != tt.intV {
					t.Errorf("Int() = %d, want %d", v.Int(), tt.intV)
				}
			case VariantReal:
				if v.Real() != tt.real {
					t.Errorf("Real() = %v, want %v", v.Real(), tt.real)
				}
			case VariantBool:
				if v.Bool() != tt.boolV {
					t.Errorf("Bool() = %t, want %t", v.Bool(), tt.boolV)
				}
			}
		})
	}
}

func TestVariantCoercion(t *testing.T) {
	if got := RealVariant(2.9).ToInt(); got != 2 {
		t.Errorf("RealVariant(2.9).ToInt() = %d, want 2 (truncate toward zero)", got)
	}
	if got := RealVariant(-2.9).ToInt(); got != -2 {
		t.Errorf("RealVariant(-2.9).ToInt() = %d, want -2 (truncate toward zero)", got)
	}
	if !IntVariant(5).ToBool() || IntVariant(0).ToBool() {
		t.Error("integer to bool coercion wrong")
	}
	if got := BoolVariant(true).ToReal(); got != 1 {
		t.Errorf("BoolVariant(true).ToReal() = %v, want 1", got)
	}
}

func TestEvaluateOrDefault_Literals(t *testing.T) {
	v := EvaluateOrDefault(intLit("12"), IntVariant(0))
	if v.ToInt() != 12 {
		t.Errorf("literal 12 evaluated to %d", v.ToInt())
	}

	v = EvaluateOrDefault(floatLit("0.5"), RealVariant(0))
	if v.ToReal() != 0.5 {
		t.Errorf("literal 0.5 evaluated to %v", v.ToReal())
	}
}

func TestEvaluateOrDefault_Binary(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want Variant
	}{
		{
			"int-add",
			&BinaryExpr{LHS: intLit("2"), Op: BinaryOpAdd, RHS: intLit("3")},
			IntVariant(5),
		},
		{
			"int-real-promotion",
			&BinaryExpr{LHS: intLit("2"), Op: BinaryOpMul, RHS: floatLit("1.5")},
			RealVariant(3),
		},
		{
			"compare",
			&BinaryExpr{LHS: intLit("2"), Op: BinaryOpLess, RHS: intLit("3")},
			BoolVariant(true),
		},
		{
			"shift",
			&BinaryExpr{LHS: intLit("1"), Op: BinaryOpLShift, RHS: intLit("4")},
			IntVariant(16),
		},
		{
			"logical",
			&BinaryExpr{LHS: lit(DataTypeBool, "true"), Op: BinaryOpLogicalAnd, RHS: lit(DataTypeBool, "false")},
			BoolVariant(false),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateOrDefault(tt.expr, Variant{})
			if got.Type() != tt.want.Type() {
				t.Fatalf("type = %v, want %v", got.Type(), tt.want.Type())
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEvaluateOrDefault_Fallback(t *testing.T) {
	fallback := IntVariant(99)

	// Division by zero is invalid arithmetic.
	v := EvaluateOrDefault(&BinaryExpr{LHS: intLit("1"), Op: BinaryOpDiv, RHS: intLit("0")}, fallback)
	if v.ToInt() != 99 {
		t.Errorf("div by zero should fall back, got %d", v.ToInt())
	}

	// A call to an unknown function is not constant.
	v = EvaluateOrDefault(&CallExpr{Ident: "noise"}, fallback)
	if v.ToInt() != 99 {
		t.Errorf("non-constant call should fall back, got %d", v.ToInt())
	}

	// An unresolved object reference is not constant.
	v = EvaluateOrDefault(&ObjectExpr{Ident: "x"}, fallback)
	if v.ToInt() != 99 {
		t.Errorf("unresolved reference should fall back, got %d", v.ToInt())
	}
}

func TestEvaluateOrDefault_UnaryTernaryCast(t *testing.T) {
	neg := &UnaryExpr{Op: UnaryOpNegate, Expr: intLit("4")}
	if got := EvaluateOrDefault(neg, Variant{}).ToInt(); got != -4 {
		t.Errorf("-4 evaluated to %d", got)
	}

	cond := &TernaryExpr{
		Condition: lit(DataTypeBool, "true"),
		Then:      intLit("1"),
		Else:      intLit("2"),
	}
	if got := EvaluateOrDefault(cond, Variant{}).ToInt(); got != 1 {
		t.Errorf("ternary evaluated to %d", got)
	}

	// (int)2.75 truncates toward zero.
	cast := &CastExpr{
		TypeSpecifier: &TypeSpecifier{TypeDenoter: &BaseTypeDenoter{DataType: DataTypeInt}},
		Expr:          floatLit("2.75"),
	}
	got := EvaluateOrDefault(cast, Variant{})
	if got.Type() != VariantInt || got.Int() != 2 {
		t.Errorf("(int)2.75 evaluated to %+v", got)
	}
}

func TestEvaluateOrDefault_ConstructorCall(t *testing.T) {
	// float(3) is a constant constructor call.
	call := &CallExpr{Ident: "float", Arguments: []Expr{intLit("3")}}
	got := EvaluateOrDefault(call, Variant{})
	if got.Type() != VariantReal || got.Real() != 3 {
		t.Errorf("float(3) evaluated to %+v", got)
	}

	// Nested constant arguments fold too.
	call = &CallExpr{
		Ident:     "int",
		Arguments: []Expr{&BinaryExpr{LHS: floatLit("2.5"), Op: BinaryOpAdd, RHS: floatLit("2.0")}},
	}
	got = EvaluateOrDefault(call, Variant{})
	if got.Type() != VariantInt || got.Int() != 4 {
		t.Errorf("int(2.5 + 2.0) evaluated to %+v", got)
	}
}

func TestEvaluateOrDefault_ObjectInitializer(t *testing.T) {
	// A reference to a variable with a constant initializer folds to it.
	spec := &TypeSpecifier{TypeDenoter: &BaseTypeDenoter{DataType: DataTypeInt}}
	decl := &VarDecl{Ident: "kSize", Initializer: intLit("8")}
	stmt := &VarDeclStmt{TypeSpecifier: spec, VarDecls: []*VarDecl{decl}}
	decl.DeclStmtRef = stmt

	obj := &ObjectExpr{Ident: "kSize", SymbolRef: decl}
	if got := EvaluateOrDefault(obj, Variant{}).ToInt(); got != 8 {
		t.Errorf("kSize evaluated to %d", got)
	}
}
