package xsl

import (
	"testing"

	"github.com/gogpu/xsl/ast"
	"github.com/gogpu/xsl/glsl"
)

// buildComputeProgram assembles a small compute shader tree: an RWBuffer, a
// numthreads entry point, and a saturate call.
func buildComputeProgram() (*ast.Program, *ast.BufferDeclStmt, *ast.CallExpr) {
	buffer := &ast.BufferDecl{Ident: "results"}
	bufferStmt := &ast.BufferDeclStmt{
		TypeDenoter: &ast.BufferTypeDenoter{
			BufferType:  ast.BufferTypeRWBuffer,
			GenericType: &ast.BaseTypeDenoter{DataType: ast.DataTypeFloat4},
		},
		BufferDecls: []*ast.BufferDecl{buffer},
	}
	buffer.DeclStmtRef = bufferStmt

	value := &ast.VarDecl{Ident: "value"}
	valueStmt := &ast.VarDeclStmt{
		TypeSpecifier: &ast.TypeSpecifier{TypeDenoter: &ast.BaseTypeDenoter{DataType: ast.DataTypeFloat4}},
		VarDecls:      []*ast.VarDecl{value},
	}
	value.DeclStmtRef = valueStmt

	saturate := &ast.CallExpr{
		Ident:     "saturate",
		Intrinsic: ast.IntrinsicSaturate,
		Arguments: []ast.Expr{&ast.ObjectExpr{Ident: "value", SymbolRef: value}},
	}

	entry := &ast.FunctionDecl{
		Ident: "csMain",
		Body: &ast.CodeBlock{Stmts: []ast.Stmt{
			valueStmt,
			&ast.ExprStmt{Expr: saturate},
		}},
	}
	entry.Flags |= ast.FlagEntryPoint

	entryStmt := &ast.FunctionDeclStmt{
		FunctionDecl: entry,
		Attribs: []*ast.Attribute{{
			Type: ast.AttributeTypeNumThreads,
			Arguments: []ast.Expr{
				&ast.LiteralExpr{DataType: ast.DataTypeInt, Value: "8"},
				&ast.LiteralExpr{DataType: ast.DataTypeInt, Value: "8"},
				&ast.LiteralExpr{DataType: ast.DataTypeInt, Value: "1"},
			},
		}},
	}
	entry.DeclStmtRef = entryStmt

	program := &ast.Program{
		GlobalStmts:   []ast.Stmt{bufferStmt, entryStmt},
		EntryPointRef: entry,
	}
	return program, bufferStmt, saturate
}

func TestReflectThenConvert(t *testing.T) {
	program, bufferStmt, saturate := buildComputeProgram()

	data, reports, err := Reflect(program, ast.TargetComputeShader)
	if err != nil {
		t.Fatalf("Reflect() error: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("unexpected reports: %+v", reports)
	}
	if data.NumThreads.X != 8 || data.NumThreads.Y != 8 || data.NumThreads.Z != 1 {
		t.Errorf("NumThreads = %+v", data.NumThreads)
	}
	if len(data.StorageBuffers) != 1 || data.StorageBuffers[0].Ident != "results" {
		t.Errorf("storage buffers = %+v", data.StorageBuffers)
	}

	opts := DefaultConvertOptions(glsl.GLSL450)
	opts.MoltenVK = true
	if err := Convert(program, ast.TargetComputeShader, opts); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if saturate.Intrinsic != ast.IntrinsicClamp {
		t.Errorf("saturate not lowered: %v", saturate.Intrinsic)
	}
	if bufferStmt.TypeDenoter.BufferType != ast.BufferTypeRWStructuredBuffer {
		t.Errorf("MoltenVK pass did not retype RWBuffer: %v", bufferStmt.TypeDenoter.BufferType)
	}
}

func TestConvertWithoutMoltenVK(t *testing.T) {
	program, bufferStmt, _ := buildComputeProgram()

	if err := Convert(program, ast.TargetComputeShader, DefaultConvertOptions(glsl.GLSL450)); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if bufferStmt.TypeDenoter.BufferType != ast.BufferTypeRWBuffer {
		t.Errorf("buffer retyped without MoltenVK option: %v", bufferStmt.TypeDenoter.BufferType)
	}
}
