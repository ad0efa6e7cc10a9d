package ast

import (
	"testing"
)

func TestDataType_String(t *testing.T) {
	tests := []struct {
		typ  DataType
		want string
	}{
		{DataTypeBool, "bool"},
		{DataTypeInt, "int"},
		{DataTypeUInt, "uint"},
		{DataTypeHalf, "half"},
		{DataTypeFloat, "float"},
		{DataTypeDouble, "double"},
		{DataTypeFloat2, "float2"},
		{DataTypeFloat3, "float3"},
		{DataTypeFloat4, "float4"},
		{DataTypeInt3, "int3"},
		{DataTypeBool2, "bool2"},
		{DataTypeDouble4, "double4"},
		{DataTypeFloat2x2, "float2x2"},
		{DataTypeFloat4x4, "float4x4"},
		{DataTypeHalf3x4, "half3x4"},
		{DataTypeUInt4x2, "uint4x2"},
		{DataTypeString, "string"},
		{DataTypeUndefined, "undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("DataType.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringToDataType_RoundTrip(t *testing.T) {
	for typ := DataTypeString; typ <= DataTypeDouble4x4; typ++ {
		got, err := StringToDataType(typ.String())
		if err != nil {
			t.Fatalf("StringToDataType(%q) error: %v", typ.String(), err)
		}
		if got != typ {
			t.Errorf("StringToDataType(%q) = %v, want %v", typ.String(), got, typ)
		}
	}

	if _, err := StringToDataType("float5"); err == nil {
		t.Error("StringToDataType(\"float5\") expected error")
	}
}

func TestVectorTypeDim(t *testing.T) {
	tests := []struct {
		typ  DataType
		want int
	}{
		{DataTypeBool, 1},
		{DataTypeFloat, 1},
		{DataTypeFloat2, 2},
		{DataTypeInt3, 3},
		{DataTypeDouble4, 4},
		{DataTypeFloat4x4, 0},
		{DataTypeBool2x2, 0},
		{DataTypeString, 0},
		{DataTypeUndefined, 0},
	}

	for _, tt := range tests {
		if got := VectorTypeDim(tt.typ); got != tt.want {
			t.Errorf("VectorTypeDim(%v) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestMatrixTypeDim(t *testing.T) {
	tests := []struct {
		typ        DataType
		rows, cols int
	}{
		{DataTypeFloat, 1, 1},
		{DataTypeFloat3, 3, 1},
		{DataTypeFloat2x3, 2, 3},
		{DataTypeFloat4x4, 4, 4},
		{DataTypeHalf3x2, 3, 2},
		{DataTypeUndefined, 0, 0},
		{DataTypeString, 0, 0},
	}

	for _, tt := range tests {
		r, c := MatrixTypeDim(tt.typ)
		if r != tt.rows || c != tt.cols {
			t.Errorf("MatrixTypeDim(%v) = (%d, %d), want (%d, %d)", tt.typ, r, c, tt.rows, tt.cols)
		}
	}
}

func TestVectorDataType(t *testing.T) {
	tests := []struct {
		base DataType
		size int
		want DataType
	}{
		{DataTypeFloat, 1, DataTypeFloat},
		{DataTypeFloat, 3, DataTypeFloat3},
		{DataTypeBool, 2, DataTypeBool2},
		{DataTypeDouble, 4, DataTypeDouble4},
		{DataTypeInt, 5, DataTypeUndefined},
		{DataTypeInt, 0, DataTypeUndefined},
		{DataTypeFloat2, 2, DataTypeUndefined},
	}

	for _, tt := range tests {
		if got := VectorDataType(tt.base, tt.size); got != tt.want {
			t.Errorf("VectorDataType(%v, %d) = %v, want %v", tt.base, tt.size, got, tt.want)
		}
	}
}

func TestMatrixDataType(t *testing.T) {
	tests := []struct {
		base       DataType
		rows, cols int
		want       DataType
	}{
		{DataTypeFloat, 4, 4, DataTypeFloat4x4},
		{DataTypeFloat, 2, 3, DataTypeFloat2x3},
		{DataTypeInt, 1, 1, DataTypeInt},
		{DataTypeFloat, 1, 3, DataTypeFloat3},
		{DataTypeFloat, 3, 1, DataTypeFloat3},
		{DataTypeHalf, 5, 2, DataTypeUndefined},
	}

	for _, tt := range tests {
		if got := MatrixDataType(tt.base, tt.rows, tt.cols); got != tt.want {
			t.Errorf("MatrixDataType(%v, %d, %d) = %v, want %v", tt.base, tt.rows, tt.cols, got, tt.want)
		}
	}
}

func TestBaseDataType(t *testing.T) {
	tests := []struct {
		typ  DataType
		want DataType
	}{
		{DataTypeFloat, DataTypeFloat},
		{DataTypeFloat3, DataTypeFloat},
		{DataTypeBool4x4, DataTypeBool},
		{DataTypeUInt2x3, DataTypeUInt},
		{DataTypeString, DataTypeUndefined},
	}

	for _, tt := range tests {
		if got := BaseDataType(tt.typ); got != tt.want {
			t.Errorf("BaseDataType(%v) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestTypePredicates(t *testing.T) {
	if !IsScalarType(DataTypeHalf) || IsScalarType(DataTypeHalf2) {
		t.Error("IsScalarType misclassifies")
	}
	if !IsVectorType(DataTypeInt4) || IsVectorType(DataTypeInt) {
		t.Error("IsVectorType misclassifies")
	}
	if !IsMatrixType(DataTypeDouble4x4) || IsMatrixType(DataTypeDouble4) {
		t.Error("IsMatrixType misclassifies")
	}
	if !IsBooleanType(DataTypeBool3x3) || IsBooleanType(DataTypeInt) {
		t.Error("IsBooleanType misclassifies")
	}
	if !IsRealType(DataTypeHalf4) || IsRealType(DataTypeUInt) {
		t.Error("IsRealType misclassifies")
	}
	if !IsIntegralType(DataTypeUInt3) || IsIntegralType(DataTypeFloat) {
		t.Error("IsIntegralType misclassifies")
	}
	if !IsHalfRealType(DataTypeHalf2x2) || IsHalfRealType(DataTypeFloat) {
		t.Error("IsHalfRealType misclassifies")
	}
	if !IsDoubleRealType(DataTypeDouble2) || IsDoubleRealType(DataTypeFloat2) {
		t.Error("IsDoubleRealType misclassifies")
	}
}

func TestDoubleToFloatDataType(t *testing.T) {
	tests := []struct {
		typ  DataType
		want DataType
	}{
		{DataTypeDouble, DataTypeFloat},
		{DataTypeDouble3, DataTypeFloat3},
		{DataTypeDouble4x4, DataTypeFloat4x4},
		{DataTypeFloat, DataTypeFloat},
		{DataTypeInt2, DataTypeInt2},
	}

	for _, tt := range tests {
		if got := DoubleToFloatDataType(tt.typ); got != tt.want {
			t.Errorf("DoubleToFloatDataType(%v) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestSubscriptDataType_Vector(t *testing.T) {
	tests := []struct {
		typ       DataType
		subscript string
		want      DataType
		indices   [][2]int
		wantErr   bool
	}{
		{DataTypeFloat4, "xyzw", DataTypeFloat4, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, false},
		{DataTypeFloat4, "x", DataTypeFloat, [][2]int{{0, 0}}, false},
		{DataTypeFloat3, "zyx", DataTypeFloat3, [][2]int{{2, 0}, {1, 0}, {0, 0}}, false},
		{DataTypeFloat2, "rg", DataTypeFloat2, [][2]int{{0, 0}, {1, 0}}, false},
		{DataTypeFloat, "xxx", DataTypeFloat3, [][2]int{{0, 0}, {0, 0}, {0, 0}}, false},
		{DataTypeFloat2, "z", DataTypeUndefined, nil, true},
		{DataTypeFloat4, "xq", DataTypeUndefined, nil, true},
		{DataTypeFloat4, "", DataTypeUndefined, nil, true},
		{DataTypeFloat4, "xyzwx", DataTypeUndefined, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.subscript, func(t *testing.T) {
			got, indices, err := SubscriptDataType(tt.typ, tt.subscript)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubscriptDataType(%v, %q) error = %v, wantErr %t", tt.typ, tt.subscript, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SubscriptDataType(%v, %q) = %v, want %v", tt.typ, tt.subscript, got, tt.want)
			}
			if !tt.wantErr {
				if len(indices) != len(tt.indices) {
					t.Fatalf("indices = %v, want %v", indices, tt.indices)
				}
				for i := range indices {
					if indices[i] != tt.indices[i] {
						t.Errorf("indices[%d] = %v, want %v", i, indices[i], tt.indices[i])
					}
				}
			}
		})
	}
}

func TestSubscriptDataType_Matrix(t *testing.T) {
	tests := []struct {
		typ       DataType
		subscript string
		want      DataType
		indices   [][2]int
		wantErr   bool
	}{
		{DataTypeFloat4x4, "_m00", DataTypeFloat, [][2]int{{0, 0}}, false},
		{DataTypeFloat4x4, "_m00_m11", DataTypeFloat2, [][2]int{{0, 0}, {1, 1}}, false},
		{DataTypeFloat4x4, "_11_22", DataTypeFloat2, [][2]int{{0, 0}, {1, 1}}, false},
		{DataTypeFloat2x2, "_m21", DataTypeUndefined, nil, true},
		{DataTypeFloat4x4, "m00", DataTypeUndefined, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.subscript, func(t *testing.T) {
			got, indices, err := SubscriptDataType(tt.typ, tt.subscript)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubscriptDataType(%v, %q) error = %v, wantErr %t", tt.typ, tt.subscript, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SubscriptDataType(%v, %q) = %v, want %v", tt.typ, tt.subscript, got, tt.want)
			}
			if !tt.wantErr {
				for i := range indices {
					if indices[i] != tt.indices[i] {
						t.Errorf("indices[%d] = %v, want %v", i, indices[i], tt.indices[i])
					}
				}
			}
		})
	}
}

func TestBufferTypePredicates(t *testing.T) {
	if !IsStorageBufferType(BufferTypeRWStructuredBuffer) || IsStorageBufferType(BufferTypeTexture2D) {
		t.Error("IsStorageBufferType misclassifies")
	}
	if !IsRWBufferType(BufferTypeRWTexture3D) || IsRWBufferType(BufferTypeTexture3D) {
		t.Error("IsRWBufferType misclassifies")
	}
	if !IsTextureBufferType(BufferTypeTextureCube) || IsTextureBufferType(BufferTypeBuffer) {
		t.Error("IsTextureBufferType misclassifies")
	}
	if !IsTextureMSBufferType(BufferTypeTexture2DMS) || IsTextureMSBufferType(BufferTypeTexture2D) {
		t.Error("IsTextureMSBufferType misclassifies")
	}
	if !IsRWTextureBufferType(BufferTypeRWTexture2D) || IsRWTextureBufferType(BufferTypeRWBuffer) {
		t.Error("IsRWTextureBufferType misclassifies")
	}
	if !IsPatchBufferType(BufferTypeInputPatch) || IsPatchBufferType(BufferTypePointStream) {
		t.Error("IsPatchBufferType misclassifies")
	}
	if !IsStreamBufferType(BufferTypeTriangleStream) || IsStreamBufferType(BufferTypeOutputPatch) {
		t.Error("IsStreamBufferType misclassifies")
	}
}

func TestBufferType_RoundTrip(t *testing.T) {
	for typ := BufferTypeBuffer; typ <= BufferTypeTriangleStream; typ++ {
		got, err := StringToBufferType(typ.String())
		if err != nil {
			t.Fatalf("StringToBufferType(%q) error: %v", typ.String(), err)
		}
		if got != typ {
			t.Errorf("StringToBufferType(%q) = %v, want %v", typ.String(), got, typ)
		}
	}
}

func TestGetBufferTypeTextureDim(t *testing.T) {
	tests := []struct {
		typ  BufferType
		want int
	}{
		{BufferTypeTexture1D, 1},
		{BufferTypeTexture1DArray, 2},
		{BufferTypeTexture2D, 2},
		{BufferTypeTexture2DMS, 2},
		{BufferTypeTexture2DArray, 3},
		{BufferTypeTexture2DMSArray, 3},
		{BufferTypeTexture3D, 3},
		{BufferTypeTextureCube, 3},
		{BufferTypeTextureCubeArray, 4},
		{BufferTypeStructuredBuffer, 0},
	}

	for _, tt := range tests {
		if got := GetBufferTypeTextureDim(tt.typ); got != tt.want {
			t.Errorf("GetBufferTypeTextureDim(%v) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestSamplerTypePredicates(t *testing.T) {
	if !IsSamplerStateType(SamplerTypeState) || !IsSamplerStateType(SamplerTypeComparisonState) {
		t.Error("IsSamplerStateType should accept both sampler state kinds")
	}
	if IsSamplerStateType(SamplerType2D) {
		t.Error("IsSamplerStateType misclassifies texture samplers")
	}
	if !IsSamplerTypeShadow(SamplerType2DShadow) || IsSamplerTypeShadow(SamplerType2D) {
		t.Error("IsSamplerTypeShadow misclassifies")
	}
	if !IsSamplerTypeArray(SamplerTypeCubeArray) || IsSamplerTypeArray(SamplerTypeCube) {
		t.Error("IsSamplerTypeArray misclassifies")
	}
}

func TestTextureTypeToSamplerType(t *testing.T) {
	tests := []struct {
		typ  BufferType
		want SamplerType
	}{
		{BufferTypeTexture2D, SamplerType2D},
		{BufferTypeTextureCubeArray, SamplerTypeCubeArray},
		{BufferTypeTexture2DMS, SamplerType2DMS},
		{BufferTypeBuffer, SamplerTypeUndefined},
	}

	for _, tt := range tests {
		if got := TextureTypeToSamplerType(tt.typ); got != tt.want {
			t.Errorf("TextureTypeToSamplerType(%v) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestRegisterTypeChars(t *testing.T) {
	for _, c := range []byte{'b', 't', 'c', 's', 'u'} {
		typ := CharToRegisterType(c)
		if typ == RegisterTypeUndefined {
			t.Fatalf("CharToRegisterType(%q) = undefined", c)
		}
		if got := RegisterTypeToChar(typ); got != c {
			t.Errorf("RegisterTypeToChar(%v) = %q, want %q", typ, got, c)
		}
	}
	if CharToRegisterType('x') != RegisterTypeUndefined {
		t.Error("CharToRegisterType('x') should be undefined")
	}
}
