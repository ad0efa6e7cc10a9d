package ast

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrMapFailed is the sentinel for failed enum/string lookups.
// Callers that tolerate unknown names (e.g. sampler-state reflection)
// test against it with errors.Is.
var ErrMapFailed = errors.New("enumeration mapping failed")

// mapFailed builds the uniform error for a missed string/enum lookup.
func mapFailed(from, to string) error {
	return errors.Wrapf(ErrMapFailed, "failed to map %s to %s", from, to)
}

// DataType enumerates the base data types: scalars, vectors, and matrices
// over bool/int/uint/half/float/double, plus string literals.
//
// The enumerator order is load-bearing: vectors are grouped per base type in
// sizes 2..4, matrices per base type in row-major 2x2..4x4 order, which lets
// the shape queries and constructors below work by arithmetic.
type DataType uint8

const (
	DataTypeUndefined DataType = iota

	DataTypeString

	// Scalar types
	DataTypeBool
	DataTypeInt
	DataTypeUInt
	DataTypeHalf
	DataTypeFloat
	DataTypeDouble

	// Vector types
	DataTypeBool2
	DataTypeBool3
	DataTypeBool4
	DataTypeInt2
	DataTypeInt3
	DataTypeInt4
	DataTypeUInt2
	DataTypeUInt3
	DataTypeUInt4
	DataTypeHalf2
	DataTypeHalf3
	DataTypeHalf4
	DataTypeFloat2
	DataTypeFloat3
	DataTypeFloat4
	DataTypeDouble2
	DataTypeDouble3
	DataTypeDouble4

	// Matrix types
	DataTypeBool2x2
	DataTypeBool2x3
	DataTypeBool2x4
	DataTypeBool3x2
	DataTypeBool3x3
	DataTypeBool3x4
	DataTypeBool4x2
	DataTypeBool4x3
	DataTypeBool4x4
	DataTypeInt2x2
	DataTypeInt2x3
	DataTypeInt2x4
	DataTypeInt3x2
	DataTypeInt3x3
	DataTypeInt3x4
	DataTypeInt4x2
	DataTypeInt4x3
	DataTypeInt4x4
	DataTypeUInt2x2
	DataTypeUInt2x3
	DataTypeUInt2x4
	DataTypeUInt3x2
	DataTypeUInt3x3
	DataTypeUInt3x4
	DataTypeUInt4x2
	DataTypeUInt4x3
	DataTypeUInt4x4
	DataTypeHalf2x2
	DataTypeHalf2x3
	DataTypeHalf2x4
	DataTypeHalf3x2
	DataTypeHalf3x3
	DataTypeHalf3x4
	DataTypeHalf4x2
	DataTypeHalf4x3
	DataTypeHalf4x4
	DataTypeFloat2x2
	DataTypeFloat2x3
	DataTypeFloat2x4
	DataTypeFloat3x2
	DataTypeFloat3x3
	DataTypeFloat3x4
	DataTypeFloat4x2
	DataTypeFloat4x3
	DataTypeFloat4x4
	DataTypeDouble2x2
	DataTypeDouble2x3
	DataTypeDouble2x4
	DataTypeDouble3x2
	DataTypeDouble3x3
	DataTypeDouble3x4
	DataTypeDouble4x2
	DataTypeDouble4x3
	DataTypeDouble4x4
)

// baseTypeNames maps the six scalar bases to their source-language names.
var baseTypeNames = [...]string{"bool", "int", "uint", "half", "float", "double"}

// IsScalarType reports whether t is a scalar type.
func IsScalarType(t DataType) bool {
	return t >= DataTypeBool && t <= DataTypeDouble
}

// IsVectorType reports whether t is a vector type.
func IsVectorType(t DataType) bool {
	return t >= DataTypeBool2 && t <= DataTypeDouble4
}

// IsMatrixType reports whether t is a matrix type.
func IsMatrixType(t DataType) bool {
	return t >= DataTypeBool2x2 && t <= DataTypeDouble4x4
}

// IsBooleanType reports whether t is bool, or a vector/matrix of bool.
func IsBooleanType(t DataType) bool {
	return BaseDataType(t) == DataTypeBool
}

// IsRealType reports whether t is half/float/double, or a vector/matrix of these.
func IsRealType(t DataType) bool {
	b := BaseDataType(t)
	return b == DataTypeHalf || b == DataTypeFloat || b == DataTypeDouble
}

// IsHalfRealType reports whether t is half, or a vector/matrix of half.
func IsHalfRealType(t DataType) bool {
	return BaseDataType(t) == DataTypeHalf
}

// IsDoubleRealType reports whether t is double, or a vector/matrix of double.
func IsDoubleRealType(t DataType) bool {
	return BaseDataType(t) == DataTypeDouble
}

// IsIntegralType reports whether t is int/uint, or a vector/matrix of these.
func IsIntegralType(t DataType) bool {
	b := BaseDataType(t)
	return b == DataTypeInt || b == DataTypeUInt
}

// IsIntType reports whether t is int, or a vector/matrix of int.
func IsIntType(t DataType) bool {
	return BaseDataType(t) == DataTypeInt
}

// IsUIntType reports whether t is uint, or a vector/matrix of uint.
func IsUIntType(t DataType) bool {
	return BaseDataType(t) == DataTypeUInt
}

// VectorTypeDim returns the dimension of t interpreted as a vector type.
// Scalars yield 1, vectors 2..4, matrix types 0.
func VectorTypeDim(t DataType) int {
	switch {
	case IsScalarType(t):
		return 1
	case IsVectorType(t):
		return int(t-DataTypeBool2)%3 + 2
	default:
		return 0
	}
}

// MatrixTypeDim returns the dimensions (rows, cols) of t interpreted as a
// matrix type. Scalars yield (1,1), vectors (n,1), matrices (r,c), and
// anything else (0,0).
func MatrixTypeDim(t DataType) (rows, cols int) {
	switch {
	case IsScalarType(t):
		return 1, 1
	case IsVectorType(t):
		return VectorTypeDim(t), 1
	case IsMatrixType(t):
		k := int(t - DataTypeBool2x2)
		return (k%9)/3 + 2, k%3 + 2
	default:
		return 0, 0
	}
}

// BaseDataType returns the scalar base type of t, or DataTypeUndefined.
func BaseDataType(t DataType) DataType {
	switch {
	case IsScalarType(t):
		return t
	case IsVectorType(t):
		return DataTypeBool + DataType(int(t-DataTypeBool2)/3)
	case IsMatrixType(t):
		return DataTypeBool + DataType(int(t-DataTypeBool2x2)/9)
	default:
		return DataTypeUndefined
	}
}

// VectorDataType returns the vector type over the given scalar base.
// A size of 1 returns the base itself; invalid inputs yield DataTypeUndefined.
func VectorDataType(base DataType, vectorSize int) DataType {
	if !IsScalarType(base) {
		return DataTypeUndefined
	}
	switch {
	case vectorSize == 1:
		return base
	case vectorSize >= 2 && vectorSize <= 4:
		return DataTypeBool2 + DataType(int(base-DataTypeBool)*3+vectorSize-2)
	default:
		return DataTypeUndefined
	}
}

// MatrixDataType returns the matrix type over the given scalar base.
// Degenerate dimensions fall back to VectorDataType (Nx1 and 1xN are vectors,
// 1x1 is the scalar); invalid inputs yield DataTypeUndefined.
func MatrixDataType(base DataType, rows, columns int) DataType {
	if !IsScalarType(base) {
		return DataTypeUndefined
	}
	if rows == 1 {
		return VectorDataType(base, columns)
	}
	if columns == 1 {
		return VectorDataType(base, rows)
	}
	if rows < 2 || rows > 4 || columns < 2 || columns > 4 {
		return DataTypeUndefined
	}
	return DataTypeBool2x2 + DataType(int(base-DataTypeBool)*9+(rows-2)*3+(columns-2))
}

// DoubleToFloatDataType replaces double types by their float counterparts.
func DoubleToFloatDataType(t DataType) DataType {
	if IsDoubleRealType(t) {
		r, c := MatrixTypeDim(t)
		return MatrixDataType(DataTypeFloat, r, c)
	}
	return t
}

// String returns the source-language spelling of the data type.
func (t DataType) String() string {
	switch {
	case t == DataTypeString:
		return "string"
	case IsScalarType(t):
		return baseTypeNames[t-DataTypeBool]
	case IsVectorType(t):
		return fmt.Sprintf("%s%d", BaseDataType(t), VectorTypeDim(t))
	case IsMatrixType(t):
		r, c := MatrixTypeDim(t)
		return fmt.Sprintf("%s%dx%d", BaseDataType(t), r, c)
	default:
		return "undefined"
	}
}

// dataTypeNames is the reverse lookup for StringToDataType, built once.
var dataTypeNames = func() map[string]DataType {
	m := make(map[string]DataType, 96)
	for t := DataTypeString; t <= DataTypeDouble4x4; t++ {
		m[t.String()] = t
	}
	return m
}()

// StringToDataType parses a source-language type name.
func StringToDataType(s string) (DataType, error) {
	if t, ok := dataTypeNames[s]; ok {
		return t, nil
	}
	return DataTypeUndefined, mapFailed("string", "DataType")
}

// SubscriptDataType resolves a swizzle or matrix subscript against a
// scalar, vector, or matrix type. It returns the resulting data type and the
// (row, col) index pair of every referenced component.
//
// Vector subscripts use the xyzw or rgba component sets (not mixed); matrix
// subscripts use the zero-based _mRC or one-based _RC forms.
func SubscriptDataType(dataType DataType, subscript string) (DataType, [][2]int, error) {
	if IsMatrixType(dataType) {
		return matrixSubscriptDataType(dataType, subscript)
	}
	return vectorSubscriptDataType(dataType, subscript)
}

func vectorSubscriptDataType(dataType DataType, subscript string) (DataType, [][2]int, error) {
	dim := VectorTypeDim(dataType)
	if dim == 0 {
		return DataTypeUndefined, nil, errors.Errorf("cannot apply subscript %q to non-vector type %s", subscript, dataType)
	}
	if len(subscript) == 0 || len(subscript) > 4 {
		return DataTypeUndefined, nil, errors.Errorf("invalid vector subscript %q", subscript)
	}

	const xyzw, rgba = "xyzw", "rgba"
	set := xyzw
	if strings.ContainsRune(rgba, rune(subscript[0])) {
		set = rgba
	}

	indices := make([][2]int, 0, len(subscript))
	for _, r := range subscript {
		i := strings.IndexRune(set, r)
		if i < 0 {
			return DataTypeUndefined, nil, errors.Errorf("invalid character %q in vector subscript %q", r, subscript)
		}
		if i >= dim {
			return DataTypeUndefined, nil, errors.Errorf("vector subscript %q out of range for type %s", subscript, dataType)
		}
		indices = append(indices, [2]int{i, 0})
	}

	return VectorDataType(BaseDataType(dataType), len(indices)), indices, nil
}

func matrixSubscriptDataType(dataType DataType, subscript string) (DataType, [][2]int, error) {
	rows, cols := MatrixTypeDim(dataType)

	var indices [][2]int
	s := subscript
	for len(s) > 0 {
		if s[0] != '_' {
			return DataTypeUndefined, nil, errors.Errorf("invalid matrix subscript %q", subscript)
		}
		s = s[1:]

		base := 1
		if len(s) > 0 && s[0] == 'm' {
			base = 0
			s = s[1:]
		}
		if len(s) < 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
			return DataTypeUndefined, nil, errors.Errorf("invalid matrix subscript %q", subscript)
		}

		r := int(s[0]-'0') - base
		c := int(s[1]-'0') - base
		s = s[2:]

		if r < 0 || r >= rows || c < 0 || c >= cols {
			return DataTypeUndefined, nil, errors.Errorf("matrix subscript %q out of range for type %s", subscript, dataType)
		}
		indices = append(indices, [2]int{r, c})
	}

	if len(indices) == 0 || len(indices) > 4 {
		return DataTypeUndefined, nil, errors.Errorf("invalid matrix subscript %q", subscript)
	}
	return VectorDataType(BaseDataType(dataType), len(indices)), indices, nil
}
