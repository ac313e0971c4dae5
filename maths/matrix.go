package maths

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transform 矩阵向量乘法（A*v，返回新向量）
// matrix 按行给出系数，每行长度必须等于向量维度；结果维度等于行数。
func (v *Vector) Transform(matrix [][]float64) (*Vector, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	rows, cols := len(matrix), v.Len()
	if rows == 0 {
		return nil, fmt.Errorf("%w: transform matrix has no rows", ErrInvalidArgument)
	}
	// 行优先展开
	dense := make([]float64, 0, rows*cols)
	for i, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: incorrect number of columns in matrix row %d: got %d, want %d", ErrInvalidArgument, i, len(row), cols)
		}
		dense = append(dense, row...)
	}
	return v.TransformMatrix(mat.NewDense(rows, cols, dense))
}

// TransformMatrix 与 Transform 相同，接受 gonum 矩阵。
func (v *Vector) TransformMatrix(a mat.Matrix) (*Vector, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: transform matrix is nil", ErrInvalidArgument)
	}
	rows, cols := a.Dims()
	if cols != v.Len() {
		return nil, fmt.Errorf("%w: matrix has %d columns, vector dimension is %d", ErrInvalidArgument, cols, v.Len())
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: transform matrix has no rows", ErrInvalidArgument)
	}
	result := mat.NewVecDense(rows, nil)
	result.MulVec(a, v.VecDense())
	return wrap(result.RawVector().Data), nil
}

// VecDense 返回分量副本构成的 gonum 列向量。
func (v *Vector) VecDense() *mat.VecDense {
	return mat.NewVecDense(v.Len(), v.Components())
}

// FromVecDense 从 gonum 向量创建（复制数据）。
func FromVecDense(vec mat.Vector) (*Vector, error) {
	if vec == nil || vec.Len() == 0 {
		return nil, fmt.Errorf("%w: cannot create an empty vector", ErrInvalidArgument)
	}
	data := make([]float64, vec.Len())
	for i := range data {
		data[i] = vec.AtVec(i)
	}
	return wrap(data), nil
}
