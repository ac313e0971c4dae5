package maths

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector 定长数值向量
// 维度在创建时确定（≥1）且之后不变；除分量写入外所有运算都返回新向量。
// 多个引用共享同一个实例时写入彼此可见，并发访问由调用方同步。
// 零值不可用：返回 error 的方法报告 ErrInvalidArgument，其余方法按空向量处理，X、SetX 和 VecDense 会 panic。
type Vector struct {
	*dataManager
}

// New 使用给定分量创建向量，至少需要一个分量。
// 传入的切片会被复制。
func New(components ...float64) (*Vector, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("%w: cannot create an empty vector", ErrInvalidArgument)
	}
	data := make([]float64, len(components))
	copy(data, components)
	return &Vector{dataManager: newDataManager(data)}, nil
}

// MustNew 与 New 相同，出错时 panic。
func MustNew(components ...float64) *Vector {
	v, err := New(components...)
	if err != nil {
		panic(err)
	}
	return v
}

// NewFromValues 使用任意整数或浮点数创建向量。
// 非数值参数返回 ErrInvalidArgument。
func NewFromValues(values ...any) (*Vector, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: cannot create an empty vector", ErrInvalidArgument)
	}
	data := make([]float64, len(values))
	for i, value := range values {
		f, err := toFloat(value)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		data[i] = f
	}
	return &Vector{dataManager: newDataManager(data)}, nil
}

// wrap 直接使用切片作为存储，调用方保证长度≥1且不再持有该切片。
func wrap(data []float64) *Vector {
	return &Vector{dataManager: newDataManager(data)}
}

// Size 返回向量维度。
func (v *Vector) Size() int {
	return v.Len()
}

// X 返回第0个分量。
func (v *Vector) X() float64 {
	return v.raw()[0]
}

// SetX 设置第0个分量。
func (v *Vector) SetX(value float64) {
	v.raw()[0] = value
}

// Y 返回第1个分量，维度小于2时返回 ErrAttributeNotAvailable。
func (v *Vector) Y() (float64, error) {
	return v.Axis(AxisY)
}

// SetY 设置第1个分量。
func (v *Vector) SetY(value float64) error {
	return v.SetAxis(AxisY, value)
}

// Z 返回第2个分量，维度小于3时返回 ErrAttributeNotAvailable。
func (v *Vector) Z() (float64, error) {
	return v.Axis(AxisZ)
}

// SetZ 设置第2个分量。
func (v *Vector) SetZ(value float64) error {
	return v.SetAxis(AxisZ, value)
}

// axisIndex 返回命名分量的下标。
func (v *Vector) axisIndex(name string) (int, error) {
	if err := v.check(); err != nil {
		return 0, err
	}
	index := -1
	switch name {
	case AxisX:
		index = 0
	case AxisY:
		index = 1
	case AxisZ:
		index = 2
	}
	if index < 0 || index >= v.Len() {
		return 0, fmt.Errorf("%w: vector of dimension %d has no attribute %q", ErrAttributeNotAvailable, v.Len(), name)
	}
	return index, nil
}

// Axis 按名称读取：x、y、z 返回对应分量，size 返回维度。
func (v *Vector) Axis(name string) (float64, error) {
	if err := v.check(); err != nil {
		return 0, err
	}
	if name == AxisSize {
		return float64(v.Len()), nil
	}
	index, err := v.axisIndex(name)
	if err != nil {
		return 0, err
	}
	return v.raw()[index], nil
}

// SetAxis 按名称写入，只接受 x、y、z。
func (v *Vector) SetAxis(name string, value float64) error {
	index, err := v.axisIndex(name)
	if err != nil {
		return err
	}
	v.raw()[index] = value
	return nil
}

// check 检查向量已通过 New 等函数创建。
func (v *Vector) check() error {
	if v == nil || v.Len() == 0 {
		return errUninitialized
	}
	return nil
}

// sameDim 检查另一个向量可以参与逐元素运算。
func (v *Vector) sameDim(op string, other *Vector) error {
	if err := v.check(); err != nil {
		return err
	}
	if other.check() != nil {
		return fmt.Errorf("%w: can't %s non-vector", ErrInvalidArgument, op)
	}
	if v.Len() != other.Len() {
		return fmt.Errorf("%w: can't %s vectors of dimension %d and %d", ErrDimensionMismatch, op, v.Len(), other.Len())
	}
	return nil
}

// Add 向量加法，返回新向量。
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := v.sameDim("add", other); err != nil {
		return nil, err
	}
	return wrap(floats.AddTo(make([]float64, v.Len()), v.raw(), other.raw())), nil
}

// Sub 向量减法，返回新向量。
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	if err := v.sameDim("subtract", other); err != nil {
		return nil, err
	}
	return wrap(floats.SubTo(make([]float64, v.Len()), v.raw(), other.raw())), nil
}

// Add 等价于 v1.Add(v2)。
func Add(v1, v2 *Vector) (*Vector, error) {
	if v1 == nil {
		return nil, fmt.Errorf("%w: can't add non-vector", ErrInvalidArgument)
	}
	return v1.Add(v2)
}

// Sub 等价于 v1.Sub(v2)。
func Sub(v1, v2 *Vector) (*Vector, error) {
	if v1 == nil {
		return nil, fmt.Errorf("%w: can't subtract non-vector", ErrInvalidArgument)
	}
	return v1.Sub(v2)
}

// Neg 返回取反后的新向量。
func (v *Vector) Neg() *Vector {
	return v.Mul(-1)
}

// Pos 返回向量自身（不复制）。
func (v *Vector) Pos() *Vector {
	return v
}

// Mul 标量乘法，返回新向量。
func (v *Vector) Mul(scalar float64) *Vector {
	return wrap(floats.ScaleTo(make([]float64, v.Len()), scalar, v.raw()))
}

// Scale 标量在左侧的乘法，结果与 v.Mul(scalar) 相同。
func Scale(scalar float64, v *Vector) (*Vector, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: can only multiply vectors by scalars", ErrInvalidArgument)
	}
	return v.Mul(scalar), nil
}

// Div 标量除法，除数为零时返回 ErrDivisionByZero。
func (v *Vector) Div(scalar float64) (*Vector, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	if scalar == 0 {
		return nil, fmt.Errorf("%w: can't divide vector by zero", ErrDivisionByZero)
	}
	result := make([]float64, v.Len())
	for i, c := range v.raw() {
		result[i] = c / scalar
	}
	return wrap(result), nil
}

// Dot 计算与另一个向量的点积。
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := v.sameDim("take the dot product of", other); err != nil {
		return 0, err
	}
	return floats.Dot(v.raw(), other.raw()), nil
}

// Norm 返回欧几里得范数。
func (v *Vector) Norm() float64 {
	return floats.Norm(v.raw(), 2)
}

// Abs 是 Norm 的别名。
func (v *Vector) Abs() float64 {
	return v.Norm()
}

// Unit 返回同方向的单位向量，零向量返回 ErrDivisionByZero。
func (v *Vector) Unit() (*Vector, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	norm := v.Norm()
	if norm == 0 {
		return nil, fmt.Errorf("%w: zero vector has no direction", ErrDivisionByZero)
	}
	return v.Div(norm)
}

// All 按下标顺序遍历分量，可重复遍历。
func (v *Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.raw()[i]) {
				return
			}
		}
	}
}

// Values 按下标顺序遍历分量值。
func (v *Vector) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, c := range v.All() {
			if !yield(c) {
				return
			}
		}
	}
}

// Equal 判断两个向量维度相同且分量逐一相等。
func (v *Vector) Equal(other *Vector) bool {
	if v.sameDim("compare", other) != nil {
		return false
	}
	return floats.Equal(v.raw(), other.raw())
}

// EqualApprox 判断两个向量维度相同且分量在 tol 误差内相等。
func (v *Vector) EqualApprox(other *Vector, tol float64) bool {
	if v.sameDim("compare", other) != nil {
		return false
	}
	return floats.EqualApprox(v.raw(), other.raw(), tol)
}

// GoString 返回调试表示 Vector(c0, c1, ...)。
func (v *Vector) GoString() string {
	parts := make([]string, v.Len())
	for i, c := range v.raw() {
		parts[i] = debugFloat(c)
	}
	return "Vector(" + strings.Join(parts, ", ") + ")"
}

// debugFloat 整数值按整数书写，其余使用最短表示。
func debugFloat(c float64) string {
	if c == math.Trunc(c) && math.Abs(c) < 1e21 {
		return strconv.FormatFloat(c, 'f', -1, 64)
	}
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// String 使用当前全局格式输出。
func (v *Vector) String() string {
	return v.Render(CurrentFormat())
}

// Render 使用指定格式输出。
func (v *Vector) Render(f Format) string {
	return f.Render(v.raw())
}
