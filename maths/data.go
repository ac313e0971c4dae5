package maths

import (
	"fmt"
	"reflect"
)

// dataManager 定长分量存储
// 长度在创建后不可改变，只允许替换单个元素。
type dataManager struct {
	data []float64
}

// newDataManager 使用给定的数据切片创建存储（不复制）。
func newDataManager(data []float64) *dataManager {
	return &dataManager{data: data}
}

// raw 返回底层切片，零值存储返回 nil。
func (dm *dataManager) raw() []float64 {
	if dm == nil {
		return nil
	}
	return dm.data
}

// Len 返回分量数量。
func (dm *dataManager) Len() int {
	return len(dm.raw())
}

// offset 将下标转换为切片位置，负数下标从末尾开始计数。
func (dm *dataManager) offset(index int) (int, error) {
	n, i := dm.Len(), index
	if n == 0 {
		return 0, errUninitialized
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: index %d with dimension %d", ErrIndexOutOfRange, index, n)
	}
	return i, nil
}

// Get 返回指定下标处的分量。
func (dm *dataManager) Get(index int) (float64, error) {
	i, err := dm.offset(index)
	if err != nil {
		return 0, err
	}
	return dm.data[i], nil
}

// Set 替换指定下标处的分量。
func (dm *dataManager) Set(index int, value float64) error {
	i, err := dm.offset(index)
	if err != nil {
		return err
	}
	dm.data[i] = value
	return nil
}

// SetValue 与 Set 相同，但接受任意数值类型并在写入前校验。
func (dm *dataManager) SetValue(index int, value any) error {
	f, err := toFloat(value)
	if err != nil {
		return err
	}
	return dm.Set(index, f)
}

// Components 返回分量切片的副本。
func (dm *dataManager) Components() []float64 {
	cpy := make([]float64, dm.Len())
	copy(cpy, dm.raw())
	return cpy
}

// errUninitialized 零值向量参与运算时返回
var errUninitialized = fmt.Errorf("%w: uninitialized vector, use New", ErrInvalidArgument)

// toFloat 将整数或浮点数转换为 float64，其他类型返回 ErrInvalidArgument。
func toFloat(value any) (float64, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: component must be a number, got nil", ErrInvalidArgument)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, fmt.Errorf("%w: component must be a number, got %T", ErrInvalidArgument, value)
}
