package debug

import (
	"encoding/json"
	"io"
	"log"

	"vector/maths"
)

// Record 记录向量历史
// 每次 Update 保存一份分量副本，之后修改原向量不影响记录。
type Record struct {
	Names   []string    // 向量名称
	Vectors [][]float64 // 分量列
	Norms   []float64   // 范数列
}

// Update 记录数据
func (list *Record) Update(name string, v *maths.Vector) {
	list.Names = append(list.Names, name)
	list.Vectors = append(list.Vectors, v.Components())
	list.Norms = append(list.Norms, v.Norm())
}

// Len 记录数量
func (list *Record) Len() int { return len(list.Names) }

// Point 返回第 i 条记录在平面上的投影（x, y），一维向量的 y 为 0。
func (list *Record) Point(i int) (x, y float64) {
	c := list.Vectors[i]
	x = c[0]
	if len(c) > 1 {
		y = c[1]
	}
	return x, y
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }

func (list *Record) Error(err error) { log.Println(err) }
