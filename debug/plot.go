package debug

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot 静态图像
// 每个向量在 xy 平面上的投影绘制为从原点出发的线段，终点带标记。
type Plot struct {
	Record
	Title  string    // 标题
	Width  vg.Length // 宽度，零值为 4 英寸
	Height vg.Length // 高度，零值为 4 英寸
}

// build 构建图像
func (p *Plot) build() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"
	pl.Add(plotter.NewGrid())
	for i, name := range p.Names {
		x, y := p.Point(i)
		xy := plotter.XYs{{X: 0, Y: 0}, {X: x, Y: y}}
		line, points, err := plotter.NewLinePoints(xy)
		if err != nil {
			return nil, fmt.Errorf("绘制向量 %s 失败: %w", name, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		pl.Add(line, points)
		pl.Legend.Add(name, line, points)
	}
	return pl, nil
}

// size 返回图像尺寸
func (p *Plot) size() (vg.Length, vg.Length) {
	w, h := p.Width, p.Height
	if w == 0 {
		w = 4 * vg.Inch
	}
	if h == 0 {
		h = 4 * vg.Inch
	}
	return w, h
}

// Render 以指定格式（png、svg、pdf 等）写出图像
func (p *Plot) Render(w io.Writer, format string) error {
	pl, err := p.build()
	if err != nil {
		return err
	}
	width, height := p.size()
	wt, err := pl.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save 保存到文件，格式由扩展名决定
func (p *Plot) Save(filename string) error {
	pl, err := p.build()
	if err != nil {
		return err
	}
	width, height := p.size()
	if ext := strings.ToLower(filepath.Ext(filename)); ext == "" {
		return fmt.Errorf("无法从文件名 %s 判断图像格式", filename)
	}
	return pl.Save(width, height, filename)
}
