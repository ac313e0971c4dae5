package debug

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 网页图表
type Charts struct {
	Record
}

// legend 图例统一样式
func legend() charts.GlobalOpts {
	return charts.WithLegendOpts(opts.Legend{
		Type:   "scroll",
		Orient: "vertical",
		Right:  "10",
		Top:    "20",
		Bottom: "20",
	})
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 平面投影
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "向量投影",
			Subtitle: "各向量在 xy 平面上的投影",
		}),
		legend(),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:  "x",
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "y",
			Scale: opts.Bool(true),
		}),
	)
	for i, name := range c.Names {
		x, y := c.Point(i)
		scatter.AddSeries(name, []opts.ScatterData{{
			Name:       name,
			Value:      []float64{x, y},
			SymbolSize: 12,
		}})
	}
	// 范数
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "向量范数",
			Subtitle: "各向量的欧几里得范数",
		}),
		legend(),
	)
	norms := make([]opts.BarData, len(c.Norms))
	for i, n := range c.Norms {
		norms[i] = opts.BarData{Name: c.Names[i], Value: n}
	}
	bar.SetXAxis(c.Names).AddSeries("范数", norms)
	// 分量
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "向量分量",
			Subtitle: "按下标排列的分量值",
		}),
		legend(),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	dim := 0
	for _, v := range c.Vectors {
		dim = max(dim, len(v))
	}
	index := make([]string, dim)
	for i := range index {
		index[i] = strconv.Itoa(i)
	}
	line.SetXAxis(index)
	for i, v := range c.Vectors {
		items := make([]opts.LineData, len(v))
		for x, value := range v {
			items[x] = opts.LineData{Value: value}
		}
		line.AddSeries(c.Names[i], items)
	}
	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		scatter,
		bar,
		line,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { log.Println(err) }
