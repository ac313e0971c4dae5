package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"vector"
	"vector/debug"
	"vector/maths"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run 解析参数并输出每个向量的信息
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("vector", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		config   = fs.String("config", "", "YAML 格式配置文件（sig_fig, brackets）")
		sigFig   = fs.Int("sigfig", 0, "有效数字位数，覆盖配置文件")
		brackets = fs.String("brackets", "", "括号样式: ( [ { < 或空格")
		matrix   = fs.String("matrix", "", "变换矩阵，例如 \"1,0,0;0,1,0\"")
		chart    = fs.String("chart", "", "输出 HTML 图表文件")
		img      = fs.String("plot", "", "输出图像文件（png、svg、pdf）")
		serve    = fs.String("serve", "", "在指定地址发布 HTML 图表，例如 :8080")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: no vectors given", maths.ErrInvalidArgument)
	}

	// 配置
	format := maths.DefaultFormat()
	if *config != "" {
		f, err := maths.LoadFormatFile(*config)
		if err != nil {
			return err
		}
		format = f
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	var err error
	if set["sigfig"] {
		if format, err = format.WithSigFig(*sigFig); err != nil {
			return err
		}
	}
	if *brackets != "" {
		key := []rune(*brackets)
		if len(key) != 1 {
			return fmt.Errorf("%w: %w: bracket style %q", maths.ErrInvalidArgument, maths.ErrKeyNotFound, *brackets)
		}
		if format, err = format.WithBrackets(key[0]); err != nil {
			return err
		}
	}
	if err := maths.SetFormat(format); err != nil {
		return err
	}

	var transform [][]float64
	if *matrix != "" {
		if transform, err = vector.ParseMatrix(*matrix); err != nil {
			return err
		}
	}

	// 向量
	var record debug.Record
	vectors := make([]*maths.Vector, fs.NArg())
	for i, arg := range fs.Args() {
		v, err := vector.Parse(arg)
		if err != nil {
			return fmt.Errorf("参数 %d: %w", i+1, err)
		}
		vectors[i] = v
		name := fmt.Sprintf("v%d", i+1)
		record.Update(name, v)
		fmt.Fprintf(out, "%s = %v  %#v\n", name, v, v)
		fmt.Fprintf(out, "  |%s| = %.*G\n", name, format.SigFig, v.Norm())
		if u, err := v.Unit(); err != nil {
			fmt.Fprintf(out, "  unit: %v\n", err)
		} else {
			fmt.Fprintf(out, "  unit = %v\n", u)
		}
		if transform != nil {
			t, err := v.Transform(transform)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			fmt.Fprintf(out, "  M*%s = %v\n", name, t)
			record.Update("M*"+name, t)
		}
	}

	// 两两运算
	if len(vectors) >= 2 {
		v1, v2 := vectors[0], vectors[1]
		sum, err := maths.Add(v1, v2)
		if err != nil {
			return err
		}
		diff, err := maths.Sub(v1, v2)
		if err != nil {
			return err
		}
		dot, err := v1.Dot(v2)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "v1 + v2 = %v\n", sum)
		fmt.Fprintf(out, "v1 - v2 = %v\n", diff)
		fmt.Fprintf(out, "v1 . v2 = %.*G\n", format.SigFig, dot)
		record.Update("v1+v2", sum)
	}

	charts := &debug.Charts{Record: record}
	if *chart != "" {
		file, err := os.Create(*chart)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := charts.Render(file); err != nil {
			return err
		}
		log.Printf("图表已写入 %s", *chart)
	}
	if *img != "" {
		p := &debug.Plot{Record: record, Title: "vectors"}
		if err := p.Save(*img); err != nil {
			return err
		}
		log.Printf("图像已写入 %s", *img)
	}
	if *serve != "" {
		log.Printf("图表发布在 %s", *serve)
		return http.ListenAndServe(*serve, http.HandlerFunc(charts.Handler))
	}
	return nil
}
