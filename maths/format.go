package maths

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Brackets 输出时包围分量列表的左右括号
type Brackets struct {
	Left  string
	Right string
}

// bracketStyles 可选括号样式
var bracketStyles = map[rune]Brackets{
	BracketRound:  {"(", ")"},
	BracketSquare: {"[", "]"},
	BracketCurly:  {"{", "}"},
	BracketAngle:  {"<", ">"},
	BracketNone:   {"", ""},
}

// BracketStyle 根据键返回括号样式，未知键返回 ErrKeyNotFound（同时满足 ErrInvalidArgument）。
func BracketStyle(key rune) (Brackets, error) {
	b, ok := bracketStyles[key]
	if !ok {
		return Brackets{}, fmt.Errorf("%w: %w: unknown bracket style %q", ErrInvalidArgument, ErrKeyNotFound, key)
	}
	return b, nil
}

// Format 文本输出配置
type Format struct {
	SigFig   int      // 有效数字位数（>0）
	Brackets Brackets // 括号样式
}

// DefaultFormat 返回默认配置：3位有效数字，圆括号。
func DefaultFormat() Format {
	return Format{SigFig: DefaultSigFig, Brackets: bracketStyles[BracketRound]}
}

// Validate 检查配置是否有效。
func (f Format) Validate() error {
	if f.SigFig <= 0 {
		return fmt.Errorf("%w: significant figures must be positive, got %d", ErrInvalidArgument, f.SigFig)
	}
	return nil
}

// WithSigFig 返回修改有效数字后的配置。
func (f Format) WithSigFig(figures int) (Format, error) {
	f.SigFig = figures
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// WithBrackets 返回修改括号样式后的配置。
func (f Format) WithBrackets(key rune) (Format, error) {
	b, err := BracketStyle(key)
	if err != nil {
		return Format{}, err
	}
	f.Brackets = b
	return f, nil
}

// Render 按配置输出分量列表。
func (f Format) Render(components []float64) string {
	var sb strings.Builder
	sb.WriteString(f.Brackets.Left)
	for i, c := range components {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.component(c))
	}
	sb.WriteString(f.Brackets.Right)
	return sb.String()
}

// component 按有效数字输出单个分量，非有限值写作 INF、-INF、NAN。
func (f Format) component(c float64) string {
	switch {
	case math.IsNaN(c):
		return "NAN"
	case math.IsInf(c, 1):
		return "INF"
	case math.IsInf(c, -1):
		return "-INF"
	}
	return strconv.FormatFloat(c, 'G', f.SigFig, 64)
}

// 全局输出配置
// 所有向量的 String 共享该配置，修改后影响之后的每一次输出。
var (
	formatMu      sync.RWMutex
	currentFormat = DefaultFormat()
)

// CurrentFormat 返回当前全局配置的快照。
func CurrentFormat() Format {
	formatMu.RLock()
	defer formatMu.RUnlock()
	return currentFormat
}

// SetFormat 替换全局配置。
func SetFormat(f Format) error {
	if err := f.Validate(); err != nil {
		return err
	}
	formatMu.Lock()
	currentFormat = f
	formatMu.Unlock()
	return nil
}

// ResetFormat 恢复默认全局配置。
func ResetFormat() {
	formatMu.Lock()
	currentFormat = DefaultFormat()
	formatMu.Unlock()
}

// SetSigFig 设置全局有效数字位数。
func SetSigFig(figures int) error {
	formatMu.Lock()
	defer formatMu.Unlock()
	f, err := currentFormat.WithSigFig(figures)
	if err != nil {
		return err
	}
	currentFormat = f
	return nil
}

// SetBrackets 设置全局括号样式。
func SetBrackets(key rune) error {
	formatMu.Lock()
	defer formatMu.Unlock()
	f, err := currentFormat.WithBrackets(key)
	if err != nil {
		return err
	}
	currentFormat = f
	return nil
}

// formatConfig YAML 配置文件结构
//
//	sig_fig: 2
//	brackets: "["
type formatConfig struct {
	SigFig   *int    `yaml:"sig_fig"`
	Brackets *string `yaml:"brackets"`
}

// LoadFormat 从 YAML 读取配置，未出现的字段保持默认值，未知字段返回错误。
func LoadFormat(r io.Reader) (Format, error) {
	var cfg formatConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Format{}, fmt.Errorf("%w: 解析格式配置失败: %w", ErrInvalidArgument, err)
	}
	f := DefaultFormat()
	if cfg.SigFig != nil {
		var err error
		if f, err = f.WithSigFig(*cfg.SigFig); err != nil {
			return Format{}, err
		}
	}
	if cfg.Brackets != nil {
		key := []rune(*cfg.Brackets)
		if len(key) != 1 {
			return Format{}, fmt.Errorf("%w: %w: bracket style must be a single character, got %q", ErrInvalidArgument, ErrKeyNotFound, *cfg.Brackets)
		}
		var err error
		if f, err = f.WithBrackets(key[0]); err != nil {
			return Format{}, err
		}
	}
	return f, nil
}

// LoadFormatFile 从文件读取配置。
func LoadFormatFile(filename string) (Format, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Format{}, fmt.Errorf("无法打开文件 %s: %w", filename, err)
	}
	defer file.Close()
	return LoadFormat(file)
}
