package maths

import "errors"

// 错误定义
// 所有操作都通过 fmt.Errorf 包装以下错误，调用方使用 errors.Is 判断类型。
var (
	ErrInvalidArgument       = errors.New("invalid argument")        // 参数类型或数量错误
	ErrDimensionMismatch     = errors.New("dimension mismatch")      // 向量维度不一致
	ErrIndexOutOfRange       = errors.New("index out of range")      // 下标越界
	ErrAttributeNotAvailable = errors.New("attribute not available") // 命名分量超出维度或名称未知
	ErrKeyNotFound           = errors.New("key not found")           // 未知的配置键
	ErrDivisionByZero        = errors.New("division by zero")        // 除数为零
)

// 命名分量
const (
	AxisX    = "x"    // 第0个分量
	AxisY    = "y"    // 第1个分量（维度≥2）
	AxisZ    = "z"    // 第2个分量（维度≥3）
	AxisSize = "size" // 维度（只读）
)

// 括号样式键
const (
	BracketRound  rune = '(' // ()
	BracketSquare rune = '[' // []
	BracketCurly  rune = '{' // {}
	BracketAngle  rune = '<' // <>
	BracketNone   rune = ' ' // 无括号
)

// DefaultSigFig 默认有效数字位数
const DefaultSigFig = 3
