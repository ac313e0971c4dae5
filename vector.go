package vector

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"vector/maths"
)

// Parse 解析文本形式的向量
// 分量之间使用逗号或空白分隔，允许外层括号，例如 "1,2,3"、"(1, 2, 3)"、"[1 2]"。
func Parse(s string) (*maths.Vector, error) {
	components, err := parseRow(trimBrackets(s))
	if err != nil {
		return nil, err
	}
	return maths.New(components...)
}

// ParseMatrix 解析文本形式的矩阵，行之间使用分号分隔，例如 "1,0,0; 0,1,0"。
func ParseMatrix(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty matrix", maths.ErrInvalidArgument)
	}
	lines := strings.Split(s, ";")
	matrix := make([][]float64, 0, len(lines))
	for i, line := range lines {
		row, err := parseRow(trimBrackets(line))
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: %w", i+1, err)
		}
		if len(row) == 0 {
			return nil, fmt.Errorf("第 %d 行: %w: empty row", i+1, maths.ErrInvalidArgument)
		}
		matrix = append(matrix, row)
	}
	return matrix, nil
}

// trimBrackets 去除任意一种括号样式的外层括号。
func trimBrackets(s string) string {
	s = strings.TrimSpace(s)
	for _, pair := range []string{"()", "[]", "{}", "<>"} {
		if len(s) >= 2 && s[0] == pair[0] && s[len(s)-1] == pair[1] {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// parseRow 解析一行数字。
func parseRow(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	row := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q is not a number", maths.ErrInvalidArgument, field)
		}
		row[i] = value
	}
	return row, nil
}
