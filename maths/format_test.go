package maths

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// TestRenderDefault 测试默认格式：3位有效数字，圆括号。
func TestRenderDefault(t *testing.T) {
	t.Cleanup(ResetFormat)
	ResetFormat()

	cases := []struct {
		v    *Vector
		want string
	}{
		{MustNew(1, 2), "(1, 2)"},
		{MustNew(3.14159, 2.71828), "(3.14, 2.72)"},
		{MustNew(100, 0.5, -7), "(100, 0.5, -7)"},
		{MustNew(1234.5), "(1.23E+03)"},
		{MustNew(0.00001234), "(1.23E-05)"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("%#v: expected %s, got %s", c.v, c.want, got)
		}
	}
	// fmt 使用 String 和 GoString
	v := MustNew(1, 2)
	if got := fmt.Sprintf("%v %#v", v, v); got != "(1, 2) Vector(1, 2)" {
		t.Errorf("Unexpected fmt output: %s", got)
	}
}

// TestSetSigFig 测试修改全局有效数字。
func TestSetSigFig(t *testing.T) {
	t.Cleanup(ResetFormat)

	// 已创建的向量同样受影响
	v := MustNew(3.14159, 2.71828)
	if err := SetSigFig(2); err != nil {
		t.Fatalf("SetSigFig failed: %v", err)
	}
	if got := v.String(); got != "(3.1, 2.7)" {
		t.Errorf("Expected (3.1, 2.7), got %s", got)
	}

	for _, n := range []int{0, -1} {
		if err := SetSigFig(n); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SetSigFig(%d): expected ErrInvalidArgument, got %v", n, err)
		}
	}
	// 失败时保持原配置
	if CurrentFormat().SigFig != 2 {
		t.Errorf("Failed SetSigFig must not change configuration, got %d", CurrentFormat().SigFig)
	}
}

// TestSetBrackets 测试所有括号样式和未知键。
func TestSetBrackets(t *testing.T) {
	t.Cleanup(ResetFormat)

	v := MustNew(1, 2)
	cases := map[rune]string{
		BracketSquare: "[1, 2]",
		BracketCurly:  "{1, 2}",
		BracketAngle:  "<1, 2>",
		BracketNone:   "1, 2",
		BracketRound:  "(1, 2)",
	}
	for key, want := range cases {
		if err := SetBrackets(key); err != nil {
			t.Fatalf("SetBrackets(%q) failed: %v", key, err)
		}
		if got := v.String(); got != want {
			t.Errorf("SetBrackets(%q): expected %s, got %s", key, want, got)
		}
	}

	err := SetBrackets('|')
	if !errors.Is(err, ErrKeyNotFound) || !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetBrackets('|'): expected ErrKeyNotFound and ErrInvalidArgument, got %v", err)
	}
}

// TestRenderExplicit 测试显式传入格式不受全局配置影响。
func TestRenderExplicit(t *testing.T) {
	t.Cleanup(ResetFormat)
	if err := SetBrackets(BracketCurly); err != nil {
		t.Fatal(err)
	}

	f, err := DefaultFormat().WithSigFig(5)
	if err != nil {
		t.Fatal(err)
	}
	if f, err = f.WithBrackets(BracketSquare); err != nil {
		t.Fatal(err)
	}
	if got := MustNew(3.14159265, 1).Render(f); got != "[3.1416, 1]" {
		t.Errorf("Expected [3.1416, 1], got %s", got)
	}
	if _, err := f.WithSigFig(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("WithSigFig(0): expected ErrInvalidArgument, got %v", err)
	}
	if err := SetFormat(Format{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetFormat with zero SigFig: expected ErrInvalidArgument, got %v", err)
	}
}

// TestLoadFormat 测试从 YAML 读取配置。
func TestLoadFormat(t *testing.T) {
	f, err := LoadFormat(strings.NewReader("sig_fig: 2\nbrackets: \"<\"\n"))
	if err != nil {
		t.Fatalf("LoadFormat failed: %v", err)
	}
	if got := MustNew(3.14159, 2.71828).Render(f); got != "<3.1, 2.7>" {
		t.Errorf("Expected <3.1, 2.7>, got %s", got)
	}

	// 空文档使用默认值
	f, err = LoadFormat(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFormat with empty input failed: %v", err)
	}
	if f != DefaultFormat() {
		t.Errorf("Expected default format, got %+v", f)
	}

	f, err = LoadFormat(strings.NewReader("brackets: \" \"\n"))
	if err != nil {
		t.Fatalf("LoadFormat failed: %v", err)
	}
	if got := MustNew(1, 2).Render(f); got != "1, 2" {
		t.Errorf("Expected 1, 2, got %s", got)
	}

	for _, doc := range []string{"sig_fig: 0\n", "brackets: \"|\"\n", "brackets: \"()\"\n"} {
		if _, err := LoadFormat(strings.NewReader(doc)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("LoadFormat(%q): expected ErrInvalidArgument, got %v", doc, err)
		}
	}
	if _, err := LoadFormat(strings.NewReader("sig_fig: [")); err == nil {
		t.Errorf("LoadFormat with broken YAML should fail")
	}
}

// TestLoadFormatFile 测试从文件读取配置。
func TestLoadFormatFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "format.yaml")
	if err := os.WriteFile(filename, []byte("sig_fig: 4\nbrackets: \"[\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFormatFile(filename)
	if err != nil {
		t.Fatalf("LoadFormatFile failed: %v", err)
	}
	if f.SigFig != 4 || f.Brackets != (Brackets{"[", "]"}) {
		t.Errorf("Unexpected format %+v", f)
	}
	if _, err := LoadFormatFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("LoadFormatFile with missing file should fail")
	}
}

// TestFormatConcurrent 并发读写全局配置时括号总是成对出现。
func TestFormatConcurrent(t *testing.T) {
	t.Cleanup(ResetFormat)
	v := MustNew(1, 2)
	valid := map[string]bool{"(1, 2)": true, "[1, 2]": true}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				SetBrackets(BracketSquare)
			} else {
				SetBrackets(BracketRound)
			}
		}
	}()
	errs := make(chan string, 1000)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if s := v.String(); !valid[s] {
				errs <- s
			}
		}
	}()
	wg.Wait()
	close(errs)
	for s := range errs {
		t.Errorf("Torn rendering: %s", s)
	}
}

// TestRenderNonFinite 非有限分量输出为 INF、-INF、NAN。
func TestRenderNonFinite(t *testing.T) {
	v := MustNew(math.Inf(1), math.NaN(), math.Inf(-1), 1e301)
	if got := v.Render(DefaultFormat()); got != "(INF, NAN, -INF, 1E+301)" {
		t.Errorf("Expected (INF, NAN, -INF, 1E+301), got %s", got)
	}
}

// TestLoadFormatUnknownField 拼写错误的字段返回错误而不是被忽略。
func TestLoadFormatUnknownField(t *testing.T) {
	for _, doc := range []string{"sigfig: 2\n", "sig_fig: 2\nbracket: \"[\"\n"} {
		if _, err := LoadFormat(strings.NewReader(doc)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("LoadFormat(%q): expected ErrInvalidArgument, got %v", doc, err)
		}
	}
}
