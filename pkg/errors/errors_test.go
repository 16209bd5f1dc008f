package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewParameterNotFoundError(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		param     string
		wantMsg   string
		hasStack  bool
	}{
		{
			name:      "primary namespace",
			namespace: "primary",
			param:     "mu_0",
			wantMsg:   `rb: parameter not found: no primary parameter named "mu_0"`,
			hasStack:  true,
		},
		{
			name:      "extra namespace",
			namespace: "extra",
			param:     "sample_index",
			wantMsg:   `rb: parameter not found: no extra parameter named "sample_index"`,
			hasStack:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewParameterNotFoundError(tt.namespace, tt.param)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ParameterNotFoundError型にキャスト可能か確認
			var notFoundErr *ParameterNotFoundError
			if !As(err, &notFoundErr) {
				t.Error("Error should be castable to *ParameterNotFoundError")
			}
			if notFoundErr.Name != tt.param {
				t.Errorf("Name = %v, want %v", notFoundErr.Name, tt.param)
			}
		})
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("StringPrecision", "precision must be non-negative")

	// 基本的なエラーメッセージの確認
	want := "rb: StringPrecision: precision must be non-negative"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// ValueError型にキャスト可能か確認
	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestNewDeprecationWarning(t *testing.T) {
	tests := []struct {
		name        string
		api         string
		replacement string
		wantMsg     string
	}{
		{
			name:        "with replacement",
			api:         "Parameters.ParameterNames",
			replacement: "Parameters.Range",
			wantMsg:     "Parameters.ParameterNames is deprecated; use Parameters.Range instead",
		},
		{
			name:        "without replacement",
			api:         "Parameters.ParametersMap",
			replacement: "",
			wantMsg:     "Parameters.ParametersMap is deprecated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warn := NewDeprecationWarning(tt.api, tt.replacement)

			if warn.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", warn.Error(), tt.wantMsg)
			}

			// DeprecationWarning型へのキャストのみ確認
			var depWarn *DeprecationWarning
			if !As(warn, &depWarn) {
				t.Error("Warning should be castable to *DeprecationWarning")
			}
		})
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	// テスト終了後にデフォルトへ戻さない（他テストはハンドラを再設定する）

	warn := NewDeprecationWarning("OldAPI", "NewAPI")
	Warn(warn)

	if captured == nil {
		t.Fatal("Expected warning handler to be invoked")
	}
	if captured.Error() != warn.Error() {
		t.Errorf("Captured warning = %v, want %v", captured, warn)
	}
}

func TestWrapAndIs(t *testing.T) {
	// 元のエラー
	baseErr := New("range not initialized")

	// ラップ
	wrapped := Wrap(baseErr, "in RBEvaluation.Solve")

	// Is関数でチェック
	if !Is(wrapped, baseErr) {
		t.Error("Expected Is(wrapped, baseErr) to be true")
	}

	// エラーメッセージの確認
	if !strings.Contains(wrapped.Error(), "in RBEvaluation.Solve") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	// 元のエラー
	baseErr := New("empty parameter set")

	// フォーマット付きラップ
	wrapped := Wrapf(baseErr, "in %s: expected %d parameters, got %d", "Vector", 3, 0)

	if !Is(wrapped, baseErr) {
		t.Error("Expected Is(wrapped, baseErr) to be true")
	}

	expectedMsg := "in Vector: expected 3 parameters, got 0"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	// エラーチェーンの作成
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := Wrap(err2, "wrapped twice")

	// チェーン全体を確認
	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	// スタックトレースの確認（詳細表示）
	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}
