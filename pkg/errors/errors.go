// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 縮約基底（reduced basis）計算で発生するエラーを構造化された形で表現します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("RB-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、DeprecationWarningなどの警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// DeprecationWarning は非推奨のAPIが呼び出された場合に発生する警告です。
type DeprecationWarning struct {
	API         string
	Replacement string
}

func (w *DeprecationWarning) Error() string {
	if w.Replacement != "" {
		return fmt.Sprintf("%s is deprecated; use %s instead", w.API, w.Replacement)
	}
	return fmt.Sprintf("%s is deprecated", w.API)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *DeprecationWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("api", w.API).
		Str("replacement", w.Replacement).
		Str("type", "DeprecationWarning")
}

// NewDeprecationWarning は新しいDeprecationWarningを作成します。
func NewDeprecationWarning(api, replacement string) *DeprecationWarning {
	return &DeprecationWarning{API: api, Replacement: replacement}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ParameterNotFoundError は存在しないパラメータ名で値を取得しようとした場合のエラーです。
// 呼び出し側は HasValue で事前に確認するか、デフォルト値付きのアクセサを使用してください。
type ParameterNotFoundError struct {
	Namespace string // "primary" または "extra"
	Name      string
}

func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("rb: parameter not found: no %s parameter named %q", e.Namespace, e.Name)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ParameterNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("namespace", e.Namespace).
		Str("param_name", e.Name).
		Str("type", "ParameterNotFoundError")
}

// NewParameterNotFoundError は新しいParameterNotFoundErrorを作成し、スタックトレースを付与します。
func NewParameterNotFoundError(namespace, name string) error {
	err := &ParameterNotFoundError{Namespace: namespace, Name: name}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("rb: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
