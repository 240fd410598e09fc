// 指示: miu200521358
package io_common

import (
	"errors"
	"fmt"
)

// IoErrorKind は入出力エラーの種別を表す。
type IoErrorKind string

const (
	// IO_ERROR_KIND_EXT_INVALID は拡張子不正を表す。
	IO_ERROR_KIND_EXT_INVALID IoErrorKind = "ext_invalid"
	// IO_ERROR_KIND_FILE_NOT_FOUND はファイル未検出を表す。
	IO_ERROR_KIND_FILE_NOT_FOUND IoErrorKind = "file_not_found"
	// IO_ERROR_KIND_PARSE_FAILED は解析失敗を表す。
	IO_ERROR_KIND_PARSE_FAILED IoErrorKind = "parse_failed"
	// IO_ERROR_KIND_FORMAT_NOT_SUPPORTED は未対応形式を表す。
	IO_ERROR_KIND_FORMAT_NOT_SUPPORTED IoErrorKind = "format_not_supported"
	// IO_ERROR_KIND_SAVE_FAILED は保存失敗を表す。
	IO_ERROR_KIND_SAVE_FAILED IoErrorKind = "save_failed"
)

// IoError は入出力処理のエラーを表す。
type IoError struct {
	Kind    IoErrorKind
	Message string
	Err     error
}

func (e *IoError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap は内包エラーを返す。
func (e *IoError) Unwrap() error {
	return e.Err
}

// NewIoExtInvalid は拡張子不正エラーを生成する。
func NewIoExtInvalid(path string, err error) *IoError {
	return &IoError{Kind: IO_ERROR_KIND_EXT_INVALID, Message: fmt.Sprintf("拡張子が不正です: %s", path), Err: err}
}

// NewIoFileNotFound はファイル未検出エラーを生成する。
func NewIoFileNotFound(path string, err error) *IoError {
	return &IoError{Kind: IO_ERROR_KIND_FILE_NOT_FOUND, Message: fmt.Sprintf("ファイルが見つかりません: %s", path), Err: err}
}

// NewIoParseFailed は解析失敗エラーを生成する。
func NewIoParseFailed(format string, err error, params ...any) *IoError {
	return &IoError{Kind: IO_ERROR_KIND_PARSE_FAILED, Message: fmt.Sprintf(format, params...), Err: err}
}

// NewIoFormatNotSupported は未対応形式エラーを生成する。
func NewIoFormatNotSupported(format string, err error, params ...any) *IoError {
	return &IoError{Kind: IO_ERROR_KIND_FORMAT_NOT_SUPPORTED, Message: fmt.Sprintf(format, params...), Err: err}
}

// NewIoSaveFailed は保存失敗エラーを生成する。
func NewIoSaveFailed(format string, err error, params ...any) *IoError {
	return &IoError{Kind: IO_ERROR_KIND_SAVE_FAILED, Message: fmt.Sprintf(format, params...), Err: err}
}

// IsIoErrorKind はエラー連鎖に指定種別の入出力エラーが含まれるか判定する。
func IsIoErrorKind(err error, kind IoErrorKind) bool {
	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		return false
	}
	return ioErr.Kind == kind
}
