// 指示: miu200521358
package io_common

import (
	"errors"
	"fmt"
	"testing"
)

func TestIoErrorKindAndUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := fmt.Errorf("wrapped: %w", NewIoParseFailed("%s の解析に失敗しました", cause, "mesh"))

	if !IsIoErrorKind(err, IO_ERROR_KIND_PARSE_FAILED) {
		t.Fatalf("kind mismatch: %v", err)
	}
	if IsIoErrorKind(err, IO_ERROR_KIND_FILE_NOT_FOUND) {
		t.Fatalf("kind should not match file not found")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause should be unwrapped")
	}
	if got := NewIoParseFailed("%s の解析に失敗しました", nil, "mesh").Error(); got != "mesh の解析に失敗しました" {
		t.Fatalf("message mismatch: got=%s", got)
	}
}
