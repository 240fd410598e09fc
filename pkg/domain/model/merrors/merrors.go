// 指示: miu200521358
// Package merrors は変換処理で発生する型付きエラーを提供する。
package merrors

import (
	"errors"
	"fmt"
)

// ErrorKind は違反した前提の分類を表す。
type ErrorKind string

const (
	// ERROR_KIND_STRUCTURAL はリグ構造が前提と一致しないことを表す。
	ERROR_KIND_STRUCTURAL ErrorKind = "structural"
	// ERROR_KIND_LOOKUP は参照解決に失敗したことを表す。
	ERROR_KIND_LOOKUP ErrorKind = "lookup"
	// ERROR_KIND_DOMAIN は値が未対応の定義域にあることを表す。
	ERROR_KIND_DOMAIN ErrorKind = "domain"
	// ERROR_KIND_RANGE は値が許容範囲外であることを表す。
	ERROR_KIND_RANGE ErrorKind = "range"
)

// IKindError は分類付きエラーの契約を表す。
type IKindError interface {
	error
	Kind() ErrorKind
}

// KindOf はエラー連鎖から最初に見つかった分類を返す。
func KindOf(err error) (ErrorKind, bool) {
	var kindErr IKindError
	if errors.As(err, &kindErr) {
		return kindErr.Kind(), true
	}
	return "", false
}

// NameNotFoundError は名前検索に失敗したことを表す。
type NameNotFoundError struct {
	Scope string
	Name  string
}

// NewNameNotFoundError はNameNotFoundErrorを生成する。
func NewNameNotFoundError(scope string, name string) *NameNotFoundError {
	return &NameNotFoundError{Scope: scope, Name: name}
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("%sが見つかりません: name=%s", e.Scope, e.Name)
}

// Kind は分類を返す。
func (e *NameNotFoundError) Kind() ErrorKind {
	return ERROR_KIND_LOOKUP
}

// IsNameNotFoundError は名前未検出エラーか判定する。
func IsNameNotFoundError(err error) bool {
	var target *NameNotFoundError
	return errors.As(err, &target)
}

// IndexOutOfRangeError はindexが範囲外であることを表す。
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

// NewIndexOutOfRangeError はIndexOutOfRangeErrorを生成する。
func NewIndexOutOfRangeError(index int, length int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{Index: index, Length: length}
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("indexが範囲外です: index=%d length=%d", e.Index, e.Length)
}

// Kind は分類を返す。
func (e *IndexOutOfRangeError) Kind() ErrorKind {
	return ERROR_KIND_RANGE
}

// JointHashNotFoundError は頂点ウェイトのジョイントハッシュが解決できないことを表す。
type JointHashNotFoundError struct {
	VertexIndex int
	Hash        uint32
}

func (e *JointHashNotFoundError) Error() string {
	return fmt.Sprintf("ジョイントハッシュを解決できません: vertex=%d hash=%08x", e.VertexIndex, e.Hash)
}

// Kind は分類を返す。
func (e *JointHashNotFoundError) Kind() ErrorKind {
	return ERROR_KIND_LOOKUP
}

// UnsupportedInfluenceCountError は未対応のウェイト数(3)であることを表す。
type UnsupportedInfluenceCountError struct {
	VertexIndex int
	Count       int
}

func (e *UnsupportedInfluenceCountError) Error() string {
	return fmt.Sprintf("未対応のウェイト数です: vertex=%d count=%d", e.VertexIndex, e.Count)
}

// Kind は分類を返す。
func (e *UnsupportedInfluenceCountError) Kind() ErrorKind {
	return ERROR_KIND_DOMAIN
}

// InfluenceCountRangeError はウェイト数が0または4超であることを表す。
type InfluenceCountRangeError struct {
	VertexIndex int
	Count       int
}

func (e *InfluenceCountRangeError) Error() string {
	return fmt.Sprintf("ウェイト数が範囲外です: vertex=%d count=%d", e.VertexIndex, e.Count)
}

// Kind は分類を返す。
func (e *InfluenceCountRangeError) Kind() ErrorKind {
	return ERROR_KIND_RANGE
}

// StructuralError はリグが想定トポロジと一致しないことを表す。
// Stage は失敗した工程、Expectation は満たされなかった前提。
type StructuralError struct {
	Stage       string
	Expectation string
	Err         error
}

// NewStructuralError はStructuralErrorを生成する。
func NewStructuralError(stage string, expectation string, err error) *StructuralError {
	return &StructuralError{Stage: stage, Expectation: expectation, Err: err}
}

func (e *StructuralError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Stage, e.Expectation)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Expectation, e.Err)
}

// Unwrap は内包エラーを返す。
func (e *StructuralError) Unwrap() error {
	return e.Err
}

// Kind は分類を返す。
func (e *StructuralError) Kind() ErrorKind {
	return ERROR_KIND_STRUCTURAL
}

// IsStructuralError は構造エラーか判定する。
func IsStructuralError(err error) bool {
	var target *StructuralError
	return errors.As(err, &target)
}
