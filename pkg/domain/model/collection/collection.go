// 指示: miu200521358
// Package collection はindexと名前で要素を引けるモデル集合を提供する。
package collection

import "github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/merrors"

// IIndexModel はindexを持つ要素の契約を表す。
type IIndexModel interface {
	Index() int
	SetIndex(index int)
}

// IIndexNameModel はindexと名前を持つ要素の契約を表す。
type IIndexNameModel interface {
	IIndexModel
	Name() string
	SetName(name string)
}

// IndexModelCollection はindex順の要素集合を表す。
type IndexModelCollection[T IIndexModel] struct {
	values []T
}

// NewIndexModelCollection はIndexModelCollectionを生成する。
func NewIndexModelCollection[T IIndexModel](capacity int) *IndexModelCollection[T] {
	return &IndexModelCollection[T]{values: make([]T, 0, capacity)}
}

// Len は要素数を返す。
func (c *IndexModelCollection[T]) Len() int {
	return len(c.values)
}

// Values は要素一覧を返す。
func (c *IndexModelCollection[T]) Values() []T {
	return c.values
}

// Get はindexの要素を返す。
func (c *IndexModelCollection[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(c.values) {
		var zero T
		return zero, merrors.NewIndexOutOfRangeError(index, len(c.values))
	}
	return c.values[index], nil
}

// Append は末尾へ追加し、採番したindexを返す。
func (c *IndexModelCollection[T]) Append(value T) int {
	index := len(c.values)
	value.SetIndex(index)
	c.values = append(c.values, value)
	return index
}

// NamedCollection はindex順かつ名前で引ける要素集合を表す。
// 同名要素がある場合、名前検索は先に登録された要素を返す。
type NamedCollection[T IIndexNameModel] struct {
	scope       string
	values      []T
	nameIndexes map[string]int
}

// NewNamedCollection はNamedCollectionを生成する。scope は未検出エラーの表示名。
func NewNamedCollection[T IIndexNameModel](scope string, capacity int) *NamedCollection[T] {
	return &NamedCollection[T]{
		scope:       scope,
		values:      make([]T, 0, capacity),
		nameIndexes: make(map[string]int, capacity),
	}
}

// Len は要素数を返す。
func (c *NamedCollection[T]) Len() int {
	return len(c.values)
}

// Values は要素一覧を返す。
func (c *NamedCollection[T]) Values() []T {
	return c.values
}

// Get はindexの要素を返す。
func (c *NamedCollection[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(c.values) {
		var zero T
		return zero, merrors.NewIndexOutOfRangeError(index, len(c.values))
	}
	return c.values[index], nil
}

// GetByName は名前の要素を返す。未検出時は NameNotFoundError を返す。
func (c *NamedCollection[T]) GetByName(name string) (T, error) {
	index, ok := c.nameIndexes[name]
	if !ok {
		var zero T
		return zero, merrors.NewNameNotFoundError(c.scope, name)
	}
	return c.values[index], nil
}

// ContainsByName は名前の要素が存在するか判定する。
func (c *NamedCollection[T]) ContainsByName(name string) bool {
	_, ok := c.nameIndexes[name]
	return ok
}

// Append は末尾へ追加し、採番したindexを返す。
func (c *NamedCollection[T]) Append(value T) int {
	index := len(c.values)
	value.SetIndex(index)
	c.values = append(c.values, value)
	if _, exists := c.nameIndexes[value.Name()]; !exists {
		c.nameIndexes[value.Name()] = index
	}
	return index
}

// Insert は index の位置へ要素を挿入し、後続要素を採番し直す。
// 要素間の参照index書き換えは呼び出し側の責務とする。
func (c *NamedCollection[T]) Insert(index int, values ...T) error {
	if index < 0 || index > len(c.values) {
		return merrors.NewIndexOutOfRangeError(index, len(c.values))
	}
	next := make([]T, 0, len(c.values)+len(values))
	next = append(next, c.values[:index]...)
	next = append(next, values...)
	next = append(next, c.values[index:]...)
	c.values = next
	for i, value := range c.values {
		value.SetIndex(i)
	}
	c.rebuildNameIndexes()
	return nil
}

// Rename は要素名を変更し、名前索引を更新する。
func (c *NamedCollection[T]) Rename(index int, name string) error {
	value, err := c.Get(index)
	if err != nil {
		return err
	}
	value.SetName(name)
	c.rebuildNameIndexes()
	return nil
}

// rebuildNameIndexes は名前索引を再構築する。
func (c *NamedCollection[T]) rebuildNameIndexes() {
	c.nameIndexes = make(map[string]int, len(c.values))
	for i, value := range c.values {
		if _, exists := c.nameIndexes[value.Name()]; exists {
			continue
		}
		c.nameIndexes[value.Name()] = i
	}
}
