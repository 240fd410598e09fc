// 指示: miu200521358
package model

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/collection"
	"github.com/tiendc/go-deepcopy"
)

// DisplayType は表示枠要素の種別を表す。
type DisplayType byte

const (
	DISPLAY_TYPE_BONE  DisplayType = 0
	DISPLAY_TYPE_MORPH DisplayType = 1
)

// SpecialFlag は特殊枠フラグを表す。
type SpecialFlag byte

const (
	SPECIAL_FLAG_OFF SpecialFlag = 0
	SPECIAL_FLAG_ON  SpecialFlag = 1
)

// Reference は表示枠要素を表す。
type Reference struct {
	DisplayType  DisplayType
	DisplayIndex int
}

// DisplaySlot は表示枠を表す。
type DisplaySlot struct {
	index       int
	name        string
	EnglishName string
	SpecialFlag SpecialFlag
	References  []Reference
}

// NewDisplaySlotByName は名前を指定して表示枠を生成する。
func NewDisplaySlotByName(name string) *DisplaySlot {
	return &DisplaySlot{index: -1, name: name, References: make([]Reference, 0)}
}

func (d *DisplaySlot) Index() int          { return d.index }
func (d *DisplaySlot) SetIndex(index int)  { d.index = index }
func (d *DisplaySlot) Name() string        { return d.name }
func (d *DisplaySlot) SetName(name string) { d.name = name }

// Copy は表示枠の深いコピーを返す。
func (d *DisplaySlot) Copy() (*DisplaySlot, error) {
	cp := *d
	cp.References = nil
	if err := deepcopy.Copy(&cp.References, d.References); err != nil {
		return nil, err
	}
	return &cp, nil
}

// DisplaySlotCollection は表示枠集合を表す。
type DisplaySlotCollection = collection.NamedCollection[*DisplaySlot]

// NewDisplaySlotCollection は表示枠集合を生成する。
func NewDisplaySlotCollection(capacity int) *DisplaySlotCollection {
	return collection.NewNamedCollection[*DisplaySlot]("表示枠", capacity)
}
