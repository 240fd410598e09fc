// 指示: miu200521358
package model

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/collection"
	"github.com/tiendc/go-deepcopy"
)

// MorphPanel はモーフの操作パネルを表す。
type MorphPanel byte

const (
	MORPH_PANEL_SYSTEM  MorphPanel = 0
	MORPH_PANEL_EYEBROW MorphPanel = 1
	MORPH_PANEL_EYE     MorphPanel = 2
	MORPH_PANEL_LIP     MorphPanel = 3
	MORPH_PANEL_OTHER   MorphPanel = 4
)

// MorphType はモーフ種別を表す。
type MorphType byte

const (
	MORPH_TYPE_GROUP  MorphType = 0
	MORPH_TYPE_VERTEX MorphType = 1
)

// VertexMorphOffset は頂点モーフの1頂点分のオフセットを表す。
type VertexMorphOffset struct {
	VertexIndex int
	Position    mmath.Vec3
}

// Morph はモーフを表す。
type Morph struct {
	index       int
	name        string
	EnglishName string
	Panel       MorphPanel
	MorphType   MorphType
	Offsets     []VertexMorphOffset
}

// NewMorphByName は名前を指定してモーフを生成する。
func NewMorphByName(name string) *Morph {
	return &Morph{index: -1, name: name, MorphType: MORPH_TYPE_VERTEX}
}

func (m *Morph) Index() int          { return m.index }
func (m *Morph) SetIndex(index int)  { m.index = index }
func (m *Morph) Name() string        { return m.name }
func (m *Morph) SetName(name string) { m.name = name }

// Copy はモーフの深いコピーを返す。
func (m *Morph) Copy() (*Morph, error) {
	cp := *m
	cp.Offsets = nil
	if err := deepcopy.Copy(&cp.Offsets, m.Offsets); err != nil {
		return nil, err
	}
	return &cp, nil
}

// MorphCollection はモーフ集合を表す。
type MorphCollection = collection.NamedCollection[*Morph]

// NewMorphCollection はモーフ集合を生成する。
func NewMorphCollection(capacity int) *MorphCollection {
	return collection.NewNamedCollection[*Morph]("モーフ", capacity)
}
