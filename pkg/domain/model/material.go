// 指示: miu200521358
package model

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/collection"
)

// DrawFlag は材質描画フラグを表す。
type DrawFlag byte

const (
	DRAW_FLAG_NONE                       DrawFlag = 0x00
	DRAW_FLAG_DOUBLE_SIDED_DRAWING       DrawFlag = 0x01
	DRAW_FLAG_GROUND_SHADOW              DrawFlag = 0x02
	DRAW_FLAG_DRAWING_ON_SELF_SHADOW_MAP DrawFlag = 0x04
	DRAW_FLAG_DRAWING_SELF_SHADOWS       DrawFlag = 0x08
	DRAW_FLAG_DRAWING_EDGE               DrawFlag = 0x10
)

// Material は材質を表す。VerticesCount は材質が覆う面頂点数。
type Material struct {
	index         int
	name          string
	EnglishName   string
	Diffuse       mmath.Vec4
	Specular      mmath.Vec3
	SpecularPower float64
	Ambient       mmath.Vec3
	DrawFlag      DrawFlag
	Edge          mmath.Vec4
	EdgeSize      float64
	TextureIndex  int
	VerticesCount int
}

// NewMaterialByName は名前を指定して材質を生成する。
func NewMaterialByName(name string) *Material {
	return &Material{index: -1, name: name, TextureIndex: -1}
}

func (m *Material) Index() int          { return m.index }
func (m *Material) SetIndex(index int)  { m.index = index }
func (m *Material) Name() string        { return m.name }
func (m *Material) SetName(name string) { m.name = name }

// MaterialCollection は材質集合を表す。
type MaterialCollection = collection.NamedCollection[*Material]

// NewMaterialCollection は材質集合を生成する。
func NewMaterialCollection(capacity int) *MaterialCollection {
	return collection.NewNamedCollection[*Material]("材質", capacity)
}

// Texture はテクスチャ参照を表す。名前はモデルからの相対パス。
type Texture struct {
	index int
	name  string
}

// NewTextureByName は名前を指定してテクスチャを生成する。
func NewTextureByName(name string) *Texture {
	return &Texture{index: -1, name: name}
}

func (t *Texture) Index() int          { return t.index }
func (t *Texture) SetIndex(index int)  { t.index = index }
func (t *Texture) Name() string        { return t.name }
func (t *Texture) SetName(name string) { t.name = name }

// TextureCollection はテクスチャ集合を表す。
type TextureCollection = collection.NamedCollection[*Texture]

// NewTextureCollection はテクスチャ集合を生成する。
func NewTextureCollection(capacity int) *TextureCollection {
	return collection.NewNamedCollection[*Texture]("テクスチャ", capacity)
}
