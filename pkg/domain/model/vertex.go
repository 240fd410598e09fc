// 指示: miu200521358
package model

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/collection"
	"github.com/tiendc/go-deepcopy"
)

// DeformType はウェイト変形方式を表す。
type DeformType byte

const (
	BDEF1 DeformType = 0
	BDEF2 DeformType = 1
	BDEF4 DeformType = 2
)

// String は変形方式名を返す。
func (d DeformType) String() string {
	switch d {
	case BDEF1:
		return "BDEF1"
	case BDEF2:
		return "BDEF2"
	case BDEF4:
		return "BDEF4"
	}
	return "UNKNOWN"
}

// InfluenceCount は変形方式のウェイト数を返す。
func (d DeformType) InfluenceCount() int {
	switch d {
	case BDEF1:
		return 1
	case BDEF2:
		return 2
	case BDEF4:
		return 4
	}
	return 0
}

// Deform はボーンウェイトを表す。Indexes と Weights は同じ長さを持つ。
type Deform struct {
	Indexes []int
	Weights []float64
}

// IsValidAt は j 番目のウェイトが有効か判定する。
func (d Deform) IsValidAt(j int) bool {
	if j < 0 || j >= len(d.Indexes) || j >= len(d.Weights) {
		return false
	}
	return d.Indexes[j] >= 0 && d.Weights[j] > 0
}

// Vertex は頂点を表す。
type Vertex struct {
	index      int
	Position   mmath.Vec3
	Normal     mmath.Vec3
	Uv         mmath.Vec2
	DeformType DeformType
	Deform     Deform
	EdgeFactor float64
}

// NewVertex は頂点を生成する。
func NewVertex() *Vertex {
	return &Vertex{index: -1, EdgeFactor: 1.0}
}

// Index はindexを返す。
func (v *Vertex) Index() int { return v.index }

// SetIndex はindexを設定する。
func (v *Vertex) SetIndex(index int) { v.index = index }

// Copy は頂点の深いコピーを返す。
func (v *Vertex) Copy() (*Vertex, error) {
	cp := *v
	cp.Deform = Deform{}
	if err := deepcopy.Copy(&cp.Deform, v.Deform); err != nil {
		return nil, err
	}
	return &cp, nil
}

// VertexCollection は頂点集合を表す。
type VertexCollection = collection.IndexModelCollection[*Vertex]

// NewVertexCollection は頂点集合を生成する。
func NewVertexCollection(capacity int) *VertexCollection {
	return collection.NewIndexModelCollection[*Vertex](capacity)
}

// Face は三角面を表す。
type Face struct {
	index         int
	VertexIndexes [3]int
}

// NewFace は三角面を生成する。
func NewFace(v0 int, v1 int, v2 int) *Face {
	return &Face{index: -1, VertexIndexes: [3]int{v0, v1, v2}}
}

// Index はindexを返す。
func (f *Face) Index() int { return f.index }

// SetIndex はindexを設定する。
func (f *Face) SetIndex(index int) { f.index = index }

// FaceCollection は面集合を表す。
type FaceCollection = collection.IndexModelCollection[*Face]

// NewFaceCollection は面集合を生成する。
func NewFaceCollection(capacity int) *FaceCollection {
	return collection.NewIndexModelCollection[*Face](capacity)
}
