// 指示: miu200521358
// Package source は変換元リグ(アバターとスキンメッシュ)の受け渡し構造を定義する。
// 座標系は変換元ランタイム準拠(左手系、メートル、ローカル変換)。
package source

import (
	"strings"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
)

// Joint はアバターのジョイントを表す。Rotation と Translation は親ジョイント基準。
type Joint struct {
	Path        string
	Hash        uint32
	Rotation    mmath.Quaternion
	Translation mmath.Vec3
}

// ParentPath は階層パスから親パスを導出する。ルート("")は親を持たない。
func ParentPath(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	index := strings.LastIndex(path, "/")
	if index < 0 {
		return "", true
	}
	return path[:index], true
}

// LeafName は階層パスの末尾要素を返す。
func LeafName(path string) string {
	index := strings.LastIndex(path, "/")
	if index < 0 {
		return path
	}
	return path[index+1:]
}

// SourceAvatar はジョイント一覧を表す。Joints の順序が出力ボーン順序になる。
type SourceAvatar struct {
	Joints []Joint
}

// BuildHashIndex はジョイントハッシュからindexへの対応を構築する。
// 同一ハッシュが複数ある場合は先頭を採用する。
func (a *SourceAvatar) BuildHashIndex() map[uint32]int {
	out := make(map[uint32]int, len(a.Joints))
	for i, joint := range a.Joints {
		if _, exists := out[joint.Hash]; exists {
			continue
		}
		out[joint.Hash] = i
	}
	return out
}

// BuildParentIndexes はパスから各ジョイントの親indexを求める。親が無い場合は-1。
func (a *SourceAvatar) BuildParentIndexes() []int {
	pathIndexes := make(map[string]int, len(a.Joints))
	for i, joint := range a.Joints {
		if _, exists := pathIndexes[joint.Path]; !exists {
			pathIndexes[joint.Path] = i
		}
	}
	parents := make([]int, len(a.Joints))
	for i, joint := range a.Joints {
		parents[i] = -1
		parentPath, ok := ParentPath(joint.Path)
		if !ok {
			continue
		}
		if parentIndex, exists := pathIndexes[parentPath]; exists && parentIndex != i {
			parents[i] = parentIndex
		}
	}
	return parents
}

// Influence はジョイントハッシュとウェイトの組を表す。
type Influence struct {
	JointHash uint32
	Weight    float64
}

// Vertex はスキン頂点を表す。Influences の nil 要素は未使用スロット。
type Vertex struct {
	Position   mmath.Vec3
	Normal     mmath.Vec3
	Uv         mmath.Vec2
	Influences []*Influence
}

// SubMesh は三角形indexの連続範囲を表す。
type SubMesh struct {
	FirstIndex int
	IndexCount int
}

// BlendShapeChannel はブレンドシェイプのチャンネルを表す。
type BlendShapeChannel struct {
	Name string
}

// BlendShape はチャンネルが所有する差分頂点範囲を表す。
type BlendShape struct {
	FirstVertex int
	VertexCount int
}

// BlendShapeVertex は差分頂点を表す。
type BlendShapeVertex struct {
	Index  int
	Offset mmath.Vec3
}

// BlendShapeData はブレンドシェイプ表を表す。Channels[i] は Shapes[i] を所有する。
type BlendShapeData struct {
	Channels []BlendShapeChannel
	Shapes   []BlendShape
	Vertices []BlendShapeVertex
}

// ChannelIndex はチャンネル名のindexを返す。
func (d *BlendShapeData) ChannelIndex(name string) (int, bool) {
	for i, channel := range d.Channels {
		if channel.Name == name {
			return i, true
		}
	}
	return -1, false
}

// SourceMesh はスキンメッシュを表す。
type SourceMesh struct {
	Vertices  []Vertex
	Indices   []uint32
	SubMeshes []SubMesh
	Shape     *BlendShapeData
}

// SourceRig は変換入力一式を表す。BodyVertexCount は体メッシュ側の頂点数(UV補正の閾値)。
type SourceRig struct {
	Avatar          *SourceAvatar
	Mesh            *SourceMesh
	BodyVertexCount int
}
