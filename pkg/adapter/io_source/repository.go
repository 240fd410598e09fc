// 指示: miu200521358
package io_source

import (
	"encoding/json"
	"hash/crc32"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/io_common"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
	"github.com/miu200521358/mu_mltd2pmx/pkg/shared/base/logging"
)

// JsonSourceRepository はJSON形式の変換元リグを読み込む。
type JsonSourceRepository struct{}

// NewJsonSourceRepository はJsonSourceRepositoryを生成する。
func NewJsonSourceRepository() *JsonSourceRepository {
	return &JsonSourceRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *JsonSourceRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Load は変換元リグを読み込む。
func (r *JsonSourceRepository) Load(path string) (*source.SourceRig, error) {
	if !r.CanLoad(path) {
		return nil, io_common.NewIoExtInvalid(path, nil)
	}
	loadTargetName := filepath.Base(path)
	logSourceInfo("リグ読込開始: file=%s", loadTargetName)

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, io_common.NewIoFileNotFound(path, err)
		}
		return nil, io_common.NewIoParseFailed("リグファイルの読み取りに失敗しました", err)
	}

	doc := rigDocument{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, io_common.NewIoParseFailed("リグJSONの解析に失敗しました", err)
	}
	rig, err := buildSourceRig(&doc)
	if err != nil {
		return nil, err
	}
	logSourceInfo("リグ読込完了: file=%s joints=%d vertices=%d", loadTargetName, len(rig.Avatar.Joints), len(rig.Mesh.Vertices))
	return rig, nil
}

// JointHash はジョイントパスの既定ハッシュ(CRC32)を返す。
func JointHash(path string) uint32 {
	return crc32.ChecksumIEEE([]byte(path))
}

// logSourceInfo はリグ読込のINFOログを出力する。
func logSourceInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// rigDocument はリグJSONのトップレベル要素を表す。
type rigDocument struct {
	Avatar          *avatarDocument `json:"avatar"`
	Mesh            *meshDocument   `json:"mesh"`
	BodyVertexCount int             `json:"bodyVertexCount"`
}

type avatarDocument struct {
	Joints []jointDocument `json:"joints"`
}

type jointDocument struct {
	Path        string    `json:"path"`
	Hash        *uint32   `json:"hash,omitempty"`
	Rotation    []float64 `json:"rotation,omitempty"`
	Translation []float64 `json:"translation,omitempty"`
}

type meshDocument struct {
	Vertices  []vertexDocument    `json:"vertices"`
	Indices   []uint32            `json:"indices"`
	SubMeshes []subMeshDocument   `json:"subMeshes"`
	Shape     *blendShapeDocument `json:"shape,omitempty"`
}

type vertexDocument struct {
	Position   []float64            `json:"position"`
	Normal     []float64            `json:"normal,omitempty"`
	Uv         []float64            `json:"uv,omitempty"`
	Influences []*influenceDocument `json:"influences"`
}

// influenceDocument はウェイトを表す。jointHash が無い場合は jointPath から算出する。
type influenceDocument struct {
	JointHash *uint32 `json:"jointHash,omitempty"`
	JointPath *string `json:"jointPath,omitempty"`
	Weight    float64 `json:"weight"`
}

type subMeshDocument struct {
	FirstIndex int `json:"firstIndex"`
	IndexCount int `json:"indexCount"`
}

type blendShapeDocument struct {
	Channels []blendShapeChannelDocument `json:"channels"`
	Shapes   []blendShapeRangeDocument   `json:"shapes"`
	Vertices []blendShapeVertexDocument  `json:"vertices"`
}

type blendShapeChannelDocument struct {
	Name string `json:"name"`
}

type blendShapeRangeDocument struct {
	FirstVertex int `json:"firstVertex"`
	VertexCount int `json:"vertexCount"`
}

type blendShapeVertexDocument struct {
	Index  int       `json:"index"`
	Offset []float64 `json:"offset"`
}

// buildSourceRig はJSON文書から変換元リグを構築する。
func buildSourceRig(doc *rigDocument) (*source.SourceRig, error) {
	if doc.Avatar == nil {
		return nil, io_common.NewIoParseFailed("avatar が定義されていません", nil)
	}
	if doc.Mesh == nil {
		return nil, io_common.NewIoParseFailed("mesh が定義されていません", nil)
	}
	if doc.BodyVertexCount < 0 {
		return nil, io_common.NewIoParseFailed("bodyVertexCount が負数です: %d", nil, doc.BodyVertexCount)
	}
	avatar, err := buildSourceAvatar(doc.Avatar)
	if err != nil {
		return nil, err
	}
	mesh, err := buildSourceMesh(doc.Mesh)
	if err != nil {
		return nil, err
	}
	return &source.SourceRig{Avatar: avatar, Mesh: mesh, BodyVertexCount: doc.BodyVertexCount}, nil
}

// buildSourceAvatar はジョイント一覧を構築する。
func buildSourceAvatar(doc *avatarDocument) (*source.SourceAvatar, error) {
	avatar := &source.SourceAvatar{Joints: make([]source.Joint, 0, len(doc.Joints))}
	for i, jointDoc := range doc.Joints {
		rotation, err := parseQuaternion(jointDoc.Rotation, "joints.rotation")
		if err != nil {
			return nil, io_common.NewIoParseFailed("ジョイントの解析に失敗しました: index=%d", err, i)
		}
		translation, err := parseVec3(jointDoc.Translation, mmath.ZERO_VEC3, "joints.translation")
		if err != nil {
			return nil, io_common.NewIoParseFailed("ジョイントの解析に失敗しました: index=%d", err, i)
		}
		hash := JointHash(jointDoc.Path)
		if jointDoc.Hash != nil {
			hash = *jointDoc.Hash
		}
		avatar.Joints = append(avatar.Joints, source.Joint{
			Path:        jointDoc.Path,
			Hash:        hash,
			Rotation:    rotation,
			Translation: translation,
		})
	}
	return avatar, nil
}

// buildSourceMesh はメッシュを構築する。
func buildSourceMesh(doc *meshDocument) (*source.SourceMesh, error) {
	mesh := &source.SourceMesh{
		Vertices:  make([]source.Vertex, 0, len(doc.Vertices)),
		Indices:   doc.Indices,
		SubMeshes: make([]source.SubMesh, 0, len(doc.SubMeshes)),
	}
	for i, vertexDoc := range doc.Vertices {
		vertex, err := buildSourceVertex(vertexDoc)
		if err != nil {
			return nil, io_common.NewIoParseFailed("頂点の解析に失敗しました: index=%d", err, i)
		}
		mesh.Vertices = append(mesh.Vertices, vertex)
	}
	for i, subMeshDoc := range doc.SubMeshes {
		if subMeshDoc.FirstIndex < 0 || subMeshDoc.IndexCount < 0 || subMeshDoc.FirstIndex+subMeshDoc.IndexCount > len(doc.Indices) {
			return nil, io_common.NewIoParseFailed("サブメッシュのindex範囲が不正です: index=%d", nil, i)
		}
		mesh.SubMeshes = append(mesh.SubMeshes, source.SubMesh{
			FirstIndex: subMeshDoc.FirstIndex,
			IndexCount: subMeshDoc.IndexCount,
		})
	}
	if doc.Shape != nil {
		shape, err := buildBlendShapeData(doc.Shape)
		if err != nil {
			return nil, err
		}
		mesh.Shape = shape
	}
	return mesh, nil
}

// buildSourceVertex は頂点を構築する。null のウェイトはそのまま保持する。
func buildSourceVertex(doc vertexDocument) (source.Vertex, error) {
	position, err := parseVec3(doc.Position, mmath.ZERO_VEC3, "vertices.position")
	if err != nil {
		return source.Vertex{}, err
	}
	normal, err := parseVec3(doc.Normal, mmath.ZERO_VEC3, "vertices.normal")
	if err != nil {
		return source.Vertex{}, err
	}
	uv, err := parseVec2(doc.Uv, "vertices.uv")
	if err != nil {
		return source.Vertex{}, err
	}
	influences := make([]*source.Influence, 0, len(doc.Influences))
	for _, influenceDoc := range doc.Influences {
		if influenceDoc == nil {
			influences = append(influences, nil)
			continue
		}
		var hash uint32
		switch {
		case influenceDoc.JointHash != nil:
			hash = *influenceDoc.JointHash
		case influenceDoc.JointPath != nil:
			hash = JointHash(*influenceDoc.JointPath)
		default:
			return source.Vertex{}, io_common.NewIoParseFailed("ウェイトに jointHash と jointPath のどちらも指定されていません", nil)
		}
		influences = append(influences, &source.Influence{JointHash: hash, Weight: influenceDoc.Weight})
	}
	return source.Vertex{Position: position, Normal: normal, Uv: uv, Influences: influences}, nil
}

// buildBlendShapeData はブレンドシェイプ表を構築する。
func buildBlendShapeData(doc *blendShapeDocument) (*source.BlendShapeData, error) {
	shape := &source.BlendShapeData{
		Channels: make([]source.BlendShapeChannel, 0, len(doc.Channels)),
		Shapes:   make([]source.BlendShape, 0, len(doc.Shapes)),
		Vertices: make([]source.BlendShapeVertex, 0, len(doc.Vertices)),
	}
	for _, channelDoc := range doc.Channels {
		shape.Channels = append(shape.Channels, source.BlendShapeChannel{Name: channelDoc.Name})
	}
	for _, rangeDoc := range doc.Shapes {
		shape.Shapes = append(shape.Shapes, source.BlendShape{
			FirstVertex: rangeDoc.FirstVertex,
			VertexCount: rangeDoc.VertexCount,
		})
	}
	for i, vertexDoc := range doc.Vertices {
		offset, err := parseVec3(vertexDoc.Offset, mmath.ZERO_VEC3, "shape.vertices.offset")
		if err != nil {
			return nil, io_common.NewIoParseFailed("ブレンドシェイプ頂点の解析に失敗しました: index=%d", err, i)
		}
		shape.Vertices = append(shape.Vertices, source.BlendShapeVertex{Index: vertexDoc.Index, Offset: offset})
	}
	return shape, nil
}

// parseVec2 はスライスをVec2へ変換する。
func parseVec2(values []float64, label string) (mmath.Vec2, error) {
	if len(values) == 0 {
		return mmath.Vec2{}, nil
	}
	if len(values) != 2 {
		return mmath.Vec2{}, io_common.NewIoParseFailed("%s の要素数が不正です: %d", nil, label, len(values))
	}
	return mmath.NewVec2(values[0], values[1]), nil
}

// parseVec3 はスライスをVec3へ変換する。
func parseVec3(values []float64, defaultValue mmath.Vec3, label string) (mmath.Vec3, error) {
	if len(values) == 0 {
		return defaultValue, nil
	}
	if len(values) != 3 {
		return mmath.ZERO_VEC3, io_common.NewIoParseFailed("%s の要素数が不正です: %d", nil, label, len(values))
	}
	return mmath.NewVec3(values[0], values[1], values[2]), nil
}

// parseQuaternion はスライスをQuaternionへ変換する。(x, y, z, w) の順で受け取る。
func parseQuaternion(values []float64, label string) (mmath.Quaternion, error) {
	if len(values) == 0 {
		return mmath.NewQuaternionIdentity(), nil
	}
	if len(values) != 4 {
		return mmath.NewQuaternionIdentity(), io_common.NewIoParseFailed("%s の要素数が不正です: %d", nil, label, len(values))
	}
	return mmath.NewQuaternion(values[0], values[1], values[2], values[3]).Normalized(), nil
}
