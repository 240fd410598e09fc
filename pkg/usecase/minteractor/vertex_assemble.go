// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/merrors"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
)

const vertexEdgeFactor = 1.0

// assembleVertices は変換元頂点をPMX頂点へ変換する。
// bodyVertexCount 未満の頂点は体メッシュとみなしてUVのVを反転する。
// 頭メッシュ側の反転有無はモデルにより異なるため、index閾値での判定は近似である。
func assembleVertices(
	avatar *source.SourceAvatar,
	mesh *source.SourceMesh,
	bodyVertexCount int,
	options ConvertOptions,
) (*model.VertexCollection, error) {
	hashIndexes := avatar.BuildHashIndex()
	scale := options.unitScale()
	vertices := model.NewVertexCollection(len(mesh.Vertices))

	for i, sourceVertex := range mesh.Vertices {
		vertex := model.NewVertex()
		vertex.Position = convertUnityVectorToPmx(sourceVertex.Position, scale)
		vertex.Normal = convertUnityVectorToPmx(sourceVertex.Normal, 1.0)
		vertex.Uv = resolveVertexUv(i, sourceVertex.Uv, bodyVertexCount)
		vertex.EdgeFactor = vertexEdgeFactor

		deformType, deform, err := buildVertexDeform(i, sourceVertex.Influences, hashIndexes)
		if err != nil {
			return nil, err
		}
		vertex.DeformType = deformType
		vertex.Deform = deform
		vertices.Append(vertex)
	}
	return vertices, nil
}

// resolveVertexUv は体/頭の閾値に応じてUVを補正する。
func resolveVertexUv(index int, uv mmath.Vec2, bodyVertexCount int) mmath.Vec2 {
	if index < bodyVertexCount {
		return mmath.NewVec2(uv.X, 1-uv.Y)
	}
	return uv
}

// classifyDeformType は有効ウェイト数から変形方式を判定する。
func classifyDeformType(vertexIndex int, count int) (model.DeformType, error) {
	switch count {
	case 1:
		return model.BDEF1, nil
	case 2:
		return model.BDEF2, nil
	case 3:
		return model.BDEF1, &merrors.UnsupportedInfluenceCountError{VertexIndex: vertexIndex, Count: count}
	case 4:
		return model.BDEF4, nil
	}
	return model.BDEF1, &merrors.InfluenceCountRangeError{VertexIndex: vertexIndex, Count: count}
}

// buildVertexDeform はウェイトのジョイントハッシュをボーンindexへ解決する。
func buildVertexDeform(
	vertexIndex int,
	influences []*source.Influence,
	hashIndexes map[uint32]int,
) (model.DeformType, model.Deform, error) {
	effective := make([]*source.Influence, 0, len(influences))
	for _, influence := range influences {
		if influence != nil {
			effective = append(effective, influence)
		}
	}
	deformType, err := classifyDeformType(vertexIndex, len(effective))
	if err != nil {
		return deformType, model.Deform{}, err
	}

	deform := model.Deform{
		Indexes: make([]int, len(effective)),
		Weights: make([]float64, len(effective)),
	}
	for j, influence := range effective {
		boneIndex, ok := hashIndexes[influence.JointHash]
		if !ok {
			return deformType, model.Deform{}, &merrors.JointHashNotFoundError{VertexIndex: vertexIndex, Hash: influence.JointHash}
		}
		deform.Indexes[j] = boneIndex
		deform.Weights[j] = influence.Weight
	}
	return deformType, deform, nil
}
