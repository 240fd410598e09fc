// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
)

const (
	materialNameFormat    = "Mat #%02d"
	materialTextureFormat = "%s%02d.png"
	materialEdgeSize      = 1.0
	materialDrawFlag      = model.DRAW_FLAG_GROUND_SHADOW | model.DRAW_FLAG_DRAWING_ON_SELF_SHADOW_MAP | model.DRAW_FLAG_DRAWING_SELF_SHADOWS
)

// assembleMaterials はサブメッシュ順に1材質ずつ生成し、テクスチャを登録する。
func assembleMaterials(mesh *source.SourceMesh, texturePrefix string, textures *model.TextureCollection) *model.MaterialCollection {
	materials := model.NewMaterialCollection(len(mesh.SubMeshes))
	for i, subMesh := range mesh.SubMeshes {
		material := model.NewMaterialByName(fmt.Sprintf(materialNameFormat, i))
		material.EnglishName = material.Name()
		material.VerticesCount = subMesh.IndexCount
		material.Ambient = mmath.NewVec3(1, 1, 1)
		material.Diffuse = mmath.NewVec4(1, 1, 1, 1)
		material.Specular = mmath.ZERO_VEC3
		material.Edge = mmath.NewVec4(0, 0, 0, 1)
		material.EdgeSize = materialEdgeSize
		material.DrawFlag = materialDrawFlag
		material.TextureIndex = registerTexture(textures, fmt.Sprintf(materialTextureFormat, texturePrefix, i))
		materials.Append(material)
	}
	return materials
}

// registerTexture はテクスチャ名を登録し、そのindexを返す。登録済みの場合は既存indexを返す。
func registerTexture(textures *model.TextureCollection, name string) int {
	if texture, err := textures.GetByName(name); err == nil {
		return texture.Index()
	}
	return textures.Append(model.NewTextureByName(name))
}

// assembleFaces は三角形index列を面へ変換する。端数のindexは無視する。
func assembleFaces(mesh *source.SourceMesh) *model.FaceCollection {
	faceCount := len(mesh.Indices) / 3
	faces := model.NewFaceCollection(faceCount)
	for i := 0; i < faceCount; i++ {
		faces.Append(model.NewFace(
			int(mesh.Indices[i*3]),
			int(mesh.Indices[i*3+1]),
			int(mesh.Indices[i*3+2]),
		))
	}
	return faces
}
