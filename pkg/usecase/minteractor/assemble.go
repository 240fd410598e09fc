// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
)

const (
	modelComment        = "製作：mu_mltd2pmx"
	modelEnglishComment = "Generated by mu_mltd2pmx"
)

// AssembleModel は変換元リグからPMXモデルを組み立てる。
// 頂点とボーンの構築後、Aスタンス補正、全ての親/センター挿入、IK追加の順に加工し、
// 最後に材質、モーフ、表示枠を生成する。表示枠以外の失敗は変換全体の失敗とする。
func AssembleModel(request AssembleRequest) (*ModelData, error) {
	if request.Rig == nil || request.Rig.Avatar == nil || request.Rig.Mesh == nil {
		return nil, fmt.Errorf("変換元リグが未設定です")
	}
	options := request.Options
	if err := options.Validate(); err != nil {
		return nil, err
	}
	reporter := request.ProgressReporter
	avatar := request.Rig.Avatar
	mesh := request.Rig.Mesh

	modelData := model.NewPmxModel()
	modelData.Name = options.ModelName
	modelData.EnglishName = options.ModelEnglishName
	modelData.Comment = modelComment
	modelData.EnglishComment = modelEnglishComment

	vertices, err := assembleVertices(avatar, mesh, request.Rig.BodyVertexCount, options)
	if err != nil {
		return nil, fmt.Errorf("頂点変換に失敗しました: %w", err)
	}
	modelData.Vertices = vertices
	reportConvertProgress(reporter, ConvertProgressEvent{
		Type:  ConvertProgressEventTypeVerticesAssembled,
		Count: vertices.Len(),
	})

	bones, err := buildSkeleton(avatar, options)
	if err != nil {
		return nil, fmt.Errorf("ボーン構築に失敗しました: %w", err)
	}
	modelData.Bones = bones
	reportConvertProgress(reporter, ConvertProgressEvent{
		Type:  ConvertProgressEventTypeSkeletonBuilt,
		Count: bones.Len(),
	})

	if options.ApplyPoseRebase {
		if err := applyAstanceRebase(modelData.Bones, modelData.Vertices); err != nil {
			return nil, fmt.Errorf("Aスタンス補正に失敗しました: %w", err)
		}
		reportConvertProgress(reporter, ConvertProgressEvent{Type: ConvertProgressEventTypeAstanceCompleted})
	}
	if options.InsertStabilizerBones {
		if err := insertStabilizerBones(modelData); err != nil {
			return nil, fmt.Errorf("全ての親/センター挿入に失敗しました: %w", err)
		}
		reportConvertProgress(reporter, ConvertProgressEvent{
			Type:  ConvertProgressEventTypeStabilizerInserted,
			Count: modelData.Bones.Len(),
		})
	}
	if options.AppendIkBones {
		if err := appendIkBones(modelData); err != nil {
			return nil, fmt.Errorf("IKボーン追加に失敗しました: %w", err)
		}
		reportConvertProgress(reporter, ConvertProgressEvent{
			Type:  ConvertProgressEventTypeIkAppended,
			Count: modelData.Bones.Len(),
		})
	}

	modelData.Faces = assembleFaces(mesh)
	modelData.Materials = assembleMaterials(mesh, options.TexturePrefix, modelData.Textures)
	reportConvertProgress(reporter, ConvertProgressEvent{
		Type:  ConvertProgressEventTypeMaterialsAssembled,
		Count: modelData.Materials.Len(),
	})

	morphs, err := assembleMorphs(mesh, options)
	if err != nil {
		return nil, fmt.Errorf("モーフ生成に失敗しました: %w", err)
	}
	modelData.Morphs = morphs
	reportConvertProgress(reporter, ConvertProgressEvent{
		Type:  ConvertProgressEventTypeMorphsAssembled,
		Count: morphs.Len(),
	})

	modelData.DisplaySlots = assembleDisplaySlots(modelData.Bones, modelData.Morphs)
	reportConvertProgress(reporter, ConvertProgressEvent{
		Type:  ConvertProgressEventTypeDisplaySlotsAssembled,
		Count: modelData.DisplaySlots.Len(),
	})

	logConvertInfo(
		"モデル組み立て完了: vertices=%d faces=%d bones=%d materials=%d morphs=%d",
		modelData.Vertices.Len(),
		modelData.Faces.Len(),
		modelData.Bones.Len(),
		modelData.Materials.Len(),
		modelData.Morphs.Len(),
	)
	return modelData, nil
}
