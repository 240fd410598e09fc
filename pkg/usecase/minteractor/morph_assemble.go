// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/merrors"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
)

const (
	morphStage        = "モーフ生成"
	morphChannelScope = "ブレンドシェイプチャンネル"
)

// compositeMorphDefinition は複数チャンネルを連結して作るモーフを表す。
type compositeMorphDefinition struct {
	Name     string
	Channels []string
}

// compositeMorphDefinitions は追加で生成する連結モーフ一覧。
var compositeMorphDefinitions = []compositeMorphDefinition{
	{
		Name:     morphChannelPrefix + "E_metoji",
		Channels: []string{morphChannelPrefix + "E_metoji_l", morphChannelPrefix + "E_metoji_r"},
	},
}

// assembleMorphs はチャンネル順に頂点モーフを生成し、続けて連結モーフを追加する。
// ブレンドシェイプ表が無い場合は空の集合を返す。
func assembleMorphs(mesh *source.SourceMesh, options ConvertOptions) (*model.MorphCollection, error) {
	shape := mesh.Shape
	if shape == nil {
		return model.NewMorphCollection(0), nil
	}
	if len(shape.Channels) != len(shape.Shapes) {
		return nil, merrors.NewStructuralError(
			morphStage,
			"チャンネル数とシェイプ数が一致すること",
			fmt.Errorf("channels=%d shapes=%d", len(shape.Channels), len(shape.Shapes)),
		)
	}

	scale := options.unitScale()
	morphs := model.NewMorphCollection(len(shape.Channels) + len(compositeMorphDefinitions))
	for i, channel := range shape.Channels {
		offsets, err := collectShapeOffsets(shape, shape.Shapes[i], scale)
		if err != nil {
			return nil, err
		}
		morph := newChannelMorph(channel.Name)
		morph.Offsets = offsets
		morphs.Append(morph)
	}

	for _, definition := range compositeMorphDefinitions {
		morph, err := buildCompositeMorph(shape, definition, scale)
		if err != nil {
			return nil, err
		}
		morphs.Append(morph)
	}
	logConvertDebug("モーフ生成完了: morphs=%d", morphs.Len())
	return morphs, nil
}

// newChannelMorph はチャンネル名から名前とパネルを設定した頂点モーフを生成する。
func newChannelMorph(channelName string) *model.Morph {
	rule, found := resolveMorphRename(channelName)
	if !found {
		logConvertDebug("[%s] モーフ名辞書未登録: channel=%s", model.ConvertWarningMorphNameFallback, channelName)
	}
	morph := model.NewMorphByName(rule.Name)
	morph.EnglishName = channelName
	morph.Panel = rule.Panel
	morph.MorphType = model.MORPH_TYPE_VERTEX
	return morph
}

// buildCompositeMorph は定義されたチャンネルのオフセットを順に連結したモーフを生成する。
func buildCompositeMorph(shape *source.BlendShapeData, definition compositeMorphDefinition, scale float64) (*model.Morph, error) {
	offsets := make([]model.VertexMorphOffset, 0)
	for _, channelName := range definition.Channels {
		channelIndex, ok := shape.ChannelIndex(channelName)
		if !ok {
			return nil, merrors.NewStructuralError(
				morphStage,
				"連結モーフの元チャンネルが存在すること",
				merrors.NewNameNotFoundError(morphChannelScope, channelName),
			)
		}
		channelOffsets, err := collectShapeOffsets(shape, shape.Shapes[channelIndex], scale)
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, channelOffsets...)
	}
	morph := newChannelMorph(definition.Name)
	morph.Offsets = offsets
	return morph, nil
}

// collectShapeOffsets はシェイプの差分頂点範囲をPMX座標のオフセットへ変換する。
func collectShapeOffsets(shape *source.BlendShapeData, blendShape source.BlendShape, scale float64) ([]model.VertexMorphOffset, error) {
	end := blendShape.FirstVertex + blendShape.VertexCount
	if blendShape.FirstVertex < 0 || blendShape.VertexCount < 0 || end > len(shape.Vertices) {
		return nil, merrors.NewStructuralError(
			morphStage,
			"シェイプの差分頂点範囲が有効であること",
			merrors.NewIndexOutOfRangeError(end, len(shape.Vertices)),
		)
	}
	offsets := make([]model.VertexMorphOffset, 0, blendShape.VertexCount)
	for _, delta := range shape.Vertices[blendShape.FirstVertex:end] {
		offsets = append(offsets, model.VertexMorphOffset{
			VertexIndex: delta.Index,
			Position:    convertUnityVectorToPmx(delta.Offset, scale),
		})
	}
	return offsets, nil
}
