// 指示: miu200521358
package pmxjson

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/io_common"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/shared/base/logging"
)

const saveFileMode = 0o644

// PmxJsonRepository は組み立て済みモデルをJSONとして保存する。
// PMXバイナリへの符号化は外部のPMX書き出し処理が担う。
type PmxJsonRepository struct{}

// NewPmxJsonRepository はPmxJsonRepositoryを生成する。
func NewPmxJsonRepository() *PmxJsonRepository {
	return &PmxJsonRepository{}
}

// CanSave は拡張子に応じて保存可否を判定する。
func (r *PmxJsonRepository) CanSave(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Save はモデルをインデント付きJSONで保存する。
func (r *PmxJsonRepository) Save(path string, modelData *model.PmxModel) error {
	if !r.CanSave(path) {
		return io_common.NewIoExtInvalid(path, nil)
	}
	if modelData == nil {
		return io_common.NewIoSaveFailed("保存対象モデルが未設定です", nil)
	}
	b, err := json.MarshalIndent(buildModelDocument(modelData), "", "  ")
	if err != nil {
		return io_common.NewIoSaveFailed("モデルJSONの生成に失敗しました", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return io_common.NewIoSaveFailed("保存先フォルダの作成に失敗しました: %s", err, dir)
		}
	}
	if err := os.WriteFile(path, b, saveFileMode); err != nil {
		return io_common.NewIoSaveFailed("モデルJSONの保存に失敗しました: %s", err, path)
	}
	logSaveInfo("モデル保存完了: file=%s bytes=%d", filepath.Base(path), len(b))
	return nil
}

// logSaveInfo は保存処理のINFOログを出力する。
func logSaveInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// ModelDocument はモデルJSONのトップレベル要素を表す。
type ModelDocument struct {
	Name           string                `json:"name"`
	EnglishName    string                `json:"englishName"`
	Comment        string                `json:"comment"`
	EnglishComment string                `json:"englishComment"`
	Vertices       []VertexDocument      `json:"vertices"`
	Faces          [][3]int              `json:"faces"`
	Textures       []string              `json:"textures"`
	Materials      []MaterialDocument    `json:"materials"`
	Bones          []BoneDocument        `json:"bones"`
	Morphs         []MorphDocument       `json:"morphs"`
	DisplaySlots   []DisplaySlotDocument `json:"displaySlots"`
}

type VertexDocument struct {
	Position   [3]float64 `json:"position"`
	Normal     [3]float64 `json:"normal"`
	Uv         [2]float64 `json:"uv"`
	DeformType string     `json:"deformType"`
	Bones      []int      `json:"bones"`
	Weights    []float64  `json:"weights"`
	EdgeFactor float64    `json:"edgeFactor"`
}

type MaterialDocument struct {
	Name          string     `json:"name"`
	EnglishName   string     `json:"englishName"`
	Diffuse       [4]float64 `json:"diffuse"`
	Specular      [3]float64 `json:"specular"`
	SpecularPower float64    `json:"specularPower"`
	Ambient       [3]float64 `json:"ambient"`
	DrawFlag      int        `json:"drawFlag"`
	Edge          [4]float64 `json:"edge"`
	EdgeSize      float64    `json:"edgeSize"`
	TextureIndex  int        `json:"textureIndex"`
	VerticesCount int        `json:"verticesCount"`
}

// BoneDocument はボーンを表す。TailBone と TailOffset はどちらか一方のみ出力する。
type BoneDocument struct {
	Name        string      `json:"name"`
	EnglishName string      `json:"englishName"`
	Parent      int         `json:"parent"`
	Flag        int         `json:"flag"`
	Position    [3]float64  `json:"position"`
	Rotation    [4]float64  `json:"rotation"`
	TailBone    *int        `json:"tailBone,omitempty"`
	TailOffset  *[3]float64 `json:"tailOffset,omitempty"`
	Ik          *IkDocument `json:"ik,omitempty"`
}

type IkDocument struct {
	Target       int              `json:"target"`
	LoopCount    int              `json:"loopCount"`
	UnitRotation float64          `json:"unitRotation"`
	Links        []IkLinkDocument `json:"links"`
}

type IkLinkDocument struct {
	Bone       int         `json:"bone"`
	AngleLimit bool        `json:"angleLimit"`
	Min        *[3]float64 `json:"min,omitempty"`
	Max        *[3]float64 `json:"max,omitempty"`
}

type MorphDocument struct {
	Name        string                `json:"name"`
	EnglishName string                `json:"englishName"`
	Panel       int                   `json:"panel"`
	Type        int                   `json:"type"`
	Offsets     []MorphOffsetDocument `json:"offsets"`
}

type MorphOffsetDocument struct {
	Vertex   int        `json:"vertex"`
	Position [3]float64 `json:"position"`
}

type DisplaySlotDocument struct {
	Name        string              `json:"name"`
	EnglishName string              `json:"englishName"`
	Special     bool                `json:"special"`
	References  []ReferenceDocument `json:"references"`
}

type ReferenceDocument struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// buildModelDocument はモデルを出力用の文書へ変換する。
func buildModelDocument(modelData *model.PmxModel) *ModelDocument {
	doc := &ModelDocument{
		Name:           modelData.Name,
		EnglishName:    modelData.EnglishName,
		Comment:        modelData.Comment,
		EnglishComment: modelData.EnglishComment,
		Vertices:       make([]VertexDocument, 0, modelData.Vertices.Len()),
		Faces:          make([][3]int, 0, modelData.Faces.Len()),
		Textures:       make([]string, 0, modelData.Textures.Len()),
		Materials:      make([]MaterialDocument, 0, modelData.Materials.Len()),
		Bones:          make([]BoneDocument, 0, modelData.Bones.Len()),
		Morphs:         make([]MorphDocument, 0, modelData.Morphs.Len()),
		DisplaySlots:   make([]DisplaySlotDocument, 0, modelData.DisplaySlots.Len()),
	}
	for _, vertex := range modelData.Vertices.Values() {
		doc.Vertices = append(doc.Vertices, VertexDocument{
			Position:   vec3Array(vertex.Position),
			Normal:     vec3Array(vertex.Normal),
			Uv:         [2]float64{vertex.Uv.X, vertex.Uv.Y},
			DeformType: vertex.DeformType.String(),
			Bones:      append([]int(nil), vertex.Deform.Indexes...),
			Weights:    append([]float64(nil), vertex.Deform.Weights...),
			EdgeFactor: vertex.EdgeFactor,
		})
	}
	for _, face := range modelData.Faces.Values() {
		doc.Faces = append(doc.Faces, face.VertexIndexes)
	}
	for _, texture := range modelData.Textures.Values() {
		doc.Textures = append(doc.Textures, texture.Name())
	}
	for _, material := range modelData.Materials.Values() {
		doc.Materials = append(doc.Materials, MaterialDocument{
			Name:          material.Name(),
			EnglishName:   material.EnglishName,
			Diffuse:       vec4Array(material.Diffuse),
			Specular:      vec3Array(material.Specular),
			SpecularPower: material.SpecularPower,
			Ambient:       vec3Array(material.Ambient),
			DrawFlag:      int(material.DrawFlag),
			Edge:          vec4Array(material.Edge),
			EdgeSize:      material.EdgeSize,
			TextureIndex:  material.TextureIndex,
			VerticesCount: material.VerticesCount,
		})
	}
	for _, bone := range modelData.Bones.Values() {
		doc.Bones = append(doc.Bones, buildBoneDocument(bone))
	}
	for _, morph := range modelData.Morphs.Values() {
		morphDoc := MorphDocument{
			Name:        morph.Name(),
			EnglishName: morph.EnglishName,
			Panel:       int(morph.Panel),
			Type:        int(morph.MorphType),
			Offsets:     make([]MorphOffsetDocument, 0, len(morph.Offsets)),
		}
		for _, offset := range morph.Offsets {
			morphDoc.Offsets = append(morphDoc.Offsets, MorphOffsetDocument{
				Vertex:   offset.VertexIndex,
				Position: vec3Array(offset.Position),
			})
		}
		doc.Morphs = append(doc.Morphs, morphDoc)
	}
	for _, slot := range modelData.DisplaySlots.Values() {
		slotDoc := DisplaySlotDocument{
			Name:        slot.Name(),
			EnglishName: slot.EnglishName,
			Special:     slot.SpecialFlag == model.SPECIAL_FLAG_ON,
			References:  make([]ReferenceDocument, 0, len(slot.References)),
		}
		for _, reference := range slot.References {
			referenceType := "bone"
			if reference.DisplayType == model.DISPLAY_TYPE_MORPH {
				referenceType = "morph"
			}
			slotDoc.References = append(slotDoc.References, ReferenceDocument{Type: referenceType, Index: reference.DisplayIndex})
		}
		doc.DisplaySlots = append(doc.DisplaySlots, slotDoc)
	}
	return doc
}

// buildBoneDocument はボーンを出力用の文書へ変換する。
func buildBoneDocument(bone *model.Bone) BoneDocument {
	boneDoc := BoneDocument{
		Name:        bone.Name(),
		EnglishName: bone.EnglishName,
		Parent:      bone.ParentIndex,
		Flag:        int(bone.BoneFlag),
		Position:    vec3Array(bone.Position),
		Rotation: [4]float64{
			bone.Rotation.V[0],
			bone.Rotation.V[1],
			bone.Rotation.V[2],
			bone.Rotation.W,
		},
	}
	if tailIndex, ok := bone.Tail().BoneIndex(); ok {
		boneDoc.TailBone = &tailIndex
	} else if offset, ok := bone.Tail().Offset(); ok {
		tailOffset := vec3Array(offset)
		boneDoc.TailOffset = &tailOffset
	}
	if bone.Ik != nil {
		ikDoc := &IkDocument{
			Target:       bone.Ik.BoneIndex,
			LoopCount:    bone.Ik.LoopCount,
			UnitRotation: bone.Ik.UnitRotation,
			Links:        make([]IkLinkDocument, 0, len(bone.Ik.Links)),
		}
		for _, link := range bone.Ik.Links {
			linkDoc := IkLinkDocument{Bone: link.BoneIndex, AngleLimit: link.AngleLimit}
			if link.AngleLimit {
				minLimit := vec3Array(link.MinAngleLimit)
				maxLimit := vec3Array(link.MaxAngleLimit)
				linkDoc.Min = &minLimit
				linkDoc.Max = &maxLimit
			}
			ikDoc.Links = append(ikDoc.Links, linkDoc)
		}
		boneDoc.Ik = ikDoc
	}
	return boneDoc
}

func vec3Array(v mmath.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func vec4Array(v mmath.Vec4) [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}
