// 指示: miu200521358
package model

import "fmt"

// PmxModel は組み立て済みPMXモデルを表す。
type PmxModel struct {
	Name           string
	EnglishName    string
	Comment        string
	EnglishComment string
	Vertices       *VertexCollection
	Faces          *FaceCollection
	Textures       *TextureCollection
	Materials      *MaterialCollection
	Bones          *BoneCollection
	Morphs         *MorphCollection
	DisplaySlots   *DisplaySlotCollection
}

// NewPmxModel は空のPMXモデルを生成する。
func NewPmxModel() *PmxModel {
	return &PmxModel{
		Vertices:     NewVertexCollection(0),
		Faces:        NewFaceCollection(0),
		Textures:     NewTextureCollection(0),
		Materials:    NewMaterialCollection(0),
		Bones:        NewBoneCollection(0),
		Morphs:       NewMorphCollection(0),
		DisplaySlots: NewDisplaySlotCollection(0),
	}
}

// Copy はモデルの深いコピーを返す。書き出し側へ渡す値は変換処理と共有しない。
func (m *PmxModel) Copy() (*PmxModel, error) {
	cp := &PmxModel{
		Name:           m.Name,
		EnglishName:    m.EnglishName,
		Comment:        m.Comment,
		EnglishComment: m.EnglishComment,
		Vertices:       NewVertexCollection(m.Vertices.Len()),
		Faces:          NewFaceCollection(m.Faces.Len()),
		Textures:       NewTextureCollection(m.Textures.Len()),
		Materials:      NewMaterialCollection(m.Materials.Len()),
		Bones:          NewBoneCollection(m.Bones.Len()),
		Morphs:         NewMorphCollection(m.Morphs.Len()),
		DisplaySlots:   NewDisplaySlotCollection(m.DisplaySlots.Len()),
	}
	for _, vertex := range m.Vertices.Values() {
		copied, err := vertex.Copy()
		if err != nil {
			return nil, fmt.Errorf("頂点のコピーに失敗しました: index=%d: %w", vertex.Index(), err)
		}
		cp.Vertices.Append(copied)
	}
	for _, face := range m.Faces.Values() {
		copied := *face
		cp.Faces.Append(&copied)
	}
	for _, texture := range m.Textures.Values() {
		copied := *texture
		cp.Textures.Append(&copied)
	}
	for _, material := range m.Materials.Values() {
		copied := *material
		cp.Materials.Append(&copied)
	}
	for _, bone := range m.Bones.Values() {
		copied, err := bone.Copy()
		if err != nil {
			return nil, fmt.Errorf("ボーンのコピーに失敗しました: index=%d: %w", bone.Index(), err)
		}
		cp.Bones.Append(copied)
	}
	for _, morph := range m.Morphs.Values() {
		copied, err := morph.Copy()
		if err != nil {
			return nil, fmt.Errorf("モーフのコピーに失敗しました: index=%d: %w", morph.Index(), err)
		}
		cp.Morphs.Append(copied)
	}
	for _, slot := range m.DisplaySlots.Values() {
		copied, err := slot.Copy()
		if err != nil {
			return nil, fmt.Errorf("表示枠のコピーに失敗しました: index=%d: %w", slot.Index(), err)
		}
		cp.DisplaySlots.Append(copied)
	}
	return cp, nil
}
