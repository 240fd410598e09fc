// 指示: miu200521358
package model

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/collection"
	"github.com/tiendc/go-deepcopy"
)

// BoneFlag はPMXボーンフラグを表す。
type BoneFlag uint16

const (
	BONE_FLAG_NONE           BoneFlag = 0x0000
	BONE_FLAG_TAIL_IS_BONE   BoneFlag = 0x0001
	BONE_FLAG_CAN_ROTATE     BoneFlag = 0x0002
	BONE_FLAG_CAN_TRANSLATE  BoneFlag = 0x0004
	BONE_FLAG_IS_VISIBLE     BoneFlag = 0x0008
	BONE_FLAG_CAN_MANIPULATE BoneFlag = 0x0010
	BONE_FLAG_IS_IK          BoneFlag = 0x0020
)

// BoneTailKind は表示先の種別を表す。
type BoneTailKind int

const (
	// BONE_TAIL_KIND_OFFSET は表示先をオフセットで持つ。
	BONE_TAIL_KIND_OFFSET BoneTailKind = iota
	// BONE_TAIL_KIND_BONE は表示先をボーンindexで持つ。
	BONE_TAIL_KIND_BONE
)

// BoneTail はボーン表示先(ボーンindexまたはオフセットのどちらか一方)を表す。
type BoneTail struct {
	kind      BoneTailKind
	boneIndex int
	offset    mmath.Vec3
}

// NewBoneTailToBone はボーン指定の表示先を生成する。
func NewBoneTailToBone(boneIndex int) BoneTail {
	return BoneTail{kind: BONE_TAIL_KIND_BONE, boneIndex: boneIndex}
}

// NewBoneTailToOffset はオフセット指定の表示先を生成する。
func NewBoneTailToOffset(offset mmath.Vec3) BoneTail {
	return BoneTail{kind: BONE_TAIL_KIND_OFFSET, boneIndex: -1, offset: offset}
}

// Kind は種別を返す。
func (t BoneTail) Kind() BoneTailKind {
	return t.kind
}

// IsBone はボーン指定か判定する。
func (t BoneTail) IsBone() bool {
	return t.kind == BONE_TAIL_KIND_BONE
}

// BoneIndex はボーン指定時のindexを返す。
func (t BoneTail) BoneIndex() (int, bool) {
	if t.kind != BONE_TAIL_KIND_BONE {
		return -1, false
	}
	return t.boneIndex, true
}

// Offset はオフセット指定時のオフセットを返す。
func (t BoneTail) Offset() (mmath.Vec3, bool) {
	if t.kind != BONE_TAIL_KIND_OFFSET {
		return mmath.ZERO_VEC3, false
	}
	return t.offset, true
}

// IkLink はIKリンクを表す。角度制限はラジアン。
type IkLink struct {
	BoneIndex     int
	AngleLimit    bool
	MinAngleLimit mmath.Vec3
	MaxAngleLimit mmath.Vec3
}

// Ik はIK設定を表す。UnitRotation は1回あたりの制限角(ラジアン)。
type Ik struct {
	BoneIndex    int
	LoopCount    int
	UnitRotation float64
	Links        []IkLink
}

// Bone はボーンを表す。Position はワールド座標。
type Bone struct {
	index       int
	name        string
	EnglishName string
	ParentIndex int
	BoneFlag    BoneFlag
	Position    mmath.Vec3
	Rotation    mmath.Quaternion
	tail        BoneTail
	Ik          *Ik
}

// NewBoneByName は名前を指定してボーンを生成する。
func NewBoneByName(name string) *Bone {
	return &Bone{
		index:       -1,
		name:        name,
		ParentIndex: -1,
		Rotation:    mmath.NewQuaternionIdentity(),
		tail:        NewBoneTailToOffset(mmath.ZERO_VEC3),
	}
}

// Index はindexを返す。
func (b *Bone) Index() int { return b.index }

// SetIndex はindexを設定する。
func (b *Bone) SetIndex(index int) { b.index = index }

// Name は名前を返す。
func (b *Bone) Name() string { return b.name }

// SetName は名前を設定する。
func (b *Bone) SetName(name string) { b.name = name }

// Tail は表示先を返す。
func (b *Bone) Tail() BoneTail { return b.tail }

// SetTail は表示先を設定し、表示先フラグを同期する。
func (b *Bone) SetTail(tail BoneTail) {
	b.tail = tail
	if tail.IsBone() {
		b.BoneFlag |= BONE_FLAG_TAIL_IS_BONE
		return
	}
	b.BoneFlag &^= BONE_FLAG_TAIL_IS_BONE
}

func (b *Bone) IsVisible() bool    { return b.BoneFlag&BONE_FLAG_IS_VISIBLE != 0 }
func (b *Bone) CanRotate() bool    { return b.BoneFlag&BONE_FLAG_CAN_ROTATE != 0 }
func (b *Bone) CanTranslate() bool { return b.BoneFlag&BONE_FLAG_CAN_TRANSLATE != 0 }
func (b *Bone) IsIK() bool         { return b.BoneFlag&BONE_FLAG_IS_IK != 0 && b.Ik != nil }

// Copy はボーンの深いコピーを返す。
func (b *Bone) Copy() (*Bone, error) {
	cp := *b
	if b.Ik != nil {
		ik := &Ik{}
		if err := deepcopy.Copy(ik, b.Ik); err != nil {
			return nil, err
		}
		cp.Ik = ik
	}
	return &cp, nil
}

// BoneCollection はボーン集合を表す。
type BoneCollection = collection.NamedCollection[*Bone]

// NewBoneCollection はボーン集合を生成する。
func NewBoneCollection(capacity int) *BoneCollection {
	return collection.NewNamedCollection[*Bone]("ボーン", capacity)
}
