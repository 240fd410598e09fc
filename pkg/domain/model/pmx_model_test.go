// 指示: miu200521358
package model

import (
	"testing"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
)

func TestPmxModelCopyIsIndependent(t *testing.T) {
	src := NewPmxModel()
	bone := NewBoneByName("センター")
	bone.Position = mmath.NewVec3(1, 2, 3)
	bone.Ik = &Ik{BoneIndex: 0, LoopCount: 10, Links: []IkLink{{BoneIndex: 0}}}
	src.Bones.Append(bone)
	vertex := NewVertex()
	vertex.Deform = Deform{Indexes: []int{0}, Weights: []float64{1}}
	src.Vertices.Append(vertex)
	morph := NewMorphByName("あ")
	morph.Offsets = []VertexMorphOffset{{VertexIndex: 0, Position: mmath.NewVec3(0, 1, 0)}}
	src.Morphs.Append(morph)

	cp, err := src.Copy()
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	copiedBone, err := cp.Bones.GetByName("センター")
	if err != nil {
		t.Fatalf("copied bone should be found by name: %v", err)
	}
	copiedBone.Position = mmath.NewVec3(9, 9, 9)
	copiedBone.Ik.Links[0].BoneIndex = 5
	copiedVertex, _ := cp.Vertices.Get(0)
	copiedVertex.Deform.Indexes[0] = 7
	copiedMorph, _ := cp.Morphs.Get(0)
	copiedMorph.Offsets[0].VertexIndex = 3

	if !bone.Position.NearEquals(mmath.NewVec3(1, 2, 3), 0) {
		t.Fatalf("source bone position changed: %v", bone.Position)
	}
	if bone.Ik.Links[0].BoneIndex != 0 {
		t.Fatalf("source ik link changed: %d", bone.Ik.Links[0].BoneIndex)
	}
	if vertex.Deform.Indexes[0] != 0 {
		t.Fatalf("source deform changed: %d", vertex.Deform.Indexes[0])
	}
	if morph.Offsets[0].VertexIndex != 0 {
		t.Fatalf("source morph offset changed: %d", morph.Offsets[0].VertexIndex)
	}
}

func TestBoneSetTailSyncsFlag(t *testing.T) {
	bone := NewBoneByName("a")
	bone.SetTail(NewBoneTailToBone(3))
	if bone.BoneFlag&BONE_FLAG_TAIL_IS_BONE == 0 {
		t.Fatal("tail-is-bone flag should be set")
	}
	if index, ok := bone.Tail().BoneIndex(); !ok || index != 3 {
		t.Fatalf("tail bone index mismatch: got=%d ok=%v", index, ok)
	}
	if _, ok := bone.Tail().Offset(); ok {
		t.Fatal("bone tail should not expose an offset")
	}

	bone.SetTail(NewBoneTailToOffset(mmath.NewVec3(0, 1, 0)))
	if bone.BoneFlag&BONE_FLAG_TAIL_IS_BONE != 0 {
		t.Fatal("tail-is-bone flag should be cleared")
	}
	if _, ok := bone.Tail().BoneIndex(); ok {
		t.Fatal("offset tail should not expose a bone index")
	}
}

func TestStandardBoneNameDirection(t *testing.T) {
	if got := ANKLE.Left(); got != "左足首" {
		t.Fatalf("left name mismatch: got=%s", got)
	}
	if got := LEG_IK.Right(); got != "右足ＩＫ" {
		t.Fatalf("right name mismatch: got=%s", got)
	}
	if got := BONE_DIRECTION_RIGHT.EnglishSuffix(); got != "R" {
		t.Fatalf("english suffix mismatch: got=%s", got)
	}
}
