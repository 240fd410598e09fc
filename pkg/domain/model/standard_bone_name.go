// 指示: miu200521358
package model

import "strings"

// BoneDirection はボーンの左右を表す。
type BoneDirection string

const (
	BONE_DIRECTION_LEFT  BoneDirection = "左"
	BONE_DIRECTION_RIGHT BoneDirection = "右"
)

// EnglishSuffix は英名用の左右接尾辞を返す。
func (d BoneDirection) EnglishSuffix() string {
	if d == BONE_DIRECTION_RIGHT {
		return "R"
	}
	return "L"
}

// BONE_DIRECTION_PREFIX は左右差し替え位置を表す。
const BONE_DIRECTION_PREFIX = "{Direction}"

// StandardBoneName は準標準ボーン名を表す。
type StandardBoneName string

const (
	VIEW_CENTER   StandardBoneName = "操作中心"
	ROOT          StandardBoneName = "全ての親"
	CENTER        StandardBoneName = "センター"
	GROOVE        StandardBoneName = "グルーブ"
	WAIST         StandardBoneName = "腰"
	UPPER         StandardBoneName = "上半身"
	UPPER2        StandardBoneName = "上半身2"
	NECK          StandardBoneName = "首"
	HEAD          StandardBoneName = "頭"
	LOWER         StandardBoneName = "下半身"
	SHOULDER      StandardBoneName = "{Direction}肩"
	ARM           StandardBoneName = "{Direction}腕"
	ELBOW         StandardBoneName = "{Direction}ひじ"
	WRIST         StandardBoneName = "{Direction}手首"
	THUMB1        StandardBoneName = "{Direction}親指１"
	THUMB2        StandardBoneName = "{Direction}親指２"
	THUMB3        StandardBoneName = "{Direction}親指３"
	INDEX1        StandardBoneName = "{Direction}人指１"
	INDEX2        StandardBoneName = "{Direction}人指２"
	INDEX3        StandardBoneName = "{Direction}人指３"
	MIDDLE1       StandardBoneName = "{Direction}中指１"
	MIDDLE2       StandardBoneName = "{Direction}中指２"
	MIDDLE3       StandardBoneName = "{Direction}中指３"
	RING1         StandardBoneName = "{Direction}薬指１"
	RING2         StandardBoneName = "{Direction}薬指２"
	RING3         StandardBoneName = "{Direction}薬指３"
	PINKY1        StandardBoneName = "{Direction}小指１"
	PINKY2        StandardBoneName = "{Direction}小指２"
	PINKY3        StandardBoneName = "{Direction}小指３"
	HAND_DUMMY    StandardBoneName = "{Direction}ダミー"
	LEG           StandardBoneName = "{Direction}足"
	KNEE          StandardBoneName = "{Direction}ひざ"
	ANKLE         StandardBoneName = "{Direction}足首"
	TOE           StandardBoneName = "{Direction}つま先"
	LEG_IK_PARENT StandardBoneName = "{Direction}足IK親"
	LEG_IK        StandardBoneName = "{Direction}足ＩＫ"
	TOE_IK        StandardBoneName = "{Direction}つま先ＩＫ"
)

// String は名前を返す。左右付きの名前は差し替え前の表記を返す。
func (s StandardBoneName) String() string {
	return string(s)
}

// StringFromDirection は左右を差し替えた名前を返す。
func (s StandardBoneName) StringFromDirection(direction BoneDirection) string {
	return strings.ReplaceAll(string(s), BONE_DIRECTION_PREFIX, string(direction))
}

// Left は左側の名前を返す。
func (s StandardBoneName) Left() string {
	return s.StringFromDirection(BONE_DIRECTION_LEFT)
}

// Right は右側の名前を返す。
func (s StandardBoneName) Right() string {
	return s.StringFromDirection(BONE_DIRECTION_RIGHT)
}
