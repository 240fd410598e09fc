// 指示: miu200521358
package model

const (
	// ConvertWarningDisplaySlotElementNotFound は表示枠要素の名前解決失敗警告。
	ConvertWarningDisplaySlotElementNotFound = "ConvertWarningDisplaySlotElementNotFound"
	// ConvertWarningBoneNameHashFallback はボーン名辞書未登録によるハッシュ名採用警告。
	ConvertWarningBoneNameHashFallback = "ConvertWarningBoneNameHashFallback"
	// ConvertWarningBoneNameTruncated はボーン名のバイト長超過による切り詰め警告。
	ConvertWarningBoneNameTruncated = "ConvertWarningBoneNameTruncated"
	// ConvertWarningMorphNameFallback はモーフ名辞書未登録によるチャンネル名採用警告。
	ConvertWarningMorphNameFallback = "ConvertWarningMorphNameFallback"
)
