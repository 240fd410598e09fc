// 指示: miu200521358
package minteractor

import "fmt"

// ScaleUnityToMmd はメートルからMMD単位への倍率。
const ScaleUnityToMmd = 12.5

// SkeletonFormat は出力ボーン名の命名方式を表す。
type SkeletonFormat string

const (
	// SkeletonFormatMmd はMMD準標準名で命名する。
	SkeletonFormatMmd SkeletonFormat = "mmd"
	// SkeletonFormatMltd は変換元ジョイント名で命名する。
	SkeletonFormatMltd SkeletonFormat = "mltd"
)

// ConvertOptions は変換処理の切り替えを表す。各項目は対応する工程だけを有効/無効にする。
// ただしAスタンス補正とIKボーン追加はMMD準標準名のボーンを名前で探すため、
// TranslateBoneNames が false または SkeletonFormat が mltd の場合は両方を無効にする必要がある。
// この組み合わせは Validate で検出する。
type ConvertOptions struct {
	ApplyUnitScale        bool
	TranslateBoneNames    bool
	AppendIkBones         bool
	InsertStabilizerBones bool
	ApplyPoseRebase       bool
	SkeletonFormat        SkeletonFormat
	TexturePrefix         string
	ModelName             string
	ModelEnglishName      string
}

// DefaultConvertOptions は既定の変換設定を返す。
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		ApplyUnitScale:        true,
		TranslateBoneNames:    true,
		AppendIkBones:         true,
		InsertStabilizerBones: true,
		ApplyPoseRebase:       true,
		SkeletonFormat:        SkeletonFormatMmd,
		TexturePrefix:         "tex\\",
		ModelName:             "ミリシタ モデル00",
		ModelEnglishName:      "MODEL_00",
	}
}

// Validate は設定値を検証する。
func (o ConvertOptions) Validate() error {
	switch o.SkeletonFormat {
	case SkeletonFormatMmd, SkeletonFormatMltd:
	default:
		return fmt.Errorf("未対応の命名方式です: %s", o.SkeletonFormat)
	}
	if !o.usesStandardBoneNames() {
		if o.ApplyPoseRebase {
			return fmt.Errorf("Aスタンス補正はMMD準標準名での変換時のみ有効です")
		}
		if o.AppendIkBones {
			return fmt.Errorf("IKボーン追加はMMD準標準名での変換時のみ有効です")
		}
	}
	return nil
}

// usesStandardBoneNames はボーンがMMD準標準名で命名されるか判定する。
func (o ConvertOptions) usesStandardBoneNames() bool {
	return o.TranslateBoneNames && o.SkeletonFormat == SkeletonFormatMmd
}

// unitScale は座標に掛ける倍率を返す。
func (o ConvertOptions) unitScale() float64 {
	if o.ApplyUnitScale {
		return ScaleUnityToMmd
	}
	return 1.0
}
