// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
)

// ModelData は変換対象モデルを表す。
type ModelData = model.PmxModel

// ConvertProgressEventType は変換処理の進捗イベント種別を表す。
type ConvertProgressEventType string

const (
	// ConvertProgressEventTypeInputValidated は入力検証完了イベントを表す。
	ConvertProgressEventTypeInputValidated ConvertProgressEventType = "input_validated"
	// ConvertProgressEventTypeSourceLoaded は変換元読み込み完了イベントを表す。
	ConvertProgressEventTypeSourceLoaded ConvertProgressEventType = "source_loaded"
	// ConvertProgressEventTypeVerticesAssembled は頂点変換完了イベントを表す。
	ConvertProgressEventTypeVerticesAssembled ConvertProgressEventType = "vertices_assembled"
	// ConvertProgressEventTypeSkeletonBuilt はボーン構築完了イベントを表す。
	ConvertProgressEventTypeSkeletonBuilt ConvertProgressEventType = "skeleton_built"
	// ConvertProgressEventTypeAstanceCompleted はAスタンス補正完了イベントを表す。
	ConvertProgressEventTypeAstanceCompleted ConvertProgressEventType = "a_stance_completed"
	// ConvertProgressEventTypeStabilizerInserted は全ての親/センター挿入完了イベントを表す。
	ConvertProgressEventTypeStabilizerInserted ConvertProgressEventType = "stabilizer_inserted"
	// ConvertProgressEventTypeIkAppended はIKボーン追加完了イベントを表す。
	ConvertProgressEventTypeIkAppended ConvertProgressEventType = "ik_appended"
	// ConvertProgressEventTypeMaterialsAssembled は材質生成完了イベントを表す。
	ConvertProgressEventTypeMaterialsAssembled ConvertProgressEventType = "materials_assembled"
	// ConvertProgressEventTypeMorphsAssembled はモーフ生成完了イベントを表す。
	ConvertProgressEventTypeMorphsAssembled ConvertProgressEventType = "morphs_assembled"
	// ConvertProgressEventTypeDisplaySlotsAssembled は表示枠生成完了イベントを表す。
	ConvertProgressEventTypeDisplaySlotsAssembled ConvertProgressEventType = "display_slots_assembled"
	// ConvertProgressEventTypeModelSaved はモデル保存完了イベントを表す。
	ConvertProgressEventTypeModelSaved ConvertProgressEventType = "model_saved"
)

// ConvertProgressEvent は変換処理の進捗イベントを表す。
type ConvertProgressEvent struct {
	Type  ConvertProgressEventType
	Count int
}

// IConvertProgressReporter は変換処理の進捗通知契約を表す。
type IConvertProgressReporter interface {
	// ReportConvertProgress は変換処理進捗を通知する。
	ReportConvertProgress(event ConvertProgressEvent)
}

// AssembleRequest はモデル組み立て要求を表す。
type AssembleRequest struct {
	Rig              *source.SourceRig
	Options          ConvertOptions
	ProgressReporter IConvertProgressReporter
}

// ConvertRequest はファイル間の変換要求を表す。
type ConvertRequest struct {
	InputPath        string
	OutputPath       string
	Options          ConvertOptions
	ProgressReporter IConvertProgressReporter
}

// ConvertResult は変換結果を表す。Model は書き出し側へ渡したものと独立したコピー。
type ConvertResult struct {
	Model      *ModelData
	OutputPath string
}

// reportConvertProgress は変換処理の進捗を通知する。
func reportConvertProgress(reporter IConvertProgressReporter, event ConvertProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportConvertProgress(event)
}
