// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_mltd2pmx/pkg/usecase/port/moutput"

// Mltd2PmxUsecaseDeps は変換ユースケースの依存を表す。
type Mltd2PmxUsecaseDeps struct {
	SourceReader moutput.ISourceReader
	ModelWriter  moutput.IModelWriter
}

// Mltd2PmxUsecase はリグ読み込みからPMXモデル書き出しまでをまとめたユースケースを表す。
type Mltd2PmxUsecase struct {
	sourceReader moutput.ISourceReader
	modelWriter  moutput.IModelWriter
}

// NewMltd2PmxUsecase は変換ユースケースを生成する。
func NewMltd2PmxUsecase(deps Mltd2PmxUsecaseDeps) *Mltd2PmxUsecase {
	return &Mltd2PmxUsecase{
		sourceReader: deps.SourceReader,
		modelWriter:  deps.ModelWriter,
	}
}
