// 指示: miu200521358
package moutput

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
)

// ISourceReader は変換元リグの読み込み契約を表す。
type ISourceReader interface {
	// CanLoad は読み込み可能なパスか判定する。
	CanLoad(path string) bool
	// Load は変換元リグを読み込む。
	Load(path string) (*source.SourceRig, error)
}

// IModelWriter は組み立て済みモデルの書き込み契約を表す。
type IModelWriter interface {
	// CanSave は書き込み可能なパスか判定する。
	CanSave(path string) bool
	// Save はモデルを書き込む。
	Save(path string, modelData *model.PmxModel) error
}
