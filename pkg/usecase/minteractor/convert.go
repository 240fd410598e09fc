// 指示: miu200521358
package minteractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
)

const defaultOutputSuffix = ".pmx.json"

// LoadRig は変換元リグを読み込む。
func (uc *Mltd2PmxUsecase) LoadRig(path string) (*source.SourceRig, error) {
	if uc.sourceReader == nil {
		return nil, fmt.Errorf("変換元読み込みリポジトリが設定されていません")
	}
	if !uc.sourceReader.CanLoad(path) {
		return nil, fmt.Errorf("読み込みできない入力形式です: %s", path)
	}
	rig, err := uc.sourceReader.Load(path)
	if err != nil {
		return nil, err
	}
	if rig == nil || rig.Avatar == nil || rig.Mesh == nil {
		return nil, fmt.Errorf("変換元リグの読み込み結果が空です")
	}
	return rig, nil
}

// SaveModel はモデルを保存する。
func (uc *Mltd2PmxUsecase) SaveModel(path string, modelData *ModelData) error {
	if uc.modelWriter == nil {
		return fmt.Errorf("モデル保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if modelData == nil {
		return fmt.Errorf("保存対象モデルが未設定です")
	}
	if !uc.modelWriter.CanSave(path) {
		return fmt.Errorf("保存できない出力形式です: %s", path)
	}
	return uc.modelWriter.Save(path, modelData)
}

// Convert は変換元リグを読み込み、PMXモデルを組み立てて保存する。
// 保存側にはコピーを渡すため、結果のモデルは書き出し処理の影響を受けない。
func (uc *Mltd2PmxUsecase) Convert(request ConvertRequest) (*ConvertResult, error) {
	if strings.TrimSpace(request.InputPath) == "" {
		return nil, fmt.Errorf("入力パスが未指定です")
	}
	outputPath := resolveOutputPath(request.InputPath, request.OutputPath)
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type: ConvertProgressEventTypeInputValidated,
	})

	rig, err := uc.LoadRig(request.InputPath)
	if err != nil {
		return nil, fmt.Errorf("変換元リグの読み込みに失敗しました: %w", err)
	}
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type:  ConvertProgressEventTypeSourceLoaded,
		Count: len(rig.Avatar.Joints),
	})

	modelData, err := AssembleModel(AssembleRequest{
		Rig:              rig,
		Options:          request.Options,
		ProgressReporter: request.ProgressReporter,
	})
	if err != nil {
		return nil, err
	}

	saveData, err := modelData.Copy()
	if err != nil {
		return nil, fmt.Errorf("保存用モデルの複製に失敗しました: %w", err)
	}
	if err := uc.SaveModel(outputPath, saveData); err != nil {
		return nil, fmt.Errorf("モデル保存に失敗しました: %w", err)
	}
	reportConvertProgress(request.ProgressReporter, ConvertProgressEvent{
		Type: ConvertProgressEventTypeModelSaved,
	})
	logConvertInfo("変換完了: %s", outputPath)

	return &ConvertResult{Model: modelData, OutputPath: outputPath}, nil
}

// resolveOutputPath は保存先パスを解決する。未指定時は入力と同じフォルダに既定拡張子で保存する。
func resolveOutputPath(inputPath string, outputPath string) string {
	resolved := strings.TrimSpace(outputPath)
	if resolved != "" {
		return resolved
	}
	return BuildDefaultOutputPath(inputPath)
}

// BuildDefaultOutputPath は入力パスから既定の保存先パスを返す。
func BuildDefaultOutputPath(inputPath string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + defaultOutputSuffix
}
