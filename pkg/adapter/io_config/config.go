// 指示: miu200521358
// Package io_config は変換設定ファイル(YAML)の読み込みを提供する。
package io_config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/io_common"
	"github.com/miu200521358/mu_mltd2pmx/pkg/shared/base/logging"
	"github.com/miu200521358/mu_mltd2pmx/pkg/usecase/minteractor"
)

// Config は変換設定とログレベルを保持する。
type Config struct {
	Options  minteractor.ConvertOptions
	LogLevel logging.LogLevel
}

// DefaultConfig は既定の設定を返す。
func DefaultConfig() *Config {
	return &Config{
		Options:  minteractor.DefaultConvertOptions(),
		LogLevel: logging.LOG_LEVEL_INFO,
	}
}

// configDocument は設定ファイルの要素を表す。未指定の項目は既定値を維持する。
type configDocument struct {
	ApplyUnitScale        *bool   `yaml:"apply_unit_scale"`
	TranslateBoneNames    *bool   `yaml:"translate_bone_names"`
	AppendIkBones         *bool   `yaml:"append_ik_bones"`
	InsertStabilizerBones *bool   `yaml:"insert_stabilizer_bones"`
	ApplyPoseRebase       *bool   `yaml:"apply_pose_rebase"`
	SkeletonFormat        *string `yaml:"skeleton_format"`
	TexturePrefix         *string `yaml:"texture_prefix"`
	ModelName             *string `yaml:"model_name"`
	ModelEnglishName      *string `yaml:"model_english_name"`
	LogLevel              *string `yaml:"log_level"`
}

// LoadConfig は設定ファイルを読み込む。パスが空の場合は既定値を返す。
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return config, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, io_common.NewIoExtInvalid(path, nil)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, io_common.NewIoFileNotFound(path, err)
		}
		return nil, io_common.NewIoParseFailed("設定ファイルの読み込みに失敗しました: %s", err, path)
	}

	doc := configDocument{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, io_common.NewIoParseFailed("設定ファイルの解析に失敗しました: %s", err, path)
	}
	if err := applyConfigDocument(config, &doc); err != nil {
		return nil, err
	}
	if err := config.Options.Validate(); err != nil {
		return nil, io_common.NewIoParseFailed("設定値が不正です: %s", err, path)
	}
	return config, nil
}

// LoadConvertOptions は設定ファイルから変換設定のみを読み込む。
func LoadConvertOptions(path string) (minteractor.ConvertOptions, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return minteractor.ConvertOptions{}, err
	}
	return config.Options, nil
}

// applyConfigDocument は指定された項目だけを設定へ上書きする。
func applyConfigDocument(config *Config, doc *configDocument) error {
	overlayBool(&config.Options.ApplyUnitScale, doc.ApplyUnitScale)
	overlayBool(&config.Options.TranslateBoneNames, doc.TranslateBoneNames)
	overlayBool(&config.Options.AppendIkBones, doc.AppendIkBones)
	overlayBool(&config.Options.InsertStabilizerBones, doc.InsertStabilizerBones)
	overlayBool(&config.Options.ApplyPoseRebase, doc.ApplyPoseRebase)
	if doc.SkeletonFormat != nil {
		config.Options.SkeletonFormat = minteractor.SkeletonFormat(strings.ToLower(strings.TrimSpace(*doc.SkeletonFormat)))
	}
	overlayString(&config.Options.TexturePrefix, doc.TexturePrefix)
	overlayString(&config.Options.ModelName, doc.ModelName)
	overlayString(&config.Options.ModelEnglishName, doc.ModelEnglishName)
	if doc.LogLevel != nil {
		level, err := ParseLogLevel(*doc.LogLevel)
		if err != nil {
			return err
		}
		config.LogLevel = level
	}
	return nil
}

// ParseLogLevel はレベル名をログレベルへ変換する。
func ParseLogLevel(name string) (logging.LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return logging.LOG_LEVEL_DEBUG, nil
	case "INFO", "":
		return logging.LOG_LEVEL_INFO, nil
	case "WARN", "WARNING":
		return logging.LOG_LEVEL_WARN, nil
	case "ERROR":
		return logging.LOG_LEVEL_ERROR, nil
	}
	return logging.LOG_LEVEL_INFO, io_common.NewIoFormatNotSupported("未対応のログレベルです: %s", nil, name)
}

func overlayBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func overlayString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
