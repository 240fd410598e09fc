// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/io_config"
	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/io_model/pmxjson"
	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/io_source"
	"github.com/miu200521358/mu_mltd2pmx/pkg/infra/base/mlogging"
	"github.com/miu200521358/mu_mltd2pmx/pkg/shared/base/logging"
	"github.com/miu200521358/mu_mltd2pmx/pkg/usecase/minteractor"
)

const (
	batchOutputDirMode = 0o755
)

// batchConfig はバッチ変換の実行設定を表す。
type batchConfig struct {
	InputDir   string
	OutputRoot string
	ConfigPath string
	DryRun     bool
	FailFast   bool
}

// conversionEntry は1リグ分の変換入力情報を表す。
type conversionEntry struct {
	Index      int
	SourcePath string
	ModelName  string
	CaseDir    string
	OutputPath string
}

// conversionResult は1リグ分の変換結果を表す。
type conversionResult struct {
	Entry     conversionEntry
	Status    string
	Duration  time.Duration
	Err       error
	StageInfo string
}

// convertProgressCollector は変換処理の進捗イベントを収集する。
type convertProgressCollector struct {
	eventCounts map[minteractor.ConvertProgressEventType]int
	boneMax     int
	morphMax    int
}

// main はディレクトリ内のリグJSONを一括変換する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括変換を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	options, err := io_config.LoadConvertOptions(config.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "変換設定の読み込みに失敗しました: %v\n", err)
		return 2
	}
	inputPaths, err := collectInputPaths(config.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "入力一覧の取得に失敗しました: %v\n", err)
		return 2
	}
	entries := buildConversionEntries(config.OutputRoot, inputPaths)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "変換対象リグがありません")
		return 2
	}

	logger := mlogging.NewLogger(os.Stdout)
	logger.SetLevel(logging.LOG_LEVEL_WARN)
	logging.SetDefaultLogger(logger)
	defer logger.Sync()

	results := executeBatchConversion(config, options, entries)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status == "failed" {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	defaultOutputRoot, err := resolveDefaultOutputRoot()
	if err != nil {
		return batchConfig{}, err
	}
	inputDir := flag.String("input-dir", "", "変換元リグJSONを格納したディレクトリ")
	outputRoot := flag.String("output-root", defaultOutputRoot, "変換結果の出力ルートディレクトリ")
	configPath := flag.String("config", "", "変換設定YAMLファイルパス")
	dryRun := flag.Bool("dry-run", false, "実変換せず、入力解決と出力先計画のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	flag.Parse()

	trimmedInputDir := strings.TrimSpace(*inputDir)
	if trimmedInputDir == "" {
		return batchConfig{}, errors.New("input-dir が空です")
	}
	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	return batchConfig{
		InputDir:   filepath.Clean(trimmedInputDir),
		OutputRoot: filepath.Clean(trimmedOutputRoot),
		ConfigPath: strings.TrimSpace(*configPath),
		DryRun:     *dryRun,
		FailFast:   *failFast,
	}, nil
}

// resolveDefaultOutputRoot はスクリプト配置ディレクトリ基準の既定出力先を返す。
func resolveDefaultOutputRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	return filepath.Join(filepath.Dir(currentFilePath), "output"), nil
}

// collectInputPaths は入力ディレクトリ直下のリグJSONを名前順で返す。
func collectInputPaths(inputDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(inputDir, "*.json"))
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		if strings.HasSuffix(strings.ToLower(match), ".pmx.json") {
			continue
		}
		paths = append(paths, match)
	}
	sort.Strings(paths)
	return paths, nil
}

// buildConversionEntries は入力パス一覧から変換対象エントリを生成する。
func buildConversionEntries(outputRoot string, inputPaths []string) []conversionEntry {
	entries := make([]conversionEntry, 0, len(inputPaths))
	for i, inputPath := range inputPaths {
		modelName := resolveModelName(inputPath)
		safeModelName := sanitizePathComponent(modelName)
		caseDir := filepath.Join(outputRoot, fmt.Sprintf("%03d_%s", i+1, safeModelName))
		entries = append(entries, conversionEntry{
			Index:      i + 1,
			SourcePath: inputPath,
			ModelName:  modelName,
			CaseDir:    caseDir,
			OutputPath: filepath.Join(caseDir, safeModelName+".pmx.json"),
		})
	}
	return entries
}

// executeBatchConversion は全リグの変換処理を順次実行する。
func executeBatchConversion(config batchConfig, options minteractor.ConvertOptions, entries []conversionEntry) []conversionResult {
	results := make([]conversionResult, 0, len(entries))
	usecase := minteractor.NewMltd2PmxUsecase(minteractor.Mltd2PmxUsecaseDeps{
		SourceReader: io_source.NewJsonSourceRepository(),
		ModelWriter:  pmxjson.NewPmxJsonRepository(),
	})

	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 変換開始: model=%s\n", entry.Index, total, entry.ModelName)
		result := convertRigEntry(usecase, config, options, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 変換成功: model=%s output=%s elapsed=%s\n", entry.Index, total, entry.ModelName, entry.OutputPath, result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.StageInfo) != "" {
				fmt.Printf("[%d/%d] 変換進捗: %s\n", entry.Index, total, result.StageInfo)
			}
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: model=%s input=%s output=%s\n", entry.Index, total, entry.ModelName, entry.SourcePath, entry.OutputPath)
		default:
			fmt.Printf("[%d/%d] 変換失敗: model=%s reason=%v\n", entry.Index, total, entry.ModelName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// convertRigEntry は1リグ分の変換を実行する。
func convertRigEntry(usecase *minteractor.Mltd2PmxUsecase, config batchConfig, options minteractor.ConvertOptions, entry conversionEntry) conversionResult {
	result := conversionResult{
		Entry:  entry,
		Status: "failed",
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}
	if err := os.MkdirAll(entry.CaseDir, batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}

	startedAt := time.Now()
	progressCollector := newConvertProgressCollector()
	converted, err := usecase.Convert(minteractor.ConvertRequest{
		InputPath:        entry.SourcePath,
		OutputPath:       entry.OutputPath,
		Options:          options,
		ProgressReporter: progressCollector,
	})
	if err != nil {
		result.Err = err
		return result
	}
	if converted == nil || converted.Model == nil {
		result.Err = errors.New("変換結果が空です")
		return result
	}

	result.Status = "succeeded"
	result.Duration = time.Since(startedAt)
	result.StageInfo = progressCollector.Summary()
	return result
}

// printBatchSummary は変換結果の集計を標準出力へ表示する。
func printBatchSummary(results []conversionResult) {
	succeeded := 0
	failed := 0
	dryRun := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
		case "dry_run":
			dryRun++
		default:
			failed++
		}
	}
	fmt.Printf(
		"バッチ変換サマリ: total=%d succeeded=%d failed=%d dry_run=%d\n",
		len(results),
		succeeded,
		failed,
		dryRun,
	)
}

// resolveModelName は入力パスから拡張子を除いたモデル名を返す。
func resolveModelName(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	name := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		return "model"
	}
	return name
}

// sanitizePathComponent は出力ディレクトリ/ファイル名に使えない文字を置換する。
func sanitizePathComponent(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "model"
	}
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		default:
			if r < 0x20 {
				return '_'
			}
			return r
		}
	}, trimmed)
	replaced = strings.Trim(replaced, " .")
	if replaced == "" {
		return "model"
	}
	return replaced
}

// newConvertProgressCollector は進捗収集器を生成する。
func newConvertProgressCollector() *convertProgressCollector {
	return &convertProgressCollector{
		eventCounts: map[minteractor.ConvertProgressEventType]int{},
	}
}

// ReportConvertProgress は進捗イベントを収集する。
func (collector *convertProgressCollector) ReportConvertProgress(event minteractor.ConvertProgressEvent) {
	if collector == nil {
		return
	}
	collector.eventCounts[event.Type]++
	switch event.Type {
	case minteractor.ConvertProgressEventTypeSkeletonBuilt,
		minteractor.ConvertProgressEventTypeStabilizerInserted,
		minteractor.ConvertProgressEventTypeIkAppended:
		if event.Count > collector.boneMax {
			collector.boneMax = event.Count
		}
	case minteractor.ConvertProgressEventTypeMorphsAssembled:
		if event.Count > collector.morphMax {
			collector.morphMax = event.Count
		}
	}
}

// Summary は収集した進捗の要約文字列を返す。
func (collector *convertProgressCollector) Summary() string {
	if collector == nil || len(collector.eventCounts) == 0 {
		return ""
	}
	types := make([]string, 0, len(collector.eventCounts))
	for stageType := range collector.eventCounts {
		types = append(types, string(stageType))
	}
	sort.Strings(types)
	return fmt.Sprintf(
		"events=%d bones=%d morphs=%d stages=%s",
		len(collector.eventCounts),
		collector.boneMax,
		collector.morphMax,
		strings.Join(types, ","),
	)
}
