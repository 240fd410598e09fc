// 指示: miu200521358
// Package messages はCLI表示に使うメッセージを提供する。
package messages

// メッセージ一覧。
const (
	HelpUsage     = "使い方: mu_mltd2pmx -in <rig.json> [-out <model.pmx.json>] [-config <convert.yaml>]"
	LabelInPath   = "入力リグJSONファイルパス"
	LabelOutPath  = "出力モデルJSONファイルパス"
	LabelConfig   = "変換設定YAMLファイルパス"
	LabelLogLevel = "ログレベル (DEBUG/INFO/WARN/ERROR)"

	MessageInputRequired = "入力リグJSONファイルを指定してください (-in)"
	MessageConfigFailed  = "設定ファイルの読み込みに失敗しました"
	MessageConvertFailed = "変換に失敗しました"

	LogConvertStart    = "変換開始: %s"
	LogConvertProgress = "変換進捗: %s count=%d"
	LogConvertSuccess  = "変換完了: %s"
)

// ProgressLabels は進捗イベント種別ごとの表示名を表す。
var ProgressLabels = map[string]string{
	"input_validated":         "入力確認",
	"source_loaded":           "リグ読込",
	"vertices_assembled":      "頂点変換",
	"skeleton_built":          "ボーン構築",
	"a_stance_completed":      "Aスタンス補正",
	"stabilizer_inserted":     "全ての親/センター挿入",
	"ik_appended":             "IK追加",
	"materials_assembled":     "材質変換",
	"morphs_assembled":        "モーフ変換",
	"display_slots_assembled": "表示枠構築",
	"model_saved":             "保存",
}
