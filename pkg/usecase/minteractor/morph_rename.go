// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
)

const morphChannelPrefix = "blendShape1."

// morphRenameRule はブレンドシェイプチャンネルに対応するモーフ名とパネルを表す。
type morphRenameRule struct {
	Name  string
	Panel model.MorphPanel
}

// morphRenameRules はチャンネル名(接頭辞除く)からモーフへの対応表を表す。
var morphRenameRules = map[string]morphRenameRule{
	"M_a":        {Name: "あ", Panel: model.MORPH_PANEL_LIP},
	"M_i":        {Name: "い", Panel: model.MORPH_PANEL_LIP},
	"M_u":        {Name: "う", Panel: model.MORPH_PANEL_LIP},
	"M_e":        {Name: "え", Panel: model.MORPH_PANEL_LIP},
	"M_o":        {Name: "お", Panel: model.MORPH_PANEL_LIP},
	"M_n":        {Name: "ん", Panel: model.MORPH_PANEL_LIP},
	"M_egao":     {Name: "にやり", Panel: model.MORPH_PANEL_LIP},
	"M_shinken":  {Name: "真面目口", Panel: model.MORPH_PANEL_LIP},
	"M_wide":     {Name: "口横広げ", Panel: model.MORPH_PANEL_LIP},
	"M_up":       {Name: "口角上げ", Panel: model.MORPH_PANEL_LIP},
	"M_down":     {Name: "口角下げ", Panel: model.MORPH_PANEL_LIP},
	"E_metoji":   {Name: "まばたき", Panel: model.MORPH_PANEL_EYE},
	"E_metoji_l": {Name: "ウィンク", Panel: model.MORPH_PANEL_EYE},
	"E_metoji_r": {Name: "ウィンク右", Panel: model.MORPH_PANEL_EYE},
	"E_egao":     {Name: "笑い", Panel: model.MORPH_PANEL_EYE},
	"E_bikkuri":  {Name: "びっくり", Panel: model.MORPH_PANEL_EYE},
	"E_jito":     {Name: "じと目", Panel: model.MORPH_PANEL_EYE},
	"E_shinken":  {Name: "ｷﾘｯ", Panel: model.MORPH_PANEL_EYE},
	"B_egao":     {Name: "にこり", Panel: model.MORPH_PANEL_EYEBROW},
	"B_komari":   {Name: "困る", Panel: model.MORPH_PANEL_EYEBROW},
	"B_ikari":    {Name: "怒り", Panel: model.MORPH_PANEL_EYEBROW},
	"B_agari":    {Name: "上", Panel: model.MORPH_PANEL_EYEBROW},
	"B_sagari":   {Name: "下", Panel: model.MORPH_PANEL_EYEBROW},
}

// resolveMorphRename はチャンネル名からモーフ名とパネルを解決する。
// 対応表に無い場合はチャンネル名をそのまま使い、パネルは接頭辞から推定する。
func resolveMorphRename(channelName string) (morphRenameRule, bool) {
	key := strings.TrimPrefix(channelName, morphChannelPrefix)
	if rule, ok := morphRenameRules[key]; ok {
		return rule, true
	}
	return morphRenameRule{Name: channelName, Panel: resolveMorphPanelByPrefix(key)}, false
}

// resolveMorphPanelByPrefix は顔部位接頭辞からパネルを推定する。
func resolveMorphPanelByPrefix(key string) model.MorphPanel {
	switch {
	case strings.HasPrefix(key, "B_"):
		return model.MORPH_PANEL_EYEBROW
	case strings.HasPrefix(key, "E_"):
		return model.MORPH_PANEL_EYE
	case strings.HasPrefix(key, "M_"):
		return model.MORPH_PANEL_LIP
	}
	return model.MORPH_PANEL_OTHER
}
