// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_mltd2pmx/pkg/shared/base/logging"

// logConvertInfo は変換処理のINFOログを出力する。
func logConvertInfo(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Info(format, params...)
}

// logConvertDebug は変換処理のDEBUGログを出力する。
func logConvertDebug(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Debug(format, params...)
}

// logConvertWarn は変換処理のWARNログを出力する。
func logConvertWarn(format string, params ...any) {
	logger := logging.DefaultLogger()
	if logger == nil {
		return
	}
	logger.Warn(format, params...)
}
