// 指示: miu200521358
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/io_config"
	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/io_model/pmxjson"
	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/io_source"
	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_mltd2pmx/pkg/infra/base/mlogging"
	"github.com/miu200521358/mu_mltd2pmx/pkg/shared/base/logging"
	"github.com/miu200521358/mu_mltd2pmx/pkg/usecase/minteractor"
)

// options はCLI引数を保持する。
type options struct {
	inputPath  string
	outputPath string
	configPath string
	logLevel   string
}

// main はMLTDリグからPMXモデルへの変換を実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	config, err := io_config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageConfigFailed, err)
	}
	if opts.logLevel != "" {
		level, err := io_config.ParseLogLevel(opts.logLevel)
		if err != nil {
			return err
		}
		config.LogLevel = level
	}

	logger := mlogging.NewLogger(out)
	logger.SetLevel(config.LogLevel)
	logging.SetDefaultLogger(logger)
	defer logger.Sync()

	usecase := minteractor.NewMltd2PmxUsecase(minteractor.Mltd2PmxUsecaseDeps{
		SourceReader: io_source.NewJsonSourceRepository(),
		ModelWriter:  pmxjson.NewPmxJsonRepository(),
	})

	logger.Info(messages.LogConvertStart, opts.inputPath)
	result, err := usecase.Convert(minteractor.ConvertRequest{
		InputPath:        opts.inputPath,
		OutputPath:       opts.outputPath,
		Options:          config.Options,
		ProgressReporter: newLogProgressReporter(logger),
	})
	if err != nil {
		logger.Error("%s: %v", messages.MessageConvertFailed, err)
		return fmt.Errorf("%s: %w", messages.MessageConvertFailed, err)
	}
	logger.Info(messages.LogConvertSuccess, result.OutputPath)
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_mltd2pmx", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintln(errOut, messages.HelpUsage)
		fs.PrintDefaults()
	}

	in := fs.String("in", "", messages.LabelInPath)
	out := fs.String("out", "", messages.LabelOutPath)
	configPath := fs.String("config", "", messages.LabelConfig)
	logLevel := fs.String("log-level", "", messages.LabelLogLevel)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *in == "" && fs.NArg() > 0 {
		*in = fs.Arg(0)
	}
	if *out == "" && fs.NArg() > 1 {
		*out = fs.Arg(1)
	}
	if strings.TrimSpace(*in) == "" {
		return options{}, fmt.Errorf("%s", messages.MessageInputRequired)
	}

	return options{
		inputPath:  *in,
		outputPath: *out,
		configPath: *configPath,
		logLevel:   *logLevel,
	}, nil
}

// logProgressReporter は進捗イベントをログへ出力する。
type logProgressReporter struct {
	logger logging.ILogger
}

// newLogProgressReporter はlogProgressReporterを生成する。
func newLogProgressReporter(logger logging.ILogger) *logProgressReporter {
	return &logProgressReporter{logger: logger}
}

// ReportConvertProgress は進捗イベントをINFOログへ出力する。
func (r *logProgressReporter) ReportConvertProgress(event minteractor.ConvertProgressEvent) {
	if r == nil || r.logger == nil {
		return
	}
	label, ok := messages.ProgressLabels[string(event.Type)]
	if !ok {
		label = string(event.Type)
	}
	r.logger.Info(messages.LogConvertProgress, label, event.Count)
}
