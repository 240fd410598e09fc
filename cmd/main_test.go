// 指示: miu200521358
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/miu200521358/mu_mltd2pmx/pkg/shared/base/logging"
)

const minimalRigJSONForTest = `{
  "avatar": {
    "joints": [
      {"path": ""},
      {"path": "spine", "translation": [0, 1, 0]},
      {"path": "spine/head", "translation": [0, 0.5, 0]}
    ]
  },
  "mesh": {
    "vertices": [
      {"position": [0, 1, 0], "influences": [{"jointPath": "spine", "weight": 1}]},
      {"position": [1, 1, 0], "influences": [{"jointPath": "spine", "weight": 1}]},
      {"position": [0, 2, 0], "influences": [{"jointPath": "spine/head", "weight": 1}]}
    ],
    "indices": [0, 1, 2],
    "subMeshes": [{"firstIndex": 0, "indexCount": 3}]
  },
  "bodyVertexCount": 3
}`

const minimalRigConfigForTest = `
insert_stabilizer_bones: false
append_ik_bones: false
apply_pose_rebase: false
`

func TestParseOptionsWithFlags(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	opts, err := parseOptions([]string{"-in", "rig.json", "-out", "model.pmx.json", "-config", "convert.yaml", "-log-level", "debug"}, errBuf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.inputPath != "rig.json" || opts.outputPath != "model.pmx.json" {
		t.Fatalf("path mismatch: %+v", opts)
	}
	if opts.configPath != "convert.yaml" || opts.logLevel != "debug" {
		t.Fatalf("option mismatch: %+v", opts)
	}
}

func TestParseOptionsWithPositionals(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	opts, err := parseOptions([]string{"rig.json", "result.pmx.json"}, errBuf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.inputPath != "rig.json" {
		t.Fatalf("inputPath mismatch: %s", opts.inputPath)
	}
	if opts.outputPath != "result.pmx.json" {
		t.Fatalf("outputPath mismatch: %s", opts.outputPath)
	}
}

func TestParseOptionsRequireInput(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	_, err := parseOptions([]string{}, errBuf)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "-in") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunConvertsRigToModel(t *testing.T) {
	restoreDefaultLoggerForTest(t)
	tempDir := t.TempDir()
	inPath := writeFileForTest(t, filepath.Join(tempDir, "rig.json"), minimalRigJSONForTest)
	configPath := writeFileForTest(t, filepath.Join(tempDir, "convert.yaml"), minimalRigConfigForTest)

	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	if err := run([]string{"-in", inPath, "-config", configPath}, outBuf, errBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	outPath := filepath.Join(tempDir, "rig.pmx.json")
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output not found: %v", err)
	}
	doc := map[string]any{}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("output parse failed: %v", err)
	}
	bones, ok := doc["bones"].([]any)
	if !ok || len(bones) != 3 {
		t.Fatalf("bone count mismatch: %v", doc["bones"])
	}
	if !strings.Contains(outBuf.String(), "変換完了") {
		t.Fatalf("completion log missing: %s", outBuf.String())
	}
}

func TestRunFailsWithDefaultOptionsOnMinimalRig(t *testing.T) {
	restoreDefaultLoggerForTest(t)
	tempDir := t.TempDir()
	inPath := writeFileForTest(t, filepath.Join(tempDir, "rig.json"), minimalRigJSONForTest)

	err := run([]string{"-in", inPath}, bytes.NewBuffer(nil), bytes.NewBuffer(nil))
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, statErr := os.Stat(filepath.Join(tempDir, "rig.pmx.json")); !os.IsNotExist(statErr) {
		t.Fatalf("output should not exist: %v", statErr)
	}
}

// writeFileForTest はテスト用ファイルを書き出す。
func writeFileForTest(t *testing.T, path string, body string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write file failed: %v", err)
	}
	return path
}

// restoreDefaultLoggerForTest はテスト終了時に既定ロガーを戻す。
func restoreDefaultLoggerForTest(t *testing.T) {
	t.Helper()
	previous := logging.DefaultLogger()
	t.Cleanup(func() {
		logging.SetDefaultLogger(previous)
	})
}
