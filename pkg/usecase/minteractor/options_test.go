// 指示: miu200521358
package minteractor

import "testing"

// TestConvertOptionsValidate は命名方式と補正工程の組み合わせを検証する。
func TestConvertOptionsValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(options *ConvertOptions)
		wantErr bool
	}{
		{name: "default", mutate: func(options *ConvertOptions) {}},
		{name: "unknown format", mutate: func(options *ConvertOptions) { options.SkeletonFormat = "vrm" }, wantErr: true},
		{name: "mltd with pose rebase", mutate: func(options *ConvertOptions) {
			options.SkeletonFormat = SkeletonFormatMltd
			options.AppendIkBones = false
		}, wantErr: true},
		{name: "raw names with defaults", mutate: func(options *ConvertOptions) {
			options.TranslateBoneNames = false
		}, wantErr: true},
		{name: "raw names without naming dependent stages", mutate: func(options *ConvertOptions) {
			options.TranslateBoneNames = false
			options.ApplyPoseRebase = false
			options.AppendIkBones = false
		}},
		{name: "raw names with ik", mutate: func(options *ConvertOptions) {
			options.TranslateBoneNames = false
			options.ApplyPoseRebase = false
		}, wantErr: true},
		{name: "mltd without naming dependent stages", mutate: func(options *ConvertOptions) {
			options.SkeletonFormat = SkeletonFormatMltd
			options.AppendIkBones = false
			options.ApplyPoseRebase = false
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			options := DefaultConvertOptions()
			tc.mutate(&options)
			err := options.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// TestConvertOptionsUnitScale は倍率の切り替えを検証する。
func TestConvertOptionsUnitScale(t *testing.T) {
	options := DefaultConvertOptions()
	if options.unitScale() != ScaleUnityToMmd {
		t.Fatalf("scale mismatch: got=%f", options.unitScale())
	}
	options.ApplyUnitScale = false
	if options.unitScale() != 1 {
		t.Fatalf("scale mismatch: got=%f", options.unitScale())
	}
}
