// 指示: miu200521358
package source

import "testing"

func TestParentPath(t *testing.T) {
	cases := []struct {
		path       string
		wantParent string
		wantOK     bool
	}{
		{path: "", wantParent: "", wantOK: false},
		{path: "MODEL_00", wantParent: "", wantOK: true},
		{path: "MODEL_00/BASE/MUNE1", wantParent: "MODEL_00/BASE", wantOK: true},
	}
	for _, tc := range cases {
		parent, ok := ParentPath(tc.path)
		if parent != tc.wantParent || ok != tc.wantOK {
			t.Fatalf("parent mismatch: path=%s got=(%s,%v) want=(%s,%v)", tc.path, parent, ok, tc.wantParent, tc.wantOK)
		}
	}
	if got := LeafName("MODEL_00/BASE/MUNE1"); got != "MUNE1" {
		t.Fatalf("leaf mismatch: got=%s", got)
	}
}

func TestBuildParentIndexes(t *testing.T) {
	avatar := &SourceAvatar{Joints: []Joint{
		{Path: ""},
		{Path: "MODEL_00"},
		{Path: "MODEL_00/BASE"},
		{Path: "POSITION"},
	}}
	got := avatar.BuildParentIndexes()
	want := []int{-1, 0, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parent index mismatch at %d: got=%d want=%d", i, got[i], want[i])
		}
	}
}

func TestBuildHashIndexKeepsFirst(t *testing.T) {
	avatar := &SourceAvatar{Joints: []Joint{{Path: "a", Hash: 1}, {Path: "b", Hash: 1}, {Path: "c", Hash: 2}}}
	index := avatar.BuildHashIndex()
	if index[1] != 0 || index[2] != 2 {
		t.Fatalf("hash index mismatch: %v", index)
	}
}
