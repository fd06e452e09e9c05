package folder_test

import (
	"testing"

	"github.com/Bux42/leekscript-vscode-sub000/source/folder"
)

// root/
//   util
//   a/
//     b
//     deep/
//       c
//   "odd/name"
func buildTree() (*folder.Folder, *folder.Folder) {
	root := folder.NewRoot()
	root.AddUnit("util", &folder.Unit{Path: "util"})
	a := root.AddFolder("a")
	a.AddUnit("b", &folder.Unit{Path: "a/b"})
	deep := a.AddFolder("deep")
	deep.AddUnit("c", &folder.Unit{Path: "a/deep/c"})
	root.AddUnit("odd/name", &folder.Unit{Path: "odd-name"})
	return root, deep
}

func TestResolution(t *testing.T) {
	root, deep := buildTree()
	tests := []struct {
		from     *folder.Folder
		path     string
		expected string
		found    bool
	}{
		{root, "util", "util", true},
		{root, "./util", "util", true},
		{root, "a/b", "a/b", true},
		{root, "/a/deep/c", "a/deep/c", true},
		{deep, "c", "a/deep/c", true},
		{deep, "../b", "a/b", true},
		{deep, "../../util", "util", true},
		{deep, "/util", "util", true},
		{root, "../util", "", false},
		{root, "missing", "", false},
		{root, "a/missing", "", false},
		{root, "missing/b", "", false},
		{root, `odd\/name`, "odd-name", true},
		{root, "odd/name", "", false},
	}
	for _, test := range tests {
		unit, ok := test.from.Resolve(test.path)
		if ok != test.found {
			t.Errorf("resolving %q: found=%v, expected %v", test.path, ok, test.found)
			continue
		}
		if ok && unit.Path != test.expected {
			t.Errorf("resolving %q: got %q, expected %q", test.path, unit.Path, test.expected)
		}
	}
}

// ../a/b from two levels down must land in the sibling-of-parent folder.
func TestParentRelative(t *testing.T) {
	root := folder.NewRoot()
	a := root.AddFolder("a")
	a.AddUnit("b", &folder.Unit{Path: "a/b"})
	x := root.AddFolder("x")
	y := x.AddFolder("y")
	unit, ok := y.Resolve("../../a/b")
	if !ok || unit.Path != "a/b" {
		t.Error("parent-relative resolution failed")
	}
}
