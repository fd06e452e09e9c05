package folder

import "strings"

// A Unit is one source file ("AI") as the caller loaded it: the text plus
// everything the analysis of it needs to know. The folder tree owning a
// unit is recorded so that its own includes resolve relative to it.
type Unit struct {
	ID      int
	Path    string
	Source  string
	Version int
	Folder  *Folder
}

// A Folder is a node in the in-memory file tree. Resolution never touches
// the file system; the caller builds the tree up front.
type Folder struct {
	Name    string
	parent  *Folder
	folders map[string]*Folder
	units   map[string]*Unit
}

func NewRoot() *Folder {
	return &Folder{folders: map[string]*Folder{}, units: map[string]*Unit{}}
}

func (f *Folder) AddFolder(name string) *Folder {
	if sub, ok := f.folders[name]; ok {
		return sub
	}
	sub := &Folder{Name: name, parent: f,
		folders: map[string]*Folder{}, units: map[string]*Unit{}}
	f.folders[name] = sub
	return sub
}

func (f *Folder) AddUnit(name string, unit *Unit) *Unit {
	unit.Folder = f
	f.units[name] = unit
	return unit
}

func (f *Folder) Root() *Folder {
	root := f
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Resolve finds the unit an include path names, relative to this folder.
// A leading '/' restarts at the root; './' stays here; '../' moves to the
// parent, failing at the root. An unescaped '/' splits off a subfolder
// segment; a backslash-escaped slash is part of the name and is unescaped
// before the final lookup.
func (f *Folder) Resolve(path string) (*Unit, bool) {
	if strings.HasPrefix(path, "/") {
		return f.Root().Resolve(path[1:])
	}
	if strings.HasPrefix(path, "./") {
		return f.Resolve(path[2:])
	}
	if strings.HasPrefix(path, "../") {
		if f.parent == nil {
			return nil, false
		}
		return f.parent.Resolve(path[3:])
	}
	if head, rest, split := splitUnescaped(path); split {
		sub, ok := f.folders[unescape(head)]
		if !ok {
			return nil, false
		}
		return sub.Resolve(rest)
	}
	unit, ok := f.units[unescape(path)]
	return unit, ok
}

// splitUnescaped splits the path on its first slash not preceded by a
// backslash.
func splitUnescaped(path string) (string, string, bool) {
	for i := 0; i < len(path); i++ {
		if path[i] == '/' && (i == 0 || path[i-1] != '\\') {
			return path[:i], path[i+1:], true
		}
	}
	return path, "", false
}

func unescape(segment string) string {
	return strings.ReplaceAll(segment, `\/`, "/")
}
