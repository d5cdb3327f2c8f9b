// Package pathx implements the naming rules of the per-user sandbox: which
// folder and file names a client may send, and how a validated name resolves
// against a user's current directory. Validation happens before any
// filesystem call is made.
package pathx

import (
	"path/filepath"
	"regexp"
)

// ParentFolder is the one token with path-traversal meaning that the
// protocol accepts, and only for changing folders.
const ParentFolder = ".."

var (
	folderNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	fileNameRe   = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)
)

// ValidFolderName reports whether name is a plain folder name: letters,
// digits and underscores only. Separators, dots and empty names are
// rejected.
func ValidFolderName(name string) bool {
	return folderNameRe.MatchString(name)
}

// ValidFileName reports whether name is a plain file name. Unlike folder
// names, dots are allowed ("notes.txt"), separators still are not.
func ValidFileName(name string) bool {
	return fileNameRe.MatchString(name)
}

// Resolve joins name onto cwd and normalizes the result. Callers must
// validate name first; Resolve applies no sandbox policy of its own.
func Resolve(cwd, name string) string {
	return filepath.Clean(filepath.Join(cwd, name))
}
