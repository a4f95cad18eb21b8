package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DateSuffix returns the date portion in "02.01.2006" format.
func DateSuffix(t time.Time) string {
	return t.Format("02.01.2006")
}

// BuildPath returns a file path of the form base + suffix + "_" + date + ext.
// Files are appended to on subsequent writes, so no collision counter is needed.
func BuildPath(base, suffix, ext string, t time.Time) string {
	return fmt.Sprintf("%s%s_%s%s", base, suffix, DateSuffix(t), ext)
}

// ResolveOutput maps an output argument to a file path. A directory (existing,
// or written with a trailing separator) gets a dated "tips_<date><ext>" file.
func ResolveOutput(arg, ext string, t time.Time) string {
	if arg == "" {
		return ""
	}
	if os.IsPathSeparator(arg[len(arg)-1]) || isDir(arg) {
		return BuildPath(filepath.Join(arg, "tips"), "", ext, t)
	}
	return arg
}

// EnsureDir creates the directory component of path (equivalent to mkdir -p)
// with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
