package versions

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/minepkg/mclaunch/internals/minecraft"
)

// NativeArchive is a native library archive and the entry prefixes
// that should not be extracted from it
type NativeArchive struct {
	Path    string
	Exclude []string
}

// NativeCollection lists native archives in library order
type NativeCollection []NativeArchive

// Classpath returns the classpath of version id joined with the os list separator
func (m *Manager) Classpath(id string, librariesDir string, p minecraft.Platform) (string, error) {
	return m.ClasspathWithSeparator(id, librariesDir, p, string(os.PathListSeparator))
}

// ClasspathWithSeparator returns the canonical paths of all non native
// libraries of version id, each followed by sep, and the jar of id itself last.
// Libraries that do not apply to the platform are left out, libraries
// that apply but are missing on disk are an error.
func (m *Manager) ClasspathWithSeparator(id string, librariesDir string, p minecraft.Platform, sep string) (string, error) {
	libs, err := m.Libraries(id)
	if err != nil {
		return "", err
	}

	var cp strings.Builder
	for _, lib := range libs {
		if lib.Native {
			continue
		}
		libPath, ok := lib.LocalPath(librariesDir, p)
		if !ok {
			continue
		}
		canonical, err := canonicalPath(libPath)
		if err != nil {
			return "", err
		}
		cp.WriteString(canonical)
		cp.WriteString(sep)
	}

	jar := m.PrimaryJarPath(id)
	if !utf8.ValidString(jar) {
		return "", &PathEncodingError{Path: jar}
	}
	cp.WriteString(jar)

	return cp.String(), nil
}

// NativeCollection returns the native archives of version id that apply to the platform
func (m *Manager) NativeCollection(id string, librariesDir string, p minecraft.Platform) (NativeCollection, error) {
	libs, err := m.Libraries(id)
	if err != nil {
		return nil, err
	}

	collection := make(NativeCollection, 0)
	for _, lib := range libs {
		if !lib.Native {
			continue
		}
		libPath, ok := lib.LocalPath(librariesDir, p)
		if !ok {
			continue
		}
		collection = append(collection, NativeArchive{Path: libPath, Exclude: lib.ExtractExclude})
	}
	return collection, nil
}

func canonicalPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(resolved) {
		return "", &PathEncodingError{Path: resolved}
	}
	return resolved, nil
}
