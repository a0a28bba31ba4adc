// Package versions reads locally installed version files and resolves
// their inheritance chains.
package versions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"golang.org/x/exp/slices"
)

// Manager reads version files from a versions directory.
// Version files are read again on every call, nothing is cached.
type Manager struct {
	dir string
}

// NewManager returns a manager for the given versions directory
// (usually "<game dir>/versions")
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Dir returns the versions directory
func (m *Manager) Dir() string {
	return m.dir
}

// DescriptorPath returns the path of the version file for id
func (m *Manager) DescriptorPath(id string) string {
	return filepath.Join(m.dir, id, id+".json")
}

// PrimaryJarPath returns the path of the jar with the given name
func (m *Manager) PrimaryJarPath(name string) string {
	return filepath.Join(m.dir, name, name+".jar")
}

// NativesDir returns the directory natives of version id get extracted to
func (m *Manager) NativesDir(id string, p minecraft.Platform) string {
	return filepath.Join(m.dir, id, fmt.Sprintf("%s-natives-%s-%s", id, p.OS, p.Bits))
}

// Load reads the version file of id. The returned descriptor always has
// id as ID, even if the file says otherwise.
func (m *Manager) Load(id string) (*minecraft.Descriptor, error) {
	p := m.DescriptorPath(id)
	buf, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DescriptorUnavailableError{ID: id, Path: p}
		}
		return nil, err
	}

	desc := &minecraft.Descriptor{}
	if err := json.Unmarshal(buf, desc); err != nil {
		return nil, fmt.Errorf("invalid version file %s: %w", p, err)
	}
	// versions are addressed by their directory name
	desc.ID = id
	return desc, nil
}

// Installed returns the ids of all versions that have a version file.
// Ids that are semantic versions come first, newest first.
func (m *Manager) Installed() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(m.DescriptorPath(entry.Name())); err == nil {
			ids = append(ids, entry.Name())
		}
	}
	slices.SortFunc(ids, newerFirst)
	return ids, nil
}

func newerFirst(a, b string) bool {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if va.Equal(vb) {
			return a < b
		}
		return va.GreaterThan(vb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
