package versions

import (
	"github.com/minepkg/mclaunch/internals/minecraft"
)

// walk visits id and its ancestors, child first. It stops as soon as visit
// returns true or the root version was visited. A parent is only loaded if
// the child did not stop the walk.
func (m *Manager) walk(id string, visit func(*minecraft.Descriptor) bool) error {
	seen := make(map[string]bool)
	chain := make([]string, 0, 4)

	next := id
	for {
		if seen[next] {
			return &InheritanceCycleError{ID: next, Chain: chain}
		}
		seen[next] = true
		chain = append(chain, next)

		desc, err := m.Load(next)
		if err != nil {
			return err
		}
		if visit(desc) || desc.InheritsFrom == "" {
			return nil
		}
		next = desc.InheritsFrom
	}
}

// resolveString returns the first value of field defined in the chain of id
func (m *Manager) resolveString(id string, field func(*minecraft.Descriptor) *string) (string, bool, error) {
	var value *string
	err := m.walk(id, func(d *minecraft.Descriptor) bool {
		value = field(d)
		return value != nil
	})
	if err != nil || value == nil {
		return "", false, err
	}
	return *value, true, nil
}

// MainClass returns the main class of version id
func (m *Manager) MainClass(id string) (string, bool, error) {
	return m.resolveString(id, func(d *minecraft.Descriptor) *string { return d.MainClass })
}

// JarName returns the jar name if any version in the chain overwrites it
func (m *Manager) JarName(id string) (string, bool, error) {
	return m.resolveString(id, func(d *minecraft.Descriptor) *string { return d.Jar })
}

// LegacyArguments returns the legacy argument template of version id
func (m *Manager) LegacyArguments(id string) (string, bool, error) {
	return m.resolveString(id, func(d *minecraft.Descriptor) *string { return d.MinecraftArguments })
}

// AssetIndex returns the asset index of version id. A version that only has a
// bare "assets" id gets an index reference built from it before the parent is asked.
func (m *Manager) AssetIndex(id string) (*minecraft.AssetIndex, bool, error) {
	var index *minecraft.AssetIndex
	err := m.walk(id, func(d *minecraft.Descriptor) bool {
		i, ok := d.OwnAssetIndex()
		index = i
		return ok
	})
	if err != nil || index == nil {
		return nil, false, err
	}
	return index, true, nil
}

// PrimaryJarName returns the jar name of version id. Without an explicit
// jar name the id of the root version is used, as mod loader versions
// run the jar of the version they inherit from.
func (m *Manager) PrimaryJarName(id string) (string, error) {
	name := id
	err := m.walk(id, func(d *minecraft.Descriptor) bool {
		if d.Jar != nil {
			name = *d.Jar
			return true
		}
		name = d.ID
		return false
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// Libraries returns the libraries of id and all of its ancestors.
// Libraries of the root version come first. Duplicates are kept.
func (m *Manager) Libraries(id string) (minecraft.Libraries, error) {
	levels := make([]minecraft.Libraries, 0, 2)
	count := 0
	err := m.walk(id, func(d *minecraft.Descriptor) bool {
		levels = append(levels, d.Libraries)
		count += len(d.Libraries)
		return false
	})
	if err != nil {
		return nil, err
	}

	libs := make(minecraft.Libraries, 0, count)
	for i := len(levels) - 1; i >= 0; i-- {
		libs = append(libs, levels[i]...)
	}
	return libs, nil
}
