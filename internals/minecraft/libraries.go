package minecraft

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
)

// defaultLibraryURL is used for libraries that neither define an url nor downloads
const defaultLibraryURL = "https://libraries.minecraft.net/"

// ErrMalformedCoordinate is returned for library names that are not "group:artifact:version"
var ErrMalformedCoordinate = errors.New("library name is not a group:artifact:version coordinate")

// Libraries as a collection of minecraft libs
type Libraries []Library

// Library is a minecraft library as listed in a version file
type Library struct {
	// Name is the maven coordinate "group:artifact:version"
	Name string
	// Native is set for libraries that have to be extracted instead of being put on the classpath
	Native bool
	// Downloads decides which artifact is used on which platform.
	// It is shared between copies of the library and never modified.
	Downloads *DownloadStrategy
	// ExtractExclude contains path prefixes that should not be extracted from native archives
	ExtractExclude []string
}

// Classified is an artifact for a specific platform
type Classified struct {
	Classifier string
	Artifact   Artifact
}

// DownloadStrategy maps platforms to the artifact that should be used
type DownloadStrategy struct {
	// Classifiers is keyed by [Platform.Key], for example "64bit linux"
	Classifiers map[string]Classified
	// Default is used if no classifier matches the platform
	Default *Artifact
	Rules   Rules
}

// Allowed reports if the library is used on the given os
func (d *DownloadStrategy) Allowed(os string) bool {
	return d != nil && d.Rules.Allows(os)
}

// Select returns the classifier and artifact to use on the given platform.
// The default artifact comes with an empty classifier. false is returned
// if the library is not used on this platform.
func (d *DownloadStrategy) Select(p Platform) (string, Artifact, bool) {
	if !d.Allowed(p.OS) {
		return "", Artifact{}, false
	}
	if c, ok := d.Classifiers[p.Key()]; ok {
		return c.Classifier, c.Artifact, true
	}
	if d.Default != nil {
		return "", *d.Default, true
	}
	return "", Artifact{}, false
}

// Artifact returns the artifact to download for the given platform
func (l *Library) Artifact(p Platform) (Artifact, bool) {
	_, artifact, ok := l.Downloads.Select(p)
	return artifact, ok
}

// Filepath returns the slash separated path of the jar relative to the libraries folder.
// false is returned if the library does not apply to the platform or its name is malformed.
func (l *Library) Filepath(p Platform) (string, bool) {
	classifier, _, ok := l.Downloads.Select(p)
	if !ok {
		return "", false
	}
	libPath, err := CoordinatePath(l.Name, classifier, false)
	if err != nil {
		return "", false
	}
	return libPath, true
}

// LocalPath returns the path of the jar inside the given libraries directory
func (l *Library) LocalPath(librariesDir string, p Platform) (string, bool) {
	libPath, ok := l.Filepath(p)
	if !ok {
		return "", false
	}
	return filepath.Join(librariesDir, filepath.FromSlash(libPath)), true
}

// CoordinatePath converts a maven coordinate to its repository path
// "group/as/dirs/artifact/version/artifact-version[-classifier].jar[.pack.xz]"
func CoordinatePath(name string, classifier string, packed bool) (string, error) {
	grouped := strings.SplitN(name, ":", 3)
	if len(grouped) != 3 {
		return "", ErrMalformedCoordinate
	}
	group, artifact, version := grouped[0], grouped[1], grouped[2]

	ext := "jar"
	if packed {
		ext = "jar.pack.xz"
	}
	file := artifact + "-" + version
	if classifier != "" {
		file += "-" + classifier
	}

	return strings.ReplaceAll(group, ".", "/") + "/" + artifact + "/" + version + "/" + file + "." + ext, nil
}

type libraryJSON struct {
	Name      string          `json:"name"`
	URL       string          `json:"url"`
	Checksums json.RawMessage `json:"checksums"`
	Extract   struct {
		Exclude []string `json:"exclude"`
	} `json:"extract"`
	Natives   map[string]string `json:"natives"`
	Rules     Rules             `json:"rules"`
	Downloads json.RawMessage   `json:"downloads"`
}

type libraryDownloadsJSON struct {
	Artifact *Artifact `json:"artifact"`
	// Classifiers is only used for native libraries. The `natives` field
	// decides which classifier is used on which os.
	Classifiers map[string]Artifact `json:"classifiers"`
}

var archBits = []string{"32", "64"}

// UnmarshalJSON builds the download strategy of a library entry.
// Libraries with explicit downloads use them, all others get urls derived
// from their name and the url prefix.
func (l *Library) UnmarshalJSON(data []byte) error {
	var raw libraryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Name == "" {
		return errors.New("library is missing a name")
	}

	strategy := &DownloadStrategy{
		Classifiers: make(map[string]Classified),
		Rules:       raw.Rules,
	}

	if raw.URL == "" && isJSONKind(raw.Downloads, '{') {
		var downloads libraryDownloadsJSON
		if err := json.Unmarshal(raw.Downloads, &downloads); err != nil {
			return err
		}
		for os, template := range raw.Natives {
			for _, bits := range archBits {
				classifier := strings.ReplaceAll(template, "${arch}", bits)
				if artifact, ok := downloads.Classifiers[classifier]; ok {
					strategy.Classifiers[bits+"bit "+os] = Classified{classifier, artifact}
				}
			}
		}
		strategy.Default = downloads.Artifact
	} else {
		prefix := raw.URL
		if prefix == "" {
			prefix = defaultLibraryURL
		}
		packed := isJSONKind(raw.Checksums, '[')
		kind := ArtifactRaw
		if packed {
			kind = ArtifactPacked
		}

		if len(raw.Natives) == 0 {
			if suffix, err := CoordinatePath(raw.Name, "", packed); err == nil {
				strategy.Default = &Artifact{Kind: kind, Path: suffix, URL: prefix + suffix}
			}
		}
		for os, template := range raw.Natives {
			for _, bits := range archBits {
				classifier := strings.ReplaceAll(template, "${arch}", bits)
				suffix, err := CoordinatePath(raw.Name, classifier, packed)
				if err != nil {
					continue
				}
				strategy.Classifiers[bits+"bit "+os] = Classified{
					Classifier: classifier,
					Artifact:   Artifact{Kind: kind, Path: suffix, URL: prefix + suffix},
				}
			}
		}
	}

	*l = Library{
		Name:           raw.Name,
		Native:         len(raw.Natives) != 0,
		Downloads:      strategy,
		ExtractExclude: raw.Extract.Exclude,
	}
	return nil
}

// isJSONKind checks the first byte of a raw json value ('{' for objects, '[' for arrays)
func isJSONKind(data json.RawMessage, kind byte) bool {
	trimmed := strings.TrimSpace(string(data))
	return len(trimmed) != 0 && trimmed[0] == kind
}
