package minecraft

import "encoding/json"

// ArtifactKind tells how an artifact has to be fetched
type ArtifactKind uint8

const (
	// ArtifactRaw is a plain file that only has an url
	ArtifactRaw ArtifactKind = iota
	// ArtifactHashed has a known size and sha1 sum
	ArtifactHashed
	// ArtifactPacked is a .pack.xz archive that has to be unpacked after downloading
	ArtifactPacked
)

func (k ArtifactKind) String() string {
	switch k {
	case ArtifactHashed:
		return "hashed"
	case ArtifactPacked:
		return "packed"
	default:
		return "raw"
	}
}

// Artifact is an object describing a "thing" that can be downloaded.
// Only the URL matters for resolving; size and hash are passed through
// to whatever downloads the file.
type Artifact struct {
	Kind ArtifactKind `json:"-"`
	// Path of the jar file relative to the libraries folder
	// Path is not set for the minecraft client itself
	Path string `json:"path,omitempty"`
	Sha1 string `json:"sha1,omitempty"`
	// Size in bytes
	Size json.Number `json:"size,omitempty"`
	// URL to download the file
	URL string `json:"url"`
}

// UnmarshalJSON sets the kind depending on the presence of size and sha1
func (a *Artifact) UnmarshalJSON(data []byte) error {
	type plain Artifact
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Artifact(raw)
	a.Kind = ArtifactRaw
	if a.Sha1 != "" && a.Size != "" {
		a.Kind = ArtifactHashed
	}
	return nil
}
