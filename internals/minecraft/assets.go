package minecraft

import "encoding/json"

// legacyIndexURL is used for asset indexes that only have an id
const legacyIndexURL = "https://s3.amazonaws.com/Minecraft.Download/indexes/"

// AssetIndex references the asset index file of a version
type AssetIndex struct {
	ID        string      `json:"id"`
	Sha1      string      `json:"sha1,omitempty"`
	Size      json.Number `json:"size,omitempty"`
	TotalSize json.Number `json:"totalSize,omitempty"`
	URL       string      `json:"url,omitempty"`
	// Known is set if size and hash can be trusted
	Known bool `json:"known,omitempty"`
}

// NewAssetIndex returns an index reference that only knows its id.
// Old version files only contain a bare "assets" id.
func NewAssetIndex(id string) *AssetIndex {
	return &AssetIndex{ID: id}
}

// Artifact returns the download reference for this index
func (a *AssetIndex) Artifact() Artifact {
	switch {
	case a.Known && a.URL != "" && a.Sha1 != "" && a.Size != "":
		return Artifact{Kind: ArtifactHashed, URL: a.URL, Sha1: a.Sha1, Size: a.Size}
	case a.URL != "":
		return Artifact{Kind: ArtifactRaw, URL: a.URL}
	default:
		return Artifact{Kind: ArtifactRaw, URL: legacyIndexURL + a.ID + ".json"}
	}
}
