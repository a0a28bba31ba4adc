package minecraft

// Descriptor is a version.json file of a single minecraft version
// or of a mod loader version inheriting from one.
// Fields that are nil are inherited from the version named in InheritsFrom.
type Descriptor struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Time        string `json:"time"`
	ReleaseTime string `json:"releaseTime"`
	// MinecraftArguments is the legacy (before 1.13) argument template
	MinecraftArguments *string `json:"minecraftArguments,omitempty"`
	MainClass          *string `json:"mainClass,omitempty"`
	// Jar overwrites the name of the primary jar
	Jar *string `json:"jar,omitempty"`
	// Assets is the bare asset index id used by old version files
	Assets     *string             `json:"assets,omitempty"`
	AssetIndex *AssetIndex         `json:"assetIndex,omitempty"`
	Libraries  Libraries           `json:"libraries"`
	Downloads  map[string]Artifact `json:"downloads"`
	// InheritsFrom names the parent version
	InheritsFrom string `json:"inheritsFrom,omitempty"`
}

// OwnAssetIndex returns the asset index defined by this descriptor itself.
// A bare assets id is turned into an index reference.
func (d *Descriptor) OwnAssetIndex() (*AssetIndex, bool) {
	switch {
	case d.AssetIndex != nil:
		return d.AssetIndex, true
	case d.Assets != nil:
		return NewAssetIndex(*d.Assets), true
	default:
		return nil, false
	}
}
