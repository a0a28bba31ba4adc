package launcher

import (
	"path/filepath"

	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/natives"
	"github.com/minepkg/mclaunch/internals/versions"
)

const (
	// DefaultLauncherName is passed to the game as launcher brand
	DefaultLauncherName = "mclaunch"
	// DefaultWidth is the default window width
	DefaultWidth = 854
	// DefaultHeight is the default window height
	DefaultHeight = 480
	// DefaultLanguage is the default game language
	DefaultLanguage = "en-us"
	// DefaultMaxMemoryMiB is the default maximum heap size
	DefaultMaxMemoryMiB = 2048
)

// Launcher builds launch arguments for installed versions
type Launcher struct {
	// GameDir contains saves, mods, options etc.
	GameDir string
	// AssetsDir contains sounds, language files and some textures
	AssetsDir string
	// LibrariesDir contains the library jars
	LibrariesDir string
	// Versions reads the version files
	Versions *versions.Manager

	// Java is the java binary to launch with
	Java string
	// Session is the (already authenticated) user
	Session minecraft.LaunchAuthData

	LauncherName    string
	LauncherVersion string

	// Width and Height set the window resolution
	Width  int
	Height int
	// Language is the game language, like "en-us"
	Language string

	// MaxMemoryMiB sets the maximum heap size
	MaxMemoryMiB int
	// AutoMemory sizes the heap by the available system memory and ignores MaxMemoryMiB
	AutoMemory bool

	// Platform selects libraries and natives
	Platform minecraft.Platform

	// Extractor is used to extract natives of launched versions
	Extractor *natives.Extractor
}

// New returns a launcher for the given game directory.
// Assets, libraries and versions are expected inside the game directory.
func New(gameDir string, session minecraft.LaunchAuthData) *Launcher {
	return &Launcher{
		GameDir:      gameDir,
		AssetsDir:    filepath.Join(gameDir, "assets"),
		LibrariesDir: filepath.Join(gameDir, "libraries"),
		Versions:     versions.NewManager(filepath.Join(gameDir, "versions")),
		Java:         "java",
		Session:      session,
		LauncherName: DefaultLauncherName,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Language:     DefaultLanguage,
		MaxMemoryMiB: DefaultMaxMemoryMiB,
		Platform:     minecraft.CurrentPlatform(),
		Extractor:    natives.NewExtractor(),
	}
}

// cpSeparator returns the classpath separator of the target platform
func (l *Launcher) cpSeparator() string {
	if l.Platform.OS == "windows" {
		return ";"
	}
	return ":"
}
