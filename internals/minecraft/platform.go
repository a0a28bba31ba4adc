package minecraft

import (
	"runtime"
	"strconv"
)

// Platform is the (architecture, operating system) pair libraries are selected for
type Platform struct {
	// Bits is the pointer width as used in version files ("32" or "64")
	Bits string
	// OS is the os name as used in version files ("linux", "windows" or "osx")
	OS string
}

// CurrentPlatform returns the platform this binary runs on
func CurrentPlatform() Platform {
	return Platform{
		Bits: strconv.Itoa(strconv.IntSize),
		OS:   OSName(runtime.GOOS),
	}
}

// OSName converts a GOOS value to the name Mojang uses in version files
func OSName(goos string) string {
	if goos == "darwin" {
		return "osx"
	}
	return goos
}

// Key returns the lookup key for classifier maps, for example "64bit linux"
func (p Platform) Key() string {
	return p.Bits + "bit " + p.OS
}

func (p Platform) String() string {
	return p.OS + "-" + p.Bits
}
