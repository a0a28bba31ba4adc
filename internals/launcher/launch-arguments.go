package launcher

import (
	"context"
	"os"
	"os/exec"

	"github.com/minepkg/mclaunch/internals/natives"
	"github.com/minepkg/mclaunch/internals/versions"
)

// JVMOption is a single argument for the java runtime
type JVMOption string

// GameOption is a standalone game flag or a flag with a value
type GameOption struct {
	Name     string
	Value    string
	HasValue bool
}

// Args returns the option as command line arguments
func (o GameOption) Args() []string {
	if o.HasValue {
		return []string{o.Name, o.Value}
	}
	return []string{o.Name}
}

// LaunchArguments is everything needed to start a version.
// It is not modified after it was built.
type LaunchArguments struct {
	program     string
	mainClass   string
	jvmOptions  []JVMOption
	gameOptions []GameOption
	gameDir     string
	nativesDir  string
	natives     versions.NativeCollection
	extractor   *natives.Extractor
}

// Program returns the java binary
func (a *LaunchArguments) Program() string { return a.program }

// MainClass returns the java main class
func (a *LaunchArguments) MainClass() string { return a.mainClass }

// NativesDir returns the directory natives are extracted to
func (a *LaunchArguments) NativesDir() string { return a.nativesDir }

// JVMOptions returns a copy of the jvm options
func (a *LaunchArguments) JVMOptions() []JVMOption {
	return append([]JVMOption(nil), a.jvmOptions...)
}

// GameOptions returns a copy of the game options
func (a *LaunchArguments) GameOptions() []GameOption {
	return append([]GameOption(nil), a.gameOptions...)
}

// Natives returns a copy of the native archives
func (a *LaunchArguments) Natives() versions.NativeCollection {
	return append(versions.NativeCollection(nil), a.natives...)
}

// Args returns the jvm options, the main class and the game options
func (a *LaunchArguments) Args() []string {
	args := make([]string, 0, len(a.jvmOptions)+1+len(a.gameOptions)*2)
	for _, option := range a.jvmOptions {
		args = append(args, string(option))
	}
	args = append(args, a.mainClass)
	for _, option := range a.gameOptions {
		args = append(args, option.Args()...)
	}
	return args
}

// Command returns a command that runs the game inside the game directory.
// The command is not started.
func (a *LaunchArguments) Command(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, a.program, a.Args()...)
	cmd.Dir = a.gameDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// some things may rely on PWD
	cmd.Env = append(os.Environ(), "PWD="+a.gameDir)
	return cmd
}

// ExtractNatives extracts the native archives into the natives directory
// and returns the extracted file names
func (a *LaunchArguments) ExtractNatives() ([]string, error) {
	extractor := a.extractor
	if extractor == nil {
		extractor = natives.NewExtractor()
	}
	return extractor.Extract(a.natives, a.nativesDir)
}
