package launcher

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/shellargs"
	"github.com/minepkg/mclaunch/internals/versions"
)

type testSession struct{}

func (testSession) GetAccessToken() string { return "token" }
func (testSession) GetUUID() string        { return "0123456789abcdef0123456789abcdef" }
func (testSession) GetPlayerName() string  { return "Steve" }
func (testSession) GetUserType() string    { return "legacy" }

var linux64 = minecraft.Platform{Bits: "64", OS: "linux"}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// testLauncher returns a launcher for a temporary game directory with the given version files
func testLauncher(t *testing.T, versionFiles map[string]string) *Launcher {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	l := New(root, testSession{})
	l.Platform = linux64
	l.Java = "/usr/bin/java"
	for id, content := range versionFiles {
		writeFile(t, filepath.Join(root, "versions", id, id+".json"), content)
	}
	return l
}

func (l *Launcher) lib(parts ...string) string {
	return filepath.Join(append([]string{l.LibrariesDir}, parts...)...)
}

const (
	vanilla = `{
		"id": "1.0",
		"type": "release",
		"mainClass": "net.minecraft.client.main.Main",
		"assets": "legacy",
		"minecraftArguments": "--username ${auth_player_name} --version ${version_name} --demo --gameDir ${game_directory} --session ${auth_session} --unknown ${nope}",
		"libraries": [
			{"name": "g:a:1"},
			{"name": "org.lwjgl:lwjgl-platform:2.9.4", "natives": {"linux": "natives-linux"}, "extract": {"exclude": ["META-INF/"]}}
		]
	}`
	forge = `{
		"id": "1.0-forge",
		"type": "release",
		"inheritsFrom": "1.0",
		"mainClass": "net.minecraft.launchwrapper.Launch",
		"libraries": [{"name": "g:c:3"}]
	}`
)

func TestLauncher_ToArguments(t *testing.T) {
	l := testLauncher(t, map[string]string{"1.0": vanilla, "1.0-forge": forge})
	l.MaxMemoryMiB = 1024
	writeFile(t, l.lib("g", "a", "1", "a-1.jar"), "")
	writeFile(t, l.lib("g", "c", "3", "c-3.jar"), "")

	args, err := l.ToArguments("1.0-forge")
	if err != nil {
		t.Fatal(err)
	}

	versionsDir := l.Versions.Dir()
	primaryJar := filepath.Join(versionsDir, "1.0", "1.0.jar")
	nativesDir := filepath.Join(versionsDir, "1.0-forge", "1.0-forge-natives-linux-64")
	classpath := l.lib("g", "a", "1", "a-1.jar") + ":" + l.lib("g", "c", "3", "c-3.jar") + ":" +
		filepath.Join(versionsDir, "1.0-forge", "1.0-forge.jar")

	if args.Program() != "/usr/bin/java" {
		t.Errorf("Unexpected program '%s'", args.Program())
	}
	if args.MainClass() != "net.minecraft.launchwrapper.Launch" {
		t.Errorf("Unexpected main class '%s'", args.MainClass())
	}
	if args.NativesDir() != nativesDir {
		t.Errorf("Unexpected natives dir '%s'", args.NativesDir())
	}

	wantJVM := []JVMOption{
		"-Xmn128m",
		"-Xmx1024m",
		"-XX:+UseG1GC",
		"-XX:-UseAdaptiveSizePolicy",
		"-XX:-OmitStackTraceInFastThrow",
		"-Dfml.ignoreInvalidMinecraftCertificates=true",
		"-Dfml.ignorePatchDiscrepancies=true",
		JVMOption("-Djava.library.path=" + nativesDir),
		"-Dminecraft.launcher.brand=mclaunch",
		"-Dminecraft.launcher.version=",
		JVMOption("-Dminecraft.client.jar=" + primaryJar),
		"-cp",
		JVMOption(classpath),
	}
	if got := args.JVMOptions(); !reflect.DeepEqual(got, wantJVM) {
		t.Errorf("JVMOptions() = %v\nwant %v", got, wantJVM)
	}

	wantGame := []GameOption{
		{Name: "--username", Value: "Steve", HasValue: true},
		{Name: "--version", Value: "1.0-forge", HasValue: true},
		{Name: "--demo"},
		{Name: "--gameDir", Value: l.GameDir, HasValue: true},
		{Name: "--session", Value: "token:token:0123456789abcdef0123456789abcdef", HasValue: true},
		{Name: "--unknown", Value: "", HasValue: true},
		{Name: "--width", Value: "854", HasValue: true},
		{Name: "--height", Value: "480", HasValue: true},
	}
	if got := args.GameOptions(); !reflect.DeepEqual(got, wantGame) {
		t.Errorf("GameOptions() = %v\nwant %v", got, wantGame)
	}

	wantNatives := versions.NativeCollection{{
		Path:    l.lib("org", "lwjgl", "lwjgl-platform", "2.9.4", "lwjgl-platform-2.9.4-natives-linux.jar"),
		Exclude: []string{"META-INF/"},
	}}
	if got := args.Natives(); !reflect.DeepEqual(got, wantNatives) {
		t.Errorf("Natives() = %v, want %v", got, wantNatives)
	}
}

func TestLauncher_ToArguments_errors(t *testing.T) {
	l := testLauncher(t, map[string]string{
		"1.0":    vanilla,
		"broken": `{"inheritsFrom": "1.0", "minecraftArguments": "--title 'unterminated"}`,
		"orphan": `{"inheritsFrom": "gone", "mainClass": "Main"}`,
		"bare":   `{}`,
	})
	writeFile(t, l.lib("g", "a", "1", "a-1.jar"), "")

	tests := []struct {
		id  string
		err error
	}{
		{"1.12.2", versions.ErrDescriptorUnavailable},
		{"broken", shellargs.ErrTemplateParse},
		{"orphan", versions.ErrDescriptorUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			args, err := l.ToArguments(tt.id)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ToArguments() error = %v, want %v", err, tt.err)
			}
			if args != nil {
				t.Errorf("Expected no arguments on error, got %v", args)
			}
		})
	}

	// a library that applies but is not downloaded
	if err := os.Remove(l.lib("g", "a", "1", "a-1.jar")); err != nil {
		t.Fatal(err)
	}
	if _, err := l.ToArguments("1.0"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not exist error, got %v", err)
	}

	l.Session = nil
	if _, err := l.ToArguments("bare"); !errors.Is(err, ErrNoSession) {
		t.Errorf("Expected ErrNoSession, got %v", err)
	}
}

func TestLauncher_GameOptions(t *testing.T) {
	l := testLauncher(t, map[string]string{
		"none":       `{"mainClass": "Main"}`,
		"none-child": `{"inheritsFrom": "none"}`,
		"empty":      `{"minecraftArguments": ""}`,
		"positional": `{"minecraftArguments": "a --b --c d e --f"}`,
		"inherited":  `{"inheritsFrom": "positional"}`,
	})
	l.Width = 1280
	l.Height = 720
	r := resolver(map[string]string{"resolution_width": "1280", "resolution_height": "720"})
	size := []GameOption{
		{Name: "--width", Value: "1280", HasValue: true},
		{Name: "--height", Value: "720", HasValue: true},
	}
	positional := append([]GameOption{
		{Name: "a"},
		{Name: "--b"},
		{Name: "--c", Value: "d", HasValue: true},
		{Name: "e"},
		{Name: "--f"},
	}, size...)

	tests := []struct {
		id   string
		want []GameOption
	}{
		{"none", []GameOption{}},
		{"none-child", []GameOption{}},
		{"empty", size},
		{"positional", positional},
		{"inherited", positional},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := l.GameOptions(tt.id, r)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GameOptions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLauncher_JVMOptions_windows(t *testing.T) {
	l := New(t.TempDir(), testSession{})
	l.Platform = minecraft.Platform{Bits: "64", OS: "windows"}

	options, err := l.JVMOptions(shellargs.MapResolver{})
	if err != nil {
		t.Fatal(err)
	}
	if options[7] != windowsHeapDump {
		t.Errorf("Expected the heap dump option after the baseline, got %v", options)
	}
	if options[1] != "-Xmx2048m" {
		t.Errorf("Expected the default heap size, got %s", options[1])
	}

	l.Platform = linux64
	options, err = l.JVMOptions(shellargs.MapResolver{})
	if err != nil {
		t.Fatal(err)
	}
	for _, option := range options {
		if option == windowsHeapDump {
			t.Error("Expected no heap dump option on linux")
		}
	}
}

func Test_autoHeapMiB(t *testing.T) {
	const gib = 1024 * 1024 * 1024
	tests := []struct {
		name  string
		total uint64
		want  int
	}{
		{"unknown", 0, 0},
		{"1GiB", 1 * gib, 870},
		{"2GiB", 2 * gib, 1024},
		{"8GiB", 8 * gib, 2048},
		{"32GiB", 32 * gib, 8192},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := autoHeapMiB(tt.total); got != tt.want {
				t.Errorf("autoHeapMiB() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLaunchArguments_Args(t *testing.T) {
	args := &LaunchArguments{
		program:    "java",
		mainClass:  "Main",
		jvmOptions: []JVMOption{"-Xmx1024m", "-cp", "a.jar"},
		gameOptions: []GameOption{
			{Name: "--demo"},
			{Name: "--username", Value: "Steve", HasValue: true},
			{Name: "--title", Value: "", HasValue: true},
		},
		gameDir: "/games/minecraft",
	}

	want := []string{"-Xmx1024m", "-cp", "a.jar", "Main", "--demo", "--username", "Steve", "--title", ""}
	if got := args.Args(); !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %q, want %q", got, want)
	}

	cmd := args.Command(context.Background())
	if cmd.Dir != "/games/minecraft" {
		t.Errorf("Unexpected working dir '%s'", cmd.Dir)
	}
	if !reflect.DeepEqual(cmd.Args[1:], want) {
		t.Errorf("cmd.Args = %q, want %q", cmd.Args[1:], want)
	}
	if cmd.Process != nil {
		t.Error("Expected the command not to be started")
	}

	// the accessors return copies
	args.JVMOptions()[0] = "-Xmx1m"
	if args.jvmOptions[0] != "-Xmx1024m" {
		t.Error("Expected JVMOptions() to return a copy")
	}
}

func TestLaunchArguments_ExtractNatives(t *testing.T) {
	l := testLauncher(t, map[string]string{"1.0": vanilla})
	writeFile(t, l.lib("g", "a", "1", "a-1.jar"), "")

	archive := l.lib("org", "lwjgl", "lwjgl-platform", "2.9.4", "lwjgl-platform-2.9.4-natives-linux.jar")
	if err := os.MkdirAll(filepath.Dir(archive), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(archive)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(f)
	for _, name := range []string{"liblwjgl64.so", "META-INF/MANIFEST.MF"} {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte(name))
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	args, err := l.ToArguments("1.0")
	if err != nil {
		t.Fatal(err)
	}
	extracted, err := args.ExtractNatives()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(extracted, []string{"liblwjgl64.so"}) {
		t.Errorf("ExtractNatives() = %v", extracted)
	}
	if _, err := os.Stat(filepath.Join(args.NativesDir(), "liblwjgl64.so")); err != nil {
		t.Error(err)
	}
}

func TestLauncher_ApplyOverWrites(t *testing.T) {
	l := New("/games/minecraft", testSession{})
	l.ApplyOverWrites(&OverwriteFlags{Ram: 4096, Width: 1920, Language: "de-de"})

	if l.HeapMiB() != 4096 || l.Width != 1920 || l.Height != DefaultHeight || l.Language != "de-de" {
		t.Errorf("Unexpected launcher after overwrites %+v", l)
	}
	if l.LibrariesDir != filepath.Join("/games/minecraft", "libraries") {
		t.Errorf("Unexpected libraries dir '%s'", l.LibrariesDir)
	}
}
