package cmd

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/minepkg/mclaunch/internals/auth"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/minepkg/mclaunch/internals/utils"
	"github.com/spf13/viper"
)

// defaultGameDir returns the directory the official launcher installs to
func defaultGameDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, ".minecraft"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", ".minecraft"), nil
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "minecraft"), nil
	default:
		return filepath.Join(home, ".minecraft"), nil
	}
}

// newLauncher returns a launcher configured by config file, env and flags
func newLauncher(overwrites *launcher.OverwriteFlags) (*launcher.Launcher, error) {
	gameDir := viper.GetString("gamedir")
	if gameDir == "" {
		var err error
		if gameDir, err = defaultGameDir(); err != nil {
			return nil, err
		}
	}

	session, err := auth.Offline(viper.GetString("playername"))
	if err != nil {
		return nil, &commands.CliError{
			Text:        "invalid player name",
			Err:         err,
			Suggestions: []string{"Set one with: mclaunch config set playername <name>"},
		}
	}

	l := launcher.New(gameDir, session)
	l.Java = viper.GetString("java")
	l.LauncherName = viper.GetString("launchername")
	l.LauncherVersion = Version
	l.MaxMemoryMiB = viper.GetInt("ram")
	l.AutoMemory = viper.GetBool("autoram")
	l.Width = viper.GetInt("width")
	l.Height = viper.GetInt("height")
	l.Language = viper.GetString("language")

	if overwrites != nil {
		l.ApplyOverWrites(overwrites)
	}
	return l, nil
}

// versionArg returns the version id passed as argument. Without an argument
// the user can pick an installed version if this is an interactive terminal.
func versionArg(l *launcher.Launcher, args []string) (string, error) {
	if len(args) != 0 {
		return args[0], nil
	}

	installed, err := l.Versions.Installed()
	if err != nil {
		return "", err
	}
	if len(installed) == 0 {
		return "", &commands.CliError{
			Text: "no versions are installed in " + l.Versions.Dir(),
			Suggestions: []string{
				"Install a version with the official launcher first",
				"Use --gamedir to point to another game directory",
			},
		}
	}
	if !launcher.IsTerminal() {
		return "", &commands.CliError{
			Text:        "no version given",
			Suggestions: []string{"Pass one of the installed versions, for example: " + installed[0]},
		}
	}

	return utils.SelectVersion(installed)
}
