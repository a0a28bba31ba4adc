package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configKindString = iota
	configKindBool
	configKindInt
)

type configEntry struct {
	kind int
	help string
}

var config = map[string]configEntry{
	"gamedir":      {configKindString, "game directory containing versions, libraries and assets"},
	"java":         {configKindString, "java binary to launch with"},
	"playername":   {configKindString, "player name of the offline session"},
	"launchername": {configKindString, "launcher name passed to the game"},
	"ram":          {configKindInt, "maximum heap size in MiB"},
	"autoram":      {configKindBool, "size the heap by the available system memory"},
	"width":        {configKindInt, "window width"},
	"height":       {configKindInt, "window height"},
	"language":     {configKindString, "game language, like en-us"},
	"verbose":      {configKindBool, "print warnings about version files"},
}

// SubCmd is the config command
var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}

// configPath returns the config file that was read or the default one
func configPath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mclaunch.toml"), nil
}
