package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/cmd/config"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set by main
var Version = "dev"

var (
	cfgFile       string
	disableColors bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mclaunch",
	Short: "Resolves launch arguments of installed Minecraft versions",
	Long: `Resolves launch arguments of installed (pre 1.13) Minecraft versions
and mod loader versions that inherit from them.`,

	Example: `
  mclaunch versions
  mclaunch args 1.12.2-forge14.23.5.2768 --format json
  mclaunch natives 1.8.9`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mclaunch.toml)")
	rootCmd.PersistentFlags().String("gamedir", "", "game directory (default is the .minecraft directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print warnings about version files")
	rootCmd.PersistentFlags().BoolVarP(&disableColors, "no-color", "", false, "disable color output")
	viper.BindPFlag("gamedir", rootCmd.PersistentFlags().Lookup("gamedir"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("java", "java")
	viper.SetDefault("playername", "Player")
	viper.SetDefault("launchername", launcher.DefaultLauncherName)
	viper.SetDefault("ram", launcher.DefaultMaxMemoryMiB)
	viper.SetDefault("autoram", false)
	viper.SetDefault("width", launcher.DefaultWidth)
	viper.SetDefault("height", launcher.DefaultHeight)
	viper.SetDefault("language", launcher.DefaultLanguage)

	rootCmd.AddCommand(config.SubCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		gchalk.SetLevel(gchalk.LevelNone)
		commands.EmojiEnabled = false
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".mclaunch" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".mclaunch")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("mclaunch")
	viper.AutomaticEnv() // read in environment variables that match

	err := viper.ReadInConfig()

	if !viper.GetBool("verbose") {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
	if err == nil {
		log.Println("[INFO] using config file:", viper.ConfigFileUsed())
	}
}
