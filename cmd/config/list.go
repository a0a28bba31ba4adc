package config

import (
	"fmt"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func init() {
	runner := &listRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "list",
		Short: "Lists all config keys and their current values",
		Args:  cobra.NoArgs,
	}, runner)
	cmd.Flags().BoolVar(&runner.toml, "toml", false, "Print the values as toml")

	SubCmd.AddCommand(cmd.Command)
}

type listRunner struct {
	toml bool
}

// settings returns the current value of every known key
func settings() map[string]interface{} {
	values := make(map[string]interface{}, len(config))
	for key := range config {
		if value := viper.Get(key); value != nil {
			values[key] = value
		}
	}
	return values
}

func (l *listRunner) RunE(cmd *cobra.Command, args []string) error {
	if l.toml {
		tree, err := toml.TreeFromMap(settings())
		if err != nil {
			return err
		}
		out, err := tree.ToTomlString()
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	keys := maps.Keys(config)
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Printf("  %s = %v\n", gchalk.Bold(key), viper.Get(key))
		fmt.Println("    " + commands.StyleDim.Render(config[key].help))
	}
	return nil
}
