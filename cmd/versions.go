package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/utils"
	"github.com/spf13/cobra"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:     "versions",
		Aliases: []string{"ls"},
		Short:   "Lists installed versions",
		Args:    cobra.NoArgs,
	}, &versionsRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type versionsRunner struct{}

func (v *versionsRunner) RunE(cmd *cobra.Command, args []string) error {
	l, err := newLauncher(nil)
	if err != nil {
		return err
	}

	installed, err := l.Versions.Installed()
	if err != nil {
		return err
	}
	if len(installed) == 0 {
		fmt.Println("No versions installed in " + l.Versions.Dir())
		return nil
	}

	for _, id := range installed {
		desc, err := l.Versions.Load(id)
		if err != nil {
			fmt.Printf("  %s %s\n", utils.PrettyVersion(id), gchalk.Red("(invalid: "+err.Error()+")"))
			continue
		}

		details := desc.Type
		if desc.InheritsFrom != "" {
			details += " → " + desc.InheritsFrom
		}
		if released, err := time.Parse(time.RFC3339, desc.ReleaseTime); err == nil {
			details += ", released " + humanize.Time(released)
		}
		fmt.Printf("  %s %s\n", utils.PrettyVersion(id), commands.StyleDim.Render(details))
	}
	return nil
}
