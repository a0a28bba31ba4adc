package cmd

import (
	"fmt"
	"strings"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/spf13/cobra"
)

func init() {
	runner := &classpathRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "classpath [version]",
		Short: "Prints the classpath of a version",
		Args:  cobra.MaximumNArgs(1),
	}, runner)
	cmd.Flags().StringVar(&runner.separator, "separator", "", "Classpath separator (default is the os list separator)")
	cmd.Flags().BoolVar(&runner.lines, "lines", false, "Print one entry per line")

	rootCmd.AddCommand(cmd.Command)
}

type classpathRunner struct {
	separator string
	lines     bool
}

func (c *classpathRunner) RunE(cmd *cobra.Command, args []string) error {
	l, err := newLauncher(nil)
	if err != nil {
		return err
	}
	id, err := versionArg(l, args)
	if err != nil {
		return err
	}

	sep := c.separator
	if c.lines {
		sep = "\n"
	}

	var cp string
	if sep == "" {
		cp, err = l.Versions.Classpath(id, l.LibrariesDir, l.Platform)
	} else {
		cp, err = l.Versions.ClasspathWithSeparator(id, l.LibrariesDir, l.Platform, sep)
	}
	if err != nil {
		return explain(err, id)
	}

	fmt.Println(strings.TrimSpace(cp))
	return nil
}
