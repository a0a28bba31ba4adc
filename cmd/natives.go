package cmd

import (
	"fmt"
	"os"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/spf13/cobra"
)

func init() {
	runner := &nativesRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "natives [version]",
		Short: "Extracts the native libraries of a version",
		Args:  cobra.MaximumNArgs(1),
	}, runner)
	cmd.Flags().BoolVarP(&runner.list, "list", "l", false, "List the extracted files")

	rootCmd.AddCommand(cmd.Command)
}

type nativesRunner struct {
	list bool
}

// extractNatives extracts natives with a spinner on stderr. msg is
// printed instead if stderr is not a terminal (and msg not empty).
func extractNatives(args *launcher.LaunchArguments, msg string) ([]string, error) {
	spinner := launcher.NewMaybeSpinner(os.Stderr, msg)
	spinner.Start()
	defer spinner.Stop()

	return args.ExtractNatives()
}

func (n *nativesRunner) RunE(cmd *cobra.Command, args []string) error {
	l, err := newLauncher(nil)
	if err != nil {
		return err
	}
	id, err := versionArg(l, args)
	if err != nil {
		return err
	}

	launchArgs, err := l.ToArguments(id)
	if err != nil {
		return explain(err, id)
	}

	extracted, err := extractNatives(launchArgs, "Extracting natives")
	if err != nil {
		return explain(err, id)
	}

	fmt.Printf(
		"%sExtracted %s from %d archives to\n  %s\n",
		commands.Emoji("📦 "),
		gchalk.Bold(fmt.Sprintf("%d files", len(extracted))),
		len(launchArgs.Natives()),
		commands.StyleDim.Render(launchArgs.NativesDir()),
	)
	if n.list {
		for _, name := range extracted {
			fmt.Println("  " + name)
		}
	}
	return nil
}
