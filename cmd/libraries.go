package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/spf13/cobra"
)

func init() {
	runner := &librariesRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "libraries [version]",
		Short: "Lists the libraries of a version and whether they are downloaded",
		Args:  cobra.MaximumNArgs(1),
	}, runner)
	cmd.Flags().BoolVar(&runner.urls, "urls", false, "Also print download urls")
	cmd.Flags().BoolVarP(&runner.all, "all", "a", false, "Also list libraries that are not used on this platform")

	rootCmd.AddCommand(cmd.Command)
}

type librariesRunner struct {
	urls bool
	all  bool
}

func (r *librariesRunner) RunE(cmd *cobra.Command, args []string) error {
	l, err := newLauncher(nil)
	if err != nil {
		return err
	}
	id, err := versionArg(l, args)
	if err != nil {
		return err
	}

	libs, err := l.Versions.Libraries(id)
	if err != nil {
		return explain(err, id)
	}

	var missing int
	var totalSize uint64
	for _, lib := range libs {
		artifact, ok := lib.Artifact(l.Platform)
		if !ok {
			if r.all {
				fmt.Printf("  %s %s\n", gchalk.Gray("-"), gchalk.Gray(lib.Name+" (not used on "+l.Platform.String()+")"))
			}
			continue
		}

		status := gchalk.Green("✓")
		localPath, _ := lib.LocalPath(l.LibrariesDir, l.Platform)
		if _, err := os.Stat(localPath); err != nil {
			status = gchalk.Red("✗")
			missing++
		}

		details := ""
		if size, err := artifact.Size.Int64(); err == nil && size > 0 {
			totalSize += uint64(size)
			details = humanize.Bytes(uint64(size))
		}
		if lib.Native {
			details += " native"
		}
		fmt.Printf("  %s %s %s\n", status, lib.Name, commands.StyleDim.Render(details))
		if r.urls && artifact.URL != "" {
			fmt.Printf("      %s %s\n", gchalk.Gray(artifact.Kind.String()), artifact.URL)
		}
	}

	fmt.Println()
	summary := fmt.Sprintf("%d libraries", len(libs))
	if totalSize != 0 {
		summary += ", " + humanize.Bytes(totalSize) + " known size"
	}
	fmt.Println(commands.StyleGrass.Render(summary))
	if missing != 0 {
		return &commands.CliError{
			Text:        fmt.Sprintf("%d libraries of %s are not downloaded", missing, id),
			Suggestions: []string{"Start " + id + " once with the official launcher to download all libraries"},
		}
	}
	return nil
}
