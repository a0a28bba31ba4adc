package launcher

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OverwriteFlags are cli flags used to overwrite launch behavior
type OverwriteFlags struct {
	Java         string
	Ram          int
	AutoRam      bool
	Width        int
	Height       int
	Language     string
	LauncherName string
}

// CmdOverwriteFlags registers the overwrite flags on cmd
func CmdOverwriteFlags(cmd *cobra.Command) *OverwriteFlags {
	flags := OverwriteFlags{}
	cmd.Flags().StringVar(&flags.Java, "java", "", "Overwrite the Java binary to launch with")
	cmd.Flags().IntVar(&flags.Ram, "ram", 0, "Overwrite the amount of RAM in MiB to use")
	cmd.Flags().BoolVar(&flags.AutoRam, "autoRam", false, "Determine the amount of RAM by the available system memory")
	cmd.Flags().IntVar(&flags.Width, "width", 0, "Overwrite the window width")
	cmd.Flags().IntVar(&flags.Height, "height", 0, "Overwrite the window height")
	cmd.Flags().StringVar(&flags.Language, "language", "", "Overwrite the game language (like en-us)")
	cmd.Flags().StringVar(&flags.LauncherName, "launcherName", "", "Overwrite the launcher name passed to the game")

	return &flags
}

// ApplyOverWrites sets every flag that was passed on the launcher
func (l *Launcher) ApplyOverWrites(o *OverwriteFlags) {
	if o.Java != "" {
		fmt.Println("Java overwritten to: " + o.Java)
		l.Java = o.Java
	}
	if o.Ram != 0 {
		l.MaxMemoryMiB = o.Ram
		l.AutoMemory = false
	}
	if o.AutoRam {
		l.AutoMemory = true
	}
	if o.Width != 0 {
		l.Width = o.Width
	}
	if o.Height != 0 {
		l.Height = o.Height
	}
	if o.Language != "" {
		l.Language = o.Language
	}
	if o.LauncherName != "" {
		l.LauncherName = o.LauncherName
	}
}
