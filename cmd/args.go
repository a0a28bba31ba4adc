package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/minepkg/mclaunch/internals/shellargs"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	runner := &argsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "args [version]",
		Short: "Prints the command that launches a version",
		Long: `Prints the command that launches a version.
The command is not started. Use --extract to also extract the natives it needs.`,
		Args: cobra.MaximumNArgs(1),
	}, runner)

	cmd.Flags().StringVarP(&runner.format, "format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&runner.extract, "extract", false, "Extract natives into the natives directory")
	runner.overwrites = launcher.CmdOverwriteFlags(cmd.Command)

	rootCmd.AddCommand(cmd.Command)
}

type argsRunner struct {
	format     string
	extract    bool
	overwrites *launcher.OverwriteFlags
}

type nativeOutput struct {
	Path    string   `json:"path" yaml:"path"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

type argsOutput struct {
	Program     string         `json:"program" yaml:"program"`
	MainClass   string         `json:"mainClass" yaml:"mainClass"`
	JVMOptions  []string       `json:"jvmOptions" yaml:"jvmOptions"`
	GameOptions []string       `json:"gameOptions" yaml:"gameOptions"`
	NativesDir  string         `json:"nativesDir" yaml:"nativesDir"`
	Natives     []nativeOutput `json:"natives" yaml:"natives"`
	Command     []string       `json:"command" yaml:"command"`
}

func newArgsOutput(args *launcher.LaunchArguments) *argsOutput {
	out := &argsOutput{
		Program:     args.Program(),
		MainClass:   args.MainClass(),
		JVMOptions:  make([]string, 0),
		GameOptions: make([]string, 0),
		NativesDir:  args.NativesDir(),
		Natives:     make([]nativeOutput, 0),
		Command:     append([]string{args.Program()}, args.Args()...),
	}
	for _, option := range args.JVMOptions() {
		out.JVMOptions = append(out.JVMOptions, string(option))
	}
	for _, option := range args.GameOptions() {
		out.GameOptions = append(out.GameOptions, option.Args()...)
	}
	for _, native := range args.Natives() {
		out.Natives = append(out.Natives, nativeOutput{Path: native.Path, Exclude: native.Exclude})
	}
	return out
}

func (a *argsRunner) RunE(cmd *cobra.Command, args []string) error {
	switch a.format {
	case "text", "json", "yaml":
	default:
		return &commands.CliError{
			Text:        fmt.Sprintf("unknown format %q", a.format),
			Suggestions: []string{"Use one of: text, json, yaml"},
		}
	}

	l, err := newLauncher(a.overwrites)
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

	if a.extract {
		if _, err := extractNatives(launchArgs, ""); err != nil {
			return explain(err, id)
		}
	}

	out := newArgsOutput(launchArgs)
	switch a.format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		fmt.Println(shellargs.Join(out.Command))
		return nil
	}
}
