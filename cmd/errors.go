package cmd

import (
	"io/fs"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/natives"
	"github.com/minepkg/mclaunch/internals/shellargs"
	"github.com/minepkg/mclaunch/internals/versions"
	"github.com/pkg/errors"
)

// explain turns errors of resolving version id into errors with help texts
func explain(err error, id string) error {
	var unavailable *versions.DescriptorUnavailableError
	var cycle *versions.InheritanceCycleError
	var archive *natives.ArchiveError

	switch {
	case errors.As(err, &unavailable):
		text := "version " + unavailable.ID + " is not installed"
		if unavailable.ID != id {
			text = "version " + id + " inherits from " + unavailable.ID + ", which is not installed"
		}
		return &commands.CliError{
			Code: "version-missing",
			Text: text,
			Help: "Expected a version file at " + unavailable.Path,
			Suggestions: []string{
				"Run \"mclaunch versions\" to list installed versions",
				"Start " + unavailable.ID + " once with the official launcher to install it",
			},
		}
	case errors.As(err, &cycle):
		return &commands.CliError{
			Code: "inherit-cycle",
			Text: "the version files of " + id + " inherit from each other",
			Err:  err,
			Help: "Check the \"inheritsFrom\" field of these version files",
		}
	case errors.Is(err, shellargs.ErrTemplateParse):
		return &commands.CliError{
			Code: "bad-arguments",
			Text: "version " + id + " has invalid launch arguments",
			Err:  err,
			Help: "Check the \"minecraftArguments\" field of the version file",
		}
	case errors.As(err, &archive):
		return &commands.CliError{
			Code:        "natives",
			Text:        "could not extract natives of " + id,
			Err:         err,
			Suggestions: []string{"Delete " + archive.Path + " and start " + id + " with the official launcher to download it again"},
		}
	case errors.Is(err, fs.ErrNotExist):
		return &commands.CliError{
			Code:        "library-missing",
			Text:        "a library of " + id + " is missing",
			Err:         err,
			Suggestions: []string{"Start " + id + " once with the official launcher to download all libraries"},
		}
	default:
		return errors.Wrap(err, "could not resolve "+id)
	}
}
