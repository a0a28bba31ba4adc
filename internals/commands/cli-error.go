package commands

import (
	"fmt"
	"strings"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	Text string
	// Code is a short machine friendly kind like "version-missing"
	Code        string
	Suggestions []string
	Help        string
	// Err is the underlying error, if any
	Err error
}

func (e *CliError) Error() string {
	if e.Err != nil {
		return e.Text + ": " + e.Err.Error()
	}
	return e.Text
}

func (e *CliError) Unwrap() error {
	return e.Err
}

// RichError renders the text with its code and cause, followed by
// the help text and the numbered suggestions
func (e *CliError) RichError() string {
	head := "Error: " + e.Text
	if e.Code != "" {
		head = fmt.Sprintf("Error [%s]: %s", e.Code, e.Text)
	}
	if e.Err != nil {
		head += "\n" + styleCause.Render("caused by: "+e.Err.Error())
	}

	var help string
	if e.Help != "" {
		help = Emoji("❔ ") + "Help: " + e.Help
	}
	return ErrorBox(head, help, e.suggestionList())
}

func (e *CliError) suggestionList() string {
	if len(e.Suggestions) == 0 {
		return ""
	}
	var list strings.Builder
	list.WriteString(Emoji("📎 ") + "Try:")
	for i, s := range e.Suggestions {
		fmt.Fprintf(&list, "\n %d. %s", i+1, s)
	}
	return list.String()
}
