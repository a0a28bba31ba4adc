package launcher

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// MaybeSpinner shows a spinner while natives are extracted or, if out
// is no terminal, prints its message once
type MaybeSpinner struct {
	Spin    bool
	Spinner *spinner.Spinner
	Msg     string
	out     *os.File
}

// Start starts the spinner or prints the message
func (m *MaybeSpinner) Start() {
	switch {
	case m.Spin:
		m.Spinner.Start()
	case m.Msg != "":
		fmt.Fprintln(m.out, m.Msg)
	}
}

// Stop stops the spinner if it is running
func (m *MaybeSpinner) Stop() {
	if m.Spin && m.Spinner.Active() {
		m.Spinner.Stop()
	}
}

// NewMaybeSpinner returns a spinner writing to out. It only spins if out
// is an interactive terminal and msg is not empty.
func NewMaybeSpinner(out *os.File, msg string) *MaybeSpinner {
	s := &MaybeSpinner{
		Spin:    msg != "" && isTerminal(out),
		Spinner: spinner.New(spinner.CharSets[9], 300*time.Millisecond, spinner.WithWriter(out)),
		Msg:     msg,
		out:     out,
	}
	s.Spinner.Prefix = " "
	s.Spinner.Suffix = " " + msg
	return s
}

// IsTerminal reports if stdout is an interactive terminal
func IsTerminal() bool {
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
