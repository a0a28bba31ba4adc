package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCliError(t *testing.T) {
	cause := errors.New("file does not exist")
	err := fmt.Errorf("loading: %w", &CliError{
		Text:        "version 1.8.9 is not installed",
		Code:        "version-missing",
		Help:        "Expected a version file",
		Suggestions: []string{"Run mclaunch versions", "Install 1.8.9"},
		Err:         cause,
	})

	if !errors.Is(err, cause) {
		t.Error("Expected the cause to be unwrapped")
	}

	EmojiEnabled = false
	defer func() { EmojiEnabled = true }()
	rendered := Render(err)
	for _, want := range []string{
		"Error [version-missing]: version 1.8.9 is not installed",
		"caused by: file does not exist",
		"Help: Expected a version file",
		"Try:",
		"1. Run mclaunch versions",
		"2. Install 1.8.9",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Expected rendered error to contain %q, got:\n%s", want, rendered)
		}
	}
}

func TestErrorBox(t *testing.T) {
	EmojiEnabled = false
	defer func() { EmojiEnabled = true }()

	rendered := ErrorBox("Error: boom", "Help: try again")
	if !strings.Contains(rendered, "Error: boom") || !strings.Contains(rendered, "Help: try again") {
		t.Errorf("Unexpected error box:\n%s", rendered)
	}
	if plain := Render(errors.New("boom")); !strings.Contains(plain, "Error: boom") || strings.Contains(plain, "Try:") {
		t.Errorf("Unexpected plain error:\n%s", plain)
	}
	if ErrorBox("boom", "", "") != ErrorBox("boom") {
		t.Error("Expected empty hints to be left out")
	}
}
