package utils

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned if the user aborted a prompt
var ErrAborted = errors.New("aborted")

// SelectPrompt asks the user to pick one of the items and returns it
func SelectPrompt(prompt *promptui.Select) (string, error) {
	_, res, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return res, nil
}

// SelectVersion asks the user to pick one of the given version ids
func SelectVersion(ids []string) (string, error) {
	return SelectPrompt(&promptui.Select{
		Label: "Version",
		Items: ids,
		Size:  10,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(ids[index]), strings.ToLower(input))
		},
	})
}
