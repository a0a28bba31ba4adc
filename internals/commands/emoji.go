package commands

import (
	"os"
	"runtime"
)

var emojiSupport = detectEmojiSupport()

// EmojiEnabled can be set to false to never print emojis
var EmojiEnabled = true

func detectEmojiSupport() bool {
	// everything that is not windows usually has emoji support
	if runtime.GOOS != "windows" {
		return true
	}
	// raw cmd or powershell set this, the windows terminal does not
	return os.Getenv("SESSIONNAME") == ""
}

// Emoji returns the given string (usually a emoji) if the current terminal
// (probably) supports it
func Emoji(e string) string {
	if emojiSupport && EmojiEnabled {
		return e
	}
	return ""
}
