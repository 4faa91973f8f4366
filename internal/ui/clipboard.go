package ui

import "github.com/atotto/clipboard"

// clipboardWriter copies text to the system clipboard.
type clipboardWriter func(text string) error

func systemClipboard(text string) error {
	return clipboard.WriteAll(text)
}
