package main

import (
	"golang.design/x/clipboard"
)

type textWriter interface {
	WriteText(s string)
}

// systemClipboard writes to the OS clipboard. clipboard.Init fails on
// headless systems, in which case copying is disabled.
type systemClipboard struct{}

func newSystemClipboard() (*systemClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, err
	}
	return &systemClipboard{}, nil
}

func (systemClipboard) WriteText(s string) {
	clipboard.Write(clipboard.FmtText, []byte(s))
}
