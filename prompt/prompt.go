// Package prompt provides the ways a URL can reach the dispatcher: an interactive
// survey question, a plain line from piped stdin, or a value given up front.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Message is the question shown before reading a URL.
const Message = "Enter the video URL:"

// Survey asks interactively on the terminal and re-asks until something is typed.
// It needs a real terminal on stdio: survey switches it to raw mode and queries
// the cursor position, so it is not exercised by tests over pipes.
type Survey struct {
	Message string
	Opts    []survey.AskOpt
}

// ReadURL implements dispatch.URLSource.
func (s Survey) ReadURL() (string, error) {
	var url string
	opts := append([]survey.AskOpt{survey.WithValidator(survey.Required)}, s.Opts...)
	if err := survey.AskOne(&survey.Input{Message: message(s.Message)}, &url, opts...); err != nil {
		return "", err
	}
	return url, nil
}

// Line prints the message to Out and reads one line from In.
type Line struct {
	In      io.Reader
	Out     io.Writer
	Message string
}

// ReadURL implements dispatch.URLSource. A final line without a newline is accepted.
//
// In is read one byte at a time so nothing past the newline is consumed; the
// rest of stdin still belongs to the download tool.
func (l Line) ReadURL() (string, error) {
	if l.Out != nil {
		fmt.Fprint(l.Out, message(l.Message)+" ")
	}

	var (
		line strings.Builder
		b    = make([]byte, 1)
	)
	for {
		n, err := l.In.Read(b)
		if n > 0 {
			line.WriteByte(b[0])
			if b[0] == '\n' {
				return line.String(), nil
			}
		}
		if errors.Is(err, io.EOF) {
			return line.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}

func message(custom string) string {
	if custom == "" {
		return Message
	}
	return custom
}

// Static returns a fixed URL, typically taken from the command line.
type Static string

// ReadURL implements dispatch.URLSource.
func (s Static) ReadURL() (string, error) {
	return string(s), nil
}
