// Package dispatch reads a URL, builds the yt-dlp command for it and runs the tool once.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/ytgrab/ytgrab/color"
	"github.com/ytgrab/ytgrab/icon"
	"github.com/ytgrab/ytgrab/log"
	"github.com/ytgrab/ytgrab/platform"
	"github.com/ytgrab/ytgrab/profile"
	"github.com/ytgrab/ytgrab/style"
)

// ErrEmptyURL is returned when the source yields nothing but whitespace.
var ErrEmptyURL = errors.New("no URL was entered")

// URLSource supplies the URL to download.
type URLSource interface {
	ReadURL() (string, error)
}

// Invoker runs the tool with argv and waits for it to exit.
// A non-zero exit must be reported as *ToolFailure; any other error means the
// tool could not be run at all.
type Invoker interface {
	Invoke(ctx context.Context, argv []string) error
}

// ToolFailure reports that the tool ran and exited with a non-zero status.
type ToolFailure struct {
	Argv     []string
	ExitCode int
	Detail   string
}

func (f *ToolFailure) Error() string {
	msg := fmt.Sprintf("command %q returned non-zero exit status %d", f.Argv, f.ExitCode)
	if f.Detail != "" {
		msg += ": " + f.Detail
	}
	return msg
}

// Dispatcher wires a URL source to an invoker.
type Dispatcher struct {
	Source  URLSource
	Invoker Invoker

	// Tool is argv[0].
	Tool string
	// Dir prefixes the output template.
	Dir string
	// Out receives status lines. The tool's own output bypasses it.
	Out io.Writer
	// DryRun prints the command instead of running it.
	DryRun bool
}

// Result describes a finished Run.
type Result struct {
	Kind platform.Kind
	Argv []string
	// Failure is set when the tool exited non-zero.
	Failure *ToolFailure
}

// Succeeded reports whether the tool ran and exited cleanly.
func (r Result) Succeeded() bool {
	return r.Failure == nil
}

// Run performs one download. A non-zero tool exit is printed and swallowed;
// only failures to read the URL or to start the tool are returned.
func (d *Dispatcher) Run(ctx context.Context) (Result, error) {
	raw, err := d.Source.ReadURL()
	if err != nil {
		return Result{}, fmt.Errorf("read url: %w", err)
	}

	url := strings.TrimSpace(raw)
	if url == "" {
		return Result{}, ErrEmptyURL
	}

	kind := platform.Detect(url)
	log.Infof("detected %s for %s", kind, url)
	d.printf("%s %s\n", style.Faint("Detected platform:"), style.Tag(color.New("230"), color.New("62"))(kind.String()))

	p := profile.For(kind)
	if advisory, ok := p.Advisory.Get(); ok {
		d.printf("%s %s\n", icon.Get(icon.Warn), style.Fg(style.Warning)(advisory))
	}

	argv := p.Command(d.Tool, d.Dir, url)
	result := Result{Kind: kind, Argv: argv}
	log.Debugf("argv: %q", argv)

	if d.DryRun {
		d.printf("%s\n", shellquote.Join(argv...))
		return result, nil
	}

	d.printf("%s Starting download...\n\n", icon.Get(icon.Download))

	err = d.Invoker.Invoke(ctx, argv)

	var failure *ToolFailure
	switch {
	case err == nil:
		log.Info("download completed")
		d.printf("\n%s %s\n", style.Fg(style.Success)(icon.Get(icon.Success)), "Download completed.")
		return result, nil
	case errors.As(err, &failure):
		log.Errorf("tool failed: %v", failure)
		d.printf("\n%s %s %s\n", style.Fg(style.Failure)(icon.Get(icon.Fail)), "An error occurred:", failure.Error())
		result.Failure = failure
		return result, nil
	default:
		return result, fmt.Errorf("run %s: %w", d.Tool, err)
	}
}

func (d *Dispatcher) printf(format string, args ...any) {
	if d.Out == nil {
		return
	}
	fmt.Fprintf(d.Out, format, args...)
}
