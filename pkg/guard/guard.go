// Package guard checks static content files for unsafe inline HTML tags
// before they are published.
package guard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fahmitech/blogguard/pkg/logger"
)

const (
	DefaultPath   = "src/features/blog/data/posts.ts"
	DefaultLabel  = "blog data"
	DefaultMarker = "<script"
)

// ExitStatus is the process exit code of a check.
type ExitStatus int

const (
	ExitOK      ExitStatus = 0
	ExitFailure ExitStatus = 1
)

// Options tunes a check. The zero value checks DefaultLabel for DefaultMarker.
type Options struct {
	Label   string
	Markers []string
}

func (o Options) markers() []string {
	if len(o.Markers) == 0 {
		return []string{DefaultMarker}
	}
	return o.Markers
}

// Check loads path and returns nil when none of the markers appear in it.
func Check(path string, opts Options) error {
	doc, err := Load(path)
	if err != nil {
		var missing *MissingFileError
		if errors.As(err, &missing) {
			missing.Label = opts.Label
		}
		return err
	}
	logger.Debug("loaded %s (%d bytes)", doc.Path, len(doc.Content))

	for _, m := range opts.markers() {
		if off := doc.Find(m); off >= 0 {
			logger.Debug("marker %q matched at offset %d", m, off)
			return &UnsafeContentError{
				Path:   path,
				Label:  opts.Label,
				Marker: strings.ToLower(m),
				Offset: off,
			}
		}
	}
	return nil
}

// Run checks path for DefaultMarker and reports the verdict: one line to
// stdout on success, one line to stderr on failure.
func Run(path string, stdout, stderr io.Writer) ExitStatus {
	return RunWithOptions(path, Options{}, stdout, stderr)
}

// RunWithOptions is Run with configured markers and label.
func RunWithOptions(path string, opts Options, stdout, stderr io.Writer) ExitStatus {
	if err := Check(path, opts); err != nil {
		fmt.Fprintln(stderr, Describe(err))
		return ExitFailure
	}
	fmt.Fprintln(stdout, successMessage(opts))
	return ExitOK
}

// Describe renders err as the single line printed for a failed check.
func Describe(err error) string {
	var missing *MissingFileError
	var unsafe *UnsafeContentError
	switch {
	case errors.As(err, &missing):
		return missing.Error()
	case errors.As(err, &unsafe):
		return unsafe.Error()
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func successMessage(opts Options) string {
	tags := make([]string, 0, len(opts.markers()))
	for _, m := range opts.markers() {
		tags = append(tags, strings.ToLower(m)+">")
	}
	label := labelOrDefault(opts.Label)
	return fmt.Sprintf("%s%s markdown validated: no unsafe %s tags detected.",
		strings.ToUpper(label[:1]), label[1:], strings.Join(tags, ", "))
}
