package guard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingFile   = errors.New("missing file")
	ErrUnsafeContent = errors.New("unsafe content")
)

// MissingFileError reports a target path that did not exist at check time.
type MissingFileError struct {
	Path  string
	Label string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("Missing %s file: %s", labelOrDefault(e.Label), e.Path)
}

func (e *MissingFileError) Is(target error) bool { return target == ErrMissingFile }

// UnsafeContentError reports the first marker hit. Offset is the byte
// position in the lowered content.
type UnsafeContentError struct {
	Path   string
	Label  string
	Marker string
	Offset int
}

func (e *UnsafeContentError) Error() string {
	return fmt.Sprintf("Potentially unsafe %s> tag found in %s.", e.Marker, labelOrDefault(e.Label))
}

func (e *UnsafeContentError) Is(target error) bool { return target == ErrUnsafeContent }

func labelOrDefault(label string) string {
	if strings.TrimSpace(label) == "" {
		return DefaultLabel
	}
	return label
}
