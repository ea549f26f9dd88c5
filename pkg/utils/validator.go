package utils

import (
	"fmt"
	"regexp"
)

var (
	// MarkerRegex accepts opening tag prefixes such as "<script" or "<iframe".
	MarkerRegex = regexp.MustCompile(`^<[a-z][a-z0-9-]*$`)

	// LabelRegex keeps report labels to plain words.
	LabelRegex = regexp.MustCompile(`^[a-zA-Z0-9 _\-\.]+$`)
)

// ValidateMarker ensures marker is a lowercase tag opener.
func ValidateMarker(marker string) error {
	if !MarkerRegex.MatchString(marker) {
		return fmt.Errorf("invalid marker '%s': must match %s", marker, MarkerRegex.String())
	}
	return nil
}

// ValidateLabel ensures a report label has no control or markup characters.
func ValidateLabel(label string) error {
	if !LabelRegex.MatchString(label) {
		return fmt.Errorf("invalid character in label '%s': must match %s", label, LabelRegex.String())
	}
	return nil
}
