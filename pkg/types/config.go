package types

import "fmt"

// Config represents the optional blogguard configuration file.
type Config struct {
	Version  string            `yaml:"version" json:"version"`
	Target   Target            `yaml:"target" json:"target"`
	Profiles map[string]Target `yaml:"profiles,omitempty" json:"profiles,omitempty"`
}

// Target names one content file and the markers it must not contain.
type Target struct {
	Path    string  `yaml:"path" json:"path"`
	Label   string  `yaml:"label,omitempty" json:"label,omitempty"`
	Markers Markers `yaml:"markers,omitempty" json:"markers,omitempty"`
}

// Markers can be a single marker or a list
type Markers []string

// UnmarshalYAML implements custom unmarshaling to support both string and []string
func (m *Markers) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*m = []string{single}
		return nil
	}

	var slice []string
	if err := unmarshal(&slice); err == nil {
		*m = slice
		return nil
	}

	return fmt.Errorf("markers must be a string or a list of strings")
}
