package guard

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// SourceDocument is a text file loaded once for marker matching.
type SourceDocument struct {
	Path    string
	Content string

	lowered string
}

// Load reads the document at path. A path that does not exist yields a
// *MissingFileError and is never opened.
func Load(path string) (*SourceDocument, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("failed to decode %s: content is not valid UTF-8", path)
	}

	content := string(data)
	return &SourceDocument{
		Path:    path,
		Content: content,
		lowered: asciiLower(content),
	}, nil
}

// Find returns the byte offset of the first case-insensitive occurrence of
// marker, or -1.
func (d *SourceDocument) Find(marker string) int {
	return strings.Index(d.lowered, asciiLower(marker))
}

// asciiLower folds A-Z only. Byte offsets stay aligned with Content, which
// strings.ToLower does not guarantee for multi-byte runes.
func asciiLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
