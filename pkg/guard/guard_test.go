package guard

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePosts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.ts")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRun_Scenarios(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    ExitStatus
	}{
		{"plain posts", `export const posts = [{ title: "Hello" }];`, ExitOK},
		{"inline script", `const body = "<script>alert(1)</script>";`, ExitFailure},
		{"uppercase script", `<SCRIPT SRC="x.js">`, ExitFailure},
		{"mixed case script", `text <ScRiPt>`, ExitFailure},
		{"javascript url", `href: "javascript:void(0)"`, ExitOK},
		{"descriptive word", `excerpt: "a descriptive summary"`, ExitOK},
		{"closing tag only", `</script>`, ExitOK},
		{"empty file", ``, ExitOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writePosts(t, tc.content)
			var stdout, stderr bytes.Buffer

			got := Run(path, &stdout, &stderr)
			assert.Equal(t, tc.want, got)

			if tc.want == ExitOK {
				assert.Equal(t, "Blog data markdown validated: no unsafe <script> tags detected.\n", stdout.String())
				assert.Empty(t, stderr.String())
			} else {
				assert.Equal(t, "Potentially unsafe <script> tag found in blog data.\n", stderr.String())
				assert.Empty(t, stdout.String())
			}
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "posts.ts")
	var stdout, stderr bytes.Buffer

	got := Run(path, &stdout, &stderr)
	assert.Equal(t, ExitFailure, got)
	assert.Equal(t, "Missing blog data file: "+path+"\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestRun_Idempotent(t *testing.T) {
	for _, content := range []string{"safe", "<script>"} {
		path := writePosts(t, content)
		var out bytes.Buffer
		first := Run(path, &out, &out)
		second := Run(path, &out, &out)
		assert.Equal(t, first, second)
	}
}

func TestRun_InvalidUTF8(t *testing.T) {
	path := writePosts(t, "\xff\xfe<p>")
	var stdout, stderr bytes.Buffer

	got := Run(path, &stdout, &stderr)
	assert.Equal(t, ExitFailure, got)
	assert.Contains(t, stderr.String(), "not valid UTF-8")
	assert.Empty(t, stdout.String())
}

func TestCheck_Errors(t *testing.T) {
	dir := t.TempDir()

	err := Check(filepath.Join(dir, "nope.ts"), Options{})
	assert.True(t, errors.Is(err, ErrMissingFile))
	assert.False(t, errors.Is(err, ErrUnsafeContent))

	path := writePosts(t, "intro\n<Script>x</Script>")
	err = Check(path, Options{})
	require.True(t, errors.Is(err, ErrUnsafeContent))

	var unsafe *UnsafeContentError
	require.True(t, errors.As(err, &unsafe))
	assert.Equal(t, "<script", unsafe.Marker)
	assert.Equal(t, 6, unsafe.Offset)
	assert.Equal(t, path, unsafe.Path)
}

func TestCheck_DirectoryIsUnrecognizedFailure(t *testing.T) {
	err := Check(t.TempDir(), Options{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingFile))
	assert.False(t, errors.Is(err, ErrUnsafeContent))
}

func TestRunWithOptions_CustomMarkers(t *testing.T) {
	path := writePosts(t, `embed: "<IFRAME src=x>"`)
	opts := Options{Label: "draft posts", Markers: []string{"<script", "<iframe"}}
	var stdout, stderr bytes.Buffer

	got := RunWithOptions(path, opts, &stdout, &stderr)
	assert.Equal(t, ExitFailure, got)
	assert.Equal(t, "Potentially unsafe <iframe> tag found in draft posts.\n", stderr.String())

	safe := writePosts(t, "hello")
	stdout.Reset()
	stderr.Reset()
	got = RunWithOptions(safe, opts, &stdout, &stderr)
	assert.Equal(t, ExitOK, got)
	assert.Equal(t, "Draft posts markdown validated: no unsafe <script>, <iframe> tags detected.\n", stdout.String())
}

func TestRunWithOptions_MissingUsesLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.ts")
	var stdout, stderr bytes.Buffer

	RunWithOptions(path, Options{Label: "draft posts"}, &stdout, &stderr)
	assert.Equal(t, "Missing draft posts file: "+path+"\n", stderr.String())
}

func TestLoad_LowersForMatchingOnly(t *testing.T) {
	path := writePosts(t, "Ünïcode <SCRIPT>")
	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ünïcode <SCRIPT>", doc.Content)
	off := doc.Find("<script")
	require.GreaterOrEqual(t, off, 0)
	assert.Equal(t, "<SCRIPT", doc.Content[off:off+len("<script")])
}
