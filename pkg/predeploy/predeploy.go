// Package predeploy verifies that the static site carries the files and
// hosting configuration a deploy needs.
package predeploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MinAssetBytes is the smallest size a social asset may have before it is
// treated as empty or corrupt.
const MinAssetBytes = 100

// File is one path checked relative to the site root.
type File struct {
	Path string
	Name string
}

var (
	RequiredFiles = []File{
		{Path: "public/robots.txt", Name: "Robots.txt"},
		{Path: "public/sitemap.xml", Name: "Sitemap"},
		{Path: "firebase.json", Name: "Firebase config"},
		{Path: ".firebaserc", Name: "Firebase project settings"},
	}

	SocialAssets = []File{
		{Path: "public/og-image.jpg", Name: "Open Graph image"},
		{Path: "public/favicon.ico", Name: "Favicon"},
	}

	RequiredScripts = []string{"build", "deploy"}
)

// Report holds the outcome of each check group.
type Report struct {
	FilesOK    bool
	AssetsOK   bool
	PackageOK  bool
	FirebaseOK bool
}

// OK reports whether every group passed.
func (r *Report) OK() bool {
	return r.FilesOK && r.AssetsOK && r.PackageOK && r.FirebaseOK
}

type printer struct {
	w       io.Writer
	header  lipgloss.Style
	section lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		section: r.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		pass:    r.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}

func (p *printer) ok(format string, args ...any) {
	fmt.Fprintln(p.w, p.pass.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (p *printer) bad(format string, args ...any) {
	fmt.Fprintln(p.w, p.fail.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Check runs every group against root and writes one line per item to out.
func Check(root string, out io.Writer) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	p := newPrinter(out)
	rep := &Report{}

	fmt.Fprintln(out, p.header.Render("Running pre-deployment checks..."))
	fmt.Fprintln(out)

	fmt.Fprintln(out, p.section.Render("Checking required files:"))
	rep.FilesOK = checkRequired(p, root)

	fmt.Fprintln(out)
	fmt.Fprintln(out, p.section.Render("Checking social media assets:"))
	rep.AssetsOK = checkAssets(p, root)

	fmt.Fprintln(out)
	fmt.Fprintln(out, p.section.Render("Checking package.json configuration:"))
	rep.PackageOK = checkPackageJSON(p, root)

	fmt.Fprintln(out)
	fmt.Fprintln(out, p.section.Render("Checking Firebase configuration:"))
	rep.FirebaseOK = checkFirebase(p, root)

	fmt.Fprintln(out)
	fmt.Fprintln(out, p.header.Render("Pre-deployment check summary:"))
	if rep.OK() {
		p.ok("All checks passed! You are ready to deploy.")
	} else {
		p.bad("Some checks failed. Please fix the issues before deploying.")
	}
	return rep, nil
}

func checkRequired(p *printer, root string) bool {
	ok := true
	for _, f := range RequiredFiles {
		if exists(filepath.Join(root, f.Path)) {
			p.ok("%s exists", f.Name)
		} else {
			p.bad("Missing %s (%s)", f.Name, f.Path)
			ok = false
		}
	}
	return ok
}

func checkAssets(p *printer, root string) bool {
	ok := true
	for _, f := range SocialAssets {
		info, err := os.Stat(filepath.Join(root, f.Path))
		if err != nil {
			p.bad("Missing %s (%s)", f.Name, f.Path)
			ok = false
			continue
		}
		if info.Size() > MinAssetBytes {
			p.ok("%s exists (%d bytes)", f.Name, info.Size())
		} else {
			p.bad("%s exists but may be empty or corrupt (%d bytes)", f.Name, info.Size())
			ok = false
		}
	}
	return ok
}

type packageJSON struct {
	Scripts map[string]string `json:"scripts"`
}

func checkPackageJSON(p *printer, root string) bool {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		p.bad("Missing package.json")
		return false
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		p.bad("Error parsing package.json")
		return false
	}

	var missing []string
	for _, s := range RequiredScripts {
		if pkg.Scripts[s] == "" {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		p.bad("Missing npm scripts: %s", strings.Join(missing, ", "))
		return false
	}
	p.ok("All required npm scripts exist")
	return true
}

type firebaseJSON struct {
	Hosting *struct {
		Public string          `json:"public"`
		Ignore json.RawMessage `json:"ignore"`
	} `json:"hosting"`
}

// checkFirebase stays quiet when firebase.json is missing; checkRequired
// already reported it.
func checkFirebase(p *printer, root string) bool {
	data, err := os.ReadFile(filepath.Join(root, "firebase.json"))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			p.bad("Error reading firebase.json")
		}
		return false
	}

	var cfg firebaseJSON
	if err := json.Unmarshal(data, &cfg); err != nil {
		p.bad("Error parsing firebase.json")
		return false
	}
	if cfg.Hosting == nil {
		p.bad("Firebase config is missing hosting section")
		return false
	}
	if cfg.Hosting.Public == "" || len(cfg.Hosting.Ignore) == 0 || string(cfg.Hosting.Ignore) == "null" {
		p.bad("Firebase hosting config is missing required fields (public, ignore)")
		return false
	}
	p.ok("Firebase hosting config is valid (public: %s)", cfg.Hosting.Public)
	return true
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
