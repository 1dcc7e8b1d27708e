package qrcode

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	pngExt = ".png"
	svgExt = ".svg"

	// Module size in pixels of the SVG output; the PNG is sized in pixels directly.
	svgModuleSize = 8
)

// Store renders QR codes for slugs and keeps them as static files.
type Store struct {
	dir     string
	baseURL string
	size    int
}

func New(dir, baseURL string) *Store {
	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		size:    256,
	}
}

// Refs returns the public URLs the QR files of slug are served from.
func (s *Store) Refs(slug string) (png, svg string) {
	return s.baseURL + "/static/" + slug + pngExt, s.baseURL + "/static/" + slug + svgExt
}

// Write encodes content and stores it as PNG and SVG under the slug name.
func (s *Store) Write(slug, content string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create qr dir: %w", err)
	}

	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to encode qr: %w", err)
	}

	png, err := q.PNG(s.size)
	if err != nil {
		return fmt.Errorf("failed to render png: %w", err)
	}
	if err := writeFile(s.path(slug, pngExt), png); err != nil {
		return err
	}

	if err := writeFile(s.path(slug, svgExt), renderSVG(q.Bitmap())); err != nil {
		return err
	}
	return nil
}

// Remove deletes both files of slug. Missing files are not an error.
func (s *Store) Remove(slug string) error {
	var errs []error
	for _, ext := range []string{pngExt, svgExt} {
		if err := os.Remove(s.path(slug, ext)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Missing reports whether either file of slug is absent.
func (s *Store) Missing(slug string) bool {
	for _, ext := range []string{pngExt, svgExt} {
		if _, err := os.Stat(s.path(slug, ext)); err != nil {
			return true
		}
	}
	return false
}

func (s *Store) path(slug, ext string) string {
	return filepath.Join(s.dir, filepath.Base(slug)+ext)
}

func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to move %s: %w", filepath.Base(path), err)
	}
	return nil
}

func renderSVG(bitmap [][]bool) []byte {
	n := len(bitmap) * svgModuleSize

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		n, n, len(bitmap), len(bitmap))
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/><path fill="#000000" d="`)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, "M%d %dh1v1h-1z", x, y)
			}
		}
	}
	b.WriteString(`"/></svg>`)
	return []byte(b.String())
}
