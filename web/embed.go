// Package web embeds the static files for the browser UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed dist
var distFS embed.FS

// StaticFileSystem serves the embedded UI files.
type StaticFileSystem struct {
	fs http.FileSystem
}

// NewStaticFileSystem returns the UI filesystem rooted at the embedded
// dist directory.
func NewStaticFileSystem() (*StaticFileSystem, error) {
	sub, err := fs.Sub(distFS, "dist")
	if err != nil {
		return nil, err
	}
	return &StaticFileSystem{fs: http.FS(sub)}, nil
}

// Open opens a file from the embedded filesystem.
func (s *StaticFileSystem) Open(name string) (http.File, error) {
	return s.fs.Open(name)
}

// Exists reports whether path names an embedded file.
func (s *StaticFileSystem) Exists(path string) bool {
	f, err := s.fs.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
