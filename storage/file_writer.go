package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes the rendered page to a fixed path, replacing any
// previous content.
type FileWriter struct {
	path string
}

// NewFileWriter returns a FileWriter for path. Nothing is touched on disk
// until WritePage is called.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

func (w *FileWriter) Path() string {
	return w.path
}

// WritePage creates (or truncates) the output file and writes content to it.
// Intermediate directories are created automatically.
func (w *FileWriter) WritePage(content []byte) (err error) {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("page: create output dir: %w", err)
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("page: create file %q: %w", w.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("page: close file %q: %w", w.path, cerr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("page: write file %q: %w", w.path, err)
	}
	return nil
}
