package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// sidecarExt replaces ".go" in the name of a file that failed to format.
// It is not a .go file, so a broken sidecar never breaks the package build.
const sidecarExt = ".unformatted.go.txt"

// WriteFiles writes the generated files, creating their directories.
// Files whose content on disk is already identical are left untouched.
// It returns the paths actually written.
func WriteFiles(files []GeneratedFile) ([]string, error) {
	var written []string

	for _, f := range files {
		changed, err := writeIfChanged(f.Dir, f.Filename, f.Content)
		if err != nil {
			return written, err
		}

		if changed {
			written = append(written, f.Path())
		}
	}

	return written, nil
}

func writeIfChanged(dir, name string, content []byte) (bool, error) {
	path := filepath.Join(dir, name)

	old, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(old, content):
		return false, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return false, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return false, fmt.Errorf("writing file %s: %w", path, err)
	}

	return true, nil
}

// writeSidecar stores source that failed to format next to the file it was
// meant for. Errors are ignored by callers; the format error is what matters.
func writeSidecar(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	_, err := writeIfChanged(dir, strings.TrimSuffix(filename, ".go")+sidecarExt, content)

	return err
}
