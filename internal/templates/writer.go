package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
)

// ErrFileExists is returned by WriteGeneratedFile when the target exists and
// overwriting is disabled.
var ErrFileExists = errors.New("file already exists")

// WriteGeneratedFile writes content to relativePath under dir and returns the
// full path. The path must stay inside dir. Parent directories are created.
// An existing file is replaced only when overwrite is set.
func WriteGeneratedFile(dir, relativePath, content string, overwrite bool) (string, error) {
	if dir == "" {
		return "", derrors.ValidationFailed("output.directory", "output directory is required")
	}
	if relativePath == "" {
		return "", derrors.ValidationFailed("output", "output path is required")
	}

	cleanRel := filepath.Clean(relativePath)
	if filepath.IsAbs(cleanRel) || cleanRel == ".." || strings.HasPrefix(cleanRel, ".."+string(filepath.Separator)) {
		return "", derrors.ValidationFailed("output", fmt.Sprintf("%q must be relative to the output directory", relativePath))
	}
	fullPath := filepath.Join(dir, cleanRel)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", derrors.OutputError(fullPath, err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	// #nosec G304 -- fullPath is validated to stay under dir.
	file, err := os.OpenFile(fullPath, flags, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", derrors.OutputError(fullPath, ErrFileExists)
		}
		return "", derrors.OutputError(fullPath, err)
	}

	if _, err := file.WriteString(content); err != nil {
		_ = file.Close()
		return "", derrors.OutputError(fullPath, err)
	}
	if err := file.Close(); err != nil {
		return "", derrors.OutputError(fullPath, err)
	}
	return fullPath, nil
}
